package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/llehouerou/minihome/internal/db"
)

// PostKind distinguishes miniroom comments from diary entries.
type PostKind string

const (
	PostMiniroom PostKind = "miniroom"
	PostDiary    PostKind = "diary"
)

// Post is a stored miniroom comment or diary entry.
type Post struct {
	ID        int64
	Kind      PostKind
	Body      string
	CreatedAt time.Time
}

// AddPost stores body under kind. Callers trim and validate the body.
func (m *Manager) AddPost(kind PostKind, body string) (Post, error) {
	p := Post{Kind: kind, Body: body, CreatedAt: m.now().Truncate(time.Second)}
	res, err := m.db.Exec(`
		INSERT INTO posts (kind, body, created_at) VALUES (?, ?, ?)
	`, string(kind), body, p.CreatedAt.Unix())
	if err != nil {
		return Post{}, fmt.Errorf("insert %s post: %w", kind, err)
	}
	p.ID, err = res.LastInsertId()
	return p, err
}

// ListPosts returns up to limit posts of kind, newest first. A limit <= 0
// returns all of them.
func (m *Manager) ListPosts(kind PostKind, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := m.db.Query(`
		SELECT id, kind, body, created_at
		FROM posts
		WHERE kind = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		var k string
		var created sql.NullInt64
		if err := rows.Scan(&p.ID, &k, &p.Body, &created); err != nil {
			return nil, err
		}
		p.Kind = PostKind(k)
		p.CreatedAt = db.UnixTime(created)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
