package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/state"
)

// waitForEngineEvent returns a command that blocks for the next engine
// notification. The handler re-arms it, so notifications reach the
// controller one at a time on the update loop.
func waitForEngineEvent(ch <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return engineEventMsg(ev)
	}
}

func (m Model) recordVisitCmd() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		rec, err := st.RecordVisit(context.Background())
		return visitRecordedMsg{Record: rec, Err: err}
	}
}

func (m Model) loadGuestbookCmd() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		entries, err := st.ListGuestbook()
		return guestbookLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) deleteGuestbookCmd(id int64) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		err := st.DeleteGuestbookEntry(context.Background(), id)
		return guestbookDeletedMsg{ID: id, Err: err}
	}
}

func (m Model) loadPostsCmd(kind state.PostKind) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		posts, err := st.ListPosts(kind, recentPosts)
		return postsLoadedMsg{Kind: kind, Posts: posts, Err: err}
	}
}

func (m Model) addPostCmd(kind state.PostKind, body string) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		p, err := st.AddPost(kind, body)
		return postAddedMsg{Kind: kind, Post: p, Err: err}
	}
}
