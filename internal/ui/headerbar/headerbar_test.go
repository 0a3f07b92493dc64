package headerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/minihome/internal/ui/testutil"
	"github.com/llehouerou/minihome/internal/visitor"
)

func TestRender(t *testing.T) {
	out := Render("jiwoo", visitor.Record{Today: 3, Total: 1204}, TabDiary, 80)

	lines := testutil.SplitLines(out)
	require.Len(t, lines, Height)
	assert.Contains(t, lines[0], "jiwoo's minihome")
	assert.Contains(t, lines[0], "TODAY 3 | TOTAL 1,204")
	assert.LessOrEqual(t, testutil.MeasureWidth(lines[0]), 80)

	for _, name := range []string{"F1 Home", "F2 Diary", "F3 Guestbook"} {
		assert.Contains(t, lines[1], name)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("jiwoo", visitor.Record{}, TabHome, 10))
}

func TestRenderTabs_CenteredWithSeparators(t *testing.T) {
	for _, active := range Tabs() {
		t.Run(active.String(), func(t *testing.T) {
			out := renderTabs(active, 80)
			plain := testutil.StripANSI(out)

			assert.True(t, strings.HasPrefix(plain, " "), "tabs are centered")
			assert.Equal(t, 3, strings.Count(plain, "│")+1)
		})
	}
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "home", TabHome.String())
	assert.Equal(t, "diary", TabDiary.String())
	assert.Equal(t, "guestbook", TabGuestbook.String())
	assert.Equal(t, "unknown", Tab(9).String())
}
