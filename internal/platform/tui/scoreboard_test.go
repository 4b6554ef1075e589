package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bombjack/internal/storage"
)

func TestScoreboardRowsAndStats(t *testing.T) {
	store := openTestStore(t)
	entries := []storage.ScoreEntry{
		{GameID: "stub", Player: "jack", Score: 1200, Bombs: 12},
		{GameID: "stub", Player: "ann", Score: 1900, Bombs: 19},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30).WithPlayer("jack")

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][1] != "ann" || rows[0][2] != "1,900" || rows[0][0] != "#1" {
		t.Errorf("first row = %v, expected ann with 1,900", rows[0])
	}
	if rows[1][0] != "#2"+ownMarker {
		t.Errorf("own row rank = %q, expected it marked", rows[1][0])
	}

	stats := m.statsLine()
	if !strings.Contains(stats, "rounds 2") || !strings.Contains(stats, "best 1,900") || !strings.Contains(stats, "bombs 31") {
		t.Errorf("statsLine() = %q", stats)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.statsLine() != "no rounds yet" {
		t.Errorf("statsLine() = %q, expected empty summary", m.statsLine())
	}
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to wrap to 0 with a single game", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should leave the scoreboard")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Bomb Jack", 20, "Bomb Jack"},
		{"Bomb Jack (debug)", 10, "Bomb Jack."},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.want)
		}
	}
}
