package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/horde/internal/storage"
)

func TestScoreboardListsRuns(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.RunRecord{
		{LevelID: "scripted", Player: "ann", Score: 12, Ticks: 600},
		{LevelID: "scripted", Player: "bob", Score: 40, Ticks: 3600, NewHigh: true},
		{LevelID: "elsewhere", Player: "cy", Score: 99, Ticks: 60},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "scripted", "Scripted", 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, want 2", len(m.runs))
	}
	if m.runs[0].Player != "bob" {
		t.Errorf("first run by %q, want bob", m.runs[0].Player)
	}

	rows := m.table.Rows()
	if rows[0][1] != "40*" || rows[0][3] != "1:00" {
		t.Errorf("top row = %v", rows[0])
	}

	view := m.View()
	for _, want := range []string{"BEST RUNS - Scripted", "2 runs", "played 1:10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardUsesRunTickRate(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunRecord{LevelID: "scripted", Player: "ann", Score: 5, Ticks: 900, TickRate: 30}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, "scripted", "Scripted", 80, 24)
	if got := m.table.Rows()[0][3]; got != "0:30" {
		t.Errorf("time of a 900 tick run at 30 fps = %q, want 0:30", got)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "scripted", "Scripted", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard shows no notice")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{time.Second, "0:01"},
		{75 * time.Second, "1:15"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
