package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vinser/housewalk/internal/flags"
	"github.com/vinser/housewalk/internal/grid"
	"github.com/vinser/housewalk/internal/model/walk"
	"github.com/vinser/housewalk/internal/tracker"
)

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		agents int
		want   string
	}{
		{"solo square", "^>v<\n", tracker.Solo, "Santa delivered presents to 4 houses.\n"},
		{"solo up down", "  ^v^v^v^v^v  ", tracker.Solo, "Santa delivered presents to 2 houses.\n"},
		{"solo empty", "\n", tracker.Solo, "Santa delivered presents to 1 houses.\n"},
		{"robot square", "^>v<", tracker.WithRobot, "Santa and Robo-Santa delivered presents to 3 houses.\n"},
		{"robot up down", "^v^v^v^v^v\n", tracker.WithRobot, "Santa and Robo-Santa delivered presents to 11 houses.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			fl := &flags.Flags{Input: writeInput(t, tt.input), Agents: tt.agents}
			if err := Run(fl, &out); err != nil {
				t.Fatal(err)
			}
			if out.String() != tt.want {
				t.Errorf("Run printed %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRun_About(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&flags.Flags{About: true}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Housewalk") {
		t.Errorf("Expected about page, got %q", out.String())
	}
}

func TestLoad_IllegalChar(t *testing.T) {
	_, err := Load(writeInput(t, "^>x<"))
	var illegal *grid.IllegalCharError
	if !errors.As(err, &illegal) {
		t.Fatalf("Expected IllegalCharError, got %v", err)
	}
	if illegal.Char != 'x' {
		t.Errorf("Expected offending char 'x', got %q", illegal.Char)
	}
}

func TestRun_IllegalCharPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	fl := &flags.Flags{Input: writeInput(t, "^^x"), Agents: tracker.Solo}
	if err := Run(fl, &out); err == nil {
		t.Fatal("Expected parse error")
	}
	if out.Len() != 0 {
		t.Errorf("Expected no report, got %q", out.String())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestModel_Finished(t *testing.T) {
	moves, err := grid.ParseMoves("^")
	if err != nil {
		t.Fatal(err)
	}
	m := New(tracker.New(tracker.Solo), moves, time.Millisecond)
	next, _ := m.Update(walk.TickMsg(time.Now()))
	m = next.(Model)
	if !m.walk.Done() {
		t.Fatal("Expected replay to be done after one tick")
	}
	next, cmd := m.Update(walk.FinishedMsg{Houses: 2})
	if cmd != nil {
		t.Error("Expected no command after finishing")
	}
	m = next.(Model)
	if m.status != statusFinished {
		t.Error("Expected finished status")
	}
	if view := m.View(); !strings.Contains(view, "Santa delivered presents to 2 houses.") {
		t.Errorf("Expected final report in the finished view:\n%s", view)
	}
}

func TestModel_ReplayingViewHasNoReport(t *testing.T) {
	moves, err := grid.ParseMoves("^^")
	if err != nil {
		t.Fatal(err)
	}
	m := New(tracker.New(tracker.WithRobot), moves, time.Millisecond)
	if strings.Contains(m.View(), "delivered presents") {
		t.Error("Report shown before the replay finished")
	}
}
