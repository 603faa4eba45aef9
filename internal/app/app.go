package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/housewalk/internal/flags"
	"github.com/vinser/housewalk/internal/grid"
	"github.com/vinser/housewalk/internal/model/about"
	"github.com/vinser/housewalk/internal/model/walk"
	"github.com/vinser/housewalk/internal/tracker"
)

const aboutWidth = 80

// Run executes one batch computation described by fl and writes the report to out.
func Run(fl *flags.Flags, out io.Writer) error {
	if fl.About {
		_, err := io.WriteString(out, about.Content(aboutWidth))
		return err
	}

	moves, err := Load(fl.Input)
	if err != nil {
		return err
	}

	t := tracker.New(fl.Agents)
	if fl.Watch {
		t, err = watch(t, moves, time.Duration(fl.Speed)*time.Millisecond)
		if err != nil {
			return err
		}
	} else {
		t.PerformMoves(moves)
	}
	return Report(out, t)
}

// Load reads the instructions file and parses its trimmed contents.
func Load(path string) ([]grid.Move, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the input file: %w", err)
	}
	moves, err := grid.ParseMoves(strings.TrimSpace(string(contents)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s to a list of moves: %w", path, err)
	}
	return moves, nil
}

// Report prints the number of houses that got at least one present.
func Report(out io.Writer, t *tracker.Tracker) error {
	_, err := fmt.Fprintln(out, summary(t.Agents(), t.NumVisitedHouses()))
	return err
}

func summary(agents, houses int) string {
	who := "Santa"
	if agents > 1 {
		who = "Santa and Robo-Santa"
	}
	return fmt.Sprintf("%s delivered presents to %d houses.", who, houses)
}

// watch replays moves in the terminal, then applies whatever the user skipped.
func watch(t *tracker.Tracker, moves []grid.Move, interval time.Duration) (*tracker.Tracker, error) {
	p := tea.NewProgram(New(t, moves, interval), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("replay failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("replay returned unexpected model %T", final)
	}
	m.walk.Finish()
	return m.walk.Tracker(), nil
}

type status uint

const (
	statusReplaying status = iota
	statusFinished
)

// Model is the top-level bubbletea model of the replay.
type Model struct {
	status status
	agents int
	houses int
	walk   walk.Model
}

func New(t *tracker.Tracker, moves []grid.Move, interval time.Duration) Model {
	return Model{
		status: statusReplaying,
		agents: t.Agents(),
		walk:   walk.New(t, moves, interval),
	}
}

func (m Model) Init() tea.Cmd {
	return m.walk.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case walk.FinishedMsg:
		m.status = statusFinished
		m.houses = msg.Houses
		return m, nil
	}
	m.walk, cmd = m.walk.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch m.status {
	case statusFinished:
		return m.walk.ViewWithFooter(summary(m.agents, m.houses) + "  ? — help, q — quit")
	}
	return m.walk.View()
}
