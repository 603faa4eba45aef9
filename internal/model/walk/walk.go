package walk

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/housewalk/internal/grid"
	"github.com/vinser/housewalk/internal/model/about"
	"github.com/vinser/housewalk/internal/render"
	"github.com/vinser/housewalk/internal/style"
	"github.com/vinser/housewalk/internal/tracker"
)

const (
	minInterval = time.Millisecond
	maxInterval = 2 * time.Second

	defaultWidth  = 60
	defaultHeight = 20
	headerRows    = 3 // counters, progress bar, extent
)

const (
	cellSanta   = "S"
	cellRobot   = "R"
	cellBoth    = "*"
	cellOrigin  = "+"
	cellVisited = "o"
	cellEmpty   = "."
)

// Model replays moves on a tracker one per tick.
type Model struct {
	tracker  *tracker.Tracker
	moves    []grid.Move
	next     int
	interval time.Duration
	paused   bool

	showAbout bool
	about     about.Model
	progress  progress.Model

	termWidth  int
	termHeight int
}

// TickMsg advances the replay by one move.
type TickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FinishedMsg is sent once the last move has been applied.
type FinishedMsg struct {
	Houses int
}

func finishedCmd(houses int) tea.Cmd {
	return func() tea.Msg {
		return FinishedMsg{Houses: houses}
	}
}

// New returns a replay that applies every move in moves to t, in order,
// whatever t has already seen.
func New(t *tracker.Tracker, moves []grid.Move, interval time.Duration) Model {
	from, to := style.ProgressColors()
	return Model{
		tracker:  t,
		moves:    moves,
		interval: clampInterval(interval),
		about:    about.New(defaultWidth, defaultHeight),
		progress: progress.New(progress.WithGradient(from, to), progress.WithWidth(defaultWidth)),
	}
}

func clampInterval(d time.Duration) time.Duration {
	return min(max(d, minInterval), maxInterval)
}

// Tracker returns the replayed tracker.
func (m Model) Tracker() *tracker.Tracker {
	return m.tracker
}

// Done reports whether all moves were applied.
func (m Model) Done() bool {
	return m.next >= len(m.moves)
}

// Finish applies all remaining moves at once.
func (m *Model) Finish() {
	m.tracker.PerformMoves(m.moves[m.next:])
	m.next = len(m.moves)
}

func (m *Model) step() {
	m.tracker.PerformMove(m.moves[m.next])
	m.next++
}

func (m Model) Init() tea.Cmd {
	if m.Done() {
		return finishedCmd(m.tracker.NumVisitedHouses())
	}
	return tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.showAbout {
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.showAbout = false
			return m, nil
		case TickMsg:
			// replay holds while the help page is open
			if m.Done() {
				return m, nil
			}
			return m, tick(m.interval)
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.about, cmd = m.about.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "+", "=":
			m.interval = clampInterval(m.interval / 2)
		case "-", "_":
			m.interval = clampInterval(m.interval * 2)
		case "enter":
			if !m.Done() {
				m.Finish()
				return m, finishedCmd(m.tracker.NumVisitedHouses())
			}
		case "?":
			m.showAbout = true
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.about.SetSize(msg.Width, msg.Height)
		m.progress.Width = max(msg.Width-4, 10)
		return m, tea.ClearScreen
	case TickMsg:
		if m.Done() {
			return m, nil
		}
		if m.paused {
			return m, tick(m.interval)
		}
		m.step()
		if m.Done() {
			return m, finishedCmd(m.tracker.NumVisitedHouses())
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	if m.showAbout {
		return m.about.View()
	}
	return m.view(m.footer())
}

// ViewWithFooter renders the replay with a caller supplied footer.
func (m Model) ViewWithFooter(footer string) string {
	if m.showAbout {
		return m.about.View()
	}
	return m.view(footer)
}

func (m Model) view(footer string) string {
	width, height := m.gridSize()
	header := []string{
		m.headerText(),
		m.progress.ViewAs(m.fraction()),
		m.extentText(),
	}
	return render.Page(m.title(), header, m.renderGrid(width, height), footer,
		width, height+render.ChromeRows(headerRows), m.termWidth, m.termHeight)
}

func (m Model) title() string {
	if m.tracker.Agents() > 1 {
		return "Santa and Robo-Santa"
	}
	return "Santa"
}

func (m Model) fraction() float64 {
	if len(m.moves) == 0 {
		return 1
	}
	return float64(m.next) / float64(len(m.moves))
}

func (m Model) headerText() string {
	text := style.PlayHeader.Render(fmt.Sprintf("Houses: %d  Move: %d/%d  Step: %s",
		m.tracker.NumVisitedHouses(), m.tracker.MovesApplied(), len(m.moves), m.interval))
	if m.paused {
		text += " " + style.Paused.Render("PAUSED")
	}
	return text
}

// extentText describes the rectangle covering every visited house.
func (m Model) extentText() string {
	lo, hi := m.tracker.Bounds()
	return style.Extent.Render(fmt.Sprintf("Area: x %d..%d, y %d..%d (%dx%d)",
		lo.X, hi.X, lo.Y, hi.Y, hi.X-lo.X+1, hi.Y-lo.Y+1))
}

func (m Model) footer() string {
	if m.Done() {
		return "done! ? — help, q — quit"
	}
	return "space — pause, +/- — speed, enter — skip, ? — help, q — quit"
}

func (m Model) gridSize() (width, height int) {
	width, height = defaultWidth, defaultHeight
	if m.termWidth > 0 {
		width = max(m.termWidth-2, 10)
	}
	if m.termHeight > 0 {
		height = max(m.termHeight-render.ChromeRows(headerRows), 3)
	}
	return width, height
}

// renderGrid draws a width x height window centered on Santa, north up.
func (m Model) renderGrid(width, height int) string {
	santa := m.tracker.CurrentHumanPos()
	left := santa.X - width/2
	top := santa.Y + height/2

	var sb strings.Builder
	for row := 0; row < height; row++ {
		y := top - row
		for col := 0; col < width; col++ {
			sb.WriteString(m.renderCell(grid.Position{X: left + col, Y: y}))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Model) renderCell(p grid.Position) string {
	santa := p == m.tracker.CurrentHumanPos()
	robot := m.tracker.Agents() > 1 && p == m.tracker.CurrentRoboPos()
	switch {
	case santa && robot:
		return style.Both.Render(cellBoth)
	case santa:
		return style.Santa.Render(cellSanta)
	case robot:
		return style.RoboSanta.Render(cellRobot)
	case p == grid.Origin:
		return style.Origin.Render(cellOrigin)
	case m.tracker.Visited(p):
		return style.Visited.Render(cellVisited)
	}
	return style.Empty.Render(cellEmpty)
}
