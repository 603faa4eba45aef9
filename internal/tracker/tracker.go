package tracker

import "github.com/vinser/housewalk/internal/grid"

// Supported agent counts.
const (
	Solo      = 1 // Santa alone
	WithRobot = 2 // Santa and Robo-Santa take turns
)

// Agent indexes when running WithRobot.
const (
	Human = 0
	Robot = 1
)

// Tracker follows one or more agents and records every house they reach.
// Move i is performed by agent i % Agents().
type Tracker struct {
	positions []grid.Position
	visited   map[grid.Position]struct{}
	applied   int
	min, max  grid.Position
}

// New returns a tracker with all agents at the origin and the origin visited.
func New(agents int) *Tracker {
	if agents < 1 {
		agents = 1
	}
	t := &Tracker{
		positions: make([]grid.Position, agents),
		visited:   make(map[grid.Position]struct{}),
	}
	t.visit(grid.Origin)
	return t
}

func (t *Tracker) visit(p grid.Position) {
	t.visited[p] = struct{}{}
	t.min.X = min(t.min.X, p.X)
	t.min.Y = min(t.min.Y, p.Y)
	t.max.X = max(t.max.X, p.X)
	t.max.Y = max(t.max.Y, p.Y)
}

// PerformMove moves the agent selected by the move index.
func (t *Tracker) PerformMove(m grid.Move) {
	agent := m.Index % len(t.positions)
	if agent < 0 {
		agent += len(t.positions)
	}
	t.move(agent, m.Dir)
}

// PerformMoves applies moves in the given order.
func (t *Tracker) PerformMoves(moves []grid.Move) {
	for _, m := range moves {
		t.PerformMove(m)
	}
}

func (t *Tracker) move(agent int, d grid.Direction) {
	next := t.positions[agent].Add(d)
	t.positions[agent] = next
	t.visit(next)
	t.applied++
}

// NumVisitedHouses returns how many distinct cells were occupied, origin included.
func (t *Tracker) NumVisitedHouses() int {
	return len(t.visited)
}

// Visited reports whether p was ever occupied.
func (t *Tracker) Visited(p grid.Position) bool {
	_, ok := t.visited[p]
	return ok
}

// Agents returns the number of tracked agents.
func (t *Tracker) Agents() int {
	return len(t.positions)
}

// Pos returns the current position of an agent.
func (t *Tracker) Pos(agent int) grid.Position {
	return t.positions[agent]
}

// CurrentPos returns the position of the first agent.
func (t *Tracker) CurrentPos() grid.Position {
	return t.positions[0]
}

// CurrentHumanPos returns Santa's position.
func (t *Tracker) CurrentHumanPos() grid.Position {
	return t.positions[Human]
}

// CurrentRoboPos returns Robo-Santa's position, or Santa's when running Solo.
func (t *Tracker) CurrentRoboPos() grid.Position {
	if len(t.positions) <= Robot {
		return t.positions[Human]
	}
	return t.positions[Robot]
}

// Bounds returns the corners of the smallest rectangle holding every visited cell.
func (t *Tracker) Bounds() (lo, hi grid.Position) {
	return t.min, t.max
}

// MovesApplied returns how many moves were performed so far.
func (t *Tracker) MovesApplied() int {
	return t.applied
}
