package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vinser/housewalk/internal/tracker"
)

// ErrSyntax wraps errors from the flag package, which has already
// printed the message and usage.
var ErrSyntax = errors.New("invalid command line")

const (
	DefaultInput = "input.txt"
	DefaultSpeed = 40 // milliseconds per replayed move
)

// Flags stores the parsed command-line options
type Flags struct {
	Input  string
	Agents int
	Watch  bool
	Speed  int
	About  bool
}

// Parse parses command-line arguments (without the program name).
// flag.ErrHelp is returned when -h or -help was requested.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	var input string
	var robot bool
	var watch bool
	var speed int
	var about bool

	fsv := NewFlagSetWithVisit(name, out)
	fsv.StringVar(&input, "input", "i", DefaultInput, "File with move instructions (^ v > <)")
	fsv.BoolVar(&robot, "robot", "r", false, "Santa and Robo-Santa take turns following the instructions")
	fsv.BoolVar(&watch, "watch", "w", false, "Replay the walk in the terminal before reporting")
	fsv.IntVar(&speed, "speed", "s", DefaultSpeed, "Replay step interval in milliseconds")
	fsv.BoolVar(&about, "about", "a", false, "Show help about the instructions format")

	if err := fsv.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	// A single positional argument may name the input file
	switch rest := fsv.Args(); {
	case len(rest) == 1 && !fsv.IsCustom("input"):
		input = rest[0]
	case len(rest) > 0:
		fsv.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", rest)
	}

	if input == "" {
		fsv.Usage()
		return nil, errors.New("input file name is empty")
	}
	if speed <= 0 {
		fsv.Usage()
		return nil, fmt.Errorf("invalid replay speed: %d. Use a positive number of milliseconds", speed)
	}
	if fsv.IsCustom("speed") && !watch {
		fsv.Usage()
		return nil, errors.New("speed option is only valid with -watch")
	}

	agents := tracker.Solo
	if robot {
		agents = tracker.WithRobot
	}

	return &Flags{
		Input:  input,
		Agents: agents,
		Watch:  watch,
		Speed:  speed,
		About:  about,
	}, nil
}
