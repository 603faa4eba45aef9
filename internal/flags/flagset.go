package flags

import (
	"flag"
	"fmt"
	"io"
	"sort"
)

type FlagSetWithVisit struct {
	fs       *flag.FlagSet
	out      io.Writer
	visited  map[string]bool
	aliases  map[string]string // short name → long name
	usageMap map[string]string // long name → usage string
}

func NewFlagSetWithVisit(name string, out io.Writer) *FlagSetWithVisit {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fsv := &FlagSetWithVisit{
		fs:       fs,
		out:      out,
		visited:  make(map[string]bool),
		aliases:  make(map[string]string),
		usageMap: make(map[string]string),
	}

	// Override default usage
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fsv.printUsage()
	}

	return fsv
}

// Register a bool flag with optional short alias
func (fsv *FlagSetWithVisit) BoolVar(p *bool, name, short string, value bool, usage string) {
	fsv.fs.BoolVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Register a string flag with optional short alias
func (fsv *FlagSetWithVisit) StringVar(p *string, name, short, value, usage string) {
	fsv.fs.StringVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Register an int flag with optional short alias
func (fsv *FlagSetWithVisit) IntVar(p *int, name, short string, value int, usage string) {
	fsv.fs.IntVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

func (fsv *FlagSetWithVisit) register(name, short, usage string) {
	if short != "" {
		fsv.aliases[short] = name
	}
	fsv.usageMap[name] = usage
}

// Expand short aliases and parse args
func (fsv *FlagSetWithVisit) Parse(args []string) error {
	args = fsv.expandAliases(args)
	err := fsv.fs.Parse(args)
	if err != nil {
		return err
	}
	fsv.fs.Visit(func(f *flag.Flag) {
		fsv.visited[f.Name] = true
	})
	return nil
}

// Args returns the non-flag arguments left after Parse.
func (fsv *FlagSetWithVisit) Args() []string {
	return fsv.fs.Args()
}

// Replace short flags (e.g. -r) with full names (e.g. -robot)
func (fsv *FlagSetWithVisit) expandAliases(args []string) []string {
	var expanded []string
	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}
		// Match: -r or -r=value
		if len(arg) >= 2 && arg[0] == '-' && arg[1] != '-' {
			name, value := arg[1:], ""
			for j := 1; j < len(arg); j++ {
				if arg[j] == '=' {
					name, value = arg[1:j], arg[j:]
					break
				}
			}
			if full, ok := fsv.aliases[name]; ok {
				expanded = append(expanded, "-"+full+value)
				continue
			}
		}
		expanded = append(expanded, arg)
	}
	return expanded
}

// Check if a specific flag was explicitly set
func (fsv *FlagSetWithVisit) IsCustom(name string) bool {
	return fsv.visited[name]
}

func (fsv *FlagSetWithVisit) Usage() {
	fsv.fs.Usage()
}

// Print formatted usage with short aliases
func (fsv *FlagSetWithVisit) printUsage() {
	var names []string
	var nameLen int
	for name := range fsv.usageMap {
		names = append(names, name)
		if len(name) > nameLen {
			nameLen = len(name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		usage := fsv.usageMap[name]
		short := ""
		for s, full := range fsv.aliases {
			if full == name {
				short = s
				break
			}
		}
		if short != "" {
			fmt.Fprintf(fsv.out, "  -%s, -%-*s\t%s\n", short, nameLen, name, usage)
		} else {
			fmt.Fprintf(fsv.out, "      -%-*s\t%s\n", nameLen, name, usage)
		}
	}
}
