package grid

import (
	"fmt"
	"unicode/utf8"
)

// IllegalCharError is returned when an instruction is not one of ^ v > <.
type IllegalCharError struct {
	Char   rune
	Offset int  // rune offset in the parsed string
	Raw    bool // Char holds a byte that is not valid UTF-8
}

func (e *IllegalCharError) Error() string {
	if e.Raw {
		return fmt.Sprintf("illegal byte %#02x at offset %d", e.Char, e.Offset)
	}
	return fmt.Sprintf("illegal char %q at offset %d", e.Char, e.Offset)
}

// Move is a direction tagged with its position in the original instructions.
// The tag decides which agent performs the move, so moves must keep input order.
type Move struct {
	Index int
	Dir   Direction
}

// ParseDirection maps a single instruction character to a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return North, nil
	case 'v':
		return South, nil
	case '>':
		return East, nil
	case '<':
		return West, nil
	}
	return 0, &IllegalCharError{Char: r}
}

// ParseDirections parses every character of s in order.
// It stops at the first illegal character and returns no directions.
func ParseDirections(s string) ([]Direction, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	dirs := make([]Direction, len(moves))
	for i, m := range moves {
		dirs[i] = m.Dir
	}
	return dirs, nil
}

// ParseMoves parses s like ParseDirections and tags each direction with its index.
// Index and error offsets count runes; an invalid UTF-8 byte counts as one.
func ParseMoves(s string) ([]Move, error) {
	moves := make([]Move, 0, len(s))
	index := 0
	for i, r := range s {
		d, err := ParseDirection(r)
		if err != nil {
			if r == utf8.RuneError {
				if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
					return nil, &IllegalCharError{Char: rune(s[i]), Offset: index, Raw: true}
				}
			}
			return nil, &IllegalCharError{Char: r, Offset: index}
		}
		moves = append(moves, Move{Index: index, Dir: d})
		index++
	}
	return moves, nil
}
