package morphan

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTrained is returned by Analyze and Test before Train was called.
	ErrNotTrained = errors.New("morphan: model not trained")

	// ErrCorruptPattern is wrapped by every *PatternError.
	ErrCorruptPattern = errors.New("morphan: corrupt pattern")
)

// PatternError reports a pattern that was not produced by DerivePattern:
// an unknown operation character, or a marker with no literal after it.
type PatternError struct {
	Pattern Pattern
	// Pos is the rune offset of the offending character.
	Pos int
	// Char is the offending character, or 0 for a dangling marker.
	Char rune
}

func (e *PatternError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("morphan: corrupt pattern %q: dangling marker at %d", string(e.Pattern), e.Pos)
	}
	return fmt.Sprintf("morphan: corrupt pattern %q: unexpected %q at %d", string(e.Pattern), e.Char, e.Pos)
}

func (e *PatternError) Unwrap() error { return ErrCorruptPattern }
