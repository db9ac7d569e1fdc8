package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateChord   = errors.New("combo already in use")
	ErrEmptyChord       = errors.New("no key combination captured")
	ErrInvalidChord     = errors.New("invalid key combination")
	ErrNoCaptureSession = errors.New("no capture session open")
	ErrUnknownAction    = errors.New("unknown action")
)

// DuplicateChordError reports the action that already owns a chord
type DuplicateChordError struct {
	Chord string
	Owner string
}

func (e *DuplicateChordError) Error() string {
	return fmt.Sprintf("%s is already assigned to '%s'", e.Chord, e.Owner)
}

// Unwrap makes errors.Is(err, ErrDuplicateChord) hold
func (e *DuplicateChordError) Unwrap() error {
	return ErrDuplicateChord
}
