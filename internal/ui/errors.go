package ui

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/renato0307/clipkeys/internal/domain"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minLineWidth   = 10
	truncationMark = "..."
)

// describeError turns domain errors into short user-facing sentences.
// Anything else is shown as-is.
func describeError(err error) string {
	var dup *domain.DuplicateChordError
	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("%s is already used by %s", dup.Chord, dup.Owner)
	case errors.Is(err, domain.ErrEmptyChord):
		return "press a key combination before saving"
	}
	return err.Error()
}

// formatErrorForDisplay formats an error for the status line.
// The text is word-wrapped to maxWidth, limited to maxErrorLines and
// truncated with "..." when it does not fit. The "Error: " prefix counts
// against the first line.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := describeError(err)
	if message == "" {
		return errorPrefix + "unknown error"
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	lineWidth := max(maxWidth, minLineWidth)
	firstLineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth)

	var lines []string
	var current strings.Builder
	limit := firstLineWidth
	truncated := false

	for _, word := range words {
		currentLen := utf8.RuneCountInString(current.String())
		if currentLen > 0 && currentLen+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
			limit = lineWidth
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := lineWidth - utf8.RuneCountInString(truncationMark)
		if keep > 0 && len(last) > keep {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
