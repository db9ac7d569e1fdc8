package ports

import "context"

// AssignmentSaver receives the full action -> chord label set after each
// successful commit. Implementations must not block on the write; the error
// only reports that the snapshot could not be accepted.
type AssignmentSaver interface {
	SaveAssignments(assignments map[string]string) error
}

// AssignmentReader loads stored hotkey assignments
type AssignmentReader interface {
	LoadAssignments(ctx context.Context) (map[string]string, error)
}

// AssignmentWriter replaces or removes stored hotkey assignments
type AssignmentWriter interface {
	DeleteAssignments(ctx context.Context, actions ...string) error
	ReplaceAssignments(ctx context.Context, assignments map[string]string) error
}

// AssignmentRepository is the composite interface
type AssignmentRepository interface {
	AssignmentReader
	AssignmentWriter
	Close() error
}
