package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/renato0307/clipkeys/internal/logging"
	"github.com/renato0307/clipkeys/internal/ports"
)

// ErrPersisterClosed is returned when saving after Close
var ErrPersisterClosed = errors.New("assignment persister is closed")

// DefaultSaveTimeout bounds a single repository write
const DefaultSaveTimeout = 10 * time.Second

// SaveResult reports the outcome of one background write
type SaveResult struct {
	Err    error
	Labels map[string]string
}

// AssignmentPersister writes assignment snapshots in the background.
// Only the latest unsent snapshot is kept; older ones are superseded.
type AssignmentPersister struct {
	closed  bool
	done    chan struct{}
	mu      sync.Mutex
	pending chan map[string]string
	repo    ports.AssignmentWriter
	results chan SaveResult
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.AssignmentSaver = (*AssignmentPersister)(nil)

// NewAssignmentPersister starts the background writer
func NewAssignmentPersister(repo ports.AssignmentWriter) *AssignmentPersister {
	p := &AssignmentPersister{
		done:    make(chan struct{}),
		pending: make(chan map[string]string, 1),
		repo:    repo,
		results: make(chan SaveResult, 16),
		timeout: DefaultSaveTimeout,
	}
	go p.run()
	return p
}

// SaveAssignments queues a snapshot and returns immediately
func (p *AssignmentPersister) SaveAssignments(assignments map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPersisterClosed
	}

	snapshot := maps.Clone(assignments)

	// Drop an unsent older snapshot so the newest one wins
	select {
	case <-p.pending:
		logging.Logger.Debug("Superseded pending hotkey snapshot")
	default:
	}
	p.pending <- snapshot
	return nil
}

// Results delivers one SaveResult per completed write. The channel is
// closed after Close has flushed the last snapshot.
func (p *AssignmentPersister) Results() <-chan SaveResult {
	return p.results
}

// Close stops intake, writes any pending snapshot and waits for the writer
func (p *AssignmentPersister) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.pending)
	p.mu.Unlock()

	<-p.done
	return nil
}

func (p *AssignmentPersister) run() {
	defer close(p.done)
	defer close(p.results)

	for snapshot := range p.pending {
		err := p.write(snapshot)
		result := SaveResult{Err: err, Labels: snapshot}

		select {
		case p.results <- result:
		default:
			logging.Logger.Warn("Dropping save result, nobody is reading", "error", err)
		}
	}
}

func (p *AssignmentPersister) write(snapshot map[string]string) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	logging.Logger.Debug("Saving hotkey assignments", "count", len(snapshot))
	if err := p.repo.ReplaceAssignments(ctx, snapshot); err != nil {
		logging.Logger.Error("Failed to save hotkey assignments", "error", err)
		return fmt.Errorf("failed to save hotkeys: %w", err)
	}

	logging.Logger.Info("Hotkey assignments saved", "count", len(snapshot))
	return nil
}
