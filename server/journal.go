package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"llamabot/server/store"
)

const (
	journalQueueSize = 256
	journalTimeout   = 5 * time.Second
)

// journalQueue writes decision rows from a single goroutine, off the request
// path. A full queue drops the row.
type journalQueue struct {
	j    Journal
	log  zerolog.Logger
	rows chan store.Decision
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newJournalQueue(j Journal, log zerolog.Logger, size int) *journalQueue {
	q := &journalQueue{
		j:    j,
		log:  log,
		rows: make(chan store.Decision, size),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

// Enqueue hands a row to the writer without blocking. It reports false when
// the row was dropped.
func (q *journalQueue) Enqueue(row store.Decision) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.log.Warn().Str("rid", row.RequestID).Msg("journal closed, decision dropped")
		return false
	}
	select {
	case q.rows <- row:
		return true
	default:
		q.log.Warn().Str("rid", row.RequestID).Msg("journal queue full, decision dropped")
		return false
	}
}

func (q *journalQueue) run() {
	defer close(q.done)
	for row := range q.rows {
		q.insert(row)
	}
}

func (q *journalQueue) insert(row store.Decision) {
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	id, err := q.j.InsertDecision(ctx, row)
	if err != nil {
		q.log.Warn().Err(err).Str("rid", row.RequestID).Msg("journal insert failed")
		return
	}
	q.log.Debug().Str("rid", row.RequestID).Int64("decision_id", id).Msg("journaled")
}

// Close stops accepting rows and waits until the queued ones are written or
// ctx ends. It is safe to call more than once.
func (q *journalQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.rows)
	}
	q.mu.Unlock()
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
