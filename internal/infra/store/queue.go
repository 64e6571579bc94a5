package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/observability/metrics"
)

// Queue manages the pending-review queue file, a JSON array of entries.
// Every mutation reads the whole file, modifies the slice in memory, and
// writes the whole file back.
type Queue struct {
	path string
}

// NewQueue creates a Queue backed by the file at path.
func NewQueue(path string) *Queue {
	return &Queue{path: path}
}

// Path returns the queue file location.
func (q *Queue) Path() string {
	return q.path
}

// List returns all queue entries in file order. A missing queue file is an
// empty queue, not an error.
func (q *Queue) List() ([]entity.ReviewQueueEntry, error) {
	data, err := os.ReadFile(q.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read review queue: %w", err)
	}

	var entries []entity.ReviewQueueEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse review queue: %w", err)
	}
	return entries, nil
}

// Append adds a pending-review entry for a newly written article.
func (q *Queue) Append(slug, title string, now time.Time) error {
	entries, err := q.List()
	if err != nil {
		return err
	}
	entries = append(entries, entity.ReviewQueueEntry{
		Slug:      slug,
		Title:     title,
		CreatedAt: now.UTC(),
		Status:    entity.QueuePendingReview,
	})
	return q.save(entries)
}

// SetStatus updates the status of the entry matching slug. When no entry
// matches, the queue file is left untouched.
func (q *Queue) SetStatus(slug, status string) error {
	entries, err := q.List()
	if err != nil {
		return err
	}

	changed := false
	for i := range entries {
		if entries[i].Slug == slug {
			entries[i].Status = status
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return q.save(entries)
}

// Remove drops every entry matching slug and writes the queue back.
func (q *Queue) Remove(slug string) error {
	entries, err := q.List()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Slug != slug {
			kept = append(kept, e)
		}
	}
	return q.save(kept)
}

func (q *Queue) save(entries []entity.ReviewQueueEntry) error {
	if entries == nil {
		entries = []entity.ReviewQueueEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode review queue: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(q.path), 0o755); err != nil {
		return fmt.Errorf("create review queue directory: %w", err)
	}
	if err := os.WriteFile(q.path, data, 0o644); err != nil {
		return fmt.Errorf("write review queue: %w", err)
	}

	pending := 0
	for _, e := range entries {
		if e.Status == entity.QueuePendingReview {
			pending++
		}
	}
	metrics.UpdateReviewQueueDepth(pending)
	return nil
}
