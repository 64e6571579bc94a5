// Package review implements the human review workflow over the content
// directory and the review queue file.
package review

import (
	"fmt"
	"log/slog"
	"os"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/infra/store"
)

// Service applies review decisions to stored articles.
type Service struct {
	content *store.ContentStore
	queue   *store.Queue
}

// NewService creates a review Service over the given stores.
func NewService(content *store.ContentStore, queue *store.Queue) *Service {
	return &Service{content: content, queue: queue}
}

// List returns the review queue in file order.
func (s *Service) List() ([]entity.ReviewQueueEntry, error) {
	return s.queue.List()
}

// Approve publishes the article with the given slug: the content file's
// status flips to published and the queue entry, if present, is marked
// approved. A missing content file fails the whole operation before the
// queue is touched.
func (s *Service) Approve(slug string) error {
	if slug == "" {
		return fmt.Errorf("approve: empty slug: %w", entity.ErrInvalidInput)
	}
	if err := s.content.Publish(slug); err != nil {
		return err
	}
	if err := s.queue.SetStatus(slug, entity.QueueApproved); err != nil {
		return fmt.Errorf("approve %s: %w", slug, err)
	}

	slog.Info("article approved", slog.String("slug", slug))
	return nil
}

// Reject removes the article with the given slug: the content file is
// deleted if it exists, and any matching queue entry is dropped. Rejecting a
// slug with no content file still cleans the queue and succeeds.
func (s *Service) Reject(slug string) error {
	if slug == "" {
		return fmt.Errorf("reject: empty slug: %w", entity.ErrInvalidInput)
	}
	if err := s.content.Delete(slug); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reject %s: %w", slug, err)
	}
	if err := s.queue.Remove(slug); err != nil {
		return fmt.Errorf("reject %s: %w", slug, err)
	}

	slog.Info("article rejected", slog.String("slug", slug))
	return nil
}
