package notifier

import "context"

// NoOpNotifier is a no-operation implementation of the Notifier interface.
// It is used when notifications are disabled to avoid nil checks in the
// pipeline.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyRun does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyRun(ctx context.Context, report RunReport) error {
	return nil
}
