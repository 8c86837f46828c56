package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// captureSink records delivered events for assertions.
type captureSink struct {
	mu        sync.Mutex
	submitted []string
	decisions []domain.Decision
}

func (s *captureSink) NotifySubmitted(_ context.Context, rev *domain.Revision, _ []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = append(s.submitted, rev.ID)
	return nil
}

func (s *captureSink) NotifyDecision(_ context.Context, _ *domain.Revision, _ *domain.User, decision domain.Decision, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions = append(s.decisions, decision)
	return nil
}

func (s *captureSink) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submitted), len(s.decisions)
}

func TestDispatcher_DeliversQueuedEvents(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(sink, 8)

	rev := &domain.Revision{ID: "rev-1", ArticleID: "art-1"}
	approver := &domain.User{ID: "user-1", Name: "Aiko"}

	require.NoError(t, d.NotifySubmitted(context.Background(), rev, []domain.User{*approver}))
	require.NoError(t, d.NotifyDecision(context.Background(), rev, approver, domain.DecisionApprove, "ok"))

	// Close drains the queue before stopping the worker.
	d.Close()

	submitted, decisions := sink.counts()
	assert.Equal(t, 1, submitted)
	assert.Equal(t, 1, decisions)
}

func TestDispatcher_NeverBlocksCaller(t *testing.T) {
	// A sink that blocks until released keeps the worker busy so the queue
	// fills up.
	release := make(chan struct{})
	blocking := &blockingSink{release: release}
	d := NewDispatcher(blocking, 1)

	rev := &domain.Revision{ID: "rev-1"}
	approver := &domain.User{ID: "user-1"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = d.NotifyDecision(context.Background(), rev, approver, domain.DecisionApprove, "")
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	close(release)
	d.Close()
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&captureSink{}, 1)
	d.Close()
	d.Close()

	// Enqueue after close is a silent drop, not a panic.
	assert.NoError(t, d.NotifySubmitted(context.Background(), &domain.Revision{ID: "rev-1"}, nil))
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) NotifySubmitted(ctx context.Context, _ *domain.Revision, _ []domain.User) error {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}

func (s *blockingSink) NotifyDecision(ctx context.Context, _ *domain.Revision, _ *domain.User, _ domain.Decision, _ string) error {
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return nil
}
