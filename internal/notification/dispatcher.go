package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
	"github.com/ekrsw/knowledge-app-sub000/internal/metrics"
)

// DefaultQueueSize is the dispatcher's default event buffer.
const DefaultQueueSize = 64

// deliveryTimeout bounds how long a single delivery may take.
const deliveryTimeout = 10 * time.Second

type event struct {
	deliver func(ctx context.Context) error
	kind    string
}

// Dispatcher decouples notification delivery from workflow transitions.
// Events are queued onto a bounded channel and delivered by a background
// worker; a full queue drops the event with a warning instead of blocking
// the caller. Dispatcher itself satisfies Sink, so services stay unaware of
// the asynchrony.
type Dispatcher struct {
	sink   Sink
	queue  chan event
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a Dispatcher delivering through sink and starts its
// worker. queueSize <= 0 falls back to DefaultQueueSize.
func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan event, queueSize),
		stop:  make(chan struct{}),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case ev, ok := <-d.queue:
			if !ok {
				return
			}
			d.deliver(ev)
		case <-d.stop:
			// drain whatever is already queued
			for {
				select {
				case ev, ok := <-d.queue:
					if !ok {
						return
					}
					d.deliver(ev)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(ev event) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := ev.deliver(ctx); err != nil {
		metrics.NotificationsTotal.WithLabelValues(ev.kind, "error").Inc()
		logger.Warn("notification delivery failed",
			slog.String("event", ev.kind),
			slog.String("error", err.Error()))
		return
	}
	metrics.NotificationsTotal.WithLabelValues(ev.kind, "ok").Inc()
}

// Close stops the worker after draining queued events.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.stop)
	d.wg.Wait()
}

// enqueue hands an event to the worker without ever blocking the caller.
func (d *Dispatcher) enqueue(ev event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.NotificationsDropped.WithLabelValues(ev.kind).Inc()
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.NotificationsDropped.WithLabelValues(ev.kind).Inc()
		logger.Warn("notification queue full, event dropped",
			slog.String("event", ev.kind))
	}
}

// NotifySubmitted queues a submission event. Always returns nil; delivery is
// asynchronous and best-effort.
func (d *Dispatcher) NotifySubmitted(_ context.Context, rev *domain.Revision, approvers []domain.User) error {
	revCopy := *rev
	approversCopy := make([]domain.User, len(approvers))
	copy(approversCopy, approvers)

	d.enqueue(event{
		kind: "submitted",
		deliver: func(ctx context.Context) error {
			return d.sink.NotifySubmitted(ctx, &revCopy, approversCopy)
		},
	})
	return nil
}

// NotifyDecision queues a decision event. Always returns nil; delivery is
// asynchronous and best-effort.
func (d *Dispatcher) NotifyDecision(_ context.Context, rev *domain.Revision, approver *domain.User, decision domain.Decision, comment string) error {
	revCopy := *rev
	approverCopy := *approver

	d.enqueue(event{
		kind: "decision",
		deliver: func(ctx context.Context) error {
			return d.sink.NotifyDecision(ctx, &revCopy, &approverCopy, decision, comment)
		},
	})
	return nil
}
