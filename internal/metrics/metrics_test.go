package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDecision(t *testing.T) {
	// Counters cannot be reset in prometheus, so we just test increments
	initialOK := testutil.ToFloat64(DecisionsTotal.WithLabelValues("approve", "ok"))
	initialErr := testutil.ToFloat64(DecisionsTotal.WithLabelValues("reject", "error"))

	ObserveDecision("approve", nil)
	ObserveDecision("reject", errors.New("boom"))

	assert.Equal(t, initialOK+1, testutil.ToFloat64(DecisionsTotal.WithLabelValues("approve", "ok")))
	assert.Equal(t, initialErr+1, testutil.ToFloat64(DecisionsTotal.WithLabelValues("reject", "error")))
}

func TestObserveTransition(t *testing.T) {
	initial := testutil.ToFloat64(TransitionsTotal.WithLabelValues("submitted"))

	ObserveTransition("submitted")

	assert.Equal(t, initial+1, testutil.ToFloat64(TransitionsTotal.WithLabelValues("submitted")))
}

func TestTimerObservesQueueBuildDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)
	timer.ObserveDuration(QueueBuildDuration)

	count := testutil.CollectAndCount(QueueBuildDuration)
	assert.GreaterOrEqual(t, count, 1, "QueueBuildDuration should have observations")
}

type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	stats fakePoolStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakePoolStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(time.Hour) // collects once immediately
	defer collector.Stop()

	// Give the goroutine a moment to run the initial collection
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}
