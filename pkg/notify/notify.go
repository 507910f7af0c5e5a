// Package notify delivers record notifications to per-group webhooks in the
// background. Delivery is best effort: failures are logged and never retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/funfungun/1-seven-0/pkg/metrics"
)

// RecordEvent describes a newly created exercise record.
type RecordEvent struct {
	WebhookURL   string
	GroupName    string
	ExerciseType string
	Author       string
	Time         int
	Distance     float64
	CreatedAt    time.Time
}

type job struct {
	url  string
	body []byte
}

// Dispatcher posts webhook payloads from a bounded queue with a fixed worker pool.
type Dispatcher struct {
	client  *http.Client
	queue   chan job
	workers int
	metrics *metrics.Metrics

	wg        sync.WaitGroup
	startOnce sync.Once

	// mu guards stopped; senders hold it shared so Stop never closes the
	// queue under an in-flight send.
	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a dispatcher; m may be nil.
func NewDispatcher(workers, queueSize int, timeout time.Duration, m *metrics.Metrics) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		client:  &http.Client{Timeout: timeout},
		queue:   make(chan job, queueSize),
		workers: workers,
		metrics: m,
	}
}

// Start launches the workers. They exit once Stop drains the queue.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.run()
		}
	})
}

// Stop closes the queue and waits for queued deliveries, or for ctx to end.
// Notifications enqueued after Stop are dropped.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RecordCreated enqueues a Discord embed for ev. It never blocks: when the
// queue is full or the dispatcher is stopped the notification is dropped.
func (d *Dispatcher) RecordCreated(ev RecordEvent) {
	if ev.WebhookURL == "" {
		return
	}
	body, err := json.Marshal(discordPayload(ev))
	if err != nil {
		slog.Warn("webhook payload encoding failed", "error", err)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.drop("dispatcher stopped", ev)
		return
	}
	select {
	case d.queue <- job{url: ev.WebhookURL, body: body}:
	default:
		d.drop("queue full", ev)
	}
}

func (d *Dispatcher) drop(reason string, ev RecordEvent) {
	slog.Warn("dropping webhook notification", "reason", reason, "group", ev.GroupName)
	if d.metrics != nil {
		d.metrics.WebhookDropped.Inc()
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.queue {
		result := "ok"
		if err := d.deliver(j); err != nil {
			result = "error"
			slog.Warn("webhook delivery failed", "url", j.url, "error", err)
		}
		if d.metrics != nil {
			d.metrics.WebhookDeliveries.WithLabelValues(result).Inc()
		}
	}
}

func (d *Dispatcher) deliver(j job) error {
	req, err := http.NewRequest(http.MethodPost, j.url, bytes.NewReader(j.body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
