package notification

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

const (
	defaultChannelTimeout = 10 * time.Second
	recentResultsCap      = 200
)

// Channel is one independent delivery mechanism for a notification.
//
// Accepts lets a channel opt out of events it has no business delivering
// (e.g. the customer channel ignores internal-only stages); Send failures
// are isolated per channel by the dispatcher.

type Channel interface {
	Name() string
	Accepts(ev Event) bool
	Send(ctx context.Context, ev Event) error
}

// ChannelResult is the outcome of one channel invocation.

type ChannelResult struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// DispatchResult aggregates per-channel outcomes for a single event. It is a
// report, never an error: notification is fire-and-forget relative to the
// state mutation that triggered it.

type DispatchResult struct {
	Kind         EventKind       `json:"kind"`
	RfqID        string          `json:"rfq_id,omitempty"`
	Status       string          `json:"status,omitempty"`
	Deduplicated bool            `json:"deduplicated,omitempty"`
	At           time.Time       `json:"at"`
	Channels     []ChannelResult `json:"channels,omitempty"`
}

// Dispatcher fans a notification event out to every registered channel.
//
// Guarantees:
//   - one channel's failure never prevents another channel's attempt
//   - every Send is bounded by a timeout; a timed-out channel reports
//     failed(timeout), it is never left pending
//   - the same (rfq id, status) pair dispatches at most once per process,
//     so an idempotent retry of a transition cannot double-email a customer
//   - the last results stay retrievable through Recent for observability

type Dispatcher struct {
	channels []Channel
	timeout  time.Duration

	mu     sync.Mutex
	seen   map[string]struct{}
	recent []DispatchResult
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		timeout:  defaultChannelTimeout,
		seen:     make(map[string]struct{}),
	}
}

// WithChannelTimeout overrides the per-channel send timeout.
func (d *Dispatcher) WithChannelTimeout(timeout time.Duration) *Dispatcher {
	if timeout > 0 {
		d.timeout = timeout
	}
	return d
}

// Notify invokes every accepting channel for ev and reports the outcome.
// It never returns an error.
func (d *Dispatcher) Notify(ctx context.Context, ev Event) DispatchResult {
	res := DispatchResult{
		Kind:  ev.Kind,
		RfqID: ev.Rfq.ID,
		At:    time.Now().UTC(),
	}
	if ev.Kind == EventRfqStatusChanged {
		res.Status = string(ev.Status)
	}

	if key := ev.DedupKey(); key != "" && !d.markSeen(key) {
		log.Printf("[notify][dispatch] duplicate suppressed kind=%s rfq_id=%s status=%s", ev.Kind, ev.Rfq.ID, ev.Status)
		res.Deduplicated = true
		d.record(res)
		return res
	}

	for _, ch := range d.channels {
		res.Channels = append(res.Channels, d.send(ctx, ch, ev))
	}
	d.record(res)
	return res
}

func (d *Dispatcher) send(ctx context.Context, ch Channel, ev Event) ChannelResult {
	if !ch.Accepts(ev) {
		return ChannelResult{Channel: ch.Name(), Skipped: true}
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := ch.Send(sendCtx, ev)
	if err == nil {
		log.Printf("[notify][%s] sent kind=%s rfq_id=%s status=%s", ch.Name(), ev.Kind, ev.Rfq.ID, ev.Status)
		return ChannelResult{Channel: ch.Name(), Sent: true}
	}

	reason := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	}
	log.Printf("[notify][%s] failed kind=%s rfq_id=%s reason=%s", ch.Name(), ev.Kind, ev.Rfq.ID, reason)
	return ChannelResult{Channel: ch.Name(), Reason: reason}
}

// markSeen returns false when key was already dispatched.
func (d *Dispatcher) markSeen(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

func (d *Dispatcher) record(res DispatchResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recent = append(d.recent, res)
	if len(d.recent) > recentResultsCap {
		d.recent = d.recent[len(d.recent)-recentResultsCap:]
	}
}

// Recent returns a copy of the retained dispatch reports, newest last.
func (d *Dispatcher) Recent() []DispatchResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DispatchResult, len(d.recent))
	copy(out, d.recent)
	return out
}
