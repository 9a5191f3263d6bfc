// Package typewriter reveals a string one character at a time on a timer.
//
// A Typewriter is a single run: it emits the empty prefix, waits for the
// start delay, then appends one rune per interval until the whole text is
// shown, and finally calls OnComplete once. Cancelling the context stops the
// run, releases its timer and skips OnComplete.
package typewriter

import (
	"context"
	"sync/atomic"
	"time"
)

// Options configures a reveal.
type Options struct {
	// Interval between characters. Zero or negative reveals the text in one step.
	Interval time.Duration
	// Delay before the first character.
	Delay time.Duration
	// OnComplete is called once after the final character has been delivered.
	OnComplete func()
	// Clock defaults to RealClock.
	Clock Clock
}

// Typewriter is one reveal of one string.
type Typewriter struct {
	text    []rune
	opts    Options
	started atomic.Bool
}

// New creates a Typewriter for text.
func New(text string, opts Options) *Typewriter {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return &Typewriter{text: []rune(text), opts: opts}
}

// Text returns the full target string.
func (t *Typewriter) Text() string {
	return string(t.text)
}

// Run starts the reveal and returns the stream of prefixes. The channel
// closes when the text is complete or ctx is cancelled. A Typewriter runs
// once; later calls return an already closed channel.
//
// The caller must keep receiving until the channel closes or cancel ctx.
func (t *Typewriter) Run(ctx context.Context) <-chan string {
	out := make(chan string)
	if !t.started.CompareAndSwap(false, true) {
		close(out)
		return out
	}
	go t.run(ctx, out)
	return out
}

func (t *Typewriter) run(ctx context.Context, out chan<- string) {
	defer close(out)

	if !send(ctx, out, "") {
		return
	}
	if len(t.text) == 0 {
		t.complete()
		return
	}

	if t.opts.Delay > 0 && !t.wait(ctx, t.opts.Delay) {
		return
	}

	if t.opts.Interval <= 0 {
		if send(ctx, out, string(t.text)) {
			t.complete()
		}
		return
	}

	for i := 1; i <= len(t.text); i++ {
		if !t.wait(ctx, t.opts.Interval) {
			return
		}
		if !send(ctx, out, string(t.text[:i])) {
			return
		}
	}
	t.complete()
}

func (t *Typewriter) wait(ctx context.Context, d time.Duration) bool {
	timer := t.opts.Clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C():
		return true
	}
}

func (t *Typewriter) complete() {
	if t.opts.OnComplete != nil {
		t.opts.OnComplete()
	}
}

func send(ctx context.Context, out chan<- string, s string) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- s:
		return true
	}
}

// Collect runs a fresh reveal of text to completion and returns every state.
func Collect(ctx context.Context, text string, opts Options) ([]string, error) {
	var states []string
	for s := range New(text, opts).Run(ctx) {
		states = append(states, s)
	}
	return states, ctx.Err()
}
