package typewriter

import (
	"context"
	"time"
)

// Frame is one state of a reveal and the offset from the start at which it
// is shown.
type Frame struct {
	At   time.Duration `json:"at"`
	Text string        `json:"text"`
}

// Timeline computes the frames a Typewriter with the same text and options
// would emit, without waiting. The last frame's At is when OnComplete fires.
func Timeline(text string, opts Options) []Frame {
	runes := []rune(text)
	frames := []Frame{{At: 0, Text: ""}}
	if len(runes) == 0 {
		return frames
	}

	start := max(opts.Delay, 0)
	if opts.Interval <= 0 {
		return append(frames, Frame{At: start, Text: text})
	}
	for i := 1; i <= len(runes); i++ {
		frames = append(frames, Frame{
			At:   start + time.Duration(i)*opts.Interval,
			Text: string(runes[:i]),
		})
	}
	return frames
}

// Duration is how long the reveal takes from start to completion.
func Duration(text string, opts Options) time.Duration {
	frames := Timeline(text, opts)
	return frames[len(frames)-1].At
}

// Line is one entry of a Sequence.
type Line struct {
	Text    string
	Options Options
}

// Sequence reveals lines one after another; each line starts when the
// previous one completes.
type Sequence struct {
	Lines []Line
	Clock Clock
}

// Run reveals every line in order, calling emit with the line index and each
// prefix. It returns ctx.Err() if cancelled before the last line completes.
func (s Sequence) Run(ctx context.Context, emit func(line int, text string)) error {
	for i, l := range s.Lines {
		opts := l.Options
		if opts.Clock == nil {
			opts.Clock = s.Clock
		}
		for prefix := range New(l.Text, opts).Run(ctx) {
			emit(i, prefix)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Timelines returns the frames of every line, offset so that each line
// starts when the previous one ends.
func (s Sequence) Timelines() [][]Frame {
	out := make([][]Frame, 0, len(s.Lines))
	var offset time.Duration
	for _, l := range s.Lines {
		frames := Timeline(l.Text, l.Options)
		for i := range frames {
			frames[i].At += offset
		}
		offset = frames[len(frames)-1].At
		out = append(out, frames)
	}
	return out
}
