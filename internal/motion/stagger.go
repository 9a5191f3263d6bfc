package motion

import (
	"fmt"
	"time"
)

// Stagger spaces out the entrance of sibling elements: the first starts
// after Initial, each following one Each later.
type Stagger struct {
	Initial time.Duration
	Each    time.Duration
}

// Entrance staggers used by the page sections.
var (
	SectionStagger  = Stagger{Initial: 100 * time.Millisecond, Each: 200 * time.Millisecond}
	CategoryStagger = Stagger{Each: 200 * time.Millisecond}
	SkillStagger    = Stagger{Each: 100 * time.Millisecond}
	BadgeStagger    = Stagger{Each: 100 * time.Millisecond}
)

// Delay returns the delay of the i-th sibling. Negative indexes are treated as 0.
func (s Stagger) Delay(i int) time.Duration {
	return s.Initial + time.Duration(max(i, 0))*s.Each
}

// Then returns a stagger that starts after this one's i-th delay, for
// nesting children under a staggered parent.
func (s Stagger) Then(i int, child Stagger) Stagger {
	return Stagger{Initial: s.Delay(i) + child.Initial, Each: child.Each}
}

// CSS formats a delay as a CSS time value, e.g. "0.3s".
func CSS(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}
