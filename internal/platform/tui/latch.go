package tui

import "github.com/vovakirdan/vania/internal/core"

// holdLatch keeps held actions active between key repeats. Terminals only
// send key presses, never releases, so an action stays held for window ticks
// after its last press.
type holdLatch struct {
	window int
	left   map[core.Action]int
}

func newHoldLatch(window int) *holdLatch {
	return &holdLatch{
		window: max(window, 1),
		left:   make(map[core.Action]int),
	}
}

// Press holds a. Opposite directions cancel each other.
func (l *holdLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(l.left, core.ActionRight)
	case core.ActionRight:
		delete(l.left, core.ActionLeft)
	}
	l.left[a] = l.window
}

// Release drops a immediately.
func (l *holdLatch) Release(a core.Action) {
	delete(l.left, a)
}

// Reset drops every held action.
func (l *holdLatch) Reset() {
	clear(l.left)
}

// Apply sets every held action on f.
func (l *holdLatch) Apply(f *core.InputFrame) {
	for a := range l.left {
		f.Set(a)
	}
}

// Tick ages held actions by one tick.
func (l *holdLatch) Tick() {
	for a, n := range l.left {
		if n <= 1 {
			delete(l.left, a)
			continue
		}
		l.left[a] = n - 1
	}
}

// Held reports whether a is currently held.
func (l *holdLatch) Held(a core.Action) bool {
	return l.left[a] > 0
}

// latched reports whether a is a continuous action that needs latching.
func latched(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionRun:
		return true
	}
	return false
}
