package ui

import "sync/atomic"

// Control is a submit button: one label when idle, another while its
// request is in flight. Begin refuses a second submission until End.
type Control struct {
	label     string
	busyLabel string
	busy      atomic.Bool
}

func NewControl(label, busyLabel string) *Control {
	return &Control{label: label, busyLabel: busyLabel}
}

// Begin marks the control busy. It returns false if it already was.
func (c *Control) Begin() bool {
	return c.busy.CompareAndSwap(false, true)
}

// End re-enables the control. Call it with defer right after Begin.
func (c *Control) End() {
	c.busy.Store(false)
}

func (c *Control) Busy() bool {
	return c.busy.Load()
}

// Label is the text to show now.
func (c *Control) Label() string {
	if c.Busy() {
		return c.busyLabel
	}
	return c.label
}

// SetLabels replaces both labels after a language switch.
func (c *Control) SetLabels(label, busyLabel string) {
	c.label, c.busyLabel = label, busyLabel
}
