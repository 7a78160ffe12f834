// Package message shows transient notifications to the player.
package message

import (
	"io"

	"github.com/charmbracelet/log"
)

// Notifier accepts a user-facing message. Delivery is fire-and-forget.
type Notifier interface {
	Post(text string)
}

// DefaultDisplayTicks is used when a board is created with a non-positive
// display time.
const DefaultDisplayTicks = 120

type entry struct {
	text string
	left int
}

// Board queues messages and shows them one at a time, each for a fixed
// number of ticks.
type Board struct {
	queue        []entry
	displayTicks int
	logger       *log.Logger
}

// NewBoard creates a board. A nil logger discards log output.
func NewBoard(displayTicks int, logger *log.Logger) *Board {
	if displayTicks <= 0 {
		displayTicks = DefaultDisplayTicks
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{displayTicks: displayTicks, logger: logger}
}

// Post enqueues text behind any message already showing.
func (b *Board) Post(text string) {
	b.logger.Info("message", "text", text)
	b.queue = append(b.queue, entry{text: text, left: b.displayTicks})
}

// Tick counts down the message on screen and moves to the next one when
// its time runs out.
func (b *Board) Tick() {
	if len(b.queue) == 0 {
		return
	}
	b.queue[0].left--
	if b.queue[0].left <= 0 {
		b.queue = b.queue[1:]
	}
}

// Current returns the message being shown, or "" when the board is idle.
func (b *Board) Current() string {
	if len(b.queue) == 0 {
		return ""
	}
	return b.queue[0].text
}

// Pending returns the number of queued messages, including the current one.
func (b *Board) Pending() int {
	return len(b.queue)
}

var _ Notifier = (*Board)(nil)
