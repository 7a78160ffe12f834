// Package score accrues the survival score and persists the high score.
package score

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horde/internal/message"
)

// HighScoreMessage is posted once per level, the first tick the running
// score passes the loaded high score.
const HighScoreMessage = "High Score Reached!"

// ErrCorrupt is returned by a Store whose backing data is not an integer.
var ErrCorrupt = errors.New("score: corrupt high score")

// Store persists a single integer high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// State is the score as shown to the player.
type State struct {
	Score            float64
	HighScore        float64
	HighScoreReached bool
}

// Controller tracks one level's score against the persisted high score.
type Controller struct {
	state    State
	perTick  float64
	store    Store
	notifier message.Notifier
	logger   *log.Logger
	finished bool
}

// NewController loads the high score from store. On error the controller
// still starts from a high score of zero and the error is returned so the
// caller can decide whether to continue.
func NewController(perTick float64, store Store, notifier message.Notifier, logger *log.Logger) (*Controller, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		perTick:  perTick,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
	if store == nil {
		return c, nil
	}
	high, err := store.Load()
	if err != nil {
		return c, fmt.Errorf("score: load high score: %w", err)
	}
	c.state.HighScore = float64(high)
	return c, nil
}

// Tick accrues one tick of score while the player is alive, then checks
// the high score latch. Once latched the high score follows the score.
func (c *Controller) Tick(alive bool) {
	if c.finished {
		return
	}
	if alive {
		c.state.Score += c.perTick
	}

	if !c.state.HighScoreReached {
		if c.state.Score > c.state.HighScore {
			c.state.HighScoreReached = true
			c.logger.Info("high score reached", "previous", int(c.state.HighScore))
			if c.notifier != nil {
				c.notifier.Post(HighScoreMessage)
			}
		}
	}
	if c.state.HighScoreReached {
		c.state.HighScore = c.state.Score
	}
}

// Finish ends the level. The integer score is written only if the high
// score was beaten; later calls do nothing.
func (c *Controller) Finish() error {
	if c.finished {
		return nil
	}
	c.finished = true
	if !c.state.HighScoreReached || c.store == nil {
		return nil
	}
	final := int(c.state.Score)
	if err := c.store.Save(final); err != nil {
		return fmt.Errorf("score: save high score: %w", err)
	}
	c.logger.Info("high score saved", "score", final)
	return nil
}

// State returns a snapshot of the current score.
func (c *Controller) State() State {
	return c.state
}

// Finished reports whether Finish has run.
func (c *Controller) Finished() bool {
	return c.finished
}
