// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	t := &Time{
		eventPollDelay: cfg.EventPollDelay,
	}
	if cfg.EventPollDelay > 0 {
		t.eventTicker = time.NewTicker(time.Duration(cfg.EventPollDelay) * time.Millisecond)
	}
	return t
}

// Time paces the event loop
type Time struct {
	eventPollDelay int
	eventTicker    *time.Ticker
}

// EventPollDelay gets the configured delay in milliseconds
func (t *Time) EventPollDelay() int {
	return t.eventPollDelay
}

// WaitEvent blocks until the next event poll is due.
// Without a delay it returns at once.
func (t *Time) WaitEvent() {
	if t == nil || t.eventTicker == nil {
		return
	}
	<-t.eventTicker.C
}

// Stop releases the tickers
func (t *Time) Stop() {
	if t == nil || t.eventTicker == nil {
		return
	}
	t.eventTicker.Stop()
}
