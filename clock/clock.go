// Package clock keeps the infobar's UTC readouts current. One presenter owns
// the two readout targets and refreshes them on a fixed cadence for the life
// of the view.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"stormviewgo/surface"
)

// Names of the readout targets in the presentation surface.
const (
	TimeTarget = "time-utc"
	DateTarget = "date-display"
)

// DefaultInterval is the readout refresh cadence.
const DefaultInterval = time.Second

// FormatTime renders an instant as the time readout, e.g. "07:09 UTC".
// Always 24-hour UTC, both fields zero-padded to two digits.
func FormatTime(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d:%02d UTC", t.Hour(), t.Minute())
}

// FormatDate renders an instant as the ISO 8601 calendar date in UTC,
// e.g. "2024-03-05". Month and day are zero-padded, the year is not.
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Presenter writes the current UTC time and date into the document's readout
// targets. The time source is swappable so tests can freeze it.
type Presenter struct {
	doc   *surface.Document
	clock clockwork.Clock
}

// NewPresenter returns a presenter over the given document, reading the real
// system clock.
func NewPresenter(doc *surface.Document) *Presenter {
	return &Presenter{doc: doc, clock: clockwork.NewRealClock()}
}

// SetClock swaps the time source. Pass nil to reset to the real clock.
func (p *Presenter) SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	p.clock = c
}

// Render writes one reading into both targets. A target missing from the
// document is skipped; the other write and the schedule are unaffected.
func (p *Presenter) Render() {
	now := p.clock.Now()
	p.doc.Target(TimeTarget).SetText(FormatTime(now))
	p.doc.Target(DateTarget).SetText(FormatDate(now))
}

// Start renders once immediately, so the readouts are correct before the
// first tick elapses, then re-renders on every tick until the returned stop
// function is called. The view app never stops the schedule; the handle
// exists for embedding hosts and tests. Stop is idempotent.
func (p *Presenter) Start(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	p.Render()

	ticker := p.clock.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.Chan():
				p.Render()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
