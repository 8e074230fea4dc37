package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"stormviewgo/surface"
)

func buildDoc() *surface.Document {
	doc := surface.NewDocument()
	doc.AddTarget(TimeTarget, "--:-- UTC")
	doc.AddTarget(DateTarget, "YYYY/MM/DD")
	return doc
}

// waitForText polls a target until it holds want or the deadline passes.
func waitForText(t *testing.T, doc *surface.Document, name, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if doc.Target(name).Text() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("target %s: got %q, want %q", name, doc.Target(name).Text(), want)
}

// --- formatting ---

func TestFormatTime_PadsHourAndMinute(t *testing.T) {
	at := time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)
	if got := FormatTime(at); got != "07:09 UTC" {
		t.Errorf("got %q, want %q", got, "07:09 UTC")
	}
}

func TestFormatTime_Midnight(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 59, 0, time.UTC)
	if got := FormatTime(at); got != "00:00 UTC" {
		t.Errorf("got %q, want %q", got, "00:00 UTC")
	}
}

func TestFormatTime_EndOfDay(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	if got := FormatTime(at); got != "23:59 UTC" {
		t.Errorf("got %q, want %q", got, "23:59 UTC")
	}
}

func TestFormatTime_ConvertsZonedInstant(t *testing.T) {
	// 02:30+05:30 is 21:00 UTC the previous day.
	zone := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2024, 3, 6, 2, 30, 0, 0, zone)
	if got := FormatTime(at); got != "21:00 UTC" {
		t.Errorf("got %q, want %q", got, "21:00 UTC")
	}
}

func TestFormatDate_ISOCalendarDate(t *testing.T) {
	at := time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)
	if got := FormatDate(at); got != "2024-03-05" {
		t.Errorf("got %q, want %q", got, "2024-03-05")
	}
}

func TestFormatDate_ConvertsZonedInstant(t *testing.T) {
	// Just past midnight in Auckland is still the previous UTC day.
	zone := time.FixedZone("NZDT", 13*3600)
	at := time.Date(2024, 3, 6, 0, 10, 0, 0, zone)
	if got := FormatDate(at); got != "2024-03-05" {
		t.Errorf("got %q, want %q", got, "2024-03-05")
	}
}

// --- render ---

func TestRender_WritesBothTargets(t *testing.T) {
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 30, 0, time.UTC)))

	p.Render()

	if got := doc.Target(TimeTarget).Text(); got != "07:09 UTC" {
		t.Errorf("time target: got %q, want %q", got, "07:09 UTC")
	}
	if got := doc.Target(DateTarget).Text(); got != "2024-03-05" {
		t.Errorf("date target: got %q, want %q", got, "2024-03-05")
	}
}

func TestRender_IdempotentAtFrozenInstant(t *testing.T) {
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)))

	p.Render()
	first := doc.Target(TimeTarget).Text() + " " + doc.Target(DateTarget).Text()
	p.Render()
	second := doc.Target(TimeTarget).Text() + " " + doc.Target(DateTarget).Text()

	if first != second {
		t.Errorf("renders differ at frozen instant: %q vs %q", first, second)
	}
}

func TestRender_MissingTargetSkipped(t *testing.T) {
	doc := surface.NewDocument()
	doc.AddTarget(TimeTarget, "--:-- UTC")
	// No date target in this document.
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)))

	p.Render()

	if got := doc.Target(TimeTarget).Text(); got != "07:09 UTC" {
		t.Errorf("time target: got %q, want %q", got, "07:09 UTC")
	}
}

// --- schedule ---

func TestStart_RendersBeforeFirstTick(t *testing.T) {
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)))

	stop := p.Start(time.Second)
	defer stop()

	// No tick has elapsed, yet the placeholder must already be replaced.
	if got := doc.Target(TimeTarget).Text(); got != "07:09 UTC" {
		t.Errorf("time target after Start: got %q, want %q", got, "07:09 UTC")
	}
}

func TestStart_RerendersOnTick(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 59, 0, time.UTC))
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(fake)

	stop := p.Start(time.Second)
	defer stop()

	fake.Advance(time.Second) // 07:10:00
	waitForText(t, doc, TimeTarget, "07:10 UTC")
}

func TestStart_ScheduleSurvivesMissingTarget(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 59, 0, time.UTC))
	doc := surface.NewDocument()
	doc.AddTarget(TimeTarget, "--:-- UTC")
	// Date target absent for the whole run.
	p := NewPresenter(doc)
	p.SetClock(fake)

	stop := p.Start(time.Second)
	defer stop()

	fake.Advance(time.Second)
	waitForText(t, doc, TimeTarget, "07:10 UTC")
	fake.Advance(time.Minute)
	waitForText(t, doc, TimeTarget, "07:11 UTC")
}

func TestStart_StopIsIdempotent(t *testing.T) {
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)))

	stop := p.Start(time.Second)
	stop()
	stop()
}

func TestStart_NonPositiveIntervalUsesDefault(t *testing.T) {
	doc := buildDoc()
	p := NewPresenter(doc)
	p.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)))

	stop := p.Start(0)
	defer stop()

	if got := doc.Target(TimeTarget).Text(); got != "07:09 UTC" {
		t.Errorf("time target: got %q, want %q", got, "07:09 UTC")
	}
}
