package beeper

import (
	"testing"
	"time"
)

func TestCachedClockCachesWithinTick(t *testing.T) {
	start := time.Date(2025, time.October, 12, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	tickCh := make(chan time.Time, 1)

	current := start
	clock := newCachedClock(false, func() time.Time { return current }, func(time.Duration) tickerControl {
		return tickerControl{C: tickCh}
	})
	defer clock.Close()

	first := clock.Now()
	if want := StampOf(start); first != want {
		t.Fatalf("initial stamp mismatch: got %+v want %+v", first, want)
	}

	current = start.Add(500 * time.Millisecond)
	if second := clock.Now(); second != first {
		t.Fatalf("clock should return cached stamp before tick: got %+v want %+v", second, first)
	}

	advance := start.Add(time.Second)
	tickCh <- advance
	close(tickCh)

	want := StampOf(advance)
	deadline := time.After(200 * time.Millisecond)
	for {
		got := clock.Now()
		if got == want {
			break
		}
		select {
		case <-time.After(5 * time.Millisecond):
		case <-deadline:
			t.Fatalf("clock did not update after tick; last %+v, want %+v", got, want)
		}
	}
	if !clock.waitStopped(200 * time.Millisecond) {
		t.Fatalf("refresh goroutine should end once the ticker channel closes")
	}
}

func TestCachedClockHonoursUTC(t *testing.T) {
	start := time.Date(2025, time.July, 4, 23, 30, 0, 0, time.FixedZone("PDT", -7*3600))
	tickCh := make(chan time.Time)

	clock := newCachedClock(true, func() time.Time { return start }, func(time.Duration) tickerControl {
		return tickerControl{C: tickCh}
	})
	defer clock.Close()

	got := clock.Now()
	want := Stamp{Year: 2025, Month: 7, Day: 5, Hour: 6, Minute: 30, Second: 0}
	if got != want {
		t.Fatalf("expected UTC stamp: got %+v want %+v", got, want)
	}
}

func TestCachedClockCloseStopsRefresh(t *testing.T) {
	stopped := make(chan struct{})
	clock := newCachedClock(false, time.Now, func(time.Duration) tickerControl {
		return tickerControl{C: make(chan time.Time), Stop: func() { close(stopped) }}
	})

	if clock.isStopped() {
		t.Fatalf("clock reports stopped before Close")
	}
	clock.Close()
	clock.Close()
	if !clock.isStopped() {
		t.Fatalf("clock should report stopped after Close")
	}
	if !clock.waitStopped(time.Second) {
		t.Fatalf("refresh goroutine did not exit")
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatalf("ticker was not stopped")
	}
}

func TestNilCachedClockFallsBackToSystemClock(t *testing.T) {
	var clock *CachedClock
	before := StampOf(time.Now())
	got := clock.Now()
	if got.Year < before.Year {
		t.Fatalf("nil clock returned a stamp from the past: %+v", got)
	}
	clock.Close()
	if !clock.isStopped() {
		t.Fatalf("nil clock should report stopped")
	}
}

func TestStampOfUsesLocation(t *testing.T) {
	ts := time.Date(2024, time.February, 29, 1, 2, 3, 0, time.UTC)
	got := StampOf(ts.In(time.FixedZone("X", -2*3600)))
	want := Stamp{Year: 2024, Month: 2, Day: 28, Hour: 23, Minute: 2, Second: 3}
	if got != want {
		t.Fatalf("StampOf mismatch: got %+v want %+v", got, want)
	}
}
