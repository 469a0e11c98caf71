package beeper

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stamp is a wall-clock time broken into the fields the date and time
// prefixes print.
type Stamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// StampOf decomposes t in its own location.
func StampOf(t time.Time) Stamp {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return Stamp{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// Clock supplies the time printed in front of messages.
type Clock interface {
	Now() Stamp
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() Stamp

func (f ClockFunc) Now() Stamp { return f() }

// SystemClock reads the local time on every call.
var SystemClock Clock = ClockFunc(func() Stamp { return StampOf(time.Now()) })

// CachedClock keeps the current Stamp in memory and refreshes it once per
// second from a background goroutine, so emitting a message never calls into
// the time zone database. Close stops the goroutine.
type CachedClock struct {
	utc       bool
	value     atomic.Value
	now       func() time.Time
	newTicker func(time.Duration) tickerControl

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

type tickerControl struct {
	C    <-chan time.Time
	Stop func()
}

func (t tickerControl) stop() {
	if t.Stop != nil {
		t.Stop()
	}
}

// NewCachedClock starts a cached clock. When utc is set the stamp is taken
// in UTC instead of local time.
func NewCachedClock(utc bool) *CachedClock {
	return newCachedClock(utc, time.Now, defaultTicker)
}

func newCachedClock(utc bool, now func() time.Time, newTicker func(time.Duration) tickerControl) *CachedClock {
	c := &CachedClock{
		utc:       utc,
		now:       now,
		newTicker: newTicker,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	c.start()
	return c
}

func defaultTicker(d time.Duration) tickerControl {
	t := time.NewTicker(d)
	return tickerControl{
		C:    t.C,
		Stop: t.Stop,
	}
}

func (c *CachedClock) start() {
	c.store(c.nowTime())
	ticker := c.makeTicker(time.Second)
	if ticker.C == nil {
		close(c.doneCh)
		return
	}
	go c.refresh(ticker)
}

// Now returns the most recently cached stamp.
func (c *CachedClock) Now() Stamp {
	if c == nil {
		return SystemClock.Now()
	}
	if s, ok := c.value.Load().(Stamp); ok {
		return s
	}
	return StampOf(c.nowTime())
}

func (c *CachedClock) refresh(ticker tickerControl) {
	defer ticker.stop()
	defer close(c.doneCh)
	for {
		select {
		case <-c.stopCh:
			return
		case now, ok := <-ticker.C:
			if !ok {
				return
			}
			c.store(now)
		}
	}
}

func (c *CachedClock) store(t time.Time) {
	if c.utc {
		t = t.UTC()
	}
	c.value.Store(StampOf(t))
}

func (c *CachedClock) nowTime() time.Time {
	nowFunc := c.now
	if nowFunc == nil {
		nowFunc = time.Now
	}
	now := nowFunc()
	if c.utc {
		return now.UTC()
	}
	return now
}

func (c *CachedClock) makeTicker(d time.Duration) tickerControl {
	if c.newTicker != nil {
		if ticker := c.newTicker(d); ticker.C != nil {
			return ticker
		}
	}
	return defaultTicker(d)
}

// Close stops the refresh goroutine. The last cached stamp stays readable.
func (c *CachedClock) Close() {
	if c == nil {
		return
	}
	c.stopped.Store(true)
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *CachedClock) isStopped() bool {
	if c == nil {
		return true
	}
	return c.stopped.Load()
}

func (c *CachedClock) waitStopped(timeout time.Duration) bool {
	if c == nil || c.doneCh == nil {
		return true
	}
	if timeout <= 0 {
		<-c.doneCh
		return true
	}
	select {
	case <-c.doneCh:
		return true
	case <-time.After(timeout):
		return false
	}
}
