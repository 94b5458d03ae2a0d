package effects

import (
	"time"

	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/funtom_go/effio"
)

// Clock reads the current time. time.Now is the system clock.
type Clock func() time.Time

type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// Now reads clock when run.
func Now(clock Clock) effio.IO[time.Time] {
	return effio.New(func() time.Time {
		return clock()
	})
}

// Today reads clock when run and returns the calendar date in loc.
func Today(clock Clock, loc *time.Location) effio.IO[date.Date] {
	return effio.Map(Now(clock), func(t time.Time) date.Date {
		return date.NewAt(t.In(loc))
	})
}

// NowSpan reads clock when run and returns a span of two milliseconds
// centred on the reading.
func NowSpan(clock Clock) effio.IO[TimeSpan] {
	return effio.Map(Now(clock), func(now time.Time) TimeSpan {
		return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
	})
}
