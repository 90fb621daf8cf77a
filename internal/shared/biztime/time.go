// Package biztime holds the business timezone. Timestamps are stored and
// transported in UTC; the business timezone only drives cron schedules and
// calendar boundaries.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "Asia/Shanghai"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone once. An empty tz means DefaultTimezone.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: failed to initialize timezone: %v", err))
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns midnight of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	biz := t.In(Location())
	return time.Date(biz.Year(), biz.Month(), biz.Day(), 0, 0, 0, 0, Location()).UTC()
}
