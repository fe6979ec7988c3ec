package views

import (
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/domain"
)

// DateRange is one of the fixed look-back windows offered by the wallet and
// receipt pages.
type DateRange string

const (
	Last7Days  DateRange = "7days"
	Last30Days DateRange = "30days"
	Last90Days DateRange = "90days"
	AllTime    DateRange = "all"
)

var rangeDays = map[DateRange]int{
	Last7Days:  7,
	Last30Days: 30,
	Last90Days: 90,
	AllTime:    0,
}

var ErrInvalidRange = errors.New("date range must be one of 7days, 30days, 90days, all")

// ParseDateRange parses a range name, falling back to def when s is empty.
func ParseDateRange(s string, def DateRange) (DateRange, error) {
	s = normalize(s)
	if s == "" {
		return def, nil
	}
	r := DateRange(s)
	if _, ok := rangeDays[r]; !ok {
		return def, errors.Wrapf(ErrInvalidRange, "%q", s)
	}
	return r, nil
}

// Since returns the inclusive lower bound of the window and false for all-time.
func (r DateRange) Since(now time.Time) (domain.Timestamp, bool) {
	days := rangeDays[r]
	if days == 0 {
		return 0, false
	}
	return domain.FromTime(now.Add(-time.Duration(days) * 24 * time.Hour)), true
}

// Contains reports whether ts falls inside the window. There is no upper
// bound, so future-dated records are included.
func (r DateRange) Contains(ts domain.Timestamp, now time.Time) bool {
	since, bounded := r.Since(now)
	return !bounded || ts >= since
}
