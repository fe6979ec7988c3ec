package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// Timestamp is a point in time stored as Unix epoch milliseconds.
// The zero value means "unset".
type Timestamp int64

// FromTime converts t to a Timestamp, mapping the zero time to the zero Timestamp.
func FromTime(t time.Time) Timestamp {
	if t.IsZero() {
		return 0
	}
	return Timestamp(t.UnixMilli())
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return FromTime(time.Now())
}

// Time returns the Timestamp as a local time.Time, or the zero time when unset.
func (ts Timestamp) Time() time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ts))
}

func (ts Timestamp) IsZero() bool {
	return ts == 0
}

// UnmarshalJSON accepts epoch milliseconds, null, and the string forms written
// by older dashboards (ISO-8601 or any layout dateparse understands).
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*ts = 0
		return nil
	}
	if raw[0] != '"' {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid timestamp %s", raw)
		}
		*ts = Timestamp(int64(f))
		return nil
	}
	str, err := strconv.Unquote(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid timestamp %s", raw)
	}
	str = strings.TrimSpace(str)
	if str == "" {
		*ts = 0
		return nil
	}
	if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
		*ts = Timestamp(ms)
		return nil
	}
	t, err := dateparse.ParseAny(str)
	if err != nil {
		return errors.Wrapf(err, "invalid timestamp %q", str)
	}
	*ts = FromTime(t)
	return nil
}
