package prune

// ABOUTME: Parses "<n>d" / "<n>w" age arguments and turns them into a cutoff instant.

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerWeek = 7 * secondsPerDay

	// ageArgName is the argument name reported by InvalidArgument errors.
	ageArgName = "duration"
)

// Age is an absolute span of time, counted in whole seconds.
type Age uint64

// Seconds returns the span as a seconds count.
func (a Age) Seconds() uint64 { return uint64(a) }

// ParseAge parses a non-negative integer followed by a unit suffix:
// "d" for days or "w" for weeks. "30d" and "2w" are valid; "1.5d", "-3d",
// "3h" and "d" are not.
func ParseAge(s string) (Age, error) {
	if s == "" {
		return 0, newError(KindInvalidArgument, ageArgName, errors.New("empty value"))
	}

	var unit uint64
	switch s[len(s)-1] {
	case 'd':
		unit = secondsPerDay
	case 'w':
		unit = secondsPerWeek
	default:
		return 0, newError(KindInvalidArgument, ageArgName,
			fmt.Errorf("unknown unit in %q (use d or w)", s))
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, newError(KindInvalidArgument, ageArgName, err)
	}
	if n > math.MaxUint64/unit {
		return 0, newError(KindInvalidArgument, ageArgName, fmt.Errorf("value %q too large", s))
	}

	return Age(n * unit), nil
}

// Threshold returns now minus age. It fails with KindTimeSubtraction when the
// result would fall before the Unix epoch.
func Threshold(now time.Time, age Age) (time.Time, error) {
	if age == 0 {
		return now, nil
	}

	elapsed := now.Unix()
	if elapsed < 0 || age.Seconds() > uint64(elapsed) {
		return time.Time{}, newError(KindTimeSubtraction, "",
			fmt.Errorf("%d seconds before %s precedes the epoch", age.Seconds(), now.UTC().Format(time.RFC3339)))
	}

	// elapsed fits in int64 seconds; guard the nanosecond conversion.
	if age.Seconds() > math.MaxInt64/uint64(time.Second) {
		return time.Time{}, newError(KindTimeSubtraction, "", errors.New("age out of range"))
	}

	return now.Add(-time.Duration(age.Seconds()) * time.Second), nil
}
