package rmw

import (
	"fmt"
	"time"
)

// Duration is the middleware tick representation of a time interval,
// split into whole seconds and remaining nanoseconds.
type Duration struct {
	Sec  uint64
	Nsec uint64
}

// Sentinel durations defined by the middleware layer.
var (
	// DurationUnspecified leaves the policy to the middleware default.
	DurationUnspecified = Duration{Sec: 0, Nsec: 0}

	// DurationInfinite disables the time constraint entirely.
	DurationInfinite = Duration{Sec: 9223372036, Nsec: 854775807}

	// DeadlineDefault requests the middleware default deadline.
	DeadlineDefault = DurationUnspecified

	// DeadlineBestAvailable matches the majority of discovered endpoints
	// while staying as strict as possible.
	DeadlineBestAvailable = Duration{Sec: 9223372036, Nsec: 854775806}

	// LifespanDefault requests the middleware default lifespan.
	LifespanDefault = DurationUnspecified

	// LivelinessLeaseDurationDefault requests the middleware default lease.
	LivelinessLeaseDurationDefault = DurationUnspecified

	// LivelinessLeaseDurationBestAvailable matches the majority of
	// discovered endpoints while staying as strict as possible.
	LivelinessLeaseDurationBestAvailable = Duration{Sec: 9223372036, Nsec: 854775806}
)

// DurationFromNanoseconds converts a nanosecond-resolution interval to
// tick form. Negative intervals clamp to DurationUnspecified.
func DurationFromNanoseconds(d time.Duration) Duration {
	if d <= 0 {
		return DurationUnspecified
	}
	return Duration{
		Sec:  uint64(d / time.Second),
		Nsec: uint64(d % time.Second),
	}
}

// Nanoseconds converts the tick form back to a nanosecond interval,
// saturating at the maximum representable value.
func (d Duration) Nanoseconds() time.Duration {
	if d.Sec > DurationInfinite.Sec ||
		(d.Sec == DurationInfinite.Sec && d.Nsec >= DurationInfinite.Nsec) {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(d.Sec)*time.Second + time.Duration(d.Nsec)
}

// IsUnspecified reports whether the duration is the unspecified sentinel.
func (d Duration) IsUnspecified() bool {
	return d == DurationUnspecified
}

// IsInfinite reports whether the duration is the infinite sentinel.
func (d Duration) IsInfinite() bool {
	return d == DurationInfinite
}

// Compare orders two durations: -1 if d is shorter than other, 0 if equal,
// +1 if longer.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.Sec < other.Sec:
		return -1
	case d.Sec > other.Sec:
		return 1
	case d.Nsec < other.Nsec:
		return -1
	case d.Nsec > other.Nsec:
		return 1
	}
	return 0
}

// String renders sentinels by name and concrete values as a Go duration.
func (d Duration) String() string {
	switch d {
	case DurationUnspecified:
		return "unspecified"
	case DurationInfinite:
		return "infinite"
	case DeadlineBestAvailable:
		return "best_available"
	}
	if d.Sec > DurationInfinite.Sec {
		return fmt.Sprintf("%ds%dns", d.Sec, d.Nsec)
	}
	return d.Nanoseconds().String()
}
