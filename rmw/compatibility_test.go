package rmw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// concreteProfile returns a profile with every policy at a concrete,
// self-compatible value.
func concreteProfile() Profile {
	return Profile{
		History:                 HistoryKeepLast,
		Depth:                   10,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DurationFromNanoseconds(100 * time.Millisecond),
		Liveliness:              LivelinessAutomatic,
		LivelinessLeaseDuration: DurationFromNanoseconds(time.Second),
	}
}

func TestCheckCompatibleIdentical(t *testing.T) {
	p := concreteProfile()
	res := CheckCompatible(p, p)
	assert.Equal(t, CompatibilityOK, res.Compatibility)
	assert.Empty(t, res.Reason)
	assert.Zero(t, res.Kinds)
}

func TestCheckCompatibleReliability(t *testing.T) {
	tests := []struct {
		name string
		pub  int32
		sub  int32
		want Compatibility
	}{
		{"reliable both", ReliabilityReliable, ReliabilityReliable, CompatibilityOK},
		{"reliable pub satisfies best effort sub", ReliabilityReliable, ReliabilityBestEffort, CompatibilityOK},
		{"best effort pub fails reliable sub", ReliabilityBestEffort, ReliabilityReliable, CompatibilityError},
		{"system default pub", ReliabilitySystemDefault, ReliabilityReliable, CompatibilityWarning},
		{"unknown sub", ReliabilityReliable, ReliabilityUnknown, CompatibilityWarning},
		{"best available pub", ReliabilityBestAvailable, ReliabilityReliable, CompatibilityWarning},
		{"system default both sides", ReliabilitySystemDefault, ReliabilitySystemDefault, CompatibilityOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, sub := concreteProfile(), concreteProfile()
			pub.Reliability = tt.pub
			sub.Reliability = tt.sub

			res := CheckCompatible(pub, sub)
			assert.Equal(t, tt.want, res.Compatibility)
			if tt.want != CompatibilityOK {
				assert.Contains(t, res.Reason, "RELIABILITY")
				assert.Equal(t, PolicyKindReliability, res.Kinds)
			} else {
				assert.Zero(t, res.Kinds)
			}
		})
	}
}

func TestCheckCompatibleDurability(t *testing.T) {
	tests := []struct {
		name string
		pub  int32
		sub  int32
		want Compatibility
	}{
		{"volatile both", DurabilityVolatile, DurabilityVolatile, CompatibilityOK},
		{"transient local pub, volatile sub", DurabilityTransientLocal, DurabilityVolatile, CompatibilityOK},
		{"transient local both", DurabilityTransientLocal, DurabilityTransientLocal, CompatibilityOK},
		{"volatile pub fails transient local sub", DurabilityVolatile, DurabilityTransientLocal, CompatibilityError},
		{"system default sub", DurabilityVolatile, DurabilitySystemDefault, CompatibilityWarning},
		{"unknown pub", DurabilityUnknown, DurabilityVolatile, CompatibilityWarning},
		{"best available sub", DurabilityVolatile, DurabilityBestAvailable, CompatibilityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, sub := concreteProfile(), concreteProfile()
			pub.Durability = tt.pub
			sub.Durability = tt.sub

			res := CheckCompatible(pub, sub)
			assert.Equal(t, tt.want, res.Compatibility)
			if tt.want != CompatibilityOK {
				assert.Contains(t, res.Reason, "DURABILITY")
				assert.Equal(t, PolicyKindDurability, res.Kinds)
			}
		})
	}
}

func TestCheckCompatibleDeadline(t *testing.T) {
	ms := func(n int) Duration { return DurationFromNanoseconds(time.Duration(n) * time.Millisecond) }

	tests := []struct {
		name string
		pub  Duration
		sub  Duration
		want Compatibility
	}{
		{"equal", ms(100), ms(100), CompatibilityOK},
		{"publisher faster", ms(50), ms(100), CompatibilityOK},
		{"publisher slower", ms(100), ms(50), CompatibilityError},
		{"infinite pub, concrete sub", DurationInfinite, ms(50), CompatibilityError},
		{"unspecified pub", DeadlineDefault, ms(50), CompatibilityWarning},
		{"unspecified sub", ms(50), DeadlineDefault, CompatibilityWarning},
		{"best available sub", ms(50), DeadlineBestAvailable, CompatibilityWarning},
		{"unspecified both", DeadlineDefault, DeadlineDefault, CompatibilityOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, sub := concreteProfile(), concreteProfile()
			pub.Deadline = tt.pub
			sub.Deadline = tt.sub

			res := CheckCompatible(pub, sub)
			assert.Equal(t, tt.want, res.Compatibility)
			if tt.want != CompatibilityOK {
				assert.Contains(t, res.Reason, "DEADLINE")
				assert.Equal(t, PolicyKindDeadline, res.Kinds)
			}
		})
	}
}

func TestCheckCompatibleLivelinessKind(t *testing.T) {
	tests := []struct {
		name string
		pub  int32
		sub  int32
		want Compatibility
	}{
		{"automatic both", LivelinessAutomatic, LivelinessAutomatic, CompatibilityOK},
		{"kinds differ", LivelinessAutomatic, LivelinessManualByTopic, CompatibilityError},
		{"kinds differ reversed", LivelinessManualByTopic, LivelinessAutomatic, CompatibilityError},
		{"system default pub", LivelinessSystemDefault, LivelinessAutomatic, CompatibilityWarning},
		{"unknown sub", LivelinessAutomatic, LivelinessUnknown, CompatibilityWarning},
		{"best available pub", LivelinessBestAvailable, LivelinessAutomatic, CompatibilityWarning},
		{"system default both", LivelinessSystemDefault, LivelinessSystemDefault, CompatibilityOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, sub := concreteProfile(), concreteProfile()
			pub.Liveliness = tt.pub
			sub.Liveliness = tt.sub

			res := CheckCompatible(pub, sub)
			assert.Equal(t, tt.want, res.Compatibility)
			if tt.want != CompatibilityOK {
				assert.Contains(t, res.Reason, "LIVELINESS")
				assert.Equal(t, PolicyKindLiveliness, res.Kinds)
			}
		})
	}
}

func TestCheckCompatibleLivelinessLease(t *testing.T) {
	sec := func(n int) Duration { return DurationFromNanoseconds(time.Duration(n) * time.Second) }

	tests := []struct {
		name string
		pub  Duration
		sub  Duration
		want Compatibility
	}{
		{"equal", sec(1), sec(1), CompatibilityOK},
		{"publisher lease shorter", sec(1), sec(2), CompatibilityOK},
		{"publisher lease longer", sec(2), sec(1), CompatibilityError},
		{"unspecified pub", LivelinessLeaseDurationDefault, sec(1), CompatibilityWarning},
		{"best available sub", sec(1), LivelinessLeaseDurationBestAvailable, CompatibilityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, sub := concreteProfile(), concreteProfile()
			pub.LivelinessLeaseDuration = tt.pub
			sub.LivelinessLeaseDuration = tt.sub

			res := CheckCompatible(pub, sub)
			assert.Equal(t, tt.want, res.Compatibility)
			if tt.want != CompatibilityOK {
				assert.Contains(t, res.Reason, "LIVELINESS_LEASE_DURATION")
				assert.Equal(t, PolicyKindLivelinessLeaseDuration, res.Kinds)
			}
		})
	}
}

func TestCheckCompatibleAggregatesReasons(t *testing.T) {
	pub, sub := concreteProfile(), concreteProfile()
	pub.Reliability = ReliabilityBestEffort
	sub.Reliability = ReliabilityReliable
	pub.Durability = DurabilityVolatile
	sub.Durability = DurabilityTransientLocal

	res := CheckCompatible(pub, sub)
	require.Equal(t, CompatibilityError, res.Compatibility)
	assert.Contains(t, res.Reason, "RELIABILITY")
	assert.Contains(t, res.Reason, "DURABILITY")
	assert.Contains(t, res.Reason, "; ")
	assert.Equal(t, PolicyKindReliability|PolicyKindDurability, res.Kinds)
}

func TestCheckCompatibleErrorOutranksWarning(t *testing.T) {
	pub, sub := concreteProfile(), concreteProfile()
	pub.Reliability = ReliabilitySystemDefault
	pub.Durability = DurabilityVolatile
	sub.Durability = DurabilityTransientLocal

	res := CheckCompatible(pub, sub)
	require.Equal(t, CompatibilityError, res.Compatibility)
	assert.Contains(t, res.Reason, "WARNING")
	assert.Contains(t, res.Reason, "ERROR")
	assert.Equal(t, PolicyKindReliability|PolicyKindDurability, res.Kinds)
}
