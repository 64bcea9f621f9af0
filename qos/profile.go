package qos

import (
	"fmt"
	"time"

	"github.com/roskit/qos-go/rmw"
)

// Duration sentinels in nanosecond form. These mirror the backend's tick
// sentinels and round-trip through Profile.ToRMW.
var (
	// DurationUnspecified leaves a time-based policy to the middleware
	// default.
	DurationUnspecified time.Duration = 0

	// DurationInfinite disables a time-based policy entirely.
	DurationInfinite = rmw.DurationInfinite.Nanoseconds()

	// DeadlineBestAvailable matches the majority of discovered endpoints
	// while staying as strict as possible.
	DeadlineBestAvailable = rmw.DeadlineBestAvailable.Nanoseconds()

	// LivelinessLeaseDurationBestAvailable matches the majority of
	// discovered endpoints while staying as strict as possible.
	LivelinessLeaseDurationBestAvailable = rmw.LivelinessLeaseDurationBestAvailable.Nanoseconds()
)

// Profile bundles the nine Quality of Service policy settings applied to a
// publisher or subscriber endpoint.
//
// Construct with NewProfile. Fields omitted at construction fall back to
// the library default profile, except history and depth which are coupled:
// KEEP_LAST history requires an explicit depth. After construction fields
// change only through the validated setters; concurrent mutation of the
// same instance is not safe.
type Profile struct {
	history                      HistoryPolicy
	depth                        int
	reliability                  ReliabilityPolicy
	durability                   DurabilityPolicy
	lifespan                     time.Duration
	deadline                     time.Duration
	liveliness                   LivelinessPolicy
	livelinessLeaseDuration      time.Duration
	avoidROSNamespaceConventions bool
}

type profileOptions struct {
	history                      *HistoryPolicy
	depth                        *int
	reliability                  *ReliabilityPolicy
	durability                   *DurabilityPolicy
	lifespan                     *time.Duration
	deadline                     *time.Duration
	liveliness                   *LivelinessPolicy
	livelinessLeaseDuration      *time.Duration
	avoidROSNamespaceConventions *bool
}

// ProfileOption supplies one field at construction.
type ProfileOption func(*profileOptions)

// WithHistory sets the history policy.
func WithHistory(v HistoryPolicy) ProfileOption {
	return func(o *profileOptions) { o.history = &v }
}

// WithDepth sets the history depth. Required when history is KEEP_LAST.
func WithDepth(v int) ProfileOption {
	return func(o *profileOptions) { o.depth = &v }
}

// WithReliability sets the reliability policy.
func WithReliability(v ReliabilityPolicy) ProfileOption {
	return func(o *profileOptions) { o.reliability = &v }
}

// WithDurability sets the durability policy.
func WithDurability(v DurabilityPolicy) ProfileOption {
	return func(o *profileOptions) { o.durability = &v }
}

// WithLifespan sets the maximum age of a sample before it is discarded.
func WithLifespan(v time.Duration) ProfileOption {
	return func(o *profileOptions) { o.lifespan = &v }
}

// WithDeadline sets the maximum interval between successive samples.
func WithDeadline(v time.Duration) ProfileOption {
	return func(o *profileOptions) { o.deadline = &v }
}

// WithLiveliness sets the liveliness policy.
func WithLiveliness(v LivelinessPolicy) ProfileOption {
	return func(o *profileOptions) { o.liveliness = &v }
}

// WithLivelinessLeaseDuration sets the maximum time an endpoint may go
// without asserting liveliness.
func WithLivelinessLeaseDuration(v time.Duration) ProfileOption {
	return func(o *profileOptions) { o.livelinessLeaseDuration = &v }
}

// WithAvoidROSNamespaceConventions disables the ROS-specific topic
// namespace prefixing.
func WithAvoidROSNamespaceConventions(v bool) ProfileOption {
	return func(o *profileOptions) { o.avoidROSNamespaceConventions = &v }
}

// NewProfile builds a validated profile.
//
// At least one of history and depth must be supplied; a depth without a
// history implies KEEP_LAST. KEEP_LAST without a depth fails with
// ErrInvalidProfile. Every other omitted field is filled from the library
// default profile so the defaults track a single source of truth.
func NewProfile(opts ...ProfileOption) (*Profile, error) {
	var o profileOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.history == nil {
		if o.depth == nil {
			return nil, fmt.Errorf("%w: history and/or depth settings are required", ErrInvalidProfile)
		}
		h := HistoryKeepLast
		o.history = &h
	}

	p := &Profile{}
	if err := p.SetHistory(*o.history); err != nil {
		return nil, err
	}

	if p.history == HistoryKeepLast && o.depth == nil {
		return nil, fmt.Errorf("%w: history set to KEEP_LAST without a depth setting", ErrInvalidProfile)
	}

	// defaultProfile() is consulted only for omitted fields so that
	// building the library default itself never re-enters its init.
	var depth int
	if o.depth != nil {
		depth = *o.depth
	} else {
		depth = defaultProfile().depth
	}
	if err := p.SetDepth(depth); err != nil {
		return nil, err
	}

	var reliability ReliabilityPolicy
	if o.reliability != nil {
		reliability = *o.reliability
	} else {
		reliability = defaultProfile().reliability
	}
	if err := p.SetReliability(reliability); err != nil {
		return nil, err
	}

	var durability DurabilityPolicy
	if o.durability != nil {
		durability = *o.durability
	} else {
		durability = defaultProfile().durability
	}
	if err := p.SetDurability(durability); err != nil {
		return nil, err
	}

	var lifespan time.Duration
	if o.lifespan != nil {
		lifespan = *o.lifespan
	} else {
		lifespan = defaultProfile().lifespan
	}
	if err := p.SetLifespan(lifespan); err != nil {
		return nil, err
	}

	var deadline time.Duration
	if o.deadline != nil {
		deadline = *o.deadline
	} else {
		deadline = defaultProfile().deadline
	}
	if err := p.SetDeadline(deadline); err != nil {
		return nil, err
	}

	var liveliness LivelinessPolicy
	if o.liveliness != nil {
		liveliness = *o.liveliness
	} else {
		liveliness = defaultProfile().liveliness
	}
	if err := p.SetLiveliness(liveliness); err != nil {
		return nil, err
	}

	var lease time.Duration
	if o.livelinessLeaseDuration != nil {
		lease = *o.livelinessLeaseDuration
	} else {
		lease = defaultProfile().livelinessLeaseDuration
	}
	if err := p.SetLivelinessLeaseDuration(lease); err != nil {
		return nil, err
	}

	var avoid bool
	if o.avoidROSNamespaceConventions != nil {
		avoid = *o.avoidROSNamespaceConventions
	} else {
		avoid = defaultProfile().avoidROSNamespaceConventions
	}
	p.SetAvoidROSNamespaceConventions(avoid)

	return p, nil
}

// History returns the history policy.
func (p *Profile) History() HistoryPolicy { return p.history }

// Depth returns the history depth.
func (p *Profile) Depth() int { return p.depth }

// Reliability returns the reliability policy.
func (p *Profile) Reliability() ReliabilityPolicy { return p.reliability }

// Durability returns the durability policy.
func (p *Profile) Durability() DurabilityPolicy { return p.durability }

// Lifespan returns the sample lifespan.
func (p *Profile) Lifespan() time.Duration { return p.lifespan }

// Deadline returns the deadline interval.
func (p *Profile) Deadline() time.Duration { return p.deadline }

// Liveliness returns the liveliness policy.
func (p *Profile) Liveliness() LivelinessPolicy { return p.liveliness }

// LivelinessLeaseDuration returns the liveliness lease duration.
func (p *Profile) LivelinessLeaseDuration() time.Duration { return p.livelinessLeaseDuration }

// AvoidROSNamespaceConventions reports whether ROS namespace prefixing is
// disabled.
func (p *Profile) AvoidROSNamespaceConventions() bool { return p.avoidROSNamespaceConventions }

// SetHistory sets the history policy. Moving history away from KEEP_LAST
// does not clear a previously set depth.
func (p *Profile) SetHistory(v HistoryPolicy) error {
	if !validPolicyValue(historyMembers, int32(v)) {
		return fmt.Errorf("%w: %d is not a defined HistoryPolicy", ErrInvalidArgument, int32(v))
	}
	p.history = v
	return nil
}

// SetDepth sets the history depth. A zero depth with KEEP_LAST is allowed
// but warns, since no samples could ever be retained.
func (p *Profile) SetDepth(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: depth must be non-negative, got %d", ErrInvalidArgument, v)
	}
	if p.history == HistoryKeepLast && v == 0 {
		warnf("a zero depth with KEEP_LAST doesn't make sense; no data could be stored. " +
			"This will be interpreted as SYSTEM_DEFAULT")
	}
	p.depth = v
	return nil
}

// SetReliability sets the reliability policy.
func (p *Profile) SetReliability(v ReliabilityPolicy) error {
	if !validPolicyValue(reliabilityMembers, int32(v)) {
		return fmt.Errorf("%w: %d is not a defined ReliabilityPolicy", ErrInvalidArgument, int32(v))
	}
	p.reliability = v
	return nil
}

// SetDurability sets the durability policy.
func (p *Profile) SetDurability(v DurabilityPolicy) error {
	if !validPolicyValue(durabilityMembers, int32(v)) {
		return fmt.Errorf("%w: %d is not a defined DurabilityPolicy", ErrInvalidArgument, int32(v))
	}
	p.durability = v
	return nil
}

// SetLifespan sets the sample lifespan.
func (p *Profile) SetLifespan(v time.Duration) error {
	if v < 0 {
		return fmt.Errorf("%w: lifespan must be non-negative, got %s", ErrInvalidArgument, v)
	}
	p.lifespan = v
	return nil
}

// SetDeadline sets the deadline interval.
func (p *Profile) SetDeadline(v time.Duration) error {
	if v < 0 {
		return fmt.Errorf("%w: deadline must be non-negative, got %s", ErrInvalidArgument, v)
	}
	p.deadline = v
	return nil
}

// SetLiveliness sets the liveliness policy.
func (p *Profile) SetLiveliness(v LivelinessPolicy) error {
	if !validPolicyValue(livelinessMembers, int32(v)) {
		return fmt.Errorf("%w: %d is not a defined LivelinessPolicy", ErrInvalidArgument, int32(v))
	}
	p.liveliness = v
	return nil
}

// SetLivelinessLeaseDuration sets the liveliness lease duration.
func (p *Profile) SetLivelinessLeaseDuration(v time.Duration) error {
	if v < 0 {
		return fmt.Errorf("%w: liveliness lease duration must be non-negative, got %s", ErrInvalidArgument, v)
	}
	p.livelinessLeaseDuration = v
	return nil
}

// SetAvoidROSNamespaceConventions toggles ROS namespace prefixing.
func (p *Profile) SetAvoidROSNamespaceConventions(v bool) {
	p.avoidROSNamespaceConventions = v
}

// Clone returns an independent copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Equal reports field-wise equality over all nine fields.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// String renders every field name/value pair in declaration order.
func (p *Profile) String() string {
	return fmt.Sprintf("Profile(history=%s, depth=%d, reliability=%s, durability=%s, "+
		"lifespan=%s, deadline=%s, liveliness=%s, liveliness_lease_duration=%s, "+
		"avoid_ros_namespace_conventions=%t)",
		p.history, p.depth, p.reliability, p.durability,
		p.lifespan, p.deadline, p.liveliness, p.livelinessLeaseDuration,
		p.avoidROSNamespaceConventions)
}

// ToRMW converts the profile to the backend-neutral form consumed by the
// middleware layer. This is the only point where a profile talks to the
// backend representation.
func (p *Profile) ToRMW() rmw.Profile {
	return rmw.Profile{
		History:                      int32(p.history),
		Depth:                        p.depth,
		Reliability:                  int32(p.reliability),
		Durability:                   int32(p.durability),
		Lifespan:                     rmw.DurationFromNanoseconds(p.lifespan),
		Deadline:                     rmw.DurationFromNanoseconds(p.deadline),
		Liveliness:                   int32(p.liveliness),
		LivelinessLeaseDuration:      rmw.DurationFromNanoseconds(p.livelinessLeaseDuration),
		AvoidROSNamespaceConventions: p.avoidROSNamespaceConventions,
	}
}

// ProfileFromRMW builds a validated profile from its backend-neutral form.
// Every field is supplied explicitly so the construction invariants still
// apply.
func ProfileFromRMW(rp rmw.Profile) (*Profile, error) {
	return NewProfile(
		WithHistory(HistoryPolicy(rp.History)),
		WithDepth(rp.Depth),
		WithReliability(ReliabilityPolicy(rp.Reliability)),
		WithDurability(DurabilityPolicy(rp.Durability)),
		WithLifespan(rp.Lifespan.Nanoseconds()),
		WithDeadline(rp.Deadline.Nanoseconds()),
		WithLiveliness(LivelinessPolicy(rp.Liveliness)),
		WithLivelinessLeaseDuration(rp.LivelinessLeaseDuration.Nanoseconds()),
		WithAvoidROSNamespaceConventions(rp.AvoidROSNamespaceConventions),
	)
}
