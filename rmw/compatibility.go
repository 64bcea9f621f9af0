package rmw

import (
	"fmt"
	"strings"
)

// Compatibility is the backend's verdict on a publisher/subscription pairing.
type Compatibility int32

const (
	// CompatibilityOK means the pairing will communicate.
	CompatibilityOK Compatibility = iota
	// CompatibilityWarning means the pairing may or may not communicate;
	// one or more policy values resolve only at discovery time.
	CompatibilityWarning
	// CompatibilityError means the pairing will not communicate.
	CompatibilityError
)

// PolicyKind identifies which policy a comparison verdict implicates.
// Each kind is an independent bit so one result can implicate several
// policies at once.
type PolicyKind uint32

const (
	PolicyKindInvalid PolicyKind = 1 << iota
	PolicyKindDurability
	PolicyKindDeadline
	PolicyKindLiveliness
	PolicyKindReliability
	PolicyKindHistory
	PolicyKindLifespan
	PolicyKindDepth
	PolicyKindLivelinessLeaseDuration
	PolicyKindAvoidROSNamespaceConventions
)

// Result is the outcome of the low-level pairwise profile comparison.
type Result struct {
	Compatibility Compatibility
	// Reason names every policy that contributed a non-OK verdict.
	// Empty when Compatibility is CompatibilityOK.
	Reason string
	// Kinds is the bitmask of policies that contributed a non-OK verdict.
	// Zero when Compatibility is CompatibilityOK.
	Kinds PolicyKind
}

// CheckCompatible compares a publisher profile against a subscription
// profile policy by policy. The worst severity across all policies wins
// and every non-OK policy contributes to the reason text.
//
// Equal values on both sides are always compatible, even for values the
// middleware resolves only at discovery time: a vendor's defaults are
// compatible with themselves. A profile therefore always checks OK
// against itself.
func CheckCompatible(pub, sub Profile) Result {
	var c checker
	c.reliability(pub, sub)
	c.durability(pub, sub)
	c.deadline(pub, sub)
	c.liveliness(pub, sub)
	return c.result()
}

type checker struct {
	compatibility Compatibility
	reasons       []string
	kinds         PolicyKind
}

func (c *checker) report(level Compatibility, kind PolicyKind, format string, args ...interface{}) {
	if level > c.compatibility {
		c.compatibility = level
	}
	c.kinds |= kind
	prefix := "WARNING"
	if level == CompatibilityError {
		prefix = "ERROR"
	}
	c.reasons = append(c.reasons, prefix+": "+fmt.Sprintf(format, args...))
}

func (c *checker) result() Result {
	return Result{
		Compatibility: c.compatibility,
		Reason:        strings.Join(c.reasons, "; "),
		Kinds:         c.kinds,
	}
}

func (c *checker) reliability(pub, sub Profile) {
	switch {
	case pub.Reliability == sub.Reliability:
	case reliabilityIndeterminate(pub.Reliability) || reliabilityIndeterminate(sub.Reliability):
		c.report(CompatibilityWarning, PolicyKindReliability,
			"RELIABILITY could not be determined (publisher %s, subscription %s)",
			reliabilityName(pub.Reliability), reliabilityName(sub.Reliability))
	case pub.Reliability == ReliabilityBestEffort && sub.Reliability == ReliabilityReliable:
		c.report(CompatibilityError, PolicyKindReliability,
			"RELIABILITY: best_effort publisher cannot satisfy a reliable subscription")
	}
}

func (c *checker) durability(pub, sub Profile) {
	switch {
	case pub.Durability == sub.Durability:
	case durabilityIndeterminate(pub.Durability) || durabilityIndeterminate(sub.Durability):
		c.report(CompatibilityWarning, PolicyKindDurability,
			"DURABILITY could not be determined (publisher %s, subscription %s)",
			durabilityName(pub.Durability), durabilityName(sub.Durability))
	case pub.Durability == DurabilityVolatile && sub.Durability == DurabilityTransientLocal:
		c.report(CompatibilityError, PolicyKindDurability,
			"DURABILITY: volatile publisher cannot provide the samples a transient_local subscription expects")
	}
}

func (c *checker) deadline(pub, sub Profile) {
	switch {
	case pub.Deadline == sub.Deadline:
	case durationIndeterminate(pub.Deadline, DeadlineBestAvailable) ||
		durationIndeterminate(sub.Deadline, DeadlineBestAvailable):
		c.report(CompatibilityWarning, PolicyKindDeadline,
			"DEADLINE could not be determined (publisher %s, subscription %s)",
			pub.Deadline, sub.Deadline)
	case pub.Deadline.Compare(sub.Deadline) > 0:
		c.report(CompatibilityError, PolicyKindDeadline,
			"DEADLINE: publisher deadline %s exceeds the subscription deadline %s",
			pub.Deadline, sub.Deadline)
	}
}

func (c *checker) liveliness(pub, sub Profile) {
	switch {
	case pub.Liveliness == sub.Liveliness:
	case livelinessIndeterminate(pub.Liveliness) || livelinessIndeterminate(sub.Liveliness):
		c.report(CompatibilityWarning, PolicyKindLiveliness,
			"LIVELINESS could not be determined (publisher %s, subscription %s)",
			livelinessName(pub.Liveliness), livelinessName(sub.Liveliness))
	default:
		c.report(CompatibilityError, PolicyKindLiveliness,
			"LIVELINESS: publisher kind %s does not match subscription kind %s",
			livelinessName(pub.Liveliness), livelinessName(sub.Liveliness))
	}

	switch {
	case pub.LivelinessLeaseDuration == sub.LivelinessLeaseDuration:
	case durationIndeterminate(pub.LivelinessLeaseDuration, LivelinessLeaseDurationBestAvailable) ||
		durationIndeterminate(sub.LivelinessLeaseDuration, LivelinessLeaseDurationBestAvailable):
		c.report(CompatibilityWarning, PolicyKindLivelinessLeaseDuration,
			"LIVELINESS_LEASE_DURATION could not be determined (publisher %s, subscription %s)",
			pub.LivelinessLeaseDuration, sub.LivelinessLeaseDuration)
	case pub.LivelinessLeaseDuration.Compare(sub.LivelinessLeaseDuration) > 0:
		c.report(CompatibilityError, PolicyKindLivelinessLeaseDuration,
			"LIVELINESS_LEASE_DURATION: publisher lease %s exceeds the subscription lease %s",
			pub.LivelinessLeaseDuration, sub.LivelinessLeaseDuration)
	}
}

func reliabilityIndeterminate(v int32) bool {
	return v == ReliabilitySystemDefault || v == ReliabilityUnknown || v == ReliabilityBestAvailable
}

func durabilityIndeterminate(v int32) bool {
	return v == DurabilitySystemDefault || v == DurabilityUnknown || v == DurabilityBestAvailable
}

func livelinessIndeterminate(v int32) bool {
	return v == LivelinessSystemDefault || v == LivelinessUnknown || v == LivelinessBestAvailable
}

// durationIndeterminate reports whether a duration leaves the effective
// value to discovery time: the unspecified default or the best-available
// sentinel for that policy.
func durationIndeterminate(d, bestAvailable Duration) bool {
	return d.IsUnspecified() || d == bestAvailable
}

func reliabilityName(v int32) string {
	switch v {
	case ReliabilitySystemDefault:
		return "system_default"
	case ReliabilityReliable:
		return "reliable"
	case ReliabilityBestEffort:
		return "best_effort"
	case ReliabilityUnknown:
		return "unknown"
	case ReliabilityBestAvailable:
		return "best_available"
	}
	return fmt.Sprintf("reliability(%d)", v)
}

func durabilityName(v int32) string {
	switch v {
	case DurabilitySystemDefault:
		return "system_default"
	case DurabilityTransientLocal:
		return "transient_local"
	case DurabilityVolatile:
		return "volatile"
	case DurabilityUnknown:
		return "unknown"
	case DurabilityBestAvailable:
		return "best_available"
	}
	return fmt.Sprintf("durability(%d)", v)
}

func livelinessName(v int32) string {
	switch v {
	case LivelinessSystemDefault:
		return "system_default"
	case LivelinessAutomatic:
		return "automatic"
	case LivelinessManualByTopic:
		return "manual_by_topic"
	case LivelinessUnknown:
		return "unknown"
	case LivelinessBestAvailable:
		return "best_available"
	}
	return fmt.Sprintf("liveliness(%d)", v)
}
