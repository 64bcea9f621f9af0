package qos

import (
	"github.com/roskit/qos-go/rmw"
)

// Compatibility classifies whether a publisher/subscription pairing can
// communicate.
type Compatibility int32

const (
	// CompatibilityOK means compatibility is certain given concrete
	// policy values.
	CompatibilityOK Compatibility = iota

	// CompatibilityWarning means compatibility cannot be determined: one
	// or more relevant policy values resolve only at discovery time.
	CompatibilityWarning

	// CompatibilityError means the profiles are certainly incompatible;
	// no link will form under these settings.
	CompatibilityError
)

func (c Compatibility) String() string {
	switch c {
	case CompatibilityOK:
		return "ok"
	case CompatibilityWarning:
		return "warning"
	case CompatibilityError:
		return "error"
	}
	return "invalid"
}

// Backend is the narrow surface of the middleware layer this package
// consumes: the named built-in profiles and the low-level pairwise
// comparison primitive. The rmw package provides the local implementation;
// a binding to an actual middleware can be swapped in for verification.
type Backend interface {
	// Predefined returns the backend's built-in profile for a preset name.
	Predefined(name string) (rmw.Profile, bool)

	// CheckCompatible runs the low-level per-policy comparison.
	CheckCompatible(pub, sub rmw.Profile) rmw.Result
}

// localBackend adapts the rmw package's pure-Go implementation.
type localBackend struct{}

func (localBackend) Predefined(name string) (rmw.Profile, bool) {
	return rmw.Predefined(name)
}

func (localBackend) CheckCompatible(pub, sub rmw.Profile) rmw.Result {
	return rmw.CheckCompatible(pub, sub)
}

var backend Backend = localBackend{}

// SetBackend replaces the middleware backend. Call during process startup,
// before the preset catalog or default profile is first used; the call is
// not synchronized against concurrent readers.
func SetBackend(b Backend) {
	if b != nil {
		backend = b
	}
}

func activeBackend() Backend {
	return backend
}

// CheckCompatible reports whether a publisher and a subscription using the
// two profiles can communicate.
//
// The reason string names every policy that drove a non-OK verdict and is
// empty when the verdict is CompatibilityOK; the returned PolicyKind is the
// bitmask of those policies. Warning and error verdicts are ordinary return
// values, not errors: they mean the configuration is valid but communication
// is uncertain or impossible.
func CheckCompatible(publisherProfile, subscriptionProfile *Profile) (Compatibility, string, PolicyKind) {
	res := activeBackend().CheckCompatible(publisherProfile.ToRMW(), subscriptionProfile.ToRMW())
	kinds := PolicyKind(res.Kinds)
	switch res.Compatibility {
	case rmw.CompatibilityOK:
		return CompatibilityOK, res.Reason, kinds
	case rmw.CompatibilityWarning:
		return CompatibilityWarning, res.Reason, kinds
	default:
		return CompatibilityError, res.Reason, kinds
	}
}
