package qos

import (
	"fmt"
	"strings"

	"github.com/roskit/qos-go/rmw"
)

// PolicyKind identifies which policy a compatibility mismatch pertains to.
// Each kind is an independent bit so a report can reference several policies
// at once. Bit values match the ones defined by the middleware layer.
type PolicyKind uint32

const (
	PolicyKindInvalid                      = PolicyKind(rmw.PolicyKindInvalid)
	PolicyKindDurability                   = PolicyKind(rmw.PolicyKindDurability)
	PolicyKindDeadline                     = PolicyKind(rmw.PolicyKindDeadline)
	PolicyKindLiveliness                   = PolicyKind(rmw.PolicyKindLiveliness)
	PolicyKindReliability                  = PolicyKind(rmw.PolicyKindReliability)
	PolicyKindHistory                      = PolicyKind(rmw.PolicyKindHistory)
	PolicyKindLifespan                     = PolicyKind(rmw.PolicyKindLifespan)
	PolicyKindDepth                        = PolicyKind(rmw.PolicyKindDepth)
	PolicyKindLivelinessLeaseDuration      = PolicyKind(rmw.PolicyKindLivelinessLeaseDuration)
	PolicyKindAvoidROSNamespaceConventions = PolicyKind(rmw.PolicyKindAvoidROSNamespaceConventions)
)

var policyKindNames = []struct {
	kind PolicyKind
	name string
}{
	{PolicyKindInvalid, "INVALID"},
	{PolicyKindDurability, "DURABILITY"},
	{PolicyKindDeadline, "DEADLINE"},
	{PolicyKindLiveliness, "LIVELINESS"},
	{PolicyKindReliability, "RELIABILITY"},
	{PolicyKindHistory, "HISTORY"},
	{PolicyKindLifespan, "LIFESPAN"},
	{PolicyKindDepth, "DEPTH"},
	{PolicyKindLivelinessLeaseDuration, "LIVELINESS_LEASE_DURATION"},
	{PolicyKindAvoidROSNamespaceConventions, "AVOID_ROS_NAMESPACE_CONVENTIONS"},
}

// PolicyKindName returns the canonical name of a single policy kind.
func PolicyKindName(kind PolicyKind) (string, error) {
	for _, e := range policyKindNames {
		if e.kind == kind {
			return e.name, nil
		}
	}
	return "", fmt.Errorf("%w: no policy kind with value %d", ErrValueNotFound, kind)
}

// String renders the set kinds joined with "|".
func (k PolicyKind) String() string {
	var names []string
	for _, e := range policyKindNames {
		if k&e.kind != 0 {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("PolicyKind(%d)", uint32(k))
	}
	return strings.Join(names, "|")
}

// legacyMemberPrefix marks retired middleware-style identifiers. Members
// carrying it are excluded from short keys and canonical-name scans.
const legacyMemberPrefix = "RMW"

// policyMember is one entry of a policy enumeration's member table.
// Declaration order in the table is the scan order for value lookups.
type policyMember struct {
	name  string
	value int32
}

func shortKeys(members []policyMember) []string {
	keys := make([]string, 0, len(members))
	for _, m := range members {
		if strings.HasPrefix(m.name, legacyMemberPrefix) {
			continue
		}
		keys = append(keys, strings.ToLower(m.name))
	}
	return keys
}

func memberFromShortKey(enum string, members []policyMember, name string) (int32, error) {
	for _, m := range members {
		if strings.EqualFold(m.name, name) {
			return m.value, nil
		}
	}
	return 0, fmt.Errorf("%w: %s has no member %q", ErrShortKeyNotFound, enum, name)
}

// shortKeyOf returns the lower-cased canonical name for a value. When two
// members share a value the first match in declaration order wins, so the
// result is deterministic by construction.
func shortKeyOf(enum string, members []policyMember, value int32) (string, error) {
	for _, m := range members {
		if strings.HasPrefix(m.name, legacyMemberPrefix) {
			continue
		}
		if m.value == value {
			return strings.ToLower(m.name), nil
		}
	}
	return "", fmt.Errorf("%w: failed to find value %d in %s", ErrValueNotFound, value, enum)
}

func validPolicyValue(members []policyMember, value int32) bool {
	for _, m := range members {
		if m.value == value {
			return true
		}
	}
	return false
}

// memberFromDeprecatedName resolves a retired identifier to its canonical
// member value, warning about the replacement. It never introduces a second
// enumeration value.
func memberFromDeprecatedName(enum string, members []policyMember, aliases map[string]string, name string) (int32, error) {
	replacement, ok := aliases[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no deprecated member %q", ErrShortKeyNotFound, enum, name)
	}
	warnf("%s.%s is deprecated. Use %s.%s instead.", enum, name, enum, replacement)
	return memberFromShortKey(enum, members, replacement)
}
