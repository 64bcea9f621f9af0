package qos

import (
	"fmt"

	"github.com/roskit/qos-go/rmw"
)

// HistoryPolicy controls how many samples an endpoint retains.
// Member values match the ones defined by the middleware layer.
type HistoryPolicy int32

const (
	HistorySystemDefault = HistoryPolicy(rmw.HistorySystemDefault)
	HistoryKeepLast      = HistoryPolicy(rmw.HistoryKeepLast)
	HistoryKeepAll       = HistoryPolicy(rmw.HistoryKeepAll)
	HistoryUnknown       = HistoryPolicy(rmw.HistoryUnknown)
)

var historyMembers = []policyMember{
	{"SYSTEM_DEFAULT", rmw.HistorySystemDefault},
	{"KEEP_LAST", rmw.HistoryKeepLast},
	{"KEEP_ALL", rmw.HistoryKeepAll},
	{"UNKNOWN", rmw.HistoryUnknown},
}

var historyAliases = map[string]string{
	"RMW_QOS_POLICY_HISTORY_SYSTEM_DEFAULT": "SYSTEM_DEFAULT",
	"RMW_QOS_POLICY_HISTORY_KEEP_LAST":      "KEEP_LAST",
	"RMW_QOS_POLICY_HISTORY_KEEP_ALL":       "KEEP_ALL",
	"RMW_QOS_POLICY_HISTORY_UNKNOWN":        "UNKNOWN",
}

// HistoryShortKeys returns the lower-cased names of all non-legacy members.
func HistoryShortKeys() []string {
	return shortKeys(historyMembers)
}

// HistoryFromShortKey retrieves a history policy from a short name,
// case-insensitive.
func HistoryFromShortKey(name string) (HistoryPolicy, error) {
	v, err := memberFromShortKey("HistoryPolicy", historyMembers, name)
	return HistoryPolicy(v), err
}

// HistoryFromDeprecatedName resolves a retired middleware-style identifier
// to its canonical member, emitting a deprecation warning.
func HistoryFromDeprecatedName(name string) (HistoryPolicy, error) {
	v, err := memberFromDeprecatedName("HistoryPolicy", historyMembers, historyAliases, name)
	return HistoryPolicy(v), err
}

// ShortKey returns the lower-cased canonical name for the value.
func (p HistoryPolicy) ShortKey() (string, error) {
	return shortKeyOf("HistoryPolicy", historyMembers, int32(p))
}

func (p HistoryPolicy) String() string {
	k, err := p.ShortKey()
	if err != nil {
		return fmt.Sprintf("HistoryPolicy(%d)", int32(p))
	}
	return k
}

// MarshalText encodes the policy as its short key.
func (p HistoryPolicy) MarshalText() ([]byte, error) {
	k, err := p.ShortKey()
	if err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText decodes a short key, case-insensitive.
func (p *HistoryPolicy) UnmarshalText(text []byte) error {
	v, err := HistoryFromShortKey(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ReliabilityPolicy controls whether delivery is guaranteed.
// Member values match the ones defined by the middleware layer.
type ReliabilityPolicy int32

const (
	ReliabilitySystemDefault = ReliabilityPolicy(rmw.ReliabilitySystemDefault)
	ReliabilityReliable      = ReliabilityPolicy(rmw.ReliabilityReliable)
	ReliabilityBestEffort    = ReliabilityPolicy(rmw.ReliabilityBestEffort)
	ReliabilityUnknown       = ReliabilityPolicy(rmw.ReliabilityUnknown)
	ReliabilityBestAvailable = ReliabilityPolicy(rmw.ReliabilityBestAvailable)
)

var reliabilityMembers = []policyMember{
	{"SYSTEM_DEFAULT", rmw.ReliabilitySystemDefault},
	{"RELIABLE", rmw.ReliabilityReliable},
	{"BEST_EFFORT", rmw.ReliabilityBestEffort},
	{"UNKNOWN", rmw.ReliabilityUnknown},
	{"BEST_AVAILABLE", rmw.ReliabilityBestAvailable},
}

var reliabilityAliases = map[string]string{
	"RMW_QOS_POLICY_RELIABILITY_SYSTEM_DEFAULT": "SYSTEM_DEFAULT",
	"RMW_QOS_POLICY_RELIABILITY_RELIABLE":       "RELIABLE",
	"RMW_QOS_POLICY_RELIABILITY_BEST_EFFORT":    "BEST_EFFORT",
	"RMW_QOS_POLICY_RELIABILITY_UNKNOWN":        "UNKNOWN",
}

// ReliabilityShortKeys returns the lower-cased names of all non-legacy members.
func ReliabilityShortKeys() []string {
	return shortKeys(reliabilityMembers)
}

// ReliabilityFromShortKey retrieves a reliability policy from a short name,
// case-insensitive.
func ReliabilityFromShortKey(name string) (ReliabilityPolicy, error) {
	v, err := memberFromShortKey("ReliabilityPolicy", reliabilityMembers, name)
	return ReliabilityPolicy(v), err
}

// ReliabilityFromDeprecatedName resolves a retired middleware-style
// identifier to its canonical member, emitting a deprecation warning.
func ReliabilityFromDeprecatedName(name string) (ReliabilityPolicy, error) {
	v, err := memberFromDeprecatedName("ReliabilityPolicy", reliabilityMembers, reliabilityAliases, name)
	return ReliabilityPolicy(v), err
}

// ShortKey returns the lower-cased canonical name for the value.
func (p ReliabilityPolicy) ShortKey() (string, error) {
	return shortKeyOf("ReliabilityPolicy", reliabilityMembers, int32(p))
}

func (p ReliabilityPolicy) String() string {
	k, err := p.ShortKey()
	if err != nil {
		return fmt.Sprintf("ReliabilityPolicy(%d)", int32(p))
	}
	return k
}

// MarshalText encodes the policy as its short key.
func (p ReliabilityPolicy) MarshalText() ([]byte, error) {
	k, err := p.ShortKey()
	if err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText decodes a short key, case-insensitive.
func (p *ReliabilityPolicy) UnmarshalText(text []byte) error {
	v, err := ReliabilityFromShortKey(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// DurabilityPolicy controls whether samples persist for late-joining
// subscribers. Member values match the ones defined by the middleware layer.
type DurabilityPolicy int32

const (
	DurabilitySystemDefault  = DurabilityPolicy(rmw.DurabilitySystemDefault)
	DurabilityTransientLocal = DurabilityPolicy(rmw.DurabilityTransientLocal)
	DurabilityVolatile       = DurabilityPolicy(rmw.DurabilityVolatile)
	DurabilityUnknown        = DurabilityPolicy(rmw.DurabilityUnknown)
	DurabilityBestAvailable  = DurabilityPolicy(rmw.DurabilityBestAvailable)
)

var durabilityMembers = []policyMember{
	{"SYSTEM_DEFAULT", rmw.DurabilitySystemDefault},
	{"TRANSIENT_LOCAL", rmw.DurabilityTransientLocal},
	{"VOLATILE", rmw.DurabilityVolatile},
	{"UNKNOWN", rmw.DurabilityUnknown},
	{"BEST_AVAILABLE", rmw.DurabilityBestAvailable},
}

var durabilityAliases = map[string]string{
	"RMW_QOS_POLICY_DURABILITY_SYSTEM_DEFAULT":  "SYSTEM_DEFAULT",
	"RMW_QOS_POLICY_DURABILITY_TRANSIENT_LOCAL": "TRANSIENT_LOCAL",
	"RMW_QOS_POLICY_DURABILITY_VOLATILE":        "VOLATILE",
	"RMW_QOS_POLICY_DURABILITY_UNKNOWN":         "UNKNOWN",
}

// DurabilityShortKeys returns the lower-cased names of all non-legacy members.
func DurabilityShortKeys() []string {
	return shortKeys(durabilityMembers)
}

// DurabilityFromShortKey retrieves a durability policy from a short name,
// case-insensitive.
func DurabilityFromShortKey(name string) (DurabilityPolicy, error) {
	v, err := memberFromShortKey("DurabilityPolicy", durabilityMembers, name)
	return DurabilityPolicy(v), err
}

// DurabilityFromDeprecatedName resolves a retired middleware-style
// identifier to its canonical member, emitting a deprecation warning.
func DurabilityFromDeprecatedName(name string) (DurabilityPolicy, error) {
	v, err := memberFromDeprecatedName("DurabilityPolicy", durabilityMembers, durabilityAliases, name)
	return DurabilityPolicy(v), err
}

// ShortKey returns the lower-cased canonical name for the value.
func (p DurabilityPolicy) ShortKey() (string, error) {
	return shortKeyOf("DurabilityPolicy", durabilityMembers, int32(p))
}

func (p DurabilityPolicy) String() string {
	k, err := p.ShortKey()
	if err != nil {
		return fmt.Sprintf("DurabilityPolicy(%d)", int32(p))
	}
	return k
}

// MarshalText encodes the policy as its short key.
func (p DurabilityPolicy) MarshalText() ([]byte, error) {
	k, err := p.ShortKey()
	if err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText decodes a short key, case-insensitive.
func (p *DurabilityPolicy) UnmarshalText(text []byte) error {
	v, err := DurabilityFromShortKey(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// LivelinessPolicy controls how an endpoint's liveness assertion is
// produced. Member values match the ones defined by the middleware layer.
type LivelinessPolicy int32

const (
	LivelinessSystemDefault = LivelinessPolicy(rmw.LivelinessSystemDefault)
	LivelinessAutomatic     = LivelinessPolicy(rmw.LivelinessAutomatic)
	LivelinessManualByTopic = LivelinessPolicy(rmw.LivelinessManualByTopic)
	LivelinessUnknown       = LivelinessPolicy(rmw.LivelinessUnknown)
	LivelinessBestAvailable = LivelinessPolicy(rmw.LivelinessBestAvailable)
)

var livelinessMembers = []policyMember{
	{"SYSTEM_DEFAULT", rmw.LivelinessSystemDefault},
	{"AUTOMATIC", rmw.LivelinessAutomatic},
	{"MANUAL_BY_TOPIC", rmw.LivelinessManualByTopic},
	{"UNKNOWN", rmw.LivelinessUnknown},
	{"BEST_AVAILABLE", rmw.LivelinessBestAvailable},
}

var livelinessAliases = map[string]string{
	"RMW_QOS_POLICY_LIVELINESS_SYSTEM_DEFAULT":  "SYSTEM_DEFAULT",
	"RMW_QOS_POLICY_LIVELINESS_AUTOMATIC":       "AUTOMATIC",
	"RMW_QOS_POLICY_LIVELINESS_MANUAL_BY_TOPIC": "MANUAL_BY_TOPIC",
	"RMW_QOS_POLICY_LIVELINESS_UNKNOWN":         "UNKNOWN",
}

// LivelinessShortKeys returns the lower-cased names of all non-legacy members.
func LivelinessShortKeys() []string {
	return shortKeys(livelinessMembers)
}

// LivelinessFromShortKey retrieves a liveliness policy from a short name,
// case-insensitive.
func LivelinessFromShortKey(name string) (LivelinessPolicy, error) {
	v, err := memberFromShortKey("LivelinessPolicy", livelinessMembers, name)
	return LivelinessPolicy(v), err
}

// LivelinessFromDeprecatedName resolves a retired middleware-style
// identifier to its canonical member, emitting a deprecation warning.
func LivelinessFromDeprecatedName(name string) (LivelinessPolicy, error) {
	v, err := memberFromDeprecatedName("LivelinessPolicy", livelinessMembers, livelinessAliases, name)
	return LivelinessPolicy(v), err
}

// ShortKey returns the lower-cased canonical name for the value.
func (p LivelinessPolicy) ShortKey() (string, error) {
	return shortKeyOf("LivelinessPolicy", livelinessMembers, int32(p))
}

func (p LivelinessPolicy) String() string {
	k, err := p.ShortKey()
	if err != nil {
		return fmt.Sprintf("LivelinessPolicy(%d)", int32(p))
	}
	return k
}

// MarshalText encodes the policy as its short key.
func (p LivelinessPolicy) MarshalText() ([]byte, error) {
	k, err := p.ShortKey()
	if err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText decodes a short key, case-insensitive.
func (p *LivelinessPolicy) UnmarshalText(text []byte) error {
	v, err := LivelinessFromShortKey(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Old-style names kept for source compatibility with early adopters.

// Deprecated: Use HistoryPolicy.
type QoSHistoryPolicy = HistoryPolicy

// Deprecated: Use ReliabilityPolicy.
type QoSReliabilityPolicy = ReliabilityPolicy

// Deprecated: Use DurabilityPolicy.
type QoSDurabilityPolicy = DurabilityPolicy

// Deprecated: Use LivelinessPolicy.
type QoSLivelinessPolicy = LivelinessPolicy
