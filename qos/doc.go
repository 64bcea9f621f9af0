// Package qos models Quality of Service profiles for publish/subscribe
// endpoints and determines whether a publisher/subscriber pair can
// establish a compatible data link.
//
// The package owns the profile data model: typed policy enumerations with
// case-insensitive short-key lookup, validated profile construction with
// defaults backfilled from a single library default profile, and a catalog
// of named preset profiles. Compatibility checking delegates the per-policy
// comparison to a pluggable middleware backend (the rmw package by default)
// and returns an OK/warning/error verdict with a human-readable reason.
//
// All types are value objects. The preset catalog and default profile are
// built once on first use and read-only afterwards; profiles under mutation
// must be owned by a single goroutine.
package qos
