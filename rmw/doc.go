// Package rmw is the local QoS backend: the backend-neutral profile
// representation with tick-form durations, the catalog of named built-in
// profiles, and the low-level pairwise comparison primitive.
//
// The qos package consumes this package through a narrow interface, so a
// binding to an actual middleware can replace it without touching the
// profile model.
package rmw
