package qos

import (
	"fmt"
	"strings"
	"sync"

	"github.com/roskit/qos-go/rmw"
)

// Preset profile names. Each maps to one immutable profile built once from
// the backend's built-in named defaults.
const (
	// PresetUnknown is reserved for initialization placeholders and must
	// not be used as an actual operating profile.
	PresetUnknown = rmw.ProfileNameUnknown

	// PresetDefault is the library-wide default profile.
	PresetDefault = rmw.ProfileNameDefault

	// PresetSystemDefault defers every policy to the middleware vendor.
	PresetSystemDefault = rmw.ProfileNameSystemDefault

	// PresetSensorData suits high-rate sensor streams: best-effort
	// delivery with a small queue.
	PresetSensorData = rmw.ProfileNameSensorData

	// PresetServicesDefault suits request/response exchanges.
	PresetServicesDefault = rmw.ProfileNameServicesDefault

	// PresetParameters suits parameter communication; a large queue so
	// requests do not get lost.
	PresetParameters = rmw.ProfileNameParameters

	// PresetParameterEvents suits parameter change event streams.
	PresetParameterEvents = rmw.ProfileNameParameterEvents

	// PresetActionStatusDefault suits action status topics: reliable with
	// transient-local durability.
	PresetActionStatusDefault = rmw.ProfileNameActionStatusDefault

	// PresetBestAvailable matches the majority of endpoints discovered at
	// creation time while maintaining the highest level of service.
	// Policies are not updated after creation, so use with care: races
	// with discovery can produce non-deterministic pairings.
	PresetBestAvailable = rmw.ProfileNameBestAvailable
)

// presetNames lists the catalog in declaration order.
var presetNames = []string{
	PresetUnknown,
	PresetDefault,
	PresetSystemDefault,
	PresetSensorData,
	PresetServicesDefault,
	PresetParameters,
	PresetParameterEvents,
	PresetActionStatusDefault,
	PresetBestAvailable,
}

var (
	defaultOnce    sync.Once
	libraryDefault *Profile

	presetOnce   sync.Once
	presetByName map[string]*Profile
)

// defaultProfile returns the frozen library default profile used to
// backfill omitted construction arguments. Built once from the backend's
// "default" entry so defaults track a single source of truth; not exposed
// directly to encourage callers to think about their QoS settings.
func defaultProfile() *Profile {
	defaultOnce.Do(func() {
		rp, ok := activeBackend().Predefined(PresetDefault)
		if !ok {
			panic("qos: backend has no default profile")
		}
		p, err := ProfileFromRMW(rp)
		if err != nil {
			panic(fmt.Sprintf("qos: backend default profile is invalid: %v", err))
		}
		libraryDefault = p
	})
	return libraryDefault
}

func presetCatalog() map[string]*Profile {
	presetOnce.Do(func() {
		presetByName = make(map[string]*Profile, len(presetNames))
		for _, name := range presetNames {
			rp, ok := activeBackend().Predefined(name)
			if !ok {
				panic(fmt.Sprintf("qos: backend has no %q profile", name))
			}
			p, err := ProfileFromRMW(rp)
			if err != nil {
				panic(fmt.Sprintf("qos: backend %q profile is invalid: %v", name, err))
			}
			presetByName[name] = p
		}
	})
	return presetByName
}

// PresetShortKeys returns the preset names in declaration order.
func PresetShortKeys() []string {
	keys := make([]string, len(presetNames))
	copy(keys, presetNames)
	return keys
}

// PresetFromShortKey retrieves a preset profile by name, case-insensitive.
// The returned profile is a copy; the catalog entries are never mutated.
func PresetFromShortKey(name string) (*Profile, error) {
	p, ok := presetCatalog()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: no preset profile named %q", ErrShortKeyNotFound, name)
	}
	return p.Clone(), nil
}

func mustPreset(name string) *Profile {
	p, err := PresetFromShortKey(name)
	if err != nil {
		panic(err)
	}
	return p
}

// ProfileUnknown returns the initialization placeholder profile.
// Do not use it as an operating profile.
func ProfileUnknown() *Profile { return mustPreset(PresetUnknown) }

// ProfileDefault returns the default profile (reliable, volatile,
// keep-last 10).
func ProfileDefault() *Profile { return mustPreset(PresetDefault) }

// ProfileSystemDefault returns the profile deferring every policy to the
// middleware vendor.
func ProfileSystemDefault() *Profile { return mustPreset(PresetSystemDefault) }

// ProfileSensorData returns the sensor data profile (best-effort,
// keep-last 5).
func ProfileSensorData() *Profile { return mustPreset(PresetSensorData) }

// ProfileServicesDefault returns the services profile (reliable, volatile,
// keep-last 10).
func ProfileServicesDefault() *Profile { return mustPreset(PresetServicesDefault) }

// ProfileParameters returns the parameters profile (reliable, keep-last
// 1000).
func ProfileParameters() *Profile { return mustPreset(PresetParameters) }

// ProfileParameterEvents returns the parameter events profile (reliable,
// keep-last 1000).
func ProfileParameterEvents() *Profile { return mustPreset(PresetParameterEvents) }

// ProfileActionStatusDefault returns the action status profile (reliable,
// transient-local, keep-last 1).
func ProfileActionStatusDefault() *Profile { return mustPreset(PresetActionStatusDefault) }

// ProfileBestAvailable returns the best-available profile.
func ProfileBestAvailable() *Profile { return mustPreset(PresetBestAvailable) }
