package rmw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedDefault(t *testing.T) {
	p, ok := Predefined(ProfileNameDefault)
	require.True(t, ok)

	assert.Equal(t, HistoryKeepLast, p.History)
	assert.Equal(t, 10, p.Depth)
	assert.Equal(t, ReliabilityReliable, p.Reliability)
	assert.Equal(t, DurabilityVolatile, p.Durability)
	assert.Equal(t, LivelinessSystemDefault, p.Liveliness)
	assert.Equal(t, DeadlineDefault, p.Deadline)
	assert.Equal(t, LifespanDefault, p.Lifespan)
	assert.False(t, p.AvoidROSNamespaceConventions)
}

func TestPredefinedSensorData(t *testing.T) {
	p, ok := Predefined(ProfileNameSensorData)
	require.True(t, ok)

	assert.Equal(t, ReliabilityBestEffort, p.Reliability)
	assert.Equal(t, 5, p.Depth)
	assert.Equal(t, DurabilityVolatile, p.Durability)
}

func TestPredefinedParameters(t *testing.T) {
	for _, name := range []string{ProfileNameParameters, ProfileNameParameterEvents} {
		p, ok := Predefined(name)
		require.True(t, ok, name)
		assert.Equal(t, 1000, p.Depth, name)
		assert.Equal(t, ReliabilityReliable, p.Reliability, name)
	}
}

func TestPredefinedActionStatusDefault(t *testing.T) {
	p, ok := Predefined(ProfileNameActionStatusDefault)
	require.True(t, ok)

	assert.Equal(t, DurabilityTransientLocal, p.Durability)
	assert.Equal(t, 1, p.Depth)
	assert.Equal(t, ReliabilityReliable, p.Reliability)
}

func TestPredefinedUnknown(t *testing.T) {
	p, ok := Predefined(ProfileNameUnknown)
	require.True(t, ok)

	assert.Equal(t, HistoryUnknown, p.History)
	assert.Equal(t, ReliabilityUnknown, p.Reliability)
	assert.Equal(t, DurabilityUnknown, p.Durability)
	assert.Equal(t, LivelinessUnknown, p.Liveliness)
}

func TestPredefinedBestAvailable(t *testing.T) {
	p, ok := Predefined(ProfileNameBestAvailable)
	require.True(t, ok)

	assert.Equal(t, ReliabilityBestAvailable, p.Reliability)
	assert.Equal(t, DurabilityBestAvailable, p.Durability)
	assert.Equal(t, LivelinessBestAvailable, p.Liveliness)
	assert.Equal(t, DeadlineBestAvailable, p.Deadline)
	assert.Equal(t, LivelinessLeaseDurationBestAvailable, p.LivelinessLeaseDuration)
}

func TestPredefinedUnknownName(t *testing.T) {
	_, ok := Predefined("does_not_exist")
	assert.False(t, ok)
}

func TestPredefinedCatalogComplete(t *testing.T) {
	names := []string{
		ProfileNameUnknown,
		ProfileNameDefault,
		ProfileNameSystemDefault,
		ProfileNameSensorData,
		ProfileNameServicesDefault,
		ProfileNameParameters,
		ProfileNameParameterEvents,
		ProfileNameActionStatusDefault,
		ProfileNameBestAvailable,
	}
	for _, name := range names {
		_, ok := Predefined(name)
		assert.True(t, ok, name)
	}
	assert.Len(t, predefinedProfiles, len(names))
}
