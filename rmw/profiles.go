package rmw

// Names of the built-in profiles. The values mirror the middleware's
// predefined catalog (rmw/qos_profiles.h) plus the action status default
// from rcl_action.
const (
	ProfileNameUnknown             = "unknown"
	ProfileNameDefault             = "default"
	ProfileNameSystemDefault       = "system_default"
	ProfileNameSensorData          = "sensor_data"
	ProfileNameServicesDefault     = "services_default"
	ProfileNameParameters          = "parameters"
	ProfileNameParameterEvents     = "parameter_events"
	ProfileNameActionStatusDefault = "action_status_default"
	ProfileNameBestAvailable       = "best_available"
)

var predefinedProfiles = map[string]Profile{
	ProfileNameUnknown: {
		History:                 HistoryUnknown,
		Depth:                   DepthSystemDefault,
		Reliability:             ReliabilityUnknown,
		Durability:              DurabilityUnknown,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessUnknown,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameDefault: {
		History:                 HistoryKeepLast,
		Depth:                   10,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameSystemDefault: {
		History:                 HistorySystemDefault,
		Depth:                   DepthSystemDefault,
		Reliability:             ReliabilitySystemDefault,
		Durability:              DurabilitySystemDefault,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameSensorData: {
		History:                 HistoryKeepLast,
		Depth:                   5,
		Reliability:             ReliabilityBestEffort,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameServicesDefault: {
		History:                 HistoryKeepLast,
		Depth:                   10,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameParameters: {
		History:                 HistoryKeepLast,
		Depth:                   1000,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameParameterEvents: {
		History:                 HistoryKeepLast,
		Depth:                   1000,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityVolatile,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameActionStatusDefault: {
		History:                 HistoryKeepLast,
		Depth:                   1,
		Reliability:             ReliabilityReliable,
		Durability:              DurabilityTransientLocal,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineDefault,
		Liveliness:              LivelinessSystemDefault,
		LivelinessLeaseDuration: LivelinessLeaseDurationDefault,
	},
	ProfileNameBestAvailable: {
		History:                 HistoryKeepLast,
		Depth:                   10,
		Reliability:             ReliabilityBestAvailable,
		Durability:              DurabilityBestAvailable,
		Lifespan:                LifespanDefault,
		Deadline:                DeadlineBestAvailable,
		Liveliness:              LivelinessBestAvailable,
		LivelinessLeaseDuration: LivelinessLeaseDurationBestAvailable,
	},
}

// Predefined returns the built-in profile registered under name.
// The second return value is false when no profile carries that name.
func Predefined(name string) (Profile, bool) {
	p, ok := predefinedProfiles[name]
	return p, ok
}
