package rmw

// Policy values match the enumerations defined by the middleware layer
// (rmw/types.h). The qos package mirrors these values in its typed enums.
const (
	HistorySystemDefault int32 = 0
	HistoryKeepLast      int32 = 1
	HistoryKeepAll       int32 = 2
	HistoryUnknown       int32 = 3

	ReliabilitySystemDefault int32 = 0
	ReliabilityReliable      int32 = 1
	ReliabilityBestEffort    int32 = 2
	ReliabilityUnknown       int32 = 3
	ReliabilityBestAvailable int32 = 4

	DurabilitySystemDefault  int32 = 0
	DurabilityTransientLocal int32 = 1
	DurabilityVolatile       int32 = 2
	DurabilityUnknown        int32 = 3
	DurabilityBestAvailable  int32 = 4

	LivelinessSystemDefault int32 = 0
	LivelinessAutomatic     int32 = 1
	LivelinessManualByTopic int32 = 3
	LivelinessUnknown       int32 = 4
	LivelinessBestAvailable int32 = 5
)

// DepthSystemDefault leaves the history depth to the middleware default.
const DepthSystemDefault = 0

// Profile is the backend-neutral form of a QoS profile: raw policy values,
// a queue depth, and tick-form durations. This is the representation the
// low-level comparison primitive and the middleware consume.
type Profile struct {
	History                      int32
	Depth                        int
	Reliability                  int32
	Durability                   int32
	Lifespan                     Duration
	Deadline                     Duration
	Liveliness                   int32
	LivelinessLeaseDuration      Duration
	AvoidROSNamespaceConventions bool
}
