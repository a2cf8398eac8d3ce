package constants

// viper keys
const (
	ViperServerAddrKey        = "server.addr"
	ViperCORSOriginsKey       = "server.cors_origins"
	ViperDatabaseURLKey       = "database.url"
	ViperDatabaseRetriesKey   = "database.connect_retries"
	ViperLogLevelKey          = "log.level"
	ViperLogFormatKey         = "log.format"
	ViperPlanningParamsKey    = "planning.params"
	ViperScenariosKey         = "planning.scenarios"
	ViperBenchmarksFileKey    = "planning.benchmarks_file"
	ViperStoreFetchRetriesKey = "planning.store_fetch_retries"
)

const EnvPrefix = "PLANNER"
