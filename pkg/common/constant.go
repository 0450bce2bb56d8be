package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFarmLogDir string = "FARM_LOG_DIR"

	EnvKeyFarmDBType string = "FARM_DB_TYPE"
	EnvKeyFarmDbPath string = "FARM_DB_PATH"

	EnvKeyFarmHttpHostPort string = "FARM_HTTP_HOST_PORT"
	EnvKeyFarmGrpcHostPort string = "FARM_GRPC_HOST_PORT"

	EnvKeyFarmDefaultRate  string = "FARM_DEFAULT_RATE"
	EnvKeyFarmDefaultBurst string = "FARM_DEFAULT_BURST"

	EnvKeyFarmSnapshotSchedule   string = "FARM_SNAPSHOT_SCHEDULE"
	EnvKeyFarmWaterPerSprayLiter string = "FARM_WATER_PER_SPRAY_LITERS"

	LoggerNameFarmCore      string = "farm_core"
	LoggerNameAnalytics     string = "analytics"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameScheduler     string = "scheduler"

	LoggerFieldFarmCategory     string = "category"
	LoggerCategoryFarmZone      string = "zone"
	LoggerCategoryFarmDetection string = "detection"
	LoggerCategoryFarmSpray     string = "spray"
	LoggerCategoryFarmReport    string = "report"
	LoggerCategoryFarmSnapshot  string = "snapshot"
)
