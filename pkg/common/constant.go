package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFleetDBType string = "FLEET_DB_TYPE"
	EnvKeyFleetDBPath string = "FLEET_DB_PATH"
	EnvKeyFleetDBDsn  string = "FLEET_DB_DSN"

	EnvKeyFleetHttpHostPort string = "FLEET_HTTP_HOST_PORT"

	EnvKeyFleetDefaultRate  string = "FLEET_DEFAULT_RATE"
	EnvKeyFleetDefaultBurst string = "FLEET_DEFAULT_BURST"

	EnvKeyFleetJwtSecret    string = "FLEET_JWT_SECRET"
	EnvKeyFleetAuthRequired string = "FLEET_AUTH_REQUIRED"

	EnvKeyFleetMonthlyQuotaGB string = "FLEET_MONTHLY_QUOTA_GB"
	EnvKeyFleetSeedDemo       string = "FLEET_SEED_DEMO"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameStore         string = "store"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameAuth          string = "auth"

	LoggerFieldFleetCategory     string = "category"
	LoggerCategoryFleetDevice    string = "device"
	LoggerCategoryFleetTelemetry string = "telemetry"
	LoggerCategoryFleetAlert     string = "alert"
	LoggerCategoryFleetReport    string = "report"
	LoggerCategoryFleetUser      string = "user"
	LoggerCategoryFleetAnalytics string = "analytics"
)
