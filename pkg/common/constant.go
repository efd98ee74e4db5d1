package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFleetDBType string = "FLEET_DB_TYPE"
	EnvKeyFleetDbPath string = "FLEET_DB_PATH"

	EnvKeyFleetHttpHostPort string = "FLEET_HTTP_HOST_PORT"

	EnvKeyFleetLoginRate  string = "FLEET_LOGIN_RATE"
	EnvKeyFleetLoginBurst string = "FLEET_LOGIN_BURST"

	LoggerNameFleetCore          string = "fleet_core"
	LoggerNameRestfulServer      string = "restful_server"
	LoggerFieldFleetCategory     string = "category"
	LoggerCategoryFleetVehicle   string = "vehicle"
	LoggerCategoryFleetSchedule  string = "schedule"
	LoggerCategoryFleetWorkOrder string = "work_order"
	LoggerCategoryFleetInventory string = "inventory"
	LoggerCategoryFleetFuel      string = "fuel"
	LoggerCategoryFleetAlert     string = "alert"
	LoggerCategoryFleetUser      string = "user"
	LoggerCategoryFleetStats     string = "stats"

	SessionCookieName string = "fleet_session"
)
