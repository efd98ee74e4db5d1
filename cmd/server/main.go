package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/db"
	"github.com/EagleFox31/YaroFleet/pkg/fleet"
	fleetHttp "github.com/EagleFox31/YaroFleet/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	fleetDbType := os.Getenv(common.EnvKeyFleetDBType)
	switch fleetDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FLEET_DB_TYPE: " + fleetDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFleetHttpHostPort))

	var loginRate float64
	var loginBurst int64

	if loginRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFleetLoginRate), 64); err != nil {
		log.Fatal("Invalid FLEET_LOGIN_RATE, or not set in .env, should be a float64 value")
	}

	if loginBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFleetLoginBurst), 10, 64); err != nil {
		log.Fatal("Invalid FLEET_LOGIN_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	fleetCore := fleet.Fleet{
		Db: *dbInstance,
	}
	fleetCore.WithAllServices()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &fleetHttp.RestfulServer{
		Server:            gin.Default(),
		Fleet:             &fleetCore,
		Sessions:          fleet.NewSessionStore(fleet.DefaultSessionTTL),
		LoginLimiterStore: fleet.NewRateLimiterStore(rate.Limit(loginRate), int(loginBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("login_limiter",
			fmt.Sprintf("{\"login_rate\": %v, \"login_burst\": %v}", loginRate, loginBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
