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

	"fleetwatch.dev/fleet-dashboard-service/pkg/auth"
	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/fleet"
	fleetHttp "fleetwatch.dev/fleet-dashboard-service/pkg/http"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	logger := common.GetLogger()

	var storage store.Storage
	fleetDbType := os.Getenv(common.EnvKeyFleetDBType)
	switch fleetDbType {
	case "memory":
		storage = store.NewMemStorage()
	case "file":
		storage, err = store.NewGormStorage(store.UseSqliteDialector())
		if err != nil {
			log.Fatal("Failed to open sqlite store: ", err)
		}
	case "postgres":
		storage, err = store.NewGormStorage(store.UsePostgresDialector())
		if err != nil {
			log.Fatal("Failed to open postgres store: ", err)
		}
	default:
		log.Fatal("Unknown FLEET_DB_TYPE: " + fleetDbType)
	}

	if os.Getenv(common.EnvKeyFleetSeedDemo) == "true" {
		if err := store.SeedDemoData(storage); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
		logger.Info("Seeded demo fleet data")
	}

	quotaGB := fleet.DefaultMonthlyQuotaGB
	if raw := os.Getenv(common.EnvKeyFleetMonthlyQuotaGB); raw != "" {
		if quotaGB, err = strconv.ParseFloat(raw, 64); err != nil || quotaGB <= 0 {
			log.Fatal("Invalid FLEET_MONTHLY_QUOTA_GB, should be a positive float64 value")
		}
	}

	fleetCore := fleet.Fleet{
		Store:          storage,
		MonthlyQuotaGB: quotaGB,
	}
	fleetCore.WithDefaultServices()

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyFleetJwtSecret))
	if jwtSecret == "" {
		log.Fatal("FLEET_JWT_SECRET not set in .env")
	}

	var limiterStore *fleet.RateLimiterStore
	if rawRate := os.Getenv(common.EnvKeyFleetDefaultRate); rawRate != "" {
		var defaultRate float64
		var defaultBurst int64

		if defaultRate, err = strconv.ParseFloat(rawRate, 64); err != nil {
			log.Fatal("Invalid FLEET_DEFAULT_RATE, should be a float64 value")
		}
		if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFleetDefaultBurst), 10, 64); err != nil {
			log.Fatal("Invalid FLEET_DEFAULT_BURST, or not set in .env, should be an int value")
		}

		limiterStore = fleet.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
		logger.Info("Rate limiting enabled with:",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFleetHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &fleetHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            &fleetCore,
		RateLimiterStore: limiterStore,
		Tokens:           auth.NewTokenIssuer(jwtSecret, auth.DefaultTokenTTL),
		AuthRequired:     os.Getenv(common.EnvKeyFleetAuthRequired) == "true",
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
