package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/tenantrepo"
	"dispatch/internal/generated/servers"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	connectionString, err := makeConnectionString(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	if err != nil {
		log.Fatalf("connection string error: %v", err)
	}

	gormDB := mustConnectDB(connectionString)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateEvaluateFallbackCommandHandler(),
		app.CreateGetMarketsQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		NearReadyWindowMin:             goDotEnvVariable("NEAR_READY_WINDOW_MIN"),
		RestaurantReadyFallbackMin:     goDotEnvVariable("RESTAURANT_READY_FALLBACK_MIN"),
		RestaurantNearReadyFallbackMin: goDotEnvVariable("RESTAURANT_NEAR_READY_FALLBACK_MIN"),
		ShopServiceFallbackMin:         goDotEnvVariable("SHOP_SERVICE_FALLBACK_MIN"),
		BatchWindowMin:                 goDotEnvVariable("BATCH_WINDOW_MIN"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func makeConnectionString(host string, port string, user string,
	password string, dbName string, sslMode string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("host is empty")
	}
	if port == "" {
		return "", fmt.Errorf("port is empty")
	}
	if user == "" {
		return "", fmt.Errorf("user is empty")
	}
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	if dbName == "" {
		return "", fmt.Errorf("dbName is empty")
	}
	if sslMode == "" {
		return "", fmt.Errorf("sslMode is empty")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode), nil
}

// mustConnectDB opens the database through lib/pq rather than gorm's default
// pgx dialer. The repositories classify unique violations by unwrapping
// *pq.Error, so the connection has to come from the same driver.
func mustConnectDB(connectionString string) *gorm.DB {
	sqlDB, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&tenantrepo.TenantDTO{},
		&orderrepo.OrderDTO{},
		&jobrepo.DeliveryJobDTO{},
		&jobrepo.JobItemDTO{},
	)
	if err != nil {
		log.Fatalf("migration error: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateRegisterTenantCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateEvaluateFallbackCommandHandler(),
		app.CreateBuildDispatchQueueCommandHandler(),
		app.CreateGetDispatchableOrdersQueryHandler(),
		app.CreateCheckBatchQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	if err := httpin.RegisterOpenAPIRoutes(e); err != nil {
		log.Fatalf("failed to register OpenAPI routes: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
