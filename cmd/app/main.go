package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"repairshop/cmd"
	httpin "repairshop/internal/adapters/in/http"
	"repairshop/internal/adapters/out/postgres/notesrepo"
	"repairshop/internal/adapters/out/postgres/orderrepo"
	"repairshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateArchiveDrainedQuotesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		TaxRate:    goDotEnvVariable("TAX_RATE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PartDTO{},
		&orderrepo.LaborDTO{},
		&notesrepo.ProgressNoteDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeStatusCommandHandler(),
		app.CreateAddPartCommandHandler(),
		app.CreateUpdatePartCommandHandler(),
		app.CreateRemovePartCommandHandler(),
		app.CreateSetPartFlagCommandHandler(),
		app.CreateBulkAssignOrderNumberCommandHandler(),
		app.CreateAddLaborCommandHandler(),
		app.CreateUpdateLaborCommandHandler(),
		app.CreateRemoveLaborCommandHandler(),
		app.CreateSetServicesCommandHandler(),
		app.CreateConvertQuoteCommandHandler(),
		app.CreateSplitWorkOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveWorkOrdersQueryHandler(),
		app.TaxPolicy(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
