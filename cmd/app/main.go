package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"forwarding/cmd"
	_ "forwarding/docs"
	httpadapter "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/accountsvc"
	"forwarding/internal/adapters/out/docparse"
	"forwarding/internal/jobs"
)

//	@title			Forwarding Shipment API
//	@version		1.0
//	@description	Shipment lifecycle service: shipment files, task workflows, route timelines and public tracking.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgresdriver.Open(dsn(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	verifier, err := accountsvc.NewClient(configs.AccountServiceURL)
	if err != nil {
		log.Fatalf("Failed to create account service client: %v", err)
	}
	parser, err := docparse.NewClient(configs.DocParserURL)
	if err != nil {
		log.Fatalf("Failed to create document parsing client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger, verifier, parser)

	jobManager := jobs.NewJobManager(app.CreateGetOverdueTasksQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AccountServiceURL: goDotEnvVariable("ACCOUNT_SERVICE_URL"),
		DocParserURL:      goDotEnvVariable("DOC_PARSER_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func dsn(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateSetCommercialTermsCommandHandler(),
		app.CreateEditTaskCommandHandler(),
		app.CreateCompleteTaskCommandHandler(),
		app.CreateUndoTaskCompletionCommandHandler(),
		app.CreateReplaceRouteCommandHandler(),
		app.CreateUpdateRouteTimingCommandHandler(),
		app.CreateApplyParsedDocumentCommandHandler(),
		app.CreateGetTasksQueryHandler(),
		app.CreateGetRouteQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
	)
	server.RegisterRoutes(e, app.IdentityVerifier())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
