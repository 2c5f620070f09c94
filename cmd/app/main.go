package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/amqp"
	"fulfillment/internal/adapters/out/postgres/dnaservicerepo"
	"fulfillment/internal/adapters/out/postgres/identityrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	notifier := mustCreateNotifier(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateCompleteReadyOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:               goDotEnvVariable("AMQP_URL"),
		AmqpNotificationQueue: goDotEnvVariable("AMQP_NOTIFICATION_QUEUE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&identityrepo.IdentityDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&dnaservicerepo.ServiceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustCreateNotifier(configs cmd.Config) *amqp.Notifier {
	conn, err := amqp091.Dial(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Error connecting to message broker: %v", err)
	}

	notifier, err := amqp.NewNotifier(conn, configs.AmqpNotificationQueue)
	if err != nil {
		log.Fatalf("Error creating notifier: %v", err)
	}

	return notifier
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	resolveActor := func(ctx echo.Context, id kernel.UUID) (identity.Actor, error) {
		uow := app.CreateUnitOfWork()
		i, err := uow.IdentityRepository().Get(ctx.Request().Context(), id)
		if err != nil {
			return identity.Actor{}, err
		}
		return i.Actor(), nil
	}

	server := httpin.NewServer(
		resolveActor,
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCreateDNAServiceCommandHandler(),
		app.CreateRegisterIdentityCommandHandler(),
		app.CreateUpdateProfileCommandHandler(),
		app.CreateChangePasswordCommandHandler(),
		app.CreateActivateAccountCommandHandler(),
		app.CreateGetIncompleteOrdersQueryHandler(),
		app.CreateGetIdentitiesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
