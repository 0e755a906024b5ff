package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/dsu-aiml/portal/internal/app/controllers"
	appMigrations "github.com/dsu-aiml/portal/internal/app/migrations"
	appRepos "github.com/dsu-aiml/portal/internal/app/repositories"
	appRoutes "github.com/dsu-aiml/portal/internal/app/routes"
	appServices "github.com/dsu-aiml/portal/internal/app/services"
	"github.com/dsu-aiml/portal/internal/config"
	"github.com/dsu-aiml/portal/internal/db"
	"github.com/dsu-aiml/portal/internal/pkg/events"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
	"github.com/dsu-aiml/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Producer    *events.Producer // nil when Kafka is not configured
	Logger      zerolog.Logger
}

// ConfigPath returns the YAML config location, overridable with CONFIG_PATH.
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects, applies the embedded migrations and, when enabled,
// seeds empty tables. Any failure here must stop the process before it listens.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(database.SQLDB(), lgr)
	if err != nil {
		database.Close()
		return nil, err
	}
	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if cfg.Database.SeedOnBoot {
		repos := appRepos.NewRepositories(database.Pool)
		if err := seed.CreateDefaultData(ctx, repos.StudentRepository, repos.FacultyRepository, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool appRepos.DB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(pool)

	deps.Producer = events.NewProducer(cfg.KafkaBrokers(), cfg.Kafka.Topic)
	if deps.Producer == nil {
		lgr.Info().Msg("Kafka brokers not configured, contact events disabled")
	} else {
		lgr.Info().Str("topic", cfg.Kafka.Topic).Msg("Kafka producer configured")
	}

	var publisher events.Publisher
	if deps.Producer != nil {
		publisher = deps.Producer
	}
	deps.Services = appServices.NewServices(deps.Repos, publisher)

	deps.Controllers = appRoutes.Controllers{
		Student: appControllers.NewStudentController(deps.Services.StudentService),
		Faculty: appControllers.NewFacultyController(deps.Services.FacultyService),
		Contact: appControllers.NewContactController(deps.Services.ContactService),
		Stats:   appControllers.NewStatsController(deps.Services.StatsService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := appRoutes.NewEngine()
	appRoutes.SetupRouter(router, deps.Controllers, cfg.Server.StaticDir)

	if _, err := os.Stat(cfg.Server.StaticDir); err != nil {
		lgr.Warn().Str("path", cfg.Server.StaticDir).Msg("Static directory not found, only the API will be served")
	} else {
		lgr.Info().Str("path", cfg.Server.StaticDir).Msg("Static file serving configured")
	}

	return router
}
