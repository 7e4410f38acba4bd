package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/rankfinder/internal/app/controllers"
	appRepos "github.com/yigit/rankfinder/internal/app/repositories"
	appRoutes "github.com/yigit/rankfinder/internal/app/routes"
	appServices "github.com/yigit/rankfinder/internal/app/services"
	"github.com/yigit/rankfinder/internal/app/templates"
	"github.com/yigit/rankfinder/internal/config"
	appMiddleware "github.com/yigit/rankfinder/internal/middleware"
	"github.com/yigit/rankfinder/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SourceService  appServices.SourceService // Interface type
	FilterService  appServices.FilterService // Interface type
	ExportService  appServices.ExportService // Interface type
	RankController *appControllers.RankController
	Repos          *appRepos.Repositories
	Logger         zerolog.Logger
}

// Options are command-line overrides applied after the config file
type Options struct {
	ConfigPath string
	Debug      bool
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(opts Options) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.ConfigPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	if opts.Debug {
		cfg.Logging.Level = string(logger.DebugLevel)
		cfg.Server.Mode = "development"
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: os.Stdout,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	if len(cfg.EnvOverrides) > 0 {
		lgr.Info().Strs("env", cfg.EnvOverrides).Msg("Configuration overridden from environment")
	}
	if opts.Debug {
		logger.Warn().Msg("Debug flag set, forcing debug logging and gin debug mode")
	}
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(cfg.ResultTTL(), cfg.Results.MaxEntries, lgr)

	deps.SourceService = appServices.NewSourceService(cfg.Source.URL, cfg.SourceTimeout(), lgr)
	deps.FilterService = appServices.NewFilterService()
	deps.ExportService = appServices.NewExportService()

	deps.RankController = appControllers.NewRankController(
		deps.SourceService,
		deps.FilterService,
		deps.ExportService,
		deps.Repos.ResultRepository,
		lgr,
	)

	lgr.Debug().Str("sourceUrl", cfg.Source.URL).Dur("sourceTimeout", cfg.SourceTimeout()).Msg("Dependencies built")
	return deps
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	return NewRouter(deps.RankController, lgr)
}

// NewRouter builds an engine serving the rank controller.
func NewRouter(rankController *appControllers.RankController, lgr zerolog.Logger) (*gin.Engine, error) {
	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupRouter(router, rankController)
	return router, nil
}
