// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/encapsulab/encapsulab/internal/application/ports"
	"github.com/encapsulab/encapsulab/internal/application/services"
	"github.com/encapsulab/encapsulab/internal/application/subjects"
	"github.com/encapsulab/encapsulab/internal/domain/repositories"
	domainservices "github.com/encapsulab/encapsulab/internal/domain/services"
	"github.com/encapsulab/encapsulab/internal/infrastructure/adapters"
	"github.com/encapsulab/encapsulab/internal/infrastructure/output"
	"github.com/encapsulab/encapsulab/internal/infrastructure/persistence/memory"
	"github.com/encapsulab/encapsulab/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	walkthroughLoader  ports.WalkthroughLoader
	registry           *subjects.Registry
	runResults         repositories.RunResultRepository
	formatters         ports.OutputFormatterFactory
	walkthroughService *services.WalkthroughService
	systemCfg          *system.Config
	logger             *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// SystemConfig is used as-is when set; otherwise it is loaded from SystemConfigPath
	SystemConfig     *system.Config
	SystemConfigPath string
	ToolVersion      string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg := opts.SystemConfig
	if systemCfg == nil {
		cfg, err := system.NewConfigLoader().Load(opts.SystemConfigPath)
		if err != nil {
			return nil, err
		}
		systemCfg = cfg
	}

	// Initialize adapters
	walkthroughLoader := adapters.NewWalkthroughLoaderAdapter()
	registry := subjects.DefaultRegistry()
	runResults := memory.NewRunResultRepository()

	// Wire up use case
	walkthroughService := services.NewWalkthroughService(
		walkthroughLoader,
		registry,
		domainservices.NewStepEvaluator(),
		runResults,
		opts.ToolVersion,
		opts.Logger,
	)

	return &Container{
		walkthroughLoader:  walkthroughLoader,
		registry:           registry,
		runResults:         runResults,
		formatters:         output.NewFormatterFactory(),
		walkthroughService: walkthroughService,
		systemCfg:          systemCfg,
		logger:             opts.Logger,
	}, nil
}

// WalkthroughService returns the walkthrough use case.
func (c *Container) WalkthroughService() *services.WalkthroughService {
	return c.walkthroughService
}

// WalkthroughLoader returns the walkthrough loader port.
func (c *Container) WalkthroughLoader() ports.WalkthroughLoader {
	return c.walkthroughLoader
}

// Registry returns the subject registry.
func (c *Container) Registry() *subjects.Registry {
	return c.registry
}

// RunResults returns the run result repository.
func (c *Container) RunResults() repositories.RunResultRepository {
	return c.runResults
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() ports.OutputFormatterFactory {
	return c.formatters
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
