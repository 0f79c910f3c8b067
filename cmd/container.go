package cmd

import (
	"fmt"
	"time"

	"github.com/compozy/k8s-demo/internal/config"
	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/compozy/k8s-demo/internal/logger"
	"github.com/compozy/k8s-demo/internal/repository"
	"github.com/compozy/k8s-demo/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	fsRepo   repository.FileSystemRepository
	locker   repository.ExportLocker
	renderer service.PageRenderer
	view     *domain.RootView
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return buildContainer(cfg, log, repository.FileSystemRepository(afero.NewOsFs()), "")
}

// buildContainer wires the dependencies that do not depend on the environment.
func buildContainer(
	cfg *config.Config,
	log *zap.Logger,
	fsRepo repository.FileSystemRepository,
	lockDir string,
) (*container, error) {
	renderer, err := service.NewPageRenderer(service.DefaultStyleSheet())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page renderer: %w", err)
	}
	lockTimeout := cfg.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = 10 * time.Second
	}
	return &container{
		cfg:      cfg,
		log:      log,
		fsRepo:   fsRepo,
		locker:   repository.NewFileExportLocker(lockDir, lockTimeout),
		renderer: renderer,
		view:     domain.NewRootView(),
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	addCommands(c)
	return nil
}

// sync flushes buffered log entries; stderr/stdout sync errors are ignored.
func (c *container) sync() {
	_ = c.log.Sync()
}

func addCommands(c *container) {
	rootCmd.AddCommand(
		NewServeCmd(c),
		NewRenderCmd(c),
		newVersionCmd(c.view),
	)
}
