package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/forcekit/hubkit/internal/adapters/authfile"
	envadapter "github.com/forcekit/hubkit/internal/adapters/env"
	"github.com/forcekit/hubkit/internal/adapters/journal"
	hubrender "github.com/forcekit/hubkit/internal/adapters/render/hub"
	"github.com/forcekit/hubkit/internal/adapters/sfcli"
	"github.com/forcekit/hubkit/internal/application"
	"github.com/forcekit/hubkit/internal/config"
	"github.com/forcekit/hubkit/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg      *config.Config
	service  *application.Service
	renderer func(application.Report, hubrender.RenderOptions) string
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	records := authfile.NewReader(filepath.Join(cfg.HomeDir, ".sfdx"))
	transfers := journal.New(filepath.Join(cfg.HomeDir, ".hubkit", "transfers.toml"))
	runner := sfcli.NewRunner(cfg.CLIBinary)

	return &app{
		cfg:      cfg,
		service:  application.NewService(cfg, runner, envadapter.Environ{}, records, transfers, ports.SystemClock{}),
		renderer: hubrender.Render,
	}, nil
}
