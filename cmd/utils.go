package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/kongnyuysido/portfolio/internal/config"
	"github.com/kongnyuysido/portfolio/internal/github"
	"github.com/kongnyuysido/portfolio/internal/logger"
	"github.com/kongnyuysido/portfolio/internal/repos"
)

// setup loads config, installs the logger on logOut and builds the
// repository loader.
func setup(ctx context.Context, v *viper.Viper, logOut io.Writer) (*config.Config, *slog.Logger, *repos.Loader, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.SetupLogger(cfg.LogLevel, logOut)
	logger.SetDebug(debug)

	var opts []github.Option
	if cfg.GitHubURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHubURL))
	}
	client, err := github.NewClient(ctx, cfg.Token, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, repos.NewLoader(client, log), nil
}
