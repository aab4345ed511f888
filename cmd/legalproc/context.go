package main

import (
	"log/slog"
	"net/http"

	"github.com/akadeepesh/legal-processor-frontend/internal/api"
	"github.com/akadeepesh/legal-processor-frontend/internal/config"
)

// commandContext carries lazily loaded configuration shared by subcommands
type commandContext struct {
	configFlag *string
	apiURLFlag *string

	cfg *config.Config
}

func newCommandContext(configFlag, apiURLFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, apiURLFlag: apiURLFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	var cfg *config.Config
	var err error
	if c.configFlag != nil && *c.configFlag != "" {
		cfg, err = config.Load(*c.configFlag)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) baseURL(cfg *config.Config) string {
	if c.apiURLFlag != nil && *c.apiURLFlag != "" {
		return *c.apiURLFlag
	}
	return cfg.BaseURL()
}

func (c *commandContext) newClient(cfg *config.Config, logger *slog.Logger) *api.Client {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout()}
	return api.NewClient(c.baseURL(cfg), httpClient, logger)
}
