package main

import (
	stderrors "errors"

	"github.com/kbukum/kthmin/config"
	"github.com/kbukum/kthmin/extract"
	"github.com/kbukum/kthmin/observability"
	"github.com/kbukum/kthmin/selection"
	"github.com/kbukum/kthmin/server"
	"github.com/kbukum/kthmin/source"
	"github.com/kbukum/kthmin/version"
)

const serviceName = "kthmin"

// AppConfig is the full configuration of the kthmin binary.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server    server.Config        `yaml:"server" mapstructure:"server"`
	Source    source.Config        `yaml:"source" mapstructure:"source"`
	Extract   extract.Config       `yaml:"extract" mapstructure:"extract"`
	Selection selection.Config     `yaml:"selection" mapstructure:"selection"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills every section's defaults.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Source.ApplyDefaults()
	c.Extract.ApplyDefaults()
	c.Selection.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate reports every invalid section at once.
func (c *AppConfig) Validate() error {
	return stderrors.Join(
		c.ServiceConfig.Validate(),
		c.Server.Validate(),
		c.Source.Validate(),
		c.Extract.Validate(),
		c.Selection.Validate(),
		c.Telemetry.Validate(),
	)
}

// loadConfig reads config.yml, .env and KTHMIN_* overrides. An explicit
// path replaces the config file search.
func loadConfig(path string) (*AppConfig, error) {
	var opts []config.LoaderOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	var cfg AppConfig
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
