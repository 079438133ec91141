package source

import (
	"errors"
	"fmt"
)

// DefaultRegion is the default AWS region.
const DefaultRegion = "us-east-1"

// Config holds locator resolution settings.
type Config struct {
	// BasePath confines local locators to a directory. Empty allows any path.
	BasePath string `yaml:"base_path" mapstructure:"base_path"`

	S3 S3Config `yaml:"s3" mapstructure:"s3"`
}

// S3Config holds S3 client settings.
type S3Config struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Region is the AWS region.
	Region string `yaml:"region" mapstructure:"region"`

	// Endpoint is a custom S3-compatible endpoint (e.g. MinIO).
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AccessKey and SecretKey select static credentials. When empty the
	// default AWS credential chain is used.
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`

	// ForcePathStyle forces path-style URLs instead of virtual-hosted-style.
	ForcePathStyle bool `yaml:"force_path_style" mapstructure:"force_path_style"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.S3.Region == "" {
		c.S3.Region = DefaultRegion
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !c.S3.Enabled {
		return nil
	}
	var errs []error
	if c.S3.Region == "" {
		errs = append(errs, errors.New("region is required"))
	}
	if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
		errs = append(errs, errors.New("access_key and secret_key must be set together"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("source.s3: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
