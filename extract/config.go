package extract

import (
	"fmt"
	"unicode/utf8"
)

// Config configures an Extractor.
type Config struct {
	// Sheet selects the spreadsheet sheet. Empty reads the first sheet.
	Sheet string `yaml:"sheet" mapstructure:"sheet"`

	// Delimiter is the field separator for .csv sources.
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}

// ApplyDefaults sets the comma delimiter.
func (c *Config) ApplyDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

// Validate checks the delimiter is a single usable rune.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return fmt.Errorf("extract.delimiter must be a single character other than quote or newline (got %q)", c.Delimiter)
	}
	return nil
}

func (c *Config) delimiter() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
