// Package config loads service configuration with Viper.
//
// A config.yml found in the standard locations (or given explicitly) is read
// first. An optional .env file is then loaded into the environment, and any
// variable named PREFIX_SECTION_KEY overrides section.key, where PREFIX
// defaults to the upper-cased service name:
//
//	KTHMIN_SERVER_PORT=9090      -> server.port
//	KTHMIN_SELECTION_PIVOT=random -> selection.pivot
package config
