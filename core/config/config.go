// Package config provides configuration management for the wedding
// planner service.
//
// Settings come from environment variables and an optional .env file,
// loaded through Viper. Defaults are declared as struct tags on the
// section structs and bound by reflection, so a section's package owns
// both its settings and their fallbacks.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: MySQL/sqlite connection details
//   - Storage: S3/MinIO credentials and export bucket
//   - Log: logging level and format
//   - Seating: default hall size, layout strategy, capacity cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

import (
	"reflect"
	"strings"

	"wedding-planner/core/database"
	"wedding-planner/core/logger"
	"wedding-planner/core/server"
	"wedding-planner/core/storage"
	"wedding-planner/feature/seating"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Seating holds configuration for the seating feature.
	Seating seating.Config `mapstructure:"seating"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Nested sections recurse with their prefix
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even if empty) to register the key for
		// AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
