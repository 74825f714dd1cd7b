package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string        `yaml:"service_name" validate:"required"`
	LogLevel    string        `yaml:"loglevel" validate:"required"`
	Database    MongoDBConfig `yaml:"mongodb_config" validate:"required"`
	Seed        SeedConfig    `yaml:"seed"`
}

// MongoDBConfig holds the database configuration. The connection string is
// deliberately not part of the file; it comes from the environment, see Env.
type MongoDBConfig struct {
	DatabaseName     string             `yaml:"database_name" validate:"required"`
	Timeout          time.Duration      `yaml:"timeout"`
	MaxPoolSize      uint64             `yaml:"max_pool_size"`
	MinPoolSize      uint64             `yaml:"min_pool_size"`
	Options          MongoServerOptions `yaml:"mongo_server_options"`
	ValidCollections []string           `yaml:"valid_collections" validate:"required"`
}

type MongoServerOptions struct {
	APIVersion           string `yaml:"api_version"`
	SetStrict            bool   `yaml:"set_strict"`
	SetDeprecationErrors bool   `yaml:"set_deprecation_errors"`
}

// SeedConfig paces the seed script's bulk inserts.
type SeedConfig struct {
	InsertsPerSecond float64 `yaml:"inserts_per_second"`
}

// Env holds settings read from the environment. The connection string is
// required; its absence is fatal at startup.
type Env struct {
	MongoURI string `env:"MONGODB_URI,required"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ReadEnv parses the environment-driven settings.
func ReadEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func BuildServerAPIOptions(cfg MongoServerOptions) *options.ServerAPIOptions {
	opts := options.ServerAPI(options.ServerAPIVersion(cfg.APIVersion))
	opts.SetStrict(cfg.SetStrict)
	opts.SetDeprecationErrors(cfg.SetDeprecationErrors)

	return opts
}

func ListToMap(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		result[item] = true
	}
	return result
}
