package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Breaks   BreaksConfig   `mapstructure:"breaks"`
	Workday  WorkdayConfig  `mapstructure:"workday"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// CatalogConfig selects where the exercise catalog comes from. When Path is
// set the catalog loads from disk; when S3Key is set (and S3 is enabled) it
// loads from object storage; otherwise the embedded default is used.
type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	S3Key string `mapstructure:"s3_key"`
}

// BreaksConfig carries engine-adjacent knobs that are deployment choices,
// not user settings.
type BreaksConfig struct {
	// DailyTarget is the breaksScheduled value shown on the dashboard.
	DailyTarget int `mapstructure:"daily_target"`
	// RecencyWindow is how many recent sessions feed the set of recently
	// completed exercise ids excluded from new recommendations.
	RecencyWindow int `mapstructure:"recency_window"`
}

// WorkdayConfig configures the mock Workday calendar client.
type WorkdayConfig struct {
	TokenSecret string        `mapstructure:"token_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: nested keys map to underscored env
	// vars, e.g. server.address -> SERVER_ADDRESS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "deskbreak")
	viper.SetDefault("s3.enabled", false)
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("breaks.daily_target", 8)
	viper.SetDefault("breaks.recency_window", 10)
	viper.SetDefault("workday.token_secret", "mock-workday-secret")
	viper.SetDefault("workday.token_expiry", "24h")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry the load.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
