package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration. Values come from the
// environment (a local .env is loaded by godotenv/autoload in main).
type Config struct {
	Server  ServerConfig
	AWS     AWSConfig
	Tables  TablesConfig
	Log     LogConfig
	Users   UsersConfig
	Reports ReportsConfig
}

type ServerConfig struct {
	Port        int    `env:"PORT"         env-default:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" env-default:"*"`
}

// AWSConfig drives the DynamoDB client.
//
// Endpoint and static credentials are only for DynamoDB Local. The static
// keys are read from DYNAMODB_* variables so the AWS_* credentials a Lambda
// runtime exports (with their session token) stay with the default chain.
type AWSConfig struct {
	Region          string `env:"AWS_REGION"            env-default:"us-east-1"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `env:"DYNAMODB_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"DYNAMODB_SECRET_ACCESS_KEY"`
}

type TablesConfig struct {
	Patients  string `env:"PATIENTS_TABLE"  env-default:"doctorApp_patients"`
	Reports   string `env:"REPORTS_TABLE"   env-default:"DoctorApp_Reports"`
	Users     string `env:"USERS_TABLE"     env-default:"DoctorApp_users"`
	Templates string `env:"TEMPLATES_TABLE" env-default:"reportTemplates"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Pretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

type UsersConfig struct {
	DefaultTemplate string `env:"DEFAULT_TEMPLATE" env-default:"default"`
}

type ReportsConfig struct {
	DefaultPageSize int `env:"REPORTS_DEFAULT_PAGE_SIZE" env-default:"1000"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Server.Port)
	}
	if c.Reports.DefaultPageSize <= 0 || c.Reports.DefaultPageSize > 1000 {
		return fmt.Errorf("REPORTS_DEFAULT_PAGE_SIZE must be between 1 and 1000, got %d", c.Reports.DefaultPageSize)
	}
	for name, v := range map[string]string{
		"PATIENTS_TABLE":  c.Tables.Patients,
		"REPORTS_TABLE":   c.Tables.Reports,
		"USERS_TABLE":     c.Tables.Users,
		"TEMPLATES_TABLE": c.Tables.Templates,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		return fmt.Errorf("DYNAMODB_ACCESS_KEY_ID and DYNAMODB_SECRET_ACCESS_KEY must be set together")
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c ServerConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
