package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   Slack credentials, etc.), security settings
// - default: Values common across all environments (timeouts, policy
//   constants, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Slack    SlackConfig
	Boxed    BoxedConfig
	Workflow WorkflowConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type SlackConfig struct {
	ClientID      string `envconfig:"SLACK_CLIENT_ID" required:"true"`
	ClientSecret  string `envconfig:"SLACK_CLIENT_SECRET" required:"true"`
	SigningSecret string `envconfig:"SLACK_SIGNING_SECRET" default:""`
}

type BoxedConfig struct {
	BaseURL string        `envconfig:"BOXED_BASE_URL" default:"https://www.boxed.com"`
	Timeout time.Duration `envconfig:"BOXED_TIMEOUT" default:"10s"`
}

// WorkflowConfig carries the dedup policy constants. The defaults are the
// values the service has always shipped with; they are not tuned.
type WorkflowConfig struct {
	NameThreshold        float64       `envconfig:"WORKFLOW_NAME_THRESHOLD" default:"0.7"`
	DescriptionThreshold float64       `envconfig:"WORKFLOW_DESCRIPTION_THRESHOLD" default:"0.8"`
	PendingChoiceTTL     time.Duration `envconfig:"WORKFLOW_PENDING_CHOICE_TTL" default:"5m"`
	TaskTimeout          time.Duration `envconfig:"WORKFLOW_TASK_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:16380", // Test Redis port
		},
		Slack: SlackConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
		},
		Boxed: BoxedConfig{
			BaseURL: "http://localhost:9999",
			Timeout: 2 * time.Second,
		},
		Workflow: WorkflowConfig{
			NameThreshold:        0.7,
			DescriptionThreshold: 0.8,
			PendingChoiceTTL:     5 * time.Minute,
			TaskTimeout:          5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
