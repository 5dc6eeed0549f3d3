package shared

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver" env:"LEGALLENS_DB_DRIVER"` // "sqlite" (default)
		DSN    string `yaml:"dsn" env:"LEGALLENS_DB_DSN"`       // "./legallens.db"
	} `yaml:"database"`

	Analysis struct {
		Sources           []string `yaml:"sources" env:"LEGALLENS_SOURCES"`                       // ["./contracts"]
		RulePacks         []string `yaml:"rule_packs" env:"LEGALLENS_RULE_PACKS"`                 // extra YAML rule packs
		DisabledRules     []string `yaml:"disabled_rules" env:"LEGALLENS_DISABLED_RULES"`         // catalog ids to skip
		SeverityThreshold string   `yaml:"severity_threshold" env:"LEGALLENS_SEVERITY_THRESHOLD"` // LOW|MEDIUM|HIGH
	} `yaml:"analysis"`

	Reporting struct {
		OutDir string `yaml:"out_dir" env:"LEGALLENS_OUT_DIR"` // "./reports"
	} `yaml:"reporting"`

	Server struct {
		Addr           string   `yaml:"addr" env:"LEGALLENS_ADDR"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"LEGALLENS_ALLOWED_ORIGINS"`
		SessionHours   int      `yaml:"session_hours" env:"LEGALLENS_SESSION_HOURS"`
	} `yaml:"server"`

	Logging struct {
		Format string `yaml:"format" env:"LEGALLENS_LOG_FORMAT"` // "json"|"text"
		Level  string `yaml:"level" env:"LEGALLENS_LOG_LEVEL"`   // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.Driver = "sqlite"
	c.Database.DSN = "./legallens.db"
	c.Analysis.SeverityThreshold = "LOW"
	c.Reporting.OutDir = "./reports"
	c.Server.Addr = ":8080"
	c.Server.SessionHours = 12
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

// LoadConfig layers defaults, then the YAML file (when path is set), then
// LEGALLENS_* environment overrides.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("config env overrides: %w", err)
	}
	return c, nil
}
