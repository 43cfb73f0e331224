package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds server configuration.
type Config struct {
	Port        string         `mapstructure:"port"`
	Environment string         `mapstructure:"environment"`
	LogLevel    string         `mapstructure:"log_level"`
	Firebase    FirebaseConfig `mapstructure:"firebase"`
	Greeting    GreetingConfig `mapstructure:"greeting"`
	Docs        DocsConfig     `mapstructure:"docs"`
}

// FirebaseConfig holds Firebase project settings.
type FirebaseConfig struct {
	ProjectID string `mapstructure:"project_id"`
}

// GreetingConfig holds defaults for the HTML page.
type GreetingConfig struct {
	Name  string `mapstructure:"name"`
	Title string `mapstructure:"title"`
}

// DocsConfig holds API documentation settings.
type DocsConfig struct {
	SpecPath string `mapstructure:"spec_path"`
}

// IsDevelopment reports whether APP_ENVIRONMENT is "development".
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"port":                "PORT",
	"environment":         "APP_ENVIRONMENT",
	"log_level":           "LOG_LEVEL",
	"firebase.project_id": "FIREBASE_PROJECT_ID",
	"greeting.name":       "GREETING_NAME",
	"greeting.title":      "GREETING_TITLE",
	"docs.spec_path":      "DOCS_SPEC_PATH",
}

// Load reads configuration from an optional TOML file and the environment.
// The file path comes from GREETING_CONFIG; environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("firebase.project_id", "")
	v.SetDefault("greeting.name", "World")
	v.SetDefault("greeting.title", "Greeting")
	v.SetDefault("docs.spec_path", "api/openapi.json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path := os.Getenv("GREETING_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// An empty name is a valid greeting. Viper drops empty env values, so a
	// set but empty GREETING_NAME is applied here.
	if name, ok := os.LookupEnv("GREETING_NAME"); ok && name == "" {
		c.Greeting.Name = ""
	}
	return c, nil
}
