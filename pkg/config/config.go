// Package config loads the CLI configuration from ~/.salon.yaml and the
// SALON_* environment.
package config

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/timeutil"
)

// Roles the backend knows about. The role only selects which default
// filters and actions the client surfaces; authorization itself is
// entirely server-side.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// Config is everything the client needs to talk to the backend.
type Config struct {
	// URL is the backend base URL, e.g. https://salon.example.com.
	URL string
	// Token is the bearer credential sent on every request.
	Token string
	// Role is manager, employee, or client.
	Role string
	// Employee is the acting employee id, pre-bound in the booking form
	// for the employee-facing flow.
	Employee int64
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// CacheMaxAge is how long the cached lookup snapshot stays fresh.
	// Accepts human-friendly windows like "30m", "1h", or "2d".
	CacheMaxAge time.Duration
}

// Load reads ~/.salon.yaml (or ./.salon.yaml), layered under SALON_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("url", "http://localhost:8000")
	v.SetDefault("role", RoleClient)
	v.SetDefault("timeout", "15s")
	v.SetDefault("cache_max_age", timeutil.DefaultMaxAge)

	v.SetConfigName(".salon")
	v.SetEnvPrefix("SALON")
	v.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	maxAge, _, err := timeutil.ParseWindow(v.GetString("cache_max_age"))
	if err != nil {
		return nil, fmt.Errorf("config: cache_max_age: %w", err)
	}

	cfg := &Config{
		URL:         v.GetString("url"),
		Token:       v.GetString("token"),
		Role:        v.GetString("role"),
		Employee:    v.GetInt64("employee"),
		Timeout:     v.GetDuration("timeout"),
		CacheMaxAge: maxAge,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("config: url is required")
	}
	switch c.Role {
	case RoleManager, RoleEmployee, RoleClient:
	default:
		return fmt.Errorf("config: unknown role %q", c.Role)
	}
	if c.Role == RoleEmployee && c.Employee <= 0 {
		return fmt.Errorf("config: the employee role needs an employee id")
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	return nil
}
