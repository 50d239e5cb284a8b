package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTP.Addr)
	}
	if cfg.Schedule.Start != "08:00" || cfg.Schedule.End != "18:00" || cfg.Schedule.StepMinutes != 30 {
		t.Fatalf("unexpected schedule defaults: %#v", cfg.Schedule)
	}
}

func TestLoad_YAMLWithEnvExpansionAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
app:
  name: vetcare-test
auth:
  mode: jwt
  jwt_secret: ${TEST_VETCARE_SECRET}
cart:
  backend: memory
schedule:
  start: "09:00"
  end: "12:00"
  step_minutes: 15
  timezone: UTC
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("TEST_VETCARE_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Name != "vetcare-test" {
		t.Fatalf("expected app name from yaml, got %q", cfg.App.Name)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("expected expanded secret, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("expected PORT override, got %q", cfg.HTTP.Addr)
	}
	if cfg.Cart.Redis.DB != 3 {
		t.Fatalf("expected REDIS_DB override, got %d", cfg.Cart.Redis.DB)
	}
	if cfg.Schedule.StepMinutes != 15 {
		t.Fatalf("expected step 15, got %d", cfg.Schedule.StepMinutes)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := map[string]func(c *Config){
		"jwt without secret": func(c *Config) { c.Auth.Mode = "jwt" },
		"remote without url": func(c *Config) { c.Auth.Mode = "remote" },
		"unknown backend":    func(c *Config) { c.Cart.Backend = "sqlite" },
		"zero step":          func(c *Config) { c.Schedule.StepMinutes = 0 },
		"bad timezone":       func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
