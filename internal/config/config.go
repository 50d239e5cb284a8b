package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Storage  StorageConfig  `yaml:"storage"`
	Cart     CartConfig     `yaml:"cart"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
}

type HTTPConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	ClientTimeoutSecs   int    `yaml:"client_timeout_seconds"`
}

type DatabaseConfig struct {
	// DSN vacío => repos in-memory (modo dev).
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// AuthConfig:
// - mode=dev: sin verifier, se aceptan headers X-Debug-User-ID / X-Debug-User-Role
// - mode=jwt: verificación local de JWT HS256 con JWTSecret
// - mode=remote: se valida contra el servidor de auth del backend (BaseURL + APIKey)
type AuthConfig struct {
	Mode      string `yaml:"mode"`
	JWTSecret string `yaml:"jwt_secret"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
}

// StorageConfig configura el colaborador de archivos (fotos de mascotas).
type StorageConfig struct {
	Mode          string `yaml:"mode"` // local | remote
	LocalDir      string `yaml:"local_dir"`
	PublicBaseURL string `yaml:"public_base_url"`
	RemoteURL     string `yaml:"remote_url"`
	Bucket        string `yaml:"bucket"`
	APIKey        string `yaml:"api_key"`
}

type CartConfig struct {
	Backend  string      `yaml:"backend"` // memory | bolt | redis
	BoltPath string      `yaml:"bolt_path"`
	Redis    RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type ScheduleConfig struct {
	Start          string   `yaml:"start"`
	End            string   `yaml:"end"`
	StepMinutes    int      `yaml:"step_minutes"`
	ClosedWeekdays []string `yaml:"closed_weekdays"`
	Timezone       string   `yaml:"timezone"`
	NoticeSeconds  int      `yaml:"notice_seconds"`
}

type CatalogConfig struct {
	SeedFile string `yaml:"seed_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default devuelve una config que permite levantar el servicio sin archivo.
func Default() Config {
	return Config{
		App: AppConfig{Name: "vetcare-portal", Environment: "dev"},
		HTTP: HTTPConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  5,
			WriteTimeoutSeconds: 10,
			ClientTimeoutSecs:   10,
		},
		Auth:    AuthConfig{Mode: "dev"},
		Storage: StorageConfig{Mode: "local", LocalDir: "data/uploads", PublicBaseURL: "/uploads"},
		Cart:    CartConfig{Backend: "bolt", BoltPath: "data/cart.db"},
		Schedule: ScheduleConfig{
			Start:          "08:00",
			End:            "18:00",
			StepMinutes:    30,
			ClosedWeekdays: []string{"sunday"},
			Timezone:       "UTC",
			NoticeSeconds:  3,
		},
		Catalog: CatalogConfig{SeedFile: "configs/catalog.yaml"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load arma la config:
// 1) .env (si existe)
// 2) YAML en path (si existe), con ${VARS} expandidas
// 3) overrides por env
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			expanded := []byte(os.ExpandEnv(string(data)))
			if err := yaml.Unmarshal(expanded, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// sin archivo: defaults + env
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	setString(&cfg.Database.DSN, "DB_DSN")
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		cfg.Database.MaxOpenConns = cast.ToInt(v)
	}
	setString(&cfg.Auth.Mode, "AUTH_MODE")
	setString(&cfg.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&cfg.Auth.BaseURL, "AUTH_BASE_URL")
	setString(&cfg.Auth.APIKey, "AUTH_API_KEY")
	setString(&cfg.Storage.Mode, "STORAGE_MODE")
	setString(&cfg.Storage.RemoteURL, "STORAGE_REMOTE_URL")
	setString(&cfg.Storage.APIKey, "STORAGE_API_KEY")
	setString(&cfg.Cart.Backend, "CART_BACKEND")
	setString(&cfg.Cart.BoltPath, "CART_BOLT_PATH")
	setString(&cfg.Cart.Redis.Address, "REDIS_ADDR")
	setString(&cfg.Cart.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		cfg.Cart.Redis.DB = cast.ToInt(v)
	}
	setString(&cfg.Schedule.Timezone, "CLINIC_TIMEZONE")
	setString(&cfg.Catalog.SeedFile, "CATALOG_SEED_FILE")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Logging.File, "LOG_FILE")
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = cast.ToBool(v)
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Auth.Mode) {
	case "dev", "":
	case "jwt":
		if strings.TrimSpace(c.Auth.JWTSecret) == "" {
			return errors.New("config: auth.jwt_secret required for mode=jwt")
		}
	case "remote":
		if strings.TrimSpace(c.Auth.BaseURL) == "" {
			return errors.New("config: auth.base_url required for mode=remote")
		}
	default:
		return fmt.Errorf("config: unknown auth.mode %q", c.Auth.Mode)
	}

	switch strings.ToLower(c.Cart.Backend) {
	case "memory", "bolt", "redis":
	default:
		return fmt.Errorf("config: unknown cart.backend %q", c.Cart.Backend)
	}

	if c.Schedule.StepMinutes <= 0 {
		return errors.New("config: schedule.step_minutes must be > 0")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve la zona horaria de la clínica.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Schedule.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid schedule.timezone %q: %w", tz, err)
	}
	return loc, nil
}

func (c HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c HTTPConfig) ClientTimeout() time.Duration {
	return time.Duration(c.ClientTimeoutSecs) * time.Second
}

func (c ScheduleConfig) Notice() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}
