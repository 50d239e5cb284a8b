package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vetcare-portal/internal/adapters/auth/gotrue"
	"vetcare-portal/internal/adapters/auth/jwtverify"
	"vetcare-portal/internal/adapters/media/local"
	"vetcare-portal/internal/adapters/media/remote"
	"vetcare-portal/internal/adapters/storage/bolt"
	mem "vetcare-portal/internal/adapters/storage/memory"
	pg "vetcare-portal/internal/adapters/storage/postgres"
	redisstore "vetcare-portal/internal/adapters/storage/redis"
	"vetcare-portal/internal/config"
	"vetcare-portal/internal/domain/appointments"
	"vetcare-portal/internal/domain/cart"
	"vetcare-portal/internal/domain/products"
	"vetcare-portal/internal/platform/logger"
	"vetcare-portal/internal/ports/auth"
	"vetcare-portal/internal/ports/media"

	"gorm.io/gorm"
)

// deps agrupa los adaptadores elegidos según la config.
type deps struct {
	db         *sql.DB
	gorm       *gorm.DB
	verifier   auth.AuthVerifier
	uploader   media.Uploader
	uploadsDir string
	cartStore  cart.Store
	schedule   appointments.Schedule
	catalog    []products.Product

	closers []func() error
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

func wire(ctx context.Context, cfg config.Config, log logger.Logger) (*deps, error) {
	d := &deps{}

	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		db, err := pg.Open(ctx, dsn, pg.Pool{
			MaxOpen: cfg.Database.MaxOpenConns,
			MaxIdle: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		d.db = db
		d.closers = append(d.closers, db.Close)
	} else {
		log.Warn("database.dsn empty, using in-memory repositories", nil)
	}

	var err error
	if d.verifier, err = newVerifier(cfg); err != nil {
		d.Close()
		return nil, err
	}

	if err := wireUploader(d, cfg); err != nil {
		d.Close()
		return nil, err
	}

	if err := wireCartStore(ctx, d, cfg); err != nil {
		d.Close()
		return nil, err
	}

	if d.schedule, err = newSchedule(cfg); err != nil {
		d.Close()
		return nil, err
	}

	if err := wireCatalog(d, cfg, log); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// wireCatalog: con Postgres el catálogo vive en la tabla products (gorm sobre el mismo pool);
// sin base, se carga el YAML semilla.
func wireCatalog(d *deps, cfg config.Config, log logger.Logger) error {
	if d.db != nil {
		gdb, err := pg.OpenGorm(d.db)
		if err != nil {
			return fmt.Errorf("catalog: gorm: %w", err)
		}
		d.gorm = gdb
		return nil
	}

	items, err := mem.LoadCatalog(cfg.Catalog.SeedFile)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		log.Warn("catalog seed empty or missing", map[string]any{"path": cfg.Catalog.SeedFile})
	}
	d.catalog = items
	return nil
}

func newVerifier(cfg config.Config) (auth.AuthVerifier, error) {
	switch strings.ToLower(cfg.Auth.Mode) {
	case "jwt":
		return jwtverify.NewVerifier(cfg.Auth.JWTSecret)
	case "remote":
		c, err := gotrue.NewClient(gotrue.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: cfg.HTTP.ClientTimeout(),
		})
		if err != nil {
			return nil, err
		}
		return gotrue.NewVerifier(c), nil
	default:
		// dev: headers X-Debug-User-*
		return nil, nil
	}
}

func wireUploader(d *deps, cfg config.Config) error {
	switch strings.ToLower(cfg.Storage.Mode) {
	case "remote":
		u, err := remote.NewUploader(remote.Config{
			BaseURL: cfg.Storage.RemoteURL,
			Bucket:  cfg.Storage.Bucket,
			APIKey:  cfg.Storage.APIKey,
			Timeout: cfg.HTTP.ClientTimeout(),
		})
		if err != nil {
			return err
		}
		d.uploader = u
	default:
		u, err := local.NewUploader(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		if err != nil {
			return err
		}
		d.uploader = u
		d.uploadsDir = u.Dir()
	}
	return nil
}

func wireCartStore(ctx context.Context, d *deps, cfg config.Config) error {
	switch strings.ToLower(cfg.Cart.Backend) {
	case "bolt":
		s, err := bolt.Open(cfg.Cart.BoltPath)
		if err != nil {
			return err
		}
		d.cartStore = s
		d.closers = append(d.closers, s.Close)
	case "redis":
		client := redisstore.NewClient(cfg.Cart.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := redisstore.Ping(pingCtx, client); err != nil {
			_ = client.Close()
			return err
		}
		d.cartStore = redisstore.NewCartStore(client)
		d.closers = append(d.closers, client.Close)
	default:
		d.cartStore = mem.NewCartStore()
	}
	return nil
}

func newSchedule(cfg config.Config) (appointments.Schedule, error) {
	sc := cfg.Schedule

	start, err := appointments.ParseTimeOfDay(sc.Start)
	if err != nil {
		return appointments.Schedule{}, fmt.Errorf("schedule.start: %w", err)
	}
	end, err := appointments.ParseTimeOfDay(sc.End)
	if err != nil {
		return appointments.Schedule{}, fmt.Errorf("schedule.end: %w", err)
	}
	closed, err := appointments.ParseWeekdays(sc.ClosedWeekdays)
	if err != nil {
		return appointments.Schedule{}, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return appointments.Schedule{}, err
	}

	return appointments.Schedule{
		Slots: appointments.SlotConfig{
			Start: start,
			End:   end,
			Step:  time.Duration(sc.StepMinutes) * time.Minute,
		},
		Closed:   closed,
		Location: loc,
		Notice:   sc.Notice(),
	}, nil
}
