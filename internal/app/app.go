// Package app wires configuration, storage and services into one value shared
// by the HTTP server and the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/database"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/export"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/metrics"
	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-wellness/internal/config"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/workers"
)

// ErrKeysUnsupported is returned by Keys when the backing store cannot list
// its keys.
var ErrKeysUnsupported = errors.New("store cannot list keys")

// KeyLister is implemented by stores that can enumerate their keys.
type KeyLister interface {
	Keys(ctx context.Context) ([]string, error)
}

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Clock   services.Clock

	DB    *sqlx.DB
	Redis *redis.Client
	Store domain.PreferenceStore
	Prefs *repository.PreferenceRepository

	Habits     *services.HabitService
	Moods      *services.MoodService
	Goals      *services.GoalService
	Data       *services.DataService
	Wellness   *services.WellnessService
	Analytics  *services.AnalyticsService
	Reports    *services.ReportService
	Auth       *services.AuthService
	Tokens     *services.TokenService
	Milestones *workers.MilestoneWorker

	base   domain.PreferenceStore
	cancel context.CancelFunc
}

type Option func(*options)

type options struct {
	clock   *services.Clock
	metrics *metrics.Metrics
}

// WithClock replaces the system clock, e.g. to replay a past day.
func WithClock(c services.Clock) Option {
	return func(o *options) { o.clock = &c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// Open connects the configured store and builds every service on top of it.
// The caller owns the result and must Close it.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...Option) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Metrics: o.metrics,
		Clock:   services.SystemClock(cfg.Location()),
	}
	if a.Metrics == nil {
		a.Metrics = metrics.New()
	}
	if o.clock != nil {
		a.Clock = *o.clock
	}

	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}
	a.wire()

	log.Info("application ready",
		zap.String("store", cfg.Store.Driver),
		zap.Bool("cache", a.Redis != nil && cfg.Cache.Enabled && cfg.Store.Driver != config.StoreRedis),
		zap.String("timezone", a.Clock.Location.String()),
	)
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	cfg := a.Config

	switch cfg.Store.Driver {
	case config.StoreMemory:
		a.base = repository.NewInMemoryPreferenceStore()

	case config.StoreSQLite, config.StorePostgres:
		var (
			db  *sqlx.DB
			err error
		)
		if cfg.Store.Driver == config.StoreSQLite {
			db, err = database.OpenSQLite(ctx, cfg.Store.SQLitePath)
		} else {
			db, err = database.OpenPostgres(ctx, cfg.Database)
		}
		if err != nil {
			return err
		}
		a.DB = db

		store := repository.NewSQLPreferenceStore(db, cfg.Store.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		a.base = store

	case config.StoreRedis:
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		a.Redis = rdb
		a.base = repository.NewRedisPreferenceStore(rdb, "")

	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	a.Store = a.base
	if cfg.Cache.Enabled && cfg.Store.Driver != config.StoreRedis {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			a.Log.Warn("redis unavailable, running without cache", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		} else {
			a.Redis = rdb
			a.Store = repository.NewCachedPreferenceStore(a.Store, rdb, cfg.Cache.TTL, a.Log)
		}
	}
	a.Store = repository.NewInstrumentedPreferenceStore(a.Store, a.Metrics)
	return nil
}

func (a *App) wire() {
	cfg := a.Config
	prefs := repository.NewPreferenceRepository(a.Store, a.Log)
	a.Prefs = prefs

	a.Milestones = workers.NewMilestoneWorker(prefs, prefs, analytics.New(a.Clock.Location), cfg.Worker.QueueSize, a.Log).
		WithCounter(a.Metrics)

	a.Habits = services.NewHabitService(prefs, a.Clock, a.Milestones)
	a.Moods = services.NewMoodService(prefs, a.Clock)
	a.Goals = services.NewGoalService(prefs, a.Clock)
	a.Data = services.NewDataService(a.Habits, a.Moods, a.Goals, a.Clock)
	a.Wellness = services.NewWellnessService(prefs, prefs, a.Clock)
	a.Analytics = services.NewAnalyticsService(services.AnalyticsRepositories{
		Habits:     prefs,
		Moods:      prefs,
		Water:      prefs,
		Meditation: prefs,
		Settings:   prefs,
	}, a.Clock, a.Metrics)
	a.Reports = services.NewReportService(a.Analytics, map[string]services.ReportExporter{
		domain.FormatCSV: export.NewCSVExporter(),
		domain.FormatPDF: export.NewPDFExporter(),
	})

	a.Tokens = services.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Expiration, prefs)
	a.Auth = services.NewAuthService(prefs, a.Tokens)
}

// StartWorkers runs the milestone worker until ctx is done or Close is called.
func (a *App) StartWorkers(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	a.Milestones.Start(ctx)
}

// Close stops the workers and releases every connection. It is safe to call
// on a partially opened App.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
		a.Milestones.Wait()
	}

	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// Keys lists every stored preference key, bypassing the cache.
func (a *App) Keys(ctx context.Context) ([]string, error) {
	lister, ok := a.base.(KeyLister)
	if !ok {
		return nil, ErrKeysUnsupported
	}
	return lister.Keys(ctx)
}

// ExportPreferences dumps the raw store as a flat key/value map, the same
// shape the mobile app used for its backup file.
func (a *App) ExportPreferences(ctx context.Context) (map[string]string, error) {
	keys, err := a.Keys(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := a.Store.Get(ctx, k)
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// ImportPreferences writes every entry of prefs, overwriting existing keys.
// It returns the number of keys written.
func (a *App) ImportPreferences(ctx context.Context, prefs map[string]string) (int, error) {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if err := a.Store.Set(ctx, k, prefs[k]); err != nil {
			return i, fmt.Errorf("writing %s: %w", k, err)
		}
	}
	return len(keys), nil
}
