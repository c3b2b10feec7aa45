package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/astriva/astroday/internal/domain/chart"
	"github.com/astriva/astroday/internal/domain/fortune"
	"github.com/astriva/astroday/internal/domain/horoscope"
	"github.com/astriva/astroday/internal/infra/config"
	"github.com/astriva/astroday/internal/infra/content"
	"github.com/astriva/astroday/internal/infra/dailystore"
	"github.com/astriva/astroday/internal/infra/ephemeris/astroapi"
	"github.com/astriva/astroday/internal/infra/userrepo"
)

func provideEphemerisClient(cfg *config.Config) *astroapi.Client {
	return astroapi.NewClient(astroapi.Config{
		AppID:   cfg.Ephemeris.AppID,
		Secret:  cfg.Ephemeris.Secret,
		BaseURL: cfg.Ephemeris.BaseURL,
	})
}

func provideUserRepository(cfg *config.Config, logger *slog.Logger) chart.Repository {
	fallback := userrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Users.PostgresDSN)
	if dsn == "" {
		logger.Info("users postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Users.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Users.MaxConns
	}
	if cfg.Users.MinConns > 0 {
		poolConfig.MinConns = cfg.Users.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("users postgres repository enabled")
	return userrepo.NewPostgresRepository(pool)
}

func provideUserSource(repo chart.Repository) horoscope.UserSource {
	return repo
}

func provideDailyStore(cfg *config.Config, logger *slog.Logger) horoscope.DailyStore {
	if cfg.Daily.ValkeyEnabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return dailystore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return dailystore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("daily valkey store enabled", "addr", cfg.Daily.ValkeyAddr)
			return dailystore.NewValkeyStore(client, cfg.Daily.KeyPrefix, cfg.Daily.TTL)
		}
	}
	return dailystore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Daily.ValkeyAddr, "://") {
		opt, err = valkey.ParseURL(cfg.Daily.ValkeyAddr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Daily.ValkeyAddr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideListProvider(cfg *config.Config, logger *slog.Logger) fortune.ListProvider {
	dir := strings.TrimSpace(cfg.Content.ListDir)
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return content.NewFileProvider(dir)
		}
		logger.Warn("content list dir missing, using built-in lists", "dir", dir)
	}
	return content.NewStaticProvider(content.DefaultLists())
}
