package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Storage
		Learning
		Locale
	}

	Storage struct {
		Backend string // "file" or "sqlite"
		Path    string
	}

	Learning struct {
		FallbackCategory string // category assigned to entries whose category was deleted
		RecentWindowDays int    // window for the "recently added" statistic
		ReviewStaleDays  int    // entries unreviewed this long count as needing review
	}

	Locale struct {
		Tag string // BCP 47 tag used for category name collation
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("storage_backend", BackendFile)
	v.SetDefault("storage_path", "")
	v.SetDefault("fallback_category", "New")
	v.SetDefault("recent_window_days", 7)
	v.SetDefault("review_stale_days", 7)
	v.SetDefault("locale", "en")

	cfg := &Config{
		Storage: Storage{
			Backend: v.GetString("STORAGE_BACKEND"),
			Path:    v.GetString("STORAGE_PATH"),
		},
		Learning: Learning{
			FallbackCategory: v.GetString("FALLBACK_CATEGORY"),
			RecentWindowDays: v.GetInt("RECENT_WINDOW_DAYS"),
			ReviewStaleDays:  v.GetInt("REVIEW_STALE_DAYS"),
		},
		Locale: Locale{
			Tag: v.GetString("LOCALE"),
		},
	}

	if cfg.Storage.Path == "" {
		if cfg.Storage.Backend == BackendSQLite {
			cfg.Storage.Path = DefaultDatabasePath
		} else {
			cfg.Storage.Path = DefaultSnapshotPath
		}
	}

	return cfg
}
