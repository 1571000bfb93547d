package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/workload"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port          int
	MetricsListen string
	Algorithms    []string
	Workload      workload.Params
	Log           logger.Config
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml (if present) through the global viper
// instance exactly once.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load(viper.GetViper())
	})
	return config, configErr
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("metrics.listen", "")
	v.SetDefault("scheduler.algorithms", []string{"FIFO", "SJF", "SRT"})
	v.SetDefault("workload.count", 10)
	v.SetDefault("workload.max_arrival", 20)
	v.SetDefault("workload.mean_burst", 10.0)
	v.SetDefault("workload.burst_stddev", 5.0)
	v.SetDefault("workload.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.max_size_mb", logger.DefaultMaxSizeMB)
	v.SetDefault("log.max_backups", logger.DefaultMaxBackups)
	v.SetDefault("log.max_age_days", logger.DefaultMaxAgeDays)
	v.SetDefault("log.compress", false)
}

// Load reads configuration into v. A config file set explicitly with
// SetConfigFile must exist; otherwise config.yaml is looked up in ./ and is
// optional. SCHED_* environment variables override file values.
func Load(v *viper.Viper) (*SchedulerConfig, error) {
	SetDefaults(v)
	v.SetEnvPrefix("SCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:          v.GetInt("port"),
		MetricsListen: v.GetString("metrics.listen"),
		Algorithms:    v.GetStringSlice("scheduler.algorithms"),
		Workload: workload.Params{
			Count:       v.GetInt("workload.count"),
			MaxArrival:  v.GetInt("workload.max_arrival"),
			MeanBurst:   v.GetFloat64("workload.mean_burst"),
			BurstStdDev: v.GetFloat64("workload.burst_stddev"),
			Seed:        v.GetUint64("workload.seed"),
		},
		Log: logger.Config{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			File:       v.GetString("log.file"),
			NoColor:    v.GetBool("log.no_color"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
			Compress:   v.GetBool("log.compress"),
		},
	}
	if err := cfg.Workload.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
