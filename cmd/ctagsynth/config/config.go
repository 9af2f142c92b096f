// SPDX-License-Identifier: EPL-2.0

// Package config loads the ctagsynth command settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

const (
	ModePlay   = "play"
	ModeBounce = "bounce"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting the command reads.
type Config struct {
	LogLevel string `mapstructure:"loglevel"`
	LogFile  string `mapstructure:"logfile"`

	Mode  string `mapstructure:"mode"`
	Voice string `mapstructure:"voice"`

	Frequency    float64 `mapstructure:"frequency"`
	Amplitude    float64 `mapstructure:"amplitude"`
	LFORate      float64 `mapstructure:"lforate"`
	LFODepth     float64 `mapstructure:"lfodepth"`
	Duty         float64 `mapstructure:"duty"`
	Skew         float64 `mapstructure:"skew"`
	ModFrequency float64 `mapstructure:"modfrequency"`
	ModIndex     float64 `mapstructure:"modindex"`

	HeadphoneVolume int `mapstructure:"headphonevolume"`
	LineOutVolume   int `mapstructure:"lineoutvolume"`

	Output         string        `mapstructure:"output"`
	Duration       time.Duration `mapstructure:"duration"`
	BounceRate     int           `mapstructure:"bouncerate"`
	BounceChannels int           `mapstructure:"bouncechannels"`
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("loglevel", "info")
	v.SetDefault("logfile", "")
	v.SetDefault("mode", ModePlay)
	v.SetDefault("voice", "sine")
	v.SetDefault("frequency", 440.0)
	v.SetDefault("amplitude", 0.5)
	v.SetDefault("lforate", 5.0)
	v.SetDefault("lfodepth", 0.0)
	v.SetDefault("duty", 0.5)
	v.SetDefault("skew", 0.5)
	v.SetDefault("modfrequency", 220.0)
	v.SetDefault("modindex", 0.0)
	v.SetDefault("headphonevolume", 80)
	v.SetDefault("lineoutvolume", 80)
	v.SetDefault("output", "out.wav")
	v.SetDefault("duration", 2*time.Second)
	v.SetDefault("bouncerate", 44100)
	v.SetDefault("bouncechannels", 2)
}

// LoadConfig reads configFilePath over the defaults. A missing file is
// logged and the defaults are used. Environment variables prefixed with
// CTAGSYNTH_ override both.
func LoadConfig(configFilePath string) (Config, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetEnvPrefix("ctagsynth")
	v.AutomaticEnv()

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %q: %w", configFilePath, err)
			}
			slog.Info("no config file found", "configFilePath", configFilePath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks settings that have no sensible fallback.
func (c Config) Validate() error {
	switch c.Mode {
	case ModePlay, ModeBounce:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("%w: frequency %v", ErrInvalidConfig, c.Frequency)
	}
	if c.Mode == ModeBounce {
		if c.Duration <= 0 {
			return fmt.Errorf("%w: duration %v", ErrInvalidConfig, c.Duration)
		}
		if c.BounceRate <= 0 {
			return fmt.Errorf("%w: bouncerate %d", ErrInvalidConfig, c.BounceRate)
		}
		if c.BounceChannels != 1 && c.BounceChannels != 2 {
			return fmt.Errorf("%w: bouncechannels %d", ErrInvalidConfig, c.BounceChannels)
		}
	}

	return nil
}
