package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultPath is the converter settings file, relative to the working directory.
const DefaultPath = "image_convert/convert.ini"

const (
	convertSection = "convert-image"
	waveSection    = "generate-waves"

	keyCheckFormats        = convertSection + ".is_checking_formats"
	keyRejectCurrentFormat = convertSection + ".check_current_format_in_selection"
	keyStopAfterJPEG       = convertSection + ".stop_after_jpeg"
	keySampleRate          = waveSection + ".sample_rate"
	keyOutputDir           = waveSection + ".output_dir"
)

// Policy controls the optional format-selection validation of the converter.
type Policy struct {
	CheckFormats        bool `yaml:"is_checking_formats"`
	RejectCurrentFormat bool `yaml:"check_current_format_in_selection"`
	// StopAfterJPEG ends the save loop once a JPEG has been written.
	StopAfterJPEG bool `yaml:"stop_after_jpeg"`
}

type WaveConfig struct {
	SampleRate int    `yaml:"sample_rate"`
	OutputDir  string `yaml:"output_dir"`
}

type Config struct {
	Convert Policy     `yaml:"convert-image"`
	Wave    WaveConfig `yaml:"generate-waves"`
}

// LoadStatus tells how the configuration was obtained.
type LoadStatus int

const (
	StatusLoaded LoadStatus = iota
	StatusAbsent
	StatusMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusAbsent:
		return "absent"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LoadResult describes the outcome of Load. Err is set for StatusAbsent and
// StatusMalformed.
type LoadResult struct {
	Path   string
	Status LoadStatus
	Err    error
}

var ErrMissingKey = errors.New("missing required key")

// Default returns the built-in settings used when no configuration applies.
func Default() *Config {
	return &Config{
		Convert: Policy{
			CheckFormats:        false,
			RejectCurrentFormat: false,
			StopAfterJPEG:       true,
		},
		Wave: WaveConfig{
			SampleRate: 44100,
		},
	}
}

// Load reads the INI settings file at configFile. It never fails: on any
// problem the defaults are returned and the result records why.
// MEDIATOOLS_* environment variables override the file, or the defaults
// when the file does not exist.
func Load(configFile string) (*Config, LoadResult) {
	if configFile == "" {
		configFile = DefaultPath
	}
	result := LoadResult{Path: configFile, Status: StatusLoaded}

	v := newViper()
	cfg, err := read(v, configFile)
	if err != nil {
		result.Err = err
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusAbsent
			slog.Info("Could not find config file. Default settings loaded", "path", configFile)
			cfg, err = decode(v, false)
			if err == nil {
				return cfg, result
			}
			slog.Warn("Ignoring invalid environment override", "error", err)
		} else {
			result.Status = StatusMalformed
			slog.Warn("Invalid config file. Default settings loaded", "path", configFile, "error", err)
		}
		return Default(), result
	}

	slog.Debug("Loaded config", "path", configFile, "policy", cfg.Convert, "wave", cfg.Wave)
	return cfg, result
}

func newViper() *viper.Viper {
	// Use a new viper instance to avoid interfering with the global one
	v := viper.New()
	v.SetConfigType("ini")
	v.SetEnvPrefix("MEDIATOOLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper, configFile string) (*Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		return nil, err
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	return decode(v, true)
}

// decode builds a Config from the values known to v on top of Default.
// With strict set, the two policy switches must be present.
func decode(v *viper.Viper, strict bool) (*Config, error) {
	cfg := Default()
	var err error

	if strict || v.IsSet(keyCheckFormats) {
		if cfg.Convert.CheckFormats, err = requiredBool(v, keyCheckFormats); err != nil {
			return nil, err
		}
	}
	if strict || v.IsSet(keyRejectCurrentFormat) {
		if cfg.Convert.RejectCurrentFormat, err = requiredBool(v, keyRejectCurrentFormat); err != nil {
			return nil, err
		}
	}
	if v.IsSet(keyStopAfterJPEG) {
		if cfg.Convert.StopAfterJPEG, err = cast.ToBoolE(v.Get(keyStopAfterJPEG)); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", keyStopAfterJPEG, err)
		}
	}

	if v.IsSet(keySampleRate) {
		rate, err := cast.ToIntE(v.Get(keySampleRate))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", keySampleRate, err)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("invalid value for %s: must be positive, got %d", keySampleRate, rate)
		}
		cfg.Wave.SampleRate = rate
	}
	if v.IsSet(keyOutputDir) {
		cfg.Wave.OutputDir = expandPath(v.GetString(keyOutputDir))
	}

	return cfg, nil
}

func requiredBool(v *viper.Viper, key string) (bool, error) {
	if !v.IsSet(key) {
		return false, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return b, nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
