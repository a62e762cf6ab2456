// Package settings loads worddist's process-level configuration: server
// host/port/CORS/logging knobs from the environment, plus the distance
// engine's cost/penalty/limit set, optionally overridden from a TOML or
// YAML config file.
//
// Grounded on the reconciliation service's internal/config/config.go
// env-var loader, generalized with a config-file override dispatched by
// extension the same way internal/pairfile dispatches on filename.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"worddist"
)

// Distance mirrors every worddist.Config option as a plain, serializable
// field so it can be populated from the environment or decoded from a
// config file, then turned into an immutable worddist.Config via Build.
type Distance struct {
	InsDelCost           float64 `toml:"ins_del_cost" yaml:"ins_del_cost"`
	SubstCost            float64 `toml:"subst_cost" yaml:"subst_cost"`
	SwapCost             float64 `toml:"swap_cost" yaml:"swap_cost"`
	DuplicateCost        float64 `toml:"duplicate_cost" yaml:"duplicate_cost"`
	DigitChangePenalty   float64 `toml:"digit_change_penalty" yaml:"digit_change_penalty"`
	TokenInitialPenalty  float64 `toml:"token_initial_penalty" yaml:"token_initial_penalty"`
	TokenSepSubstPenalty float64 `toml:"token_sep_subst_penalty" yaml:"token_sep_subst_penalty"`
	TokenDeltaPenalty    float64 `toml:"token_delta_penalty" yaml:"token_delta_penalty"`
	SpaceOnlyCost        float64 `toml:"space_only_cost" yaml:"space_only_cost"`
	PerTokenLimit        bool    `toml:"per_token_limit" yaml:"per_token_limit"`
	DefaultLimit         float64 `toml:"default_limit" yaml:"default_limit"`
	DefaultNormLimit     float64 `toml:"default_norm_limit" yaml:"default_norm_limit"`
	NormType             string  `toml:"norm_type" yaml:"norm_type"`
	TokenSep             string  `toml:"token_sep" yaml:"token_sep"`
}

// DefaultDistance returns a Distance populated with the engine's built-in
// defaults, suitable as the base a config file's values are decoded over.
func DefaultDistance() Distance {
	return Distance{
		InsDelCost:           1.0,
		SubstCost:            1.0,
		SwapCost:             1.25,
		DuplicateCost:        0.05,
		DigitChangePenalty:   0.33,
		TokenInitialPenalty:  0.25,
		TokenSepSubstPenalty: 0.50,
		TokenDeltaPenalty:    0.25,
		SpaceOnlyCost:        0.10,
		PerTokenLimit:        true,
		DefaultLimit:         2.0,
		DefaultNormLimit:     0.0,
		NormType:             "max",
		TokenSep:             " ",
	}
}

// Build turns d into an immutable worddist.Config.
func (d Distance) Build() (*worddist.Config, error) {
	nt, err := worddist.ParseNormType(d.NormType)
	if err != nil {
		return nil, err
	}
	sep := []rune(d.TokenSep)
	if len(sep) != 1 {
		return nil, fmt.Errorf("settings: tokenSep must be exactly one scalar, got %q", d.TokenSep)
	}
	return worddist.NewBuilder().
		InsDelCost(d.InsDelCost).
		SubstCost(d.SubstCost).
		SwapCost(d.SwapCost).
		DuplicateCost(d.DuplicateCost).
		DigitChangePenalty(d.DigitChangePenalty).
		TokenInitialPenalty(d.TokenInitialPenalty).
		TokenSepSubstPenalty(d.TokenSepSubstPenalty).
		TokenDeltaPenalty(d.TokenDeltaPenalty).
		SpaceOnlyCost(d.SpaceOnlyCost).
		PerTokenLimit(d.PerTokenLimit).
		DefaultLimit(d.DefaultLimit).
		DefaultNormLimit(d.DefaultNormLimit).
		NormType(nt).
		TokenSep(sep[0]).
		Build()
}

// Settings is the process configuration read by cmd/worddistd. The
// cmd/worddist CLI does not use it; it takes its options from flags.
type Settings struct {
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	AllowOrigins []string `toml:"allow_origins" yaml:"allow_origins"`
	LogLevel     string   `toml:"log_level" yaml:"log_level"`
	LogFile      string   `toml:"log_file" yaml:"log_file"`
	MaxUploadMB  int      `toml:"max_upload_mb" yaml:"max_upload_mb"`
	Workers      int      `toml:"workers" yaml:"workers"`
	Distance     Distance `toml:"distance" yaml:"distance"`
}

// Load reads Settings from the environment, falling back to the engine's
// built-in cost defaults.
func Load() Settings {
	return Settings{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         getenvInt("PORT", 8082),
		AllowOrigins: strings.Split(getenv("ALLOW_ORIGINS", "*"), ","),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/worddist.log"),
		MaxUploadMB:  getenvInt("MAX_UPLOAD_MB", 16),
		Workers:      getenvInt("WORKERS", runtime.NumCPU()),
		Distance:     DefaultDistance(),
	}
}

// Addr returns the host:port the HTTP server should bind to.
func (s Settings) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// LoadFile decodes a TOML or YAML config file over s, overriding whatever
// fields it sets and leaving the rest untouched. The dispatch is by
// filename extension, the same pattern internal/pairfile uses for its
// input formats.
func LoadFile(path string, s *Settings) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err := toml.DecodeFile(path, s)
		return err
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, s)
	default:
		return fmt.Errorf("settings: unsupported config file extension %q", ext)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
