// Package config reads the optional lrtab.toml project file holding
// CLI defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ConflictPolicy controls how the CLI reacts when grammar.NewTable
// reports table conflicts.
type ConflictPolicy string

const (
	// ConflictPolicyWarn compiles anyway and prints the conflicts to
	// stderr (the default, matching the legacy lenient driver).
	ConflictPolicyWarn ConflictPolicy = "warn"
	// ConflictPolicyFail refuses to compile a grammar with conflicts.
	ConflictPolicyFail ConflictPolicy = "fail"
	// ConflictPolicySilent compiles without reporting conflicts at all.
	ConflictPolicySilent ConflictPolicy = "silent"
)

// Config is the shape of lrtab.toml.
type Config struct {
	OutDir         string         `toml:"out_dir"`
	CacheDB        string         `toml:"cache_db"`
	ConflictPolicy ConflictPolicy `toml:"conflict_policy"`
}

// Default returns the built-in defaults used when no config file is
// present.
func Default() Config {
	return Config{
		OutDir:         ".",
		CacheDB:        "lrtab-cache.db",
		ConflictPolicy: ConflictPolicyWarn,
	}
}

// Load reads path and overlays it onto Default(). A missing file is
// not an error; it just returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
