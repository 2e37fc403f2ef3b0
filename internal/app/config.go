package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"nip44/internal/protocol/nip44"
	"nip44/internal/store"
)

// ConfigFile is the name of the optional config file inside Home.
const ConfigFile = "config.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string             `toml:"-"`          // data directory, e.g. $HOME/.nip44
	CacheSize int                `toml:"cache_size"` // conversation keys kept in memory
	LogLevel  string             `toml:"log_level"`  // zerolog level name
	Scrypt    store.ScryptParams `toml:"scrypt"`     // keystore KDF cost
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		CacheSize: nip44.DefaultCacheSize,
		LogLevel:  "warn",
		Scrypt:    store.DefaultScryptParams(),
	}
}

// LoadConfig reads home/config.toml over the defaults. A missing file is not
// an error; unknown keys are.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	path := filepath.Join(home, ConfigFile)

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Home = home
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.CacheSize < 1 {
		return fmt.Errorf("config: cache_size must be positive, got %d", c.CacheSize)
	}
	if c.Scrypt.N < 2 || c.Scrypt.N&(c.Scrypt.N-1) != 0 {
		return fmt.Errorf("config: scrypt.n must be a power of two greater than 1, got %d", c.Scrypt.N)
	}
	if c.Scrypt.R < 1 || c.Scrypt.P < 1 {
		return errors.New("config: scrypt.r and scrypt.p must be positive")
	}
	return nil
}
