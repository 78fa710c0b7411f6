package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

type UIConfig struct {
	RefreshIntervalSeconds int `json:"refresh_interval_seconds"`
}

type APIConfig struct {
	BaseURL   string `json:"base_url"`
	AccountID string `json:"account_id"`
	TokenEnv  string `json:"token_env"`
}

type Config struct {
	UI           UIConfig  `json:"ui"`
	API          APIConfig `json:"api"`
	SnapshotPath string    `json:"snapshot_path,omitempty"` // offline snapshot file, used instead of the API when set
	History      bool      `json:"history"`                 // persist fetched days into the local history store
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			RefreshIntervalSeconds: 60,
		},
		API: APIConfig{
			BaseURL:   "https://api.propel2excel.com",
			AccountID: "propel",
			TokenEnv:  "PROPEL_API_TOKEN",
		},
		History: true,
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "pointsdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pointsdash")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// HistoryPath is where the sqlite history store lives.
func HistoryPath() string {
	return filepath.Join(ConfigDir(), "history.db")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.UI.RefreshIntervalSeconds <= 0 {
		cfg.UI.RefreshIntervalSeconds = 60
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultConfig().API.BaseURL
	}
	if cfg.API.AccountID == "" {
		cfg.API.AccountID = DefaultConfig().API.AccountID
	}
	if cfg.API.TokenEnv == "" {
		cfg.API.TokenEnv = DefaultConfig().API.TokenEnv
	}

	return cfg, nil
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
