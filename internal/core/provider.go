package core

import (
	"context"
	"os"
)

type AccountConfig struct {
	ID           string `json:"id"`
	Provider     string `json:"provider"`
	BaseURL      string `json:"base_url,omitempty"`      // points API base URL
	TokenEnv     string `json:"token_env,omitempty"`     // env var holding the API token
	SnapshotPath string `json:"snapshot_path,omitempty"` // path for the snapshot-file provider
	Token        string `json:"-"`                       // runtime-only: resolved token (never persisted)
}

func (c AccountConfig) ResolveToken() string {
	if c.Token != "" {
		return c.Token
	}
	return os.Getenv(c.TokenEnv)
}

type ProviderInfo struct {
	Name         string   // e.g. "Propel Points API"
	Capabilities []string // "summary", "activity_feed", "timeline", "snapshot_file"
	DocURL       string
}

// DataProvider supplies dashboard state snapshots. Implementations must not
// return an error for degraded data; they encode failures in the snapshot
// Status/Message so the refresh loop keeps running.
type DataProvider interface {
	ID() string

	Describe() ProviderInfo

	Fetch(ctx context.Context, acct AccountConfig) (DashboardState, error)
}
