// Package snapshotfile serves dashboard state from a local JSON file,
// for offline use and for demoing against captured API responses.
package snapshotfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

type snapshot struct {
	TotalPoints *int                    `json:"total_points"`
	Feed        []core.ActivityFeedItem `json:"feed"`
	Timeline    []core.TimelineRow      `json:"timeline"`
}

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) ID() string { return "snapshot-file" }

func (p *Provider) Describe() core.ProviderInfo {
	return core.ProviderInfo{
		Name:         "Snapshot File",
		Capabilities: []string{"offline", "activity_feed", "timeline"},
	}
}

func (p *Provider) Fetch(ctx context.Context, acct core.AccountConfig) (core.DashboardState, error) {
	state := core.DashboardState{
		ProviderID: p.ID(),
		AccountID:  acct.ID,
		Timestamp:  time.Now(),
	}

	if acct.SnapshotPath == "" {
		state.Status = core.StatusError
		state.Message = "no snapshot file configured"
		return state, nil
	}

	data, err := os.ReadFile(acct.SnapshotPath)
	if err != nil {
		state.Status = core.StatusError
		state.Message = fmt.Sprintf("reading snapshot: %v", err)
		return state, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		state.Status = core.StatusError
		state.Message = fmt.Sprintf("parsing snapshot %s: %v", acct.SnapshotPath, err)
		return state, nil
	}

	state.Status = core.StatusOK
	state.TotalPoints = snap.TotalPoints
	state.Feed = snap.Feed
	state.Timeline = snap.Timeline
	return state, nil
}
