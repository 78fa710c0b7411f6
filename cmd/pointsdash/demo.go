package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

// demoProvider serves generated activity so the dashboard can be tried
// without an API token.
type demoProvider struct {
	rng *rand.Rand
}

func newDemoProvider() *demoProvider {
	return &demoProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *demoProvider) ID() string { return "demo" }

func (p *demoProvider) Describe() core.ProviderInfo {
	return core.ProviderInfo{
		Name:         "Demo",
		Capabilities: []string{"activity_feed"},
	}
}

func (p *demoProvider) Fetch(_ context.Context, acct core.AccountConfig) (core.DashboardState, error) {
	var feed []core.ActivityFeedItem
	total := 0

	now := time.Now().UTC()
	for daysAgo := 13; daysAgo >= 0; daysAgo-- {
		day := now.AddDate(0, 0, -daysAgo)
		// One or two earning events most days, occasional redemption.
		for i := 0; i < 1+p.rng.Intn(2); i++ {
			pts := 5 + p.rng.Intn(20)
			total += pts
			feed = append(feed, core.ActivityFeedItem{
				Timestamp:    day.Add(time.Duration(9+i*3) * time.Hour).Format(time.RFC3339),
				Type:         core.FeedItemActivity,
				PointsChange: pts,
				Description:  demoActivities[p.rng.Intn(len(demoActivities))],
			})
		}
		if p.rng.Intn(5) == 0 && total > 25 {
			redeemed := 10 + p.rng.Intn(15)
			total -= redeemed
			feed = append(feed, core.ActivityFeedItem{
				Timestamp:    day.Add(18 * time.Hour).Format(time.RFC3339),
				Type:         core.FeedItemRedemption,
				PointsChange: -redeemed,
				Description:  "Reward redemption",
			})
		}
	}

	return core.DashboardState{
		ProviderID:  p.ID(),
		AccountID:   acct.ID,
		Timestamp:   time.Now(),
		Status:      core.StatusOK,
		Feed:        feed,
		TotalPoints: core.IntPtr(total),
	}, nil
}

var demoActivities = []string{
	"Resume review session",
	"Mock interview",
	"Workshop attendance",
	"Referral bonus",
	"Event check-in",
	"Mentor session",
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the dashboard with generated sample data.",
		Run: func(_ *cobra.Command, _ []string) {
			runDemoDashboard()
		},
	}
}

func runDemoDashboard() {
	fmt.Println("Starting demo dashboard with generated data...")
	runEngineDashboard(newDemoProvider(), core.AccountConfig{ID: "demo", Provider: "demo"})
}
