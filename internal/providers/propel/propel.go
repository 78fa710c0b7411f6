// Package propel fetches dashboard state from the Propel points API.
package propel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

const defaultBaseURL = "https://api.propel2excel.com"

type summaryResponse struct {
	TotalPoints *int `json:"total_points"`
}

type feedResponse struct {
	Feed []feedEntry `json:"feed"`
}

type feedEntry struct {
	Timestamp    string `json:"timestamp"`
	Type         string `json:"type"`
	PointsChange int    `json:"points_change"`
	Description  string `json:"description"`
}

type timelineResponse struct {
	Timeline []timelineEntry `json:"timeline"`
}

type timelineEntry struct {
	Date             string `json:"date"`
	PointsEarned     int    `json:"points_earned"`
	PointsRedeemed   int    `json:"points_redeemed"`
	RedemptionsCount int    `json:"redemptions_count"`
}

type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) ID() string { return "propel" }

func (p *Provider) Describe() core.ProviderInfo {
	return core.ProviderInfo{
		Name:         "Propel Points",
		Capabilities: []string{"summary_endpoint", "activity_feed", "timeline"},
		DocURL:       "https://propel2excel.com/docs/api",
	}
}

// Fetch pulls the summary, activity feed, and timeline. The summary total is
// what the chart reconciles against, so its failure marks the whole snapshot;
// the feed and timeline endpoints may fail independently and the snapshot
// stays usable with whichever series source survived.
func (p *Provider) Fetch(ctx context.Context, acct core.AccountConfig) (core.DashboardState, error) {
	token := acct.ResolveToken()
	if token == "" {
		return core.DashboardState{
			ProviderID: p.ID(),
			AccountID:  acct.ID,
			Timestamp:  time.Now(),
			Status:     core.StatusAuth,
			Message:    fmt.Sprintf("env var %s not set", acct.TokenEnv),
		}, nil
	}

	baseURL := acct.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	state := core.DashboardState{
		ProviderID: p.ID(),
		AccountID:  acct.ID,
		Timestamp:  time.Now(),
		Status:     core.StatusOK,
	}

	if err := p.fetchSummary(ctx, baseURL, token, &state); err != nil {
		if state.Status == core.StatusAuth {
			return state, nil
		}
		state.Status = core.StatusError
		state.Message = fmt.Sprintf("summary error: %v", err)
		return state, nil
	}

	var feedErr, timelineErr error
	if feedErr = p.fetchFeed(ctx, baseURL, token, &state); feedErr != nil {
		feedErr = fmt.Errorf("feed: %w", feedErr)
	}
	if timelineErr = p.fetchTimeline(ctx, baseURL, token, &state); timelineErr != nil {
		timelineErr = fmt.Errorf("timeline: %w", timelineErr)
	}

	if feedErr != nil && timelineErr != nil {
		state.Message = fmt.Sprintf("%v; %v", feedErr, timelineErr)
	} else if feedErr != nil {
		state.Message = feedErr.Error()
	} else if timelineErr != nil {
		state.Message = timelineErr.Error()
	}

	return state, nil
}

func (p *Provider) fetchSummary(ctx context.Context, baseURL, token string, state *core.DashboardState) error {
	body, status, err := p.get(ctx, baseURL+"/api/dashboard/summary/", token)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		state.Status = core.StatusAuth
		state.Message = fmt.Sprintf("HTTP %d, check API token", status)
		return fmt.Errorf("HTTP %d", status)
	case http.StatusOK:
	default:
		return fmt.Errorf("HTTP %d", status)
	}

	var summary summaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return fmt.Errorf("parsing summary: %w", err)
	}

	state.TotalPoints = summary.TotalPoints
	return nil
}

func (p *Provider) fetchFeed(ctx context.Context, baseURL, token string, state *core.DashboardState) error {
	body, status, err := p.get(ctx, baseURL+"/api/dashboard/activity-feed/", token)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("HTTP %d", status)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]core.ActivityFeedItem, 0, len(feed.Feed))
	for _, e := range feed.Feed {
		items = append(items, core.ActivityFeedItem{
			Timestamp:    e.Timestamp,
			Type:         e.Type,
			PointsChange: e.PointsChange,
			Description:  e.Description,
		})
	}
	state.Feed = items
	return nil
}

func (p *Provider) fetchTimeline(ctx context.Context, baseURL, token string, state *core.DashboardState) error {
	body, status, err := p.get(ctx, baseURL+"/api/dashboard/timeline/", token)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("HTTP %d", status)
	}

	var timeline timelineResponse
	if err := json.Unmarshal(body, &timeline); err != nil {
		return fmt.Errorf("parsing timeline: %w", err)
	}

	rows := make([]core.TimelineRow, 0, len(timeline.Timeline))
	for _, e := range timeline.Timeline {
		rows = append(rows, core.TimelineRow{
			Date:             e.Date,
			PointsEarned:     e.PointsEarned,
			PointsRedeemed:   e.PointsRedeemed,
			RedemptionsCount: e.RedemptionsCount,
		})
	}
	state.Timeline = rows
	return nil
}

func (p *Provider) get(ctx context.Context, url, token string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}
	return body, resp.StatusCode, nil
}
