package core

import "time"

type Status string

const (
	StatusOK      Status = "OK"
	StatusAuth    Status = "AUTH_REQUIRED"
	StatusError   Status = "ERROR"
	StatusUnknown Status = "UNKNOWN"
)

// ActivityFeedItem is one fine-grained event from the points API activity
// feed: a point-earning activity or a reward redemption.
type ActivityFeedItem struct {
	Timestamp    string `json:"timestamp"` // ISO-8601, date portion before 'T'
	Type         string `json:"type"`      // "activity" or "redemption"
	PointsChange int    `json:"points_change"`
	Description  string `json:"description,omitempty"`
}

const (
	FeedItemActivity   = "activity"
	FeedItemRedemption = "redemption"
)

// TimelineRow is one pre-aggregated day from the points API timeline.
// Missing numeric fields decode as zero.
type TimelineRow struct {
	Date             string `json:"date"` // "2025-01-15"
	PointsEarned     int    `json:"points_earned"`
	PointsRedeemed   int    `json:"points_redeemed"`
	RedemptionsCount int    `json:"redemptions_count"`
}

// DashboardState is one provider snapshot of everything the dashboard
// renders: the activity feed, the timeline fallback, and the authoritative
// running total. TotalPoints is nil when the summary endpoint had nothing.
type DashboardState struct {
	ProviderID  string             `json:"provider_id"`
	AccountID   string             `json:"account_id"`
	Timestamp   time.Time          `json:"timestamp"`
	Status      Status             `json:"status"`
	Feed        []ActivityFeedItem `json:"feed,omitempty"`
	Timeline    []TimelineRow      `json:"timeline,omitempty"`
	TotalPoints *int               `json:"total_points,omitempty"`
	Message     string             `json:"message,omitempty"`
}

// HasSeriesData reports whether the snapshot carries anything the series
// builder can chart.
func (s DashboardState) HasSeriesData() bool {
	return len(s.Feed) > 0 || len(s.Timeline) > 0
}

// Total returns the authoritative total, treating an absent value as zero.
func (s DashboardState) Total() int {
	if s.TotalPoints == nil {
		return 0
	}
	return *s.TotalPoints
}

func IntPtr(v int) *int { return &v }
