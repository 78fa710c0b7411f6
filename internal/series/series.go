// Package series derives the cumulative points-activity chart series from a
// dashboard state snapshot. The transform is pure: identical inputs always
// produce identical output, so the TUI can rebuild it on every render.
package series

import (
	"sort"

	"github.com/samber/lo"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

// Source records which data path produced a chart point.
type Source string

const (
	SourceActivityFeed Source = "activity-feed"
	SourceTimeline     Source = "timeline"
)

// Point is one charted day. Points carries the reconciled cumulative total;
// the remaining fields describe just that day and are never adjusted.
type Point struct {
	Label       string // short display label, e.g. "Sep 8"
	Date        string // "2025-09-08"
	Points      int    // cumulative total after reconciliation
	Daily       int    // points earned that day
	Redeemed    int    // redemption magnitude that day
	Net         int    // Daily - Redeemed
	Redemptions int    // redemption count that day
	Source      Source
}

// dailyBucket accumulates one day's worth of feed items.
type dailyBucket struct {
	date        string
	points      int
	activities  int
	redemptions int
	redeemed    int
}

// Build produces the ordered cumulative series from the preferred source:
// the activity feed when it has any entries, otherwise the timeline. Both
// empty yields nil. The final point's cumulative total is reconciled against
// totalPoints (nil is treated as zero) by shifting every point uniformly, so
// the curve's shape survives while its level matches the server's total.
func Build(feed []core.ActivityFeedItem, timeline []core.TimelineRow, totalPoints *int) []Point {
	var points []Point
	switch {
	case len(feed) > 0:
		points = fromFeed(feed)
	case len(timeline) > 0:
		points = fromTimeline(timeline)
	default:
		return nil
	}

	total := 0
	if totalPoints != nil {
		total = *totalPoints
	}
	if adjustment := total - points[len(points)-1].Points; adjustment != 0 {
		for i := range points {
			points[i].Points += adjustment
		}
	}
	return points
}

// FromState is the snapshot-shaped convenience wrapper around Build.
func FromState(state core.DashboardState) []Point {
	return Build(state.Feed, state.Timeline, state.TotalPoints)
}

func fromFeed(feed []core.ActivityFeedItem) []Point {
	buckets := make(map[string]*dailyBucket)
	for _, item := range feed {
		day := dayOf(item.Timestamp)
		if day == "" {
			continue
		}
		b, ok := buckets[day]
		if !ok {
			b = &dailyBucket{date: day}
			buckets[day] = b
		}
		// Only positive earnings and negative redemptions count; anything
		// else in the feed (refund rows, zero-point entries) is dropped.
		switch {
		case item.Type == core.FeedItemActivity && item.PointsChange > 0:
			b.points += item.PointsChange
			b.activities++
		case item.Type == core.FeedItemRedemption && item.PointsChange < 0:
			b.redeemed += -item.PointsChange
			b.redemptions++
		}
	}

	days := lo.Keys(buckets)
	sort.Strings(days)

	points := make([]Point, 0, len(days))
	runningTotal := 0
	for _, day := range days {
		b := buckets[day]
		runningTotal += b.points - b.redeemed
		// The cumulative line never dips below zero even when redemptions
		// land before their matching earnings in the fetched window.
		if runningTotal < 0 {
			runningTotal = 0
		}
		points = append(points, Point{
			Label:       FormatDayLabel(day),
			Date:        day,
			Points:      runningTotal,
			Daily:       b.points,
			Redeemed:    b.redeemed,
			Net:         b.points - b.redeemed,
			Redemptions: b.redemptions,
			Source:      SourceActivityFeed,
		})
	}
	return points
}

func fromTimeline(timeline []core.TimelineRow) []Point {
	rows := make([]core.TimelineRow, len(timeline))
	copy(rows, timeline)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	points := make([]Point, 0, len(rows))
	runningTotal := 0
	for _, row := range rows {
		dailyNet := row.PointsEarned - row.PointsRedeemed
		// Unlike the feed branch, the timeline walk does not clamp at zero;
		// reconciliation lifts the whole curve afterwards.
		runningTotal += dailyNet
		points = append(points, Point{
			Label:       FormatDayLabel(row.Date),
			Date:        row.Date,
			Points:      runningTotal,
			Daily:       row.PointsEarned,
			Redeemed:    row.PointsRedeemed,
			Net:         dailyNet,
			Redemptions: row.RedemptionsCount,
			Source:      SourceTimeline,
		})
	}
	return points
}
