package services

import (
	"itinerary-planner-service/internal/domain"
	"sort"
)

// SegmentLayout is a purely geometric instruction for a calendar renderer:
// which display column a commute block occupies and how many columns its
// overlapping cluster needs. Top and height are expressed in minutes; the
// renderer owns the pixel conversion.
type SegmentLayout struct {
	Key           string
	Column        int
	ColumnCount   int
	TopMinutes    int
	HeightMinutes int
}

// LayoutSegments assigns non-overlapping display columns to concurrent
// commute segments on one day's timeline. Each segment occupies the
// interval [from.end, from.end + max(duration, 1)] where duration is the
// resolved travel time when known, otherwise the gap to the next activity.
//
// Columns are assigned greedily in start order: each block takes the
// smallest column unused by still-overlapping earlier blocks. ColumnCount
// is the width of the block's connected overlapping cluster, so blocks
// whose time ranges intersect never share a column.
func LayoutSegments(segments []domain.CommuteSegment, travel map[string]*domain.TravelTimeResult) []SegmentLayout {
	type block struct {
		layout SegmentLayout
		start  int
		end    int
	}

	blocks := make([]*block, 0, len(segments))
	for _, s := range segments {
		duration := s.GapMinutes
		if r := travel[s.Key]; r != nil {
			duration = r.DurationMinutes()
		}
		if duration < 1 {
			duration = 1
		}

		blocks = append(blocks, &block{
			layout: SegmentLayout{
				Key:           s.Key,
				TopMinutes:    s.FromEndMinutes,
				HeightMinutes: duration,
			},
			start: s.FromEndMinutes,
			end:   s.FromEndMinutes + duration,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].start < blocks[j].start
	})

	cluster := make([]*block, 0, len(blocks))
	clusterEnd := 0

	closeCluster := func() {
		maxColumn := 0
		for _, b := range cluster {
			if b.layout.Column > maxColumn {
				maxColumn = b.layout.Column
			}
		}
		for _, b := range cluster {
			b.layout.ColumnCount = maxColumn + 1
		}
		cluster = cluster[:0]
	}

	for _, b := range blocks {
		// A new cluster begins once the block starts at or after every
		// earlier block's end.
		if len(cluster) > 0 && b.start >= clusterEnd {
			closeCluster()
		}

		used := make(map[int]bool, len(cluster))
		for _, placed := range cluster {
			if placed.end > b.start {
				used[placed.layout.Column] = true
			}
		}

		column := 0
		for used[column] {
			column++
		}
		b.layout.Column = column

		cluster = append(cluster, b)
		if b.end > clusterEnd {
			clusterEnd = b.end
		}
	}
	if len(cluster) > 0 {
		closeCluster()
	}

	out := make([]SegmentLayout, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.layout)
	}
	return out
}
