// Package referral aggregates the binary referral tree on the client side.
package referral

import "hatra/internal/platform"

// Aggregate tallies edges by side. Note that over a single page of a
// paginated listing this undercounts; the server's teamCounts aggregate is
// authoritative and this tally is only the fallback for bare-array
// responses.
func Aggregate(edges []platform.Referral) platform.TeamCounts {
	counts := platform.TeamCounts{}
	for _, edge := range edges {
		switch edge.Side {
		case platform.SideLeft:
			counts.Left++
		case platform.SideRight:
			counts.Right++
		}
	}
	return counts
}

// SplitSides partitions a page of edges for the two-column network view.
// Edges with an unknown side land on the left, as the original UI did.
func SplitSides(edges []platform.Referral) (left, right []platform.Referral) {
	for _, edge := range edges {
		if edge.Side == platform.SideRight {
			right = append(right, edge)
		} else {
			left = append(left, edge)
		}
	}
	return left, right
}
