// Package social derives suggestion and trending orderings from raw
// catalog data. Pure functions: they read, never mutate.
package social

import (
	"sort"

	"github.com/playform/playform/internal/catalog"
)

// Suggested orders published games for a user in three tiers, each
// preserving catalog order internally:
//
//  1. games by creators the user subscribes to
//  2. games the user has liked, unless already placed in tier 1
//  3. everything else
//
// No game appears in more than one tier, so the combined output
// contains every input game exactly once. A nil (anonymous or
// unknown) user gets the games back in catalog order.
func Suggested(user *catalog.User, games []catalog.Game) []catalog.Game {
	if user == nil {
		out := make([]catalog.Game, len(games))
		copy(out, games)
		return out
	}

	placed := make(map[string]bool, len(games))
	out := make([]catalog.Game, 0, len(games))

	for _, g := range games {
		if user.IsSubscribed(g.Creator) {
			placed[g.ID] = true
			out = append(out, g)
		}
	}
	for _, g := range games {
		if !placed[g.ID] && user.HasLiked(g.ID) {
			placed[g.ID] = true
			out = append(out, g)
		}
	}
	for _, g := range games {
		if !placed[g.ID] {
			out = append(out, g)
		}
	}
	return out
}

// Trending orders games by like count descending. The sort is stable:
// equal counts keep catalog insertion order. limit <= 0 means no limit.
func Trending(games []catalog.Game, limit int) []catalog.Game {
	out := make([]catalog.Game, len(games))
	copy(out, games)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LikeCount > out[j].LikeCount
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Limit truncates a ranked list. Convenience for view layers.
func Limit(games []catalog.Game, limit int) []catalog.Game {
	if limit > 0 && len(games) > limit {
		return games[:limit]
	}
	return games
}
