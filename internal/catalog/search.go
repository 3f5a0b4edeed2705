package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gobwas/glob"
)

// MatchKind tells what a search match points at.
type MatchKind int

const (
	MatchComponent MatchKind = iota
	MatchVariant
)

// Match is a single search result.
type Match struct {
	Kind  MatchKind
	ID    int64
	Title string
	Score int // lower is better
}

const fuzzyPenalty = 100

// Search finds components and variants by title. Queries containing glob
// metacharacters (*, ?, [ or {) are matched as case-insensitive patterns;
// other queries match by substring first and by edit distance second. An empty
// query returns every entry sorted by title.
func (c *Catalog) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	var score func(title string) (int, bool)
	switch {
	case query == "":
		score = func(string) (int, bool) { return 0, true }
	case strings.ContainsAny(query, "*?[{"):
		g, err := glob.Compile(query)
		if err != nil {
			return nil
		}
		score = func(title string) (int, bool) { return 0, g.Match(title) }
	default:
		score = func(title string) (int, bool) { return rank(query, title) }
	}

	var matches []Match
	add := func(kind MatchKind, id int64, ref TextRef) {
		title := c.Resolve(ref)
		if s, ok := score(strings.ToLower(title)); ok {
			matches = append(matches, Match{Kind: kind, ID: id, Title: title, Score: s})
		}
	}
	for _, comp := range c.components {
		add(MatchComponent, comp.ID, comp.Title)
		for _, v := range comp.Variants {
			add(MatchVariant, v.ID, v.Title)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return matches[i].Title < matches[j].Title
	})
	return matches
}

// rank scores title against a lowercase query. A substring hit scores its
// offset; otherwise the closest word within a third of the query length
// (at least one edit) scores fuzzyPenalty plus its distance.
func rank(query, title string) (int, bool) {
	if i := strings.Index(title, query); i >= 0 {
		return i, true
	}
	limit := len(query) / 3
	if limit < 1 {
		limit = 1
	}
	best := -1
	for _, word := range strings.Fields(title) {
		d := levenshtein.ComputeDistance(query, word)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > limit {
		return 0, false
	}
	return fuzzyPenalty + best, true
}
