package games

import (
	"sort"
	"strings"
)

// Filter returns the ordered subsequence of the catalog whose title, engine
// or developer contains the query, case-insensitively. An empty query
// returns the full catalog order. Pure function, no side effects.
func Filter(c *Catalog, query string) []Game {
	all := c.All()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}
	out := make([]Game, 0, len(all))
	for _, g := range all {
		if strings.Contains(strings.ToLower(g.Title), query) ||
			strings.Contains(strings.ToLower(g.Engine), query) ||
			strings.Contains(strings.ToLower(g.Developer), query) {
			out = append(out, g)
		}
	}
	return out
}

// SortMode identifies one of the supported catalog orderings.
type SortMode string

const (
	SortNameAsc  SortMode = "name_asc"
	SortNameDesc SortMode = "name_desc"
	SortYearAsc  SortMode = "year_asc"
	SortYearDesc SortMode = "year_desc"
	SortScan     SortMode = "scan"
)

// SortModes lists the orderings in menu order, with display labels.
func SortModes() []struct {
	Mode  SortMode
	Label string
} {
	return []struct {
		Mode  SortMode
		Label string
	}{
		{SortNameAsc, "Name (A-Z)"},
		{SortNameDesc, "Name (Z-A)"},
		{SortYearAsc, "Year (oldest)"},
		{SortYearDesc, "Year (newest)"},
		{SortScan, "Config order"},
	}
}

// Sort returns a copy of the slice ordered by the given mode. Sorting is
// stable so equal keys keep their incoming (scan) order; SortScan and
// unknown modes leave the order untouched.
func Sort(gs []Game, mode SortMode) []Game {
	out := make([]Game, len(gs))
	copy(out, gs)
	switch mode {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) > strings.ToLower(out[j].Title)
		})
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year < out[j].Year
		})
	case SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year > out[j].Year
		})
	}
	return out
}

// InstalledOnly keeps entries detected in the local configuration.
func InstalledOnly(gs []Game) []Game {
	out := make([]Game, 0, len(gs))
	for _, g := range gs {
		if g.Installed {
			out = append(out, g)
		}
	}
	return out
}

// FavoritesFirst partitions the slice into favorites followed by the rest,
// preserving relative order within each half.
func FavoritesFirst(gs []Game, isFavorite func(id string) bool) []Game {
	out := make([]Game, 0, len(gs))
	for _, g := range gs {
		if isFavorite(g.ID) {
			out = append(out, g)
		}
	}
	for _, g := range gs {
		if !isFavorite(g.ID) {
			out = append(out, g)
		}
	}
	return out
}
