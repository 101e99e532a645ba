package games

import (
	"reflect"
	"testing"
)

func scenarioCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	entries := []Game{
		{ID: "monkey1", Title: "The Secret of Monkey Island", Engine: "scumm", Developer: "LucasArts", Year: 1990, Installed: true},
		{ID: "sky", Title: "Beneath a Steel Sky", Engine: "sky", Developer: "Revolution", Year: 1994, Installed: true},
	}
	for _, g := range entries {
		if err := c.Add(g); err != nil {
			t.Fatalf("Add(%q): %v", g.ID, err)
		}
	}
	return c
}

func ids(gs []Game) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}

func TestFilterScenario(t *testing.T) {
	c := scenarioCatalog(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"sky only", "sky", []string{"sky"}},
		{"monkey only", "monkey", []string{"monkey1"}},
		{"empty query keeps order", "", []string{"monkey1", "sky"}},
		{"case insensitive", "MONKEY", []string{"monkey1"}},
		{"matches engine", "scumm", []string{"monkey1"}},
		{"matches developer", "revolution", []string{"sky"}},
		{"no match", "zork", []string{}},
		{"whitespace is trimmed", "  sky  ", []string{"sky"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(c, tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

// Every filter result must be a subsequence of the catalog order.
func TestFilterIsSubsequence(t *testing.T) {
	c := NewCatalog()
	for _, g := range KnownGames() {
		if err := c.Add(g); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	order := make(map[string]int)
	for i, id := range c.IDs() {
		order[id] = i
	}

	for _, query := range []string{"", "the", "lucasarts", "scumm", "a", "island", "xyzzy"} {
		got := Filter(c, query)
		prev := -1
		for _, g := range got {
			pos, ok := order[g.ID]
			if !ok {
				t.Fatalf("Filter(%q) returned unknown id %q", query, g.ID)
			}
			if pos <= prev {
				t.Errorf("Filter(%q): id %q out of catalog order", query, g.ID)
			}
			prev = pos
		}
	}
}

func TestSortModes(t *testing.T) {
	gs := []Game{
		{ID: "b", Title: "Beta", Year: 1995},
		{ID: "a", Title: "alpha", Year: 1990},
		{ID: "c", Title: "Gamma", Year: 1990},
	}

	cases := []struct {
		mode SortMode
		want []string
	}{
		{SortNameAsc, []string{"a", "b", "c"}},
		{SortNameDesc, []string{"c", "b", "a"}},
		{SortYearAsc, []string{"a", "c", "b"}}, // stable: a before c
		{SortYearDesc, []string{"b", "a", "c"}},
		{SortScan, []string{"b", "a", "c"}},
		{SortMode("bogus"), []string{"b", "a", "c"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			got := ids(Sort(gs, tc.mode))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Sort(%s) = %v, want %v", tc.mode, got, tc.want)
			}
			// input untouched
			if gs[0].ID != "b" || gs[1].ID != "a" || gs[2].ID != "c" {
				t.Fatal("Sort mutated its input")
			}
		})
	}
}

func TestInstalledOnly(t *testing.T) {
	gs := []Game{
		{ID: "a", Installed: true},
		{ID: "b"},
		{ID: "c", Installed: true},
	}
	got := ids(InstalledOnly(gs))
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InstalledOnly = %v, want %v", got, want)
	}
}

func TestFavoritesFirst(t *testing.T) {
	gs := []Game{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	fav := map[string]bool{"b": true, "d": true}

	got := ids(FavoritesFirst(gs, func(id string) bool { return fav[id] }))
	want := []string{"b", "d", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FavoritesFirst = %v, want %v", got, want)
	}
}
