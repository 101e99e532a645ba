package games

import (
	"reflect"
	"testing"
)

func TestCatalogAdd(t *testing.T) {
	c := NewCatalog()
	if err := c.Add(Game{ID: "sky", Title: "Beneath a Steel Sky"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add(Game{ID: "sky"}); err == nil {
		t.Error("Add with duplicate identifier should fail")
	}
	if err := c.Add(Game{}); err == nil {
		t.Error("Add with empty identifier should fail")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	g, ok := c.Get("sky")
	if !ok || g.Title != "Beneath a Steel Sky" {
		t.Errorf("Get(sky) = %+v, %v", g, ok)
	}
	if _, ok := c.Get("monkey"); ok {
		t.Error("Get(monkey) should miss")
	}
}

func TestCatalogOrderAndEqual(t *testing.T) {
	build := func() *Catalog {
		c := NewCatalog()
		for _, id := range []string{"monkey1", "sky", "queen"} {
			if err := c.Add(Game{ID: id, Installed: id != "queen"}); err != nil {
				t.Fatalf("Add(%q): %v", id, err)
			}
		}
		return c
	}

	a, b := build(), build()
	if !reflect.DeepEqual(a.IDs(), []string{"monkey1", "sky", "queen"}) {
		t.Errorf("IDs = %v", a.IDs())
	}
	if a.Installed() != 2 {
		t.Errorf("Installed = %d, want 2", a.Installed())
	}

	// re-scanning unchanged input yields an equal catalog
	if !a.Equal(b) {
		t.Error("catalogs from identical input should be equal")
	}

	if err := b.Add(Game{ID: "tentacle"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Equal(b) {
		t.Error("catalogs of different length should not be equal")
	}
}

func TestEnrich(t *testing.T) {
	// target name differs from gameid; metadata matches via IconName
	g := Enrich(Game{ID: "monkey1-dos", IconName: "monkey", Title: "My Copy", Installed: true})
	if g.Title != "My Copy" {
		t.Errorf("config title should win, got %q", g.Title)
	}
	if g.Developer != "LucasArts" || g.Year != 1990 {
		t.Errorf("metadata not filled: %+v", g)
	}
	if !g.Installed {
		t.Error("Installed flag must survive enrichment")
	}

	// plain id match
	g = Enrich(Game{ID: "sky", Installed: true})
	if g.Title != "Beneath a Steel Sky" || g.Engine != "sky" {
		t.Errorf("Enrich(sky) = %+v", g)
	}

	// unknown ids pass through untouched
	unknown := Game{ID: "homebrew", Title: "Homebrew Quest"}
	if got := Enrich(unknown); got != unknown {
		t.Errorf("Enrich(unknown) = %+v", got)
	}
}

func TestMergeKnown(t *testing.T) {
	scanned := NewCatalog()
	if err := scanned.Add(Game{ID: "monkey1", IconName: "monkey", Installed: true}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	merged := MergeKnown(scanned)

	// scanned entries come first, enriched
	first, _ := merged.Get("monkey1")
	if merged.IDs()[0] != "monkey1" || first.Developer != "LucasArts" {
		t.Errorf("scanned entry not first/enriched: %+v", first)
	}
	if !first.Installed {
		t.Error("scanned entry lost Installed flag")
	}

	// the known "monkey" entry is suppressed by the scanned target's gameid
	if merged.Has("monkey") {
		t.Error("known entry duplicating a scanned gameid should be suppressed")
	}

	// other known titles appear, not installed
	sky, ok := merged.Get("sky")
	if !ok {
		t.Fatal("known games should be merged in")
	}
	if sky.Installed {
		t.Error("known-only entries must not be marked installed")
	}
	if merged.Len() != len(KnownGames()) { // monkey replaced by monkey1
		t.Errorf("Len = %d, want %d", merged.Len(), len(KnownGames()))
	}
}
