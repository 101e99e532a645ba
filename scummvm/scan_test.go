package scummvm

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// noExec points the executable probes at nothing so scans rely on the
// config file alone.
const noExec = "/nonexistent/scummvm"

func TestScanBuildsMergedCatalog(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	res, err := Scan(context.Background(), path, noExec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.Notice != nil {
		t.Errorf("unexpected notice: %v", res.Notice)
	}

	idsList := res.Catalog.IDs()
	if len(idsList) < 2 || idsList[0] != "monkey1" || idsList[1] != "sky" {
		t.Errorf("scanned entries must lead the catalog, got %v", idsList[:2])
	}
	if res.Catalog.Installed() != 2 {
		t.Errorf("Installed = %d, want 2", res.Catalog.Installed())
	}

	// enrichment happened via the monkey gameid
	monkey, _ := res.Catalog.Get("monkey1")
	if monkey.Developer != "LucasArts" {
		t.Errorf("entry not enriched: %+v", monkey)
	}

	// known titles fill out the rest of the catalog for browsing
	if !res.Catalog.Has("grim") {
		t.Error("known games missing from merged catalog")
	}
}

func TestScanMissingConfigIsNotFatal(t *testing.T) {
	res, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope.ini"), noExec)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !errors.Is(res.Notice, ErrConfigNotFound) {
		t.Errorf("Notice = %v, want ErrConfigNotFound", res.Notice)
	}
	if res.Catalog == nil || res.Catalog.Installed() != 0 {
		t.Error("missing config should yield a catalog with no installed entries")
	}
}

func TestScanMalformedConfigAborts(t *testing.T) {
	path := writeConfig(t, "[broken\n")

	_, err := Scan(context.Background(), path, noExec)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}
