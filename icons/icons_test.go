package icons

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testCache(t *testing.T, handler http.Handler) *Cache {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewCache(t.TempDir())
	c.baseURL = srv.URL
	return c
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	hits := 0
	c := testCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/monkey.png" {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		w.Write(pngBytes(t, 32, 32))
	}))

	path, err := c.Fetch(context.Background(), "monkey")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("icon not on disk: %v", err)
	}

	// second fetch hits the cache, not the server
	again, err := c.Fetch(context.Background(), "monkey")
	if err != nil {
		t.Fatalf("Fetch (cached): %v", err)
	}
	if again != path {
		t.Errorf("cached path %q != %q", again, path)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestFetchShrinksLargeIcons(t *testing.T) {
	c := testCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes(t, 800, 400))
	}))

	path, err := c.Fetch(context.Background(), "big")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != maxEdge {
		t.Errorf("stored width = %d, want %d", cfg.Width, maxEdge)
	}
	if cfg.Height != maxEdge/2 {
		t.Errorf("stored height = %d, want %d (aspect preserved)", cfg.Height, maxEdge/2)
	}
}

func TestFetchMissingIcon(t *testing.T) {
	c := testCache(t, http.NotFoundHandler())

	_, err := c.Fetch(context.Background(), "ghost")
	if !errors.Is(err, ErrIconMissing) {
		t.Errorf("err = %v, want ErrIconMissing", err)
	}
	if _, ok := c.Path("ghost"); ok {
		t.Error("missing icon must not be cached")
	}
}

func TestFetchGarbageBody(t *testing.T) {
	c := testCache(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))

	if _, err := c.Fetch(context.Background(), "junk"); err == nil {
		t.Error("undecodable body should error")
	}
	if entries, _ := os.ReadDir(c.dir); len(entries) != 0 {
		t.Errorf("cache dir not clean after failure: %v", entries)
	}
}

func TestClear(t *testing.T) {
	c := NewCache(t.TempDir())
	if err := os.WriteFile(filepath.Join(c.dir, "sky.png"), pngBytes(t, 8, 8), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Path("sky"); ok {
		t.Error("Clear left icons behind")
	}

	// clearing a nonexistent dir is fine
	c2 := NewCache(filepath.Join(t.TempDir(), "missing"))
	if err := c2.Clear(); err != nil {
		t.Errorf("Clear on missing dir: %v", err)
	}
}
