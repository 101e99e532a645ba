// Package icons caches game cover art fetched from the scummvm-icons
// collection. Icons are downscaled once at download time and served from
// disk afterwards; a missing icon is a normal outcome, the UI shows a
// placeholder.
package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

const (
	baseURL = "https://raw.githubusercontent.com/scummvm/scummvm-icons/main/icons"

	// maxEdge is the longest stored edge; detail panel renders at 192.
	maxEdge = 256

	// at most this many downloads in flight at once
	maxConcurrent = 3
)

// ErrIconMissing means the collection has no icon for this game. Non-fatal;
// callers fall back to the placeholder.
var ErrIconMissing = errors.New("icon not available")

// Cache downloads and stores icons under a single directory, keyed by icon
// name. Safe for concurrent use.
type Cache struct {
	dir     string
	baseURL string
	client  *http.Client
	sem     chan struct{}
}

func NewCache(dir string) *Cache {
	return &Cache{
		dir:     dir,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		sem:     make(chan struct{}, maxConcurrent),
	}
}

// Path returns the on-disk location for an icon and whether it is already
// cached.
func (c *Cache) Path(name string) (string, bool) {
	p := filepath.Join(c.dir, name+".png")
	_, err := os.Stat(p)
	return p, err == nil
}

// Fetch returns the local path for an icon, downloading it on a cache miss.
func (c *Cache) Fetch(ctx context.Context, name string) (string, error) {
	dest, ok := c.Path(name)
	if ok {
		return dest, nil
	}

	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s.png", c.baseURL, name), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "scummvm-front/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch icon %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrIconMissing, name)
	default:
		return "", fmt.Errorf("fetch icon %s: unexpected status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if data, err = shrink(data); err != nil {
		return "", fmt.Errorf("decode icon %s: %w", name, err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(c.dir, "."+name+".tmp-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}
	return dest, nil
}

// FetchAsync runs Fetch off the caller's thread. done is invoked from the
// background goroutine; UI callers wrap it in fyne.Do.
func (c *Cache) FetchAsync(name string, done func(path string, err error)) {
	go func() {
		path, err := c.Fetch(context.Background(), name)
		if err != nil && !errors.Is(err, ErrIconMissing) {
			log.Debug().Err(err).Str("icon", name).Msg("icon fetch failed")
		}
		done(path, err)
	}()
}

// Clear removes every cached icon.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// shrink re-encodes the image as PNG, downscaling when either edge exceeds
// maxEdge. Aspect ratio is preserved.
func shrink(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() > maxEdge || b.Dy() > maxEdge {
		if b.Dx() >= b.Dy() {
			img = resize.Resize(maxEdge, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, maxEdge, img, resize.Lanczos3)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
