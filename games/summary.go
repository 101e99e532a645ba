package games

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const summaryBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// SummaryClient fetches short Wikipedia descriptions for the detail panel
// and caches them on disk so a title is requested at most once.
type SummaryClient struct {
	cacheDir string
	client   *http.Client
}

func NewSummaryClient(cacheDir string) *SummaryClient {
	return &SummaryClient{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Summary returns the extract for a game title, from cache when available.
// A missing article is not an error; it yields an empty summary, cached as
// such to avoid re-asking.
func (s *SummaryClient) Summary(ctx context.Context, gameID, title string) (string, error) {
	cachePath := filepath.Join(s.cacheDir, gameID+".txt")
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		summaryBaseURL+url.PathEscape(strings.ReplaceAll(title, " ", "_")), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "scummvm-front/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var extract string
	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		extract = parseSummary(body)
	case http.StatusNotFound:
		// no article, cache the empty answer
	default:
		return "", fmt.Errorf("summary request for %q: unexpected status %d", title, resp.StatusCode)
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err == nil {
		os.WriteFile(cachePath, []byte(extract), 0o644)
	}
	return extract, nil
}

func parseSummary(body []byte) string {
	return gjson.GetBytes(body, "extract").String()
}
