package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Library is the player-owned state layered over the catalog: favorites and
// play history per game identifier. It is one small JSON document; all
// access happens on the UI thread.
type Library struct {
	Favorites   map[string]bool  `json:"favorites"`
	PlaySeconds map[string]int64 `json:"play_seconds"`
	LastPlayed  map[string]int64 `json:"last_played"` // unix seconds
}

func NewLibrary() *Library {
	return &Library{
		Favorites:   make(map[string]bool),
		PlaySeconds: make(map[string]int64),
		LastPlayed:  make(map[string]int64),
	}
}

// LoadLibrary reads the library document; a missing file yields an empty
// library.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewLibrary(), nil
		}
		return nil, err
	}

	lib := NewLibrary()
	if err := json.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	// maps may be null in hand-edited or imported files
	if lib.Favorites == nil {
		lib.Favorites = make(map[string]bool)
	}
	if lib.PlaySeconds == nil {
		lib.PlaySeconds = make(map[string]int64)
	}
	if lib.LastPlayed == nil {
		lib.LastPlayed = make(map[string]int64)
	}
	return lib, nil
}

func SaveLibrary(path string, lib *Library) error {
	return writeJSONAtomic(path, lib)
}

// ToggleFavorite flips the flag for an identifier and reports the new state.
func (l *Library) ToggleFavorite(id string) bool {
	if l.Favorites[id] {
		delete(l.Favorites, id)
		return false
	}
	l.Favorites[id] = true
	return true
}

func (l *Library) IsFavorite(id string) bool {
	return l.Favorites[id]
}

// RecordSession adds one finished play session to the history.
func (l *Library) RecordSession(id string, played time.Duration, endedAt time.Time) {
	if played < 0 {
		played = 0
	}
	l.PlaySeconds[id] += int64(played.Seconds())
	l.LastPlayed[id] = endedAt.Unix()
}

func (l *Library) PlayTime(id string) time.Duration {
	return time.Duration(l.PlaySeconds[id]) * time.Second
}

// LastPlayedAt returns the end of the most recent session, or the zero time
// when the game was never played.
func (l *Library) LastPlayedAt(id string) time.Time {
	ts, ok := l.LastPlayed[id]
	if !ok {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// Merge folds another library into this one, used by import. Favorites
// union; play time sums; last played keeps the most recent.
func (l *Library) Merge(other *Library) {
	for id, fav := range other.Favorites {
		if fav {
			l.Favorites[id] = true
		}
	}
	for id, secs := range other.PlaySeconds {
		l.PlaySeconds[id] += secs
	}
	for id, ts := range other.LastPlayed {
		if ts > l.LastPlayed[id] {
			l.LastPlayed[id] = ts
		}
	}
}

// FormatPlayTime renders a duration the way the detail panel shows it.
func FormatPlayTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "Less than a minute"
	case d < time.Hour:
		return fmt.Sprintf("%d min", int(d.Minutes()))
	default:
		h := int(d.Hours())
		m := int(d.Minutes()) - h*60
		if m == 0 {
			return fmt.Sprintf("%d h", h)
		}
		return fmt.Sprintf("%d h %d min", h, m)
	}
}
