// Package games holds the in-memory game catalog: entries detected from the
// ScummVM configuration, merged with built-in metadata, plus the pure
// filtering and ordering functions the UI drives.
package games

// Game is a single catalog entry. Entries are built at scan time and not
// mutated afterwards; a re-scan replaces the whole catalog.
type Game struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Engine      string `json:"engine"`
	Developer   string `json:"developer,omitempty"`
	Year        int    `json:"year,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
	Installed   bool   `json:"installed"`
}

// Icon returns the icon name used to look up cover art, falling back to the
// game identifier when no explicit icon name is set.
func (g Game) Icon() string {
	if g.IconName != "" {
		return g.IconName
	}
	return g.ID
}
