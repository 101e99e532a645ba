package scummvm

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"scummvm-front/games"
)

// ScanResult is what one full library scan produces. The catalog is complete
// and ready to display; Notice carries the non-fatal ErrConfigNotFound when
// no configuration existed.
type ScanResult struct {
	Catalog *games.Catalog
	Version string
	Notice  error
}

// Scan builds a fresh catalog: the configuration file first, then targets
// reported by the executable itself (covers non-standard config locations),
// then built-in metadata for everything else. The result replaces the
// previous catalog wholesale; a ParseError aborts the scan so the caller
// can keep what it had.
func Scan(ctx context.Context, configPath, execPath string) (ScanResult, error) {
	var res ScanResult

	scanned, err := LoadCatalog(configPath)
	switch {
	case err == nil:
	case errors.Is(err, ErrConfigNotFound):
		res.Notice = err
		scanned = games.NewCatalog()
	default:
		return res, err
	}

	if targets, err := ListTargets(ctx, execPath); err != nil {
		log.Debug().Err(err).Msg("target listing unavailable")
	} else {
		for _, t := range targets {
			if scanned.Has(t.ID) {
				continue
			}
			if err := scanned.Add(t); err != nil {
				log.Warn().Err(err).Str("target", t.ID).Msg("skipping detected target")
			}
		}
	}

	if v, err := Version(ctx, execPath); err != nil {
		log.Debug().Err(err).Msg("version probe failed")
	} else {
		res.Version = v
	}

	res.Catalog = games.MergeKnown(scanned)
	log.Info().
		Int("entries", res.Catalog.Len()).
		Int("installed", res.Catalog.Installed()).
		Msg("library scan complete")
	return res, nil
}
