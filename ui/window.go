// Package ui builds the application window: toolbar, game grid, detail
// panel and the dialogs around them. All mutable state lives on the Fyne
// event thread; background work reports back through fyne.Do.
package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"scummvm-front/games"
	"scummvm-front/icons"
	"scummvm-front/launcher"
	"scummvm-front/scummvm"
	"scummvm-front/storage"
)

// MainWindow owns the whole interface and the session state behind it.
type MainWindow struct {
	app fyne.App
	win fyne.Window

	settings     storage.Settings
	settingsPath string
	library      *storage.Library
	libraryPath  string

	iconCache *icons.Cache
	summaries *games.SummaryClient

	// catalog is replaced atomically by each scan, never mutated
	catalog *games.Catalog

	query          string
	sortMode       games.SortMode
	installedOnly  bool
	favoritesFirst bool
	selectedID     string

	thumbSize float32

	grid         *fyne.Container
	detail       *detailPanel
	searchEntry  *widget.Entry
	statusLabel  *widget.Label
	versionLabel *widget.Label
}

// Config carries everything the window needs from startup.
type Config struct {
	App          fyne.App
	Settings     storage.Settings
	SettingsPath string
	Library      *storage.Library
	LibraryPath  string
	IconsDir     string
	SummariesDir string
}

func New(cfg Config) *MainWindow {
	w := &MainWindow{
		app:          cfg.App,
		settings:     cfg.Settings,
		settingsPath: cfg.SettingsPath,
		library:      cfg.Library,
		libraryPath:  cfg.LibraryPath,
		iconCache:    icons.NewCache(cfg.IconsDir),
		summaries:    games.NewSummaryClient(cfg.SummariesDir),
		catalog:      games.NewCatalog(),
		sortMode:     games.SortMode(cfg.Settings.DefaultSort),
	}

	w.win = cfg.App.NewWindow("ScummVM Launcher")
	w.win.Resize(fyne.NewSize(1100, 720))

	w.thumbSize = float32(cfg.App.Preferences().FloatWithFallback("thumbSize", 150))

	w.grid = container.NewGridWrap(fyne.NewSize(w.thumbSize, w.thumbSize*1.35))
	w.detail = newDetailPanel(w.launch, w.toggleFavorite)
	w.statusLabel = widget.NewLabel("Loading games...")
	w.versionLabel = widget.NewLabel("")

	w.win.SetContent(w.buildLayout())
	return w
}

// ShowAndRun kicks off the first scan and enters the event loop.
func (w *MainWindow) ShowAndRun() {
	w.rescan()
	w.win.ShowAndRun()
}

func (w *MainWindow) buildLayout() fyne.CanvasObject {
	w.searchEntry = widget.NewEntry()
	w.searchEntry.SetPlaceHolder("Search title, engine or developer...")
	w.searchEntry.OnChanged = func(q string) {
		w.query = q
		w.refreshGrid()
	}

	installedCheck := widget.NewCheck("Installed only", func(on bool) {
		w.installedOnly = on
		w.refreshGrid()
	})
	favCheck := widget.NewCheck("Favorites first", func(on bool) {
		w.favoritesFirst = on
		w.refreshGrid()
	})

	modes := games.SortModes()
	labels := make([]string, len(modes))
	selected := modes[0].Label
	for i, m := range modes {
		labels[i] = m.Label
		if m.Mode == w.sortMode {
			selected = m.Label
		}
	}
	sortSelect := widget.NewSelect(labels, func(label string) {
		for _, m := range games.SortModes() {
			if m.Label == label {
				w.sortMode = m.Mode
				break
			}
		}
		w.settings.DefaultSort = string(w.sortMode)
		w.saveSettings()
		w.refreshGrid()
	})
	sortSelect.SetSelected(selected)

	rescanBtn := widget.NewButton("Rescan", w.rescan)
	settingsBtn := widget.NewButton("Settings", w.showSettingsDialog)
	exportBtn := widget.NewButton("Export", w.exportLibrary)
	importBtn := widget.NewButton("Import", w.importLibrary)

	zoomInBtn := widget.NewButton("+", func() { w.zoom(1.2) })
	zoomOutBtn := widget.NewButton("-", func() { w.zoom(1 / 1.2) })

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(installedCheck, favCheck, sortSelect, zoomOutBtn, zoomInBtn),
		container.NewHBox(rescanBtn, exportBtn, importBtn, settingsBtn),
		w.searchEntry,
	)

	statusBar := container.NewHBox(w.statusLabel, layout.NewSpacer(), w.versionLabel)

	return container.NewBorder(
		toolbar,
		statusBar,
		nil,
		w.detail.Content(),
		container.NewVScroll(w.grid),
	)
}

func (w *MainWindow) zoom(factor float32) {
	w.thumbSize *= factor
	w.app.Preferences().SetFloat("thumbSize", float64(w.thumbSize))
	w.grid.Layout = layout.NewGridWrapLayout(fyne.NewSize(w.thumbSize, w.thumbSize*1.35))
	w.grid.Refresh()
}

// rescan rebuilds the catalog on a background goroutine and swaps it in on
// the event thread. On a parse error the previous catalog stays.
func (w *MainWindow) rescan() {
	w.statusLabel.SetText("Scanning for games...")
	configPath := w.settings.ConfigPath
	execPath := w.settings.ScummVMPath

	go func() {
		if configPath == "" {
			p, err := scummvm.DefaultConfigPath()
			if err != nil {
				log.Error().Err(err).Msg("cannot determine config path")
			}
			configPath = p
		}
		res, err := scummvm.Scan(context.Background(), configPath, execPath)
		fyne.Do(func() {
			if err != nil {
				log.Error().Err(err).Msg("scan failed")
				dialog.ShowError(err, w.win)
				w.updateStatus()
				return
			}
			w.catalog = res.Catalog
			if res.Version != "" {
				w.versionLabel.SetText(res.Version)
			} else {
				w.versionLabel.SetText("ScummVM not found")
			}
			w.refreshGrid()
			if res.Notice != nil {
				w.statusLabel.SetText("No ScummVM configuration found")
				log.Warn().Err(res.Notice).Msg("scan notice")
			}
		})
	}()
}

// visibleGames applies filter, installed-only, sort and favorites-first to
// the current catalog, in that order.
func (w *MainWindow) visibleGames() []games.Game {
	gs := games.Filter(w.catalog, w.query)
	if w.installedOnly {
		gs = games.InstalledOnly(gs)
	}
	gs = games.Sort(gs, w.sortMode)
	if w.favoritesFirst {
		gs = games.FavoritesFirst(gs, w.library.IsFavorite)
	}
	return gs
}

func (w *MainWindow) refreshGrid() {
	gs := w.visibleGames()

	w.grid.Objects = nil
	for _, g := range gs {
		w.grid.Add(w.newGameCard(g))
	}
	w.grid.Refresh()
	w.updateStatus(len(gs))
}

func (w *MainWindow) updateStatus(shown ...int) {
	if w.catalog.Len() == 0 {
		w.statusLabel.SetText("No games found. Configure games in ScummVM, then rescan.")
		return
	}
	n := w.catalog.Len()
	if len(shown) > 0 {
		n = shown[0]
	}
	w.statusLabel.SetText(fmt.Sprintf("%d games shown (%d installed)", n, w.catalog.Installed()))
}

func (w *MainWindow) selectGame(id string) {
	if w.selectedID == id {
		return
	}
	w.selectedID = id
	g, ok := w.catalog.Get(id)
	if !ok {
		return
	}
	w.detail.Show(g, w.library)
	if path, ok := w.iconCache.Path(g.Icon()); ok {
		w.detail.SetIcon(path)
	} else {
		w.detail.ResetIcon()
		w.iconCache.FetchAsync(g.Icon(), func(path string, err error) {
			if err != nil {
				return
			}
			fyne.Do(func() {
				if w.selectedID == id {
					w.detail.SetIcon(path)
				}
			})
		})
	}
	w.loadSummary(g)
	w.refreshGrid()
}

// launch starts the selected game and records the play session when the
// process ends.
func (w *MainWindow) launch(g games.Game) {
	if !g.Installed {
		dialog.ShowInformation("Not Installed",
			fmt.Sprintf("%s is not configured in ScummVM yet.", g.Title), w.win)
		return
	}
	opts := launcher.Options{
		ExecPath:   w.settings.ScummVMPath,
		Fullscreen: w.settings.Fullscreen,
	}
	err := launcher.Launch(opts, g.ID, func(res launcher.Result) {
		fyne.Do(func() { w.sessionEnded(res) })
	})
	if err != nil {
		dialog.ShowError(err, w.win)
	}
}

func (w *MainWindow) sessionEnded(res launcher.Result) {
	if res.Err != nil {
		if errors.Is(res.Err, launcher.ErrLaunchFailed) {
			dialog.ShowError(res.Err, w.win)
		}
		return
	}
	w.library.RecordSession(res.GameID, res.Played, res.EndedAt)
	w.saveLibrary()
	w.detail.RefreshLibrary(w.library)
	log.Info().Str("game", res.GameID).Dur("played", res.Played).Msg("session ended")
}

func (w *MainWindow) toggleFavorite(id string) {
	w.library.ToggleFavorite(id)
	w.saveLibrary()
	w.detail.RefreshLibrary(w.library)
	w.refreshGrid()
}

func (w *MainWindow) saveLibrary() {
	if err := storage.SaveLibrary(w.libraryPath, w.library); err != nil {
		log.Error().Err(err).Msg("save library")
	}
}

func (w *MainWindow) saveSettings() {
	if err := storage.SaveSettings(w.settingsPath, w.settings); err != nil {
		log.Error().Err(err).Msg("save settings")
	}
}

func (w *MainWindow) exportLibrary() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := storage.SaveLibrary(path, w.library); err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		dialog.ShowInformation("Export", "Library exported.", w.win)
	}, w.win)
	fd.SetFileName("scummvm-front-library.json")
	fd.Show()
}

func (w *MainWindow) importLibrary() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		imported, err := storage.LoadLibrary(path)
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		w.library.Merge(imported)
		w.saveLibrary()
		w.detail.RefreshLibrary(w.library)
		w.refreshGrid()
	}, w.win)
	fd.Show()
}
