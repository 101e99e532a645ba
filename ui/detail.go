package ui

import (
	"context"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"scummvm-front/games"
	"scummvm-front/storage"
)

// detailPanel is the right-hand side panel showing the selected game.
type detailPanel struct {
	content fyne.CanvasObject

	icon      *canvas.Image
	title     *widget.Label
	favBtn    *widget.Button
	year      *widget.Label
	developer *widget.Label
	engine    *widget.Label
	platform  *widget.Label
	gameID    *widget.Label
	playTime  *widget.Label
	lastPlay  *widget.Label
	desc      *widget.Label
	summary   *widget.Label
	launchBtn *widget.Button

	current games.Game
	hasGame bool
}

func newDetailPanel(onLaunch func(games.Game), onToggleFav func(id string)) *detailPanel {
	p := &detailPanel{
		icon:      canvas.NewImageFromResource(theme.FileImageIcon()),
		title:     widget.NewLabelWithStyle("Select a game", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		year:      widget.NewLabel(""),
		developer: widget.NewLabel(""),
		engine:    widget.NewLabel(""),
		platform:  widget.NewLabel(""),
		gameID:    widget.NewLabel(""),
		playTime:  widget.NewLabel(""),
		lastPlay:  widget.NewLabel(""),
		desc:      widget.NewLabel(""),
		summary:   widget.NewLabel(""),
	}
	p.icon.FillMode = canvas.ImageFillContain
	p.icon.SetMinSize(fyne.NewSize(192, 192))
	p.title.Wrapping = fyne.TextWrapWord
	p.desc.Wrapping = fyne.TextWrapWord
	p.summary.Wrapping = fyne.TextWrapWord
	p.summary.TextStyle = fyne.TextStyle{Italic: true}

	p.favBtn = widget.NewButtonWithIcon("Add to Favorites", theme.ContentAddIcon(), func() {
		if p.hasGame {
			onToggleFav(p.current.ID)
		}
	})
	p.launchBtn = widget.NewButtonWithIcon("Launch Game", theme.MediaPlayIcon(), func() {
		if p.hasGame {
			onLaunch(p.current)
		}
	})
	p.launchBtn.Importance = widget.HighImportance
	p.launchBtn.Disable()

	form := widget.NewForm(
		widget.NewFormItem("Year", p.year),
		widget.NewFormItem("Developer", p.developer),
		widget.NewFormItem("Engine", p.engine),
		widget.NewFormItem("Platform", p.platform),
		widget.NewFormItem("Game ID", p.gameID),
		widget.NewFormItem("Play Time", p.playTime),
		widget.NewFormItem("Last Played", p.lastPlay),
	)

	p.content = container.NewVScroll(container.NewVBox(
		p.icon,
		p.title,
		container.NewCenter(p.favBtn),
		form,
		p.desc,
		p.summary,
		container.NewCenter(p.launchBtn),
	))
	return p
}

func (p *detailPanel) Content() fyne.CanvasObject { return p.content }

// Show fills the panel from a game entry and the player library.
func (p *detailPanel) Show(g games.Game, lib *storage.Library) {
	p.current = g
	p.hasGame = true

	p.title.SetText(g.Title)
	p.year.SetText(orUnknown(yearString(g.Year)))
	p.developer.SetText(orUnknown(g.Developer))
	p.engine.SetText(orUnknown(g.Engine))
	p.platform.SetText(orUnknown(g.Platform))
	p.gameID.SetText(g.ID)
	p.desc.SetText(g.Description)
	p.summary.SetText("")

	p.RefreshLibrary(lib)

	if g.Installed {
		p.launchBtn.Enable()
	} else {
		p.launchBtn.Disable()
	}
}

// RefreshLibrary re-reads the favorite flag and play history for the game
// currently shown.
func (p *detailPanel) RefreshLibrary(lib *storage.Library) {
	if !p.hasGame {
		return
	}
	if lib.IsFavorite(p.current.ID) {
		p.favBtn.SetText("Remove from Favorites")
		p.favBtn.SetIcon(theme.ContentRemoveIcon())
	} else {
		p.favBtn.SetText("Add to Favorites")
		p.favBtn.SetIcon(theme.ContentAddIcon())
	}

	if pt := lib.PlayTime(p.current.ID); pt > 0 {
		p.playTime.SetText(storage.FormatPlayTime(pt))
	} else {
		p.playTime.SetText("Never")
	}
	if lp := lib.LastPlayedAt(p.current.ID); !lp.IsZero() {
		p.lastPlay.SetText(lp.Format("2006-01-02 15:04"))
	} else {
		p.lastPlay.SetText("Never")
	}
}

// SetIcon swaps in a downloaded cover image.
func (p *detailPanel) SetIcon(path string) {
	p.icon.Resource = nil
	p.icon.File = path
	p.icon.Refresh()
}

func (p *detailPanel) ResetIcon() {
	p.icon.File = ""
	p.icon.Resource = theme.FileImageIcon()
	p.icon.Refresh()
}

// loadSummary fetches the Wikipedia extract in the background and shows it
// under the built-in description once it arrives, unless the selection
// moved on in the meantime.
func (w *MainWindow) loadSummary(g games.Game) {
	if w.summaries == nil || g.Title == "" {
		return
	}
	go func() {
		text, err := w.summaries.Summary(context.Background(), g.ID, g.Title)
		if err != nil || text == "" {
			return
		}
		fyne.Do(func() {
			if w.detail.hasGame && w.detail.current.ID == g.ID {
				w.detail.summary.SetText(text)
			}
		})
	}()
}

func yearString(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
