package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"scummvm-front/games"
)

type tappableImage struct {
	widget.BaseWidget
	image          *canvas.Image
	onTap          func()
	onDoubleTap    func()
	onRightContext func(*fyne.PointEvent)
}

func newTappableImage(img *canvas.Image, onTap func(), onDoubleTap func(), onRight func(*fyne.PointEvent)) *tappableImage {
	t := &tappableImage{image: img, onTap: onTap, onDoubleTap: onDoubleTap, onRightContext: onRight}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.image)
}

func (t *tappableImage) Tapped(_ *fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *tappableImage) TappedSecondary(pe *fyne.PointEvent) {
	if t.onRightContext != nil {
		t.onRightContext(pe)
	}
}

func (t *tappableImage) DoubleTapped(_ *fyne.PointEvent) {
	if t.onDoubleTap != nil {
		t.onDoubleTap()
	}
}

// newGameCard builds one grid tile: cover image with selection highlight,
// favorite star, title and year. The icon arrives asynchronously through
// loadIcon once the cache has it.
func (w *MainWindow) newGameCard(g games.Game) fyne.CanvasObject {
	img := canvas.NewImageFromResource(theme.FileImageIcon())
	img.FillMode = canvas.ImageFillContain
	if path, ok := w.iconCache.Path(g.Icon()); ok {
		img.File = path
		img.Resource = nil
	} else {
		w.loadIcon(g.Icon(), img)
	}

	highlight := canvas.NewRectangle(theme.SelectionColor())
	if w.selectedID != g.ID {
		highlight.Hide()
	}

	id := g.ID
	tile := newTappableImage(img, func() {
		w.selectGame(id)
	}, func() {
		w.launch(g)
	}, func(pe *fyne.PointEvent) {
		w.showCardMenu(g, pe)
	})

	title := widget.NewLabelWithStyle(g.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord
	bottom := container.NewVBox(title)
	if g.Year != 0 {
		year := widget.NewLabelWithStyle(yearString(g.Year), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		bottom.Add(year)
	}

	var top fyne.CanvasObject
	if w.library.IsFavorite(g.ID) {
		star := widget.NewLabelWithStyle("★", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		top = container.NewHBox(layout.NewSpacer(), star)
	}

	return container.NewBorder(top, bottom, nil, nil,
		container.NewStack(highlight, container.NewPadded(tile)))
}

// loadIcon requests an icon download and swaps it into the image when it
// lands. Failures leave the placeholder in place.
func (w *MainWindow) loadIcon(name string, img *canvas.Image) {
	w.iconCache.FetchAsync(name, func(path string, err error) {
		if err != nil {
			return
		}
		fyne.Do(func() {
			img.Resource = nil
			img.File = path
			img.Refresh()
		})
	})
}

func (w *MainWindow) showCardMenu(g games.Game, pe *fyne.PointEvent) {
	favLabel := "Add to Favorites"
	if w.library.IsFavorite(g.ID) {
		favLabel = "Remove from Favorites"
	}
	items := []*fyne.MenuItem{
		fyne.NewMenuItem(favLabel, func() {
			w.toggleFavorite(g.ID)
		}),
	}
	if g.Installed {
		items = append([]*fyne.MenuItem{
			fyne.NewMenuItem("Launch", func() { w.launch(g) }),
		}, items...)
	}
	menu := fyne.NewMenu("", items...)
	widget.ShowPopUpMenuAtPosition(menu, w.win.Canvas(), pe.AbsolutePosition)
}
