package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSettingsDialog edits the persisted settings. Saving re-scans, since
// both the executable and the config location may have changed.
func (w *MainWindow) showSettingsDialog() {
	execEntry := widget.NewEntry()
	execEntry.SetText(w.settings.ScummVMPath)

	configEntry := widget.NewEntry()
	configEntry.SetText(w.settings.ConfigPath)
	configEntry.SetPlaceHolder("platform default")

	execBtn := widget.NewButton("Browse", func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if reader != nil {
				execEntry.SetText(reader.URI().Path())
				reader.Close()
			}
		}, w.win)
		fd.Resize(fyne.NewSize(800, 600))
		fd.Show()
	})
	configBtn := widget.NewButton("Browse", func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if reader != nil {
				configEntry.SetText(reader.URI().Path())
				reader.Close()
			}
		}, w.win)
		fd.Resize(fyne.NewSize(800, 600))
		fd.Show()
	})

	fullscreenCheck := widget.NewCheck("Launch games fullscreen", nil)
	fullscreenCheck.SetChecked(w.settings.Fullscreen)

	clearBtn := widget.NewButton("Clear Icon Cache", func() {
		if err := w.iconCache.Clear(); err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		dialog.ShowInformation("Cache", "Icon cache cleared.", w.win)
	})

	form := dialog.NewForm("Settings", "Save", "Cancel", []*widget.FormItem{
		widget.NewFormItem("ScummVM Executable", container.NewBorder(nil, nil, nil, execBtn, execEntry)),
		widget.NewFormItem("Config File", container.NewBorder(nil, nil, nil, configBtn, configEntry)),
		widget.NewFormItem("Display", fullscreenCheck),
		widget.NewFormItem("Cache", clearBtn),
	}, func(ok bool) {
		if !ok {
			return
		}
		w.settings.ScummVMPath = execEntry.Text
		if w.settings.ScummVMPath == "" {
			w.settings.ScummVMPath = "scummvm"
		}
		w.settings.ConfigPath = configEntry.Text
		w.settings.Fullscreen = fullscreenCheck.Checked
		w.saveSettings()
		w.rescan()
	}, w.win)
	form.Resize(fyne.NewSize(620, 360))
	form.Show()
}
