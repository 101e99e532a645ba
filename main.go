package main

import (
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scummvm-front/storage"
	"scummvm-front/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("SCUMMVM_FRONT_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	settingsPath, err := storage.SettingsPath()
	if err != nil {
		log.Fatal().Err(err).Msg("no user config directory")
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
		settings = storage.DefaultSettings()
	}

	libraryPath, err := storage.LibraryPath()
	if err != nil {
		log.Fatal().Err(err).Msg("no user config directory")
	}
	library, err := storage.LoadLibrary(libraryPath)
	if err != nil {
		log.Warn().Err(err).Msg("starting with empty library")
		library = storage.NewLibrary()
	}

	iconsDir, err := storage.IconsDir()
	if err != nil {
		log.Fatal().Err(err).Msg("no user cache directory")
	}
	summariesDir, err := storage.SummariesDir()
	if err != nil {
		log.Fatal().Err(err).Msg("no user cache directory")
	}

	a := app.NewWithID("io.github.scummvm-front")
	win := ui.New(ui.Config{
		App:          a,
		Settings:     settings,
		SettingsPath: settingsPath,
		Library:      library,
		LibraryPath:  libraryPath,
		IconsDir:     iconsDir,
		SummariesDir: summariesDir,
	})
	win.ShowAndRun()
}
