// Package main provides the entry point for the Stitch Studio application.
package main

import (
	"log"
	"os"
	"time"

	"stitch-studio/internal/app"
	"stitch-studio/internal/version"
	"stitch-studio/ui/mainwindow"
	"stitch-studio/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appTitle = "Stitch Studio"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.stitchstudio.app")
	fyneApp.Settings().SetTheme(&app.StudioTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.Resize(fyne.NewSize(1280, 860))

	// Open a design given on the command line, otherwise reopen the last one.
	if len(os.Args) > 1 {
		if err := appState.LoadDesign(os.Args[1]); err != nil {
			log.Printf("Failed to load design %s: %v", os.Args[1], err)
		}
	} else {
		win.RestoreLastDesign()
	}

	setupHotReload(win)

	win.Show()
	win.Start()
	fyneApp.Run()
}

// setupHotReload offers a restart when the binary is recompiled during
// development.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})
	reloader.Start()
}
