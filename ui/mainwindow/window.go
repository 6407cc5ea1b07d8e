// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"stitch-studio/internal/app"
	"stitch-studio/internal/render"
	"stitch-studio/internal/scene"
	"stitch-studio/internal/version"
	"stitch-studio/pkg/geometry"
	"stitch-studio/ui/canvas"
	"stitch-studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir    = "lastDirectory"
	prefKeyLastDesign = "lastDesign"
	prefKeyZoom       = "camera.zoom"
	prefKeyCamX       = "camera.x"
	prefKeyCamY       = "camera.y"
	prefKeyShowGrid   = "view.showGrid"

	designExt = ".stitch"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.DesignCanvas
	statusBar *widget.Label

	toolButtons map[canvas.Tool]*widget.Button
}

// sceneAdapter routes the canvas at the state's current scene, so loading a
// design swaps the document without rebuilding the canvas. Creation commands
// also mark the design modified.
type sceneAdapter struct {
	state *app.State
}

func (a *sceneAdapter) RenderItems() []scene.RenderItem       { return a.state.Scene.RenderItems() }
func (a *sceneAdapter) SelectedIDs() map[scene.NodeID]bool    { return a.state.Scene.SelectedIDs() }
func (a *sceneAdapter) StitchOverlays() []scene.StitchOverlay { return a.state.Scene.StitchOverlays() }
func (a *sceneAdapter) ShapeCount() int                       { return a.state.Scene.ShapeCount() }

func (a *sceneAdapter) HandleClick(world geometry.Point2D, shift bool) {
	a.state.Scene.HandleClick(world, shift)
}

func (a *sceneAdapter) CreateDraggedShape(start, end geometry.Point2D, shape scene.DragShape) scene.NodeID {
	id := a.state.Scene.CreateDraggedShape(start, end, shape)
	a.state.SetModified(true)
	return id
}

func (a *sceneAdapter) CreatePenPath(points []geometry.Point2D, closed bool) scene.NodeID {
	id := a.state.Scene.CreatePenPath(points, closed)
	a.state.SetModified(true)
	return id
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Stitch Studio")

	mw := &MainWindow{
		Window:      win,
		app:         fyneApp,
		state:       state,
		prefs:       p,
		toolButtons: make(map[canvas.Tool]*widget.Button),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.setupKeys()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	adapter := &sceneAdapter{state: mw.state}
	mw.canvas = canvas.NewDesignCanvas(adapter, adapter)
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.state.Emit(app.EventZoomChanged, zoom)
	})
	mw.canvas.SetShowGrid(mw.prefs.Bool(prefKeyShowGrid, true))

	mw.statusBar = widget.NewLabel("Ready")

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)
	mw.SetContent(content)
	mw.restoreCamera()

	mw.SetOnClosed(func() {
		mw.saveCamera()
		mw.canvas.Stop()
	})
}

// restoreCamera brings back the previous session's view.
func (mw *MainWindow) restoreCamera() {
	cam := mw.canvas.Controller().Camera()
	cam.Zoom = mw.prefs.FloatWithFallback(prefKeyZoom, 1)
	cam.CenterX = mw.prefs.Float(prefKeyCamX)
	cam.CenterY = mw.prefs.Float(prefKeyCamY)
	cam.ClampZoom()
}

func (mw *MainWindow) saveCamera() {
	cam := mw.canvas.Controller().Camera()
	mw.prefs.SetFloat(prefKeyZoom, cam.Zoom)
	mw.prefs.SetFloat(prefKeyCamX, cam.CenterX)
	mw.prefs.SetFloat(prefKeyCamY, cam.CenterY)
	_ = mw.prefs.Save()
}

// Start begins the canvas redraw loop; call after Show.
func (mw *MainWindow) Start() {
	mw.canvas.Start()
}

// createToolbar creates the tool and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	tool := func(t canvas.Tool) *widget.Button {
		btn := widget.NewButton(t.String(), func() {
			mw.selectTool(t)
		})
		mw.toolButtons[t] = btn
		return btn
	}

	selectBtn := tool(canvas.ToolSelect)
	rectBtn := tool(canvas.ToolRect)
	ellipseBtn := tool(canvas.ToolEllipse)
	penBtn := tool(canvas.ToolPen)
	selectBtn.Importance = widget.HighImportance

	finishBtn := widget.NewButton("Finish Path", func() {
		mw.canvas.FinishPath()
		mw.updateStatus("Path finished")
	})

	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	actualBtn := widget.NewButton("100%", mw.onActualSize)

	return container.NewHBox(
		selectBtn,
		rectBtn,
		ellipseBtn,
		penBtn,
		finishBtn,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		actualBtn,
	)
}

// selectTool activates a tool and highlights its button.
func (mw *MainWindow) selectTool(t canvas.Tool) {
	mw.canvas.SetTool(t)
	for bt, btn := range mw.toolButtons {
		if bt == t {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	mw.state.Emit(app.EventToolChanged, t)
	mw.updateStatus("Tool: " + t.String())
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Design", mw.onNewDesign),
		fyne.NewMenuItem("Open Design...", mw.onOpenDesign),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Design", mw.onSaveDesign),
		fyne.NewMenuItem("Save Design As...", mw.onSaveDesignAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Finish Path", func() { mw.canvas.FinishPath() }),
		fyne.NewMenuItem("Cancel Path", func() { mw.canvas.CancelPath() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Selection", func() { mw.state.Scene.ClearSelection() }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Select", func() { mw.selectTool(canvas.ToolSelect) }),
		fyne.NewMenuItem("Rectangle", func() { mw.selectTool(canvas.ToolRect) }),
		fyne.NewMenuItem("Ellipse", func() { mw.selectTool(canvas.ToolEllipse) }),
		fyne.NewMenuItem("Pen", func() { mw.selectTool(canvas.ToolPen) }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
		fyne.NewMenuItem("Reset View", mw.onResetView),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Grid", mw.onToggleGrid),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDesignLoaded, func(data interface{}) {
		if path, ok := data.(string); ok && path != "" {
			mw.SetTitle("Stitch Studio - " + filepath.Base(path))
			mw.updateStatus("Design loaded: " + path)
		} else {
			mw.SetTitle("Stitch Studio - New Design")
			mw.updateStatus("New design")
		}
	})

	mw.state.On(app.EventDesignSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("Stitch Studio - " + filepath.Base(path))
			mw.updateStatus("Saved: " + path)
		}
	})

	mw.state.On(app.EventZoomChanged, func(data interface{}) {
		if zoom, ok := data.(float64); ok {
			mw.updateStatus(fmt.Sprintf("Zoom %.0f%%", zoom*100))
		}
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// setupKeys wires keyboard shortcuts for the pen tool.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			mw.canvas.FinishPath()
		case fyne.KeyEscape:
			mw.canvas.CancelPath()
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	mw.prefs.SetString(prefKeyLastDesign, filePath)
	_ = mw.prefs.Save()
}

// RestoreLastDesign reopens the design from the previous session, if any.
func (mw *MainWindow) RestoreLastDesign() {
	path := mw.prefs.String(prefKeyLastDesign)
	if path == "" {
		return
	}
	if err := mw.state.LoadDesign(path); err != nil {
		mw.updateStatus("Could not reopen " + filepath.Base(path))
	}
}

// Menu action handlers

func (mw *MainWindow) onNewDesign() {
	mw.state.NewDesign()
}

func (mw *MainWindow) onOpenDesign() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadDesign(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{designExt}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveDesign() {
	if mw.state.DesignPath == "" {
		mw.onSaveDesignAs()
		return
	}
	if err := mw.state.SaveDesign(mw.state.DesignPath); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveDesignAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != designExt {
			path += designExt
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveDesign(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("design" + designExt)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onZoomIn() {
	cam := mw.canvas.Controller().Camera()
	cam.Zoom *= render.ZoomStep
	cam.ClampZoom()
	mw.state.Emit(app.EventZoomChanged, cam.Zoom)
}

func (mw *MainWindow) onZoomOut() {
	cam := mw.canvas.Controller().Camera()
	cam.Zoom /= render.ZoomStep
	cam.ClampZoom()
	mw.state.Emit(app.EventZoomChanged, cam.Zoom)
}

func (mw *MainWindow) onActualSize() {
	cam := mw.canvas.Controller().Camera()
	cam.Zoom = 1
	mw.state.Emit(app.EventZoomChanged, cam.Zoom)
}

func (mw *MainWindow) onResetView() {
	cam := mw.canvas.Controller().Camera()
	cam.CenterX = 0
	cam.CenterY = 0
	cam.Zoom = 1
	mw.state.Emit(app.EventZoomChanged, cam.Zoom)
}

func (mw *MainWindow) onToggleGrid() {
	show := !mw.canvas.ShowGrid()
	mw.canvas.SetShowGrid(show)
	mw.prefs.SetBool(prefKeyShowGrid, show)
	_ = mw.prefs.Save()
	if show {
		mw.updateStatus("Grid shown")
	} else {
		mw.updateStatus("Grid hidden")
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Stitch Studio",
		fmt.Sprintf("Stitch Studio v%s\n\n"+
			"A vector design studio for machine embroidery.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
