// Package app hosts the interactive demo window: a fyne canvas showing
// a furniture scene with the dimensioning overlay composited on top.
package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/planbox/dimlines/internal/dimension"
	"github.com/planbox/dimlines/pkg/scene"
)

const tickInterval = 50 * time.Millisecond

type App struct {
	window  fyne.Window
	scene   *scene.Scene
	camera  *OrthoCamera
	canvas  *DimensionCanvas
	overlay *dimension.Overlay

	statusLabel *widget.Label
}

// Run opens the demo window and blocks until it is closed
func Run(sc *scene.Scene) {
	a := fyneapp.New()
	w := a.NewWindow("dimlines")

	if sc == nil {
		sc = SampleScene()
	}

	appInstance := &App{
		window: w,
		scene:  sc,
		camera: NewOrthoCamera(0.3, 60, 760),
	}
	appInstance.setupMainUI()
	appInstance.startTicker()

	w.Resize(fyne.NewSize(1100, 820))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.canvas = NewDimensionCanvas(a.scene, a.camera)
	a.overlay = dimension.New(a.scene, a.camera, a.canvas, a.canvas)
	a.canvas.SetOverlay(a.overlay)

	a.statusLabel = widget.NewLabel("")
	a.overlay.Store().Subscribe(func() {
		a.updateStatus()
	})

	hideButton := widget.NewButton("Hide Selected", func() {
		a.overlay.HideSelected()
	})

	resetButton := widget.NewButton("Reset All Lines", func() {
		a.overlay.ResetAllLines()
	})

	overlayCheck := widget.NewCheck("Dimensions", func(checked bool) {
		a.overlay.SetVisible(checked)
	})
	overlayCheck.SetChecked(true)

	projectionSelect := widget.NewSelect(
		[]string{"Front", "Side", "Top", "Perspective"},
		func(selected string) {
			switch selected {
			case "Front":
				a.camera.SetProjection(dimension.ProjectionZ)
			case "Side":
				a.camera.SetProjection(dimension.ProjectionX)
			case "Top":
				a.camera.SetProjection(dimension.ProjectionY)
			default:
				a.camera.SetProjection(dimension.ProjectionNone)
			}
			a.overlay.Deselect()
			a.canvas.Refresh()
		},
	)
	projectionSelect.SetSelected("Front")

	toolbar := container.NewHBox(
		projectionSelect,
		overlayCheck,
		hideButton,
		resetButton,
		a.statusLabel,
	)

	content := container.NewBorder(
		toolbar,  // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		a.canvas, // center
	)

	a.window.SetContent(content)
	a.updateStatus()

	// Keyboard shortcuts mirror the toolbar projection select
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.Key1:
			projectionSelect.SetSelected("Front")
		case fyne.Key2:
			projectionSelect.SetSelected("Side")
		case fyne.Key3:
			projectionSelect.SetSelected("Top")
		case fyne.Key0:
			projectionSelect.SetSelected("Perspective")
		case fyne.KeyDelete, fyne.KeyBackSpace:
			a.overlay.HideSelected()
		case fyne.KeyEscape:
			a.overlay.Deselect()
		}
	})
}

// startTicker drives the overlay's change detection from the UI thread
func (a *App) startTicker() {
	ticker := time.NewTicker(tickInterval)
	go func() {
		for range ticker.C {
			fyne.Do(func() {
				a.overlay.Tick()
			})
		}
	}()
}

func (a *App) updateStatus() {
	selected := a.overlay.SelectedID()
	text := "Selection: none"
	if selected != dimension.IDNone {
		text = fmt.Sprintf("Selection: %s", selected)
	}
	if a.overlay.HasModifications() {
		text += "  (modified)"
	}
	a.statusLabel.SetText(text)
}
