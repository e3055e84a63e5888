package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GalleryInputHandler routes keyboard, mouse and touch input to gallery
// operations while the overlay is open. Bound actions go through the
// keybinding/mousebinding managers; positional clicks are hit-tested
// against the shared overlay layout.
type GalleryInputHandler struct {
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
	gestures            *GestureHandler

	actions GalleryActions
	state   InputState
	view    GalleryView

	dragging    bool
	dragStarted bool // origin press seen, waiting for the threshold
	dragOrigin  image.Point
	dragLastX   int
	dragLastY   int
}

// NewGalleryInputHandler creates a new GalleryInputHandler
func NewGalleryInputHandler(km *KeybindingManager, mm *MousebindingManager, actions GalleryActions, state InputState, view GalleryView) *GalleryInputHandler {
	return &GalleryInputHandler{
		keybindingManager:   km,
		mousebindingManager: mm,
		gestures:            NewGestureHandler(actions, state),
		actions:             actions,
		state:               state,
		view:                view,
	}
}

// Update processes one frame of gallery input. The layout must match
// what the renderer drew this frame.
func (h *GalleryInputHandler) Update(lay overlayLayout) {
	if !h.state.IsOpen() {
		h.dragging = false
		return
	}

	cx, cy := ebiten.CursorPosition()
	for _, def := range actionDefinitions {
		if h.keybindingManager.ExecuteAction(def.Name, h.actions, h.state) {
			return
		}
		if !mouseActionAllowed(def.Name, image.Pt(cx, cy), lay) {
			continue
		}
		if h.mousebindingManager.ExecuteAction(def.Name, h.actions, h.state) {
			return
		}
	}

	if h.checkDigitKeys() {
		return
	}

	if h.gestures.Update() {
		return
	}

	h.handlePositionalClicks(lay)
	h.handleDragPan(lay)
}

// mouseActionAllowed reports whether a mouse binding for the action may
// fire with the cursor at pt. Double-click zoom is scoped to the image
// surface, so rapid clicks on the arrows and other controls keep
// navigating instead of toggling zoom.
func mouseActionAllowed(action string, pt image.Point, lay overlayLayout) bool {
	if action == "zoom_toggle" {
		return pt.In(lay.imageArea)
	}
	return true
}

// checkDigitKeys maps the digit keys 1-9 to direct image jumps.
func (h *GalleryInputHandler) checkDigitKeys() bool {
	for i := 0; i < 9; i++ {
		key := ebiten.Key1 + ebiten.Key(i)
		if inpututil.IsKeyJustPressed(key) {
			h.actions.GoTo(i)
			return true
		}
	}
	return false
}

// handlePositionalClicks resolves a left click against the overlay
// controls. Clicks on the dimmed background outside the image close the
// overlay, but only at base zoom so a mis-aimed pan cannot dismiss it.
func (h *GalleryInputHandler) handlePositionalClicks(lay overlayLayout) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	pt := image.Pt(x, y)

	if pt.In(lay.closeRect) {
		h.actions.Close()
		return
	}

	if lay.chrome {
		if pt.In(lay.prevRect) {
			h.actions.Previous()
			return
		}
		if pt.In(lay.nextRect) {
			h.actions.Next()
			return
		}
		if pt.In(lay.indicatorRow) {
			for i := 0; i < h.actions.Count(); i++ {
				if pt.In(lay.indicatorRect(i)) {
					h.actions.GoTo(i)
					return
				}
			}
			return
		}
		if pt.In(lay.thumbStrip) {
			scroll := h.view.ThumbScroll()
			for i := 0; i < h.actions.Count(); i++ {
				if pt.In(lay.thumbRect(i, scroll)) {
					h.actions.GoTo(i)
					return
				}
			}
			return
		}
	}

	if !pt.In(lay.imageArea) && !h.state.IsZoomed() {
		h.actions.Close()
	}
}

// handleDragPan pans the zoomed image while the left button is held.
// The drag must start inside the image area so control clicks never
// double as pans, and must travel past the threshold before panning so
// a sloppy click does not nudge the image.
func (h *GalleryInputHandler) handleDragPan(lay overlayLayout) {
	settings := h.mousebindingManager.GetSettings()
	if !settings.EnableDragPan || !h.state.IsZoomed() {
		h.dragging = false
		h.dragStarted = false
		return
	}

	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if image.Pt(x, y).In(lay.imageArea) {
			h.dragStarted = true
			h.dragOrigin = image.Pt(x, y)
			h.dragLastX, h.dragLastY = x, y
		}
		return
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.dragging = false
		h.dragStarted = false
		return
	}

	if h.dragStarted && !h.dragging {
		dx, dy := x-h.dragOrigin.X, y-h.dragOrigin.Y
		if dx*dx+dy*dy >= settings.DragThreshold*settings.DragThreshold {
			h.dragging = true
			h.dragLastX, h.dragLastY = x, y
		}
		return
	}

	if h.dragging {
		dx := float64(x-h.dragLastX) * settings.DragSensitivity
		dy := float64(y-h.dragLastY) * settings.DragSensitivity
		if dx != 0 || dy != 0 {
			h.actions.PanBy(dx, dy)
		}
		h.dragLastX, h.dragLastY = x, y
	}
}
