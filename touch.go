package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Gesture constants
const (
	swipeThreshold = 50.0 // minimum horizontal displacement for a swipe
	tapSlop        = 10.0 // maximum displacement still counted as a tap
	doubleTapTime  = 300 * time.Millisecond
)

// swipeNavigation maps a completed single-finger gesture to a navigation
// step: +1 for next (leftward swipe), -1 for previous (rightward swipe),
// 0 for no navigation. Swipes while zoomed are reserved for panning. The
// horizontal displacement must exceed the threshold and dominate the
// vertical displacement.
func swipeNavigation(dx, dy float64, zoomed bool) int {
	if zoomed {
		return 0
	}
	if math.Abs(dx) <= swipeThreshold {
		return 0
	}
	if math.Abs(dx) <= math.Abs(dy) {
		return 0
	}
	if dx < 0 {
		return 1
	}
	return -1
}

// pinchZoom computes the live pinch scale: the ratio of the current to
// the initial inter-finger distance multiplied into the pre-gesture
// scale, clamped to the zoom range.
func pinchZoom(startScale, baseline, current float64) float64 {
	if baseline <= 0 {
		return startScale
	}
	s := startScale * current / baseline
	if s < minZoomScale {
		s = minZoomScale
	} else if s > maxZoomScale {
		s = maxZoomScale
	}
	return s
}

// tapTracker detects double-taps: any tap within the window of the
// previous tap counts, so a third quick tap toggles again.
type tapTracker struct {
	last time.Time
}

func (t *tapTracker) registerTap(now time.Time) bool {
	double := !t.last.IsZero() && now.Sub(t.last) <= doubleTapTime
	t.last = now
	return double
}

// GestureHandler turns raw touch events into gallery operations: swipe
// navigation, drag panning while zoomed, double-tap zoom toggling and
// continuous two-finger pinch zoom. All tracking fields are scoped to
// the duration of a single gesture.
type GestureHandler struct {
	actions GalleryActions
	state   InputState

	tracking   bool
	trackingID ebiten.TouchID
	startX     int
	startY     int
	lastX      int
	lastY      int

	pinchActive     bool
	pinchBaseline   float64
	pinchStartScale float64
	pinchSeen       bool // suppresses swipe/tap from leftover fingers

	taps tapTracker

	touchIDs []ebiten.TouchID
	pressed  []ebiten.TouchID
}

// NewGestureHandler creates a new GestureHandler
func NewGestureHandler(actions GalleryActions, state InputState) *GestureHandler {
	return &GestureHandler{actions: actions, state: state}
}

func touchDistance(x0, y0, x1, y1 int) float64 {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	return math.Hypot(dx, dy)
}

// Update processes touch input for the current frame.
// Returns true if any gesture produced an operation.
func (gh *GestureHandler) Update() bool {
	gh.touchIDs = ebiten.AppendTouchIDs(gh.touchIDs[:0])

	if len(gh.touchIDs) >= 2 {
		return gh.updatePinch()
	}
	gh.pinchActive = false

	// All fingers up with nothing tracked: the pinch that raised the
	// suppression flag is fully over, and the next gesture is fresh.
	if len(gh.touchIDs) == 0 && !gh.tracking {
		gh.pinchSeen = false
	}

	processed := false
	gh.pressed = inpututil.AppendJustPressedTouchIDs(gh.pressed[:0])
	if len(gh.pressed) > 0 && !gh.tracking {
		id := gh.pressed[0]
		x, y := ebiten.TouchPosition(id)
		gh.tracking = true
		gh.trackingID = id
		gh.startX, gh.startY = x, y
		gh.lastX, gh.lastY = x, y
	}

	if gh.tracking {
		if inpututil.IsTouchJustReleased(gh.trackingID) {
			processed = gh.finishSingleTouch() || processed
			gh.tracking = false
			gh.pinchSeen = false
		} else {
			x, y := ebiten.TouchPosition(gh.trackingID)
			// A live single-finger drag pans while zoomed.
			if gh.state.IsZoomed() && !gh.pinchSeen {
				dx := float64(x - gh.lastX)
				dy := float64(y - gh.lastY)
				if dx != 0 || dy != 0 {
					gh.actions.PanBy(dx, dy)
					processed = true
				}
			}
			gh.lastX, gh.lastY = x, y
		}
	}

	return processed
}

// updatePinch samples the two-finger distance every frame for the
// continuous zoom gesture.
func (gh *GestureHandler) updatePinch() bool {
	x0, y0 := ebiten.TouchPosition(gh.touchIDs[0])
	x1, y1 := ebiten.TouchPosition(gh.touchIDs[1])
	dist := touchDistance(x0, y0, x1, y1)

	if !gh.pinchActive {
		gh.pinchActive = true
		gh.pinchSeen = true
		gh.pinchBaseline = dist
		gh.pinchStartScale = gh.state.Scale()
		// The single-finger gesture, if any, ends here.
		gh.tracking = false
		return true
	}

	gh.actions.SetZoom(pinchZoom(gh.pinchStartScale, gh.pinchBaseline, dist))
	return true
}

// finishSingleTouch resolves a released single-finger gesture into a
// tap (double-tap toggles zoom) or a swipe (navigation while not zoomed).
func (gh *GestureHandler) finishSingleTouch() bool {
	if gh.pinchSeen {
		return false
	}

	dx := float64(gh.lastX - gh.startX)
	dy := float64(gh.lastY - gh.startY)

	if math.Abs(dx) < tapSlop && math.Abs(dy) < tapSlop {
		if gh.taps.registerTap(time.Now()) {
			gh.actions.ToggleZoom()
			return true
		}
		return false
	}

	switch swipeNavigation(dx, dy, gh.state.IsZoomed()) {
	case 1:
		gh.actions.Next()
		return true
	case -1:
		gh.actions.Previous()
		return true
	}
	return false
}
