package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Zoom constants
const (
	minZoomScale    = 1.0
	maxZoomScale    = 4.0
	zoomStepFactor  = 1.5
	toggleZoomScale = 2.0
)

// loadResult carries a finished image load back to the main thread.
// The generation/index pair identifies the display slot the load was
// issued for; a result whose pair no longer matches the live state must
// not touch the visible surface.
type loadResult struct {
	generation int
	index      int
	ref        string
	img        *ebiten.Image
	err        error
}

// Gallery owns all overlay state: the image list, the current index,
// zoom/pan, the async load lifecycle and the thumbnail scroll position.
// It performs no drawing; the Renderer reads it through GalleryView and
// the input layer drives it through GalleryActions.
type Gallery struct {
	images  []string
	current int
	open    bool

	scale      float64
	panX, panY float64

	// generation tags async loads with the open/close session they
	// belong to. Bumped on every Open and Close.
	generation int

	loading     bool
	display     *ebiten.Image
	displayAlt  string
	placeholder bool

	lastViewed int

	thumbOffset   float64
	thumbTarget   float64
	centerPending bool

	fullscreen bool

	manager   *ImageManager
	announcer *LiveRegion
	results   chan loadResult
}

// NewGallery creates the single gallery controller for the page.
func NewGallery(manager *ImageManager, announcer *LiveRegion) *Gallery {
	return &Gallery{
		scale:     minZoomScale,
		manager:   manager,
		announcer: announcer,
		results:   make(chan loadResult, 32),
	}
}

// Open replaces the image list wholesale and reveals the overlay.
// An empty list is a no-op: the overlay stays closed and the request is
// logged for the operator.
func (g *Gallery) Open(images []string, startIndex int) {
	if len(images) == 0 {
		log.Printf("Warning: gallery open requested with empty image list, ignoring")
		return
	}
	if startIndex < 0 || startIndex >= len(images) {
		log.Printf("Warning: gallery open with out-of-range start index %d (of %d), using 0", startIndex, len(images))
		startIndex = 0
	}

	g.generation++
	g.images = make([]string, len(images))
	copy(g.images, images)
	g.current = startIndex
	g.lastViewed = startIndex
	g.open = true
	g.resetZoomState()

	g.thumbOffset = 0
	g.thumbTarget = 0
	g.centerPending = true

	g.manager.SetRefs(g.images)
	g.loadCurrent()
	g.preloadNeighbors()

	g.announcer.Announce(fmt.Sprintf("Gallery opened. Viewing image %d of %d", startIndex+1, len(images)))
}

// Close hides the overlay and drops the preload cache to bound memory
// across many open/close cycles. The image list and index are retained
// as last-viewed memory until the next Open overwrites them.
func (g *Gallery) Close() {
	if !g.open {
		return
	}
	g.generation++
	g.open = false
	g.loading = false
	g.resetZoomState()

	// The purge deallocates cached textures, so the display pointer
	// must not outlive it.
	g.display = nil
	g.displayAlt = ""
	g.placeholder = false
	g.manager.PurgeCache()

	g.announcer.Announce("Gallery closed")
}

// Next advances with wrap-around. With a single image it is a no-op.
func (g *Gallery) Next() {
	if !g.open || len(g.images) <= 1 {
		return
	}
	g.transition((g.current + 1) % len(g.images))
}

// Previous steps back with wrap-around. With a single image it is a no-op.
func (g *Gallery) Previous() {
	if !g.open || len(g.images) <= 1 {
		return
	}
	g.transition((g.current - 1 + len(g.images)) % len(g.images))
}

// GoTo jumps to a specific image. Out-of-range targets and the current
// index are silently ignored.
func (g *Gallery) GoTo(index int) {
	if !g.open || index < 0 || index >= len(g.images) || index == g.current {
		return
	}
	g.transition(index)
}

// JumpFirst and JumpLast are the Home/End bindings.
func (g *Gallery) JumpFirst() { g.GoTo(0) }
func (g *Gallery) JumpLast()  { g.GoTo(len(g.images) - 1) }

// transition is the single navigation edge: zoom resets, the new image
// loads, neighbors preload, and the change is announced.
func (g *Gallery) transition(to int) {
	g.current = to
	g.lastViewed = to
	g.resetZoomState()
	g.loadCurrent()
	g.preloadNeighbors()
	g.centerPending = true
	g.announcer.Announce(fmt.Sprintf("Image %d of %d", to+1, len(g.images)))
}

// loadCurrent swaps the displayed image to the current index, going
// through the async path on a cache miss.
func (g *Gallery) loadCurrent() {
	ref := g.images[g.current]
	g.loading = true
	g.placeholder = false

	if img, ok := g.manager.Cached(ref); ok {
		g.display = img
		g.displayAlt = fmt.Sprintf("Property Image %d", g.current+1)
		g.loading = false
		return
	}

	gen, idx := g.generation, g.current
	go func() {
		img, err := g.manager.Fetch(ref)
		select {
		case g.results <- loadResult{generation: gen, index: idx, ref: ref, img: img, err: err}:
		default:
			debugLog("load result channel full, dropping result for %s", ref)
		}
	}()
}

func (g *Gallery) preloadNeighbors() {
	g.manager.StartPreload(g.current)
}

// DrainResults applies finished loads. It must run on the main thread
// once per frame, before input handling.
func (g *Gallery) DrainResults() {
	for {
		select {
		case r := <-g.results:
			g.applyLoadResult(r)
		default:
			return
		}
	}
}

// applyLoadResult enforces the stale-load guard: a completion tagged
// with an old generation or a non-current index never mutates the
// visible surface. Successful loads still land in the cache.
func (g *Gallery) applyLoadResult(r loadResult) {
	if !g.open || r.generation != g.generation || r.index != g.current {
		debugLog("discarding stale load result for %s (gen %d idx %d)", r.ref, r.generation, r.index)
		return
	}

	g.loading = false
	g.displayAlt = fmt.Sprintf("Property Image %d", r.index+1)
	if r.err != nil {
		log.Printf("Error: failed to load image [%d/%d] %s: %v", r.index+1, len(g.images), r.ref, r.err)
		g.display = CreateErrorImage(400, 300, r.ref, r.err.Error())
		g.placeholder = true
		return
	}
	g.display = r.img
	g.placeholder = false
}

// Zoom and pan

func (g *Gallery) SetZoom(scale float64) {
	if scale < minZoomScale {
		scale = minZoomScale
	} else if scale > maxZoomScale {
		scale = maxZoomScale
	}
	g.scale = scale
	if g.scale == minZoomScale {
		g.panX, g.panY = 0, 0
	}
}

func (g *Gallery) ZoomIn()  { g.SetZoom(g.scale * zoomStepFactor) }
func (g *Gallery) ZoomOut() { g.SetZoom(g.scale / zoomStepFactor) }

func (g *Gallery) ToggleZoom() {
	if g.IsZoomed() {
		g.ResetZoom()
	} else {
		g.SetZoom(toggleZoomScale)
	}
}

func (g *Gallery) ResetZoom() {
	g.resetZoomState()
}

func (g *Gallery) resetZoomState() {
	g.scale = minZoomScale
	g.panX, g.panY = 0, 0
}

func (g *Gallery) IsZoomed() bool {
	return g.scale > minZoomScale
}

// PanBy shifts the zoomed image. Ignored at base scale, where the image
// is always centered.
func (g *Gallery) PanBy(dx, dy float64) {
	if !g.IsZoomed() {
		return
	}
	g.panX += dx
	g.panY += dy
}

// Dismiss is the Escape semantic: leave zoom first, close second.
func (g *Gallery) Dismiss() {
	if g.IsZoomed() {
		g.ResetZoom()
		return
	}
	g.Close()
}

// ToggleFullscreen requests platform fullscreen. Platforms that refuse
// simply stay windowed; the attempt is only logged.
func (g *Gallery) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
	ebiten.SetFullscreen(g.fullscreen)
	debugLog("fullscreen toggled: %v", g.fullscreen)
}

// Tick advances per-frame state: deferred thumbnail centering (one
// render pass after the navigation, so layout is settled) and the
// smooth scroll toward the centering target.
func (g *Gallery) Tick(screenW, screenH int) {
	if !g.open {
		return
	}
	lay := computeOverlayLayout(screenW, screenH, len(g.images))
	if g.centerPending {
		g.thumbTarget = thumbCenterOffset(
			float64(g.current)*(thumbSlotW+thumbGap),
			thumbSlotW,
			float64(lay.thumbStrip.Dx()),
			lay.thumbTrackWidth,
		)
		g.centerPending = false
	}
	diff := g.thumbTarget - g.thumbOffset
	if diff > -0.5 && diff < 0.5 {
		g.thumbOffset = g.thumbTarget
	} else {
		g.thumbOffset += diff * 0.25
	}
}

// Read-only view accessors (GalleryView)

func (g *Gallery) IsOpen() bool         { return g.open }
func (g *Gallery) Count() int           { return len(g.images) }
func (g *Gallery) CurrentIndex() int    { return g.current }
func (g *Gallery) LastViewed() int      { return g.lastViewed }
func (g *Gallery) Scale() float64       { return g.scale }
func (g *Gallery) IsLoading() bool      { return g.loading }
func (g *Gallery) IsPlaceholder() bool  { return g.placeholder }
func (g *Gallery) DisplayAlt() string   { return g.displayAlt }
func (g *Gallery) ThumbScroll() float64 { return g.thumbOffset }

func (g *Gallery) Pan() (float64, float64) {
	return g.panX, g.panY
}

func (g *Gallery) DisplayImage() *ebiten.Image {
	return g.display
}

func (g *Gallery) ImageRef(i int) (string, bool) {
	if i < 0 || i >= len(g.images) {
		return "", false
	}
	return g.images[i], true
}

// CounterText renders the "{current} / {total}" label.
func (g *Gallery) CounterText() string {
	return fmt.Sprintf("%d / %d", g.current+1, len(g.images))
}

// ChromeVisible reports whether indicators and thumbnails are shown;
// both are hidden for zero- or one-image sets.
func (g *Gallery) ChromeVisible() bool {
	return len(g.images) > 1
}
