package main

import (
	"encoding/json"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Browse surface geometry
const (
	pageMargin = 24
	headerH    = 84
	tileW      = 200
	tileH      = 140
	tileGap    = 12
)

// App is the top-level game state: the property browse surface plus the
// gallery overlay. Exactly one of the two owns input each frame; the
// open overlay wins.
type App struct {
	properties []Property
	current    int

	photoRefs []string // resolved photos of the current property
	photoJSON string   // payload shared by the property's tiles
	selected  int      // keyboard-focused tile
	scrollY   float64

	registry *TriggerRegistry
	gallery  *Gallery
	renderer *Renderer
	input    *GalleryInputHandler
	manager  *ImageManager

	config       Config
	configStatus ConfigLoadResult

	warmRequested map[string]bool
	warmFailed    map[string]bool

	wasOpen bool

	width, height int
}

// NewApp wires the application together and resolves the first
// property's photos.
func NewApp(properties []Property, gallery *Gallery, renderer *Renderer, input *GalleryInputHandler, manager *ImageManager, configResult ConfigLoadResult) *App {
	a := &App{
		properties:    properties,
		registry:      NewTriggerRegistry(),
		gallery:       gallery,
		renderer:      renderer,
		input:         input,
		manager:       manager,
		config:        configResult.Config,
		configStatus:  configResult,
		warmRequested: make(map[string]bool),
		warmFailed:    make(map[string]bool),
		width:         configResult.Config.WindowWidth,
		height:        configResult.Config.WindowHeight,
	}
	a.loadProperty(0)
	return a
}

// loadProperty switches the browse surface to the given property and
// resolves its photo refs. Resolution failures leave an empty tile grid
// and are logged for the operator.
func (a *App) loadProperty(idx int) {
	if len(a.properties) == 0 {
		return
	}
	if idx < 0 {
		idx = len(a.properties) - 1
	} else if idx >= len(a.properties) {
		idx = 0
	}
	a.current = idx
	a.selected = 0
	a.scrollY = 0
	a.resetWarmState()

	p := &a.properties[idx]
	refs, err := p.ResolvePhotos(a.config.PhotoSort)
	if err != nil {
		log.Printf("Warning: %v", err)
		a.photoRefs = nil
		a.photoJSON = ""
		return
	}
	a.photoRefs = refs

	payload, err := json.Marshal(refs)
	if err != nil {
		log.Printf("Warning: failed to encode photo payload: %v", err)
		a.photoJSON = ""
		return
	}
	a.photoJSON = string(payload)
}

// resetWarmState forgets which tile textures were requested. Needed
// after every cache purge, or the tiles would never re-request them.
func (a *App) resetWarmState() {
	a.warmRequested = make(map[string]bool)
	a.warmFailed = make(map[string]bool)
}

// tileRect returns the browse-surface box of the i-th photo tile at the
// current scroll position.
func (a *App) tileRect(i int) image.Rectangle {
	cols := (a.width - pageMargin*2 + tileGap) / (tileW + tileGap)
	if cols < 1 {
		cols = 1
	}
	x := pageMargin + (i%cols)*(tileW+tileGap)
	y := headerH + (i/cols)*(tileH+tileGap) - int(a.scrollY)
	return image.Rect(x, y, x+tileW, y+tileH)
}

// rebuildTriggers re-registers the photo tiles for the current frame's
// geometry.
func (a *App) rebuildTriggers() {
	a.registry.Reset()
	for i, ref := range a.photoRefs {
		a.registry.Add(Trigger{
			Bounds:  a.tileRect(i),
			Index:   i,
			Payload: a.photoJSON,
			Ref:     ref,
		})
	}
}

// warmVisibleTiles requests background loads for tiles inside the
// viewport. Failed refs are not retried; their tiles stay blank.
func (a *App) warmVisibleTiles() {
	screen := image.Rect(0, 0, a.width, a.height)
	for i, ref := range a.photoRefs {
		if !a.tileRect(i).Overlaps(screen) {
			continue
		}
		if a.warmRequested[ref] || a.warmFailed[ref] {
			continue
		}
		if _, ok := a.manager.Cached(ref); ok {
			continue
		}
		a.warmRequested[ref] = true
		go func(ref string) {
			if _, err := a.manager.Fetch(ref); err != nil {
				debugLog("tile load failed for %s: %v", ref, err)
			}
		}(ref)
	}
}

// warmThumbStrip requests background loads for thumbnails inside the
// open overlay's strip, so slots fill in as the user scrolls. The strip
// renderer only draws cached textures; this is what feeds it beyond the
// preloader's neighbor window.
func (a *App) warmThumbStrip(lay overlayLayout) {
	if !lay.chrome {
		return
	}
	for _, i := range visibleThumbs(lay, a.gallery.Count(), a.gallery.ThumbScroll()) {
		ref, ok := a.gallery.ImageRef(i)
		if !ok || a.warmRequested[ref] || a.warmFailed[ref] {
			continue
		}
		if _, ok := a.manager.Cached(ref); ok {
			continue
		}
		a.warmRequested[ref] = true
		go func(ref string) {
			if _, err := a.manager.Fetch(ref); err != nil {
				debugLog("thumbnail load failed for %s: %v", ref, err)
			}
		}(ref)
	}
}

// openGalleryAt opens the overlay for a clicked or activated trigger.
func (a *App) openGalleryAt(clicked Trigger) {
	images, start, err := resolveTriggerImages(a.registry.Triggers(), clicked)
	if err != nil {
		log.Printf("Error: cannot open gallery: %v", err)
		return
	}
	a.gallery.Open(images, start)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.gallery.DrainResults()
	a.gallery.Tick(a.width, a.height)

	if a.gallery.IsOpen() {
		lay := computeOverlayLayout(a.width, a.height, a.gallery.Count())
		a.input.Update(lay)
		a.warmThumbStrip(lay)
	} else {
		if err := a.updatePage(); err != nil {
			return err
		}
	}

	// Returning focus after a close: the tile of the last viewed image
	// becomes the keyboard selection. The purge that accompanied the
	// close also invalidates the warm bookkeeping.
	open := a.gallery.IsOpen()
	if a.wasOpen && !open {
		if debugEnabled {
			stats := a.manager.GetPreloadStats()
			debugLog("preload stats at close: loaded=%d failed=%d queued=%d",
				stats.LoadedCount, stats.FailedCount, stats.QueueSize)
		}
		a.resetWarmState()
		if last := a.gallery.LastViewed(); last >= 0 && last < len(a.photoRefs) {
			a.selected = last
			a.scrollTileIntoView(last)
		}
	}
	a.wasOpen = open

	if !open {
		a.rebuildTriggers()
		a.warmVisibleTiles()
	}
	return nil
}

// updatePage handles input while the overlay is closed.
func (a *App) updatePage() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.saveWindowState()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.loadProperty(a.current + 1)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.loadProperty(a.current - 1)
		return nil
	}

	a.updateTileSelection()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && a.selected < len(a.photoRefs) {
		a.rebuildTriggers()
		if t, ok := a.triggerAt(a.selected); ok {
			a.openGalleryAt(t)
		}
		return nil
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		a.scrollY -= wheelY * 40
		a.clampScroll()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.rebuildTriggers()
		if t, ok := a.registry.HitTest(image.Pt(x, y)); ok {
			a.openGalleryAt(t)
		}
	}
	return nil
}

func (a *App) triggerAt(index int) (Trigger, bool) {
	for _, t := range a.registry.Triggers() {
		if t.Index == index {
			return t, true
		}
	}
	return Trigger{}, false
}

func (a *App) updateTileSelection() {
	if len(a.photoRefs) == 0 {
		return
	}
	cols := (a.width - pageMargin*2 + tileGap) / (tileW + tileGap)
	if cols < 1 {
		cols = 1
	}

	next := a.selected
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		next++
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		next--
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		next += cols
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		next -= cols
	default:
		return
	}
	if next < 0 || next >= len(a.photoRefs) {
		return
	}
	a.selected = next
	a.scrollTileIntoView(next)
}

func (a *App) scrollTileIntoView(i int) {
	rect := a.tileRect(i)
	if rect.Min.Y < headerH {
		a.scrollY -= float64(headerH - rect.Min.Y)
	} else if rect.Max.Y > a.height-pageMargin {
		a.scrollY += float64(rect.Max.Y - (a.height - pageMargin))
	}
	a.clampScroll()
}

func (a *App) clampScroll() {
	rows := 0
	if n := len(a.photoRefs); n > 0 {
		cols := (a.width - pageMargin*2 + tileGap) / (tileW + tileGap)
		if cols < 1 {
			cols = 1
		}
		rows = (n + cols - 1) / cols
	}
	contentH := float64(rows*(tileH+tileGap) + headerH + pageMargin)
	maxScroll := contentH - float64(a.height)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.scrollY < 0 {
		a.scrollY = 0
	} else if a.scrollY > maxScroll {
		a.scrollY = maxScroll
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorSlateDeep)
	a.drawPage(screen)

	if a.gallery.IsOpen() {
		lay := computeOverlayLayout(a.width, a.height, a.gallery.Count())
		a.renderer.DrawOverlay(screen, lay)
	}
}

func (a *App) drawPage(screen *ebiten.Image) {
	if len(a.properties) == 0 {
		font := a.renderer.font(a.config.FontSize)
		DrawText(screen, "Nenhum imóvel carregado", font, pageMargin, pageMargin, colorGray)
		return
	}

	p := &a.properties[a.current]

	titleFont := a.renderer.font(a.config.FontSize * 1.4)
	infoFont := a.renderer.font(a.config.FontSize)

	DrawText(screen, p.Headline(), titleFont, pageMargin, 16, colorWhite)
	priceLine := FormatPrice(p.Price)
	if p.TransactionType != "" {
		priceLine += "  ·  " + p.TransactionType
	}
	DrawText(screen, priceLine, infoFont, pageMargin, 16+a.config.FontSize*1.8, colorAccent)

	if len(a.photoRefs) == 0 {
		DrawText(screen, "Sem fotos disponíveis", infoFont, pageMargin, headerH, colorGray)
		return
	}

	screenRect := image.Rect(0, 0, a.width, a.height)
	for i, ref := range a.photoRefs {
		rect := a.tileRect(i)
		if !rect.Overlaps(screenRect) {
			continue
		}
		a.drawTile(screen, rect, ref, i == a.selected)
	}
}

func (a *App) drawTile(screen *ebiten.Image, rect image.Rectangle, ref string, selected bool) {
	if img, ok := a.manager.Cached(ref); ok {
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if iw > 0 && ih > 0 {
			scale := minFloat(float64(rect.Dx())/iw, float64(rect.Dy())/ih)
			op := &ebiten.DrawImageOptions{}
			op.Filter = ebiten.FilterLinear
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(
				float64(rect.Min.X)+(float64(rect.Dx())-iw*scale)/2,
				float64(rect.Min.Y)+(float64(rect.Dy())-ih*scale)/2,
			)
			screen.DrawImage(img, op)
		}
	} else {
		DrawFilledRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), colorSlate)
	}

	if selected {
		drawRectOutline(screen, rect, colorAccent)
	}
}

// Layout implements ebiten.Game. The logical size tracks the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// saveWindowState persists the current window geometry on exit.
func (a *App) saveWindowState() {
	if !ebiten.IsFullscreen() {
		a.config.WindowWidth, a.config.WindowHeight = ebiten.WindowSize()
	}
	saveConfig(a.config)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
