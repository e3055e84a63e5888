package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Common colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorGray      = color.RGBA{180, 180, 180, 255}
	colorDimGray   = color.RGBA{110, 110, 110, 255}
	colorSlate     = color.RGBA{40, 44, 52, 255}
	colorSlateDeep = color.RGBA{30, 33, 39, 255}
	colorAccent    = color.RGBA{120, 180, 255, 255}

	// Background colors for semi-transparent overlays
	bgColorMedium = color.RGBA{0, 0, 0, 160}
	bgColorDark   = color.RGBA{0, 0, 0, 220}
)

// Renderer draws the gallery overlay from a GalleryView snapshot. It
// reads cached thumbnails through the ImageManager but never issues
// loads; warming is the application's job.
type Renderer struct {
	view     GalleryView
	manager  *ImageManager
	fontSize float64

	frame int // animation clock for the loading indicator
}

// NewRenderer creates a new Renderer
func NewRenderer(view GalleryView, manager *ImageManager, fontSize float64) *Renderer {
	return &Renderer{
		view:     view,
		manager:  manager,
		fontSize: fontSize,
	}
}

func (r *Renderer) font(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source: globalFontSource,
		Size:   size,
	}
}

// DrawOverlay renders the open gallery over whatever the page drew.
// Does nothing while the gallery is closed.
func (r *Renderer) DrawOverlay(screen *ebiten.Image, lay overlayLayout) {
	if !r.view.IsOpen() {
		return
	}
	r.frame++

	w, h := float64(lay.screenW), float64(lay.screenH)
	DrawFilledRect(screen, 0, 0, w, h, bgColorDark)

	r.drawMainImage(screen, lay)

	if r.view.IsLoading() {
		r.drawLoadingIndicator(screen, lay)
	}

	r.drawCounter(screen, lay)
	r.drawCloseButton(screen, lay)

	if lay.chrome {
		r.drawArrows(screen, lay)
		r.drawIndicators(screen, lay)
		r.drawThumbnails(screen, lay)
	}
}

// drawMainImage fits the image to the content area, applies the zoom
// factor and clamps the pan so the image never detaches from the area.
func (r *Renderer) drawMainImage(screen *ebiten.Image, lay overlayLayout) {
	img := r.view.DisplayImage()
	if img == nil {
		return
	}

	area := lay.imageArea
	aw, ah := float64(area.Dx()), float64(area.Dy())
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if iw == 0 || ih == 0 || aw <= 0 || ah <= 0 {
		return
	}

	fitScale := math.Min(aw/iw, ah/ih)
	scale := fitScale * r.view.Scale()
	sw, sh := iw*scale, ih*scale

	panX, panY := r.view.Pan()
	var offsetX, offsetY float64

	if sw <= aw {
		offsetX = float64(area.Min.X) + aw/2 - sw/2
	} else {
		minX := float64(area.Max.X) - sw
		maxX := float64(area.Min.X)
		offsetX = math.Max(minX, math.Min(maxX, float64(area.Min.X)+aw/2-sw/2+panX))
	}

	if sh <= ah {
		offsetY = float64(area.Min.Y) + ah/2 - sh/2
	} else {
		minY := float64(area.Max.Y) - sh
		maxY := float64(area.Min.Y)
		offsetY = math.Max(minY, math.Min(maxY, float64(area.Min.Y)+ah/2-sh/2+panY))
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawLoadingIndicator(screen *ebiten.Image, lay overlayLayout) {
	dots := strings.Repeat(".", (r.frame/20)%4)
	label := "Carregando" + dots
	font := r.font(r.fontSize)

	textW, textH := text.Measure(label, font, 0)
	x := float64(lay.imageArea.Min.X) + float64(lay.imageArea.Dx())/2 - textW/2
	y := float64(lay.imageArea.Min.Y) + float64(lay.imageArea.Dy())/2 - textH/2

	DrawFilledRect(screen, x-10, y-5, textW+20, textH+10, bgColorMedium)
	DrawText(screen, label, font, x, y, colorGray)
}

func (r *Renderer) drawCounter(screen *ebiten.Image, lay overlayLayout) {
	font := r.font(r.fontSize)
	label := r.view.CounterText()
	textW, textH := text.Measure(label, font, 0)

	x, y := float64(lay.counterPos.X), float64(lay.counterPos.Y)
	DrawFilledRect(screen, x-6, y-4, textW+12, textH+8, bgColorMedium)
	DrawText(screen, label, font, x, y, colorWhite)
}

func (r *Renderer) drawCloseButton(screen *ebiten.Image, lay overlayLayout) {
	rect := lay.closeRect
	DrawFilledRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), bgColorMedium)

	font := r.font(r.fontSize * 1.5)
	label := "×"
	textW, textH := text.Measure(label, font, 0)
	x := float64(rect.Min.X) + float64(rect.Dx())/2 - textW/2
	y := float64(rect.Min.Y) + float64(rect.Dy())/2 - textH/2
	DrawText(screen, label, font, x, y, colorWhite)
}

func (r *Renderer) drawArrows(screen *ebiten.Image, lay overlayLayout) {
	font := r.font(r.fontSize * 2)

	for _, arrow := range []struct {
		rect  [4]int
		label string
	}{
		{[4]int{lay.prevRect.Min.X, lay.prevRect.Min.Y, lay.prevRect.Dx(), lay.prevRect.Dy()}, "‹"},
		{[4]int{lay.nextRect.Min.X, lay.nextRect.Min.Y, lay.nextRect.Dx(), lay.nextRect.Dy()}, "›"},
	} {
		DrawFilledRect(screen, float64(arrow.rect[0]), float64(arrow.rect[1]), float64(arrow.rect[2]), float64(arrow.rect[3]), bgColorMedium)
		textW, textH := text.Measure(arrow.label, font, 0)
		x := float64(arrow.rect[0]) + float64(arrow.rect[2])/2 - textW/2
		y := float64(arrow.rect[1]) + float64(arrow.rect[3])/2 - textH/2
		DrawText(screen, arrow.label, font, x, y, colorWhite)
	}
}

func (r *Renderer) drawIndicators(screen *ebiten.Image, lay overlayLayout) {
	current := r.view.CurrentIndex()
	for i := 0; i < r.view.Count(); i++ {
		rect := lay.indicatorRect(i)
		cx := float32(rect.Min.X + rect.Dx()/2)
		cy := float32(rect.Min.Y + rect.Dy()/2)
		if i == current {
			vector.DrawFilledCircle(screen, cx, cy, 5, colorWhite, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, 3.5, colorDimGray, true)
		}
	}
}

// drawThumbnails renders the bottom strip, clipped to its bounds. Only
// cached images are drawn; slots without a warm texture show as plain
// boxes until the preloader catches up.
func (r *Renderer) drawThumbnails(screen *ebiten.Image, lay overlayLayout) {
	strip := lay.thumbStrip
	DrawFilledRect(screen, float64(strip.Min.X), float64(strip.Min.Y), float64(strip.Dx()), float64(strip.Dy()), colorSlateDeep)

	clip, ok := screen.SubImage(strip).(*ebiten.Image)
	if !ok {
		return
	}

	scroll := r.view.ThumbScroll()
	current := r.view.CurrentIndex()

	for _, i := range visibleThumbs(lay, r.view.Count(), scroll) {
		rect := lay.thumbRect(i, scroll)

		drawn := false
		if ref, ok := r.view.ImageRef(i); ok {
			if img, ok := r.manager.Cached(ref); ok {
				iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
				if iw > 0 && ih > 0 {
					scale := math.Min(thumbSlotW/iw, thumbSlotH/ih)
					op := &ebiten.DrawImageOptions{}
					op.Filter = ebiten.FilterLinear
					op.GeoM.Scale(scale, scale)
					op.GeoM.Translate(
						float64(rect.Min.X)+(thumbSlotW-iw*scale)/2,
						float64(rect.Min.Y)+(thumbSlotH-ih*scale)/2,
					)
					clip.DrawImage(img, op)
					drawn = true
				}
			}
		}
		if !drawn {
			DrawFilledRect(clip, float64(rect.Min.X), float64(rect.Min.Y), thumbSlotW, thumbSlotH, colorSlate)
		}

		if i == current {
			vector.StrokeRect(clip, float32(rect.Min.X), float32(rect.Min.Y), float32(thumbSlotW), float32(thumbSlotH), 2, colorAccent, false)
		}
	}
}
