package main

import "image"

// Overlay geometry constants
const (
	overlayPad   = 16
	closeSize    = 40
	arrowW       = 56
	arrowH       = 120
	indicatorGap = 18
	indicatorH   = 24
	thumbSlotW   = 96.0
	thumbSlotH   = 64.0
	thumbGap     = 8.0
	thumbStripH  = 80
)

// overlayLayout is the computed geometry of the open overlay for a
// given window size and image count. The renderer draws from it and the
// input router hit-tests against it, so the two can never disagree.
type overlayLayout struct {
	screenW, screenH int
	chrome           bool // indicators + thumbnails visible (more than one image)

	imageArea  image.Rectangle
	closeRect  image.Rectangle
	prevRect   image.Rectangle
	nextRect   image.Rectangle
	counterPos image.Point

	indicatorRow image.Rectangle
	thumbStrip   image.Rectangle

	thumbTrackWidth float64
}

func computeOverlayLayout(w, h, n int) overlayLayout {
	lay := overlayLayout{
		screenW: w,
		screenH: h,
		chrome:  n > 1,
	}

	lay.closeRect = image.Rect(w-overlayPad-closeSize, overlayPad, w-overlayPad, overlayPad+closeSize)
	lay.counterPos = image.Pt(overlayPad, overlayPad)

	bottom := h - overlayPad
	if lay.chrome {
		lay.thumbStrip = image.Rect(overlayPad, h-overlayPad-thumbStripH, w-overlayPad, h-overlayPad)
		rowW := n * indicatorGap
		rowX := (w - rowW) / 2
		lay.indicatorRow = image.Rect(rowX, lay.thumbStrip.Min.Y-indicatorH, rowX+rowW, lay.thumbStrip.Min.Y)
		bottom = lay.indicatorRow.Min.Y
	}

	top := overlayPad + closeSize
	midY := (top + bottom) / 2
	lay.prevRect = image.Rect(0, midY-arrowH/2, arrowW, midY+arrowH/2)
	lay.nextRect = image.Rect(w-arrowW, midY-arrowH/2, w, midY+arrowH/2)

	lay.imageArea = image.Rect(arrowW, top, w-arrowW, bottom)

	lay.thumbTrackWidth = float64(n)*thumbSlotW + float64(n-1)*thumbGap
	return lay
}

// indicatorRect returns the hit box for the i-th indicator dot.
func (l overlayLayout) indicatorRect(i int) image.Rectangle {
	x := l.indicatorRow.Min.X + i*indicatorGap
	return image.Rect(x, l.indicatorRow.Min.Y, x+indicatorGap, l.indicatorRow.Max.Y)
}

// thumbRect returns the on-screen box of the i-th thumbnail at the
// given scroll offset. Callers clip against the strip bounds.
func (l overlayLayout) thumbRect(i int, scroll float64) image.Rectangle {
	x := float64(l.thumbStrip.Min.X) + float64(i)*(thumbSlotW+thumbGap) - scroll
	y := float64(l.thumbStrip.Min.Y) + (thumbStripH-thumbSlotH)/2
	return image.Rect(int(x), int(y), int(x+thumbSlotW), int(y+thumbSlotH))
}

// visibleThumbs returns the indexes whose thumbnail boxes intersect the
// strip at the given scroll offset.
func visibleThumbs(l overlayLayout, n int, scroll float64) []int {
	var idx []int
	for i := 0; i < n; i++ {
		rect := l.thumbRect(i, scroll)
		if rect.Max.X < l.thumbStrip.Min.X || rect.Min.X > l.thumbStrip.Max.X {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// thumbCenterOffset computes the scroll offset that centers the active
// thumbnail in its container: the thumbnail's left edge minus half the
// container width plus half the thumbnail width, clamped to the valid
// scroll range. When the whole track fits the container there is
// nothing to scroll.
func thumbCenterOffset(thumbLeft, thumbW, containerW, trackW float64) float64 {
	if trackW <= containerW {
		return 0
	}
	target := thumbLeft - containerW/2 + thumbW/2
	if target < 0 {
		target = 0
	}
	if max := trackW - containerW; target > max {
		target = max
	}
	return target
}
