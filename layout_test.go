package main

import (
	"image"
	"testing"
)

func TestThumbCenterOffset(t *testing.T) {
	tests := []struct {
		name       string
		thumbLeft  float64
		thumbW     float64
		containerW float64
		trackW     float64
		expected   float64
	}{
		{"track fits container", 200, 96, 800, 500, 0},
		{"first thumbnail clamps to zero", 0, 96, 400, 2000, 0},
		{"middle thumbnail centers", 1000, 96, 400, 2000, 848},
		{"last thumbnail clamps to track end", 1904, 96, 400, 2000, 1600},
		{"exact fit", 0, 96, 500, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thumbCenterOffset(tt.thumbLeft, tt.thumbW, tt.containerW, tt.trackW)
			if got != tt.expected {
				t.Errorf("thumbCenterOffset(%v, %v, %v, %v) = %v, want %v",
					tt.thumbLeft, tt.thumbW, tt.containerW, tt.trackW, got, tt.expected)
			}
		})
	}
}

func TestComputeOverlayLayout(t *testing.T) {
	t.Run("chrome hidden for single image", func(t *testing.T) {
		lay := computeOverlayLayout(800, 600, 1)
		if lay.chrome {
			t.Error("chrome should be hidden with one image")
		}
		if lay.imageArea.Empty() {
			t.Error("image area should not be empty")
		}
	})

	t.Run("chrome shown for multiple images", func(t *testing.T) {
		lay := computeOverlayLayout(800, 600, 5)
		if !lay.chrome {
			t.Error("chrome should be visible with multiple images")
		}
		if lay.thumbStrip.Empty() {
			t.Error("thumbnail strip should be laid out")
		}
		if lay.indicatorRow.Empty() {
			t.Error("indicator row should be laid out")
		}
		if lay.indicatorRow.Min.Y < lay.imageArea.Max.Y {
			t.Error("indicators should sit below the image area")
		}
	})

	t.Run("close button in top right corner", func(t *testing.T) {
		lay := computeOverlayLayout(800, 600, 3)
		if lay.closeRect.Max.X != 800-overlayPad {
			t.Errorf("closeRect.Max.X = %d", lay.closeRect.Max.X)
		}
		if lay.closeRect.Min.Y != overlayPad {
			t.Errorf("closeRect.Min.Y = %d", lay.closeRect.Min.Y)
		}
	})

	t.Run("arrows flank the image area", func(t *testing.T) {
		lay := computeOverlayLayout(800, 600, 3)
		if lay.prevRect.Min.X != 0 {
			t.Errorf("prevRect.Min.X = %d, want 0", lay.prevRect.Min.X)
		}
		if lay.nextRect.Max.X != 800 {
			t.Errorf("nextRect.Max.X = %d, want 800", lay.nextRect.Max.X)
		}
		if lay.imageArea.Min.X != arrowW || lay.imageArea.Max.X != 800-arrowW {
			t.Errorf("imageArea = %v", lay.imageArea)
		}
	})

	t.Run("track width", func(t *testing.T) {
		lay := computeOverlayLayout(800, 600, 3)
		want := 3*thumbSlotW + 2*thumbGap
		if lay.thumbTrackWidth != want {
			t.Errorf("thumbTrackWidth = %v, want %v", lay.thumbTrackWidth, want)
		}
	})
}

func TestIndicatorRects(t *testing.T) {
	lay := computeOverlayLayout(800, 600, 4)

	// Every dot's hit box lies inside the row, and boxes do not overlap.
	var prev image.Rectangle
	for i := 0; i < 4; i++ {
		rect := lay.indicatorRect(i)
		if !rect.In(lay.indicatorRow) {
			t.Errorf("indicator %d rect %v outside row %v", i, rect, lay.indicatorRow)
		}
		if i > 0 && rect.Overlaps(prev) {
			t.Errorf("indicator %d overlaps previous", i)
		}
		prev = rect
	}
}

func TestVisibleThumbs(t *testing.T) {
	lay := computeOverlayLayout(800, 600, 30)

	t.Run("unscrolled strip starts at the first thumb", func(t *testing.T) {
		got := visibleThumbs(lay, 30, 0)
		if len(got) == 0 || got[0] != 0 {
			t.Fatalf("visibleThumbs = %v, want to start at 0", got)
		}
		if got[len(got)-1] == 29 {
			t.Error("a 30-thumb track cannot fit the strip")
		}
		for k, i := range got {
			if i != got[0]+k {
				t.Fatalf("indexes not contiguous: %v", got)
			}
		}
	})

	t.Run("fully scrolled strip ends at the last thumb", func(t *testing.T) {
		scroll := lay.thumbTrackWidth - float64(lay.thumbStrip.Dx())
		got := visibleThumbs(lay, 30, scroll)
		if len(got) == 0 || got[len(got)-1] != 29 {
			t.Fatalf("visibleThumbs = %v, want to end at 29", got)
		}
		if got[0] == 0 {
			t.Error("fully scrolled strip should not still show the first thumb")
		}
	})

	t.Run("short track is fully visible", func(t *testing.T) {
		if got := visibleThumbs(lay, 3, 0); len(got) != 3 {
			t.Fatalf("visibleThumbs = %v, want all 3", got)
		}
	})
}

func TestThumbRectScrolling(t *testing.T) {
	lay := computeOverlayLayout(800, 600, 10)

	at0 := lay.thumbRect(0, 0)
	scrolled := lay.thumbRect(0, 50)
	if scrolled.Min.X != at0.Min.X-50 {
		t.Errorf("scroll should shift thumbnails left: %d vs %d", scrolled.Min.X, at0.Min.X)
	}

	next := lay.thumbRect(1, 0)
	if next.Min.X-at0.Min.X != int(thumbSlotW+thumbGap) {
		t.Errorf("thumbnail pitch = %d, want %d", next.Min.X-at0.Min.X, int(thumbSlotW+thumbGap))
	}
}
