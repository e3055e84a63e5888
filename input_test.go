package main

import (
	"image"
	"testing"
)

func TestMouseActionAllowed(t *testing.T) {
	lay := computeOverlayLayout(800, 600, 5)

	tests := []struct {
		name    string
		action  string
		pt      image.Point
		allowed bool
	}{
		{"zoom toggle inside the image", "zoom_toggle", image.Pt(400, 300), true},
		{"zoom toggle on the prev arrow", "zoom_toggle", lay.prevRect.Min.Add(image.Pt(5, 5)), false},
		{"zoom toggle on the next arrow", "zoom_toggle", lay.nextRect.Min.Add(image.Pt(5, 5)), false},
		{"zoom toggle on the thumbnail strip", "zoom_toggle", image.Pt(400, lay.thumbStrip.Min.Y+10), false},
		{"zoom toggle on the close button", "zoom_toggle", lay.closeRect.Min.Add(image.Pt(5, 5)), false},
		{"wheel navigation anywhere", "next", image.Pt(10, 10), true},
		{"wheel zoom anywhere", "zoom_in", lay.prevRect.Min.Add(image.Pt(5, 5)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mouseActionAllowed(tt.action, tt.pt, lay); got != tt.allowed {
				t.Errorf("mouseActionAllowed(%q, %v) = %v, want %v", tt.action, tt.pt, got, tt.allowed)
			}
		})
	}
}
