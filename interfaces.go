package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GalleryView provides read-only access to gallery state for the renderer
type GalleryView interface {
	IsOpen() bool
	Count() int
	CurrentIndex() int

	Scale() float64
	Pan() (float64, float64)
	IsZoomed() bool

	IsLoading() bool
	IsPlaceholder() bool
	DisplayImage() *ebiten.Image
	DisplayAlt() string

	CounterText() string
	ChromeVisible() bool
	ThumbScroll() float64
	ImageRef(i int) (string, bool)
}

// GalleryActions provides action methods for the input layer
type GalleryActions interface {
	// Navigation
	Next()
	Previous()
	GoTo(index int)
	JumpFirst()
	JumpLast()

	// Zoom and pan
	ZoomIn()
	ZoomOut()
	ResetZoom()
	ToggleZoom()
	SetZoom(scale float64)
	PanBy(dx, dy float64)

	// Lifecycle
	Dismiss()
	Close()
	ToggleFullscreen()

	// Common data access
	Count() int
	CurrentIndex() int
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsOpen() bool
	IsZoomed() bool
	Scale() float64
}
