package main

import (
	"fmt"
	"path/filepath"
	"testing"
)

func newTestApp(t *testing.T, refs []string) *App {
	t.Helper()

	manager := NewImageManager(8, false)
	t.Cleanup(manager.StopPreload)

	gallery := NewGallery(manager, NewLiveRegion())
	renderer := NewRenderer(gallery, manager, 16)
	configResult := loadConfigFromPath(filepath.Join(t.TempDir(), "missing.json"))

	app := NewApp(nil, gallery, renderer, nil, manager, configResult)
	if len(refs) > 0 {
		gallery.Open(refs, 0)
	}
	return app
}

func TestWarmThumbStrip(t *testing.T) {
	refs := make([]string, 30)
	for i := range refs {
		refs[i] = fmt.Sprintf("missing_%02d.jpg", i)
	}

	t.Run("requests refs inside the strip", func(t *testing.T) {
		app := newTestApp(t, refs)
		lay := computeOverlayLayout(app.width, app.height, app.gallery.Count())

		app.warmThumbStrip(lay)

		visible := visibleThumbs(lay, app.gallery.Count(), app.gallery.ThumbScroll())
		if len(visible) == 0 {
			t.Fatal("expected visible thumbnails")
		}
		for _, i := range visible {
			if !app.warmRequested[refs[i]] {
				t.Errorf("ref %d is in the strip but was not requested", i)
			}
		}
		if app.warmRequested[refs[29]] {
			t.Error("off-strip ref should not be requested")
		}
	})

	t.Run("requests are not repeated", func(t *testing.T) {
		app := newTestApp(t, refs)
		lay := computeOverlayLayout(app.width, app.height, app.gallery.Count())

		app.warmThumbStrip(lay)
		before := len(app.warmRequested)
		app.warmThumbStrip(lay)
		if len(app.warmRequested) != before {
			t.Errorf("repeat pass grew the request set from %d to %d", before, len(app.warmRequested))
		}
	})

	t.Run("no warming without chrome", func(t *testing.T) {
		app := newTestApp(t, refs[:1])
		lay := computeOverlayLayout(app.width, app.height, app.gallery.Count())

		app.warmThumbStrip(lay)
		if len(app.warmRequested) != 0 {
			t.Errorf("single-image overlay warmed %d refs, want 0", len(app.warmRequested))
		}
	})
}
