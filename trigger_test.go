package main

import (
	"image"
	"testing"
)

func TestTriggerRegistryHitTest(t *testing.T) {
	tr := NewTriggerRegistry()
	tr.Add(Trigger{Bounds: image.Rect(0, 0, 100, 100), Index: 0, Ref: "a.jpg"})
	tr.Add(Trigger{Bounds: image.Rect(50, 50, 150, 150), Index: 1, Ref: "b.jpg"})

	t.Run("hit", func(t *testing.T) {
		got, ok := tr.HitTest(image.Pt(10, 10))
		if !ok || got.Index != 0 {
			t.Errorf("HitTest(10,10) = (%v, %v), want trigger 0", got.Index, ok)
		}
	})

	t.Run("overlap resolves to topmost", func(t *testing.T) {
		got, ok := tr.HitTest(image.Pt(75, 75))
		if !ok || got.Index != 1 {
			t.Errorf("HitTest(75,75) = (%v, %v), want trigger 1", got.Index, ok)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if _, ok := tr.HitTest(image.Pt(300, 300)); ok {
			t.Error("HitTest outside all triggers should miss")
		}
	})

	t.Run("reset clears", func(t *testing.T) {
		tr.Reset()
		if _, ok := tr.HitTest(image.Pt(10, 10)); ok {
			t.Error("HitTest after Reset should miss")
		}
	})
}

func TestResolveTriggerImages(t *testing.T) {
	t.Run("payload wins", func(t *testing.T) {
		clicked := Trigger{Index: 1, Payload: `["a.jpg","b.jpg","c.jpg"]`, Ref: "b.jpg"}
		images, start, err := resolveTriggerImages([]Trigger{clicked}, clicked)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images) != 3 || images[1] != "b.jpg" {
			t.Errorf("images = %v", images)
		}
		if start != 1 {
			t.Errorf("start = %d, want 1", start)
		}
	})

	t.Run("out of range payload index falls back to first", func(t *testing.T) {
		clicked := Trigger{Index: 9, Payload: `["a.jpg","b.jpg"]`}
		_, start, err := resolveTriggerImages([]Trigger{clicked}, clicked)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start != 0 {
			t.Errorf("start = %d, want 0", start)
		}
	})

	t.Run("malformed payload falls back to sibling refs", func(t *testing.T) {
		all := []Trigger{
			{Bounds: image.Rect(0, 0, 10, 10), Index: 0, Payload: "{broken", Ref: "a.jpg"},
			{Bounds: image.Rect(10, 0, 20, 10), Index: 1, Payload: "{broken", Ref: "b.jpg"},
			{Bounds: image.Rect(20, 0, 30, 10), Index: 2, Payload: "{broken", Ref: "c.jpg"},
		}
		images, start, err := resolveTriggerImages(all, all[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images) != 3 || images[0] != "a.jpg" || images[2] != "c.jpg" {
			t.Errorf("images = %v", images)
		}
		if start != 1 {
			t.Errorf("start = %d, want 1", start)
		}
	})

	t.Run("fallback skips empty refs", func(t *testing.T) {
		all := []Trigger{
			{Bounds: image.Rect(0, 0, 10, 10), Index: 0, Payload: "nope", Ref: ""},
			{Bounds: image.Rect(10, 0, 20, 10), Index: 1, Payload: "nope", Ref: "b.jpg"},
		}
		images, start, err := resolveTriggerImages(all, all[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images) != 1 || images[0] != "b.jpg" {
			t.Errorf("images = %v", images)
		}
		if start != 0 {
			t.Errorf("start = %d, want 0", start)
		}
	})

	t.Run("nothing usable errors", func(t *testing.T) {
		clicked := Trigger{Payload: "nope", Ref: ""}
		if _, _, err := resolveTriggerImages([]Trigger{clicked}, clicked); err == nil {
			t.Error("expected an error when no source yields images")
		}
	})

	t.Run("empty payload list falls back", func(t *testing.T) {
		clicked := Trigger{Index: 0, Payload: `[]`, Ref: "a.jpg"}
		images, _, err := resolveTriggerImages([]Trigger{clicked}, clicked)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images) != 1 || images[0] != "a.jpg" {
			t.Errorf("images = %v", images)
		}
	})
}
