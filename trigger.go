package main

import (
	"encoding/json"
	"errors"
	"image"
	"log"
)

// Trigger is a clickable photo tile on the browse surface. Payload is a
// JSON-encoded list of image refs for the whole set the tile belongs
// to; Ref is the tile's own image ref, used as a fallback when the
// payload cannot be parsed.
type Trigger struct {
	Bounds  image.Rectangle
	Index   int
	Payload string
	Ref     string
}

// TriggerRegistry holds the triggers of the current frame. The browse
// surface rebuilds it whenever its layout changes, so stale geometry
// never receives clicks.
type TriggerRegistry struct {
	triggers []Trigger
}

// NewTriggerRegistry creates an empty registry.
func NewTriggerRegistry() *TriggerRegistry {
	return &TriggerRegistry{}
}

// Reset drops all registered triggers.
func (tr *TriggerRegistry) Reset() {
	tr.triggers = tr.triggers[:0]
}

// Add registers a trigger.
func (tr *TriggerRegistry) Add(t Trigger) {
	tr.triggers = append(tr.triggers, t)
}

// Triggers returns the registered triggers in registration order.
func (tr *TriggerRegistry) Triggers() []Trigger {
	return tr.triggers
}

// HitTest returns the topmost trigger containing the point. Later
// registrations win, matching draw order.
func (tr *TriggerRegistry) HitTest(pt image.Point) (Trigger, bool) {
	for i := len(tr.triggers) - 1; i >= 0; i-- {
		if pt.In(tr.triggers[i].Bounds) {
			return tr.triggers[i], true
		}
	}
	return Trigger{}, false
}

var errNoImages = errors.New("no usable image refs among triggers")

// resolveTriggerImages produces the image list and start index for a
// clicked trigger. The primary source is the clicked trigger's JSON
// payload. If that payload is malformed, the sibling triggers' own refs
// are collected instead and the start index becomes the clicked tile's
// position among them. Only when both sources are empty does the open
// fail.
func resolveTriggerImages(all []Trigger, clicked Trigger) ([]string, int, error) {
	var images []string
	if err := json.Unmarshal([]byte(clicked.Payload), &images); err == nil && len(images) > 0 {
		start := clicked.Index
		if start < 0 || start >= len(images) {
			start = 0
		}
		return images, start, nil
	} else if err != nil {
		log.Printf("Warning: malformed trigger payload, falling back to sibling refs: %v", err)
	}

	start := 0
	images = images[:0]
	for _, t := range all {
		if t.Ref == "" {
			continue
		}
		if t.Bounds == clicked.Bounds && t.Ref == clicked.Ref {
			start = len(images)
		}
		images = append(images, t.Ref)
	}
	if len(images) == 0 {
		return nil, 0, errNoImages
	}
	return images, start, nil
}
