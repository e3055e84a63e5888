package main

import "testing"

func TestActionDescriptions(t *testing.T) {
	descriptions := GetActionDescriptions()
	if len(descriptions) != len(actionDefinitions) {
		t.Fatalf("got %d descriptions, want %d", len(descriptions), len(actionDefinitions))
	}
	for _, def := range actionDefinitions {
		if descriptions[def.Name] == "" {
			t.Errorf("action %q has no description", def.Name)
		}
	}
}
