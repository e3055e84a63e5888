package main

import (
	"reflect"
	"testing"
)

func getTestPhotoRefs() []string {
	return []string{
		"fotos/photo_10.jpg",
		"fotos/photo_2.jpg",
		"fotos/photo_01.jpg",
		"fotos/photo_9.jpg",
	}
}

func TestNaturalOrder(t *testing.T) {
	strategy := &NaturalOrder{}

	t.Run("Name", func(t *testing.T) {
		if strategy.Name() != "Natural" {
			t.Errorf("Expected 'Natural', got '%s'", strategy.Name())
		}
	})

	t.Run("ID", func(t *testing.T) {
		if strategy.ID() != SortNatural {
			t.Errorf("Expected %d, got %d", SortNatural, strategy.ID())
		}
	})

	t.Run("Sort", func(t *testing.T) {
		expected := []string{
			"fotos/photo_01.jpg",
			"fotos/photo_2.jpg",
			"fotos/photo_9.jpg",
			"fotos/photo_10.jpg",
		}
		result := strategy.Sort(getTestPhotoRefs())
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Natural sort failed\nExpected: %v\nGot:      %v", expected, result)
		}
	})

	t.Run("ImmutableInput", func(t *testing.T) {
		input := getTestPhotoRefs()
		original := make([]string, len(input))
		copy(original, input)

		_ = strategy.Sort(input)

		if !reflect.DeepEqual(input, original) {
			t.Error("Input slice was modified - should be immutable")
		}
	})

	t.Run("EmptySlice", func(t *testing.T) {
		if result := strategy.Sort(nil); len(result) != 0 {
			t.Errorf("Expected empty slice, got %v", result)
		}
	})
}

func TestLexicalOrder(t *testing.T) {
	strategy := &LexicalOrder{}

	t.Run("Name", func(t *testing.T) {
		if strategy.Name() != "Lexical" {
			t.Errorf("Expected 'Lexical', got '%s'", strategy.Name())
		}
	})

	t.Run("Sort", func(t *testing.T) {
		expected := []string{
			"fotos/photo_01.jpg",
			"fotos/photo_10.jpg",
			"fotos/photo_2.jpg",
			"fotos/photo_9.jpg",
		}
		result := strategy.Sort(getTestPhotoRefs())
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Lexical sort failed\nExpected: %v\nGot:      %v", expected, result)
		}
	})
}

func TestEntryOrder(t *testing.T) {
	strategy := &EntryOrder{}

	t.Run("Name", func(t *testing.T) {
		if strategy.Name() != "Entry Order" {
			t.Errorf("Expected 'Entry Order', got '%s'", strategy.Name())
		}
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		input := getTestPhotoRefs()
		result := strategy.Sort(input)
		if !reflect.DeepEqual(result, input) {
			t.Errorf("Entry order should preserve input: %v", result)
		}
	})
}

func TestGetPhotoOrder(t *testing.T) {
	tests := []struct {
		name       string
		sortMethod int
		expected   string
	}{
		{"natural", SortNatural, "Natural"},
		{"lexical", SortLexical, "Lexical"},
		{"entry order", SortEntryOrder, "Entry Order"},
		{"unknown falls back to natural", 99, "Natural"},
		{"negative falls back to natural", -1, "Natural"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetPhotoOrder(tt.sortMethod).Name(); got != tt.expected {
				t.Errorf("GetPhotoOrder(%d).Name() = %q, want %q", tt.sortMethod, got, tt.expected)
			}
		})
	}
}

func TestIsSupportedExt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"PNG file", "test.png", true},
		{"JPG file", "test.jpg", true},
		{"JPEG file", "test.jpeg", true},
		{"WebP file", "test.webp", true},
		{"BMP file", "test.bmp", true},
		{"GIF file", "test.gif", true},
		{"PNG uppercase", "test.PNG", true},
		{"Text file", "test.txt", false},
		{"No extension", "test", false},
		{"Empty string", "", false},
		{"Multiple dots", "test.backup.jpg", true},
		{"Path with directory", "/path/to/test.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSupportedExt(tt.path); got != tt.expected {
				t.Errorf("isSupportedExt(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsArchiveExt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"zip", "fotos.zip", true},
		{"rar", "fotos.rar", true},
		{"7z", "fotos.7z", true},
		{"zip uppercase", "FOTOS.ZIP", true},
		{"image", "foto.jpg", false},
		{"no extension", "fotos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isArchiveExt(tt.path); got != tt.expected {
				t.Errorf("isArchiveExt(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
