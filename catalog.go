package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Property is one catalog listing. Photos come from one of three
// sources, checked in order: an explicit image list, a directory to
// scan, or an archive bundle.
type Property struct {
	Title           string   `json:"title"`
	PropertyType    string   `json:"property_type"`
	Neighborhood    string   `json:"neighborhood"`
	City            string   `json:"city"`
	Price           float64  `json:"price"`
	TransactionType string   `json:"transaction_type"`
	Images          []string `json:"images,omitempty"`
	PhotoDir        string   `json:"photo_dir,omitempty"`
	PhotoBundle     string   `json:"photo_bundle,omitempty"`
}

// LoadCatalog reads a JSON array of properties from disk.
func LoadCatalog(path string) ([]Property, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var properties []Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return properties, nil
}

// ResolvePhotos returns the property's image refs in display order.
// Explicit lists are kept in catalog order; scanned sources are sorted
// by the given method.
func (p *Property) ResolvePhotos(sortMethod int) ([]string, error) {
	if len(p.Images) > 0 {
		return p.Images, nil
	}
	if p.PhotoDir != "" {
		return collectPhotosFromDir(p.PhotoDir, sortMethod)
	}
	if p.PhotoBundle != "" {
		return collectPhotosFromBundle(p.PhotoBundle, sortMethod)
	}
	return nil, fmt.Errorf("property %q has no photo source", p.Title)
}

// FormatPrice renders a price the way the listings do: millions as
// "R$ 1.2M", thousands as "R$ 850k", anything smaller in full.
func FormatPrice(price float64) string {
	switch {
	case price >= 1_000_000:
		return fmt.Sprintf("R$ %.1fM", price/1_000_000)
	case price >= 1_000:
		return fmt.Sprintf("R$ %.0fk", price/1_000)
	default:
		return fmt.Sprintf("R$ %.0f", price)
	}
}

// Headline builds the browse-surface title line for a property.
func (p *Property) Headline() string {
	location := p.Neighborhood
	if p.City != "" {
		if location != "" {
			location += ", "
		}
		location += p.City
	}
	if location == "" {
		return p.Title
	}
	return fmt.Sprintf("%s, %s", p.Title, location)
}
