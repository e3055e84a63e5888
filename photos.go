package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/maruel/natural"
	"github.com/nwaples/rardecode"
)

// Sort method identifiers for config storage
const (
	SortNatural    = 0
	SortLexical    = 1
	SortEntryOrder = 2
)

// PhotoOrder defines the interface for photo ordering strategies
type PhotoOrder interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(refs []string) []string
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// NaturalOrder sorts numerically-named photos the way a person expects,
// so photo_2 comes before photo_10.
type NaturalOrder struct{}

func (s *NaturalOrder) Sort(refs []string) []string {
	result := make([]string, len(refs))
	copy(result, refs)
	sort.Slice(result, func(i, j int) bool {
		return natural.Less(result[i], result[j])
	})
	return result
}

func (s *NaturalOrder) Name() string { return "Natural" }
func (s *NaturalOrder) ID() int      { return SortNatural }

// LexicalOrder sorts by plain string comparison
type LexicalOrder struct{}

func (s *LexicalOrder) Sort(refs []string) []string {
	result := make([]string, len(refs))
	copy(result, refs)
	sort.Strings(result)
	return result
}

func (s *LexicalOrder) Name() string { return "Lexical" }
func (s *LexicalOrder) ID() int      { return SortLexical }

// EntryOrder preserves the order the source produced
type EntryOrder struct{}

func (s *EntryOrder) Sort(refs []string) []string {
	result := make([]string, len(refs))
	copy(result, refs)
	return result
}

func (s *EntryOrder) Name() string { return "Entry Order" }
func (s *EntryOrder) ID() int      { return SortEntryOrder }

// GetPhotoOrder returns the strategy for the given sort method ID
func GetPhotoOrder(sortMethod int) PhotoOrder {
	switch sortMethod {
	case SortNatural:
		return &NaturalOrder{}
	case SortLexical:
		return &LexicalOrder{}
	case SortEntryOrder:
		return &EntryOrder{}
	default:
		return &NaturalOrder{}
	}
}

func isSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return true
	}
	return false
}

func isArchiveExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip", ".rar", ".7z":
		return true
	}
	return false
}

// collectPhotosFromDir scans a directory (non-recursive) for supported
// image files and orders them.
func collectPhotosFromDir(dir string, sortMethod int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo directory: %w", err)
	}

	var refs []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		refs = append(refs, filepath.Join(dir, e.Name()))
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}
	return GetPhotoOrder(sortMethod).Sort(refs), nil
}

// collectPhotosFromBundle lists the supported image entries of an
// archive and returns them as "archive:entry" refs, ordered.
func collectPhotosFromBundle(archivePath string, sortMethod int) ([]string, error) {
	var entries []string
	var err error

	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip":
		entries, err = listZipEntries(archivePath)
	case ".rar":
		entries, err = listRarEntries(archivePath)
	case ".7z":
		entries, err = list7zEntries(archivePath)
	default:
		return nil, fmt.Errorf("unsupported bundle format: %s", archivePath)
	}
	if err != nil {
		return nil, err
	}

	entries = GetPhotoOrder(sortMethod).Sort(entries)
	refs := make([]string, 0, len(entries))
	for _, entry := range entries {
		refs = append(refs, archivePath+":"+entry)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("no images found in %s", archivePath)
	}
	return refs, nil
}

func listZipEntries(archivePath string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			entries = append(entries, f.Name)
		}
	}
	return entries, nil
}

func listRarEntries(archivePath string) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var entries []string
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && isSupportedExt(header.Name) {
			entries = append(entries, header.Name)
		}
	}
	return entries, nil
}

func list7zEntries(archivePath string) ([]string, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			entries = append(entries, f.Name)
		}
	}
	return entries, nil
}
