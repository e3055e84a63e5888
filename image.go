package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bodgit/sevenzip"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// imageRef is the parsed form of an opaque image reference string:
// either a plain file path or an "archive.ext:entry" pair.
type imageRef struct {
	Path    string // original reference
	Archive string // empty for plain files
	Entry   string // empty for plain files
}

// parseRef splits an image reference into its file or archive form.
func parseRef(ref string) imageRef {
	lower := strings.ToLower(ref)
	for _, marker := range []string{".zip:", ".rar:", ".7z:"} {
		if i := strings.Index(lower, marker); i >= 0 {
			return imageRef{
				Path:    ref,
				Archive: ref[:i+len(marker)-1],
				Entry:   ref[i+len(marker):],
			}
		}
	}
	return imageRef{Path: ref}
}

// PreloadRequest asks the worker to warm the cache around an index.
type PreloadRequest struct {
	Index int
}

// PreloadStats provides statistics about preloading.
type PreloadStats struct {
	QueueSize   int
	LoadedCount int
	FailedCount int
}

// ImageManager loads images by reference and keeps recently used ones in
// an LRU cache. The cache is a performance layer only: it may be purged
// at any time without correctness loss.
type ImageManager struct {
	mu    sync.RWMutex
	refs  []string
	cache *lru.Cache[string, *ebiten.Image]

	requestChan chan PreloadRequest
	ctx         context.Context
	cancel      context.CancelFunc

	statsMu sync.Mutex
	stats   PreloadStats

	preloadEnabled bool
}

// NewImageManager creates an ImageManager with the given cache size and
// starts the preload worker.
func NewImageManager(cacheSize int, preloadEnabled bool) *ImageManager {
	cache, err := lru.NewWithEvict[string, *ebiten.Image](cacheSize, func(_ string, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	})
	if err != nil {
		// Only possible with a non-positive size.
		cache, _ = lru.NewWithEvict[string, *ebiten.Image](16, func(_ string, img *ebiten.Image) {
			if img != nil {
				img.Deallocate()
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &ImageManager{
		cache:          cache,
		requestChan:    make(chan PreloadRequest, 100),
		ctx:            ctx,
		cancel:         cancel,
		preloadEnabled: preloadEnabled,
	}
	go m.worker()
	return m
}

// SetRefs replaces the reference list. Cache entries are keyed by
// reference, so overlapping lists keep their warm entries.
func (m *ImageManager) SetRefs(refs []string) {
	m.mu.Lock()
	m.refs = make([]string, len(refs))
	copy(m.refs, refs)
	m.mu.Unlock()
	debugLog("SetRefs: %d refs, cache preserved (%d items)", len(refs), m.cache.Len())
}

func (m *ImageManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.refs)
}

func (m *ImageManager) ref(idx int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if idx < 0 || idx >= len(m.refs) {
		return "", false
	}
	return m.refs[idx], true
}

// Cached returns the cached image for a reference, if present.
func (m *ImageManager) Cached(ref string) (*ebiten.Image, bool) {
	return m.cache.Get(ref)
}

// CacheLen returns the number of cached images.
func (m *ImageManager) CacheLen() int {
	return m.cache.Len()
}

// Fetch returns the image for a reference, loading and caching it on a
// miss. Safe to call from worker goroutines.
func (m *ImageManager) Fetch(ref string) (*ebiten.Image, error) {
	if img, ok := m.cache.Get(ref); ok {
		debugLog("cache HIT: %s (cache: %d items)", ref, m.cache.Len())
		return img, nil
	}
	img, err := loadImage(parseRef(ref))
	if err != nil {
		return nil, err
	}
	m.cache.Add(ref, img)
	debugLog("cache MISS: %s, loaded and cached (cache: %d items)", ref, m.cache.Len())
	return img, nil
}

// PurgeCache drops every cached texture. Called on gallery close.
func (m *ImageManager) PurgeCache() {
	m.cache.Purge()
	debugLog("image cache purged")
}

// StartPreload warms the cache for the neighbors of idx. Pending
// requests are dropped first so rapid navigation only preloads around
// the latest position.
func (m *ImageManager) StartPreload(idx int) {
	if !m.preloadEnabled {
		return
	}
drain:
	for {
		select {
		case <-m.requestChan:
		default:
			break drain
		}
	}
	select {
	case m.requestChan <- PreloadRequest{Index: idx}:
	default:
		debugLog("preload request channel full, skipping")
	}
}

// StopPreload shuts the worker down.
func (m *ImageManager) StopPreload() {
	m.cancel()
}

// GetPreloadStats returns a snapshot of the preload counters.
func (m *ImageManager) GetPreloadStats() PreloadStats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	s := m.stats
	s.QueueSize = len(m.requestChan)
	return s
}

func (m *ImageManager) worker() {
	for {
		select {
		case <-m.ctx.Done():
			return
		case req := <-m.requestChan:
			m.processPreload(req)
		}
	}
}

// processPreload loads the immediate neighbors of the requested index,
// filtered to the valid range. Failures are counted and skipped; a
// preload must never block or break navigation.
func (m *ImageManager) processPreload(req PreloadRequest) {
	for _, idx := range []int{req.Index - 1, req.Index + 1} {
		select {
		case <-m.ctx.Done():
			return
		default:
		}
		ref, ok := m.ref(idx)
		if !ok {
			continue
		}
		if _, ok := m.cache.Get(ref); ok {
			continue
		}
		img, err := loadImage(parseRef(ref))
		if err != nil {
			m.statsMu.Lock()
			m.stats.FailedCount++
			m.statsMu.Unlock()
			debugLog("preload failed for [%d] %s: %v", idx+1, ref, err)
			continue
		}
		m.cache.Add(ref, img)
		m.statsMu.Lock()
		m.stats.LoadedCount++
		m.statsMu.Unlock()
		debugLog("preloaded [%d] %s (cache: %d items)", idx+1, ref, m.cache.Len())
	}
}

// Image loading functions

func loadImageFromBytes(data []byte, path string) (*ebiten.Image, error) {
	reader := bytes.NewReader(data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %v", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadImageFromZip(archivePath, entryPath string) (*ebiten.Image, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, err
			}

			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func loadImageFromRar(archivePath, entryPath string) (*ebiten.Image, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if header.Name == entryPath {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func loadImageFrom7z(archivePath, entryPath string) (*ebiten.Image, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, err
			}

			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func loadImage(ref imageRef) (*ebiten.Image, error) {
	if ref.Archive == "" {
		f, err := os.Open(ref.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %v", ref.Path, err)
		}
		return ebiten.NewImageFromImage(img), nil
	}

	ext := strings.ToLower(ref.Archive[strings.LastIndex(ref.Archive, "."):])
	switch ext {
	case ".zip":
		return loadImageFromZip(ref.Archive, ref.Entry)
	case ".rar":
		return loadImageFromRar(ref.Archive, ref.Entry)
	case ".7z":
		return loadImageFrom7z(ref.Archive, ref.Entry)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", ext)
	}
}
