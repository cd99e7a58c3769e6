// Package imagecache caches decoded frame and page images so that a
// review pass over a video reads each file from disk at most once.
package imagecache

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Cache stores decoded images keyed by file path. It is safe for
// concurrent use. Cached images stay in memory until Clear is called, so
// long review runs should clear the cache between videos.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// New returns an empty cache ready for use.
func New() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Load returns the image at path, decoding it from disk only on the
// first call. Different path spellings of the same file are cached
// separately.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear drops every cached image, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}
