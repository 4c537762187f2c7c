package palette

import (
	"log/slog"
	"sync"
)

// DefaultColors returns the 8-color palette every Store starts with:
// black, white, red, green, blue, yellow, magenta, cyan.
func DefaultColors() []Color {
	return []Color{
		{R: 0, G: 0, B: 0},       // Black
		{R: 255, G: 255, B: 255}, // White
		{R: 255, G: 0, B: 0},     // Red
		{R: 0, G: 255, B: 0},     // Green
		{R: 0, G: 0, B: 255},     // Blue
		{R: 255, G: 255, B: 0},   // Yellow
		{R: 255, G: 0, B: 255},   // Magenta
		{R: 0, G: 255, B: 255},   // Cyan
	}
}

// Store holds the currently active palette used for quantization.
//
// A Store is safe for concurrent use by multiple goroutines: Nearest takes a
// read lock so lookups never block each other, while SetActive takes the
// write lock and replaces the palette wholesale. Multiple pipelines may share
// one Store.
type Store struct {
	mu     sync.RWMutex
	colors []Color
}

// NewStore creates a Store seeded with the default 8-color palette.
func NewStore() *Store {
	return &Store{colors: DefaultColors()}
}

// SetActive replaces the active palette atomically. The slice is copied, so
// the caller may reuse it afterwards.
//
// An empty palette would make quantization meaningless, so it is rejected
// with a warning and the current palette stays in effect.
func (s *Store) SetActive(colors []Color) {
	if len(colors) == 0 {
		slog.Warn("refusing to activate empty palette, keeping current palette")
		return
	}
	s.mu.Lock()
	s.colors = append([]Color(nil), colors...)
	s.mu.Unlock()
}

// Nearest returns the active-palette entry with the minimum Distance to c.
// Ties are resolved to the entry that appears first in palette order, so the
// result is deterministic for a given palette.
//
// If the active palette is somehow empty, c is returned unchanged and a
// warning is emitted rather than failing the caller.
func (s *Store) Nearest(c Color) Color {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.colors) == 0 {
		slog.Warn("active palette is empty, passing color through unchanged")
		return c
	}

	best := s.colors[0]
	bestDist := Distance(c, best)
	for _, pc := range s.colors[1:] {
		if d := Distance(c, pc); d < bestDist {
			best = pc
			bestDist = d
		}
	}
	return best
}

// Colors returns a snapshot copy of the active palette.
func (s *Store) Colors() []Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Color(nil), s.colors...)
}
