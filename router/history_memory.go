package router

import "sync"

// MemoryHistory keeps history entries in memory. It backs native builds and
// tests; Back and Forward behave like the browser buttons and notify listeners.
type MemoryHistory struct {
	mu        sync.Mutex
	mode      Mode
	base      string
	entries   []string
	index     int
	listeners map[int]func(string)
	nextID    int
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history whose single entry is initial.
func NewMemoryHistory(mode Mode, base, initial string) *MemoryHistory {
	return &MemoryHistory{
		mode:      mode,
		base:      base,
		entries:   []string{normalizePath(initial)},
		listeners: make(map[int]func(string)),
	}
}

func (h *MemoryHistory) Mode() Mode {
	return h.mode
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push drops any forward entries and appends path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], normalizePath(path))
	h.index = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = normalizePath(path)
}

func (h *MemoryHistory) Listen(fn func(path string)) (stop func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

func (h *MemoryHistory) Href(path string) string {
	return Href(h.mode, h.base, path)
}

// Back moves one entry back and notifies listeners. It reports false at the start.
func (h *MemoryHistory) Back() bool {
	return h.traverse(-1)
}

// Forward moves one entry forward and notifies listeners. It reports false at the end.
func (h *MemoryHistory) Forward() bool {
	return h.traverse(1)
}

func (h *MemoryHistory) traverse(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	path := h.entries[next]
	fns := make([]func(string), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
	return true
}

// Entries returns the stack of application paths.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// URLs returns the stack as it would appear in the address bar.
func (h *MemoryHistory) URLs() []string {
	entries := h.Entries()
	out := make([]string, len(entries))
	for i, p := range entries {
		out[i] = h.Href(p)
	}
	return out
}
