// Package render draws dashboard views as terminal text.
package render

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width can't be detected.
const DefaultWidth = 80

// Region is a block of rendered text that views replace as a whole.
// Safe for concurrent use.
type Region struct {
	m       sync.RWMutex
	content string
	width   int
}

// NewRegion creates new Region instance with given width in columns.
func NewRegion(width int) *Region {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Region{width: width}
}

// Replace sets region contents.
func (r *Region) Replace(content string) {
	r.m.Lock()
	defer r.m.Unlock()
	r.content = content
}

// Clear empties the region.
func (r *Region) Clear() {
	r.Replace("")
}

// String returns current contents.
func (r *Region) String() string {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.content
}

// Width returns width available for drawing.
func (r *Region) Width() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.width
}

// SetWidth changes the width used by subsequent renders.
func (r *Region) SetWidth(width int) {
	if width <= 0 {
		return
	}
	r.m.Lock()
	defer r.m.Unlock()
	r.width = width
}

// TerminalWidth returns override if positive, otherwise the width of stdout,
// falling back to DefaultWidth when it can't be detected.
func TerminalWidth(override int) int {
	if override > 0 {
		return override
	}

	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
