package pagetools

import (
	"sync"

	"github.com/s2wiki/pagetools/pkg/pages"
)

// Hook function types for generation events
type (
	// DocumentWrittenHook is called after a document file was written.
	DocumentWrittenHook func(path string, doc *pages.Document)

	// RegeneratedHook is called after every watch triggered run with its
	// result or error.
	RegeneratedHook func(result *Result, err error)
)

// hooks manages event callbacks
type hooks struct {
	mu                sync.RWMutex
	onDocumentWritten []DocumentWrittenHook
	onRegenerated     []RegeneratedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnDocumentWritten registers a callback for written documents
func (h *hooks) OnDocumentWritten(fn DocumentWrittenHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDocumentWritten = append(h.onDocumentWritten, fn)
}

// OnRegenerated registers a callback for watch triggered runs
func (h *hooks) OnRegenerated(fn RegeneratedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRegenerated = append(h.onRegenerated, fn)
}

func (h *hooks) documentWritten(path string, doc *pages.Document) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onDocumentWritten {
		fn(path, doc)
	}
}

func (h *hooks) regenerated(result *Result, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onRegenerated {
		fn(result, err)
	}
}
