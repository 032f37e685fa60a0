package status

import (
	"sync/atomic"
)

// MaxLabelLen caps stored labels so the status bar layout stays bounded
const MaxLabelLen = 24

// Label is an atomic short string; the zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxLabelLen bytes
func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

// Load returns the label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
