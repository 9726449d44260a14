// Package transcript accumulates speech-recognition fragments into a single
// running answer while a recording session is active.
//
// The external speech source delivers fragments in order, each tagged as
// interim (provisional, may change) or final (settled). Only final fragments
// contribute to the answer; the latest interim is exposed separately as a
// live preview.
package transcript

import (
	"strings"
	"sync"
	"time"
)

// Fragment is one unit of recognized speech from the speech source.
type Fragment struct {
	// Text is the recognized speech content.
	Text string `json:"text"`

	// Final indicates whether this fragment is settled. Interim fragments
	// are preview-only and never part of the accumulated answer.
	Final bool `json:"final"`

	// ReceivedAt records when the fragment arrived.
	ReceivedAt time.Time `json:"received_at"`
}

// Accumulator merges an ordered sequence of fragments into the current
// answer. Final fragments are space-joined in arrival order; interim
// fragments only replace the live preview. All methods are safe for
// concurrent use.
type Accumulator struct {
	mu      sync.RWMutex
	finals  []string
	interim string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add applies one fragment. A final fragment is appended to the answer and
// clears the preview it supersedes; an interim fragment replaces the preview.
func (a *Accumulator) Add(f Fragment) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if f.Final {
		a.finals = append(a.finals, f.Text)
		a.interim = ""
		return
	}
	a.interim = f.Text
}

// Answer returns the concatenation of all final fragments in arrival order,
// joined by a single space.
func (a *Accumulator) Answer() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return strings.Join(a.finals, " ")
}

// Interim returns the latest interim fragment, or "" when the most recent
// fragment was final.
func (a *Accumulator) Interim() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.interim
}

// Reset discards all accumulated state before recording resumes.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.finals = nil
	a.interim = ""
}
