package diagnostics

import "sync"

// Sink receives diagnostics.
// Implementations must be safe for concurrent use when the reducer that
// reports to them is dispatched from several goroutines.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// Nop discards every diagnostic.
var Nop Sink = SinkFunc(func(Diagnostic) {})

type multiSink []Sink

// Multi fans a diagnostic out to every non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}

// Recorder keeps every diagnostic it receives in memory.
type Recorder struct {
	mu      sync.RWMutex
	entries []Diagnostic
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report records d.
func (r *Recorder) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, d)
}

// All returns a copy of the recorded diagnostics in arrival order.
func (r *Recorder) All() []Diagnostic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Diagnostic, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByKind returns the recorded diagnostics of the given kind.
func (r *Recorder) ByKind(kind Kind) []Diagnostic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Diagnostic
	for _, d := range r.entries {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Codes returns the codes of the recorded diagnostics in arrival order.
func (r *Recorder) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for _, d := range r.entries {
		out = append(out, d.Code)
	}
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
