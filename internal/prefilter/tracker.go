package prefilter

// Tracker wraps a Prefilter with effectiveness tracking: if too many
// candidates it reports turn out not to be real matches, it disables
// itself so the caller falls back to scanning with the DFA directly
// instead of paying for a prefilter that isn't earning its keep.
type Tracker struct {
	inner Prefilter

	candidates uint64
	confirms   uint64

	checkInterval  uint64
	minEfficiency  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig configures the effectiveness tracker.
type TrackerConfig struct {
	CheckInterval uint64
	MinEfficiency float64
	WarmupPeriod  uint64
}

// DefaultTrackerConfig returns the default tuning: check every 64
// candidates, disable below 10% efficiency, after a 128-candidate warmup.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{CheckInterval: 64, MinEfficiency: 0.1, WarmupPeriod: 128}
}

// NewTracker wraps inner with the default tracker config. Returns nil if
// inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with a custom tracker config.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate, or -1 if none remain or the prefilter
// has been disabled.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.checkEffectiveness()
	}
	return pos
}

// ConfirmMatch records that the most recent candidate was a real match.
// Call this after the caller's DFA verification succeeds.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive reports whether the prefilter is still in use.
func (t *Tracker) IsActive() bool {
	return t.active
}

// HeapBytes returns the inner prefilter's heap footprint.
func (t *Tracker) HeapBytes() int {
	return t.inner.HeapBytes()
}

// Stats returns the raw counters and derived efficiency.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	candidates = t.candidates
	confirms = t.confirms
	if candidates > 0 {
		efficiency = float64(confirms) / float64(candidates)
	}
	active = t.active
	return
}

// Reset clears statistics and re-enables the prefilter, for reuse across
// searches.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	t.active = true
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	efficiency := float64(t.confirms) / float64(t.candidates)
	if efficiency < t.minEfficiency {
		t.active = false
	}
}
