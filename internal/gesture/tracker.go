package gesture

import "sync"

// State represents the tracker state
type State int

const (
	StateIdle State = iota
	StateTracking
	// StateReleasing is held only while End evaluates the gesture
	StateReleasing
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTracking:
		return "Tracking"
	case StateReleasing:
		return "Releasing"
	default:
		return "Unknown"
	}
}

// Gesture thresholds constants
const (
	// DefaultThreshold is the drag distance a release must exceed to delete a row
	DefaultThreshold float32 = 75
	// SaturationDistance is the drag distance at which a row reaches MinOpacity
	SaturationDistance float32 = 150
	// MinOpacity is the opacity floor of a dragged row
	MinOpacity float32 = 0.025
)

// Release describes a finished gesture
type Release struct {
	Key       string
	Distance  float32
	Committed bool
}

// Tracker follows at most one horizontal drag at a time
type Tracker struct {
	mu        sync.Mutex
	state     State
	key       string
	startX    float32
	currentX  float32
	threshold float32
	onCommit  func(key string)
}

// New creates a tracker that calls onCommit with the row key when a release
// crosses the threshold.
func New(onCommit func(key string)) *Tracker {
	return &Tracker{
		threshold: DefaultThreshold,
		onCommit:  onCommit,
	}
}

// State returns the current state
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Active returns the key of the tracked row
func (t *Tracker) Active() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateTracking {
		return "", false
	}
	return t.key, true
}

// Begin starts tracking the row at x. It is a no-op while another gesture is in progress.
func (t *Tracker) Begin(key string, x float32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateIdle {
		return false
	}
	t.state = StateTracking
	t.key = key
	t.startX = x
	t.currentX = x
	return true
}

// Move updates the position of the tracked row and returns its offset.
// Moves for other rows, or with nothing tracked, are ignored.
func (t *Tracker) Move(key string, x float32) (float32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateTracking || key != t.key {
		return 0, false
	}
	t.currentX = x
	return t.currentX - t.startX, true
}

// Offset returns the live drag offset of the row, 0 for rows not being dragged
func (t *Tracker) Offset(key string) float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateTracking || key != t.key {
		return 0
	}
	return t.currentX - t.startX
}

// End finishes the gesture, calls onCommit when the distance exceeds the
// threshold and always returns to Idle. With nothing tracked it is a no-op.
func (t *Tracker) End() (Release, bool) {
	t.mu.Lock()
	if t.state != StateTracking {
		t.mu.Unlock()
		return Release{}, false
	}
	t.state = StateReleasing

	distance := abs(t.currentX - t.startX)
	release := Release{
		Key:       t.key,
		Distance:  distance,
		Committed: distance > t.threshold,
	}
	t.reset()
	onCommit := t.onCommit
	t.mu.Unlock()

	if release.Committed && onCommit != nil {
		onCommit(release.Key)
	}
	return release, true
}

// Cancel drops the gesture without committing
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Tracker) reset() {
	t.state = StateIdle
	t.key = ""
	t.startX = 0
	t.currentX = 0
}

// Opacity maps a drag offset to row opacity: 1 at rest, fading linearly to
// MinOpacity at SaturationDistance.
func Opacity(offset float32) float32 {
	opacity := (SaturationDistance - abs(offset)) / SaturationDistance
	if opacity < MinOpacity {
		return MinOpacity
	}
	if opacity > 1 {
		return 1
	}
	return opacity
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
