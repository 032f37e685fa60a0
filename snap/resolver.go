package snap

// State is the resolver's discrete output
type State struct {
	// Index is the snapped item, always in [0, N-1]
	Index int

	// LastProgress is the progress of the most recent update
	LastProgress float64
}

// Result is what one update reports
type Result struct {
	Index int

	// Target is the quantized progress the rotation should settle toward
	Target float64

	// Changed is true when Index moved on this update
	Changed bool

	// Direction of the move: +1, -1 or 0
	Direction int
}

// Resolver applies hysteresis to progress samples
// Index moves by at most one per Update so no item is skipped
type Resolver struct {
	n       int
	policy  Policy
	state   State
	lastDir int
}

// NewResolver creates a resolver for n items at index 0
func NewResolver(n int, policy Policy) *Resolver {
	if n < 0 {
		n = 0
	}
	policy, _ = policy.Normalize()
	return &Resolver{n: n, policy: policy}
}

// Step is the progress span between adjacent snap stops
func Step(n int) float64 {
	if n > 1 {
		return 1 / float64(n-1)
	}
	return 1
}

// Count returns the item count the resolver was built for
func (r *Resolver) Count() int { return r.n }

// Policy returns the active policy
func (r *Resolver) Policy() Policy { return r.policy }

// SetPolicy swaps the policy without moving the index
func (r *Resolver) SetPolicy(p Policy) {
	r.policy, _ = p.Normalize()
}

// State returns a copy of the current state
func (r *Resolver) State() State { return r.state }

// Index returns the current snap index
func (r *Resolver) Index() int { return r.state.Index }

// Target returns the quantized progress of the current index
func (r *Resolver) Target() float64 {
	if r.n <= 1 {
		return 0
	}
	return float64(r.state.Index) * Step(r.n)
}

// Resize changes the item count, clamping the index and forgetting direction
func (r *Resolver) Resize(n int) {
	if n < 0 {
		n = 0
	}
	r.n = n
	r.lastDir = 0
	if r.state.Index > n-1 {
		r.state.Index = max(n-1, 0)
	}
}

// Reset returns to index 0 at progress 0
func (r *Resolver) Reset() {
	r.state = State{}
	r.lastDir = 0
}

// FloatIndex maps progress onto the continuous index axis
func (r *Resolver) FloatIndex(progress float64) float64 {
	return progress / Step(r.n)
}

// Update feeds one progress sample and applies at most one step
func (r *Resolver) Update(progress float64) Result {
	r.state.LastProgress = progress
	if r.n <= 1 {
		r.state.Index = 0
		return Result{Index: 0, Target: 0}
	}

	diff := r.FloatIndex(progress) - float64(r.state.Index)

	up, down := r.thresholds()
	dir := 0
	switch {
	case diff > up && r.state.Index < r.n-1:
		dir = 1
	case diff < -down && r.state.Index > 0:
		dir = -1
	}

	if dir != 0 {
		r.state.Index += dir
		r.lastDir = dir
	}

	return Result{
		Index:     r.state.Index,
		Target:    r.Target(),
		Changed:   dir != 0,
		Direction: dir,
	}
}

// Lagging reports whether progress sits at least a full step away from the index
// Hosts call Update again on later frames until this clears, walking through every index
func (r *Resolver) Lagging(progress float64) bool {
	if r.n <= 1 {
		return false
	}
	diff := r.FloatIndex(progress) - float64(r.state.Index)
	return (diff >= 1 && r.state.Index < r.n-1) || (diff <= -1 && r.state.Index > 0)
}

// thresholds returns the upward and downward trigger distances for the next update
func (r *Resolver) thresholds() (up, down float64) {
	up, down = r.policy.Forward(), r.policy.Forward()
	switch r.lastDir {
	case 1:
		down = r.policy.Reverse()
	case -1:
		up = r.policy.Reverse()
	}
	return up, down
}
