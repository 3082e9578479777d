package ring

import "time"

// Animation timing.
const (
	OpenDuration       = 2000 * time.Millisecond
	ProcessingDuration = 4500 * time.Millisecond

	// doneEpsilon is how close to 1 the elapsed fraction must be for an
	// opening sweep to count as finished.
	doneEpsilon = 0.001
)

// AngleSupplier yields the next processing target in degrees. It is asked
// once per processing cycle, on the frame thread.
type AngleSupplier func() float32

// Phase is the lifecycle of one animation.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseCompleted
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

type animationKind uint8

const (
	kindOpen animationKind = iota + 1
	kindProcessing
)

func (k animationKind) String() string {
	if k == kindProcessing {
		return "processing"
	}
	return "open"
}

// animation is either a one-shot opening sweep or a repeating processing
// sweep. Both share tick.
type animation struct {
	kind     animationKind
	duration time.Duration
	target   float32
	supplier AngleSupplier

	phase   Phase
	started bool
	origin  time.Time
}

func newOpenAnimation(target float32) *animation {
	return &animation{kind: kindOpen, duration: OpenDuration, target: target}
}

// newProcessingAnimation asks supplier for the first target right away.
func newProcessingAnimation(supplier AngleSupplier, st *AngleState) *animation {
	a := &animation{kind: kindProcessing, duration: ProcessingDuration, supplier: supplier}
	a.resample(st)
	return a
}

func (a *animation) resample(st *AngleState) {
	a.target = a.supplier()
	st.End = a.target
}

// tick maps an elapsed fraction in [0,1] to the angle to draw. done is only
// ever true for the opening sweep.
func (a *animation) tick(fraction float32) (angle float32, done bool) {
	angle = accelerateDecelerate(fraction) * a.target
	if a.kind == kindOpen && 1-fraction < doneEpsilon {
		return a.target, true
	}
	return angle, false
}

// Animator owns the single animation slot of a ring.
type Animator struct {
	current *animation
}

// Active reports whether an animation is installed and running.
func (d *Animator) Active() bool {
	return d.current != nil && d.current.phase == PhaseRunning
}

// running reports whether an animation of kind is running.
func (d *Animator) running(kind animationKind) bool {
	return d.Active() && d.current.kind == kind
}

// start cancels whatever is installed before installing a.
func (d *Animator) start(a *animation) {
	d.Cancel()
	a.phase = PhaseRunning
	d.current = a
}

// Cancel detaches the installed animation. It never ticks again.
func (d *Animator) Cancel() {
	if d.current == nil {
		return
	}
	d.current.phase = PhaseCancelled
	d.current = nil
}

// Advance applies one frame at now to st. It returns the kind of animation
// that completed during this frame, or zero.
func (d *Animator) Advance(now time.Time, st *AngleState) (finished animationKind) {
	a := d.current
	if a == nil || a.phase != PhaseRunning {
		return 0
	}
	if !a.started {
		a.started = true
		a.origin = now
	}

	elapsed := now.Sub(a.origin)
	if elapsed < 0 {
		elapsed = 0
	}
	if a.kind == kindProcessing && elapsed >= a.duration {
		// Late frames skip whole cycles; the supplier is asked once.
		cycles := elapsed / a.duration
		a.origin = a.origin.Add(cycles * a.duration)
		elapsed -= cycles * a.duration
		a.resample(st)
	}

	fraction := clamp01(float32(elapsed) / float32(a.duration))
	angle, done := a.tick(fraction)
	st.Current = angle
	if done {
		a.phase = PhaseCompleted
		d.current = nil
		return a.kind
	}
	return 0
}
