// Package ring drives a circular progress indicator: the angle state, its
// opening and processing animations, and the draw cycle onto a Surface.
package ring

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"time"
)

// ErrNoSupplier is returned when processing is requested without an angle
// supplier.
var ErrNoSupplier = errors.New("ring: processing animation needs an angle supplier")

// Bar is a circular progress indicator. It owns its angle state and at most
// one running animation. All methods must be called from the frame thread.
type Bar struct {
	state    AngleState
	style    Style
	animator Animator

	// processing toggle set by SetProcessingAnimation
	chainProcessing bool
	supplier        AngleSupplier

	invalidate func()
	logger     *slog.Logger
}

// Option configures a Bar.
type Option func(*Bar)

// WithInvalidate sets the redraw request called after every visible change.
func WithInvalidate(fn func()) Option {
	return func(b *Bar) { b.invalidate = fn }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bar) { b.logger = l }
}

// New creates an idle ring at 0%.
func New(style Style, opts ...Option) *Bar {
	b := &Bar{
		style:      style,
		invalidate: func() {},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns a copy of the current angle state.
func (b *Bar) State() AngleState { return b.state }

// Style returns the colors the ring is drawn with.
func (b *Bar) Style() Style { return b.style }

// Animating reports whether any animation is running.
func (b *Bar) Animating() bool { return b.animator.Active() }

// ProcessingActive reports whether the processing animation is running.
func (b *Bar) ProcessingActive() bool { return b.animator.running(kindProcessing) }

// SetProgress moves the ring to percent (clamped to 0-100). Without animate
// the ring jumps there and any running animation is cancelled; with animate
// an opening sweep from zero replaces whatever was running.
func (b *Bar) SetProgress(percent int, animate bool) {
	percent = min(max(percent, 0), 100)
	b.state.End = PercentToAngle(percent)

	if !animate {
		b.cancel()
		b.state.Current = b.state.End
		b.invalidate()
		return
	}

	b.cancel()
	b.state.Opening = true
	b.state.Current = 0
	b.animator.start(newOpenAnimation(b.state.End))
	b.logger.Debug("opening sweep started", "percent", percent, "target", b.state.End)
	b.invalidate()
}

// SetProgressColor changes the arc color.
func (b *Bar) SetProgressColor(c color.NRGBA) {
	b.style.ProgressColor = c
	b.invalidate()
}

// SetProcessingAnimation configures whether a finished opening sweep hands
// over to the processing animation. It does not start anything itself.
func (b *Bar) SetProcessingAnimation(enabled bool, supplier AngleSupplier) error {
	if enabled && supplier == nil {
		b.logger.Debug("processing toggle rejected", "reason", ErrNoSupplier)
		return ErrNoSupplier
	}
	b.chainProcessing = enabled
	b.supplier = supplier
	return nil
}

// ShowProcessingAnimation starts the repeating processing sweep. It is a
// no-op while one is already running.
func (b *Bar) ShowProcessingAnimation(supplier AngleSupplier) error {
	if supplier == nil {
		b.logger.Debug("processing start rejected", "reason", ErrNoSupplier)
		return ErrNoSupplier
	}
	if b.ProcessingActive() {
		return nil
	}

	b.cancel()
	b.state.Processing = true
	b.animator.start(newProcessingAnimation(supplier, &b.state))
	b.logger.Debug("processing started", "target", b.state.End)
	b.invalidate()
	return nil
}

// StopProcessingAnimation cancels the processing sweep, leaving the angles
// where they are. Calling it with nothing running does nothing.
func (b *Bar) StopProcessingAnimation() {
	if !b.ProcessingActive() {
		return
	}
	b.cancel()
	b.logger.Debug("processing stopped", "current", b.state.Current, "end", b.state.End)
	b.invalidate()
}

// Advance applies one display frame at now. It reports whether an animation
// is still running and wants another frame.
func (b *Bar) Advance(now time.Time) bool {
	if !b.animator.Active() {
		return false
	}

	finished := b.animator.Advance(now, &b.state)
	if finished == kindOpen {
		b.state.Opening = false
		b.logger.Debug("opening sweep finished", "show_processing", b.chainProcessing)
		if b.chainProcessing && b.supplier != nil {
			b.state.Processing = true
			b.animator.start(newProcessingAnimation(b.supplier, &b.state))
			b.logger.Debug("processing started", "target", b.state.End)
		}
	}
	b.invalidate()
	return b.animator.Active()
}

// cancel drops the running animation and the mode flag that belonged to it.
func (b *Bar) cancel() {
	b.animator.Cancel()
	b.state.Opening = false
	b.state.Processing = false
}
