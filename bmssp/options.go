package bmssp

// Option configures a Solve call. Without options a Solve call uses a
// NoOpListener, so Options are purely additive.
type Option func(*solver)

// WithEventListener attaches an EventListener to observe a Solve call.
// A nil listener is equivalent to not passing this option.
func WithEventListener(l EventListener) Option {
	return func(s *solver) {
		s.setEventListener(l)
	}
}
