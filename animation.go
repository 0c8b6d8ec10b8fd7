package matchgeo

import "time"

// Animator smooths the jump between the frame a mirror currently shows and
// the frame it should move to. Frame returns the frame to draw after elapsed
// time and whether the transition has finished.
type Animator interface {
	Frame(from, to Rect, elapsed time.Duration) (Rect, bool)
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(from, to Rect, elapsed time.Duration) (Rect, bool)

// Frame calls f.
func (f AnimatorFunc) Frame(from, to Rect, elapsed time.Duration) (Rect, bool) {
	return f(from, to, elapsed)
}

// Snap jumps straight to the target.
func Snap() Animator {
	return AnimatorFunc(func(_, to Rect, _ time.Duration) (Rect, bool) {
		return to, true
	})
}

// Linear moves at constant speed over d.
func Linear(d time.Duration) Animator {
	return curve(d, func(t float64) float64 { return t })
}

// EaseInOut accelerates then decelerates over d (cubic).
func EaseInOut(d time.Duration) Animator {
	return curve(d, func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	})
}

func curve(d time.Duration, ease func(float64) float64) Animator {
	return AnimatorFunc(func(from, to Rect, elapsed time.Duration) (Rect, bool) {
		if d <= 0 || elapsed >= d {
			return to, true
		}
		t := ease(float64(elapsed) / float64(d))
		return Rect{
			X:      lerp(from.X, to.X, t),
			Y:      lerp(from.Y, to.Y, t),
			Width:  lerp(from.Width, to.Width, t),
			Height: lerp(from.Height, to.Height, t),
		}, false
	})
}

func lerp(a, b int, t float64) int {
	v := float64(a) + float64(b-a)*t
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// transition is the in-flight animation of one mirror.
type transition struct {
	from, to Rect
	start    time.Time
	active   bool
}
