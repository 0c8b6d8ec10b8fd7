package matchgeo

import (
	"testing"
	"time"
)

func TestAnimators(t *testing.T) {
	from := NewRect(0, 0, 10, 10)
	to := NewRect(100, 50, 20, 30)

	type tc struct {
		animator Animator
		elapsed  time.Duration
		want     Rect
		wantDone bool
	}

	tests := map[string]tc{
		"snap is done at once": {
			animator: Snap(),
			want:     to,
			wantDone: true,
		},
		"linear at start": {
			animator: Linear(100 * time.Millisecond),
			want:     from,
		},
		"linear halfway": {
			animator: Linear(100 * time.Millisecond),
			elapsed:  50 * time.Millisecond,
			want:     NewRect(50, 25, 15, 20),
		},
		"linear at end": {
			animator: Linear(100 * time.Millisecond),
			elapsed:  100 * time.Millisecond,
			want:     to,
			wantDone: true,
		},
		"ease in out halfway": {
			animator: EaseInOut(100 * time.Millisecond),
			elapsed:  50 * time.Millisecond,
			want:     NewRect(50, 25, 15, 20),
		},
		"ease in out is slow at first": {
			animator: EaseInOut(100 * time.Millisecond),
			elapsed:  10 * time.Millisecond,
			want:     NewRect(0, 0, 10, 10),
		},
		"zero duration": {
			animator: Linear(0),
			want:     to,
			wantDone: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, done := tt.animator.Frame(from, to, tt.elapsed)
			if got != tt.want {
				t.Errorf("Frame() = %v, want %v", got, tt.want)
			}
			if done != tt.wantDone {
				t.Errorf("done = %v, want %v", done, tt.wantDone)
			}
		})
	}
}
