package matchgeo

import (
	"testing"
	"time"
)

func TestMirrorState_Present(t *testing.T) {
	start := time.Unix(0, 0)
	a, b := NewRect(0, 0, 10, 10), NewRect(100, 0, 10, 10)

	type step struct {
		desired       Rect
		at            time.Duration
		want          Rect
		wantAnimating bool
	}

	type tc struct {
		animator Animator
		steps    []step
	}

	tests := map[string]tc{
		"first presentation snaps": {
			animator: Linear(100 * time.Millisecond),
			steps:    []step{{desired: a, want: a}},
		},
		"nil animator snaps": {
			steps: []step{
				{desired: a, want: a},
				{desired: b, want: b},
			},
		},
		"change animates to the new frame": {
			animator: Linear(100 * time.Millisecond),
			steps: []step{
				{desired: a, want: a},
				{desired: b, at: 0, want: a, wantAnimating: true},
				{desired: b, at: 50 * time.Millisecond, want: NewRect(50, 0, 10, 10), wantAnimating: true},
				{desired: b, at: 100 * time.Millisecond, want: b},
				{desired: b, at: 150 * time.Millisecond, want: b},
			},
		},
		"retarget starts from the shown frame": {
			animator: Linear(100 * time.Millisecond),
			steps: []step{
				{desired: a, want: a},
				{desired: b, at: 0, want: a, wantAnimating: true},
				{desired: b, at: 50 * time.Millisecond, want: NewRect(50, 0, 10, 10), wantAnimating: true},
				{desired: a, at: 50 * time.Millisecond, want: NewRect(50, 0, 10, 10), wantAnimating: true},
				{desired: a, at: 100 * time.Millisecond, want: NewRect(25, 0, 10, 10), wantAnimating: true},
				{desired: a, at: 150 * time.Millisecond, want: a},
			},
		},
		"snap animator finishes in one pass": {
			animator: Snap(),
			steps: []step{
				{desired: a, want: a},
				{desired: b, want: b},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var st mirrorState
			for i, s := range tt.steps {
				got, animating := st.present(s.desired, tt.animator, start.Add(s.at))
				if got != s.want {
					t.Errorf("step %d: present() = %v, want %v", i, got, s.want)
				}
				if animating != s.wantAnimating {
					t.Errorf("step %d: animating = %v, want %v", i, animating, s.wantAnimating)
				}
			}
		})
	}
}

func TestMirrorArena_AcquireAndSweep(t *testing.T) {
	arena := newMirrorArena()
	scope := &GeometryScope{}
	a := nodeIdentity{scope: scope, path: "/0"}
	b := nodeIdentity{scope: scope, path: "/1"}

	measured := 0
	stA := arena.acquire(a, func() { measured++ })
	arena.acquire(b, nil)

	if again := arena.acquire(a, nil); again != stA {
		t.Error("acquire() returned a new state for a live identity")
	}

	stA.observer.Observe(NewRect(1, 1, 1, 1), true)
	if !stA.original.Valid || stA.original.Rect != NewRect(1, 1, 1, 1) {
		t.Errorf("original = %v, want the observed frame", stA.original)
	}
	if measured != 1 {
		t.Errorf("onMeasure calls = %d, want 1", measured)
	}

	if dropped := arena.sweep(); dropped != 0 {
		t.Errorf("first sweep dropped %d, want 0", dropped)
	}

	// Only a is visited in the next pass.
	arena.acquire(a, nil)
	if dropped := arena.sweep(); dropped != 1 {
		t.Errorf("second sweep dropped %d, want 1", dropped)
	}
	if arena.Len() != 1 {
		t.Errorf("Len() = %d, want 1", arena.Len())
	}

	// b comes back as a fresh instance.
	stB := arena.acquire(b, nil)
	if stB.original.Valid {
		t.Error("re-acquired identity kept its old measurement")
	}
}
