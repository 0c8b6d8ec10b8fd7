package matchgeo

import (
	"sync"
	"testing"
)

func TestState_SetMarksDirty(t *testing.T) {
	app, _ := newTestApp(t, 10, 10)
	s := NewState(app, 1)

	app.checkAndClearDirty()
	s.Set(2)
	if !app.Dirty() {
		t.Error("Set() should mark the app dirty")
	}
	if got := s.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}

	app.checkAndClearDirty()
	s.Update(func(v int) int { return v * 10 })
	if got := s.Get(); got != 20 {
		t.Errorf("Get() after Update = %d, want 20", got)
	}
	if !app.Dirty() {
		t.Error("Update() should mark the app dirty")
	}
}

func TestState_NilAppPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewState(nil, ...) did not panic")
		}
	}()
	NewState[int](nil, 0)
}

func TestState_Bind(t *testing.T) {
	type tc struct {
		sets   []int
		unbind int // unbind after this many sets, -1 never
		want   []int
	}

	tests := map[string]tc{
		"every set notifies": {
			sets:   []int{1, 2, 3},
			unbind: -1,
			want:   []int{1, 2, 3},
		},
		"unbind stops notifications": {
			sets:   []int{1, 2, 3},
			unbind: 1,
			want:   []int{1},
		},
		"unbind before any set": {
			sets:   []int{1},
			unbind: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := newTestApp(t, 10, 10)
			s := NewState(app, 0)
			var got []int
			unbind := s.Bind(func(v int) { got = append(got, v) })
			for i, v := range tt.sets {
				if i == tt.unbind {
					unbind()
				}
				s.Set(v)
			}
			if tt.unbind == len(tt.sets) {
				unbind()
			}
			if len(got) != len(tt.want) {
				t.Fatalf("bindings saw %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bindings saw %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestApp_Batch(t *testing.T) {
	app, _ := newTestApp(t, 10, 10)
	a := NewState(app, 0)
	b := NewState(app, "")

	var calls []string
	a.Bind(func(v int) { calls = append(calls, "a") })
	b.Bind(func(v string) { calls = append(calls, "b:"+v) })

	app.Batch(func() {
		a.Set(1)
		b.Set("x")
		app.Batch(func() {
			a.Set(2)
			b.Set("y")
		})
		if len(calls) != 0 {
			t.Errorf("bindings ran inside batch: %v", calls)
		}
	})

	want := []string{"a", "b:y"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if a.Get() != 2 {
		t.Errorf("a.Get() = %d, want 2", a.Get())
	}
}

func TestState_ConcurrentGet(t *testing.T) {
	app, _ := newTestApp(t, 10, 10)
	s := NewState(app, 42)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if v := s.Get(); v != 42 {
					t.Errorf("Get() = %d, want 42", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
