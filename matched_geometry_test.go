package matchgeo

import "testing"

func TestComputeMirrorFrame(t *testing.T) {
	type tc struct {
		natural    Rect
		original   MaybeRect
		target     MaybeRect
		props      Properties
		wantOffset Point
		wantFrame  Rect
	}

	tests := map[string]tc{
		"no target keeps natural frame": {
			natural:   NewRect(0, 200, 50, 50),
			original:  Known(NewRect(0, 200, 50, 50)),
			wantFrame: NewRect(0, 200, 50, 50),
			props:     MatchFrame,
		},
		"unmeasured mirror is not offset but takes the size": {
			natural:   NewRect(0, 200, 50, 50),
			target:    Known(NewRect(0, 0, 100, 100)),
			props:     MatchFrame,
			wantFrame: NewRect(0, 200, 100, 100),
		},
		"frame moves onto target": {
			natural:    NewRect(10, 10, 50, 50),
			original:   Known(NewRect(10, 10, 50, 50)),
			target:     Known(NewRect(110, 60, 80, 80)),
			props:      MatchFrame,
			wantOffset: Point{X: 100, Y: 50},
			wantFrame:  NewRect(110, 60, 80, 80),
		},
		"position only keeps size": {
			natural:    NewRect(10, 10, 50, 50),
			original:   Known(NewRect(10, 10, 50, 50)),
			target:     Known(NewRect(110, 60, 80, 80)),
			props:      MatchPosition,
			wantOffset: Point{X: 100, Y: 50},
			wantFrame:  NewRect(110, 60, 50, 50),
		},
		"size only keeps position": {
			natural:   NewRect(10, 10, 50, 50),
			original:  Known(NewRect(10, 10, 50, 50)),
			target:    Known(NewRect(110, 60, 80, 80)),
			props:     MatchSize,
			wantFrame: NewRect(10, 10, 80, 80),
		},
		"no properties": {
			natural:   NewRect(10, 10, 50, 50),
			original:  Known(NewRect(10, 10, 50, 50)),
			target:    Known(NewRect(110, 60, 80, 80)),
			wantFrame: NewRect(10, 10, 50, 50),
		},
		"mirror already at target": {
			natural:   NewRect(5, 5, 10, 10),
			original:  Known(NewRect(5, 5, 10, 10)),
			target:    Known(NewRect(5, 5, 10, 10)),
			props:     MatchFrame,
			wantFrame: NewRect(5, 5, 10, 10),
		},
		"offset uses the observed origin, not the natural one": {
			natural:    NewRect(0, 30, 4, 4),
			original:   Known(NewRect(0, 20, 4, 4)),
			target:     Known(NewRect(0, 0, 4, 4)),
			props:      MatchPosition,
			wantOffset: Point{X: 0, Y: -20},
			wantFrame:  NewRect(0, 10, 4, 4),
		},
		"negative offset": {
			natural:    NewRect(0, 200, 50, 50),
			original:   Known(NewRect(0, 200, 50, 50)),
			target:     Known(NewRect(0, 0, 100, 100)),
			props:      MatchFrame,
			wantOffset: Point{X: 0, Y: -200},
			wantFrame:  NewRect(0, 0, 100, 100),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeMirrorFrame(tt.natural, tt.original, tt.target, tt.props)
			if got.Offset != tt.wantOffset {
				t.Errorf("Offset = %v, want %v", got.Offset, tt.wantOffset)
			}
			if got.Frame != tt.wantFrame {
				t.Errorf("Frame = %v, want %v", got.Frame, tt.wantFrame)
			}
		})
	}
}

func TestWithMatchedGeometry_Defaults(t *testing.T) {
	ns := NewNamespace()

	type tc struct {
		opts      []GeometryOption
		wantRole  Role
		wantProps Properties
	}

	tests := map[string]tc{
		"default is a frame mirror": {
			wantRole:  Mirror,
			wantProps: MatchFrame,
		},
		"source": {
			opts:      []GeometryOption{IsSource(true)},
			wantRole:  Publisher,
			wantProps: MatchFrame,
		},
		"explicit mirror with position": {
			opts:      []GeometryOption{IsSource(false), WithProperties(MatchPosition)},
			wantRole:  Mirror,
			wantProps: MatchPosition,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(WithMatchedGeometry(ns, "ID", tt.opts...))
			g := e.Geometry()
			if g == nil {
				t.Fatal("Geometry() = nil")
			}
			if g.Key != MakeKey(ns, "ID") {
				t.Errorf("Key = %v, want %v", g.Key, MakeKey(ns, "ID"))
			}
			if g.Role != tt.wantRole {
				t.Errorf("Role = %v, want %v", g.Role, tt.wantRole)
			}
			if g.Properties != tt.wantProps {
				t.Errorf("Properties = %v, want %v", g.Properties, tt.wantProps)
			}
		})
	}
}

func TestProperties_Has(t *testing.T) {
	if !MatchFrame.Has(MatchPosition) || !MatchFrame.Has(MatchSize) {
		t.Error("MatchFrame should include position and size")
	}
	if MatchPosition.Has(MatchSize) {
		t.Error("MatchPosition.Has(MatchSize) = true")
	}
	if MatchSize.Has(MatchFrame) {
		t.Error("MatchSize.Has(MatchFrame) = true")
	}
}
