package matchgeo

import "testing"

func TestNamespace_Distinct(t *testing.T) {
	a, b := NewNamespace(), NewNamespace()
	if a == b {
		t.Fatalf("NewNamespace() returned %v twice", a)
	}
	if a.IsZero() || b.IsZero() {
		t.Error("NewNamespace() returned the zero namespace")
	}
	if !(Namespace{}).IsZero() {
		t.Error("Namespace{}.IsZero() = false, want true")
	}
}

func TestGeometryKey_Equality(t *testing.T) {
	ns1, ns2 := NewNamespace(), NewNamespace()

	type tc struct {
		a, b GeometryKey
		want bool
	}

	tests := map[string]tc{
		"same namespace and id": {
			a:    MakeKey(ns1, "ID"),
			b:    MakeKey(ns1, "ID"),
			want: true,
		},
		"same id in different namespaces": {
			a:    MakeKey(ns1, "ID"),
			b:    MakeKey(ns2, "ID"),
			want: false,
		},
		"different ids": {
			a:    MakeKey(ns1, "a"),
			b:    MakeKey(ns1, "b"),
			want: false,
		},
		"int ids": {
			a:    MakeKey(ns1, 7),
			b:    MakeKey(ns1, 7),
			want: true,
		},
		"equal value with different id types": {
			a:    MakeKey(ns1, 7),
			b:    MakeKey(ns1, int64(7)),
			want: false,
		},
		"struct ids": {
			a:    MakeKey(ns1, struct{ Row, Col int }{1, 2}),
			b:    MakeKey(ns1, struct{ Row, Col int }{1, 2}),
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v: got %v, want %v", tt.a, tt.b, got, tt.want)
			}
			m := map[GeometryKey]int{tt.a: 1}
			if _, ok := m[tt.b]; ok != tt.want {
				t.Errorf("map lookup of %v found = %v, want %v", tt.b, ok, tt.want)
			}
		})
	}
}
