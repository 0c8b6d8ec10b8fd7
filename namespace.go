package matchgeo

import (
	"fmt"
	"sync/atomic"
)

// Namespace scopes geometry identifiers. Two slots with equal IDs in
// different namespaces are unrelated. Create one per animation group and
// keep it for the group's lifetime; the zero Namespace is valid but shared
// by everyone who forgets to create one.
type Namespace struct {
	id uint64
}

var namespaceSeq atomic.Uint64

// NewNamespace returns a namespace distinct from every other namespace
// created by this process.
func NewNamespace() Namespace {
	return Namespace{id: namespaceSeq.Add(1)}
}

// IsZero reports whether n is the zero namespace.
func (n Namespace) IsZero() bool {
	return n.id == 0
}

func (n Namespace) String() string {
	return fmt.Sprintf("ns%d", n.id)
}

// GeometryKey names one shared geometry slot. Keys compare structurally
// over both fields, so they can be used directly as map keys.
type GeometryKey struct {
	Namespace Namespace
	ID        any
}

// MakeKey builds the key for id in ns. The type parameter guarantees the
// identifier is comparable.
func MakeKey[ID comparable](ns Namespace, id ID) GeometryKey {
	return GeometryKey{Namespace: ns, ID: id}
}

func (k GeometryKey) String() string {
	return fmt.Sprintf("%s/%v", k.Namespace, k.ID)
}
