package kaitai

import (
	"github.com/scigolib/kaitai/kerror"
)

// Struct is the contract every generated parse-tree node satisfies. P
// is the node's parent type and R is the node's root type. Read
// consumes stream, populating the receiver's fields, and is handed its
// root and parent as already-resolved Ancestor handles rather than
// reaching for package-level state. Generated nodes implement this on
// a pointer receiver, e.g. func (n *Foo) Read(stream Stream, root
// *Ancestor[Bar], parent *Ancestor[Baz]) error.
type Struct[P, R any] interface {
	Read(stream Stream, root *Ancestor[R], parent *Ancestor[P]) error
}

// structPtr expresses "PT is a pointer to T, and that pointer type
// implements Struct[P, R]" — the standard generics idiom for working
// with types whose interface methods live on the pointer receiver.
type structPtr[T, P, R any] interface {
	*T
	Struct[P, R]
}

// Ancestor is a lazily-populated, non-owning handle to an ancestor node
// (the enclosing parent, or the parse's root). It never participates in
// ownership: a node's children own nothing about their ancestors, they
// only ever borrow this handle.
type Ancestor[T any] struct {
	value     *T
	set       bool
	emptyKind kerror.Kind
}

// NewAncestor returns an empty Ancestor for a parent slot, not yet
// bound to any value. Use NewRootAncestor for the root slot so that an
// unbound query reports the right Kind.
func NewAncestor[T any]() *Ancestor[T] {
	return &Ancestor[T]{emptyKind: kerror.MissingParent}
}

// NewRootAncestor returns an empty Ancestor for a root slot.
func NewRootAncestor[T any]() *Ancestor[T] {
	return &Ancestor[T]{emptyKind: kerror.MissingRoot}
}

// AncestorOf returns an Ancestor already bound to v.
func AncestorOf[T any](v *T) *Ancestor[T] {
	return &Ancestor[T]{value: v, set: true}
}

// Set late-binds v into a, overwriting whatever was there before.
func (a *Ancestor[T]) Set(v *T) {
	a.value = v
	a.set = true
}

// Get returns the bound value, failing loudly if a is still empty.
func (a *Ancestor[T]) Get() (*T, error) {
	if !a.set {
		return nil, kerror.New(a.emptyKind, "ancestor handle queried before being bound")
	}
	return a.value, nil
}

// MustGet panics if a is empty; intended for generated-code accessors
// (e.g. an instance's "_parent" getter) that are only ever called after
// Read has completed successfully, at which point an empty ancestor
// indicates a code-generator bug rather than a data error.
func (a *Ancestor[T]) MustGet() *T {
	v, err := a.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns a new Ancestor bound to the same value as a. It panics
// if a is empty: cloning an unset ancestor is always a programmer
// error, never a recoverable data error.
func (a *Ancestor[T]) Clone() *Ancestor[T] {
	if !a.set {
		panic("kaitai: cloning an unset Ancestor")
	}
	return &Ancestor[T]{value: a.value, set: true}
}

// UnitStructType is the sentinel node type used at the top of a parse
// tree: its Root and Parent are itself, and Read is a no-op. It gives
// the root node's own ancestor slots something non-nil-but-inert to
// point to. Generated top-level node types declare it as their own
// Parent (and, where they are their own root, name themselves as
// Root instead).
type UnitStructType struct{}

func (u *UnitStructType) Read(_ Stream, _ *Ancestor[UnitStructType], _ *Ancestor[UnitStructType]) error {
	return nil
}

// UnitStruct is the package-wide sentinel value; every root-level parse
// uses the same one since it carries no state.
var UnitStruct = &UnitStructType{}

// ReadInto constructs a fresh T, wires its root/parent ancestor handles,
// invokes T.Read, and returns the constructed node on success.
//
// root and parent may be nil: a nil root means "treat the newly
// constructed node as its own root", which only type-checks when R is
// T itself (the top of a parse); ReadInto verifies this dynamically and
// panics on mismatch, since such a mismatch can only arise from a
// miscompiled or hand-miswritten generated parser, never from malformed
// input. Likewise a nil parent defaults to the new node being its own
// parent, used only at the top of a parse.
func ReadInto[T any, P any, R any, PT structPtr[T, P, R]](stream Stream, root *Ancestor[R], parent *Ancestor[P]) (PT, error) {
	t := PT(new(T))

	if root == nil {
		root = identityAncestor[R](t)
	}
	if parent == nil {
		parent = identityAncestor[P](t)
	}

	if err := t.Read(stream, root, parent); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadRoot default-constructs a fresh T and invokes its Read directly
// against the package-wide unit sentinel for both root and parent, per
// spec.md §2's data-flow description and the "sentinel unit node"
// definition in §4.F: at the very top of a parse there is no enclosing
// node, so both ancestor slots are non-nil yet inert. Use this to
// bootstrap a parse; use ReadInto for every node constructed thereafter.
func ReadRoot[T any, PT structPtr[T, UnitStructType, UnitStructType]](stream Stream) (PT, error) {
	t := PT(new(T))
	if err := t.Read(stream, AncestorOf(UnitStruct), AncestorOf(UnitStruct)); err != nil {
		return nil, err
	}
	return t, nil
}

// identityAncestor builds an Ancestor[A] bound to t's underlying
// pointer, which only type-checks at runtime when A is the same
// underlying type as t. Per spec.md §4.F, a mismatch here is a
// code-generator bug, so it panics rather than returning an error.
func identityAncestor[A any](t any) *Ancestor[A] {
	asA, ok := t.(*A)
	if !ok {
		panic("kaitai: ReadInto called with no ancestor, but the node is not its own ancestor type")
	}
	return AncestorOf(asA)
}
