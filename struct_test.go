package kaitai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// --- a tiny two-level tree used purely to exercise Ancestor/ReadInto wiring. ---

type testRoot struct {
	Magic uint8
	Child *testChild
}

func (r *testRoot) Read(stream Stream, root *Ancestor[UnitStructType], parent *Ancestor[UnitStructType]) error {
	v, err := stream.ReadU1()
	if err != nil {
		return err
	}
	r.Magic = v

	child, err := ReadInto[testChild, testRoot, testRoot](stream, AncestorOf(r), AncestorOf(r))
	if err != nil {
		return err
	}
	r.Child = child
	return nil
}

type testChild struct {
	root   *Ancestor[testRoot]
	parent *Ancestor[testRoot]
	Value  uint8
}

func (c *testChild) Read(stream Stream, root *Ancestor[testRoot], parent *Ancestor[testRoot]) error {
	c.root = root
	c.parent = parent
	v, err := stream.ReadU1()
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

func TestReadInto_WiresRootAndParent(t *testing.T) {
	stream := NewBytesReader([]byte{0xAA, 0x42})

	root, err := ReadRoot[testRoot](stream)
	require.NoError(t, err)
	require.Equal(t, uint8(0xAA), root.Magic)
	require.NotNil(t, root.Child)
	require.Equal(t, uint8(0x42), root.Child.Value)

	gotRoot, err := root.Child.root.Get()
	require.NoError(t, err)
	require.Same(t, root, gotRoot)

	gotParent, err := root.Child.parent.Get()
	require.NoError(t, err)
	require.Same(t, root, gotParent)
}

func TestAncestor_GetFailsWhenEmpty(t *testing.T) {
	a := NewAncestor[testRoot]()
	_, err := a.Get()
	require.Error(t, err)
}

func TestAncestor_ClonePanicsWhenEmpty(t *testing.T) {
	a := NewAncestor[testRoot]()
	require.Panics(t, func() {
		a.Clone()
	})
}

func TestAncestor_CloneCopiesBoundValue(t *testing.T) {
	r := &testRoot{Magic: 7}
	a := AncestorOf(r)
	b := a.Clone()
	got, err := b.Get()
	require.NoError(t, err)
	require.Same(t, r, got)
}

func TestUnitStruct_ReadIsNoOp(t *testing.T) {
	err := UnitStruct.Read(nil, NewAncestor[UnitStructType](), NewAncestor[UnitStructType]())
	require.NoError(t, err)
}

func TestReadInto_PropagatesStreamErrors(t *testing.T) {
	stream := NewBytesReader([]byte{0xAA}) // only one byte: child read will fail
	_, err := ReadRoot[testRoot](stream)
	require.Error(t, err)
}
