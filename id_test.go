package listcrdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdIsNull(t *testing.T) {
	require.True(t, NullId.IsNull())
	require.False(t, (Id{Agent: "A", Seq: 0}).IsNull())
}

func TestIdLess(t *testing.T) {
	cases := []struct {
		a, b Id
		want bool
	}{
		{Id{"A", 0}, Id{"B", 0}, true},
		{Id{"B", 0}, Id{"A", 0}, false},
		{Id{"A", 0}, Id{"A", 1}, true},
		{Id{"A", 1}, Id{"A", 0}, false},
		{Id{"A", 0}, Id{"A", 0}, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.a.Less(c.b), "%v.Less(%v)", c.a, c.b)
	}
}

func TestVersionHasAndRecord(t *testing.T) {
	v := NewVersion()
	require.True(t, v.Has(NullId), "empty version must contain NullId")
	require.False(t, v.Has(Id{"A", 0}), "empty version must not contain (A,0)")

	v.Record(Id{"A", 0})
	v.Record(Id{"A", 1})
	require.True(t, v.Has(Id{"A", 0}))
	require.True(t, v.Has(Id{"A", 1}))
	require.False(t, v.Has(Id{"A", 2}), "version must not have (A,2) yet")
	require.Equal(t, 1, v.LastSeq("A"))
	require.Equal(t, -1, v.LastSeq("B"))

	// Record must not regress on an out-of-order (lower) seq.
	v.Record(Id{"A", 0})
	require.Equal(t, 1, v.LastSeq("A"), "Record with stale seq must not regress LastSeq")
}

func TestVersionCloneIsIndependent(t *testing.T) {
	v := NewVersion()
	v.Record(Id{"A", 0})
	clone := v.Clone()
	clone.Record(Id{"B", 0})

	require.False(t, v.Has(Id{"B", 0}), "mutating clone must not affect original")
	require.True(t, clone.Has(Id{"A", 0}), "clone must retain original's entries")
}

func TestVersionEqual(t *testing.T) {
	a := NewVersion()
	a.Record(Id{"A", 2})
	b := NewVersion()
	b.Record(Id{"A", 2})
	require.True(t, a.Equal(b), "versions with identical contents must be Equal")

	b.Record(Id{"B", 0})
	require.False(t, a.Equal(b), "versions with differing contents must not be Equal")
}
