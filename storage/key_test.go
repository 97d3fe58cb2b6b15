package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyAdd(t *testing.T) {
	k := KeyOfUint64(10)
	require.Equal(t, KeyOfUint64(15), k.Add(5))
	require.Equal(t, k, k.Add(0))

	// adding distinct offsets yields distinct keys
	require.NotEqual(t, k.Add(1), k.Add(2))

	// addition is cumulative
	require.Equal(t, k.Add(7), k.Add(3).Add(4))
}

func TestKeyAddCarry(t *testing.T) {
	// max low word, +1 must carry into byte 23
	k := KeyOfUint64(^uint64(0))
	got := k.Add(1)

	var want Key
	want[KeyBytes-9] = 1
	require.Equal(t, want, got)

	// carry chain across several bytes
	var high Key
	for i := KeyBytes - 9; i < KeyBytes; i++ {
		high[i] = 0xff
	}
	got = high.Add(1)
	var next Key
	next[KeyBytes-10] = 1
	require.Equal(t, next, got)
}

func TestKeyString(t *testing.T) {
	require.Equal(t,
		"000000000000000000000000000000000000000000000000000000000000002a",
		KeyOfUint64(42).String())
}
