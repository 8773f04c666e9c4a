package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString()
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := GenerateRandomString()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRandIntn(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := RandIntn(3)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 3)
	}
}
