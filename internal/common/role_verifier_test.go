package common

import (
	"context"
	"testing"

	"github.com/ronin-planets/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestAdminVerifier_IsAdmin(t *testing.T) {
	verifier := NewAdminVerifier("0xAbCdEf0000000000000000000000000000000001")

	require.True(t, verifier.IsAdmin("0xabcdef0000000000000000000000000000000001"))
	require.True(t, verifier.IsAdmin("0xABCDEF0000000000000000000000000000000001"))
	require.False(t, verifier.IsAdmin("0xabcdef0000000000000000000000000000000002"))
	require.False(t, verifier.IsAdmin(""))

	require.False(t, NewAdminVerifier("").IsAdmin(""))
}

func TestAdminVerifier_Verify(t *testing.T) {
	verifier := NewAdminVerifier("0xADMIN")

	require.Error(t, verifier.Verify(context.Background()))

	ctx := xcontext.WithRequestUserID(context.Background(), "0xuser")
	require.Error(t, verifier.Verify(ctx))

	ctx = xcontext.WithRequestUserID(context.Background(), "0xadmin")
	require.NoError(t, verifier.Verify(ctx))
}
