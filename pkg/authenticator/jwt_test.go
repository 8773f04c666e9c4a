package authenticator_test

import (
	"testing"
	"time"

	"github.com/ronin-planets/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type walletToken struct {
	Address string `json:"address"`
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[walletToken]("secret", time.Minute)
	token, err := engine.Generate("0xabc", walletToken{Address: "0xABC"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "0xABC", obj.Address)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[walletToken]("secret", time.Nanosecond)
	token, err := engine.Generate("0xabc", walletToken{Address: "0xABC"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[walletToken]("secret", time.Minute)
	token, err := engine.Generate("0xabc", walletToken{Address: "0xABC"})
	require.NoError(t, err)

	other := authenticator.NewTokenEngine[walletToken]("other", time.Minute)
	_, err = other.Verify(token)
	require.Error(t, err)
}
