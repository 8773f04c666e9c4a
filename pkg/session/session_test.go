package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewCookieStore("ronin_session", []byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/wallet/login", nil)
	rec := httptest.NewRecorder()

	sess, err := store.Get(req)
	require.NoError(t, err)
	sess.Values["nonce"] = "abc"
	require.NoError(t, store.Save(req, rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "ronin_session", cookies[0].Name)

	next := httptest.NewRequest(http.MethodGet, "/wallet/verify", nil)
	next.AddCookie(cookies[0])
	sess, err = store.Get(next)
	require.NoError(t, err)
	require.Equal(t, "abc", sess.Values["nonce"])
}
