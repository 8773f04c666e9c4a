package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Store binds a gorilla sessions.Store to one cookie name.
type Store struct {
	name  string
	store sessions.Store
}

func NewCookieStore(name string, keypairs ...[]byte) *Store {
	cookieStore := sessions.NewCookieStore(keypairs...)
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	return &Store{
		name:  name,
		store: cookieStore,
	}
}

func (s *Store) Get(r *http.Request) (*sessions.Session, error) {
	return s.store.Get(r, s.name)
}

func (s *Store) Save(r *http.Request, w http.ResponseWriter, a *sessions.Session) error {
	return s.store.Save(r, w, a)
}
