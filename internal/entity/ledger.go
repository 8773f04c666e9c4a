package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LedgerKey is the fixed identifier the ledger document is stored under.
const LedgerKey = "ronin_planets_data"

// Document is the single persisted ledger. PendingClaims holds claims in
// every state, not only pending ones.
type Document struct {
	Users         *UserMap `json:"users"`
	Rewards       []Reward `json:"rewards"`
	PendingClaims []Claim  `json:"pendingClaims"`
}

func NewDocument() *Document {
	return &Document{
		Users:         NewUserMap(),
		Rewards:       []Reward{},
		PendingClaims: []Claim{},
	}
}

// Normalize replaces nil collections left by a partial or legacy document.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = NewUserMap()
	}
	if d.Rewards == nil {
		d.Rewards = []Reward{}
	}
	if d.PendingClaims == nil {
		d.PendingClaims = []Claim{}
	}

	d.Users.Range(func(_ string, u *UserAccount) bool {
		u.Normalize()
		return true
	})
}

func (d *Document) FindReward(id string) *Reward {
	for i := range d.Rewards {
		if d.Rewards[i].ID == id {
			return &d.Rewards[i]
		}
	}

	return nil
}

func (d *Document) FindClaim(id string) *Claim {
	for i := range d.PendingClaims {
		if d.PendingClaims[i].ID == id {
			return &d.PendingClaims[i]
		}
	}

	return nil
}

// UserMap is a JSON object of accounts keyed by wallet address which keeps
// the order in which addresses were first inserted.
type UserMap struct {
	keys  []string
	users map[string]*UserAccount
}

func NewUserMap() *UserMap {
	return &UserMap{users: make(map[string]*UserAccount)}
}

func (m *UserMap) Get(address string) (*UserAccount, bool) {
	u, ok := m.users[address]
	return u, ok
}

func (m *UserMap) Set(address string, u *UserAccount) {
	if _, ok := m.users[address]; !ok {
		m.keys = append(m.keys, address)
	}
	m.users[address] = u
}

func (m *UserMap) Len() int {
	return len(m.keys)
}

// Addresses returns the keys in insertion order.
func (m *UserMap) Addresses() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn in insertion order until it returns false.
func (m *UserMap) Range(fn func(address string, u *UserAccount) bool) {
	for _, k := range m.keys {
		if !fn(k, m.users[k]) {
			return
		}
	}
}

func (m *UserMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(m.users[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (m *UserMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.users = make(map[string]*UserAccount)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("users must be an object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("invalid user key %v", tok)
		}

		var u UserAccount
		if err := dec.Decode(&u); err != nil {
			return fmt.Errorf("cannot decode user %s: %w", key, err)
		}

		m.Set(key, &u)
	}

	_, err = dec.Token()
	return err
}

// LedgerRecord is the row holding the serialized document for SQL backends.
type LedgerRecord struct {
	Key       string `gorm:"primaryKey;size:128"`
	Data      []byte
	UpdatedAt time.Time
}

func (LedgerRecord) TableName() string {
	return "ledger_documents"
}
