package identity

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	c "unitactivity/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePasswordWrite struct {
	ID   ID
	Hash PasswordHash
}

type FakeRepository struct {
	Identities  []Identity
	Writes      []FakePasswordWrite
	LookupCount int
	GetError    error
	SetError    error
	kind        Kind
	lock        sync.Mutex
}

func NewFakeRepository(kind Kind) *FakeRepository {
	return &FakeRepository{kind: kind, Identities: make([]Identity, 0, 10)}
}

// Add stores a record with the hash of password and returns it.
func (r *FakeRepository) Add(id ID, email string, password string) Identity {
	hash, _ := NewFakePasswordHasher().HashPassword(RawPassword(password))
	i := Identity{ID: id, Kind: r.kind, Email: c.Email(email), PasswordHash: hash}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Identities = append(r.Identities, i)
	return i
}

func (r *FakeRepository) Kind() Kind {
	return r.kind
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (i Identity, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.LookupCount++
	if r.GetError != nil {
		return i, r.GetError
	}
	for _, i := range r.Identities {
		if i.Email == email {
			return i, nil
		}
	}
	return i, ErrIdentityDoesNotExist
}

func (r *FakeRepository) SetPasswordHash(ctx context.Context, id ID, hash PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.SetError != nil {
		return r.SetError
	}
	for ix, i := range r.Identities {
		if i.ID == id {
			r.Identities[ix].PasswordHash = hash
			r.Writes = append(r.Writes, FakePasswordWrite{ID: id, Hash: hash})
			return nil
		}
	}
	return ErrIdentityDoesNotExist
}

func (r *FakeRepository) WriteCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Writes)
}

func (r *FakeRepository) GetByID(id ID) (Identity, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, i := range r.Identities {
		if i.ID == id {
			return i, true
		}
	}
	return Identity{}, false
}

type FakeCredentialAdminCall struct {
	ID       AuthUserID
	Password RawPassword
}

type FakeCredentialAdmin struct {
	Calls       []FakeCredentialAdminCall
	ReturnError error
	lock        sync.Mutex
}

func NewFakeCredentialAdmin() *FakeCredentialAdmin {
	return &FakeCredentialAdmin{}
}

func (a *FakeCredentialAdmin) SetPassword(ctx context.Context, id AuthUserID, password RawPassword) error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.ReturnError != nil {
		return a.ReturnError
	}
	a.Calls = append(a.Calls, FakeCredentialAdminCall{ID: id, Password: password})
	return nil
}

func (a *FakeCredentialAdmin) CallCount() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return len(a.Calls)
}
