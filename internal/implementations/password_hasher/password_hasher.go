package passwordhasher

import (
	"unitactivity/internal/core/domain/identity"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// Bcrypt appends an optional pepper to the password before hashing. Hashes
// written by other bcrypt implementations stay valid while the pepper is empty.
type Bcrypt struct {
	pepper string
	cost   int
}

func NewBcrypt(pepper string, cost int) *Bcrypt {
	if cost == 0 {
		cost = DefaultCost
	}
	return &Bcrypt{pepper: pepper, cost: cost}
}

func (h *Bcrypt) HashPassword(password identity.RawPassword) (hash identity.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte(string(password)+h.pepper), h.cost)
	if err != nil {
		return hash, err
	}
	return identity.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password identity.RawPassword, hash identity.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(string(password)+h.pepper))
	return err == nil
}
