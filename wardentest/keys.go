package wardentest

import (
	"crypto/rand"

	"github.com/iov-one/warden"
	"golang.org/x/crypto/ed25519"
)

// NewCondition returns a signature condition of a newly generated
// ed25519 key.
func NewCondition() warden.Condition {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	pub := priv.Public().(ed25519.PublicKey)
	return warden.NewCondition("sigs", "ed25519", pub)
}

// NewAddress returns the address of a newly generated key.
func NewAddress() warden.Address {
	return NewCondition().Address()
}
