package weavetest

import (
	"github.com/iov-one/tollgate"
	"github.com/iov-one/tollgate/crypto"
)

// NewKey returns a new, random private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new, random key.
func NewCondition() tollgate.Condition {
	return NewKey().PublicKey().Condition()
}

// NewAddress returns the address of a new, random signature condition.
func NewAddress() tollgate.Address {
	return NewCondition().Address()
}
