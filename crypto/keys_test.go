package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	key := GenPrivKeyEd25519()
	pub := key.PublicKey()
	msg := []byte("claim vested tokens")

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("claim more"), sig))

	other := GenPrivKeyEd25519().PublicKey()
	assert.False(t, other.Verify(msg, sig))
	assert.False(t, (&PublicKey{Ed25519: []byte{1, 2}}).Verify(msg, sig))
	assert.False(t, pub.Verify(msg, nil))
}

func TestSeededKeysAreDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	a := PrivKeyEd25519FromSeed(seed).PublicKey()
	b := PrivKeyEd25519FromSeed(seed).PublicKey()
	assert.Equal(t, a, b)
	assert.True(t, a.Address().Equals(b.Address()))
	assert.NoError(t, a.Condition().Validate())
}

func TestPublicKeyProtobuf(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	raw, err := pub.Marshal()
	require.NoError(t, err)

	var got PublicKey
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, *pub, got)
}
