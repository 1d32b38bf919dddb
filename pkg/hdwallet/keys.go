package hdwallet

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
)

const privateKeySize = 32

// PrivateKey is a parsed single private key.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// ParsePrivateKey parses raw as a secp256k1 private key. Keys that are not
// exactly 32 bytes, zero, or not below the curve order are rejected.
func ParsePrivateKey(raw []byte) (*PrivateKey, error) {
	if len(raw) != privateKeySize {
		return nil, ErrInvalidPrivateKey
	}

	key, _ := btcec.PrivKeyFromBytes(raw)
	// PrivKeyFromBytes silently reduces out-of-range scalars mod N; a
	// round trip detects them.
	if key.Key.IsZero() || !bytes.Equal(key.Serialize(), raw) {
		key.Zero()
		return nil, ErrInvalidPrivateKey
	}

	return &PrivateKey{key: key}, nil
}

// Address encodes the key's public key with the blockchain's address
// encoding rule.
func (p *PrivateKey) Address(chain Blockchain) (string, error) {
	if err := chain.validate(); err != nil {
		return "", err
	}
	return encodeAddress(chain, p.key.PubKey())
}

// Zero overwrites the underlying scalar with zeros. The key must not be
// used afterwards.
func (p *PrivateKey) Zero() {
	p.key.Zero()
}
