package domain

// WalletType discriminates the shape of the secret a key material decrypts
// to. Every public wallet operation checks it once on entry.
type WalletType int

const (
	// WalletTypeSingleKey tags key material holding one raw private key.
	WalletTypeSingleKey WalletType = iota
	// WalletTypeHD tags key material holding an HD mnemonic.
	WalletTypeHD
)

func (t WalletType) String() string {
	switch t {
	case WalletTypeSingleKey:
		return "single-key"
	case WalletTypeHD:
		return "hd"
	default:
		return "unknown"
	}
}

// KeyMaterial is the encrypted-at-rest representation of a wallet secret.
// The encryption scheme and its persistence are up to the implementation.
//
// Decrypt must return an error wrapping ErrKeyDecryption when the password
// is wrong or the ciphertext is corrupt. Any other error is treated as an
// infrastructure failure and surfaced to callers unchanged.
type KeyMaterial interface {
	// Type returns the wallet shape tag.
	Type() WalletType
	// Passphrase returns a copy of the optional BIP39 passphrase applied on
	// top of the mnemonic, or nil. The caller owns the returned buffer and
	// zeroes it when done.
	Passphrase() []byte
	// Decrypt returns the secret in plain text. The caller owns the
	// returned buffer and zeroes it when done.
	Decrypt(password string) ([]byte, error)
}
