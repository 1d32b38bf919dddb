package keymaterial

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vulpemventures/go-bip39"

	"github.com/keyfort/walletcore/internal/core/domain"
	"github.com/keyfort/walletcore/pkg/cypher"
	"github.com/keyfort/walletcore/pkg/hdwallet"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrNullPassword ...
	ErrNullPassword = errors.New("password must not be null")
)

// Key is an encrypted wallet secret kept in memory. It implements
// domain.KeyMaterial; persisting the ciphertext is up to the surrounding
// system.
type Key struct {
	id         string
	walletType domain.WalletType
	passphrase string
	cypherText string
}

// FromMnemonicOpts is the struct given to the FromMnemonic method
type FromMnemonicOpts struct {
	Mnemonic string
	Password string
	// Passphrase is the optional BIP39 passphrase, kept alongside the
	// encrypted mnemonic.
	Passphrase string
}

func (o FromMnemonicOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !bip39.IsMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	if len(o.Password) <= 0 {
		return ErrNullPassword
	}
	return nil
}

// FromMnemonic validates and encrypts the mnemonic with the password and
// returns HD key material with a fresh random ID.
func FromMnemonic(opts FromMnemonicOpts) (*Key, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cypherText, err := cypher.Encrypt(cypher.EncryptOpts{
		PlainText: []byte(opts.Mnemonic),
		Password:  opts.Password,
	})
	if err != nil {
		return nil, err
	}

	return &Key{
		id:         uuid.NewString(),
		walletType: domain.WalletTypeHD,
		passphrase: opts.Passphrase,
		cypherText: cypherText,
	}, nil
}

// FromPrivateKeyOpts is the struct given to the FromPrivateKey method
type FromPrivateKeyOpts struct {
	PrivateKey []byte
	Password   string
}

func (o FromPrivateKeyOpts) validate() error {
	key, err := hdwallet.ParsePrivateKey(o.PrivateKey)
	if err != nil {
		return err
	}
	key.Zero()
	if len(o.Password) <= 0 {
		return ErrNullPassword
	}
	return nil
}

// FromPrivateKey validates and encrypts the raw private key with the
// password and returns single-key material with a fresh random ID.
func FromPrivateKey(opts FromPrivateKeyOpts) (*Key, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cypherText, err := cypher.Encrypt(cypher.EncryptOpts{
		PlainText: opts.PrivateKey,
		Password:  opts.Password,
	})
	if err != nil {
		return nil, err
	}

	return &Key{
		id:         uuid.NewString(),
		walletType: domain.WalletTypeSingleKey,
		cypherText: cypherText,
	}, nil
}

// ID ...
func (k *Key) ID() string {
	return k.id
}

// Type returns the wallet shape tag.
func (k *Key) Type() domain.WalletType {
	return k.walletType
}

// Passphrase returns a copy of the optional BIP39 passphrase, or nil.
func (k *Key) Passphrase() []byte {
	if len(k.passphrase) <= 0 {
		return nil
	}
	return []byte(k.passphrase)
}

// Decrypt returns the secret in plain text. Wrong password and corrupt
// ciphertext both surface as domain.ErrKeyDecryption.
func (k *Key) Decrypt(password string) ([]byte, error) {
	plainText, err := cypher.Decrypt(cypher.DecryptOpts{
		CypherText: k.cypherText,
		Password:   password,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyDecryption, err)
	}
	return plainText, nil
}
