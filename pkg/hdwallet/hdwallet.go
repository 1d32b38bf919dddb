package hdwallet

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/vulpemventures/go-bip39"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrUnknownBlockchain ...
	ErrUnknownBlockchain = errors.New("unknown blockchain")
	// ErrInvalidPrivateKey ...
	ErrInvalidPrivateKey = errors.New(
		"private key must be a valid 32 byte secp256k1 scalar",
	)
)

// HDWallet derives per-chain addresses from a BIP32 master key. It holds
// no mnemonic or seed material: both are consumed by NewFromMnemonic and
// wiped before it returns.
type HDWallet struct {
	masterKey *hdkeychain.ExtendedKey
}

// NewFromMnemonicOpts is the struct given to the NewFromMnemonic method.
type NewFromMnemonicOpts struct {
	Mnemonic string
	// Passphrase is the optional BIP39 passphrase stretched into the seed
	// along with the mnemonic.
	Passphrase string
}

func (o NewFromMnemonicOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !bip39.IsMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewFromMnemonic generates the wallet's master key from the provided
// mnemonic and optional passphrase.
func NewFromMnemonic(opts NewFromMnemonicOpts) (*HDWallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(opts.Mnemonic, opts.Passphrase)
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	zeroBytes(seed)
	if err != nil {
		return nil, err
	}

	return &HDWallet{masterKey: masterKey}, nil
}

// DeriveAddressOpts is the struct given to the DeriveAddress method.
type DeriveAddressOpts struct {
	Blockchain Blockchain
	Path       DerivationPath
}

func (o DeriveAddressOpts) validate() error {
	if err := o.Blockchain.validate(); err != nil {
		return err
	}
	if len(o.Path) <= 0 {
		return ErrNullDerivationPath
	}
	return nil
}

// DeriveAddress derives the keypair at the provided path and encodes its
// public key with the blockchain's address encoding rule.
func (w *HDWallet) DeriveAddress(opts DeriveAddressOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	hdNode := w.masterKey
	var err error
	for _, step := range opts.Path {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return "", err
		}
	}

	pubkey, err := hdNode.ECPubKey()
	if err != nil {
		return "", err
	}

	return encodeAddress(opts.Blockchain, pubkey)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
