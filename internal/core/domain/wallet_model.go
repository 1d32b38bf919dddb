package domain

import (
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// Wallet is the aggregate mapping one encrypted key to the ordered set of
// accounts derived from it. Accounts are created lazily, one per distinct
// derived address, and only ever appended.
//
// A Wallet instance is not safe for concurrent use: GetAccount and
// GetAccounts mutate the cached account set without internal locking.
// Callers must serialize access to the same instance, e.g. with one mutex
// per wallet (see the application package).
type Wallet struct {
	identifier  string
	keyLocation string
	key         KeyMaterial
	accounts    []*Account
	deriver     KeyDeriver
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	// KeyName is the name of the key file the wallet was loaded from; the
	// wallet identifier derives from it.
	KeyName string
	// KeyLocation is an opaque reference to where the encrypted key is
	// stored. It is carried around, never interpreted.
	KeyLocation string
	// Key is the encrypted wallet secret.
	Key KeyMaterial
	// Deriver overrides the derivation collaborators, defaulting to the
	// hdwallet backed ones.
	Deriver KeyDeriver
}

func (o NewWalletOpts) validate() error {
	if len(o.KeyName) <= 0 {
		return ErrNullKeyName
	}
	if o.Key == nil {
		return ErrNullKeyMaterial
	}
	return nil
}

// NewWallet returns a Wallet whose identifier is derived from the key-file
// name, directories and extension stripped. The identifier never changes
// afterwards.
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	deriver := opts.Deriver
	if deriver == nil {
		deriver = hdDeriver{}
	}

	name := filepath.Base(opts.KeyName)
	identifier := strings.TrimSuffix(name, filepath.Ext(name))

	return &Wallet{
		identifier:  identifier,
		keyLocation: opts.KeyLocation,
		key:         opts.Key,
		accounts:    make([]*Account, 0),
		deriver:     deriver,
	}, nil
}

// Identifier ...
func (w *Wallet) Identifier() string {
	return w.identifier
}

// KeyLocation ...
func (w *Wallet) KeyLocation() string {
	return w.keyLocation
}

// Type returns the shape of the wallet's key material.
func (w *Wallet) Type() WalletType {
	return w.key.Type()
}

// Accounts returns the cached accounts in insertion order. The returned
// slice is a copy; the accounts themselves are shared.
func (w *Wallet) Accounts() []*Account {
	accounts := make([]*Account, len(w.accounts))
	copy(accounts, w.accounts)
	return accounts
}

// Equal reports whether the two wallets share the same identifier. The
// identifier is the sole durable identity of a wallet: key material and
// cached accounts never take part in the comparison.
func (w *Wallet) Equal(other *Wallet) bool {
	return other != nil && w.identifier == other.identifier
}

// Hash returns the digest wallets are indexed by in a surrounding
// registry. Wallets that are Equal hash identically.
func (w *Wallet) Hash() string {
	return hex.EncodeToString(btcutil.Hash160([]byte(w.identifier)))
}
