package domain

import "github.com/keyfort/walletcore/pkg/hdwallet"

// Account is the immutable record of one derived address. Accounts hold no
// secret material.
type Account struct {
	walletID       string
	address        string
	derivationPath hdwallet.DerivationPath
	blockchain     hdwallet.Blockchain
}

func newAccount(
	walletID, address string,
	path hdwallet.DerivationPath, chain hdwallet.Blockchain,
) *Account {
	return &Account{
		walletID:       walletID,
		address:        address,
		derivationPath: path,
		blockchain:     chain,
	}
}

// WalletID is the identifier of the owning wallet. It is a lookup key, not
// a reference: resolving it is up to the surrounding registry.
func (a *Account) WalletID() string {
	return a.walletID
}

// Address ...
func (a *Account) Address() string {
	return a.address
}

// DerivationPath returns the path that first produced the account address.
func (a *Account) DerivationPath() hdwallet.DerivationPath {
	path := make(hdwallet.DerivationPath, len(a.derivationPath))
	copy(path, a.derivationPath)
	return path
}

// Blockchain ...
func (a *Account) Blockchain() hdwallet.Blockchain {
	return a.blockchain
}
