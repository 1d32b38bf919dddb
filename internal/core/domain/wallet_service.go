package domain

import (
	"errors"

	"github.com/keyfort/walletcore/pkg/hdwallet"
)

// GetAccount resolves the one account of a single-key wallet.
//
// The first successful call decrypts the key with the given password,
// parses it as a private key for the default chain and caches the derived
// account. Later calls return the cached account without touching the key
// material: the cached result is authoritative and the password is not
// re-validated.
func (w *Wallet) GetAccount(password string) (*Account, error) {
	if w.key.Type() != WalletTypeSingleKey {
		return nil, ErrWrongWalletType
	}
	if len(w.accounts) > 0 {
		return w.accounts[0], nil
	}

	secret, err := w.key.Decrypt(password)
	if err != nil {
		if errors.Is(err, ErrKeyDecryption) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}
	defer zeroBytes(secret)

	privateKey, err := w.deriver.ParsePrivateKey(secret)
	if err != nil {
		// invalid key bytes collapse into the same error as a failed
		// decryption
		return nil, ErrWrongPassword
	}
	defer privateKey.Zero()

	chain := hdwallet.DefaultBlockchain
	address, err := privateKey.Address(chain)
	if err != nil {
		return nil, err
	}

	account := newAccount(
		w.identifier, address, chain.DefaultDerivationPath(), chain,
	)
	w.accounts = append(w.accounts, account)
	return account, nil
}

// GetAccounts resolves one account per derivation path for an HD wallet,
// in the order the paths are given. Paths resolving to an address already
// cached return the existing account, so the result may contain repeated
// entries. The batch is atomic: on any failure no account is committed.
//
// The decrypted mnemonic and the passphrase copy used to build the HD
// context are zeroed before returning, on every exit path.
func (w *Wallet) GetAccounts(
	chain hdwallet.Blockchain,
	paths []hdwallet.DerivationPath,
	password string,
) ([]*Account, error) {
	if w.key.Type() != WalletTypeHD {
		return nil, ErrWrongWalletType
	}

	mnemonic, err := w.key.Decrypt(password)
	if err != nil {
		if errors.Is(err, ErrKeyDecryption) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}
	defer zeroBytes(mnemonic)

	passphrase := w.key.Passphrase()
	defer zeroBytes(passphrase)

	if !isASCIIText(mnemonic) {
		return nil, ErrWrongPassword
	}

	hdContext, err := w.deriver.NewHDContext(
		string(mnemonic), string(passphrase),
	)
	if err != nil {
		return nil, ErrWrongPassword
	}

	resolved := make([]*Account, 0, len(paths))
	staged := make([]*Account, 0)
	for _, path := range paths {
		account, err := w.resolveAccount(hdContext, chain, path, &staged)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, account)
	}
	w.accounts = append(w.accounts, staged...)

	return resolved, nil
}

// resolveAccount returns the account holding the address derived from the
// given path. Accounts are deduplicated by address, not by path: an
// already known address resolves to the existing account, which keeps the
// path that first produced it. New accounts are staged and committed by
// the caller once the whole batch succeeded.
func (w *Wallet) resolveAccount(
	hdContext HDContext,
	chain hdwallet.Blockchain,
	path hdwallet.DerivationPath,
	staged *[]*Account,
) (*Account, error) {
	address, err := hdContext.DeriveAddress(hdwallet.DeriveAddressOpts{
		Blockchain: chain,
		Path:       path,
	})
	if err != nil {
		return nil, err
	}

	for _, account := range w.accounts {
		if account.address == address {
			return account, nil
		}
	}
	for _, account := range *staged {
		if account.address == address {
			return account, nil
		}
	}

	account := newAccount(w.identifier, address, path, chain)
	*staged = append(*staged, account)
	return account, nil
}
