package domain

import "github.com/keyfort/walletcore/pkg/hdwallet"

// HDContext derives addresses from an unlocked seed. Contexts are
// ephemeral: constructed from a decrypted mnemonic, used to resolve one
// batch of derivation paths and dropped before the enclosing call returns.
type HDContext interface {
	DeriveAddress(opts hdwallet.DeriveAddressOpts) (string, error)
}

// PrivateKey is a parsed single private key.
type PrivateKey interface {
	Address(chain hdwallet.Blockchain) (string, error)
	// Zero wipes the key bytes.
	Zero()
}

// KeyDeriver builds the derivation collaborators from decrypted secrets.
type KeyDeriver interface {
	NewHDContext(mnemonic, passphrase string) (HDContext, error)
	ParsePrivateKey(raw []byte) (PrivateKey, error)
}

// hdDeriver is the default KeyDeriver, backed by pkg/hdwallet.
type hdDeriver struct{}

func (hdDeriver) NewHDContext(mnemonic, passphrase string) (HDContext, error) {
	hd, err := hdwallet.NewFromMnemonic(hdwallet.NewFromMnemonicOpts{
		Mnemonic:   mnemonic,
		Passphrase: passphrase,
	})
	if err != nil {
		return nil, err
	}
	return hd, nil
}

func (hdDeriver) ParsePrivateKey(raw []byte) (PrivateKey, error) {
	key, err := hdwallet.ParsePrivateKey(raw)
	if err != nil {
		return nil, err
	}
	return key, nil
}
