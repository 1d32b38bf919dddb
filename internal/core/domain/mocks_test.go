package domain_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/keyfort/walletcore/internal/core/domain"
	"github.com/keyfort/walletcore/pkg/hdwallet"
)

/*
 * KeyMaterial
 */
type mockKeyMaterial struct {
	mock.Mock
}

func (m *mockKeyMaterial) Type() domain.WalletType {
	args := m.Called()
	return args.Get(0).(domain.WalletType)
}

func (m *mockKeyMaterial) Passphrase() []byte {
	args := m.Called()

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res
}

func (m *mockKeyMaterial) Decrypt(password string) ([]byte, error) {
	args := m.Called(password)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

/*
 * KeyDeriver
 */
type mockDeriver struct {
	mock.Mock
}

func (m *mockDeriver) NewHDContext(mnemonic, passphrase string) (domain.HDContext, error) {
	args := m.Called(mnemonic, passphrase)

	var res domain.HDContext
	if a := args.Get(0); a != nil {
		res = a.(domain.HDContext)
	}
	return res, args.Error(1)
}

func (m *mockDeriver) ParsePrivateKey(raw []byte) (domain.PrivateKey, error) {
	args := m.Called(raw)

	var res domain.PrivateKey
	if a := args.Get(0); a != nil {
		res = a.(domain.PrivateKey)
	}
	return res, args.Error(1)
}

/*
 * HDContext
 */
type mockHDContext struct {
	mock.Mock
}

func (m *mockHDContext) DeriveAddress(opts hdwallet.DeriveAddressOpts) (string, error) {
	args := m.Called(opts)
	return args.String(0), args.Error(1)
}

/*
 * PrivateKey
 */
type mockPrivateKey struct {
	mock.Mock
}

func (m *mockPrivateKey) Address(chain hdwallet.Blockchain) (string, error) {
	args := m.Called(chain)
	return args.String(0), args.Error(1)
}

func (m *mockPrivateKey) Zero() {
	m.Called()
}
