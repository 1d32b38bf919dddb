package hdwallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "leave dice fine decrease dune ribbon ocean earn " +
	"lunar account silver admit cheap fringe disorder trade " +
	"because trade steak clock grace video jacket equal"

func newTestHDWallet(t *testing.T) *HDWallet {
	t.Helper()
	wallet, err := NewFromMnemonic(NewFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	return wallet
}

func TestFailingNewFromMnemonic(t *testing.T) {
	tests := []struct {
		opts NewFromMnemonicOpts
		err  error
	}{
		{
			opts: NewFromMnemonicOpts{Mnemonic: ""},
			err:  ErrNullMnemonic,
		},
		{
			opts: NewFromMnemonicOpts{Mnemonic: "definitely not a mnemonic"},
			err:  ErrInvalidMnemonic,
		},
	}
	for _, tt := range tests {
		wallet, err := NewFromMnemonic(tt.opts)
		assert.Nil(t, wallet)
		assert.Equal(t, tt.err, err)
	}
}

func TestDeriveAddress(t *testing.T) {
	wallet := newTestHDWallet(t)

	path, err := ParseDerivationPath("m/84'/0'/0'/0/0")
	require.NoError(t, err)

	tests := []struct {
		chain  Blockchain
		prefix string
	}{
		{Bitcoin, "bc1"},
		{Liquid, "ex1"},
		{Ethereum, "0x"},
	}
	for _, tt := range tests {
		addr, err := wallet.DeriveAddress(DeriveAddressOpts{
			Blockchain: tt.chain,
			Path:       path,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(addr, tt.prefix), addr)
	}
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	wallet := newTestHDWallet(t)
	other := newTestHDWallet(t)

	path, _ := ParseDerivationPath("m/84'/0'/0'/0/0")
	otherPath, _ := ParseDerivationPath("m/84'/0'/0'/0/1")

	addr, err := wallet.DeriveAddress(DeriveAddressOpts{
		Blockchain: Bitcoin, Path: path,
	})
	require.NoError(t, err)

	sameAddr, err := other.DeriveAddress(DeriveAddressOpts{
		Blockchain: Bitcoin, Path: path,
	})
	require.NoError(t, err)
	assert.Equal(t, addr, sameAddr)

	otherAddr, err := wallet.DeriveAddress(DeriveAddressOpts{
		Blockchain: Bitcoin, Path: otherPath,
	})
	require.NoError(t, err)
	assert.NotEqual(t, addr, otherAddr)
}

func TestPassphraseChangesDerivedAddresses(t *testing.T) {
	wallet := newTestHDWallet(t)

	withPassphrase, err := NewFromMnemonic(NewFromMnemonicOpts{
		Mnemonic:   testMnemonic,
		Passphrase: "hodl",
	})
	require.NoError(t, err)

	path, _ := ParseDerivationPath("m/84'/0'/0'/0/0")
	opts := DeriveAddressOpts{Blockchain: Bitcoin, Path: path}

	addr, err := wallet.DeriveAddress(opts)
	require.NoError(t, err)
	otherAddr, err := withPassphrase.DeriveAddress(opts)
	require.NoError(t, err)
	assert.NotEqual(t, addr, otherAddr)
}

func TestFailingDeriveAddress(t *testing.T) {
	wallet := newTestHDWallet(t)

	path, _ := ParseDerivationPath("m/84'/0'/0'/0/0")

	tests := []struct {
		opts DeriveAddressOpts
		err  error
	}{
		{
			opts: DeriveAddressOpts{Blockchain: Blockchain(42), Path: path},
			err:  ErrUnknownBlockchain,
		},
		{
			opts: DeriveAddressOpts{Blockchain: Bitcoin, Path: nil},
			err:  ErrNullDerivationPath,
		},
	}
	for _, tt := range tests {
		addr, err := wallet.DeriveAddress(tt.opts)
		assert.Empty(t, addr)
		assert.Equal(t, tt.err, err)
	}
}

func TestDefaultDerivationPath(t *testing.T) {
	tests := []struct {
		chain    Blockchain
		expected string
	}{
		{Bitcoin, "m/84'/0'/0'/0/0"},
		{Liquid, "m/84'/1776'/0'/0/0"},
		{Ethereum, "m/44'/60'/0'/0/0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.chain.DefaultDerivationPath().String())
	}
}
