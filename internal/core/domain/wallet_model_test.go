package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keyfort/walletcore/internal/core/domain"
)

func TestNewWallet(t *testing.T) {
	t.Parallel()

	key := &mockKeyMaterial{}
	key.On("Type").Return(domain.WalletTypeHD)

	tests := []struct {
		keyName            string
		expectedIdentifier string
	}{
		{"wallet.json", "wallet"},
		{"keys/wallet.json", "wallet"},
		{"/home/user/.wallets/f4a1c2.json", "f4a1c2"},
		{"plainname", "plainname"},
	}

	for _, tt := range tests {
		wallet, err := domain.NewWallet(domain.NewWalletOpts{
			KeyName:     tt.keyName,
			KeyLocation: "file://" + tt.keyName,
			Key:         key,
		})
		require.NoError(t, err)
		require.Equal(t, tt.expectedIdentifier, wallet.Identifier())
		require.Equal(t, "file://"+tt.keyName, wallet.KeyLocation())
		require.Equal(t, domain.WalletTypeHD, wallet.Type())
		require.Empty(t, wallet.Accounts())
	}
}

func TestFailingNewWallet(t *testing.T) {
	t.Parallel()

	key := &mockKeyMaterial{}

	tests := []struct {
		opts          domain.NewWalletOpts
		expectedError error
	}{
		{
			domain.NewWalletOpts{KeyName: "", Key: key},
			domain.ErrNullKeyName,
		},
		{
			domain.NewWalletOpts{KeyName: "wallet.json", Key: nil},
			domain.ErrNullKeyMaterial,
		},
	}

	for _, tt := range tests {
		wallet, err := domain.NewWallet(tt.opts)
		require.Nil(t, wallet)
		require.EqualError(t, err, tt.expectedError.Error())
	}
}

func TestWalletIdentity(t *testing.T) {
	t.Parallel()

	hdKey := &mockKeyMaterial{}
	hdKey.On("Type").Return(domain.WalletTypeHD)
	singleKey := &mockKeyMaterial{}
	singleKey.On("Type").Return(domain.WalletTypeSingleKey)

	first, err := domain.NewWallet(domain.NewWalletOpts{
		KeyName: "wallet.json",
		Key:     hdKey,
	})
	require.NoError(t, err)

	// same identifier, different key material and location
	second, err := domain.NewWallet(domain.NewWalletOpts{
		KeyName:     "other/dir/wallet.json",
		KeyLocation: "somewhere else entirely",
		Key:         singleKey,
	})
	require.NoError(t, err)

	third, err := domain.NewWallet(domain.NewWalletOpts{
		KeyName: "another.json",
		Key:     hdKey,
	})
	require.NoError(t, err)

	require.True(t, first.Equal(second))
	require.True(t, second.Equal(first))
	require.Equal(t, first.Hash(), second.Hash())

	require.False(t, first.Equal(third))
	require.NotEqual(t, first.Hash(), third.Hash())
	require.False(t, first.Equal(nil))
}
