package domain

import "errors"

var (
	// ErrWrongWalletType is thrown when the single-key entry point is invoked
	// on an HD wallet or vice versa
	ErrWrongWalletType = errors.New("operation does not match the wallet type")
	// ErrWrongPassword covers failed decryption as well as malformed decrypted
	// secrets; the caller is never told which of the two happened
	ErrWrongPassword = errors.New("password is not valid")
	// ErrKeyDecryption is the sentinel KeyMaterial implementations must wrap
	// to signal a failed decryption (wrong password or corrupt data)
	ErrKeyDecryption = errors.New("key material decryption failed")
	// ErrNullKeyName ...
	ErrNullKeyName = errors.New("key name must not be null")
	// ErrNullKeyMaterial ...
	ErrNullKeyMaterial = errors.New("key material must not be null")
)
