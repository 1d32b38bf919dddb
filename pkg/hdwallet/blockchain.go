package hdwallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Blockchain tags the address-encoding rule applied to a derived public
// key.
type Blockchain int

const (
	// Bitcoin encodes addresses as mainnet P2WPKH bech32.
	Bitcoin Blockchain = iota
	// Liquid encodes addresses as Liquid mainnet P2WPKH bech32.
	Liquid
	// Ethereum encodes addresses as 0x-prefixed Keccak-256 digests.
	Ethereum
)

// DefaultBlockchain is the chain used for the account of single-key
// wallets.
const DefaultBlockchain = Bitcoin

func (b Blockchain) String() string {
	switch b {
	case Bitcoin:
		return "bitcoin"
	case Liquid:
		return "liquid"
	case Ethereum:
		return "ethereum"
	default:
		return fmt.Sprintf("unknown(%d)", int(b))
	}
}

// DefaultDerivationPath returns the path of the chain's first address
// (account index 0).
func (b Blockchain) DefaultDerivationPath() DerivationPath {
	switch b {
	case Liquid:
		return DerivationPath{
			hdkeychain.HardenedKeyStart + 84,
			hdkeychain.HardenedKeyStart + 1776,
			hdkeychain.HardenedKeyStart + 0,
			0, 0,
		}
	case Ethereum:
		return DerivationPath{
			hdkeychain.HardenedKeyStart + 44,
			hdkeychain.HardenedKeyStart + 60,
			hdkeychain.HardenedKeyStart + 0,
			0, 0,
		}
	default:
		return DerivationPath{
			hdkeychain.HardenedKeyStart + 84,
			hdkeychain.HardenedKeyStart + 0,
			hdkeychain.HardenedKeyStart + 0,
			0, 0,
		}
	}
}

func (b Blockchain) validate() error {
	switch b {
	case Bitcoin, Liquid, Ethereum:
		return nil
	default:
		return ErrUnknownBlockchain
	}
}
