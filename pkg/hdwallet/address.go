package hdwallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/payment"
	"golang.org/x/crypto/sha3"
)

func encodeAddress(chain Blockchain, pubkey *btcec.PublicKey) (string, error) {
	switch chain {
	case Bitcoin:
		witnessProg := btcutil.Hash160(pubkey.SerializeCompressed())
		addr, err := btcutil.NewAddressWitnessPubKeyHash(
			witnessProg, &chaincfg.MainNetParams,
		)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil
	case Liquid:
		p2wpkh := payment.FromPublicKey(pubkey, &network.Liquid, nil)
		return p2wpkh.WitnessPubKeyHash()
	case Ethereum:
		digest := sha3.NewLegacyKeccak256()
		// the Keccak digest covers the raw 64 byte public key, without
		// the uncompressed-form prefix byte
		digest.Write(pubkey.SerializeUncompressed()[1:])
		return "0x" + hex.EncodeToString(digest.Sum(nil)[12:]), nil
	default:
		return "", ErrUnknownBlockchain
	}
}
