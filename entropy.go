package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const (
	// BackupDomainID scopes all entropy derived for backup records. Changing
	// it makes every existing backup undecryptable.
	BackupDomainID = "silent-shard-backup"

	// recoveryPathPurpose is the fixed hardened purpose index under which the
	// eight digest-derived indices sit.
	recoveryPathPurpose = 1337
)

// DeriveEntropy turns (mnemonic, domainID, salt) into a 32-byte secret
// scalar, hex encoded. The path is m / purpose' / i0' .. i7' where the eight
// indices are the big-endian 32-bit words of Keccak256(domainID ||
// Keccak256(salt)) with their top bit set. Fully deterministic: the same
// inputs always yield the same entropy, which is what makes offline recovery
// possible without any stored secrets.
func DeriveEntropy(mnemonic, domainID, salt string) (string, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return "", fmt.Errorf("fail to derive seed from mnemonic: %w", err)
	}
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("fail to derive master key: %w", err)
	}

	digest := crypto.Keccak256([]byte(domainID), crypto.Keccak256([]byte(salt)))
	node := master
	indices := make([]uint32, 0, 9)
	indices = append(indices, hdkeychain.HardenedKeyStart+recoveryPathPurpose)
	for i := 0; i < len(digest); i += 4 {
		indices = append(indices, binary.BigEndian.Uint32(digest[i:i+4])|0x80000000)
	}
	for _, index := range indices {
		node, err = node.Derive(index)
		if err != nil {
			return "", fmt.Errorf("%w: index %d: %v", ErrDerivationFailed, index, err)
		}
	}
	if !node.IsPrivate() {
		return "", ErrDerivationFailed
	}
	privKey, err := node.ECPrivKey()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}
	return hex.EncodeToString(privKey.Serialize()), nil
}
