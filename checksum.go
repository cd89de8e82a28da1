package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeBackupHash returns the lowercase hex Keccak-256 of the canonical
// encoding of the record with its "hash" member removed.
func ComputeBackupHash(record map[string]interface{}) (string, error) {
	projection := make(map[string]interface{}, len(record))
	for k, v := range record {
		if k == "hash" {
			continue
		}
		projection[k] = v
	}
	encoded, err := EncodeCanonical(projection)
	if err != nil {
		return "", fmt.Errorf("fail to encode backup record: %w", err)
	}
	return hex.EncodeToString(crypto.Keccak256([]byte(encoded))), nil
}

// VerifyChecksum checks the stored checksum against the recomputed one.
// Recorded backups store the computed hash with its first two hex characters
// dropped; that slicing is kept byte-for-byte so existing backups keep
// verifying.
func VerifyChecksum(record map[string]interface{}) (bool, error) {
	stored, ok := record["hash"].(string)
	if !ok {
		return false, nil
	}
	stored = strings.TrimPrefix(stored, "0x")
	computed, err := ComputeBackupHash(record)
	if err != nil {
		return false, err
	}
	return stored == computed[2:], nil
}
