package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const secretboxKeySize = 32

// DecryptShare opens an encrypted share record of the form
// salt.nonceHex.cipherBase64 with the entry's derived entropy as key
// material. Only the first 32 bytes of the decoded entropy are used as the
// key.
func DecryptShare(entropyHex, record string) ([]byte, error) {
	parts := strings.Split(record, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 dot-separated parts, got %d", ErrMalformedRecord, len(parts))
	}

	keyBytes, err := hex.DecodeString(strings.TrimPrefix(entropyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: fail to decode key material: %v", ErrDecryptionFailed, err)
	}
	if len(keyBytes) < secretboxKeySize {
		return nil, fmt.Errorf("%w: key material too short: %d bytes", ErrDecryptionFailed, len(keyBytes))
	}
	var key [secretboxKeySize]byte
	copy(key[:], keyBytes[:secretboxKeySize])

	nonceBytes, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: fail to decode nonce: %v", ErrDecryptionFailed, err)
	}
	if len(nonceBytes) != 24 {
		return nil, fmt.Errorf("%w: bad nonce length: %d bytes", ErrDecryptionFailed, len(nonceBytes))
	}
	var nonce [24]byte
	copy(nonce[:], nonceBytes)

	cipherBytes, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: fail to decode ciphertext: %v", ErrDecryptionFailed, err)
	}

	plain, ok := secretbox.Open(nil, cipherBytes, &nonce, &key)
	if !ok {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecryptionFailed)
	}
	return plain, nil
}
