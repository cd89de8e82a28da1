package main

import "errors"

var (
	// ErrInvalidValue is returned when a value has no canonical JSON form,
	// e.g. NaN or an infinity.
	ErrInvalidValue = errors.New("value has no canonical representation")

	// ErrChecksumMismatch means the backup record failed its integrity check.
	// Nothing in the record can be trusted, no entry is processed.
	ErrChecksumMismatch = errors.New("backup record checksum mismatch")

	// ErrMalformedRecord means an encrypted share record does not have the
	// expected salt.nonce.ciphertext shape.
	ErrMalformedRecord = errors.New("malformed encrypted share record")

	// ErrDecryptionFailed wraps any decode or authentication failure while
	// opening an encrypted share.
	ErrDecryptionFailed = errors.New("fail to decrypt share")

	// ErrDerivationFailed means the HD derivation produced no private key
	// material. Should not happen for a valid mnemonic.
	ErrDerivationFailed = errors.New("derivation yielded no private key")

	// ErrAddressMismatch means the reconstructed key does not correspond to
	// the address claimed by the backup entry.
	ErrAddressMismatch = errors.New("recovered key does not match claimed address")
)
