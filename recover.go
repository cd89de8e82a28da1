package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// RecoveryService reconstructs wallet private keys from a verified backup
// record and the user's mnemonic.
type RecoveryService struct {
	logger          *logrus.Logger
	strictAddress   bool
	continueOnError bool
}

// NewRecoveryService configures a recovery pass. With strictAddress a
// reconstructed key whose address differs from the claimed one fails that
// entry instead of being reported and kept. With continueOnError a failed
// entry is logged and skipped instead of aborting the batch.
func NewRecoveryService(strictAddress, continueOnError bool) *RecoveryService {
	return &RecoveryService{
		logger:          logrus.WithField("service", "recovery").Logger,
		strictAddress:   strictAddress,
		continueOnError: continueOnError,
	}
}

// Recover verifies the backup checksum and then reconstructs each wallet
// entry's private key in input order. A checksum failure aborts before any
// entry is touched.
func (r *RecoveryService) Recover(mnemonic string, backup *BackupRecord) ([]ExportedKey, error) {
	mnemonic = strings.TrimSpace(mnemonic)

	ok, err := VerifyChecksum(backup.Raw())
	if err != nil {
		return nil, fmt.Errorf("fail to verify backup checksum: %w", err)
	}
	if !ok {
		return nil, ErrChecksumMismatch
	}

	keys := make([]ExportedKey, 0, len(backup.Wallet))
	for _, entry := range backup.Wallet {
		key, err := r.recoverEntry(mnemonic, entry)
		if err != nil {
			if r.continueOnError {
				r.logger.WithFields(logrus.Fields{
					"address": entry.Address,
				}).WithError(err).Error("fail to recover wallet entry")
				continue
			}
			return nil, fmt.Errorf("entry %s: %w", entry.Address, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *RecoveryService) recoverEntry(mnemonic string, entry WalletEntry) (ExportedKey, error) {
	// the first dot segment of the remote record doubles as the derivation salt
	salt, _, _ := strings.Cut(entry.Remote, ".")

	entropy, err := DeriveEntropy(mnemonic, BackupDomainID, salt)
	if err != nil {
		return ExportedKey{}, err
	}
	plain, err := DecryptShare(entropy, entry.Remote)
	if err != nil {
		return ExportedKey{}, err
	}
	key, err := CombineShares(plain, entry.Keyshare, entry.Address)
	if err != nil {
		if errors.Is(err, ErrAddressMismatch) && !r.strictAddress {
			r.logger.WithField("address", entry.Address).Warn(err.Error())
			return key, nil
		}
		return ExportedKey{}, err
	}
	return key, nil
}
