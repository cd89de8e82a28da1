package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// WalletEntry is one wallet in a backup record: the claimed address, the
// app-side scalar share and the cloud-side encrypted share.
type WalletEntry struct {
	Address  string `json:"address"`
	Keyshare string `json:"keyshare"`
	Remote   string `json:"remote"`
}

type BackupRecord struct {
	Version int           `json:"version"`
	Time    string        `json:"time"`
	Wallet  []WalletEntry `json:"wallet"`
	Hash    string        `json:"hash"`

	// raw keeps the decoded top-level JSON object so the checksum is computed
	// over exactly what the producer wrote, unknown members included.
	raw map[string]interface{}
}

// Raw returns the undecorated JSON object the record was parsed from.
func (b *BackupRecord) Raw() map[string]interface{} {
	return b.raw
}

func ParseBackupRecord(data []byte) (*BackupRecord, error) {
	var record BackupRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("fail to unmarshal backup record: %w", err)
	}
	if err := json.Unmarshal(data, &record.raw); err != nil {
		return nil, fmt.Errorf("fail to unmarshal backup record: %w", err)
	}
	return &record, nil
}

func GetBackupFromFile(file string) (*BackupRecord, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("fail to read from file %s: %w", file, err)
	}
	return ParseBackupRecord(data)
}

// WriteExportedKeys writes the recovered keys as a JSON array. The file holds
// raw private keys, hence the restrictive mode.
func WriteExportedKeys(file string, keys []ExportedKey) error {
	buf, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("fail to marshal exported keys: %w", err)
	}
	if err := os.WriteFile(file, buf, 0600); err != nil {
		return fmt.Errorf("fail to write to file %s: %w", file, err)
	}
	return nil
}
