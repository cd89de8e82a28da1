package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBackupHash(t *testing.T) {
	backup, err := ParseBackupRecord([]byte(testBackupJSON))
	require.NoError(t, err)

	computed, err := ComputeBackupHash(backup.Raw())
	require.NoError(t, err)
	assert.Equal(t, testBackupHash, computed)
}

func TestVerifyChecksum(t *testing.T) {
	backup, err := ParseBackupRecord([]byte(testBackupJSON))
	require.NoError(t, err)

	ok, err := VerifyChecksum(backup.Raw())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyChecksumAccepts0xPrefix(t *testing.T) {
	backup, err := ParseBackupRecord([]byte(testBackupJSON))
	require.NoError(t, err)

	raw := backup.Raw()
	raw["hash"] = "0x" + raw["hash"].(string)
	ok, err := VerifyChecksum(raw)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyChecksumDetectsMutation(t *testing.T) {
	backup, err := ParseBackupRecord([]byte(testBackupJSON))
	require.NoError(t, err)

	raw := backup.Raw()
	entry := raw["wallet"].([]interface{})[0].(map[string]interface{})
	entry["address"] = "0x3185677c4e5f9746ddd36aeff069c9580a1f3544" // last nibble flipped

	ok, err := VerifyChecksum(raw)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyChecksumMissingHash(t *testing.T) {
	ok, err := VerifyChecksum(map[string]interface{}{"version": float64(1)})
	require.NoError(t, err)
	assert.False(t, ok)
}
