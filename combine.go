package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/bnb-chain/tss-lib/v2/common"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
)

// ExportedKey is the recovered (address, private key) pair for one wallet
// entry.
type ExportedKey struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

type remoteShare struct {
	KeyShareData struct {
		X1 string `json:"x1"`
	} `json:"keyShareData"`
}

type localShare struct {
	X2 struct {
		Scalar string `json:"scalar"`
	} `json:"x2"`
}

// CombineShares multiplies the cloud share x1 (from the decrypted remote
// plaintext) with the app share x2 (from the base64 keyshare blob) modulo the
// secp256k1 group order, then cross-checks the resulting key against the
// claimed address. On a mismatch the exported key is still returned together
// with ErrAddressMismatch so the caller can decide whether that is fatal.
func CombineShares(remotePlain []byte, keyshareBlob, claimedAddress string) (ExportedKey, error) {
	var remote remoteShare
	if err := json.Unmarshal(remotePlain, &remote); err != nil {
		return ExportedKey{}, fmt.Errorf("fail to parse remote share: %w", err)
	}
	x1, err := parseScalar(remote.KeyShareData.X1)
	if err != nil {
		return ExportedKey{}, fmt.Errorf("fail to parse x1: %w", err)
	}

	blob, err := base64.StdEncoding.DecodeString(keyshareBlob)
	if err != nil {
		return ExportedKey{}, fmt.Errorf("fail to decode keyshare blob: %w", err)
	}
	var local localShare
	if err := json.Unmarshal(blob, &local); err != nil {
		return ExportedKey{}, fmt.Errorf("fail to parse local share: %w", err)
	}
	x2, err := parseScalar(local.X2.Scalar)
	if err != nil {
		return ExportedKey{}, fmt.Errorf("fail to parse x2: %w", err)
	}

	modN := common.ModInt(crypto.S256().Params().N)
	privInt := modN.Mul(x1, x2)
	privBytes := fillBytes(privInt, make([]byte, 32))

	privKey := secp256k1.PrivKeyFromBytes(privBytes)
	pubKey := privKey.PubKey().SerializeUncompressed()
	// skip the 0x04 uncompressed tag, hash the 64 coordinate bytes
	address := "0x" + hex.EncodeToString(crypto.Keccak256(pubKey[1:])[12:])

	exported := ExportedKey{
		Address:    claimedAddress,
		PrivateKey: hex.EncodeToString(privBytes),
	}
	if !strings.EqualFold(address, claimedAddress) {
		return exported, fmt.Errorf("%w: derived %s", ErrAddressMismatch, address)
	}
	return exported, nil
}

func parseScalar(s string) (*big.Int, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, fmt.Errorf("empty scalar")
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex scalar %q", s)
	}
	return n, nil
}

func fillBytes(x *big.Int, buf []byte) []byte {
	b := x.Bytes()
	if len(b) > len(buf) {
		panic("buffer too small")
	}
	offset := len(buf) - len(b)
	for i := range buf {
		if i < offset {
			buf[i] = 0
		} else {
			buf[i] = b[i-offset]
		}
	}
	return buf
}
