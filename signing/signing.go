// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signing - secp256k1 keys and signatures
//
// Messages are hashed with SHA-256 and signed with a deterministic
// ECDSA nonce; signatures are the 64 byte R||S form encoded as hex,
// public keys are 33 byte compressed points encoded as hex.
package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/bitmark-inc/prodcon/fault"
)

// sizes in bytes
const (
	PrivateKeySize = 32
	PublicKeySize  = 33
	SignatureSize  = 64
)

// Signer - anything able to sign for a public key
type Signer interface {
	PublicKeyHex() string
	Sign(message []byte) (string, error)
}

// PrivateKey - a secp256k1 signing key
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PublicKey - a secp256k1 verification key
type PublicKey struct {
	key *btcec.PublicKey
}

// GeneratePrivateKey - create a new random key
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if nil != err {
		return nil, fault.KeyError("generate key: " + err.Error())
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - 32 byte big endian scalar in the range [1, N)
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidPrivateKey
	}
	d := new(big.Int).SetBytes(buffer)
	if 0 == d.Sign() || d.Cmp(btcec.S256().N) >= 0 {
		return nil, fault.ErrInvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), buffer)
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex - decode a hex private key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKeyFromBytes(buffer)
}

// Hex - encoded private key
func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.key.Serialize())
}

// PublicKey - the matching public key
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: k.key.PubKey()}
}

// PublicKeyHex - compressed public key as hex
func (k *PrivateKey) PublicKeyHex() string {
	return k.PublicKey().Hex()
}

// Sign - hex R||S signature of sha256(message)
func (k *PrivateKey) Sign(message []byte) (string, error) {
	digest := sha256.Sum256(message)
	signature, err := k.key.Sign(digest[:])
	if nil != err {
		return "", fault.SigningError("sign: " + err.Error())
	}

	compact := make([]byte, SignatureSize)
	r := signature.R.Bytes()
	s := signature.S.Bytes()
	copy(compact[32-len(r):32], r)
	copy(compact[64-len(s):], s)
	return hex.EncodeToString(compact), nil
}

// PublicKeyFromHex - decode a compressed or uncompressed public key
func PublicKeyFromHex(s string) (*PublicKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	key, err := btcec.ParsePubKey(buffer, btcec.S256())
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return &PublicKey{key: key}, nil
}

// Hex - compressed public key as hex
func (p *PublicKey) Hex() string {
	return hex.EncodeToString(p.key.SerializeCompressed())
}

// Verify - check a hex R||S signature over sha256(message)
func (p *PublicKey) Verify(message []byte, signatureHex string) error {
	compact, err := hex.DecodeString(signatureHex)
	if nil != err || SignatureSize != len(compact) {
		return fault.ErrInvalidSignature
	}
	signature := &btcec.Signature{
		R: new(big.Int).SetBytes(compact[:32]),
		S: new(big.Int).SetBytes(compact[32:]),
	}
	digest := sha256.Sum256(message)
	if !signature.Verify(digest[:], p.key) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Verify - check a signature given the hex public key
func Verify(publicKeyHex string, message []byte, signatureHex string) error {
	publicKey, err := PublicKeyFromHex(publicKeyHex)
	if nil != err {
		return err
	}
	return publicKey.Verify(message, signatureHex)
}
