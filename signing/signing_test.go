// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prodcon/fault"
	"github.com/bitmark-inc/prodcon/signing"
)

const (
	privateHex = "2f1e7b7a130d7ba9da0068b3bb0ba1d79e7e77110302c9f746c3c2a63fe40088"
)

func TestSignVerify(t *testing.T) {
	key, err := signing.PrivateKeyFromHex(privateHex)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}

	assert.Equal(t, privateHex, key.Hex(), "private key round trip")
	assert.Equal(t, 2*signing.PublicKeySize, len(key.PublicKeyHex()), "public key length")
	assert.True(t, strings.HasPrefix(key.PublicKeyHex(), "02") || strings.HasPrefix(key.PublicKeyHex(), "03"), "not compressed")

	message := []byte("some header bytes")
	signature, err := key.Sign(message)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	assert.Equal(t, 2*signing.SignatureSize, len(signature), "signature length")

	// deterministic nonce
	again, _ := key.Sign(message)
	assert.Equal(t, signature, again, "signature not deterministic")

	assert.Nil(t, signing.Verify(key.PublicKeyHex(), message, signature))
}

func TestTamper(t *testing.T) {
	key, _ := signing.PrivateKeyFromHex(privateHex)
	message := []byte("some header bytes")
	signature, _ := key.Sign(message)

	// change every byte of the message in turn
	for i := range message {
		tampered := append([]byte{}, message...)
		tampered[i] ^= 0x01
		err := signing.Verify(key.PublicKeyHex(), tampered, signature)
		assert.Equal(t, fault.ErrInvalidSignature, err, "byte %d change not detected", i)
	}

	other, err := signing.GeneratePrivateKey()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	err = signing.Verify(other.PublicKeyHex(), message, signature)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong key accepted")

	err = signing.Verify(key.PublicKeyHex(), message, "00")
	assert.Equal(t, fault.ErrInvalidSignature, err, "short signature accepted")
}

func TestInvalidKeys(t *testing.T) {
	items := []string{
		"",
		"zz",
		"00",
		strings.Repeat("00", 32),
		strings.Repeat("ff", 32), // above curve order
		privateHex + "00",
	}
	for i, item := range items {
		_, err := signing.PrivateKeyFromHex(item)
		assert.True(t, fault.IsErrKey(err), "%d: expected key error, got: %v", i, err)
	}

	_, err := signing.PublicKeyFromHex("05" + strings.Repeat("00", 32))
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestKeyFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "signing")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	key, _ := signing.PrivateKeyFromHex(privateHex)
	privateFile, publicFile, err := signing.WriteKeyFiles(dir, "test", key)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	loaded, err := signing.ReadPrivateKeyFile(privateFile)
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	assert.Equal(t, key.Hex(), loaded.Hex())

	public, _ := ioutil.ReadFile(publicFile)
	assert.Equal(t, key.PublicKeyHex()+"\n", string(public))

	_, _, err = signing.WriteKeyFiles(dir, "test", key)
	assert.True(t, fault.IsErrExists(err), "overwrite allowed")

	empty := filepath.Join(dir, "empty.priv")
	ioutil.WriteFile(empty, []byte("\n"), 0600)
	_, err = signing.ReadPrivateKeyFile(empty)
	assert.Equal(t, fault.ErrKeyFileEmpty, err)

	_, err = signing.ReadPrivateKeyFile(filepath.Join(dir, "missing.priv"))
	assert.True(t, fault.IsErrKey(err))
}
