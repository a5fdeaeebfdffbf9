// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - state addressing for transaction families
//
// An address is the first 6 hex characters of the SHA-512 of the
// family name followed by the first 64 hex characters of the SHA-512
// of the identifier, giving 70 lowercase hex characters in total.
package address

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// lengths in hex characters
const (
	PrefixLength     = 6
	IdentifierLength = 64
	Length           = PrefixLength + IdentifierLength
)

// Prefix - namespace prefix for a family name
func Prefix(familyName string) string {
	return hexSHA512(familyName)[:PrefixLength]
}

// Compute - the state address of an identifier within a family
func Compute(familyName string, identifier string) string {
	return Prefix(familyName) + hexSHA512(identifier)[:IdentifierLength]
}

// IsValid - check that a string is a well formed address
func IsValid(s string) bool {
	if Length != len(s) {
		return false
	}
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// InNamespace - true if the address lies under the namespace prefix
func InNamespace(prefix string, addr string) bool {
	return strings.HasPrefix(addr, prefix)
}

func hexSHA512(s string) string {
	digest := sha512.Sum512([]byte(s))
	return hex.EncodeToString(digest[:])
}
