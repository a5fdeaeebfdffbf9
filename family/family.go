// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"github.com/bitmark-inc/prodcon/address"
)

// defaults
const (
	DefaultName    = "produce-consume"
	DefaultVersion = "1.0"
)

// Family - name and version of a transaction family, shared by the
// client that builds transactions and the handler that applies them
type Family struct {
	Name    string `gluamapper:"name" json:"name"`
	Version string `gluamapper:"version" json:"version"`
}

// Default - the produce-consume family
func Default() Family {
	return Family{
		Name:    DefaultName,
		Version: DefaultVersion,
	}
}

// Prefix - state namespace of the family
func (f Family) Prefix() string {
	return address.Prefix(f.Name)
}

// Address - state address of an identifier in this family
func (f Family) Address(identifier string) string {
	return address.Compute(f.Name, identifier)
}

// Namespaces - list of namespaces the family writes to
func (f Family) Namespaces() []string {
	return []string{f.Prefix()}
}
