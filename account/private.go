// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/vaultd/fault"
)

// KeyPair - an ed25519 key whose public half is an on-curve account
type KeyPair struct {
	Account    Account
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - create a random key pair
//
// the public key is always a valid curve point, unlike a derived
// vault address
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	a, err := FromBytes(publicKey)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromBase58 - restore a key pair from its Base58 private key
func KeyPairFromBase58(s string) (*KeyPair, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrInvalidBase58
	}
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.PrivateKey(buffer)
	a, err := FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyString - Base58 of the 64 byte private key
func (k *KeyPair) PrivateKeyString() string {
	return base58.Encode(k.PrivateKey)
}
