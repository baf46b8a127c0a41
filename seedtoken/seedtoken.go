//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package seedtoken encodes a password-of-the-day seed for modem
// configuration files
package seedtoken

import (
	"crypto/cipher"
	"crypto/des"
	"fmt"
	"strings"
)

const (
	BlockSize = des.BlockSize
	separator = "."
)

// Fixed by modem firmware
var (
	key = [BlockSize]byte{0x14, 0x9d, 0x40, 0xd5, 0xc1, 0x2e, 0x55, 0x02}
	iv  = [BlockSize]byte{}
)

// Block returns the zero padded plaintext block for a seed
func Block(seed []byte) (data []byte, err error) {
	if len(seed) > BlockSize {
		err = fmt.Errorf("seed of %d bytes exceeds the %d byte block", len(seed), BlockSize)
		return
	}

	data = make([]byte, BlockSize)
	copy(data, seed)

	return
}

// Encrypt DES-CBC encrypts the seed's plaintext block
func Encrypt(seed []byte) (ciphertext []byte, err error) {
	plaintext, err := Block(seed)
	if err != nil {
		return
	}

	block, err := des.NewCipher(key[:])
	if err != nil {
		return
	}

	ciphertext = make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, plaintext)

	return
}

// Format renders bytes as dot separated uppercase hex, ie "3F.94.E2"
func Format(data []byte) string {
	parts := make([]string, len(data))
	for n, b := range data {
		parts[n] = fmt.Sprintf("%02X", b)
	}

	return strings.Join(parts, separator)
}

// Encode returns the configuration token for a seed of at most BlockSize bytes
func Encode(seed string) (token string, err error) {
	ciphertext, err := Encrypt([]byte(seed))
	if err != nil {
		return
	}

	token = Format(ciphertext)

	return
}
