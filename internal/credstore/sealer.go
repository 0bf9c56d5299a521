// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package credstore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// sealer derives keys and seals/unseals password blobs.
// The Argon2id tuning parameters are stored in the struct so they can be
// adjusted per deployment target.
type sealer struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	keyLen       uint32
}

func newSealer() *sealer {
	return &sealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		keyLen:       32,
	}
}

// generateSalt returns a random 16-byte salt. The salt is not a secret; it
// is stored in the profile file so the same key can be re-derived later.
func (s *sealer) generateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// deriveKey derives the sealing key from the passphrase and salt via
// Argon2id. The key exists only in memory for the duration of a command.
func (s *sealer) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, s.keyLen)
}

// seal encrypts plaintext with key using AES-256-GCM and returns a Base64
// string of nonce ‖ ciphertext.
func (s *sealer) seal(plaintext, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// open decodes and decrypts a blob produced by seal. An authentication
// failure almost always means a wrong passphrase produced a wrong key.
func (s *sealer) open(blobB64 string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	return plaintext, nil
}
