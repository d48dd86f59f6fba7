// Package crypto seals and opens short secret strings (payment gateway
// credentials) with AES-256-GCM. The key is derived once from a configured
// secret via scrypt with a static salt; stored values are framed as
// iv:authTag:ciphertext in hexadecimal.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	keyLen  = 32
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// kdfSalt is static: the same configured secret must always derive the same
// key, or previously stored values become unreadable.
var kdfSalt = []byte("salt")

// aad binds every ciphertext to its purpose.
var aad = []byte("encryption-key")

// ErrMalformedCiphertext is returned when a stored value does not split
// into exactly three colon-delimited hex segments.
var ErrMalformedCiphertext = errors.New("invalid encrypted text format")

// Codec encrypts and decrypts with a key derived from one secret.
type Codec struct {
	aead cipher.AEAD
}

// New derives the AES key from secret and returns a ready Codec.
func New(secret string) (*Codec, error) {
	key, err := scrypt.Key([]byte(secret), kdfSalt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("crypto: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: new gcm: %w", err)
	}

	return &Codec{aead: aead}, nil
}

// Encrypt seals plaintext and returns iv:authTag:ciphertext in hex.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("crypto: nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), aad)

	// GCM appends the tag to the ciphertext; split it back out so the
	// stored framing stays iv:tag:ciphertext.
	tagStart := len(sealed) - c.aead.Overhead()
	ciphertext, tag := sealed[:tagStart], sealed[tagStart:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	), nil
}

// Decrypt opens a value produced by Encrypt. A value without exactly three
// segments fails with ErrMalformedCiphertext.
func (c *Codec) Decrypt(encrypted string) (string, error) {
	parts := strings.Split(encrypted, ":")
	if len(parts) != 3 {
		return "", ErrMalformedCiphertext
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	if len(nonce) != c.aead.NonceSize() || len(tag) != c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	plaintext, err := c.aead.Open(nil, nonce, append(ciphertext, tag...), aad)
	if err != nil {
		return "", fmt.Errorf("crypto: open: %w", err)
	}
	return string(plaintext), nil
}
