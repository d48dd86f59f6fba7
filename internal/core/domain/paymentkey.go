package domain

import (
	"errors"
	"time"
)

var ErrPaymentKeyNotFound = errors.New("payment key not found")

// RedactedKey replaces the encrypted value on every read path.
const RedactedKey = "***hidden***"

// PaymentAPIKey stores a payment-gateway credential. EncryptedKey holds the
// aes-gcm ciphertext; the plaintext never leaves the write path.
type PaymentAPIKey struct {
	ID           string    `json:"id"`
	Provider     string    `json:"provider"` // cashfree, stripe, ...
	KeyName      string    `json:"keyName"`  // secret_key, public_key, ...
	EncryptedKey string    `json:"encryptedKey"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Redacted returns a copy safe to serialize to clients.
func (k PaymentAPIKey) Redacted() PaymentAPIKey {
	k.EncryptedKey = RedactedKey
	return k
}
