package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	c, err := New("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	sealed, err := c.Encrypt("sk_live_abc123")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	opened, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if opened != "sk_live_abc123" {
		t.Fatalf("roundtrip mismatch: got %q", opened)
	}
}

func TestEncrypt_Framing(t *testing.T) {
	c, err := New("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	sealed, err := c.Encrypt("value")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	parts := strings.Split(sealed, ":")
	if len(parts) != 3 {
		t.Fatalf("expected iv:tag:ciphertext framing, got %d parts", len(parts))
	}
	// 12-byte GCM nonce and 16-byte tag, hex encoded.
	if len(parts[0]) != 24 {
		t.Fatalf("nonce segment length: got %d want 24", len(parts[0]))
	}
	if len(parts[1]) != 32 {
		t.Fatalf("tag segment length: got %d want 32", len(parts[1]))
	}
}

func TestEncrypt_NonceVaries(t *testing.T) {
	c, err := New("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	a, _ := c.Encrypt("same")
	b, _ := c.Encrypt("same")
	if a == b {
		t.Fatalf("two encryptions of the same value must differ")
	}
}

func TestDecrypt_MalformedFraming(t *testing.T) {
	c, err := New("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	cases := []string{
		"",
		"deadbeef",
		"aa:bb",
		"aa:bb:cc:dd",
		"zz:zz:zz", // not hex
	}
	for _, in := range cases {
		if _, err := c.Decrypt(in); !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("input %q: expected ErrMalformedCiphertext, got %v", in, err)
		}
	}
}

func TestDecrypt_WrongSecret(t *testing.T) {
	a, err := New("secret-a")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	b, err := New("secret-b")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	sealed, err := a.Encrypt("value")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := b.Decrypt(sealed); err == nil {
		t.Fatalf("decrypt with wrong secret must fail")
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	c, err := New("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	sealed, err := c.Encrypt("value")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	parts := strings.Split(sealed, ":")
	// Flip one hex digit of the ciphertext segment.
	last := parts[2]
	var flipped byte = '0'
	if last[0] == '0' {
		flipped = '1'
	}
	parts[2] = string(flipped) + last[1:]

	if _, err := c.Decrypt(strings.Join(parts, ":")); err == nil {
		t.Fatalf("tampered ciphertext must not authenticate")
	}
}
