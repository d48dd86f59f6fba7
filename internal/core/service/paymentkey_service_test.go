package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

type stubKeyRepo struct {
	byID map[string]*domain.PaymentAPIKey
}

func newStubKeyRepo() *stubKeyRepo {
	return &stubKeyRepo{byID: make(map[string]*domain.PaymentAPIKey)}
}

func (r *stubKeyRepo) List(_ context.Context) ([]*domain.PaymentAPIKey, error) {
	var out []*domain.PaymentAPIKey
	for _, k := range r.byID {
		clone := *k
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubKeyRepo) Create(_ context.Context, k *domain.PaymentAPIKey) error {
	clone := *k
	r.byID[k.ID] = &clone
	return nil
}

func (r *stubKeyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPaymentKeyNotFound
	}
	delete(r.byID, id)
	return nil
}

type reverseEncrypter struct{}

func (reverseEncrypter) Encrypt(plaintext string) (string, error) {
	return "sealed(" + plaintext + ")", nil
}

func TestCreatePaymentKey_EncryptsBeforeStorage(t *testing.T) {
	repo := newStubKeyRepo()
	svc := NewPaymentKeyService(repo, reverseEncrypter{}, zerolog.Nop())

	k, err := svc.Create(context.Background(), ports.CreatePaymentKeyInput{
		Provider: "cashfree",
		KeyName:  "secret_key",
		KeyValue: "sk_live_abc",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stored := repo.byID[k.ID]
	if stored.EncryptedKey != "sealed(sk_live_abc)" {
		t.Fatalf("plaintext reached the repository: %q", stored.EncryptedKey)
	}
	if k.EncryptedKey != domain.RedactedKey {
		t.Fatalf("create response must be redacted, got %q", k.EncryptedKey)
	}
}

func TestListPaymentKeys_AlwaysRedacted(t *testing.T) {
	repo := newStubKeyRepo()
	repo.byID["k1"] = &domain.PaymentAPIKey{ID: "k1", Provider: "cashfree", EncryptedKey: "aa:bb:cc", IsActive: true}
	svc := NewPaymentKeyService(repo, reverseEncrypter{}, zerolog.Nop())

	keys, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("expected 1 key, got %d", len(keys))
	}
	if keys[0].EncryptedKey != domain.RedactedKey {
		t.Fatalf("list leaked ciphertext: %q", keys[0].EncryptedKey)
	}
	// The stored value must stay intact.
	if repo.byID["k1"].EncryptedKey != "aa:bb:cc" {
		t.Fatalf("redaction mutated the stored row")
	}
}
