package service_test

import (
	"strings"
	"testing"

	"github.com/AiraSunae/Blogify/internal/service"
)

func TestHashPassword_Format(t *testing.T) {
	digest, err := service.HashPassword("secret-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(digest, "pbkdf2:sha256:") {
		t.Fatalf("expected pbkdf2:sha256: prefix, got %q", digest)
	}
	if strings.Contains(digest, "secret-pw") {
		t.Fatal("digest must not contain the plaintext")
	}

	parts := strings.Split(digest, "$")
	if len(parts) != 3 {
		t.Fatalf("expected method$salt$hash, got %q", digest)
	}
	if len(parts[1]) != 12 {
		t.Fatalf("expected 12-character salt, got %q", parts[1])
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := service.HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := service.HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatal("expected two hashes of the same password to differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest, err := service.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !service.VerifyPassword(digest, "correct horse") {
		t.Fatal("expected matching password to verify")
	}
	if service.VerifyPassword(digest, "battery staple") {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerifyPassword_UnrecognizedDigest(t *testing.T) {
	// Any malformed digest must verify false, never panic or error.
	for _, digest := range []string{
		"",
		"plaintext",
		"bcrypt:$2a$12$abcdefg",
		"pbkdf2:sha256:notanumber$salt$hash",
		"pbkdf2:sha256:600000$missinghash",
		"pbkdf2:sha256:600000$$",
	} {
		if service.VerifyPassword(digest, "anything") {
			t.Fatalf("expected digest %q to verify false", digest)
		}
	}
}
