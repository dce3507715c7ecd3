// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth_test

import (
	"strings"
	"testing"

	"github.com/danielhkuo/pollwave/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("Hash must not equal the plaintext")
	}

	if !auth.CheckPassword(hash, "hunter2") {
		t.Error("Expected correct password to verify")
	}
	if auth.CheckPassword(hash, "hunter3") {
		t.Error("Expected wrong password to fail")
	}
	if auth.CheckPassword(hash, "") {
		t.Error("Expected empty password to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := auth.HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := auth.HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("Two hashes of the same password must differ")
	}
}

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token, err := auth.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}
		if token == "" {
			t.Fatal("Expected non-empty token")
		}
		if strings.ContainsAny(token, "+/=") {
			t.Errorf("Token %q is not URL-safe unpadded base64", token)
		}
		if seen[token] {
			t.Fatal("Duplicate token generated")
		}
		seen[token] = true
	}
}
