package auth

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	var h PasswordHasher

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("s3cret-pass", hash) {
		t.Fatalf("expected verify to succeed for matching plaintext")
	}
	if h.Verify("wrong-pass", hash) {
		t.Fatalf("expected verify to fail for wrong plaintext")
	}
}

func TestPasswordHasher_SaltUniqueness(t *testing.T) {
	var h PasswordHasher

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	var h PasswordHasher

	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$12$tooshort"} {
		if h.Verify("anything", bad) {
			t.Fatalf("verify(%q) must return false, not succeed", bad)
		}
	}
}
