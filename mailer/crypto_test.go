package mailer

import "testing"

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestSecretRoundTrip(t *testing.T) {
	enc, err := EncryptSecret(testKey, "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if enc == "hunter2" {
		t.Fatal("ciphertext equals plaintext")
	}

	dec, err := DecryptSecret(testKey, enc)
	if err != nil {
		t.Fatal(err)
	}
	if dec != "hunter2" {
		t.Errorf("decrypted = %q, want hunter2", dec)
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	enc, err := EncryptSecret(testKey, "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	wrongKey := []byte("ffffffffffffffffffffffffffffffff")
	if _, err := DecryptSecret(wrongKey, enc); err == nil {
		t.Error("expected decryption with wrong key to fail")
	}
}

func TestDecryptGarbageFails(t *testing.T) {
	if _, err := DecryptSecret(testKey, "not-base64!!"); err == nil {
		t.Error("expected decode error")
	}
	if _, err := DecryptSecret(testKey, "c2hvcnQ="); err == nil {
		t.Error("expected ciphertext-too-short error")
	}
}
