package hashes

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestBlake2bHasherIsPersonalized(t *testing.T) {
	data := []byte("USD Coin")
	hash := Blake2bHasher{}.Hash(data)
	plain := blake2b.Sum256(data)
	if bytes.Equal(hash.ByteSlice(), plain[:]) {
		t.Fatalf("personalized hash equals the plain blake2b-256 digest %x", plain)
	}
	if !hash.Equal(Blake2bHasher{}.Hash(data)) {
		t.Fatalf("hashing the same data twice gave different digests")
	}
	if hash.Equal(Blake2bHasher{}.Hash([]byte("USD Coin "))) {
		t.Fatalf("different data gave the same digest")
	}
}

func TestBlake2bHasherDigests(t *testing.T) {
	tests := []struct {
		data     []byte
		expected string
	}{
		{nil, "44f4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e"},
		{[]byte("USD Coin"), "b778eba714583fc3e39bba603768aa3586944926ddcedf280608a388364e9810"},
	}
	for _, test := range tests {
		hash := Blake2bHasher{}.Hash(test.data)
		if hex.EncodeToString(hash.ByteSlice()) != test.expected {
			t.Errorf("Hash(%q) is %s, want %s", test.data, hash, test.expected)
		}
	}
}

func TestHashWriterMatchesHasher(t *testing.T) {
	writer := NewDefaultHashWriter()
	writer.InfallibleWrite([]byte("USD "))
	writer.InfallibleWrite([]byte("Coin"))
	if !writer.Finalize().Equal(Blake2bHasher{}.Hash([]byte("USD Coin"))) {
		t.Fatalf("incremental hashing differs from one-shot hashing")
	}
}

func TestBlake160(t *testing.T) {
	data := []byte{0x02, 0x03}
	digest := Blake160(data)
	if len(digest) != Blake160Size {
		t.Fatalf("Blake160 returned %d bytes, want %d", len(digest), Blake160Size)
	}
	if !bytes.Equal(digest, Blake2bHasher{}.Hash(data).ByteSlice()[:Blake160Size]) {
		t.Fatalf("Blake160 is not a prefix of the full digest")
	}
}
