package pkg

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestHostKeySurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := hostKeySigner(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := hostKeySigner(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("host key changed between starts")
	}
}

func TestHostKeyDiffersPerFile(t *testing.T) {
	dir := t.TempDir()
	a, err := hostKeySigner(filepath.Join(dir, "a"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := hostKeySigner(filepath.Join(dir, "b"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.PublicKey().Marshal(), b.PublicKey().Marshal()) {
		t.Error("distinct key files produced the same key")
	}
}
