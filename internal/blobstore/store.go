package blobstore

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a content-addressed blob store on local disk. The storage ref
// is the relative path under the root; identical bytes land on the same
// path, so writes are idempotent.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &Store{root: root}, nil
}

// Save writes content under its hash and returns the storage ref.
// Re-saving existing content is a no-op.
func (s *Store) Save(hash []byte, content []byte) (string, error) {
	hexHash := hex.EncodeToString(hash)
	ref := filepath.Join(hexHash[:2], hexHash[2:4], hexHash+".bin")
	path := filepath.Join(s.root, ref)
	if _, err := os.Stat(path); err == nil {
		return ref, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("publish blob: %w", err)
	}
	return ref, nil
}

// Load reads content by storage ref.
func (s *Store) Load(ref string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, ref))
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", ref, err)
	}
	return data, nil
}
