package input

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/quasilyte/gdata/v2"
)

const (
	keymapObject   = "keymap"
	keymapProperty = "bindings"
)

// blobStore is the subset of gdata.Manager the keymap needs
type blobStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// KeyStore persists the keymap in the platform's per-user data directory
type KeyStore struct {
	data blobStore
}

// OpenKeyStore opens the data directory for appName
func OpenKeyStore(appName string) (*KeyStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("keymap store: %w", err)
	}
	return &KeyStore{data: m}, nil
}

// Load returns the stored keymap. A missing keymap yields the defaults; a
// stored keymap that fails to parse is an error
func (s *KeyStore) Load() (*KeyTable, error) {
	if !s.data.ObjectPropExists(keymapObject, keymapProperty) {
		log.Printf("[input] no stored keymap, using defaults")
		return DefaultKeyTable(), nil
	}
	raw, err := s.data.LoadObjectProp(keymapObject, keymapProperty)
	if err != nil {
		return nil, fmt.Errorf("keymap load: %w", err)
	}
	kt, err := ParseKeyTable(raw)
	if err != nil {
		return nil, fmt.Errorf("stored keymap corrupt: %w", err)
	}
	return kt, nil
}

// Save writes kt as TOML
func (s *KeyStore) Save(kt *KeyTable) error {
	raw, err := EncodeKeyTable(kt)
	if err != nil {
		return err
	}
	if err := s.data.SaveObjectProp(keymapObject, keymapProperty, raw); err != nil {
		return fmt.Errorf("keymap save: %w", err)
	}
	return nil
}

// LoadKeyFile reads a keymap from path with the same missing/corrupt rules as KeyStore.Load
func LoadKeyFile(path string) (*KeyTable, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[input] keymap %s not found, using defaults", path)
		return DefaultKeyTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	kt, err := ParseKeyTable(raw)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return kt, nil
}
