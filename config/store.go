package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Store maps setting keys to typed values. A Store is an explicit object
// with no process-wide state; storage on disk is a YAML mapping of keys
// to text-encoded settings.
type Store struct {
	entries map[string]Setting
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: map[string]Setting{}}
}

// OpenFile loads a store from path. A missing file yields an empty store.
func OpenFile(path string) (*Store, error) {
	st := NewStore()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := st.Load(f); err != nil {
		return nil, fmt.Errorf("error loading %q: %w", path, err)
	}
	return st, nil
}

// Get returns the setting for key.
func (st *Store) Get(key string) (Setting, bool) {
	s, ok := st.entries[key]
	return s, ok
}

// Set stores a setting under key, replacing any previous value.
func (st *Store) Set(key string, s Setting) {
	st.entries[key] = s
}

// Delete removes key from the store.
func (st *Store) Delete(key string) {
	delete(st.entries, key)
}

// Has reports whether key is present.
func (st *Store) Has(key string) bool {
	_, ok := st.entries[key]
	return ok
}

// Len returns the number of settings.
func (st *Store) Len() int {
	return len(st.entries)
}

// Keys returns all keys, sorted.
func (st *Store) Keys() []string {
	keys := make([]string, 0, len(st.entries))
	for k := range st.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (st *Store) encoded() map[string]string {
	m := make(map[string]string, len(st.entries))
	for k, s := range st.entries {
		m[k] = s.String()
	}
	return m
}

func (st *Store) decode(m map[string]string) error {
	entries := make(map[string]Setting, len(m))
	for k, v := range m {
		s, err := ParseSetting(v)
		if err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		entries[k] = s
	}
	st.entries = entries
	return nil
}

// Load replaces the store contents with the YAML mapping read from r.
func (st *Store) Load(r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m := map[string]string{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return err
	}
	return st.decode(m)
}

// Save writes the store as a YAML mapping to w.
func (st *Store) Save(w io.Writer) error {
	d, err := yaml.Marshal(st.encoded())
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// SaveFile writes the store to path.
func (st *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := st.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MergeJSON applies a JSON merge patch to the store: the current entries
// are patched as a JSON object of text-encoded settings. Null members
// delete keys, per merge-patch semantics.
func (st *Store) MergeJSON(patch []byte) error {
	doc, err := json.Marshal(st.encoded())
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	m := map[string]string{}
	if err := json.Unmarshal(out, &m); err != nil {
		return fmt.Errorf("%w: %w", ErrBadPatch, err)
	}
	return st.decode(m)
}
