package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ObjectState represents the last conversion of a single documented object
type ObjectState struct {
	Kind        string `json:"kind"`
	Hash        string `json:"hash"`
	Convention  string `json:"convention"`
	ConvertedAt int64  `json:"converted_at"`
}

// ManifestState represents the last seen version of a manifest file
type ManifestState struct {
	MTime int64  `json:"mtime"`
	Hash  string `json:"hash"`
}

// State represents the build state
type State struct {
	Objects   map[string]*ObjectState   `json:"objects"`   // qualified name -> state
	Manifests map[string]*ManifestState `json:"manifests"` // manifest path -> state
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Objects:   make(map[string]*ObjectState),
		Manifests: make(map[string]*ManifestState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}

	if state.Objects == nil {
		state.Objects = make(map[string]*ObjectState)
	}
	if state.Manifests == nil {
		state.Manifests = make(map[string]*ManifestState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// HashText computes the SHA256 hash of a docstring
func HashText(text string) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256([]byte(text)))
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if an object's docstring differs from the last build
func (s *State) HasChanged(name, docstring string) bool {
	objectState, exists := s.Objects[name]
	if !exists {
		return true
	}
	return objectState.Hash != HashText(docstring)
}

// Update records the conversion of an object
func (s *State) Update(name, kind, docstring, convention string) {
	s.Objects[name] = &ObjectState{
		Kind:        kind,
		Hash:        HashText(docstring),
		Convention:  convention,
		ConvertedAt: time.Now().Unix(),
	}
}

// ManifestChanged checks if a manifest file changed since it was last recorded
// Uses hybrid mtime + hash approach
func (s *State) ManifestChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	manifestState, exists := s.Manifests[path]
	if !exists {
		return true, nil
	}

	// Fast path: check mtime first
	if info.ModTime().Unix() == manifestState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != manifestState.Hash, nil
}

// UpdateManifest records the current version of a manifest file
func (s *State) UpdateManifest(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	s.Manifests[path] = &ManifestState{
		MTime: info.ModTime().Unix(),
		Hash:  hash,
	}

	return nil
}

// GetConvertedAt returns when an object was last converted
func (s *State) GetConvertedAt(name string) time.Time {
	if objectState, exists := s.Objects[name]; exists {
		return time.Unix(objectState.ConvertedAt, 0)
	}
	return time.Time{}
}
