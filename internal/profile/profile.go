// Package profile stores the offline player identities the CLI falls
// back to when a caller doesn't supply a real Microsoft/Mojang account:
// a generated id/name/token triple, persisted so repeated CLI
// invocations reuse the same identity instead of minting a new uuid
// every launch. The resolver, synthesizer and diagnoser never see this
// package — it is a caller-side convenience, not part of the core.
package profile

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rowanmc/mccore/internal/launch"
)

// Profile is one stored offline identity.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AccessToken string    `json:"accessToken"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToLaunchProfile adapts a stored Profile into the shape BuildClientArgv
// expects.
func (p *Profile) ToLaunchProfile() *launch.GameProfile {
	return &launch.GameProfile{ID: p.ID, Name: p.Name}
}

func newOfflineProfile(name string) *Profile {
	return &Profile{
		ID:          randomHex(16),
		Name:        name,
		AccessToken: randomHex(16),
		CreatedAt:   time.Unix(0, 0), // stamped by the caller before Add/Save; see EnsureActive
	}
}

func randomHex(nBytes int) string {
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// Store is a small JSON file of offline profiles, mirroring the
// load/save/active-id shape of an account manager.
type Store struct {
	Profiles []*Profile `json:"profiles"`
	ActiveID string     `json:"activeId"`

	filePath string
}

// NewStore binds a Store to {dataDir}/profiles.json.
func NewStore(dataDir string) *Store {
	return &Store{
		Profiles: []*Profile{},
		filePath: filepath.Join(dataDir, "profiles.json"),
	}
}

// Load reads the store from disk; a missing file is not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, s)
}

// Save writes the store to disk.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}

// Add stores p, replacing any existing profile with the same ID, and
// makes it active if no profile was active yet.
func (s *Store) Add(p *Profile) {
	for i, existing := range s.Profiles {
		if existing.ID == p.ID {
			s.Profiles[i] = p
			return
		}
	}
	s.Profiles = append(s.Profiles, p)
	if s.ActiveID == "" {
		s.ActiveID = p.ID
	}
}

// GetActive returns the active profile, or nil if none is set.
func (s *Store) GetActive() *Profile {
	if s.ActiveID == "" {
		return nil
	}
	for _, p := range s.Profiles {
		if p.ID == s.ActiveID {
			return p
		}
	}
	return nil
}

// SetActive marks id as active; it must already exist in the store.
func (s *Store) SetActive(id string) error {
	for _, p := range s.Profiles {
		if p.ID == id {
			s.ActiveID = id
			return nil
		}
	}
	return fmt.Errorf("profile not found: %s", id)
}

// EnsureActive returns the active profile, creating and persisting one
// named name (falling back to "Player") if the store is empty.
func (s *Store) EnsureActive(name string) (*Profile, error) {
	if active := s.GetActive(); active != nil {
		return active, nil
	}
	if name == "" {
		name = "Player"
	}
	p := newOfflineProfile(name)
	p.CreatedAt = time.Now()
	s.Add(p)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return p, nil
}
