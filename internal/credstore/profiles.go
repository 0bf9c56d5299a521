package credstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ravenbix/rstools/models"
)

type fileProfileStore struct {
	path   string
	sealer *sealer

	mu       sync.RWMutex
	profiles map[string]models.ConnectionProfile
}

type persistedProfiles struct {
	Profiles map[string]models.ConnectionProfile `json:"profiles"`
}

// NewFileProfileStore loads (or initializes) the profile file at path and
// returns a [ProfileStore] over it.
func NewFileProfileStore(path string) (ProfileStore, error) {
	s := &fileProfileStore{
		path:     path,
		sealer:   newSealer(),
		profiles: make(map[string]models.ConnectionProfile),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileProfileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read profile file: %w", err)
	}

	var st persistedProfiles
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode profile file: %w", err)
	}
	if st.Profiles != nil {
		s.profiles = st.Profiles
	}

	return nil
}

func (s *fileProfileStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(persistedProfiles{Profiles: s.profiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}

	// owner-only: the file carries sealed passwords
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	return nil
}

func (s *fileProfileStore) Save(ctx context.Context, profile models.ConnectionProfile, password, passphrase string) error {
	if password != "" && passphrase == "" {
		return ErrNoPassphrase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile.SealedPassword = ""
	profile.KeySalt = ""

	if password != "" {
		salt, err := s.sealer.generateSalt()
		if err != nil {
			return err
		}

		key := s.sealer.deriveKey(passphrase, salt)
		sealed, err := s.sealer.seal([]byte(password), key)
		if err != nil {
			return fmt.Errorf("seal password: %w", err)
		}

		profile.SealedPassword = sealed
		profile.KeySalt = base64.StdEncoding.EncodeToString(salt)
	}

	profile.UpdatedAt = time.Now().UTC()
	s.profiles[profile.Name] = profile

	return s.persist()
}

func (s *fileProfileStore) Resolve(ctx context.Context, name, passphrase string) (models.ConnectionProfile, string, error) {
	s.mu.RLock()
	profile, ok := s.profiles[name]
	s.mu.RUnlock()

	if !ok {
		return models.ConnectionProfile{}, "", fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	if profile.SealedPassword == "" {
		return profile, "", nil
	}

	salt, err := base64.StdEncoding.DecodeString(profile.KeySalt)
	if err != nil {
		return models.ConnectionProfile{}, "", fmt.Errorf("decode key salt: %w", err)
	}

	key := s.sealer.deriveKey(passphrase, salt)
	password, err := s.sealer.open(profile.SealedPassword, key)
	if err != nil {
		return models.ConnectionProfile{}, "", fmt.Errorf("unseal password for profile %q: %w", name, err)
	}

	return profile, string(password), nil
}

func (s *fileProfileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	delete(s.profiles, name)
	return s.persist()
}

func (s *fileProfileStore) List(ctx context.Context) ([]models.ConnectionProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ConnectionProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
