package session

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	stateFile = "state.yaml"
	keyFile   = "identity.key"
)

// state is the on-disk layout of the durable client state.
type state struct {
	// Token is the age-encrypted bearer token, base64-encoded.
	Token string `yaml:"token,omitempty"`
	// LastPage is the last page the user visited.
	LastPage string `yaml:"last_page,omitempty"`
}

// Store persists the token and last-active page across runs. The token is
// encrypted at rest with a machine-local age identity.
type Store struct {
	dir   string
	state state
	token string
}

// NewStore creates a Store rooted at dir (typically the finsight config
// directory).
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load rehydrates the durable state. A missing state file leaves the Store
// empty. An unreadable or undecryptable token is dropped, which forces the
// unauthenticated path at startup.
func (s *Store) Load() error {
	data, err := os.ReadFile(filepath.Join(s.dir, stateFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading state: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.state); err != nil {
		return fmt.Errorf("parsing state: %w", err)
	}

	if s.state.Token != "" {
		s.token = s.decryptToken(s.state.Token)
	}
	return nil
}

// Token returns the rehydrated bearer token, or "" when absent.
func (s *Store) Token() string {
	return s.token
}

// SetToken encrypts and persists the bearer token.
func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	id, err := identityAt(filepath.Join(s.dir, keyFile))
	if err != nil {
		return err
	}
	sealed, err := encryptData([]byte(token), id.Recipient())
	if err != nil {
		return fmt.Errorf("encrypting token: %w", err)
	}
	s.token = token
	s.state.Token = base64.StdEncoding.EncodeToString(sealed)
	return s.save()
}

// ClearToken removes the persisted token.
func (s *Store) ClearToken() error {
	s.token = ""
	s.state.Token = ""
	return s.save()
}

// LastPage returns the persisted page name, or "" when none was saved.
func (s *Store) LastPage() string {
	return s.state.LastPage
}

// SetLastPage persists the page name.
func (s *Store) SetLastPage(page string) error {
	if s.state.LastPage == page {
		return nil
	}
	s.state.LastPage = page
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := yaml.Marshal(&s.state)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, stateFile), data, 0o600); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

func (s *Store) decryptToken(sealed string) string {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return ""
	}
	keyData, err := os.ReadFile(filepath.Join(s.dir, keyFile))
	if err != nil {
		return ""
	}
	id, err := parseIdentity(keyData)
	if err != nil {
		return ""
	}
	plain, err := decryptData(raw, id)
	if err != nil {
		return ""
	}
	return string(plain)
}
