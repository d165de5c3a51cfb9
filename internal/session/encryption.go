package session

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
)

// identityAt loads the age identity from keyPath, generating and persisting
// a fresh one when the file does not exist.
func identityAt(keyPath string) (*age.X25519Identity, error) {
	data, err := os.ReadFile(keyPath)
	if err == nil {
		id, err := parseIdentity(data)
		if err != nil {
			return nil, fmt.Errorf("parsing identity key: %w", err)
		}
		return id, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading identity key: %w", err)
	}

	id, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity key: %w", err)
	}
	if err := os.WriteFile(keyPath, []byte(id.String()+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("writing identity key: %w", err)
	}
	return id, nil
}

// parseIdentity parses the contents of an identity key file.
func parseIdentity(data []byte) (*age.X25519Identity, error) {
	return age.ParseX25519Identity(strings.TrimSpace(string(data)))
}

// encryptData encrypts data using Age for the given recipient.
func encryptData(data []byte, recipient age.Recipient) ([]byte, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decryptData decrypts Age-encrypted data using the given identity.
func decryptData(data []byte, identity age.Identity) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(data), identity)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}
