package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

type Credentials struct {
	Tokens map[string]string `json:"tokens"` // account ID → API token
}

// credMu guards read-modify-write cycles on the credentials file.
var credMu sync.Mutex

// CredentialsKeyEnv names the passphrase used to encrypt tokens at rest.
// When unset, tokens are stored as plaintext in the 0600 file.
const CredentialsKeyEnv = "POINTSDASH_CREDENTIALS_KEY"

const encPrefix = "enc:v1:"

func CredentialsPath() string {
	return filepath.Join(ConfigDir(), "credentials.json")
}

func LoadCredentials() (Credentials, error) {
	return LoadCredentialsFrom(CredentialsPath())
}

func LoadCredentialsFrom(path string) (Credentials, error) {
	creds := Credentials{Tokens: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return creds, nil
		}
		return creds, fmt.Errorf("reading credentials: %w", err)
	}

	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{Tokens: make(map[string]string)}, fmt.Errorf("parsing credentials %s: %w", path, err)
	}

	if creds.Tokens == nil {
		creds.Tokens = make(map[string]string)
	}

	for id, token := range creds.Tokens {
		plain, err := decryptToken(token)
		if err != nil {
			return creds, fmt.Errorf("decrypting token for %s: %w", id, err)
		}
		creds.Tokens[id] = plain
	}

	return creds, nil
}

func SaveToken(accountID, token string) error {
	return SaveTokenTo(CredentialsPath(), accountID, token)
}

func SaveTokenTo(path, accountID, token string) error {
	credMu.Lock()
	defer credMu.Unlock()

	creds, err := LoadCredentialsFrom(path)
	if err != nil {
		creds = Credentials{Tokens: make(map[string]string)}
	}

	creds.Tokens[accountID] = token

	return writeCredentials(path, creds)
}

func DeleteToken(accountID string) error {
	return DeleteTokenFrom(CredentialsPath(), accountID)
}

func DeleteTokenFrom(path, accountID string) error {
	credMu.Lock()
	defer credMu.Unlock()

	creds, err := LoadCredentialsFrom(path)
	if err != nil {
		return err
	}

	delete(creds.Tokens, accountID)

	return writeCredentials(path, creds)
}

func writeCredentials(path string, creds Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}

	stored := Credentials{Tokens: make(map[string]string, len(creds.Tokens))}
	for id, token := range creds.Tokens {
		enc, err := encryptToken(token)
		if err != nil {
			return fmt.Errorf("encrypting token for %s: %w", id, err)
		}
		stored.Tokens[id] = enc
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// encryptToken seals a token with AES-256-GCM when a passphrase is configured.
// The stored form is enc:v1:<base64(salt || nonce || ciphertext)>.
func encryptToken(token string) (string, error) {
	passphrase := os.Getenv(CredentialsKeyEnv)
	if passphrase == "" {
		return token, nil
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(token), nil)
	blob := append(append(salt, nonce...), sealed...)
	return encPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func decryptToken(stored string) (string, error) {
	if !strings.HasPrefix(stored, encPrefix) {
		return stored, nil
	}

	passphrase := os.Getenv(CredentialsKeyEnv)
	if passphrase == "" {
		return "", fmt.Errorf("%s is not set but credentials are encrypted", CredentialsKeyEnv)
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, encPrefix))
	if err != nil {
		return "", fmt.Errorf("decoding encrypted token: %w", err)
	}
	if len(blob) < 16 {
		return "", fmt.Errorf("encrypted token too short")
	}

	salt, rest := blob[:16], blob[16:]
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("encrypted token too short")
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("opening encrypted token: %w", err)
	}
	return string(plain), nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, 4096, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
