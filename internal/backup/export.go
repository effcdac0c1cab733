// Package backup writes tracker state to files outside the live database:
// JSON backups, optionally sealed with a passphrase, and PDF reports.
package backup

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/crypto/scrypt"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/storage"
)

var (
	// ErrWrongPassphrase means an encrypted backup could not be opened with
	// the given passphrase.
	ErrWrongPassphrase = errors.New("backup: wrong passphrase")
	// ErrPassphraseRequired means the backup is encrypted and no passphrase
	// was supplied.
	ErrPassphraseRequired = errors.New("backup: passphrase required")
	// ErrInvalidBackup means the file is not a tracker backup.
	ErrInvalidBackup = errors.New("backup: invalid backup file")
	// ErrNoBackups means the directory holds no backup files.
	ErrNoBackups = errors.New("backup: no backups found")
)

const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	keyLen       = 32
	saltLen      = 16
	timestampFmt = "20060102-150405"
)

type envelope struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func seal(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	wrapped := envelope{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, payload, nil)),
	}
	return json.MarshalIndent(wrapped, "", "  ")
}

func unseal(env envelope, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil || len(salt) == 0 {
		return nil, ErrInvalidBackup
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, ErrInvalidBackup
	}
	data, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, ErrInvalidBackup
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrInvalidBackup
	}
	payload, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return payload, nil
}

// Encode serializes state as a backup blob. An empty passphrase leaves it as
// plain JSON.
func Encode(state models.TrackerState, passphrase string) ([]byte, error) {
	payload, err := storage.EncodeState(state)
	if err != nil {
		return nil, err
	}
	if passphrase == "" {
		return payload, nil
	}
	return seal(payload, passphrase)
}

// Decode reverses Encode and checks the result the same way stored state is
// checked on startup.
func Decode(blob []byte, passphrase string) (models.TrackerState, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return models.TrackerState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	payload := blob
	if env.Encrypted {
		var err error
		if payload, err = unseal(env, passphrase); err != nil {
			return models.TrackerState{}, err
		}
	}
	state, err := storage.DecodeState(payload)
	if err != nil {
		return models.TrackerState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return state, nil
}

// FileName is the backup name for a snapshot taken at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s-%s.json", config.BackupPrefix, now.Format(timestampFmt))
}

// Export writes state into dir and returns the file path.
func Export(dir string, state models.TrackerState, passphrase string, now time.Time) (string, error) {
	blob, err := Encode(state, passphrase)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Import reads the backup at path.
func Import(path, passphrase string) (models.TrackerState, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return models.TrackerState{}, err
	}
	return Decode(blob, passphrase)
}

// Latest returns the newest backup in dir. The timestamped names sort in
// creation order.
func Latest(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, config.BackupPrefix+"-*.json"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNoBackups
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
