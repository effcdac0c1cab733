package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/kidquest/internal/util"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration resolved from the environment.
type Config struct {
	DataDir      string
	Storage      string
	Theme        string
	LogToFile    bool
	BackupKey    string
	PromptBackup bool
}

// DBPath is the SQLite file holding the tracker state.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// LogPath is where the TUI writes its log while it owns the terminal.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; variables
// already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		util.LogError("load .env", err)
	}
	return &Config{
		DataDir:      getEnv("KIDQUEST_DATA_DIR", util.DataDir(AppName)),
		Storage:      normalizeStorage(getEnv("KIDQUEST_STORAGE", StorageSQLite)),
		Theme:        getEnv("KIDQUEST_THEME", "default"),
		LogToFile:    getEnv("KIDQUEST_LOG", "file") != "off",
		BackupKey:    os.Getenv("KIDQUEST_BACKUP_KEY"),
		PromptBackup: getEnv("KIDQUEST_BACKUP_PROMPT", "") == "1",
	}
}

func normalizeStorage(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case StorageMemory:
		return StorageMemory
	case StorageOff, "none", "disabled":
		return StorageOff
	default:
		return StorageSQLite
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
