package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/storage"
	"github.com/akyairhashvil/kidquest/internal/tracker"
	"github.com/akyairhashvil/kidquest/internal/tui"
	"github.com/akyairhashvil/kidquest/internal/util"
)

const maxPassphraseTries = 3

func main() {
	ctx := context.Background()
	cfg := config.Load()
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	if _, err := util.EnsureDir(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create data directory %s: %v\n", cfg.DataDir, err)
	}
	closeLog := setupLogging(cfg, interactive)
	defer closeLog()

	backend, closeBackend := openBackend(ctx, cfg, os.Stderr)
	defer closeBackend()
	store := tracker.New(ctx, backend)

	if !interactive {
		if err := writeSummary(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	key, err := resolveBackupKey(cfg, promptForKey, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	model := tui.New(ctx, store, tui.Options{
		Theme:      cfg.Theme,
		BackupKey:  key,
		ReportsDir: util.ReportsDir(config.AppName),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		closeBackend()
		os.Exit(1)
	}
}

// setupLogging points the standard logger at the log file while the TUI owns
// the terminal. The returned func closes whatever was opened.
func setupLogging(cfg *config.Config, interactive bool) func() {
	if !cfg.LogToFile {
		util.DiscardLogs()
		return func() {}
	}
	if !interactive {
		return func() {}
	}
	f, err := tea.LogToFile(cfg.LogPath(), config.AppName)
	if err != nil {
		util.DiscardLogs()
		return func() {}
	}
	return func() { _ = f.Close() }
}

// openBackend picks the storage backend named by cfg. A SQLite file that
// cannot be opened falls back to memory so the session still works.
func openBackend(ctx context.Context, cfg *config.Config, warn io.Writer) (storage.Backend, func()) {
	switch cfg.Storage {
	case config.StorageOff:
		return storage.Nop{}, func() {}
	case config.StorageMemory:
		return storage.NewMemory(), func() {}
	}
	db, err := storage.Open(ctx, cfg.DBPath())
	if err != nil {
		util.LogWarn("falling back to memory storage: %v", err)
		fmt.Fprintf(warn, "Progress will not be saved this session: %v\n", err)
		return storage.NewMemory(), func() {}
	}
	return db, func() { util.LogError("close database", db.Close()) }
}

// resolveBackupKey returns the passphrase for backups: the configured one, a
// prompted one, or "" for unencrypted backups.
func resolveBackupKey(cfg *config.Config, prompt func(string) (string, error), out io.Writer) (string, error) {
	if cfg.BackupKey != "" || !cfg.PromptBackup {
		return cfg.BackupKey, nil
	}
	for tries := 0; tries < maxPassphraseTries; tries++ {
		pass, err := prompt("Backup passphrase (leave empty for unencrypted backups): ")
		if err != nil {
			return "", err
		}
		if pass == "" {
			return "", nil
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			fmt.Fprintf(out, "Passphrase too weak: %v\n", err)
			continue
		}
		return pass, nil
	}
	fmt.Fprintln(out, "No usable passphrase given. Backups will not be encrypted.")
	return "", nil
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
