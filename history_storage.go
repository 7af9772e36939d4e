package lineedit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// HistoryStorage persists accepted lines to durable storage. Persistence is
// always explicit: the editor only touches storage through SaveHistory and
// LoadHistory, never automatically.
type HistoryStorage interface {
	// Save replaces the stored history with entries, oldest first.
	Save(entries []string) error
	// Load returns the stored history, oldest first.
	// A missing store is not an error; it loads as empty.
	Load() ([]string, error)
}

// NoopHistoryStorage discards saves and loads nothing.
type NoopHistoryStorage struct{}

func (NoopHistoryStorage) Save(entries []string) error { return nil }
func (NoopHistoryStorage) Load() ([]string, error)     { return nil, nil }

// FileHistoryStorage stores history in a plain text file, one entry per line.
// Newlines and backslashes inside entries are escaped so multi-line entries
// survive the round trip.
type FileHistoryStorage struct {
	path string
}

// NewFileHistoryStorage creates a storage backed by the file at path.
// Parent directories are created on Save.
func NewFileHistoryStorage(path string) *FileHistoryStorage {
	return &FileHistoryStorage{path: path}
}

// Save writes all entries to the file, replacing its previous content.
func (s *FileHistoryStorage) Save(entries []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("lineedit: create history directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("lineedit: create history file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, escapeEntry(entry)); err != nil {
			return fmt.Errorf("lineedit: write history file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("lineedit: write history file: %w", err)
	}
	return nil
}

// Load reads all entries from the file. A missing file loads as empty.
func (s *FileHistoryStorage) Load() ([]string, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lineedit: open history file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entries = append(entries, unescapeEntry(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lineedit: read history file: %w", err)
	}
	return entries, nil
}

// escapeEntry makes an entry safe for line-per-entry storage:
// backslash first, then newline.
func escapeEntry(entry string) string {
	out := make([]byte, 0, len(entry))
	for i := 0; i < len(entry); i++ {
		switch entry[i] {
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, entry[i])
		}
	}
	return string(out)
}

// unescapeEntry reverses escapeEntry. Unknown escapes are kept as-is.
func unescapeEntry(escaped string) string {
	out := make([]byte, 0, len(escaped))
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '\\' && i+1 < len(escaped) {
			switch escaped[i+1] {
			case 'n':
				out = append(out, '\n')
				i++
				continue
			case '\\':
				out = append(out, '\\')
				i++
				continue
			}
		}
		out = append(out, escaped[i])
	}
	return string(out)
}

// Ensure implementations satisfy their interfaces
var (
	_ HistoryStorage = NoopHistoryStorage{}
	_ HistoryStorage = (*FileHistoryStorage)(nil)
)
