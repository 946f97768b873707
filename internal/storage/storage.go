package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage handles reading and writing cached swatch icons
type Storage struct {
	CacheDir string
}

// New creates a new Storage instance rooted at cacheDir
func New(cacheDir string) *Storage {
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "colors")
	}
	return &Storage{CacheDir: cacheDir}
}

// Path helpers
func (s *Storage) IconsDir() string {
	return filepath.Join(s.CacheDir, "icons")
}

func (s *Storage) IconPath(key string) string {
	return filepath.Join(s.IconsDir(), key+".png")
}

// EnsureIconsDir creates the icons directory if it doesn't exist
func (s *Storage) EnsureIconsDir() error {
	return os.MkdirAll(s.IconsDir(), 0755)
}

// IconExists checks if an icon for key is already cached
func (s *Storage) IconExists(key string) bool {
	info, err := os.Stat(s.IconPath(key))
	return err == nil && info.Size() > 0
}

// SaveIcon writes icon data for key. The file is written next to its final
// location and renamed so readers never see a partial image.
func (s *Storage) SaveIcon(key string, data []byte) (string, error) {
	if err := s.EnsureIconsDir(); err != nil {
		return "", fmt.Errorf("creating icons dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.IconsDir(), key+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp icon: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing icon: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing icon: %w", err)
	}

	path := s.IconPath(key)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("renaming icon: %w", err)
	}
	return path, nil
}

// LoadIcon reads cached icon data for key; a missing icon returns nil
func (s *Storage) LoadIcon(key string) ([]byte, error) {
	data, err := os.ReadFile(s.IconPath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading icon: %w", err)
	}
	return data, nil
}

// Clear removes every cached icon
func (s *Storage) Clear() error {
	err := os.RemoveAll(s.IconsDir())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
