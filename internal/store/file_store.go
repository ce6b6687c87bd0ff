// SPDX-License-Identifier: EPL-2.0

// Package store writes finished WAV files to a local directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is used when Save is called without a file name.
const DefaultName = "gemini-speech"

var ErrInvalidName = errors.New("invalid file name")

// FileStore saves audio bytes as {Dir}/{name}.wav.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{Dir: dir}
}

// Path returns where Save would put name.
func (fs *FileStore) Path(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".wav")
	if name == "" {
		name = DefaultName
	}

	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(fs.Dir, name+".wav"), nil
}

// Save writes data next to its final location and renames it into place,
// so a reader never sees a partially written file.
func (fs *FileStore) Save(data []byte, name string) (string, error) {
	path, err := fs.Path(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating audio dir: %w", err)
	}

	tmp, err := os.CreateTemp(fs.Dir, ".speech-*.wav.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("moving %s into place: %w", path, err)
	}

	return path, nil
}

// Replace saves data and then removes previous, the file the new recording
// supersedes. When the save fails previous is left in place. A previous file
// that is already gone, or that is the new file itself, is not removed.
func (fs *FileStore) Replace(previous string, data []byte, name string) (string, error) {
	path, err := fs.Save(data, name)
	if err != nil {
		return "", err
	}

	if previous == "" || samePath(previous, path) {
		return path, nil
	}

	if err := os.Remove(previous); err != nil && !errors.Is(err, os.ErrNotExist) {
		return path, fmt.Errorf("releasing %s: %w", previous, err)
	}

	return path, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}
