package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStorageInterface is the contract for blob storage. Paths are opaque
// below the base directory; the builders in paths.go produce them.
type FileStorageInterface interface {
	Save(file io.Reader, path string) (string, error)
	Delete(path string) error
	List(prefix string) ([]string, error)
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (*LocalFileStorage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("could not create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, path string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return path, nil
}

func (s *LocalFileStorage) Delete(path string) error {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(path))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}

// List returns the stored paths under a prefix, e.g. "equipment/<id>".
func (s *LocalFileStorage) List(prefix string) ([]string, error) {
	root := filepath.Join(s.basePath, filepath.FromSlash(prefix))
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var paths []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.basePath, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}
