package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/vfg2006/analytico-api/pkg/log"
)

// Storage guarda os arquivos de uploads e relatórios e devolve a URL pública
type Storage interface {
	Save(ctx context.Context, key string, content []byte) (string, error)
	Read(ctx context.Context, key string) ([]byte, error)
}

type fileStorage struct {
	fs        afero.Fs
	publicURL string
}

// NewLocalStorage grava em disco a partir de baseDir
func NewLocalStorage(baseDir, publicURL string) Storage {
	return NewStorage(afero.NewBasePathFs(afero.NewOsFs(), baseDir), publicURL)
}

func NewStorage(fs afero.Fs, publicURL string) Storage {
	return &fileStorage{
		fs:        fs,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("chave de arquivo inválida: %q", key)
	}
	return cleaned, nil
}

func (s *fileStorage) Save(ctx context.Context, key string, content []byte) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(path.Dir(cleaned), os.ModePerm); err != nil {
		return "", fmt.Errorf("erro ao criar diretório: %w", err)
	}

	if err := afero.WriteFile(s.fs, cleaned, content, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"key":  cleaned,
		"size": len(content),
	}).Debug("storage: arquivo gravado")

	return s.publicURL + cleaned, nil
}

func (s *fileStorage) Read(_ context.Context, key string) ([]byte, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(s.fs, cleaned)
}
