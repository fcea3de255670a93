// file: service/shortener_service.go

package service

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"management-api/model"
	"management-api/repository"
)

var ErrURLNotFound = errors.New("url not found")

// ShortenerService mints short ids and resolves them back to long URLs.
type ShortenerService struct {
	repo repository.IURLRepository
}

func NewShortenerService(repo repository.IURLRepository) *ShortenerService {
	return &ShortenerService{repo: repo}
}

// newShortID returns 6 random bytes encoded as URL-safe base64 (8 chars).
func newShortID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate short id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *ShortenerService) Shorten(longURL string) (*model.ShortURL, error) {
	id, err := newShortID()
	if err != nil {
		return nil, err
	}

	url := &model.ShortURL{ID: id, URL: longURL}
	if err := s.repo.CreateURL(url); err != nil {
		return nil, err
	}
	return url, nil
}

func (s *ShortenerService) Resolve(id string) (*model.ShortURL, error) {
	url, err := s.repo.GetURLByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrURLNotFound
		}
		return nil, err
	}
	return url, nil
}

func (s *ShortenerService) ListURLs() ([]*model.ShortURL, error) {
	return s.repo.GetAllURLs()
}
