// file: service/shortener_service_test.go

package service

import (
	"database/sql"
	"management-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockURLRepo struct{ mock.Mock }

func (m *mockURLRepo) CreateURL(url *model.ShortURL) error {
	args := m.Called(url)
	return args.Error(0)
}
func (m *mockURLRepo) GetURLByID(id string) (*model.ShortURL, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShortURL), args.Error(1)
}
func (m *mockURLRepo) GetAllURLs() ([]*model.ShortURL, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShortURL), args.Error(1)
}

func TestShortenerService_Shorten(t *testing.T) {
	mockRepo := new(mockURLRepo)
	shortener := NewShortenerService(mockRepo)

	mockRepo.On("CreateURL", mock.MatchedBy(func(u *model.ShortURL) bool {
		// 6 random bytes encode to 8 URL-safe base64 characters.
		return len(u.ID) == 8 && u.URL == "https://example.com/some/long/path"
	})).Return(nil).Once()

	url, err := shortener.Shorten("https://example.com/some/long/path")

	assert.NoError(t, err)
	assert.Len(t, url.ID, 8)
	mockRepo.AssertExpectations(t)
}

func TestShortenerService_Shorten_UniqueIDs(t *testing.T) {
	mockRepo := new(mockURLRepo)
	shortener := NewShortenerService(mockRepo)

	mockRepo.On("CreateURL", mock.Anything).Return(nil).Twice()

	first, err := shortener.Shorten("https://example.com/a")
	assert.NoError(t, err)
	second, err := shortener.Shorten("https://example.com/b")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestShortenerService_Resolve(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mockURLRepo)
		shortener := NewShortenerService(mockRepo)

		stored := &model.ShortURL{ID: "abc123XY", URL: "https://example.com"}
		mockRepo.On("GetURLByID", "abc123XY").Return(stored, nil).Once()

		url, err := shortener.Resolve("abc123XY")

		assert.NoError(t, err)
		assert.Equal(t, "https://example.com", url.URL)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockURLRepo)
		shortener := NewShortenerService(mockRepo)

		mockRepo.On("GetURLByID", "nope").Return(nil, sql.ErrNoRows).Once()

		_, err := shortener.Resolve("nope")
		assert.ErrorIs(t, err, ErrURLNotFound)
	})
}
