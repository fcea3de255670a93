// file: repository/url_repository.go

package repository

import (
	"database/sql"
	"management-api/model"
)

// IURLRepository defines the contract for short-url database operations.
type IURLRepository interface {
	CreateURL(url *model.ShortURL) error
	GetURLByID(id string) (*model.ShortURL, error)
	GetAllURLs() ([]*model.ShortURL, error)
}

// URLRepository implements IURLRepository.
type URLRepository struct {
	DB *sql.DB
}

func NewURLRepository(db *sql.DB) *URLRepository {
	return &URLRepository{DB: db}
}

func (r *URLRepository) CreateURL(url *model.ShortURL) error {
	_, err := r.DB.Exec(`INSERT INTO urls (id, original_url) VALUES ($1, $2)`, url.ID, url.URL)
	return err
}

func (r *URLRepository) GetURLByID(id string) (*model.ShortURL, error) {
	url := &model.ShortURL{ID: id}
	err := r.DB.QueryRow(`SELECT original_url FROM urls WHERE id = $1`, id).Scan(&url.URL)
	if err != nil {
		return nil, err // sql.ErrNoRows if not found
	}
	return url, nil
}

func (r *URLRepository) GetAllURLs() ([]*model.ShortURL, error) {
	rows, err := r.DB.Query(`SELECT id, original_url FROM urls`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []*model.ShortURL{}
	for rows.Next() {
		u := &model.ShortURL{}
		if err := rows.Scan(&u.ID, &u.URL); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}
