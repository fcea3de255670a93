// file: model/url.go

package model

// ShortURL maps a short-form id to the complete long-form URL.
type ShortURL struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
