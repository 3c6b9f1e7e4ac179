//go:build !ocr

// Package ocr recovers text from scanned plan sheets via the Tesseract
// engine. It exists for sheets with no extractable text layer, where
// the scale note can only be read off the page image.
//
// This is the stub used without the "ocr" build tag; every operation
// returns ErrNotEnabled and the pipeline falls back to the default
// sheet scale. To enable OCR, install Tesseract and rebuild:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrNotEnabled is returned when OCR support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client; every operation fails with
// ErrNotEnabled.
type Client struct{}

// New returns ErrNotEnabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. Safe on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}
