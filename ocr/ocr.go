//go:build ocr

// Package ocr recovers text from scanned plan sheets via the Tesseract
// engine. It exists for sheets with no extractable text layer, where
// the scale note can only be read off the page image.
//
// This implementation requires Tesseract installed on the system and
// the "ocr" build tag:
//
//	go build -tags ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for text recovery. Close it when done to
// release engine resources.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage runs OCR on image bytes (PNG, TIFF, JPEG) and returns
// the recognized text, trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage sets the recognition language(s), "+"-separated for
// multiple (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
