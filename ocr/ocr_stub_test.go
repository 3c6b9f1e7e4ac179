//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsErrNotEnabled(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("New() error = %v, want ErrNotEnabled", err)
	}
	if client != nil {
		t.Error("New() returned a client with OCR disabled")
	}
}

func TestStubOperations(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}

	c := &Client{}
	if _, err := c.RecognizeImage([]byte{1, 2, 3}); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeImage error = %v, want ErrNotEnabled", err)
	}
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetLanguage error = %v, want ErrNotEnabled", err)
	}
}
