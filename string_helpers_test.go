package main

import (
	"errors"
	"testing"

	"golang.org/x/text/transform"
)

func TestNormalizePlaceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "CHICAGO", "chicago"},
		{"strips diacritics", "Kraków", "krakow"},
		{"strips diacritics and lowercases", "São Paulo", "sao paulo"},
		{"already normalized", "denver", "denver"},
		{"keeps spaces", "Salt Lake City", "salt lake city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePlaceName(tt.input)
			if err != nil {
				t.Fatalf("normalizePlaceName(%q) returned an unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("normalizePlaceName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePlaceName_InvalidUTF8(t *testing.T) {
	_, err := normalizePlaceName(string([]byte{0xff, 0xfe}))
	if err == nil {
		t.Error("Expected an error for invalid UTF-8 input, but got nil")
	}
}

// mockTransformer simulates a failure inside the transform chain.
type mockTransformer struct {
	err error
}

func (mt mockTransformer) TransformString(t transform.Transformer, s string) (string, int, error) {
	return "", 0, mt.err
}

func TestNormalizePlaceName_TransformError(t *testing.T) {
	original := transformer
	defer func() { transformer = original }()

	transformer = mockTransformer{err: errors.New("transform failed")}

	_, err := normalizePlaceName("Chicago")
	if err == nil {
		t.Error("Expected an error from the failing transformer, but got nil")
	}
}
