package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

// mockTransformer is a mock implementation of the StringTransformer interface.
type mockTransformer struct {
	err error
}

func (mt mockTransformer) TransformString(t transform.Transformer, s string) (string, int, error) {
	return "", 0, mt.err
}

func TestNormalizeCityQuery(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain name", "Paris", "Paris"},
		{"Surrounding whitespace", "  Paris\t", "Paris"},
		{"Inner whitespace collapsed", "New   York\n City", "New York City"},
		{"Blank input", "   ", ""},
		{"Empty input", "", ""},
		{"Case preserved", "rIO de janeiro", "rIO de janeiro"},
		{"Decomposed diacritic composed", "Zu\u0308rich", "Z\u00fcrich"},
		{"Precomposed diacritic kept", "Wrocław", "Wrocław"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeCityQuery(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNormalizeCityQuery_InvalidUTF8(t *testing.T) {
	_, err := normalizeCityQuery("Par\xffis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestNormalizeCityQuery_TransformError(t *testing.T) {
	original := transformer
	t.Cleanup(func() { transformer = original })

	wantErr := errors.New("transform failed")
	transformer = mockTransformer{err: wantErr}

	_, err := normalizeCityQuery("Paris")
	assert.ErrorIs(t, err, wantErr)
}
