package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StringTransformer defines the contract for a function that can transform a string.
type StringTransformer interface {
	TransformString(t transform.Transformer, s string) (string, int, error)
}

// defaultTransformer is the production implementation of StringTransformer.
type defaultTransformer struct{}

func (dt defaultTransformer) TransformString(t transform.Transformer, s string) (string, int, error) {
	return transform.String(t, s)
}

// transformer is swapped out in tests.
var transformer StringTransformer = defaultTransformer{}

// normalizeCityQuery collapses whitespace in user input and composes it into
// NFC. Case and diacritics are left alone.
func normalizeCityQuery(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("input string is not valid UTF-8")
	}
	collapsed := strings.Join(strings.Fields(s), " ")
	result, _, err := transformer.TransformString(norm.NFC, collapsed)
	if err != nil {
		return "", err
	}
	return result, nil
}
