package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSeller(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"store byline", "Visit the Acme Store", "Acme"},
		{"author byline", "by Jane Doe", "Jane Doe"},
		{"blank", "   ", ""},
		{"case insensitive", "VISIT THE acme store", "acme"},
		{"plain brand", "Acme", "Acme"},
		{"brand containing store", "Storefront Co", "Storefront Co"},
		{"store suffix with padding", "  Acme   Store  ", "Acme"},
		{"only boilerplate", "Visit the  Store", "Store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSeller(tt.in))
		})
	}
}

func TestSplitBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"no markers", "single line", []string{"single line"}},
		{"leading marker stays", "• one • two", []string{"• one", "• two"}},
		{"newlines", "one\ntwo\n\nthree", []string{"one", "two", "three"}},
		{"mixed markers", "a* b· c", []string{"a", "* b", "· c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitBullets(tt.in))
		})
	}
}

func TestRankBeforeQualifier(t *testing.T) {
	assert.Equal(t, "#1,234 in Widgets", rankBeforeQualifier("#1,234 in Widgets (See Top 100)"))
	assert.Equal(t, "#9 in Tools", rankBeforeQualifier("#9 in Tools"))
	assert.Equal(t, "#1 in A", rankBeforeQualifier("#1 in A (x) #2 in B (y)"))
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "a b c", normalizeSpace("  a \n\t b  c  "))
	assert.Equal(t, "", normalizeSpace(" \n "))
}
