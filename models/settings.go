package models

import (
	"fmt"
	"strings"
)

// FieldKey identifies a field of the copy-all catalog
type FieldKey string

const (
	FieldTitle          FieldKey = "title"
	FieldPrice          FieldKey = "price"
	FieldListPrice      FieldKey = "listPrice"
	FieldRating         FieldKey = "rating"
	FieldAffiliateLink  FieldKey = "affiliateLink"
	FieldImageURL       FieldKey = "imageUrl"
	FieldDescription    FieldKey = "description"
	FieldASIN           FieldKey = "asin"
	FieldSeller         FieldKey = "seller"
	FieldBestSeller     FieldKey = "bestSeller"
	FieldDetailedRating FieldKey = "detailedRating"
)

// FieldKeys lists every key a Settings value may hold
var FieldKeys = []FieldKey{
	FieldTitle, FieldPrice, FieldListPrice, FieldRating, FieldAffiliateLink, FieldImageURL,
	FieldDescription, FieldASIN, FieldSeller, FieldBestSeller, FieldDetailedRating,
}

// Settings holds the user's "include in copy-all" toggles
type Settings map[FieldKey]bool

// DefaultSettings returns the toggles used when nothing has been saved yet
func DefaultSettings() Settings {
	return Settings{
		FieldTitle:          true,
		FieldPrice:          true,
		FieldListPrice:      false,
		FieldRating:         true,
		FieldAffiliateLink:  true,
		FieldImageURL:       true,
		FieldDescription:    true,
		FieldASIN:           true,
		FieldSeller:         false,
		FieldBestSeller:     false,
		FieldDetailedRating: false,
	}
}

// WithDefaults returns a copy where missing keys take their default value
// and keys outside the catalog are dropped.
func (s Settings) WithDefaults() Settings {
	out := DefaultSettings()
	for _, key := range FieldKeys {
		if v, ok := s[key]; ok {
			out[key] = v
		}
	}
	return out
}

// Enabled reports whether the field is toggled on
func (s Settings) Enabled(key FieldKey) bool {
	return s[key]
}

// Action is the scope of a single copy operation
type Action string

const (
	ActionAll       Action = "all"
	ActionImage     Action = "image"
	ActionAffiliate Action = "affiliate"
	ActionTitle     Action = "title"
)

// ParseAction accepts both the short action names and the shortcut command names.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "copy-all", "copy-all-data":
		return ActionAll, nil
	case "image", "copy-image", "copy-image-link":
		return ActionImage, nil
	case "affiliate", "copy-affiliate", "copy-affiliate-link":
		return ActionAffiliate, nil
	case "title", "copy-title":
		return ActionTitle, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}
