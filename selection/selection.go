// Package selection decides which fields of a product record a copy action writes out.
package selection

import (
	"github.com/raushankrgupta/product-clipper/formatter"
	"github.com/raushankrgupta/product-clipper/models"
)

// Selection is the outcome of the selection policy
type Selection struct {
	Fields  []formatter.Field `json:"fields"`
	Missing []string          `json:"missing,omitempty"` // Labels of requested fields that were not found

	single bool
}

// Partial reports whether some requested field could not be filled
func (s Selection) Partial() bool {
	return len(s.Missing) > 0
}

// Text is the clipboard text for the selection. A single-field action copies
// the bare value, e.g. just the image URL; copy-all writes labelled lines.
func (s Selection) Text() string {
	if s.single {
		if len(s.Fields) == 0 {
			return ""
		}
		return s.Fields[0].Value
	}
	return formatter.Lines(s.Fields)
}

// singleField maps the single-field actions to the field they copy
var singleField = map[models.Action]models.FieldKey{
	models.ActionImage:     models.FieldImageURL,
	models.ActionAffiliate: models.FieldAffiliateLink,
	models.ActionTitle:     models.FieldTitle,
}

// SingleField returns the field targeted by a single-field action
func SingleField(action models.Action) (models.FieldKey, bool) {
	key, ok := singleField[action]
	return key, ok
}

// SelectFields applies the policy for one action.
//
// The image, affiliate and title actions ignore the settings and target one
// field; when it is absent the selection has no fields and reports the label
// as missing. The all action walks the catalog in order and keeps the enabled
// fields that are present, then appends the image URL whenever it was found,
// whatever its toggle says. A missing image URL is only reported when its
// toggle is on.
func SelectFields(action models.Action, settings models.Settings, p *models.Product) Selection {
	var sel Selection

	if key, ok := singleField[action]; ok {
		sel.single = true
		if v, present := formatter.Value(p, key); present {
			sel.Fields = append(sel.Fields, formatter.Field{Key: key, Label: formatter.Label(key), Value: v})
		} else {
			sel.Missing = append(sel.Missing, formatter.Label(key))
		}
		return sel
	}

	settings = settings.WithDefaults()
	for _, e := range formatter.Catalog {
		if !settings.Enabled(e.Key) {
			continue
		}
		if v, present := formatter.Value(p, e.Key); present {
			sel.Fields = append(sel.Fields, formatter.Field{Key: e.Key, Label: e.Label, Value: v})
		} else {
			sel.Missing = append(sel.Missing, e.Label)
		}
	}

	image := formatter.ImageEntry
	if v, present := formatter.Value(p, image.Key); present {
		sel.Fields = append(sel.Fields, formatter.Field{Key: image.Key, Label: image.Label, Value: v})
	} else if settings.Enabled(image.Key) {
		sel.Missing = append(sel.Missing, image.Label)
	}

	return sel
}
