package formatter

import (
	"testing"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatDetailedRating(t *testing.T) {
	tests := []struct {
		name   string
		rating models.DetailedRating
		want   string
	}{
		{
			name: "overall and breakdown",
			rating: models.DetailedRating{
				Overall: "4.5 out of 5 stars",
				Breakdown: []models.StarShare{
					{Stars: "5 star", Percentage: "70%"},
					{Stars: "4 star", Percentage: "20%"},
				},
			},
			want: "Overall: 4.5 out of 5 stars | Breakdown: 5 star: 70%, 4 star: 20%",
		},
		{
			name:   "all parts",
			rating: models.DetailedRating{Overall: "4.1 out of 5 stars", ReviewCount: "88 ratings", Breakdown: []models.StarShare{{Stars: "5 star", Percentage: "50%"}}},
			want:   "Overall: 4.1 out of 5 stars | Reviews: 88 ratings | Breakdown: 5 star: 50%",
		},
		{
			name:   "reviews only",
			rating: models.DetailedRating{ReviewCount: "12 ratings"},
			want:   "Reviews: 12 ratings",
		},
		{
			name:   "empty",
			rating: models.DetailedRating{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDetailedRating(tt.rating))
		})
	}
}

func TestValue(t *testing.T) {
	p := &models.Product{
		Title:       "Widget",
		Rating:      "4.5 out of 5 stars",
		ReviewCount: "10 ratings",
		Description: []string{"Strong", "Light"},
	}

	v, ok := Value(p, models.FieldTitle)
	assert.True(t, ok)
	assert.Equal(t, "Widget", v)

	v, ok = Value(p, models.FieldDescription)
	assert.True(t, ok)
	assert.Equal(t, "Strong\n• Light", v)

	v, ok = Value(p, models.FieldRating)
	assert.True(t, ok)
	assert.Equal(t, "4.5 out of 5 stars", v, "copy text keeps the raw rating")

	_, ok = Value(p, models.FieldPrice)
	assert.False(t, ok)

	_, ok = Value(p, models.FieldDetailedRating)
	assert.False(t, ok, "an empty detailed rating is absent")

	_, ok = Value(&models.Product{Description: []string{}}, models.FieldDescription)
	assert.False(t, ok)

	_, ok = Value(nil, models.FieldTitle)
	assert.False(t, ok)
}

func TestDisplay(t *testing.T) {
	p := &models.Product{Title: "Widget", Rating: "4.5 out of 5 stars", Description: []string{}}

	assert.Equal(t, "Widget", Display(p, models.FieldTitle))
	assert.Equal(t, NoneAvailable, Display(p, models.FieldDescription))
	assert.Equal(t, NoneAvailable, Display(p, models.FieldDetailedRating))
	assert.Equal(t, "4.5 out of 5 stars (0)", Display(p, models.FieldRating))

	p.ReviewCount = "1,024 ratings"
	assert.Equal(t, "4.5 out of 5 stars (1,024 ratings)", Display(p, models.FieldRating))

	assert.Equal(t, "", Display(&models.Product{}, models.FieldRating))
}

func TestLines(t *testing.T) {
	fields := []Field{
		{Key: models.FieldTitle, Label: "Title", Value: "Widget"},
		{Key: models.FieldDescription, Label: "Description", Value: "Strong\n• Light"},
	}

	assert.Equal(t, "Title: Widget\nDescription: Strong\n• Light", Lines(fields))
	assert.Equal(t, "", Lines(nil))
}

func TestRows(t *testing.T) {
	p := &models.Product{
		Title:       "Widget",
		Rating:      "4 out of 5 stars",
		ImageURL:    "https://img.example/w.jpg",
		Description: []string{},
	}

	rows := Rows(p)

	assert.Equal(t, []Field{
		{Key: models.FieldTitle, Label: "Title", Value: "Widget"},
		{Key: models.FieldRating, Label: "Rating", Value: "4 out of 5 stars (0)"},
		{Key: models.FieldImageURL, Label: "Image URL", Value: "https://img.example/w.jpg"},
	}, rows)
	assert.Len(t, Catalog, 10, "rows must not grow the catalog")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Best Seller Rank", Label(models.FieldBestSeller))
	assert.Equal(t, "Image URL", Label(models.FieldImageURL))
	assert.Equal(t, "colorOptions", Label("colorOptions"))
}
