package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		expected float64
	}{
		{
			name:     "no discount",
			price:    100,
			discount: 0,
			expected: 100,
		},
		{
			name:     "half off",
			price:    200,
			discount: 50,
			expected: 100,
		},
		{
			name:     "quarter off",
			price:    118.5,
			discount: 25,
			expected: 88.875,
		},
		{
			name:     "full discount",
			price:    99.99,
			discount: 100,
			expected: 0,
		},
		{
			name:     "zero price",
			price:    0,
			discount: 30,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FinalPrice(tt.price, tt.discount), 1e-9)
		})
	}
}

func TestFinalPriceNeverExceedsPrice(t *testing.T) {
	p := Product{Price: 150, Discount: 30}
	assert.LessOrEqual(t, p.FinalPrice(), p.Price)
	assert.GreaterOrEqual(t, p.FinalPrice(), 0.0)
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{
			name:     "no ratings",
			ratings:  nil,
			expected: 0,
		},
		{
			name:     "single rating",
			ratings:  []int{4},
			expected: 4.0,
		},
		{
			name:     "whole mean",
			ratings:  []int{3, 5},
			expected: 4.0,
		},
		{
			name:     "rounded to one decimal",
			ratings:  []int{1, 2, 2},
			expected: 1.7,
		},
		{
			name:     "rounds half up",
			ratings:  []int{4, 5},
			expected: 4.5,
		},
		{
			name:     "repeating decimal",
			ratings:  []int{5, 4, 4},
			expected: 4.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := make([]Rating, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				ratings = append(ratings, Rating{User: "u", Rating: r})
			}
			assert.InDelta(t, tt.expected, AverageRating(ratings), 1e-9)
		})
	}
}

func TestReviewCount(t *testing.T) {
	p := Product{
		Reviews: []Review{
			{User: "a", Comment: "good", Rating: 5},
			{User: "b", Comment: "ok", Rating: 3},
		},
	}
	assert.Equal(t, 2, p.ReviewCount())

	empty := Product{}
	assert.Equal(t, 0, empty.ReviewCount())
}

func TestShortDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "short text unchanged",
			input:    "A compact description.",
			expected: "A compact description.",
		},
		{
			name:     "exactly at the limit unchanged",
			input:    strings.Repeat("x", 90),
			expected: strings.Repeat("x", 90),
		},
		{
			name:     "long text truncated with ellipsis",
			input:    strings.Repeat("x", 120),
			expected: strings.Repeat("x", 87) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortDescription(tt.input, DefaultShortDescriptionLength)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len([]rune(got)), DefaultShortDescriptionLength)
		})
	}
}

func TestNewProductView(t *testing.T) {
	p := Product{
		ID:          "p-1",
		Name:        "Widget",
		Description: strings.Repeat("d", 100),
		Price:       200,
		Discount:    50,
		Ratings:     []Rating{{User: "a", Rating: 3}, {User: "b", Rating: 5}},
		Reviews:     []Review{{User: "a", Comment: "ok", Rating: 3}},
	}

	view := NewProductView(p)
	assert.InDelta(t, 100, view.FinalPrice, 1e-9)
	assert.InDelta(t, 4.0, view.AverageRating, 1e-9)
	assert.Equal(t, 1, view.ReviewCount)
	assert.Equal(t, strings.Repeat("d", 87)+"...", view.ShortDescription)
	assert.Empty(t, view.DisplayPrice)
}

func TestShortDescriptionMultibyte(t *testing.T) {
	// Truncation must cut on rune boundaries, not bytes.
	input := strings.Repeat("é", 100)
	got := ShortDescription(input, DefaultShortDescriptionLength)
	assert.Equal(t, strings.Repeat("é", 87)+"...", got)
}
