package domain

import (
	"math"
	"strings"
	"time"
)

// Product type constants.
const (
	ProductTypePhysical = "product"
	ProductTypeEService = "eservice"
)

// StockUnlimited marks a product with no stock tracking.
const StockUnlimited = -1

// DefaultShortDescriptionLength is the display truncation limit for product
// cards.
const DefaultShortDescriptionLength = 90

// Product is a catalog product with embedded, append-only rating and review
// collections.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Type        string    `json:"type"`
	Discount    float64   `json:"discount"`
	Image       string    `json:"image"`
	Category    Ref       `json:"category"`
	SubCategory *Ref      `json:"subCategory,omitempty"`
	Order       int       `json:"order"`
	Stock       int       `json:"stock"`
	Active      bool      `json:"active"`
	Currency    *string   `json:"currency,omitempty"`
	MostVisited bool      `json:"mostVisited"`
	Ratings     []Rating  `json:"ratings"`
	Reviews     []Review  `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Rating is a numeric score embedded in a Product. It has no lifecycle of
// its own.
type Rating struct {
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a free-text comment with a score, embedded in a Product.
type Review struct {
	User      string    `json:"user"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidProductType checks whether the given type string is valid.
func IsValidProductType(t string) bool {
	return t == ProductTypePhysical || t == ProductTypeEService
}

// FinalPrice returns the price after applying the discount percentage. A
// zero price yields zero regardless of discount. Derived on read, never
// stored.
func (p *Product) FinalPrice() float64 {
	return FinalPrice(p.Price, p.Discount)
}

// AverageRating returns the mean rating rounded to one decimal place, or 0
// when the product has no ratings.
func (p *Product) AverageRating() float64 {
	return AverageRating(p.Ratings)
}

// ReviewCount returns the number of reviews.
func (p *Product) ReviewCount() int {
	return len(p.Reviews)
}

// ShortDescription returns the description truncated for card display.
func (p *Product) ShortDescription() string {
	return ShortDescription(p.Description, DefaultShortDescriptionLength)
}

// FinalPrice computes price * (1 - discount/100). Discounts are percentages
// in [0,100].
func FinalPrice(price, discount float64) float64 {
	if price == 0 {
		return 0
	}
	return price * (1 - discount/100)
}

// AverageRating computes the arithmetic mean of the rating values, rounded
// half-up to one decimal place. An empty sequence yields 0.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// ShortDescription trims the text and truncates it to maxLength runes,
// replacing the tail with "..." when the input is longer. The result never
// exceeds maxLength.
func ShortDescription(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
