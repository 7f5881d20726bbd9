package domain

// ProductView is a product annotated with its derived display fields. The
// derived values are computed on read and never persisted.
type ProductView struct {
	Product
	FinalPrice       float64 `json:"finalPrice"`
	AverageRating    float64 `json:"averageRating"`
	ReviewCount      int     `json:"reviewCount"`
	ShortDescription string  `json:"shortDescription"`

	// Display prices in the viewer's preferred currency, filled in when a
	// session preference is known.
	DisplayPrice      string `json:"display_price,omitempty"`
	DisplayFinalPrice string `json:"display_final_price,omitempty"`
}

// NewProductView annotates a product with its derived fields.
func NewProductView(p Product) ProductView {
	return ProductView{
		Product:          p,
		FinalPrice:       p.FinalPrice(),
		AverageRating:    p.AverageRating(),
		ReviewCount:      p.ReviewCount(),
		ShortDescription: p.ShortDescription(),
	}
}
