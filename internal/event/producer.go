package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frbhusen/EPay-Store/internal/domain"
	pkgkafka "github.com/frbhusen/EPay-Store/pkg/kafka"
)

// Kafka topic constants for catalog domain events.
const (
	TopicReviewSubmitted   = "epaystore.catalog.review.submitted"
	TopicCurrencyPreferred = "epaystore.catalog.currency.preferred"
)

// Event type constants.
const (
	EventTypeReviewSubmitted   = "review.submitted"
	EventTypeCurrencyPreferred = "currency.preferred"
)

// Aggregate type constants.
const (
	AggregateTypeProduct = "product"
	AggregateTypeSession = "session"
)

// SourceCatalogService identifies events originating from this service.
const SourceCatalogService = "catalog-service"

// ReviewSubmittedData is the payload for a review.submitted event.
type ReviewSubmittedData struct {
	ProductID     string    `json:"product_id"`
	User          string    `json:"user"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// CurrencyPreferredData is the payload for a currency.preferred event.
type CurrencyPreferredData struct {
	SessionID string `json:"session_id"`
	Currency  string `json:"currency"`
}

// Producer publishes catalog domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the catalog service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewSubmitted publishes a review.submitted event carrying the
// product's recomputed aggregates.
func (p *Producer) PublishReviewSubmitted(ctx context.Context, product *domain.Product, review domain.Review) error {
	data := ReviewSubmittedData{
		ProductID:     product.ID,
		User:          review.User,
		Rating:        review.Rating,
		Comment:       review.Comment,
		AverageRating: product.AverageRating(),
		ReviewCount:   product.ReviewCount(),
		SubmittedAt:   review.CreatedAt,
	}

	event, err := pkgkafka.NewEvent(EventTypeReviewSubmitted, product.ID, AggregateTypeProduct, SourceCatalogService, data)
	if err != nil {
		return fmt.Errorf("create review.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewSubmitted, event); err != nil {
		return fmt.Errorf("publish review.submitted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.submitted event",
		slog.String("product_id", product.ID),
		slog.Int("rating", review.Rating),
	)

	return nil
}

// PublishCurrencyPreferred publishes a currency.preferred event when a
// session toggles its display currency.
func (p *Producer) PublishCurrencyPreferred(ctx context.Context, sessionID string, currency domain.CurrencyCode) error {
	data := CurrencyPreferredData{
		SessionID: sessionID,
		Currency:  string(currency),
	}

	event, err := pkgkafka.NewEvent(EventTypeCurrencyPreferred, sessionID, AggregateTypeSession, SourceCatalogService, data)
	if err != nil {
		return fmt.Errorf("create currency.preferred event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCurrencyPreferred, event); err != nil {
		return fmt.Errorf("publish currency.preferred event: %w", err)
	}

	return nil
}
