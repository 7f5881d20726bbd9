package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/event"
	"github.com/frbhusen/EPay-Store/internal/repository"
	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"
)

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	ProductID string
	User      string
	Comment   string
	Rating    int
}

// ReviewService implements the business logic for review submission.
type ReviewService struct {
	repo     repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// SubmitReview validates and appends a review to a product, keeping the
// embedded rating entry in lockstep, and returns the updated product
// annotated with its recomputed aggregates.
func (s *ReviewService) SubmitReview(ctx context.Context, input *SubmitReviewInput) (*domain.ProductView, error) {
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	user := strings.TrimSpace(input.User)
	comment := strings.TrimSpace(input.Comment)

	if user == "" {
		return nil, apperrors.Validation("user name is required")
	}
	if comment == "" {
		return nil, apperrors.Validation("comment is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	now := time.Now().UTC()
	review := domain.Review{
		User:      user,
		Comment:   comment,
		Rating:    input.Rating,
		CreatedAt: now,
	}
	rating := domain.Rating{
		User:      user,
		Rating:    input.Rating,
		CreatedAt: now,
	}

	product, err := s.repo.AppendReview(ctx, input.ProductID, review, rating)
	if err != nil {
		return nil, fmt.Errorf("append review: %w", err)
	}

	if s.producer != nil {
		if err := s.producer.PublishReviewSubmitted(ctx, product, review); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish review.submitted event",
				slog.String("product_id", product.ID),
				slog.String("error", err.Error()),
			)
			// Do not fail the operation if event publishing fails.
		}
	}

	s.logger.InfoContext(ctx, "review submitted",
		slog.String("product_id", product.ID),
		slog.String("user", user),
		slog.Int("rating", input.Rating),
	)

	view := domain.NewProductView(*product)
	return &view, nil
}
