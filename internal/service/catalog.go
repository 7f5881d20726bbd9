package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
	apperrors "github.com/frbhusen/EPay-Store/pkg/errors"
)

// homeProductsPerSubCategory limits how many products each subcategory shows
// on the home page.
const homeProductsPerSubCategory = 3

// CategoryNode is a category branch of the navigation tree with annotated
// products.
type CategoryNode struct {
	Category      domain.Category  `json:"category"`
	SubCategories []SubCategoryNode `json:"sub_categories"`
}

// SubCategoryNode is a subcategory branch holding its annotated products.
type SubCategoryNode struct {
	SubCategory domain.SubCategory   `json:"sub_category"`
	Products    []domain.ProductView `json:"products"`
}

// HomeView is the payload backing the storefront landing page.
type HomeView struct {
	Tree        []CategoryNode       `json:"tree"`
	MostVisited []domain.ProductView `json:"most_visited"`
}

// CatalogService assembles category and subcategory listings and the
// navigation trees built from them.
type CatalogService struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	products      repository.ProductRepository
	logger        *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categories repository.CategoryRepository,
	subCategories repository.SubCategoryRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		categories:    categories,
		subCategories: subCategories,
		products:      products,
		logger:        logger,
	}
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a single category by ID.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("category id is required")
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return category, nil
}

// ListSubCategories returns all subcategories.
func (s *CatalogService) ListSubCategories(ctx context.Context) ([]domain.SubCategory, error) {
	subs, err := s.subCategories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subs, nil
}

// Sidebar assembles the full navigation tree over every active product.
// Subcategories with no products and categories with no surviving
// subcategories are pruned.
func (s *CatalogService) Sidebar(ctx context.Context) ([]CategoryNode, error) {
	categories, subs, products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	tree := domain.BuildTree(categories, subs, products, 0)
	return annotateTree(tree), nil
}

// Home assembles the landing page view: the navigation tree capped at three
// products per subcategory, plus the most-visited strip.
func (s *CatalogService) Home(ctx context.Context) (*HomeView, error) {
	categories, subs, products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	tree := domain.BuildTree(categories, subs, products, homeProductsPerSubCategory)

	return &HomeView{
		Tree:        annotateTree(tree),
		MostVisited: annotateProducts(domain.MostVisited(products)),
	}, nil
}

// loadCatalog fetches the three flat lists the tree is assembled from.
func (s *CatalogService) loadCatalog(ctx context.Context) ([]domain.Category, []domain.SubCategory, []domain.Product, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list categories: %w", err)
	}

	subs, err := s.subCategories.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list subcategories: %w", err)
	}

	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list active products: %w", err)
	}

	return categories, subs, products, nil
}

func annotateTree(tree []domain.CategoryBranch) []CategoryNode {
	nodes := make([]CategoryNode, 0, len(tree))
	for _, branch := range tree {
		node := CategoryNode{
			Category:      branch.Category,
			SubCategories: make([]SubCategoryNode, 0, len(branch.SubCategories)),
		}
		for _, sub := range branch.SubCategories {
			node.SubCategories = append(node.SubCategories, SubCategoryNode{
				SubCategory: sub.SubCategory,
				Products:    annotateProducts(sub.Products),
			})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func annotateProducts(products []domain.Product) []domain.ProductView {
	views := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, domain.NewProductView(p))
	}
	return views
}
