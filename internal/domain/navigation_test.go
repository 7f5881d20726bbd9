package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subRef(id string) *Ref {
	return &Ref{ID: id}
}

func testCatalog() ([]Category, []SubCategory, []Product) {
	categories := []Category{
		{ID: "cat-1", Name: "Electronics"},
		{ID: "cat-2", Name: "Groceries"},
		{ID: "cat-3", Name: "Empty"},
	}
	subs := []SubCategory{
		{ID: "sub-1", Name: "Phones", Category: Ref{ID: "cat-1"}},
		{ID: "sub-2", Name: "Laptops", Category: Ref{ID: "cat-1"}},
		{ID: "sub-3", Name: "Fruit", Category: Ref{ID: "cat-2"}},
	}
	products := []Product{
		{ID: "p-1", Name: "Phone A", SubCategory: subRef("sub-1"), MostVisited: true},
		{ID: "p-2", Name: "Phone B", SubCategory: subRef("sub-1")},
		{ID: "p-3", Name: "Phone C", SubCategory: subRef("sub-1")},
		{ID: "p-4", Name: "Phone D", SubCategory: subRef("sub-1")},
		{ID: "p-5", Name: "Apple", SubCategory: subRef("sub-3"), MostVisited: true},
		{ID: "p-6", Name: "Orphan", SubCategory: nil},
	}
	return categories, subs, products
}

func TestSubCategoriesOf(t *testing.T) {
	_, subs, _ := testCatalog()

	got := SubCategoriesOf("cat-1", subs)
	require.Len(t, got, 2)
	assert.Equal(t, "sub-1", got[0].ID)
	assert.Equal(t, "sub-2", got[1].ID)

	assert.Empty(t, SubCategoriesOf("missing", subs))
}

func TestProductsOf(t *testing.T) {
	_, _, products := testCatalog()

	t.Run("unbounded", func(t *testing.T) {
		got := ProductsOf("sub-1", products, 0)
		assert.Len(t, got, 4)
	})

	t.Run("limited", func(t *testing.T) {
		got := ProductsOf("sub-1", products, 3)
		require.Len(t, got, 3)
		assert.Equal(t, "p-1", got[0].ID)
		assert.Equal(t, "p-3", got[2].ID)
	})

	t.Run("nil subcategory reference never matches", func(t *testing.T) {
		assert.Empty(t, ProductsOf("", products, 0))
	})
}

func TestMostVisited(t *testing.T) {
	_, _, products := testCatalog()

	got := MostVisited(products)
	require.Len(t, got, 2)
	assert.Equal(t, "p-1", got[0].ID)
	assert.Equal(t, "p-5", got[1].ID)
}

func TestBuildTree(t *testing.T) {
	categories, subs, products := testCatalog()

	tree := BuildTree(categories, subs, products, 0)

	// cat-3 has no subcategories and sub-2 has no products, both are pruned.
	require.Len(t, tree, 2)

	assert.Equal(t, "cat-1", tree[0].Category.ID)
	require.Len(t, tree[0].SubCategories, 1)
	assert.Equal(t, "sub-1", tree[0].SubCategories[0].SubCategory.ID)
	assert.Len(t, tree[0].SubCategories[0].Products, 4)

	assert.Equal(t, "cat-2", tree[1].Category.ID)
	require.Len(t, tree[1].SubCategories, 1)
	assert.Len(t, tree[1].SubCategories[0].Products, 1)
}

func TestBuildTreeWithLimit(t *testing.T) {
	categories, subs, products := testCatalog()

	tree := BuildTree(categories, subs, products, 3)

	require.Len(t, tree, 2)
	assert.Len(t, tree[0].SubCategories[0].Products, 3)
}

func TestBuildTreeEmptyInputs(t *testing.T) {
	assert.Empty(t, BuildTree(nil, nil, nil, 0))

	categories := []Category{{ID: "cat-1", Name: "Lonely"}}
	assert.Empty(t, BuildTree(categories, nil, nil, 0))
}
