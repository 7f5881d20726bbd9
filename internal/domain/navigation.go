package domain

// CategoryBranch is a category node in the assembled navigation tree.
type CategoryBranch struct {
	Category      Category            `json:"category"`
	SubCategories []SubCategoryBranch `json:"sub_categories"`
}

// SubCategoryBranch is a subcategory node holding its qualifying products.
type SubCategoryBranch struct {
	SubCategory SubCategory `json:"sub_category"`
	Products    []Product   `json:"products"`
}

// SubCategoriesOf returns the subcategories referencing the given category,
// preserving input order. The source slice is not mutated.
func SubCategoriesOf(categoryID string, subs []SubCategory) []SubCategory {
	var out []SubCategory
	for _, sc := range subs {
		if sc.Category.ID == categoryID {
			out = append(out, sc)
		}
	}
	return out
}

// ProductsOf returns the products referencing the given subcategory,
// preserving input order. A positive limit truncates the result to the first
// limit entries; zero or negative means unbounded.
func ProductsOf(subCategoryID string, products []Product, limit int) []Product {
	var out []Product
	for _, p := range products {
		if p.SubCategory == nil || p.SubCategory.ID != subCategoryID {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// MostVisited returns the products flagged for promotional display,
// preserving input order.
func MostVisited(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.MostVisited {
			out = append(out, p)
		}
	}
	return out
}

// BuildTree assembles the category → subcategory → product navigation tree
// from independently fetched flat lists. Branches with no qualifying
// descendants are omitted: a subcategory with zero products (after the
// per-subcategory limit) is dropped, and a category with zero surviving
// subcategory branches is dropped. Entities whose references do not resolve
// against the loaded lists simply appear under no branch.
func BuildTree(categories []Category, subs []SubCategory, products []Product, perSubCategoryLimit int) []CategoryBranch {
	var tree []CategoryBranch
	for _, cat := range categories {
		var branches []SubCategoryBranch
		for _, sc := range SubCategoriesOf(cat.ID, subs) {
			prods := ProductsOf(sc.ID, products, perSubCategoryLimit)
			if len(prods) == 0 {
				continue
			}
			branches = append(branches, SubCategoryBranch{
				SubCategory: sc,
				Products:    prods,
			})
		}
		if len(branches) == 0 {
			continue
		}
		tree = append(tree, CategoryBranch{
			Category:      cat,
			SubCategories: branches,
		})
	}
	return tree
}
