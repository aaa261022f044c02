package domain

import (
	"sort"
	"strings"
	"time"
)

// Shopping categories
const (
	CategoryProduce      = "Produce"
	CategoryDairy        = "Dairy"
	CategoryMeat         = "Meat"
	CategoryDryGoods     = "Dry Goods"
	CategoryFrozen       = "Frozen"
	CategoryCannedGoods  = "Canned Goods"
	CategoryBakery       = "Bakery"
	CategoryOilsVinegars = "Oils & Vinegars"
	CategoryOther        = "Other"
)

// ShoppingCategories is the fixed category set in display order.
var ShoppingCategories = []string{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryDryGoods,
	CategoryFrozen,
	CategoryCannedGoods,
	CategoryBakery,
	CategoryOilsVinegars,
	CategoryOther,
}

// NormalizeCategory resolves a category name case-insensitively.
// Blank input maps to Other.
func NormalizeCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther, nil
	}
	for _, c := range ShoppingCategories {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Item sources, used as the metrics label for inserts.
const (
	ItemSourceManual = "manual"
	ItemSourceRecipe = "recipe"
)

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	Seq       int64     `json:"-"`
}

// ShoppingItemUpdate is a partial update. Nil fields are left untouched.
type ShoppingItemUpdate struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ShoppingItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Completed == nil
}

// CategoryGroup is one section of the grouped shopping list.
type CategoryGroup struct {
	Category string         `json:"category"`
	Items    []ShoppingItem `json:"items"`
}

// ShoppingCounts feeds the dashboard.
type ShoppingCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// GroupByCategory groups items by category. Groups are sorted by category
// name and items keep their insertion order inside a group.
func GroupByCategory(items []ShoppingItem) []CategoryGroup {
	ordered := make([]ShoppingItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Seq < ordered[j].Seq
	})

	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)
	for _, item := range ordered {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}
