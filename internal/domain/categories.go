package domain

import (
	"fmt"
	"strings"
)

// CategoryId is one of the 9 coarse positional groupings used to express
// player filters. Canonical form is lowercase.
type CategoryId string

const (
	CategoryGoal CategoryId = "goal"
	CategoryCD   CategoryId = "cd"
	CategoryWB   CategoryId = "wb"
	CategoryDM   CategoryId = "dm"
	CategoryCM   CategoryId = "cm"
	CategoryWing CategoryId = "wing"
	CategoryAM   CategoryId = "am"
	CategoryPM   CategoryId = "pm"
	CategoryStr  CategoryId = "str"
)

// categoryOrder is the fixed enumeration order of the 9 categories.
var categoryOrder = []CategoryId{
	CategoryGoal, CategoryCD, CategoryWB, CategoryDM, CategoryCM,
	CategoryWing, CategoryAM, CategoryPM, CategoryStr,
}

var categorySet map[CategoryId]bool

func init() {
	categorySet = make(map[CategoryId]bool, len(categoryOrder))
	for _, c := range categoryOrder {
		categorySet[c] = true
	}
	if len(categoryOrder) != 9 {
		panic(fmt.Sprintf("domain: category closed set must have 9 entries, has %d", len(categoryOrder)))
	}
}

// Categories returns the 9 categories in their fixed enumeration order.
func Categories() []CategoryId {
	out := make([]CategoryId, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// NewCategoryId parses s case-insensitively against the closed set of 9
// categories and returns its canonical lowercase form.
func NewCategoryId(s string) (CategoryId, error) {
	c := CategoryId(strings.ToLower(strings.TrimSpace(s)))
	if !categorySet[c] {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// IsValidCategory reports whether s names one of the 9 closed-set
// categories, matched case-insensitively.
func IsValidCategory(s string) bool {
	return categorySet[CategoryId(strings.ToLower(strings.TrimSpace(s)))]
}
