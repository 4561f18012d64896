package domain

// Category is one of the three work domains used for XP weights, skill tables and classification.
type Category string

const (
	CategoryBuild Category = "build"
	CategoryShip  Category = "ship"
	CategoryReach Category = "reach"
)

// Categories lists every category in display order
var Categories = []Category{CategoryBuild, CategoryShip, CategoryReach}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryBuild, CategoryShip, CategoryReach:
		return true
	}
	return false
}

// IsEntrepreneurial reports whether c is shipping or audience work
func (c Category) IsEntrepreneurial() bool {
	return c == CategoryShip || c == CategoryReach
}

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// CategoryOrDefault returns c, or build when c is empty or unknown
func CategoryOrDefault(c Category) Category {
	if c.Valid() {
		return c
	}
	return CategoryBuild
}
