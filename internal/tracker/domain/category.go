package domain

// Category groups tasks for display. It carries no scheduling meaning.
type Category string

const (
	CategoryBody   Category = "body"
	CategoryMind   Category = "mind"
	CategoryWork   Category = "work"
	CategoryHome   Category = "home"
	CategorySocial Category = "social"
	CategoryOther  Category = "other"
)

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBody, CategoryMind, CategoryWork, CategoryHome, CategorySocial, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory decodes a persisted category, falling back to CategoryOther
// for unknown values rather than failing on schema drift.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.IsValid() {
		return CategoryOther
	}
	return c
}
