package filter

import "github.com/krakozavr/Inventory/internal/catalog"

// Spec is the set of active search and categorical constraints.
// The zero value imposes no restriction.
type Spec struct {
	Search      string             `json:"search,omitempty" yaml:"search,omitempty"`
	Category    string             `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory string             `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Gender      catalog.Gender     `json:"gender,omitempty" yaml:"gender,omitempty"`
	Stock       catalog.StockLevel `json:"stock,omitempty" yaml:"stock,omitempty"`
}

// IsZero reports whether the spec has no active constraint.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// Patch is a partial update of a Spec. Nil fields are left unchanged;
// a pointer to "" clears the constraint.
type Patch struct {
	Search      *string
	Category    *string
	Subcategory *string
	Gender      *catalog.Gender
	Stock       *catalog.StockLevel
}

// WithSearch returns a copy of p that sets the search text.
func (p Patch) WithSearch(s string) Patch {
	p.Search = &s
	return p
}

// WithCategory returns a copy of p that sets the category.
func (p Patch) WithCategory(c string) Patch {
	p.Category = &c
	return p
}

// WithSubcategory returns a copy of p that sets the subcategory.
func (p Patch) WithSubcategory(s string) Patch {
	p.Subcategory = &s
	return p
}

// WithGender returns a copy of p that sets the gender.
func (p Patch) WithGender(g catalog.Gender) Patch {
	p.Gender = &g
	return p
}

// WithStock returns a copy of p that sets the stock bucket.
func (p Patch) WithStock(l catalog.StockLevel) Patch {
	p.Stock = &l
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Merge applies p to s.
//
// Subcategory depends on category: when p changes the category and does not
// set a subcategory itself, the subcategory is cleared, because the old one
// belongs to a different category.
func (s Spec) Merge(p Patch) Spec {
	if p.Search != nil {
		s.Search = *p.Search
	}
	if p.Category != nil {
		if *p.Category != s.Category && p.Subcategory == nil {
			s.Subcategory = ""
		}
		s.Category = *p.Category
	}
	if p.Subcategory != nil {
		s.Subcategory = *p.Subcategory
	}
	if p.Gender != nil {
		s.Gender = *p.Gender
	}
	if p.Stock != nil {
		s.Stock = *p.Stock
	}
	return s
}
