package ordering

import (
	"fmt"
	"strings"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
// The empty string is ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q: must be asc or desc", s)
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Spec selects the sort column and direction.
type Spec struct {
	Column    catalog.Column
	Direction Direction
}

// Default is SKU ascending.
func Default() Spec {
	return Spec{Column: catalog.ColumnSKU, Direction: Ascending}
}

// Toggle returns the spec that results from activating col: the same column
// flips direction, a different column starts ascending.
func (s Spec) Toggle(col catalog.Column) Spec {
	if s.Column == col {
		return Spec{Column: col, Direction: s.Direction.Flip()}
	}
	return Spec{Column: col, Direction: Ascending}
}

func (s Spec) String() string {
	return s.Column.String() + " " + s.Direction.String()
}
