package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/filter"
)

// Scenario defines a scripted browsing session.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is the path to a catalog file.
	Catalog string `yaml:"catalog,omitempty"`

	// Records is an inline catalog, in catalog file record format.
	Records yaml.Node `yaml:"records,omitempty"`

	// Generate asks for a generated catalog of this many records.
	Generate int `yaml:"generate,omitempty"`

	// PageSize is the initial page size. Zero means the default.
	PageSize int `yaml:"page_size,omitempty"`

	// Session is the fixed session ID. Defaults to "test-session".
	Session string `yaml:"session,omitempty"`

	// Flow is the list of transitions to apply, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final view.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// FlowStep is one transition. Exactly one action field is set.
type FlowStep struct {
	Filter   *FilterArgs `yaml:"filter,omitempty"`
	Sort     string      `yaml:"sort,omitempty"`
	Page     *int        `yaml:"page,omitempty"`
	PageSize *int        `yaml:"page_size,omitempty"`
	Next     bool        `yaml:"next,omitempty"`
	Prev     bool        `yaml:"prev,omitempty"`
	Reset    bool        `yaml:"reset,omitempty"`
	Select   string      `yaml:"select,omitempty"`
	Clear    bool        `yaml:"clear,omitempty"`

	// Expect is checked against the view after the step.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// FilterArgs is a partial filter update. Omitted keys are unchanged; an
// empty string clears the constraint.
type FilterArgs struct {
	Search      *string `yaml:"search,omitempty"`
	Category    *string `yaml:"category,omitempty"`
	Subcategory *string `yaml:"subcategory,omitempty"`
	Gender      *string `yaml:"gender,omitempty"`
	Stock       *string `yaml:"stock,omitempty"`
}

// Patch converts the arguments to a filter.Patch. Values are passed through
// unchecked, so an unknown gender or stock bucket matches nothing.
func (a FilterArgs) Patch() filter.Patch {
	var p filter.Patch
	if a.Search != nil {
		p = p.WithSearch(*a.Search)
	}
	if a.Category != nil {
		p = p.WithCategory(*a.Category)
	}
	if a.Subcategory != nil {
		p = p.WithSubcategory(*a.Subcategory)
	}
	if a.Gender != nil {
		p = p.WithGender(catalog.Gender(*a.Gender))
	}
	if a.Stock != nil {
		p = p.WithStock(catalog.StockLevel(*a.Stock))
	}
	return p
}

// ExpectClause lists the expected view after a step. Only the fields that
// are set are checked.
type ExpectClause struct {
	// SKUs is the exact content of the current page, in order.
	SKUs []string `yaml:"skus,omitempty"`

	Filtered   *int `yaml:"filtered,omitempty"`
	TotalPages *int `yaml:"total_pages,omitempty"`
	Page       *int `yaml:"page,omitempty"`
	LowStock   *int `yaml:"low_stock,omitempty"`

	// Rejected is the expected error code; "" expects the step to succeed.
	Rejected string `yaml:"rejected,omitempty"`

	Selected *string `yaml:"selected,omitempty"`
}

// Assertion validates the final view.
type Assertion struct {
	// Type specifies the assertion type:
	// - "view_contains": SKU is on the final page
	// - "view_order": SKUs appear on the final page in order
	// - "view_count": filtered subset has exactly Count records
	// - "final_state": counters and state match Expect
	Type string `yaml:"type"`

	// SKU is the record to look for (view_contains).
	SKU string `yaml:"sku,omitempty"`

	// SKUs is the expected order (view_order).
	SKUs []string `yaml:"skus,omitempty"`

	// Count is the expected filtered count (view_count).
	Count int `yaml:"count,omitempty"`

	// Expect maps state field names to values (final_state).
	// Subset match - only specified fields are validated.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertViewContains = "view_contains"
	AssertViewOrder    = "view_order"
	AssertViewCount    = "view_count"
	AssertFinalState   = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative catalog path is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, in name order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	slices.Sort(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	sources := 0
	if s.Catalog != "" {
		sources++
		if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("catalog file not found: %s", s.Catalog)
		}
	}
	if s.Records.Kind != 0 {
		sources++
	}
	if s.Generate > 0 {
		sources++
	}
	if sources > 1 {
		return fmt.Errorf("only one of catalog, records and generate may be set")
	}
	if s.Generate < 0 {
		return fmt.Errorf("generate must be non-negative")
	}

	if s.PageSize < 0 {
		return fmt.Errorf("page_size must be non-negative")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, step := range s.Flow {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks that a step performs exactly one action.
func validateStep(index int, step *FlowStep) error {
	actions := step.actions()
	switch len(actions) {
	case 0:
		return fmt.Errorf("flow[%d]: one action is required", index)
	case 1:
	default:
		return fmt.Errorf("flow[%d]: only one action per step, got %v", index, actions)
	}

	if step.Sort != "" {
		if _, err := catalog.ParseColumn(step.Sort); err != nil {
			return fmt.Errorf("flow[%d]: %w", index, err)
		}
	}
	return nil
}

// actions lists the action names set on the step.
func (s *FlowStep) actions() []string {
	var names []string
	if s.Filter != nil {
		names = append(names, "filter")
	}
	if s.Sort != "" {
		names = append(names, "sort")
	}
	if s.Page != nil {
		names = append(names, "page")
	}
	if s.PageSize != nil {
		names = append(names, "page_size")
	}
	if s.Next {
		names = append(names, "next")
	}
	if s.Prev {
		names = append(names, "prev")
	}
	if s.Reset {
		names = append(names, "reset")
	}
	if s.Select != "" {
		names = append(names, "select")
	}
	if s.Clear {
		names = append(names, "clear")
	}
	return names
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertViewContains:
		if a.SKU == "" {
			return fmt.Errorf("assertions[%d]: sku is required for view_contains", index)
		}
	case AssertViewOrder:
		if len(a.SKUs) == 0 {
			return fmt.Errorf("assertions[%d]: skus list is required for view_order", index)
		}
	case AssertViewCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for view_count", index)
		}
	case AssertFinalState:
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
