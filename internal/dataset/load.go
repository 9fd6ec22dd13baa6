package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// catalogDoc is the top-level shape of a catalog file.
type catalogDoc struct {
	Records []recordDoc `yaml:"records"`
}

// recordDoc is the on-disk form of a record.
type recordDoc struct {
	SKU          string     `yaml:"sku"`
	Name         string     `yaml:"name"`
	Category     string     `yaml:"category"`
	Subcategory  string     `yaml:"subcategory"`
	Gender       string     `yaml:"gender"`
	Manufacturer string     `yaml:"manufacturer"`
	Total        int        `yaml:"total"`
	Available    int        `yaml:"available"`
	Hold         int        `yaml:"hold"`
	Sold         int        `yaml:"sold"`
	Requested    int        `yaml:"requested"`
	Wholesale    money      `yaml:"wholesale"`
	Retail       money      `yaml:"retail"`
	MSRP         money      `yaml:"msrp"`
	Sizes        stringList `yaml:"sizes"`
	Colors       stringList `yaml:"colors"`
}

func (d recordDoc) toRecord() catalog.Record {
	return catalog.Record{
		SKU:          d.SKU,
		Name:         d.Name,
		Category:     d.Category,
		Subcategory:  d.Subcategory,
		Gender:       catalog.Gender(d.Gender),
		Manufacturer: d.Manufacturer,
		Total:        d.Total,
		Available:    d.Available,
		Hold:         d.Hold,
		Sold:         d.Sold,
		Requested:    d.Requested,
		Wholesale:    d.Wholesale.Decimal,
		Retail:       d.Retail.Decimal,
		MSRP:         d.MSRP.Decimal,
		Sizes:        []string(d.Sizes),
		Colors:       []string(d.Colors),
	}
}

// money decodes a YAML scalar (number or quoted string) into a decimal
// without passing through float64.
type money struct {
	decimal.Decimal
}

func (m *money) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		m.Decimal = decimal.Zero
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s", node.Line, kindName(node.Kind))
	}
	d, err := decimal.NewFromString(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	m.Decimal = d
	return nil
}

// stringList accepts either a YAML sequence or a single comma-separated
// string ("S, M, L") as found in spreadsheet exports.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*l = []string{}
			return nil
		}
		*l = splitList(node.Value)
	default:
		return fmt.Errorf("line %d: expected a list or string, got %s", node.Line, kindName(node.Kind))
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}

// Decode reads a catalog document from r.
// Unknown fields are rejected. An empty document yields no records.
func Decode(r io.Reader) ([]catalog.Record, error) {
	var doc catalogDoc
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []catalog.Record{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return convert(doc.Records), nil
}

// DecodeNode decodes a YAML sequence of records that is embedded in another
// document, such as the inline records of a harness scenario.
func DecodeNode(node *yaml.Node) ([]catalog.Record, error) {
	if node == nil || node.Kind == 0 {
		return []catalog.Record{}, nil
	}
	// Node.Decode has no strict mode; round-trip through an encoder so the
	// records get the same unknown-field checks as a catalog file.
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(map[string]*yaml.Node{"records": node}); err != nil {
		return nil, fmt.Errorf("failed to re-encode records: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to re-encode records: %w", err)
	}
	return Decode(&buf)
}

// LoadFile reads a catalog file and builds a Dataset from it.
func LoadFile(path string) (*Dataset, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return ds, nil
}

// ReadFile reads the records of a catalog file without building a Dataset.
func ReadFile(path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func convert(docs []recordDoc) []catalog.Record {
	records := make([]catalog.Record, len(docs))
	for i, d := range docs {
		records[i] = d.toRecord()
	}
	return records
}
