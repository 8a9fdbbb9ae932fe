// Package fixtures provides the demo procurement dataset and loads replacement
// datasets from YAML files.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/aurumimpex/procurement/internal/domain/procurement"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// ErrInvalidDataset is returned when a dataset fails validation.
var ErrInvalidDataset = errors.New("invalid dataset")

// Default returns a fresh copy of the embedded demo dataset.
func Default() *procurement.Dataset {
	data, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded demo dataset: %v", err))
	}
	return data
}

// Load reads a dataset from a YAML file.
func Load(path string) (*procurement.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*procurement.Dataset, error) {
	var data procurement.Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	if err := Validate(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks that every record has its own code and a project, and that
// codes are unique within a kind. Soft references are not checked.
func Validate(data *procurement.Dataset) error {
	check := newCodeChecker()
	for i, r := range data.RFQList {
		if err := check("rfq", i, r.RFQNumber, r.Project); err != nil {
			return err
		}
	}
	for i, q := range data.QuoteList {
		if err := check("quote", i, q.QuoteNumber, q.Project); err != nil {
			return err
		}
	}
	for i, po := range data.OrderList {
		if err := check("purchase order", i, po.PONumber, po.Project); err != nil {
			return err
		}
	}
	for i, sh := range data.ShipmentList {
		if err := check("shipment", i, sh.ShipmentNumber, sh.Project); err != nil {
			return err
		}
	}
	return nil
}

func newCodeChecker() func(kind string, idx int, code, project string) error {
	seen := make(map[string]bool)
	return func(kind string, idx int, code, project string) error {
		switch {
		case code == "":
			return fmt.Errorf("%w: %s #%d has no code", ErrInvalidDataset, kind, idx+1)
		case project == "":
			return fmt.Errorf("%w: %s %s has no project", ErrInvalidDataset, kind, code)
		case seen[kind+"/"+code]:
			return fmt.Errorf("%w: duplicate %s %s", ErrInvalidDataset, kind, code)
		}
		seen[kind+"/"+code] = true
		return nil
	}
}
