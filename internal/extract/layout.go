package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Band describes one fixed rectangular region of a workbook. A band is either
// a matrix band (StartCol/Cols set, read as a grid) or a record band (Columns
// set, mapping a field role to an absolute 1-based column). RoleRows applies
// to matrix bands whose rows carry different roles, such as the product
// header band.
type Band struct {
	Sheet    string         `yaml:"sheet"`
	StartRow int            `yaml:"start_row"`
	Rows     int            `yaml:"rows"`
	StartCol int            `yaml:"start_col,omitempty"`
	Cols     int            `yaml:"cols,omitempty"`
	Columns  map[string]int `yaml:"columns,omitempty"`
	RoleRows map[string]int `yaml:"role_rows,omitempty"`
}

// Layout is the declarative description of where each data region lives in
// the two workbooks. It is versioned data, not code: a template change means
// editing the YAML file, not the extractor.
type Layout struct {
	ProductHeader Band `yaml:"product_header"`
	Materials     Band `yaml:"materials"`
	Quantities    Band `yaml:"quantities"`
	SKUs          Band `yaml:"skus"`
	Resources     Band `yaml:"resources"`
}

func LoadLayout(path string) (*Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse layout file: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) Validate() error {
	checks := []struct {
		name string
		band Band
	}{
		{"product_header", l.ProductHeader},
		{"materials", l.Materials},
		{"quantities", l.Quantities},
		{"skus", l.SKUs},
		{"resources", l.Resources},
	}
	for _, c := range checks {
		if c.band.Sheet == "" {
			return fmt.Errorf("layout: band %q has no sheet", c.name)
		}
		if c.band.StartRow < 1 || c.band.Rows < 1 {
			return fmt.Errorf("layout: band %q has invalid row bounds", c.name)
		}
		for role, col := range c.band.Columns {
			if col < 1 {
				return fmt.Errorf("layout: band %q column role %q must be a 1-based column", c.name, role)
			}
		}
	}
	for _, role := range []string{"code", "description", "batch_size"} {
		if _, ok := l.ProductHeader.RoleRows[role]; !ok {
			return fmt.Errorf("layout: product_header is missing role row %q", role)
		}
	}
	for role, row := range l.ProductHeader.RoleRows {
		if row < 0 || row >= l.ProductHeader.Rows {
			return fmt.Errorf("layout: product_header role row %q is out of range [0,%d)", role, l.ProductHeader.Rows)
		}
	}
	for _, role := range []string{"code", "description", "model", "family", "section", "common_unique", "lead_time", "buom"} {
		if _, ok := l.Materials.Columns[role]; !ok {
			return fmt.Errorf("layout: materials band is missing column role %q", role)
		}
	}
	if l.ProductHeader.StartCol != l.Quantities.StartCol || l.ProductHeader.Cols != l.Quantities.Cols {
		return fmt.Errorf("layout: quantity matrix columns must align with the product header band")
	}
	if l.Materials.StartRow != l.Quantities.StartRow || l.Materials.Rows != l.Quantities.Rows {
		return fmt.Errorf("layout: quantity matrix rows must align with the materials band")
	}
	return nil
}
