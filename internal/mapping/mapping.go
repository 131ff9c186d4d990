// Package mapping loads the manually curated planning data that the
// workbooks do not carry: the SKU hierarchy mapping and the routing-rule
// table. Both are versioned YAML files so a different mapping never requires
// a rebuild.
package mapping

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// HierarchyEntry links a market SKU code to its assembly-stage and
// filling-stage upstream product codes.
type HierarchyEntry struct {
	Assembly string `yaml:"assembly"`
	Filling  string `yaml:"filling"`
	Family   string `yaml:"family"`
}

// SKUMapping is keyed by normalized SKU code.
type SKUMapping map[string]HierarchyEntry

func LoadSKUMapping(path string) (SKUMapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sku mapping: %w", err)
	}
	var m SKUMapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse sku mapping: %w", err)
	}
	return m, nil
}

// OwnerOf returns the SKU code that owns productID at any stage, or "" when
// no mapping references it. Used to attach assembly/filling-level BOM edges
// to their market SKU.
func (m SKUMapping) OwnerOf(productID string) string {
	// Deterministic when two SKUs share an upstream product.
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		e := m[code]
		if e.Assembly == productID || e.Filling == productID {
			return code
		}
	}
	return ""
}

// RoutingRule is one row of the static routing table.
type RoutingRule struct {
	RuleID      string `yaml:"rule_id"`
	Description string `yaml:"description"`
	Resource    string `yaml:"resource"`
	Type        string `yaml:"type"`
	Stage       string `yaml:"stage"`
	Priority    int    `yaml:"priority"`
}

var validStages = map[string]bool{
	"Packing":  true,
	"Assembly": true,
	"Filling":  true,
}

func LoadRoutingRules(path string) ([]RoutingRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routing rules: %w", err)
	}
	var rules []RoutingRule
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("parse routing rules: %w", err)
	}
	for i, r := range rules {
		if r.RuleID == "" {
			return nil, fmt.Errorf("routing rule %d: empty rule_id", i)
		}
		if !validStages[r.Stage] {
			return nil, fmt.Errorf("routing rule %s: unknown stage %q", r.RuleID, r.Stage)
		}
	}
	return rules, nil
}
