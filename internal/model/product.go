package model

import "strings"

// HierarchyLevel is the production stage a product code belongs to. It is a
// closed enumeration derived from the code-prefix convention used across the
// planning workbooks.
type HierarchyLevel string

const (
	HierarchyPacking  HierarchyLevel = "Packing"
	HierarchyAssembly HierarchyLevel = "Assembly"
	HierarchyFilling  HierarchyLevel = "Filling"
)

// DeriveHierarchyLevel classifies a normalized product code. Codes starting
// with "8" are market-facing packing products, "700003" marks assembly
// intermediates, everything else is treated as filling.
func DeriveHierarchyLevel(code string) HierarchyLevel {
	switch {
	case strings.HasPrefix(code, "8"):
		return HierarchyPacking
	case strings.HasPrefix(code, "700003"):
		return HierarchyAssembly
	default:
		return HierarchyFilling
	}
}

type Product struct {
	BaseModel
	ProductID      string         `db:"product_id"`
	ProductCode    string         `db:"product_code"`
	Description    *string        `db:"product_description"`
	ProductFamily  *string        `db:"product_family"`
	HierarchyLevel HierarchyLevel `db:"hierarchy_level"`
	BOMType        string         `db:"bom_type"`
	BatchSize      *string        `db:"batch_size"`
}
