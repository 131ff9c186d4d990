package model

import "strings"

// ResourceStage is derived from the product code a resource is mapped to,
// using the same substring convention the planning team uses in the SNP
// workbook.
type ResourceStage string

const (
	StageAssembly ResourceStage = "Assembly"
	StageFilling  ResourceStage = "Filling"
	StagePacking  ResourceStage = "Packing"
)

func DeriveResourceStage(productCode string) ResourceStage {
	switch {
	case strings.Contains(productCode, "700003"):
		return StageAssembly
	case strings.Contains(productCode, "700001"):
		return StageFilling
	default:
		return StagePacking
	}
}

// Resource is a production line or equipment. Capacity and changeover values
// are left for manual entry; the loader never writes them.
type Resource struct {
	BaseModel
	ResourceID    string        `db:"resource_id"`
	Description   *string       `db:"resource_description"`
	Molecule      *string       `db:"molecule"`
	ProductID     *string       `db:"product_id"`
	Stage         ResourceStage `db:"stage"`
	CapacityPerDy *float64      `db:"capacity_per_day"`
	ChangeoverHrs *float64      `db:"changeover_hours"`
}
