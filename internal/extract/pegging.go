package extract

import (
	"strings"

	"github.com/mfgplanning/pegging-loader/internal/model"
)

// PeggingRecord is one candidate BOM edge: a (product, material) consumption
// cell joined with its resource mapping and a level tag. RawQty stays
// unparsed so the load stage can flag invalid values.
type PeggingRecord struct {
	SKU          string
	LevelTag     string
	ProductID    string
	ProductDesc  string
	MaterialID   string
	MaterialDesc string
	RawQty       string
	Section      string
	CommonUnique string
	BUoM         string
	RawLeadTime  string
	ResourceID   string
	ResourceDesc string
}

// BuildPeggingRecords joins the header band, materials band and quantity
// matrix into edge records. Blank quantity cells produce no edge; non-blank
// cells always do, even when the value is invalid, so the load stage can log
// them. resolveSKU maps a product code to the market SKU that owns it;
// packing-level products are their own SKU.
func BuildPeggingRecords(res *Result, resolveSKU func(productID string) string) []PeggingRecord {
	var records []PeggingRecord
	for _, p := range res.Products {
		tag := levelTagFor(p.ProductID)
		resource := res.Resources[p.ProductID]
		for _, m := range res.Materials {
			if m.RowOffset >= len(res.Quantities) || p.ColumnOffset >= len(res.Quantities[m.RowOffset]) {
				continue
			}
			raw := res.Quantities[m.RowOffset][p.ColumnOffset]
			if strings.TrimSpace(raw) == "" {
				continue
			}
			records = append(records, PeggingRecord{
				SKU:          resolveSKU(p.ProductID),
				LevelTag:     tag,
				ProductID:    p.ProductID,
				ProductDesc:  p.Description,
				MaterialID:   m.Code,
				MaterialDesc: m.Description,
				RawQty:       raw,
				Section:      m.Section,
				CommonUnique: m.CommonUnique,
				BUoM:         m.BUoM,
				RawLeadTime:  m.RawLeadTime,
				ResourceID:   resource.ResourceID,
				ResourceDesc: resource.Description,
			})
		}
	}
	return records
}

func levelTagFor(productID string) string {
	switch model.DeriveHierarchyLevel(productID) {
	case model.HierarchyPacking:
		return model.TagMarketSKU
	case model.HierarchyAssembly:
		return model.TagAssembly
	default:
		return model.TagFilling
	}
}
