package model

// BOM level tags carried on extracted pegging records. Anything that is not
// one of the first two collapses to level 3.
const (
	TagMarketSKU = "L1_Market_SKU"
	TagAssembly  = "L2_Assembly"
	TagFilling   = "L3_Filling"
)

// LevelFromTag maps a level tag to its numeric BOM level.
func LevelFromTag(tag string) int {
	switch tag {
	case TagMarketSKU:
		return 1
	case TagAssembly:
		return 2
	default:
		return 3
	}
}

// BOMEdge links one SKU to one (product, material) pair at a given hierarchy
// level. Edges are append-only: every load run inserts a fresh snapshot.
type BOMEdge struct {
	BaseModel
	HierarchyID  int64    `db:"hierarchy_id"`
	SKUID        string   `db:"sku_id"`
	Level        int      `db:"level"`
	ProductID    string   `db:"product_id"`
	ProductDesc  *string  `db:"product_description"`
	MaterialID   string   `db:"material_id"`
	MaterialDesc *string  `db:"material_description"`
	Quantity     float64  `db:"quantity"`
	Section      *string  `db:"section"`
	CommonUnique *string  `db:"common_unique"`
	BUoM         *string  `db:"buom"`
	LeadTimeWks  *float64 `db:"lead_time_weeks"`
	ResourceID   *string  `db:"resource_id"`
	ResourceDesc *string  `db:"resource_description"`
}
