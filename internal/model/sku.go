package model

// SKU is a market-sellable finished-goods identifier. The two product
// references point at the assembly-stage and filling-stage upstream products
// and stay nil for SKUs absent from the hierarchy mapping.
type SKU struct {
	BaseModel
	SKUID             string  `db:"sku_id"`
	SKUCode           string  `db:"sku_code"`
	Description       *string `db:"sku_description"`
	ProductFamily     *string `db:"product_family"`
	PackSize          *string `db:"pack_size"`
	Country           *string `db:"country"`
	Region            *string `db:"region"`
	AssemblyProductID *string `db:"assembly_product_id"`
	FillingProductID  *string `db:"filling_product_id"`
}

// SKUDemand is quarterly demand per SKU. The loader only creates the table;
// demand rows arrive through manual entry or a separate feed.
type SKUDemand struct {
	BaseModel
	DemandID    int64    `db:"demand_id"`
	SKUID       string   `db:"sku_id"`
	Molecule    *string  `db:"molecule"`
	ProductForm *string  `db:"product_form"`
	Region      *string  `db:"region"`
	Q3FY26      *float64 `db:"q3_fy26"`
	Q4FY26      *float64 `db:"q4_fy26"`
	Q1FY27      *float64 `db:"q1_fy27"`
	Q2FY27      *float64 `db:"q2_fy27"`
	TotalDemand *float64 `db:"total_demand"`
}
