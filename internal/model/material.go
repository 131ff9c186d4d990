package model

// Material is a purchasable component identified by its normalized
// alphanumeric code. MaterialID and MaterialCode carry the same value; the
// split mirrors the table layout where the code is also a unique column.
type Material struct {
	BaseModel
	MaterialID   string   `db:"material_id"`
	MaterialCode string   `db:"material_code"`
	Description  *string  `db:"material_description"`
	Section      *string  `db:"section"`
	CommonUnique *string  `db:"common_unique"`
	LeadTimeWks  *float64 `db:"total_lead_time_weeks"`
	BUoM         *string  `db:"buom"`
	Model        *string  `db:"model"`
}
