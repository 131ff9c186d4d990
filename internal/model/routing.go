package model

// RoutingRule is a manually curated mapping from a rule id to a resource and
// production stage. Rules come from a versioned YAML file, not from the
// workbooks.
type RoutingRule struct {
	BaseModel
	RuleID      string `db:"rule_id"`
	Description string `db:"rule_description"`
	ResourceID  string `db:"resource_id"`
	RuleType    string `db:"rule_type"`
	Stage       string `db:"stage"`
	Priority    int    `db:"priority"`
	IsActive    bool   `db:"is_active"`
}
