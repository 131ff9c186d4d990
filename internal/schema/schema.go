// Package schema owns the relational layout of the pegging database: nine
// tables whose foreign keys form a DAG rooted at materials and products.
// Creation is create-if-absent only; there is no migration framework and no
// destructive path.
package schema

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type table struct {
	name string
	ddl  string
}

// Ordered so every table exists before anything referencing it.
var tables = []table{
	{"materials", `
		CREATE TABLE IF NOT EXISTS materials (
			material_id VARCHAR(50) PRIMARY KEY,
			material_code VARCHAR(100) UNIQUE NOT NULL,
			material_description VARCHAR(500),
			section VARCHAR(100),
			common_unique VARCHAR(50),
			total_lead_time_weeks FLOAT,
			buom VARCHAR(50),
			model VARCHAR(200),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_material_code (material_code),
			INDEX idx_section (section)
		) ENGINE=InnoDB`},
	{"products", `
		CREATE TABLE IF NOT EXISTS products (
			product_id VARCHAR(50) PRIMARY KEY,
			product_code VARCHAR(100) UNIQUE NOT NULL,
			product_description VARCHAR(500),
			product_family VARCHAR(100),
			hierarchy_level VARCHAR(50),
			bom_type VARCHAR(50),
			batch_size VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_product_code (product_code),
			INDEX idx_product_family (product_family),
			INDEX idx_hierarchy_level (hierarchy_level)
		) ENGINE=InnoDB`},
	{"skus", `
		CREATE TABLE IF NOT EXISTS skus (
			sku_id VARCHAR(50) PRIMARY KEY,
			sku_code VARCHAR(100) UNIQUE NOT NULL,
			sku_description VARCHAR(500),
			product_family VARCHAR(100),
			pack_size VARCHAR(50),
			country VARCHAR(100),
			region VARCHAR(50),
			assembly_product_id VARCHAR(50),
			filling_product_id VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_sku_code (sku_code),
			INDEX idx_product_family (product_family),
			INDEX idx_region (region),
			FOREIGN KEY (assembly_product_id) REFERENCES products(product_id),
			FOREIGN KEY (filling_product_id) REFERENCES products(product_id)
		) ENGINE=InnoDB`},
	{"bom_hierarchy", `
		CREATE TABLE IF NOT EXISTS bom_hierarchy (
			hierarchy_id INT AUTO_INCREMENT PRIMARY KEY,
			sku_id VARCHAR(50) NOT NULL,
			level INT NOT NULL,
			product_id VARCHAR(50) NOT NULL,
			product_description VARCHAR(500),
			material_id VARCHAR(50) NOT NULL,
			material_description VARCHAR(500),
			quantity FLOAT NOT NULL,
			section VARCHAR(100),
			common_unique VARCHAR(50),
			buom VARCHAR(50),
			lead_time_weeks FLOAT,
			resource_id VARCHAR(100),
			resource_description VARCHAR(300),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_sku_id (sku_id),
			INDEX idx_level (level),
			INDEX idx_product_id (product_id),
			INDEX idx_material_id (material_id),
			FOREIGN KEY (sku_id) REFERENCES skus(sku_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id),
			FOREIGN KEY (material_id) REFERENCES materials(material_id)
		) ENGINE=InnoDB`},
	{"resources", `
		CREATE TABLE IF NOT EXISTS resources (
			resource_id VARCHAR(100) PRIMARY KEY,
			resource_description VARCHAR(500),
			molecule VARCHAR(100),
			product_id VARCHAR(50),
			stage VARCHAR(50),
			capacity_per_day FLOAT,
			changeover_hours FLOAT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_product_id (product_id),
			INDEX idx_stage (stage),
			FOREIGN KEY (product_id) REFERENCES products(product_id)
		) ENGINE=InnoDB`},
	{"routing_rules", `
		CREATE TABLE IF NOT EXISTS routing_rules (
			rule_id VARCHAR(50) PRIMARY KEY,
			rule_description VARCHAR(500),
			resource_id VARCHAR(100),
			rule_type VARCHAR(50),
			stage VARCHAR(50),
			priority INT,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_resource_id (resource_id),
			INDEX idx_stage (stage),
			INDEX idx_is_active (is_active)
		) ENGINE=InnoDB`},
	{"sku_demand", `
		CREATE TABLE IF NOT EXISTS sku_demand (
			demand_id INT AUTO_INCREMENT PRIMARY KEY,
			sku_id VARCHAR(50) NOT NULL,
			molecule VARCHAR(100),
			product_form VARCHAR(50),
			region VARCHAR(50),
			q3_fy26 FLOAT,
			q4_fy26 FLOAT,
			q1_fy27 FLOAT,
			q2_fy27 FLOAT,
			total_demand FLOAT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_sku_id (sku_id),
			INDEX idx_molecule (molecule),
			INDEX idx_region (region),
			FOREIGN KEY (sku_id) REFERENCES skus(sku_id)
		) ENGINE=InnoDB`},
	{"data_quality_log", `
		CREATE TABLE IF NOT EXISTS data_quality_log (
			log_id INT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(36),
			check_type VARCHAR(100),
			entity_type VARCHAR(50),
			entity_id VARCHAR(100),
			issue_description VARCHAR(500),
			severity VARCHAR(20),
			status VARCHAR(20),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			resolved_at TIMESTAMP NULL,
			INDEX idx_run_id (run_id),
			INDEX idx_entity_type (entity_type),
			INDEX idx_severity (severity),
			INDEX idx_status (status)
		) ENGINE=InnoDB`},
	{"pegging_audit_trail", `
		CREATE TABLE IF NOT EXISTS pegging_audit_trail (
			audit_id INT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(36),
			sku_id VARCHAR(50) NOT NULL,
			product_id VARCHAR(50),
			material_id VARCHAR(50),
			action VARCHAR(50),
			old_value VARCHAR(500),
			new_value VARCHAR(500),
			changed_by VARCHAR(100),
			change_reason VARCHAR(300),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_run_id (run_id),
			INDEX idx_sku_id (sku_id),
			INDEX idx_action (action),
			INDEX idx_created_at (created_at)
		) ENGINE=InnoDB`},
}

// Ensure creates every table that does not exist yet, in dependency order,
// with a single commit at the end. The first failure aborts the remaining
// statements; DDL already issued may have taken effect, which is accepted for
// a one-time setup operation.
func Ensure(ctx context.Context, db *sqlx.DB, log *zap.Logger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}

	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, t.ddl); err != nil {
			tx.Rollback()
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.Info("table created/verified", zap.String("table", t.name))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	log.Info("all tables created successfully", zap.Int("tables", len(tables)))
	return nil
}

// TableNames returns the managed tables in creation order.
func TableNames() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}
