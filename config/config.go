package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	MySQL  MySQLConfig
	Files  FilesConfig
}

type AppConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level    string
	Encoding string
	FilePath string
}

type MySQLConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// FilesConfig seeds the default input paths. Every entry can be overridden by
// a CLI flag at run time.
type FilesConfig struct {
	DPWorkbook   string
	SNPWorkbook  string
	Layout       string
	SKUMapping   string
	RoutingRules string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOGGER_LEVEL", "info"),
			Encoding: getEnv("LOGGER_ENCODING", "console"),
			FilePath: getEnv("LOGGER_FILE", "material_pegging.log"),
		},
		MySQL: MySQLConfig{
			Host:            getEnv("MYSQL_HOST", "localhost"),
			Port:            getEnvInt("MYSQL_PORT", 3306),
			User:            getEnv("MYSQL_USER", "root"),
			Password:        getEnv("MYSQL_PASSWORD", ""),
			DBName:          getEnv("MYSQL_DB", "supply_optimization"),
			MaxOpenConns:    getEnvInt("MYSQL_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvInt("MYSQL_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvInt("MYSQL_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("MYSQL_CONN_MAX_IDLE_TIME", 60),
		},
		Files: FilesConfig{
			DPWorkbook:   getEnv("DP_WORKBOOK", "data/dp_material_shortage.xlsx"),
			SNPWorkbook:  getEnv("SNP_WORKBOOK", "data/snp.xlsx"),
			Layout:       getEnv("LAYOUT_FILE", "configs/layout.yaml"),
			SKUMapping:   getEnv("SKU_MAPPING_FILE", "configs/sku_mapping.yaml"),
			RoutingRules: getEnv("ROUTING_RULES_FILE", "configs/routing_rules.yaml"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
