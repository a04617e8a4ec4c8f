package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER (mysql by default;
// sqlite is handy for local runs). For mysql the DSN is either taken
// verbatim from DB_DSN or assembled from the usual DB_* variables.
func InitDB() (*gorm.DB, error) {
	_ = godotenv.Load()

	driver := GetEnv("DB_DRIVER", "mysql")
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(GetEnv("DB_DSN", "gasstation.db")), &gorm.Config{})
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				GetEnv("DB_USER", "root"),
				GetEnv("DB_PASS", ""),
				GetEnv("DB_HOST", "127.0.0.1"),
				GetEnv("DB_PORT", "3306"),
				GetEnv("DB_NAME", "gasstation"),
			)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ExcelPath is the default spreadsheet the import operations read when the
// caller does not name one.
func ExcelPath() string {
	return GetEnv("EXCEL_PATH", "GasStationOrders.xlsx")
}

// ImportCodepage names the registered codepage used to decode legacy
// delimited exports.
func ImportCodepage() string {
	return GetEnv("IMPORT_CODEPAGE", "windows-1252")
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
