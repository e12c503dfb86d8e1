package database

import (
	"asset-tracker/config"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabaseConnection opens the configured database with unique-index errors translated
// into gorm.ErrDuplicatedKey.
func OpenDatabaseConnection(dbName string) (*gorm.DB, error) {
	_, dialector, err := getDSNAndDialector(dbName)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, err
	}
	return db, nil
}

func GormConfig() *gorm.Config {
	logMode := logger.Silent
	if config.DebugSQL() {
		logMode = logger.Info
	}

	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logMode,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}

func getDSNAndDialector(dbName string) (string, gorm.Dialector, error) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return dsn, postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, mysql.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, sqlserver.Open(dsn), nil
	case "sqlite":
		dsn := dbName
		if dsn != ":memory:" && !strings.HasSuffix(dsn, ".db") {
			dsn += ".db"
		}
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		return dsn, sqlite.Open(dsn), nil
	default:
		return "", nil, fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}
}

// EnsureDatabaseExists creates dbName on the server when the driver has a server.
func EnsureDatabaseExists(dbName string) error {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "sqlite":
		return nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		dialector = mysql.Open(dsn)
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=master",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		dialector = sqlserver.Open(dsn)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("connect to DB server: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	exists, err := checkDatabaseExists(db, dbName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return db.Exec("CREATE DATABASE " + dbName).Error
}

func checkDatabaseExists(db *gorm.DB, dbName string) (bool, error) {
	var count int64
	switch config.DBDriver {
	case "postgres":
		err := db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", dbName).Scan(&count).Error
		return count > 0, err
	case "mysql":
		err := db.Raw("SELECT COUNT(*) FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?", dbName).Scan(&count).Error
		return count > 0, err
	case "mssql":
		err := db.Raw("SELECT COUNT(*) FROM master.sys.databases WHERE name = ?", dbName).Scan(&count).Error
		return count > 0, err
	default:
		return false, fmt.Errorf("unsupported DB driver")
	}
}
