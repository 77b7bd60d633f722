package config

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the configured database. MySQL is the production driver;
// sqlite covers local development and tests.
func ConnectDB(s Settings) *gorm.DB {
	var dialector gorm.Dialector
	switch s.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(s.Database.DSN)
	default:
		dialector = mysql.Open(s.Database.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}
	return db
}
