package db

import (
	"wedding-server/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var (
		db  *gorm.DB
		err error
	)
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
		})
	} else {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), &gorm.Config{})
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
