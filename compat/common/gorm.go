package common

import (
	"github.com/bsthun/gut"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Gorm opens the database described by the dialector and migrates every given
// model. Startup cannot proceed without a database, so failures are fatal.
func Gorm(dialector gorm.Dialector, models ...any) *gorm.DB {
	// * open connection
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		gut.Fatal("unable to open database", err)
	}

	// * migrate registered models
	if err := db.AutoMigrate(models...); err != nil {
		gut.Fatal("unable to migrate database", err)
	}

	return db
}

// Sqlite constructs the sqlite dialector for a database file path.
func Sqlite(path string) gorm.Dialector {
	return sqlite.Open(path)
}
