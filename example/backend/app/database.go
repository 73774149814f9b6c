package main

import (
	"backend/app/models"

	"go.reef.dev/open/fin/compat/common"
	"gorm.io/gorm"
)

// db is the shared database handle, assigned once by Connect.
var db *gorm.DB

// Connect opens the sqlite database and migrates every registered model.
func Connect() {
	db = common.Gorm(common.Sqlite("app/database.db"), models.Registry()...)
}
