package models

// Users is persisted through the shared gorm connection.
type Users struct {
	Id   uint    `gorm:"primaryKey" json:"id"`
	Name *string `json:"name"`
}

func (Users) TableName() string {
	return "users"
}

func init() {
	Register(&Users{})
}
