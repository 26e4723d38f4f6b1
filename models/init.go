package models

import (
	"wedding-server/db"
)

func Init() {
	db.Instance.AutoMigrate(&Invitation{})
	db.Instance.AutoMigrate(&Guest{})
	db.Instance.AutoMigrate(&RsvpResponse{})
}
