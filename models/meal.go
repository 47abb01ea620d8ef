package models

import "time"

// One meal record, owned by the session that created it.
type Meal struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Date        string `gorm:"type:varchar(10)" json:"date"` // YYYY-MM-DD
	Hour        string `gorm:"type:varchar(8)" json:"hour"`  // HH:MM:SS
	Diet        string `gorm:"type:varchar(3)" json:"diet"`  // "yes" | "no"
	SessionID   string `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"-"`
}
