package models

import "time"

// Member is a person registered with the office, independent of any
// cooperative enrollment.
type Member struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TCNumber         string  `gorm:"type:varchar(11);uniqueIndex" json:"tc_number"`
	FullName         string  `gorm:"type:varchar(255)" json:"full_name"`
	Phone1           string  `gorm:"column:phone_1;type:varchar(20)" json:"phone_1"`
	Phone2           *string `gorm:"column:phone_2;type:varchar(20)" json:"phone_2,omitempty"`
	RegistrationDate Date    `json:"registration_date"`
}
