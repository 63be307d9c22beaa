package models

import "time"

// Cooperative is one housing/land cooperative tracked by the office.
type Cooperative struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name      string `gorm:"type:varchar(255)" json:"name"`
	StartDate Date   `json:"start_date"`

	// Relationships
	Members []CoopMember `gorm:"foreignKey:CoopID" json:"members,omitempty"`
}
