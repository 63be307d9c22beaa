package models

import "time"

// CoopMember links a member to a cooperative. Dues are billed per link, so a
// member enrolled in two cooperatives carries two independent due schedules,
// each starting at its own entry date.
type CoopMember struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CoopID    uint `gorm:"index" json:"coop_id"`
	MemberID  uint `gorm:"index" json:"member_id"`
	EntryDate Date `json:"entry_date"`

	// Relationships
	Cooperative Cooperative `gorm:"foreignKey:CoopID" json:"cooperative,omitempty"`
	Member      Member      `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Dues        []Due       `gorm:"foreignKey:CoopMemberID" json:"dues,omitempty"`
}

func (CoopMember) TableName() string { return "cooperative_members" }
