package models

import "time"

// DueStatus tracks how much of a due has been collected.
type DueStatus string

const (
	DueUnpaid  DueStatus = "unpaid"
	DuePartial DueStatus = "partial"
	DuePaid    DueStatus = "paid"
)

// StatusFor derives a due's status from its amounts: fully covered is paid,
// anything collected short of the amount is partial, nothing collected is
// unpaid. Status is never stored independently of the amounts; every payment
// recomputes it through here.
func StatusFor(amount, paidAmount float64) DueStatus {
	switch {
	case paidAmount >= amount:
		return DuePaid
	case paidAmount > 0:
		return DuePartial
	default:
		return DueUnpaid
	}
}

// Due is one billing period of one cooperative membership. Period marks the
// calendar month being billed; extra charges may share a period, so the
// (coop_member_id, period) pair is indexed but deliberately not unique.
type Due struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CoopMemberID uint      `gorm:"index:idx_dues_member_period" json:"coop_member_id"`
	Period       Date      `gorm:"index:idx_dues_member_period" json:"period"`
	Amount       float64   `json:"amount"`
	PaidAmount   float64   `gorm:"default:0" json:"paid_amount"`
	Status       DueStatus `gorm:"type:varchar(20);default:'unpaid'" json:"status"`
	PaymentDate  *Date     `json:"payment_date,omitempty"`

	// Relationships
	CoopMember CoopMember `gorm:"foreignKey:CoopMemberID" json:"coop_member,omitempty"`
}
