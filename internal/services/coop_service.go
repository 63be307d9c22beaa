package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aidat_app/internal/models"
)

// CoopService handles cooperatives and their membership roster.
type CoopService struct {
	db *gorm.DB
}

func NewCoopService(db *gorm.DB) *CoopService {
	return &CoopService{db: db}
}

func (s *CoopService) Create(coop *models.Cooperative) error {
	return s.db.Create(coop).Error
}

func (s *CoopService) Get(id uint) (*models.Cooperative, error) {
	var coop models.Cooperative
	if err := s.db.First(&coop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cooperative %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &coop, nil
}

func (s *CoopService) List() ([]models.Cooperative, error) {
	var coops []models.Cooperative
	err := s.db.Order("start_date DESC").Find(&coops).Error
	return coops, err
}

// CoopMemberInfo is one row of the cooperative's membership roster.
type CoopMemberInfo struct {
	ID        uint        `json:"id"`
	MemberID  uint        `json:"member_id"`
	FullName  string      `json:"full_name"`
	TCNumber  string      `json:"tc_number"`
	Phone1    string      `json:"phone_1"`
	EntryDate models.Date `json:"entry_date"`
}

// CoopMembers lists the roster of a cooperative, joined with member details.
func (s *CoopService) CoopMembers(coopID uint) ([]CoopMemberInfo, error) {
	var rows []CoopMemberInfo
	err := s.db.Table("cooperative_members AS cm").
		Select("cm.id, cm.member_id, m.full_name, m.tc_number, m.phone_1, cm.entry_date").
		Joins("JOIN members m ON m.id = cm.member_id").
		Where("cm.coop_id = ?", coopID).
		Order("m.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

// AvailableMembers lists members not yet enrolled in the cooperative.
func (s *CoopService) AvailableMembers(coopID uint) ([]models.Member, error) {
	sub := s.db.Model(&models.CoopMember{}).Select("member_id").Where("coop_id = ?", coopID)
	var members []models.Member
	err := s.db.
		Where("id NOT IN (?)", sub).
		Order("full_name ASC").
		Find(&members).Error
	return members, err
}

// AddMembersToCoop links several members to a cooperative with one shared
// entry date. All links are created or none are.
func (s *CoopService) AddMembersToCoop(coopID uint, memberIDs []uint, entryDate models.Date) error {
	if len(memberIDs) == 0 {
		return fmt.Errorf("no members given: %w", ErrInvalidInput)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Cooperative{}, coopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cooperative %d: %w", coopID, ErrNotFound)
			}
			return err
		}

		for _, memberID := range memberIDs {
			if err := tx.First(&models.Member{}, memberID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("member %d: %w", memberID, ErrNotFound)
				}
				return err
			}
			link := models.CoopMember{
				CoopID:    coopID,
				MemberID:  memberID,
				EntryDate: entryDate,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
