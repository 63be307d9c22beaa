package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aidat_app/internal/models"
)

// MemberService handles the member registry: CRUD plus name/TC search.
type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

func (s *MemberService) Create(member *models.Member) error {
	return s.db.Create(member).Error
}

func (s *MemberService) Get(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) List() ([]models.Member, error) {
	var members []models.Member
	err := s.db.Order("full_name ASC").Find(&members).Error
	return members, err
}

// Search matches the query against full name and TC number.
func (s *MemberService) Search(query string) ([]models.Member, error) {
	pattern := "%" + query + "%"
	var members []models.Member
	err := s.db.
		Where("full_name LIKE ? OR tc_number LIKE ?", pattern, pattern).
		Order("full_name ASC").
		Find(&members).Error
	return members, err
}

func (s *MemberService) Update(id uint, member *models.Member) error {
	res := s.db.Model(&models.Member{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tc_number":         member.TCNumber,
		"full_name":         member.FullName,
		"phone_1":           member.Phone1,
		"phone_2":           member.Phone2,
		"registration_date": member.RegistrationDate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("member %d: %w", id, ErrNotFound)
	}
	return nil
}
