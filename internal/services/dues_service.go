package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"aidat_app/internal/models"
)

// DuesService implements the due schedule bookkeeping for cooperative
// memberships: period generation, payments, corrections and deletions.
// Every operation is a one-shot read-modify-write against the store; the
// check-then-insert sequences run inside a single transaction so concurrent
// callers cannot bill the same period twice.
type DuesService struct {
	db *gorm.DB

	// now is swappable so tests can pin "today".
	now func() time.Time
}

func NewDuesService(db *gorm.DB) *DuesService {
	return &DuesService{db: db, now: time.Now}
}

func (s *DuesService) today() models.Date {
	return models.DateOf(s.now())
}

// membership fetches the cooperative membership row backing a due schedule.
func membership(tx *gorm.DB, coopMemberID uint) (*models.CoopMember, error) {
	var cm models.CoopMember
	if err := tx.First(&cm, coopMemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("membership %d: %w", coopMemberID, ErrNotFound)
		}
		return nil, err
	}
	return &cm, nil
}

func dueExists(tx *gorm.DB, coopMemberID uint, period models.Date) (bool, error) {
	var count int64
	err := tx.Model(&models.Due{}).
		Where("coop_member_id = ? AND period = ?", coopMemberID, period).
		Count(&count).Error
	return count > 0, err
}

// GenerateDues creates one unpaid due per calendar month from the
// membership's entry date through today, keeping the entry's day-of-month.
// Months that already have a due are left exactly as they are, so re-running
// after a partial failure only fills the gaps.
func (s *DuesService) GenerateDues(coopMemberID uint, monthlyAmount float64) error {
	today := s.today()
	return s.db.Transaction(func(tx *gorm.DB) error {
		cm, err := membership(tx, coopMemberID)
		if err != nil {
			return err
		}
		if cm.EntryDate.IsZero() {
			return fmt.Errorf("membership %d has no entry date: %w", coopMemberID, ErrInvalidInput)
		}

		for cursor := cm.EntryDate; !cursor.After(today); cursor = cursor.AddMonths(1) {
			exists, err := dueExists(tx, coopMemberID, cursor)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			due := models.Due{
				CoopMemberID: coopMemberID,
				Period:       cursor,
				Amount:       monthlyAmount,
				Status:       models.DueUnpaid,
			}
			if err := tx.Create(&due).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// appendDue inserts an unpaid due at period unless the slot is already
// taken. The guard matters when two callers race on the same membership.
func appendDue(tx *gorm.DB, coopMemberID uint, period models.Date, amount float64) error {
	exists, err := dueExists(tx, coopMemberID, period)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("period %s: %w", period, ErrDuplicatePeriod)
	}
	due := models.Due{
		CoopMemberID: coopMemberID,
		Period:       period,
		Amount:       amount,
		Status:       models.DueUnpaid,
	}
	return tx.Create(&due).Error
}

// AddNextDue appends a single due for the month after the latest billed
// period, or for the entry date when nothing has been billed yet. An
// occupied target period is an error, never an overwrite.
func (s *DuesService) AddNextDue(coopMemberID uint, monthlyAmount float64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var next models.Date

		var last models.Due
		err := tx.Where("coop_member_id = ?", coopMemberID).
			Order("period DESC").
			First(&last).Error
		switch {
		case err == nil:
			next = last.Period.AddMonths(1)
		case errors.Is(err, gorm.ErrRecordNotFound):
			cm, err := membership(tx, coopMemberID)
			if err != nil {
				return err
			}
			next = cm.EntryDate
		default:
			return err
		}

		return appendDue(tx, coopMemberID, next, monthlyAmount)
	})
}

// MonthlyShare splits a yearly total into a per-month amount, rounded
// half-up to two decimals. Dividing float64 by 12 drifts across repeated
// runs; decimal keeps every month's share identical.
func MonthlyShare(totalAmount float64) float64 {
	share := decimal.NewFromFloat(totalAmount).Div(decimal.NewFromInt(12)).Round(2)
	f, _ := share.Float64()
	return f
}

// GenerateYearlyDues makes sure all twelve first-of-month periods of a year
// exist for a membership, each carrying the monthly share of totalAmount.
// Unpaid and partial dues are re-priced to the new share; paid dues are
// never touched.
func (s *DuesService) GenerateYearlyDues(coopMemberID uint, year int, totalAmount float64) error {
	monthly := MonthlyShare(totalAmount)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := membership(tx, coopMemberID); err != nil {
			return err
		}

		for month := time.January; month <= time.December; month++ {
			period := models.NewDate(year, month, 1)

			var due models.Due
			err := tx.Where("coop_member_id = ? AND period = ?", coopMemberID, period).
				Order("id ASC").
				First(&due).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				due = models.Due{
					CoopMemberID: coopMemberID,
					Period:       period,
					Amount:       monthly,
					Status:       models.DueUnpaid,
				}
				if err := tx.Create(&due).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			case due.Status != models.DuePaid:
				if err := tx.Model(&due).Update("amount", monthly).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// AddExtraDue inserts a supplementary charge for an arbitrary month. No
// duplicate check: a second charge within the same nominal month is a valid
// use case (entry fees, special assessments).
func (s *DuesService) AddExtraDue(coopMemberID uint, year int, month int, amount float64) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d: %w", month, ErrInvalidInput)
	}
	if _, err := membership(s.db, coopMemberID); err != nil {
		return err
	}
	due := models.Due{
		CoopMemberID: coopMemberID,
		Period:       models.NewDate(year, time.Month(month), 1),
		Amount:       amount,
		Status:       models.DueUnpaid,
	}
	return s.db.Create(&due).Error
}

// PayDue applies one payment to a due. Payments accumulate with no
// over-payment cap, and only the most recent payment date is kept.
func (s *DuesService) PayDue(dueID uint, amount float64, paymentDate models.Date) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var due models.Due
		if err := tx.First(&due, dueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("due %d: %w", dueID, ErrNotFound)
			}
			return err
		}

		newPaid := due.PaidAmount + amount
		return tx.Model(&due).Updates(map[string]interface{}{
			"paid_amount":  newPaid,
			"status":       models.StatusFor(due.Amount, newPaid),
			"payment_date": paymentDate,
		}).Error
	})
}

// UpdateDueAmount overwrites a due's amount as-is, whatever its status. The
// caller owns keeping paid_amount sensible relative to the new amount.
func (s *DuesService) UpdateDueAmount(dueID uint, amount float64) error {
	return s.db.Model(&models.Due{}).Where("id = ?", dueID).Update("amount", amount).Error
}

// DeleteDue removes a single due. Deleting an id that does not exist is a
// no-op, so the operation is safe to retry.
func (s *DuesService) DeleteDue(dueID uint) error {
	return s.db.Delete(&models.Due{}, dueID).Error
}

// DeleteYearlyDues removes every due of one membership whose period falls
// within the given calendar year. A range scan rather than a month-equality
// filter, so it also catches entry-day periods that are not first-of-month.
func (s *DuesService) DeleteYearlyDues(coopMemberID uint, year int) error {
	start := models.NewDate(year, time.January, 1)
	end := models.NewDate(year, time.December, 31)
	return s.db.
		Where("coop_member_id = ? AND period BETWEEN ? AND ?", coopMemberID, start, end).
		Delete(&models.Due{}).Error
}

// ListDues returns a membership's dues in chronological order.
func (s *DuesService) ListDues(coopMemberID uint) ([]models.Due, error) {
	var dues []models.Due
	err := s.db.Where("coop_member_id = ?", coopMemberID).
		Order("period ASC").
		Find(&dues).Error
	return dues, err
}
