package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"
	"gorm.io/gorm"

	"aidat_app/internal/models"
	"aidat_app/internal/numtext"
)

// ReceiptInfo carries the header fields printed on a collection receipt.
type ReceiptInfo struct {
	CoopName       string `json:"coop_name"`
	MemberFullName string `json:"member_full_name"`
	MemberTC       string `json:"member_tc"`
	MemberPhone    string `json:"member_phone"`
}

// OfficeInfo identifies the issuing office on printed receipts. Fields left
// empty are simply omitted from the document.
type OfficeInfo struct {
	Name    string
	Address string
	Phone   string
	Agent   string
}

// ReceiptService produces collection receipts (tahsilat makbuzu) for
// recorded due payments.
type ReceiptService struct {
	db     *gorm.DB
	office OfficeInfo
}

func NewReceiptService(db *gorm.DB, office OfficeInfo) *ReceiptService {
	return &ReceiptService{db: db, office: office}
}

// ReceiptInfo resolves the cooperative and member details behind one
// membership for the receipt header.
func (s *ReceiptService) ReceiptInfo(coopMemberID uint) (*ReceiptInfo, error) {
	var info ReceiptInfo
	res := s.db.Table("cooperative_members AS cm").
		Select("c.name AS coop_name, m.full_name AS member_full_name, m.tc_number AS member_tc, m.phone_1 AS member_phone").
		Joins("JOIN cooperatives c ON c.id = cm.coop_id").
		Joins("JOIN members m ON m.id = cm.member_id").
		Where("cm.id = ?", coopMemberID).
		Scan(&info)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("membership %d: %w", coopMemberID, ErrNotFound)
	}
	return &info, nil
}

// BuildReceiptPDF renders the receipt for one due's recorded payment.
// Partial payments get a distinct title plus the remaining balance.
func (s *ReceiptService) BuildReceiptPDF(dueID uint) ([]byte, error) {
	var due models.Due
	if err := s.db.First(&due, dueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("due %d: %w", dueID, ErrNotFound)
		}
		return nil, err
	}

	info, err := s.ReceiptInfo(due.CoopMemberID)
	if err != nil {
		return nil, err
	}

	receiptNo := strings.ToUpper(uuid.New().String()[:8])

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("iso-8859-9")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	title := "TAHSİLAT MAKBUZU"
	if due.Status == models.DuePartial {
		title = "TAHSİLAT MAKBUZU (KISMİ ÖDEME)"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(180, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, tr("Makbuz No: "+receiptNo), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	officeRows := [][2]string{
		{"Kooperatif Adı", info.CoopName},
		{"Emlak Ofisi", s.office.Name},
		{"Adres", s.office.Address},
		{"Telefon", s.office.Phone},
		{"Yetkili", s.office.Agent},
	}
	for _, row := range officeRows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(45, 7, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(135, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(180, 8, tr("MÜŞTERİ (ÜYE) BİLGİLERİ"), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(90, 7, tr("Ad Soyad: "+info.MemberFullName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr("TC No: "+info.MemberTC), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(180, 7, tr("Telefon: "+info.MemberPhone), "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)

	paymentDate := "..."
	if due.PaymentDate != nil {
		paymentDate = due.PaymentDate.String()
	}
	paymentType := "Tam Ödeme"
	if due.Status == models.DuePartial {
		paymentType = "Kısmi Ödeme"
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(180, 8, tr("ÖDEME BİLGİLERİ"), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(90, 7, tr("Dönem: "+due.Period.String()), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr("Ödeme Tarihi: "+paymentDate), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr("Ödeme Türü: "+paymentType), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr(fmt.Sprintf("Ödenen Tutar: %.2f TL", due.PaidAmount)), "RB", 1, "L", false, 0, "")
	if due.Status == models.DuePartial {
		pdf.CellFormat(90, 7, tr(fmt.Sprintf("Toplam Tutar: %.2f TL", due.Amount)), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, tr(fmt.Sprintf("Kalan Tutar: %.2f TL", due.Amount-due.PaidAmount)), "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "I", 11)
	pdf.MultiCell(180, 7, tr("Yalnız "+numtext.Lira(due.PaidAmount)+" tahsil edilmiştir."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
