package services

import (
	"bytes"
	"errors"
	"testing"

	"aidat_app/internal/models"
)

func TestReceiptInfo(t *testing.T) {
	db := newTestDB(t)
	cmID := seedMembership(t, db, "2024-01-15")
	svc := NewReceiptService(db, OfficeInfo{})

	info, err := svc.ReceiptInfo(cmID)
	if err != nil {
		t.Fatalf("ReceiptInfo: %v", err)
	}
	if info.CoopName != "Gül Konut Kooperatifi" {
		t.Errorf("coop name = %q", info.CoopName)
	}
	if info.MemberFullName != "Ali Veli" || info.MemberPhone != "5551112233" {
		t.Errorf("member fields wrong: %+v", info)
	}

	if _, err := svc.ReceiptInfo(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing membership = %v; want ErrNotFound", err)
	}
}

func TestBuildReceiptPDF(t *testing.T) {
	db := newTestDB(t)
	cmID := seedMembership(t, db, "2024-01-15")
	dues := NewDuesService(db)

	if err := dues.AddExtraDue(cmID, 2024, 2, 300); err != nil {
		t.Fatalf("AddExtraDue: %v", err)
	}
	list, _ := dues.ListDues(cmID)
	payDay, _ := models.ParseDate("2024-02-20")
	if err := dues.PayDue(list[0].ID, 150, payDay); err != nil {
		t.Fatalf("PayDue: %v", err)
	}

	svc := NewReceiptService(db, OfficeInfo{
		Name:  "Örnek Emlak Ofisi",
		Phone: "555 000 0000",
		Agent: "Ofis Yetkilisi",
	})

	pdf, err := svc.BuildReceiptPDF(list[0].ID)
	if err != nil {
		t.Fatalf("BuildReceiptPDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", pdf[:min(16, len(pdf))])
	}
	if len(pdf) < 500 {
		t.Errorf("PDF suspiciously small: %d bytes", len(pdf))
	}

	if _, err := svc.BuildReceiptPDF(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing due = %v; want ErrNotFound", err)
	}
}
