package services

import (
	"errors"
	"testing"

	"aidat_app/internal/models"
)

func newCoop(t *testing.T, svc *CoopService, name, start string) *models.Cooperative {
	t.Helper()
	startDate, err := models.ParseDate(start)
	if err != nil {
		t.Fatalf("parse start date: %v", err)
	}
	coop := &models.Cooperative{Name: name, StartDate: startDate}
	if err := svc.Create(coop); err != nil {
		t.Fatalf("create cooperative: %v", err)
	}
	return coop
}

func TestCoopListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoopService(db)

	newCoop(t, svc, "Eski Kooperatif", "2018-03-01")
	newCoop(t, svc, "Yeni Kooperatif", "2024-06-01")

	coops, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(coops) != 2 || coops[0].Name != "Yeni Kooperatif" {
		t.Errorf("List order wrong: %v", coops)
	}

	if _, err := svc.Get(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing cooperative = %v; want ErrNotFound", err)
	}
}

func TestAddMembersToCoop(t *testing.T) {
	db := newTestDB(t)
	coopSvc := NewCoopService(db)
	memberSvc := NewMemberService(db)

	coop := newCoop(t, coopSvc, "Gül Konut", "2024-01-01")
	m1 := newMember("44444444444", "Hasan Kurt", "5550000004")
	m2 := newMember("55555555555", "Emine Kurt", "5550000005")
	for _, m := range []*models.Member{m1, m2} {
		if err := memberSvc.Create(m); err != nil {
			t.Fatalf("create member: %v", err)
		}
	}

	entry, _ := models.ParseDate("2024-02-01")
	if err := coopSvc.AddMembersToCoop(coop.ID, []uint{m1.ID, m2.ID}, entry); err != nil {
		t.Fatalf("AddMembersToCoop: %v", err)
	}

	roster, err := coopSvc.CoopMembers(coop.ID)
	if err != nil {
		t.Fatalf("CoopMembers: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("roster has %d rows; want 2", len(roster))
	}
	// Ordered by member name.
	if roster[0].FullName != "Emine Kurt" || roster[1].FullName != "Hasan Kurt" {
		t.Errorf("roster order wrong: %v", roster)
	}
	if roster[0].EntryDate.String() != "2024-02-01" {
		t.Errorf("entry date = %s; want 2024-02-01", roster[0].EntryDate)
	}
}

func TestAddMembersToCoopRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	coopSvc := NewCoopService(db)
	memberSvc := NewMemberService(db)

	coop := newCoop(t, coopSvc, "Gül Konut", "2024-01-01")
	m1 := newMember("44444444444", "Hasan Kurt", "5550000004")
	if err := memberSvc.Create(m1); err != nil {
		t.Fatalf("create member: %v", err)
	}

	entry, _ := models.ParseDate("2024-02-01")
	err := coopSvc.AddMembersToCoop(coop.ID, []uint{m1.ID, 9999}, entry)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddMembersToCoop with bogus member = %v; want ErrNotFound", err)
	}

	// All or nothing: the valid link must have been rolled back too.
	roster, _ := coopSvc.CoopMembers(coop.ID)
	if len(roster) != 0 {
		t.Errorf("roster has %d rows after rollback; want 0", len(roster))
	}

	if err := coopSvc.AddMembersToCoop(coop.ID, nil, entry); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty member list = %v; want ErrInvalidInput", err)
	}
	if err := coopSvc.AddMembersToCoop(9999, []uint{m1.ID}, entry); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing cooperative = %v; want ErrNotFound", err)
	}
}

func TestAvailableMembers(t *testing.T) {
	db := newTestDB(t)
	coopSvc := NewCoopService(db)
	memberSvc := NewMemberService(db)

	coop := newCoop(t, coopSvc, "Gül Konut", "2024-01-01")
	enrolled := newMember("44444444444", "Hasan Kurt", "5550000004")
	outside := newMember("55555555555", "Emine Kurt", "5550000005")
	for _, m := range []*models.Member{enrolled, outside} {
		if err := memberSvc.Create(m); err != nil {
			t.Fatalf("create member: %v", err)
		}
	}

	entry, _ := models.ParseDate("2024-02-01")
	if err := coopSvc.AddMembersToCoop(coop.ID, []uint{enrolled.ID}, entry); err != nil {
		t.Fatalf("AddMembersToCoop: %v", err)
	}

	available, err := coopSvc.AvailableMembers(coop.ID)
	if err != nil {
		t.Fatalf("AvailableMembers: %v", err)
	}
	if len(available) != 1 || available[0].ID != outside.ID {
		t.Errorf("available = %v; want only member %d", available, outside.ID)
	}
}
