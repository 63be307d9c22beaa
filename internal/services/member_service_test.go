package services

import (
	"errors"
	"testing"

	"aidat_app/internal/models"
)

func newMember(tc, name, phone string) *models.Member {
	reg, _ := models.ParseDate("2024-01-15")
	return &models.Member{
		TCNumber:         tc,
		FullName:         name,
		Phone1:           phone,
		RegistrationDate: reg,
	}
}

func TestMemberCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	member := newMember("12345678901", "Ayşe Yılmaz", "5550001122")
	if err := svc.Create(member); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if member.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := svc.Get(member.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FullName != "Ayşe Yılmaz" || got.TCNumber != "12345678901" {
		t.Errorf("Get = %+v", got)
	}
	if got.RegistrationDate.String() != "2024-01-15" {
		t.Errorf("registration date = %s; want 2024-01-15", got.RegistrationDate)
	}

	if _, err := svc.Get(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing member = %v; want ErrNotFound", err)
	}
}

func TestMemberListOrdersByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	for _, m := range []*models.Member{
		newMember("10000000001", "Zeynep Kaya", "5550000001"),
		newMember("10000000002", "Ahmet Demir", "5550000002"),
	} {
		if err := svc.Create(m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	members, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(members) != 2 || members[0].FullName != "Ahmet Demir" {
		t.Errorf("List order wrong: %v", members)
	}
}

func TestMemberSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	for _, m := range []*models.Member{
		newMember("11111111111", "Mehmet Öz", "5550000001"),
		newMember("22222222222", "Fatma Özdemir", "5550000002"),
		newMember("33333333333", "Ali Çelik", "5550000003"),
	} {
		if err := svc.Create(m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tests := []struct {
		name  string
		query string
		count int
	}{
		{name: "partial name", query: "Öz", count: 2},
		{name: "tc number fragment", query: "2222", count: 1},
		{name: "no match", query: "yok", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(tt.query)
			if err != nil {
				t.Fatalf("Search(%q): %v", tt.query, err)
			}
			if len(got) != tt.count {
				t.Errorf("Search(%q) returned %d members; want %d", tt.query, len(got), tt.count)
			}
		})
	}
}

func TestMemberUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(db)

	member := newMember("12345678901", "Ayşe Yılmaz", "5550001122")
	if err := svc.Create(member); err != nil {
		t.Fatalf("Create: %v", err)
	}

	phone2 := "5559998877"
	updated := newMember("12345678901", "Ayşe Yılmaz Arslan", "5550001122")
	updated.Phone2 = &phone2
	if err := svc.Update(member.ID, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := svc.Get(member.ID)
	if got.FullName != "Ayşe Yılmaz Arslan" {
		t.Errorf("full name = %q after update", got.FullName)
	}
	if got.Phone2 == nil || *got.Phone2 != phone2 {
		t.Errorf("phone_2 = %v; want %s", got.Phone2, phone2)
	}

	if err := svc.Update(9999, updated); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing member = %v; want ErrNotFound", err)
	}
}
