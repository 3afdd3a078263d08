package community

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestCommunityService_GetAllCommunities_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}

	got, err := svc.GetAllCommunities()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0, got %d: %#v", len(got), got)
	}
}

func TestCommunityService_GetAllCommunities_SortedByOrderThenName(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}
	admin := seedProfile(t, db, "foo", false)

	seedCommunity(t, db, "Zeta", "zeta", 1, admin)
	seedCommunity(t, db, "Alpha", "alpha", 2, admin)
	seedCommunity(t, db, "Beta", "beta", 1, admin)

	got, err := svc.GetAllCommunities()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	want := []string{"beta", "zeta", "alpha"}
	if len(got) != len(want) {
		t.Fatalf("expected %d, got %d", len(want), len(got))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("position %d: got %s want %s", i, got[i].Slug, slug)
		}
	}
	if got[0].Admin.User.Username != "foo" {
		t.Fatalf("expected admin preloaded, got %#v", got[0].Admin)
	}
}

func TestCommunityService_GetCommunityBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}
	admin := seedProfile(t, db, "foo", false)
	seedCommunity(t, db, "Foo", "foo", 1, admin)

	got, err := svc.GetCommunityBySlug("foo")
	if err != nil {
		t.Fatalf("GetCommunityBySlug: %v", err)
	}
	if got.Name != "Foo" || got.AdminID != admin.ID {
		t.Fatalf("unexpected community: %#v", got)
	}

	for _, slug := range []string{"bar", "Foo", "fo", "foo "} {
		if _, err := svc.GetCommunityBySlug(slug); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("slug %q: expected ErrRecordNotFound, got %v", slug, err)
		}
	}
}

func TestCommunityService_CreateCommunity_DerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}
	admin := seedProfile(t, db, "foo", false)

	got, err := svc.CreateCommunity(Community{Name: "  Systers Foo ", AdminID: admin.ID})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if got.Slug != "systers-foo" || got.Name != "Systers Foo" {
		t.Fatalf("unexpected community: %#v", got)
	}
	if got.Admin.User.Username != "foo" {
		t.Fatalf("expected admin preloaded, got %#v", got.Admin)
	}
}

func TestCommunityService_CreateCommunity_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}
	admin := seedProfile(t, db, "foo", false)

	if _, err := svc.CreateCommunity(Community{Name: "Foo", Slug: "foo", AdminID: admin.ID}); err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if _, err := svc.CreateCommunity(Community{Name: "Other", Slug: "foo", AdminID: admin.ID}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate slug: expected ErrDuplicate, got %v", err)
	}
	if _, err := svc.CreateCommunity(Community{Name: "Foo", Slug: "foo2", AdminID: admin.ID}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate name: expected ErrDuplicate, got %v", err)
	}
}

func TestCommunityService_CreateCommunity_EmptySlug(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}
	admin := seedProfile(t, db, "foo", false)

	if _, err := svc.CreateCommunity(Community{Name: "!!!", AdminID: admin.ID}); err == nil {
		t.Fatalf("expected error for name that slugifies to nothing")
	}
}

func TestCommunityService_DBBroken_ReturnsError(t *testing.T) {
	db := newTestDB(t)
	svc := &CommunityService{DB: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	if _, err := svc.GetAllCommunities(); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, err := svc.CreateCommunity(Community{Name: "Alpha", AdminID: 1}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
