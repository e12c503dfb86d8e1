package services

import (
	"errors"
	"testing"

	"asset-tracker/utils"
)

func TestLocationSlugIsStable(t *testing.T) {
	w := newWorld(t)
	svc := NewLocationService(w.db)

	loc, err := svc.Create(CatalogInput{Name: "North Warehouse"}, w.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Slug != "north-warehouse" {
		t.Fatalf("slug = %q", loc.Slug)
	}

	loc, err = svc.Update(loc.ID, CatalogInput{Name: "North Warehouse 2"}, w.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Slug != "north-warehouse" || loc.Name != "North Warehouse 2" {
		t.Fatalf("rename changed slug: %q / %q", loc.Name, loc.Slug)
	}

	loc, err = svc.Update(loc.ID, CatalogInput{Name: "North Warehouse 2", Slug: strPtr("")}, w.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Slug != "north-warehouse-2" {
		t.Fatalf("cleared slug not re-derived: %q", loc.Slug)
	}
}

func TestLocationSlugConflicts(t *testing.T) {
	w := newWorld(t)
	svc := NewLocationService(w.db)

	_, err := svc.Create(CatalogInput{Name: "Main  Store!"}, w.user.ID)
	var verr *utils.ValidationError
	if !errors.As(err, &verr) || verr.Field != "slug" {
		t.Fatalf("colliding slug: got %v", err)
	}

	if _, err := svc.Create(CatalogInput{Name: "***"}, w.user.ID); !utils.IsValidationError(err) {
		t.Fatalf("empty slug accepted: %v", err)
	}
	if _, err := svc.Create(CatalogInput{Name: "  "}, w.user.ID); !utils.IsValidationError(err) {
		t.Fatalf("blank name accepted: %v", err)
	}
}

func TestCategoryCustomSlug(t *testing.T) {
	w := newWorld(t)
	svc := NewCategoryService(w.db)

	cat, err := svc.Create(CatalogInput{Name: "Networking Gear", Slug: strPtr("Net Gear")}, w.user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Slug != "net-gear" {
		t.Fatalf("slug = %q", cat.Slug)
	}

	all, err := svc.GetAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d categories", len(all))
	}

	if err := svc.Delete(cat.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(cat.ID); !utils.IsNotFound(err) {
		t.Fatalf("deleted category still found: %v", err)
	}
}
