package repositories

import (
	"sync"
	"testing"

	"asset-tracker/models"
	"asset-tracker/utils"

	"gorm.io/gorm"
)

func TestFormatConsignmentCode(t *testing.T) {
	cases := map[uint]string{
		1:     "SLK001",
		42:    "SLK042",
		999:   "SLK999",
		1000:  "SLK1000",
		12345: "SLK12345",
	}
	for n, want := range cases {
		if got := FormatConsignmentCode(n); got != want {
			t.Errorf("FormatConsignmentCode(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestConsignmentCreateAssignsSequentialCodes(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewConsignmentRepository(db)

	next, err := repo.NextIdentifier()
	if err != nil {
		t.Fatal(err)
	}
	if next != "SLK001" {
		t.Fatalf("next identifier on empty table = %q", next)
	}

	first := createConsignment(t, db, f, "Acme")
	second := createConsignment(t, db, f, "Globex")

	if first.Code() != "SLK001" || second.Code() != "SLK002" {
		t.Fatalf("codes = %q, %q", first.Code(), second.Code())
	}

	stored, err := repo.FindByCode("SLK002")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Supplier != "Globex" {
		t.Fatalf("FindByCode returned %q", stored.Supplier)
	}

	next, _ = repo.NextIdentifier()
	if next != "SLK003" {
		t.Fatalf("next identifier = %q, want SLK003", next)
	}
}

func TestConsignmentUpdateKeepsCode(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewConsignmentRepository(db)

	c := createConsignment(t, db, f, "Acme")
	tampered := "SLK999"
	c.SlkID = &tampered
	c.Supplier = "Acme Ltd"
	if err := repo.Update(c); err != nil {
		t.Fatal(err)
	}

	stored, err := repo.FindByID(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Code() != "SLK001" || stored.Supplier != "Acme Ltd" {
		t.Fatalf("stored = %q / %q", stored.Code(), stored.Supplier)
	}
}

func TestConcurrentConsignmentCreatesGetDistinctCodes(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := &models.Consignment{Supplier: "Acme", Quantity: 1, LocationID: f.location.ID, ReceivedByID: f.user.ID}
			errs <- db.Transaction(func(tx *gorm.DB) error {
				return NewConsignmentRepository(tx).Create(c)
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	var codes []string
	if err := db.Model(&models.Consignment{}).Pluck("slk_id", &codes).Error; err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, c := range codes {
		seen[c] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct codes for %d rows", len(seen), n)
	}
	for i := uint(1); i <= n; i++ {
		if !seen[FormatConsignmentCode(i)] {
			t.Errorf("missing %s", FormatConsignmentCode(i))
		}
	}
}

func TestConsignmentListSearch(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	createConsignment(t, db, f, "Acme")
	createConsignment(t, db, f, "Globex")

	out, err := NewConsignmentRepository(db).List(ConsignmentFilter{Q: "glob"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Supplier != "Globex" {
		t.Fatalf("search returned %+v", out)
	}

	out, _ = NewConsignmentRepository(db).List(ConsignmentFilter{Q: "slk001"})
	if len(out) != 1 || out[0].Supplier != "Acme" {
		t.Fatalf("code search returned %+v", out)
	}
}

func TestConsignmentFindByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := NewConsignmentRepository(db).FindByID(99)
	if !utils.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}
