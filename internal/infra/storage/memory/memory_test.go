package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mlehnert/binsight/internal/core/domain"
)

func TestProductRepo_GetPut(t *testing.T) {
	repo := NewProductRepo(NewStorage())
	ctx := context.Background()

	if _, found, err := repo.Get(ctx, "4012345678901"); err != nil || found {
		t.Fatalf("empty repo: found=%v err=%v", found, err)
	}

	p := domain.Product{ID: "4012345678901", Name: "Apfelschorle", Brand: "Beispiel"}
	if err := repo.Put(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, found, err := repo.Get(ctx, "4012345678901")
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if got.Name != "Apfelschorle" {
		t.Errorf("got %q", got.Name)
	}

	// Put is an upsert.
	p.Name = "Apfelschorle Neu"
	if err := repo.Put(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, _, _ = repo.Get(ctx, "4012345678901")
	if got.Name != "Apfelschorle Neu" {
		t.Errorf("upsert did not replace, got %q", got.Name)
	}
}

func TestProductRepo_SearchText(t *testing.T) {
	repo := NewProductRepo(NewStorage())
	ctx := context.Background()

	seed := []domain.Product{
		{ID: "1", Name: "Apfelschorle", Brand: "Beispiel"},
		{ID: "2", Name: "Birnensaft", Brand: "Apfelhof"},
		{ID: "3", Name: "Cola", Categories: []string{"Getränke", "Apfelgetränke"}},
		{ID: "4", Name: "Milch", Brand: "Hof"},
	}
	for _, p := range seed {
		if err := repo.Put(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.SearchText(ctx, "apfel")
	if err != nil {
		t.Fatal(err)
	}
	// Matches name, brand and categories, sorted by name.
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Apfelschorle" || got[1].Name != "Birnensaft" || got[2].Name != "Cola" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}

	got, err = repo.SearchText(ctx, "zzz")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestCategoryRepo(t *testing.T) {
	repo := NewCategoryRepo()
	ctx := context.Background()

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(all))
	}

	c, found, err := repo.Get(ctx, domain.CategoryDeposit)
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if c.ID != domain.CategoryDeposit {
		t.Errorf("got %s", c.ID)
	}

	if _, found, _ := repo.Get(ctx, "sondermuell"); found {
		t.Error("unknown category id must not be found")
	}
}

func TestScanHistoryRepo(t *testing.T) {
	repo := NewScanHistoryRepo(NewStorage())
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		rec := domain.ScanRecord{
			Barcode:    "401234567890" + string(rune('0'+i)),
			CategoryID: domain.CategoryDeposit,
			ScannedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("limit not applied, got %d", len(got))
	}
	for _, rec := range got {
		if rec.ID == "" {
			t.Error("append must assign an id")
		}
	}
	// Newest first.
	if got[0].Barcode != "4012345678904" || got[2].Barcode != "4012345678902" {
		t.Errorf("unexpected order: %s .. %s", got[0].Barcode, got[2].Barcode)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.List(ctx, 0)
	if len(got) != 0 {
		t.Errorf("clear left %d records", len(got))
	}
}
