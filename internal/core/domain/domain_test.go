package domain

import (
	"testing"
	"time"
)

func TestOutcome_Constructors(t *testing.T) {
	ok := OK("fresh")
	if !ok.Ok() || ok.FromCache() || ok.IsStale() || ok.Err() != nil {
		t.Errorf("OK outcome: %+v", ok)
	}

	cached := Cached("cached")
	if !cached.Ok() || !cached.FromCache() || cached.IsStale() {
		t.Errorf("Cached outcome: %+v", cached)
	}

	stale := Stale("stale")
	if !stale.Ok() || !stale.FromCache() || !stale.IsStale() {
		t.Errorf("Stale outcome: %+v", stale)
	}

	fail := Fail[string](NotFoundError("missing"))
	if fail.Ok() || fail.Err() == nil || fail.Err().Kind != KindNotFound {
		t.Errorf("Fail outcome: %+v", fail)
	}
}

func TestOutcome_FailWithNilError(t *testing.T) {
	out := Fail[int](nil)
	if out.Ok() {
		t.Fatal("must not be ok")
	}
	if out.Err() == nil || out.Err().Kind != KindUnknown {
		t.Errorf("nil error must become unknown, got %+v", out.Err())
	}
}

func TestValidBarcode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"4012345678901", true},
		{"1234567", true},
		{"123456", false},
		{"12345678901234", false},
		{"40123a5678901", false},
		{"", false},
		{"4012345 78901", false},
	}

	for _, tt := range tests {
		if got := ValidBarcode(tt.in); got != tt.want {
			t.Errorf("ValidBarcode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProduct_Touch(t *testing.T) {
	now := time.Now()
	p := Product{ID: "4012345678901"}.Touch(now)
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Errorf("new product timestamps: %+v", p)
	}

	later := now.Add(time.Hour)
	p = p.Touch(later)
	if !p.CreatedAt.Equal(now) {
		t.Error("creation time must not change")
	}
	if !p.UpdatedAt.Equal(later) {
		t.Error("update time must advance")
	}
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()
	if len(all) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(all))
	}
	for i, c := range all {
		if c.SortOrder != i+1 {
			t.Errorf("category %s has sort order %d at position %d", c.ID, c.SortOrder, i)
		}
		if c.NameDE == "" || c.NameEN == "" || c.Icon == "" || c.ColorHex == "" {
			t.Errorf("category %s has incomplete presentation data: %+v", c.ID, c)
		}
	}

	// The returned slice is a copy; mutation must not leak.
	all[0].NameDE = "mutated"
	if fresh := AllCategories(); fresh[0].NameDE == "mutated" {
		t.Error("AllCategories must return a copy")
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID(CategoryDeposit)
	if !ok || c.NameDE != "Pfand" {
		t.Errorf("got %+v ok=%v", c, ok)
	}
	if _, ok := CategoryByID("sperrmuell"); ok {
		t.Error("unknown id must not resolve")
	}
}
