package pages

import (
	"context"
	"testing"

	"github.com/saizgar/website-backend/internal/data/repos/testutil"
	"github.com/saizgar/website-backend/internal/domain"
)

func TestPageRepoGetBySlug(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPageRepo(db, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, &domain.Page{
		Title:    "About Us",
		Slug:     "about-us",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, tx, "about-us")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("GetBySlug: got %+v, want id %v", got, created.ID)
	}

	missing, err := repo.GetBySlug(ctx, tx, "no-such-page")
	if err != nil {
		t.Fatalf("GetBySlug miss: %v", err)
	}
	if missing != nil {
		t.Fatalf("GetBySlug miss: got %+v, want nil", missing)
	}
}

func TestPageRepoListActiveOnly(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPageRepo(db, testutil.Logger(t))

	active, err := repo.Create(ctx, tx, &domain.Page{Title: "Careers", Slug: "careers", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hidden, err := repo.Create(ctx, tx, &domain.Page{Title: "Draft", Slug: "draft-page", IsActive: false})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx, tx, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var sawActive, sawHidden bool
	for _, row := range rows {
		switch row.ID {
		case active.ID:
			sawActive = true
		case hidden.ID:
			sawHidden = true
		}
	}
	if !sawActive {
		t.Fatal("active page missing from public listing")
	}
	if sawHidden {
		t.Fatal("inactive page leaked into public listing")
	}
}

func TestPageSectionRepoScopesByPage(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	pageRepo := NewPageRepo(db, testutil.Logger(t))
	sectionRepo := NewPageSectionRepo(db, testutil.Logger(t))

	home, err := pageRepo.Create(ctx, tx, &domain.Page{Title: "Home", Slug: "home-scoped", IsActive: true})
	if err != nil {
		t.Fatalf("Create page: %v", err)
	}
	about, err := pageRepo.Create(ctx, tx, &domain.Page{Title: "About", Slug: "about-scoped", IsActive: true})
	if err != nil {
		t.Fatalf("Create page: %v", err)
	}

	mine, err := sectionRepo.Create(ctx, tx, &domain.PageSection{
		PageID:     home.ID,
		Identifier: "intro",
		Heading:    "Welcome",
		Content:    "Engineering services across Pakistan.",
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("Create section: %v", err)
	}
	if _, err := sectionRepo.Create(ctx, tx, &domain.PageSection{
		PageID:     about.ID,
		Identifier: "history",
		Heading:    "Our History",
		Content:    "Founded decades ago.",
		IsActive:   true,
	}); err != nil {
		t.Fatalf("Create section: %v", err)
	}
	inactive, err := sectionRepo.Create(ctx, tx, &domain.PageSection{
		PageID:     home.ID,
		Identifier: "draft",
		Heading:    "Draft Block",
		Content:    "Not yet published.",
		IsActive:   false,
	})
	if err != nil {
		t.Fatalf("Create section: %v", err)
	}

	rows, err := sectionRepo.List(ctx, tx, &home.ID, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != mine.ID {
		t.Fatalf("List scoped: got %d rows", len(rows))
	}

	all, err := sectionRepo.List(ctx, tx, &home.ID, false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	var sawInactive bool
	for _, row := range all {
		if row.ID == inactive.ID {
			sawInactive = true
		}
	}
	if !sawInactive {
		t.Fatal("admin listing missing inactive section")
	}
}

func TestSEORepoFirst(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSEORepo(db, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, &domain.SEO{
		PageTitle:       "Saizgar Engineering",
		MetaDescription: "Multidisciplinary engineering consultancy.",
		Keywords:        "engineering, consultancy",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.First(ctx, tx)
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("First: got %+v", got)
	}
}
