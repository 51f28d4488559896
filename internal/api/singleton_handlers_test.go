package api

import (
	"net/http"
	"testing"

	"phPortfolio/internal/database"
)

func TestHeroShow_SeedsOnFirstRead(t *testing.T) {
	db := newTestDB(t)
	h := NewHeroHandler(db)

	c, w := newJSONContext(t, http.MethodGet, "/api/hero", nil)
	h.Show(c)
	requireStatus(t, w, http.StatusOK)

	data := dataField(t, w)
	if data["name"] != "Alex Rivera" {
		t.Fatalf("expected seeded name, got %v", data["name"])
	}
	stats, ok := data["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats object, got %v", data["stats"])
	}
	if stats["yearsExp"] != float64(5) {
		t.Fatalf("expected seeded yearsExp 5, got %v", stats["yearsExp"])
	}

	// A second read serves the same row; the seed never duplicates.
	c2, w2 := newJSONContext(t, http.MethodGet, "/api/hero", nil)
	h.Show(c2)
	requireStatus(t, w2, http.StatusOK)

	var count int64
	if err := db.Model(&database.Hero{}).Count(&count).Error; err != nil {
		t.Fatalf("count heroes: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one hero row, got %d", count)
	}
}

func TestHeroUpdate_PartialLeavesOtherFields(t *testing.T) {
	db := newTestDB(t)
	seed := database.HeroSeed()
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	h := NewHeroHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/hero", map[string]any{
		"title": "Platform Engineer",
	})
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	data := dataField(t, w)
	if data["title"] != "Platform Engineer" {
		t.Fatalf("expected updated title, got %v", data["title"])
	}
	if data["name"] != "Alex Rivera" {
		t.Fatalf("expected untouched name, got %v", data["name"])
	}
}

func TestHeroUpdate_NullClearsHeroImage(t *testing.T) {
	db := newTestDB(t)
	seed := database.HeroSeed()
	img := "images/hero_old.png"
	seed.HeroImage = &img
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	h := NewHeroHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/hero", map[string]any{
		"hero_image": nil,
	})
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	if data := dataField(t, w); data["hero_image"] != nil {
		t.Fatalf("expected cleared hero_image, got %v", data["hero_image"])
	}
	var hero database.Hero
	if err := db.First(&hero).Error; err != nil {
		t.Fatalf("reload hero: %v", err)
	}
	if hero.HeroImage != nil {
		t.Fatalf("expected null hero_image column, got %q", *hero.HeroImage)
	}
}

func TestHeroUpdate_RejectsWrongTypedTitle(t *testing.T) {
	db := newTestDB(t)
	seed := database.HeroSeed()
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	h := NewHeroHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/hero", map[string]any{
		"title": 42,
	})
	h.Update(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["title"]; !ok {
		t.Fatalf("expected title error, body=%s", w.Body.String())
	}
}

func TestHeroUpdate_RejectsWrongShapeStats(t *testing.T) {
	db := newTestDB(t)
	seed := database.HeroSeed()
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	h := NewHeroHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/hero", map[string]any{
		"stats": []string{"not", "an", "object"},
	})
	h.Update(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["stats"]; !ok {
		t.Fatalf("expected stats error, body=%s", w.Body.String())
	}
}

func TestAboutShow_SeedsOnFirstRead(t *testing.T) {
	db := newTestDB(t)
	h := NewAboutHandler(db)

	c, w := newJSONContext(t, http.MethodGet, "/api/about", nil)
	h.Show(c)
	requireStatus(t, w, http.StatusOK)

	data := dataField(t, w)
	if data["title"] != "About Me" {
		t.Fatalf("expected seeded title, got %v", data["title"])
	}

	var count int64
	if err := db.Model(&database.About{}).Count(&count).Error; err != nil {
		t.Fatalf("count abouts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one about row, got %d", count)
	}
}

func TestContactShow_MissingReturns404(t *testing.T) {
	db := newTestDB(t)
	h := NewContactHandler(db)

	c, w := newJSONContext(t, http.MethodGet, "/api/contact", nil)
	h.Show(c)
	requireStatus(t, w, http.StatusNotFound)
}

func TestSiteConfigShow_MissingReturns404(t *testing.T) {
	db := newTestDB(t)
	h := NewSiteConfigHandler(db)

	c, w := newJSONContext(t, http.MethodGet, "/api/site-config", nil)
	h.Show(c)
	requireStatus(t, w, http.StatusNotFound)
}

func TestContactUpdate_RequiresValidEmail(t *testing.T) {
	db := newTestDB(t)
	seed := database.Contact{Model: database.Model{ID: 1}, Email: "old@example.com", Location: "SF"}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed contact: %v", err)
	}
	h := NewContactHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/contact", map[string]any{
		"email": "not-an-email",
	})
	h.Update(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["email"]; !ok {
		t.Fatalf("expected email error, body=%s", w.Body.String())
	}
}
