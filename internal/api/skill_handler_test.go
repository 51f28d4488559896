package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"phPortfolio/internal/database"
)

func TestSkillStore_RejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodPost, "/api/skills", map[string]any{
		"name":     "Kubernetes",
		"category": "Infrastructure",
	})
	h.Store(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["category"]; !ok {
		t.Fatalf("expected category error, body=%s", w.Body.String())
	}
}

func TestSkillStore_RejectsNonIntegerLevel(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodPost, "/api/skills", map[string]any{
		"name":     "Go",
		"category": database.SkillCategoryLanguage,
		"level":    "eighty",
	})
	h.Store(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["level"]; !ok {
		t.Fatalf("expected level error, body=%s", w.Body.String())
	}
	var count int64
	if err := db.Model(&database.Skill{}).Count(&count).Error; err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no skill rows, got %d", count)
	}
}

func TestSkillUpdate_NullClearsLevel(t *testing.T) {
	db := newTestDB(t)
	level := 70
	seed := database.Skill{Name: "Go", Category: database.SkillCategoryLanguage, Level: &level}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/skills/"+itoa(int(seed.ID)), map[string]any{
		"level": nil,
	})
	c.Params = append(c.Params, paramID(itoa(int(seed.ID))))
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	var skill database.Skill
	if err := db.First(&skill, seed.ID).Error; err != nil {
		t.Fatalf("reload skill: %v", err)
	}
	if skill.Level != nil {
		t.Fatalf("expected cleared level, got %d", *skill.Level)
	}
}

func TestSkillStore_CreatesSkill(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodPost, "/api/skills", map[string]any{
		"name":     "PostgreSQL",
		"category": database.SkillCategoryDatabase,
		"level":    80,
	})
	h.Store(c)
	requireStatus(t, w, http.StatusCreated)

	data := dataField(t, w)
	if data["name"] != "PostgreSQL" {
		t.Fatalf("expected created skill, got %v", data)
	}
	if data["level"] != float64(80) {
		t.Fatalf("expected level 80, got %v", data["level"])
	}
}

func TestSkillList_OrdersByCategoryThenName(t *testing.T) {
	db := newTestDB(t)
	rows := []database.Skill{
		{Name: "Docker", Category: database.SkillCategoryTools},
		{Name: "Redis", Category: database.SkillCategoryDatabase},
		{Name: "PostgreSQL", Category: database.SkillCategoryDatabase},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed skills: %v", err)
	}
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodGet, "/api/skills", nil)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var body struct {
		Data []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	got := make([]string, 0, len(body.Data))
	for _, s := range body.Data {
		got = append(got, s.Name)
	}
	want := []string{"PostgreSQL", "Redis", "Docker"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSkillDestroy_MissingReturns404(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillHandler(db)

	c, w := newJSONContext(t, http.MethodDelete, "/api/skills/42", nil)
	c.Params = append(c.Params, paramID("42"))
	h.Destroy(c)
	requireStatus(t, w, http.StatusNotFound)
}
