package api

import (
	"net/http"
	"testing"

	"phPortfolio/internal/database"
)

func TestProjectStore_NormalizesEmptyURLToNull(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectHandler(db)

	c, w := newJSONContext(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "Inventory API",
		"description": "Warehouse backend",
		"image":       "https://example.com/shot.png",
		"tech_stack":  []string{"Go", "PostgreSQL"},
		"github_url":  "",
	})
	h.Store(c)
	requireStatus(t, w, http.StatusCreated)

	data := dataField(t, w)
	if data["github_url"] != nil {
		t.Fatalf("expected empty github_url stored as null, got %v", data["github_url"])
	}

	var stored database.Project
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load project: %v", err)
	}
	if stored.GithubURL != nil {
		t.Fatalf("expected null github_url column, got %q", *stored.GithubURL)
	}
}

func TestProjectStore_RejectsMalformedURL(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectHandler(db)

	c, w := newJSONContext(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "Inventory API",
		"description": "Warehouse backend",
		"image":       "https://example.com/shot.png",
		"tech_stack":  []string{"Go"},
		"live_url":    "not a url",
	})
	h.Store(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["live_url"]; !ok {
		t.Fatalf("expected live_url error, body=%s", w.Body.String())
	}
}

func TestProjectUpdate_NullClearsGithubURL(t *testing.T) {
	db := newTestDB(t)
	url := "https://github.com/acme/inventory"
	project := database.Project{
		Title:       "Inventory API",
		Description: "Warehouse backend",
		Image:       "https://example.com/shot.png",
		TechStack:   mustMarshal([]string{"Go"}),
		GithubURL:   &url,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	h := NewProjectHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/projects/1", map[string]any{
		"github_url": nil,
	})
	c.Params = append(c.Params, paramID(itoa(int(project.ID))))
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	if data := dataField(t, w); data["github_url"] != nil {
		t.Fatalf("expected cleared github_url, got %v", data["github_url"])
	}
	var stored database.Project
	if err := db.First(&stored, project.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if stored.GithubURL != nil {
		t.Fatalf("expected null github_url column, got %q", *stored.GithubURL)
	}
}

func TestProjectUpdate_RejectsWrongTypedIsFeatured(t *testing.T) {
	db := newTestDB(t)
	project := database.Project{
		Title:       "Inventory API",
		Description: "Warehouse backend",
		Image:       "https://example.com/shot.png",
		TechStack:   mustMarshal([]string{"Go"}),
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	h := NewProjectHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/projects/1", map[string]any{
		"is_featured": "yes",
	})
	c.Params = append(c.Params, paramID(itoa(int(project.ID))))
	h.Update(c)
	requireStatus(t, w, http.StatusUnprocessableEntity)

	if _, ok := errorsField(t, w)["is_featured"]; !ok {
		t.Fatalf("expected is_featured error, body=%s", w.Body.String())
	}
}

func TestProjectShow_AfterDestroyReturns404(t *testing.T) {
	db := newTestDB(t)
	project := database.Project{
		Title:       "Analytics Engine",
		Description: "Event ingestion",
		Image:       "https://example.com/a.png",
		TechStack:   mustMarshal([]string{"Go"}),
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	h := NewProjectHandler(db)

	id := int(project.ID)
	c, w := newJSONContext(t, http.MethodDelete, "/api/projects/1", nil)
	c.Params = append(c.Params, paramID(itoa(id)))
	h.Destroy(c)
	c.Writer.WriteHeaderNow()
	requireStatus(t, w, http.StatusNoContent)

	c2, w2 := newJSONContext(t, http.MethodGet, "/api/projects/1", nil)
	c2.Params = append(c2.Params, paramID(itoa(id)))
	h.Show(c2)
	requireStatus(t, w2, http.StatusNotFound)
}

func TestProjectUpdate_PartialKeepsTechStack(t *testing.T) {
	db := newTestDB(t)
	project := database.Project{
		Title:       "Analytics Engine",
		Description: "Event ingestion",
		Image:       "https://example.com/a.png",
		TechStack:   mustMarshal([]string{"Go", "ClickHouse"}),
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	h := NewProjectHandler(db)

	c, w := newJSONContext(t, http.MethodPut, "/api/projects/1", map[string]any{
		"description": "Streaming event ingestion",
	})
	c.Params = append(c.Params, paramID(itoa(int(project.ID))))
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	data := dataField(t, w)
	if data["description"] != "Streaming event ingestion" {
		t.Fatalf("expected updated description, got %v", data["description"])
	}
	stack, ok := data["tech_stack"].([]any)
	if !ok || len(stack) != 2 {
		t.Fatalf("expected untouched tech_stack, got %v", data["tech_stack"])
	}
}
