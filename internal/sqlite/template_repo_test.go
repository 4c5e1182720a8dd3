package sqlite

import (
	"context"
	"errors"
	"testing"

	"liftlog/internal/domain"
)

func TestTemplateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, &domain.ExerciseTemplate{
		Name:          "zercher squat",
		Category:      domain.CategoryLegs,
		Description:   "bar in the elbow crease",
		Instructions:  []string{"set the bar at waist height", "brace hard"},
		Tips:          []string{"pad the bar while learning"},
		IsUserCreated: true,
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}

	got, err := store.GetTemplate(ctx, id)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if got.Name != "zercher squat" || got.Category != domain.CategoryLegs {
		t.Errorf("template identity lost: %+v", got)
	}
	if len(got.Instructions) != 2 || got.Instructions[1] != "brace hard" {
		t.Errorf("instructions = %v", got.Instructions)
	}
	if len(got.Tips) != 1 {
		t.Errorf("tips = %v", got.Tips)
	}
	if !got.IsUserCreated {
		t.Error("is_user_created flag lost")
	}
}

func TestTemplateEmptyGuidanceStaysNil(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, &domain.ExerciseTemplate{
		Name:          "box squat",
		Category:      domain.CategoryLegs,
		IsUserCreated: true,
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	got, err := store.GetTemplate(ctx, id)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if got.Instructions != nil || got.Tips != nil {
		t.Errorf("expected nil guidance, got %v / %v", got.Instructions, got.Tips)
	}
}

func TestTemplateDuplicateName(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// "back squat" is part of the seeded catalog
	_, err := store.CreateTemplate(ctx, &domain.ExerciseTemplate{
		Name:          "back squat",
		Category:      domain.CategoryLegs,
		IsUserCreated: true,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate, got %v", err)
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	chest, err := store.ListTemplates(ctx, domain.CategoryChest)
	if err != nil {
		t.Fatalf("list chest templates: %v", err)
	}
	if len(chest) == 0 {
		t.Fatal("seeded catalog should include chest templates")
	}
	for _, tmpl := range chest {
		if tmpl.Category != domain.CategoryChest {
			t.Errorf("category filter leaked %q (%s)", tmpl.Name, tmpl.Category)
		}
		if tmpl.IsUserCreated {
			t.Errorf("seeded template %q flagged as user-created", tmpl.Name)
		}
	}

	all, err := store.ListTemplates(ctx, "")
	if err != nil {
		t.Fatalf("list all templates: %v", err)
	}
	if len(all) <= len(chest) {
		t.Fatalf("expected the full catalog, got %d templates", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatal("templates must be sorted by name")
		}
	}
}

func TestDeleteTemplate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.CreateTemplate(ctx, &domain.ExerciseTemplate{
		Name: "pin press", Category: domain.CategoryChest, IsUserCreated: true,
	})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	if err := store.DeleteTemplate(ctx, id); err != nil {
		t.Fatalf("delete template: %v", err)
	}
	if _, err := store.GetTemplate(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteTemplate(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
