package service

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"chelas-api/internal/superprofile"
)

func TestLoadReturnsNilWhenAbsent(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	if p := svc.Load(context.Background(), "user-1"); p != nil {
		t.Fatalf("expected nil for missing profile, got %+v", p)
	}

	profiles.superDocs["user-1"] = json.RawMessage("null")
	if p := svc.Load(context.Background(), "user-1"); p != nil {
		t.Fatalf("expected nil for null column, got %+v", p)
	}
}

func TestLoadReturnsNilOnCorruptDocument(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.superDocs["user-1"] = json.RawMessage(`{"general": "not-an-object"`)

	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	if p := svc.Load(context.Background(), "user-1"); p != nil {
		t.Fatalf("expected nil for corrupt document, got %+v", p)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	p := superprofile.NewEmpty()
	superprofile.SetInterestValue(p, "jazz", true)
	p.Cultura.Tech.IA = "perfil generado"

	result := svc.Save(context.Background(), "user-1", p)
	if !result.Success {
		t.Fatalf("expected save success, got %v", result.Err)
	}

	loaded := svc.Load(context.Background(), "user-1")
	if loaded == nil {
		t.Fatalf("expected saved profile back")
	}
	if !loaded.General.Music.Jazz {
		t.Fatalf("expected jazz selection to survive the round trip")
	}
	if loaded.Cultura.Tech.IA != "perfil generado" {
		t.Fatalf("expected ia text to survive, got %q", loaded.Cultura.Tech.IA)
	}
}

func TestApplySelectionsResetsBeforeMarking(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	first := svc.ApplySelections(context.Background(), "user-1", []string{"rock", "playa"}, nil, "")
	if !first.Success {
		t.Fatalf("expected first apply to succeed, got %v", first.Err)
	}

	second := svc.ApplySelections(context.Background(), "user-1", []string{"jazz"}, nil, "")
	if !second.Success {
		t.Fatalf("expected second apply to succeed, got %v", second.Err)
	}

	loaded := svc.Load(context.Background(), "user-1")
	if loaded == nil {
		t.Fatalf("expected stored profile")
	}
	if loaded.General.Music.Rock || loaded.Ocio.Travel.Playa {
		t.Fatalf("expected previous selections cleared by reset")
	}
	if !loaded.General.Music.Jazz {
		t.Fatalf("expected new selection set")
	}
}

func TestApplySelectionsMarksAvoidedLeaves(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	result := svc.ApplySelections(context.Background(), "user-1", []string{"rock"}, []string{"spoilers"}, "")
	if !result.Success {
		t.Fatalf("expected apply to succeed, got %v", result.Err)
	}

	loaded := svc.Load(context.Background(), "user-1")
	if loaded == nil || !loaded.Evitar.Avoid.Spoilers {
		t.Fatalf("expected avoid leaf marked")
	}

	selected, avoided := superprofile.ExtractInterests(loaded)
	if len(selected) != 1 || selected[0] != "rock" {
		t.Fatalf("expected selected [rock], got %v", selected)
	}
	if len(avoided) != 1 || avoided[0] != "spoilers" {
		t.Fatalf("expected avoided [spoilers], got %v", avoided)
	}
}

func TestApplySelectionsPreservesAiTextWhenEmpty(t *testing.T) {
	profiles := newMockProfileRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, newMockInterestRepo())

	if result := svc.ApplySelections(context.Background(), "user-1", nil, nil, "analisis previo"); !result.Success {
		t.Fatalf("expected apply to succeed, got %v", result.Err)
	}

	if result := svc.ApplySelections(context.Background(), "user-1", []string{"jazz"}, nil, ""); !result.Success {
		t.Fatalf("expected apply to succeed, got %v", result.Err)
	}

	loaded := svc.Load(context.Background(), "user-1")
	if loaded == nil || loaded.Cultura.Tech.IA != "analisis previo" {
		t.Fatalf("expected ia text preserved across applies")
	}
}

func TestApplySelectionsSyncsSecondaryRepresentations(t *testing.T) {
	profiles := newMockProfileRepo()
	interests := newMockInterestRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, interests)

	selected := []string{"rock", "custom-juegos-de-mesa"}
	avoided := []string{"spoilers"}

	result := svc.ApplySelections(context.Background(), "user-1", selected, avoided, "")
	if !result.Success {
		t.Fatalf("expected apply to succeed, got %v", result.Err)
	}

	if interests.replaceCalls != 1 {
		t.Fatalf("expected one join table replace, got %d", interests.replaceCalls)
	}
	if len(interests.lastSelected) != 2 || interests.lastSelected[1] != "custom-juegos-de-mesa" {
		t.Fatalf("expected custom id kept in join table, got %v", interests.lastSelected)
	}
	if got := profiles.preferredTopics["user-1"]; len(got) != 2 {
		t.Fatalf("expected preferred topics synced, got %v", got)
	}

	// El id custom no toca el arbol.
	loaded := svc.Load(context.Background(), "user-1")
	treeSelected, _ := superprofile.ExtractInterests(loaded)
	if len(treeSelected) != 1 || treeSelected[0] != "rock" {
		t.Fatalf("expected only known leaves in the tree, got %v", treeSelected)
	}
}

func TestApplySelectionsSaveFailureSkipsSync(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.updateSuperErr = errBoom
	interests := newMockInterestRepo()
	svc := NewSuperProfileService(zap.NewNop(), profiles, interests)

	result := svc.ApplySelections(context.Background(), "user-1", []string{"rock"}, nil, "")
	if result.Success {
		t.Fatalf("expected failed result on save error")
	}
	if result.Err == nil {
		t.Fatalf("expected captured error")
	}
	if interests.replaceCalls != 0 {
		t.Fatalf("expected no join table sync after failed save, got %d", interests.replaceCalls)
	}
}

func TestApplySelectionsSyncFailureDoesNotFailOperation(t *testing.T) {
	profiles := newMockProfileRepo()
	interests := newMockInterestRepo()
	interests.replaceErr = errBoom
	svc := NewSuperProfileService(zap.NewNop(), profiles, interests)

	result := svc.ApplySelections(context.Background(), "user-1", []string{"rock"}, nil, "")
	if !result.Success {
		t.Fatalf("expected success despite sync failure, got %v", result.Err)
	}
}

func TestSelectionsOnEmptyProfile(t *testing.T) {
	svc := NewSuperProfileService(zap.NewNop(), newMockProfileRepo(), newMockInterestRepo())

	selected, avoided := svc.Selections(context.Background(), "user-1")
	if selected == nil || avoided == nil {
		t.Fatalf("expected empty slices, got nil")
	}
	if len(selected) != 0 || len(avoided) != 0 {
		t.Fatalf("expected no selections, got %v / %v", selected, avoided)
	}
}
