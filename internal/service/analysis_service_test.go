package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/llm"
)

func TestAnalyzeInterestChatHappyPath(t *testing.T) {
	llmClient := &llm.MockClient{
		Response: "Aquí está el análisis:\n" +
			`{"analysis": "Le interesa la música en vivo", "suggested": ["rock", "jazz"]}`,
	}
	svc := NewAnalysisService(zap.NewNop(), llmClient, newMockProfileRepo(), newMockInterestRepo())

	result, err := svc.AnalyzeInterestChat(context.Background(), "me encantan los conciertos")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Analysis != "Le interesa la música en vivo" {
		t.Fatalf("unexpected analysis %q", result.Analysis)
	}
	if len(result.Suggested) != 2 || result.Suggested[0] != "rock" || result.Suggested[1] != "jazz" {
		t.Fatalf("unexpected suggestions %v", result.Suggested)
	}
}

func TestAnalyzeInterestChatPrefixesUnknownIDs(t *testing.T) {
	llmClient := &llm.MockClient{
		Response: `{"analysis": "ok", "suggested": ["rock", "juegos-de-mesa", "custom-astronomia", "  "]}`,
	}
	svc := NewAnalysisService(zap.NewNop(), llmClient, newMockProfileRepo(), newMockInterestRepo())

	result, err := svc.AnalyzeInterestChat(context.Background(), "hola")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"rock", "custom-juegos-de-mesa", "custom-astronomia"}
	if len(result.Suggested) != len(want) {
		t.Fatalf("expected %v, got %v", want, result.Suggested)
	}
	for i, id := range want {
		if result.Suggested[i] != id {
			t.Fatalf("expected %v, got %v", want, result.Suggested)
		}
	}
}

func TestAnalyzeInterestChatRejectsNonJSON(t *testing.T) {
	llmClient := &llm.MockClient{Response: "no puedo ayudarte con eso"}
	svc := NewAnalysisService(zap.NewNop(), llmClient, newMockProfileRepo(), newMockInterestRepo())

	if _, err := svc.AnalyzeInterestChat(context.Background(), "hola"); err == nil {
		t.Fatalf("expected error for non-json response")
	}
}

func TestGenerateProfileAnalysisStoresResult(t *testing.T) {
	profiles := newMockProfileRepo()
	profiles.profiles["user-1"] = domain.Profile{ID: "user-1", Name: "Ada", DescriptionNote: "me gusta el hardware"}

	interests := newMockInterestRepo()
	interests.catalog = []domain.Interest{
		{ID: "rock", Name: "Rock", Category: domain.CategoryMusic},
		{ID: "spoilers", Name: "Spoilers", Category: domain.CategoryAvoid},
	}
	interests.userInterests["user-1"] = makeUserInterests("user-1", []string{"rock"}, []string{"spoilers"})

	llmClient := &llm.MockClient{Response: "Perfil detallado de Ada."}
	svc := NewAnalysisService(zap.NewNop(), llmClient, profiles, interests)

	analysis, err := svc.GenerateProfileAnalysis(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis != "Perfil detallado de Ada." {
		t.Fatalf("unexpected analysis %q", analysis)
	}
	if profiles.basicsAnalysis != analysis {
		t.Fatalf("expected analysis stored in analisis_externo")
	}

	prompt := llmClient.Prompts[0]
	if !strings.Contains(prompt, "Nombre: Ada") {
		t.Fatalf("expected name in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Temas de interés: Rock") {
		t.Fatalf("expected interest labels in prompt, got %q", prompt)
	}
	if !strings.Contains(prompt, "Temas que se prefieren evitar: Spoilers") {
		t.Fatalf("expected avoid labels in prompt, got %q", prompt)
	}
}

func TestGenerateProfileAnalysisMissingProfile(t *testing.T) {
	svc := NewAnalysisService(zap.NewNop(), &llm.MockClient{Response: "x"}, newMockProfileRepo(), newMockInterestRepo())

	if _, err := svc.GenerateProfileAnalysis(context.Background(), "ghost"); err == nil {
		t.Fatalf("expected error for unknown profile")
	}
}
