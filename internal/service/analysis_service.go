package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"chelas-api/internal/llm"
	"chelas-api/internal/repository"
	"chelas-api/internal/superprofile"
)

// AnalysisService usa el LLM para leer la charla de intereses del usuario y
// para redactar el analisis externo del perfil.
type AnalysisService struct {
	logger    *zap.Logger
	llmClient llm.Client
	profiles  repository.ProfileRepository
	interests repository.InterestRepository
	knownIDs  map[string]struct{}
}

func NewAnalysisService(
	logger *zap.Logger,
	llmClient llm.Client,
	profiles repository.ProfileRepository,
	interests repository.InterestRepository,
) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	known := make(map[string]struct{})
	for _, id := range superprofile.LeafIDs() {
		known[id] = struct{}{}
	}
	return &AnalysisService{
		logger:    logger,
		llmClient: llmClient,
		profiles:  profiles,
		interests: interests,
		knownIDs:  known,
	}
}

// InterestAnalysis es la salida estructurada de la charla de intereses.
type InterestAnalysis struct {
	Analysis  string   `json:"analysis"`
	Suggested []string `json:"suggested"`
}

const interestChatSystemPrompt = `Eres un asistente que ayuda a un asistente de un evento de JavaScript a descubrir sus intereses conversando.
Analiza el texto del usuario y devuelve SOLO un JSON con este formato:
{"analysis": "resumen breve en español de lo que le interesa al usuario", "suggested": ["id-de-interes", ...]}

Los ids sugeridos deben ser slugs en minusculas con guiones, por ejemplo "ciencia-ficcion" o "musica-rock".`

// AnalyzeInterestChat envia el texto del usuario al LLM y devuelve el
// analisis junto con los intereses sugeridos. Los ids que no existen como
// hoja del arbol se devuelven con el prefijo "custom-" para que la capa de
// reconciliacion los ignore en el arbol pero los conserve en la tabla puente.
func (s *AnalysisService) AnalyzeInterestChat(ctx context.Context, text string) (InterestAnalysis, error) {
	raw, err := s.llmClient.Generate(ctx, interestChatSystemPrompt, strings.TrimSpace(text))
	if err != nil {
		return InterestAnalysis{}, fmt.Errorf("llm generate: %w", err)
	}

	extracted := extractFirstJSONObject(raw)
	if extracted == "" {
		return InterestAnalysis{}, fmt.Errorf("llm response had no json object")
	}

	var parsed InterestAnalysis
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return InterestAnalysis{}, fmt.Errorf("parse llm response: %w", err)
	}

	normalized := make([]string, 0, len(parsed.Suggested))
	for _, id := range parsed.Suggested {
		id = strings.TrimSpace(strings.ToLower(id))
		if id == "" {
			continue
		}
		if _, known := s.knownIDs[id]; !known && !strings.HasPrefix(id, "custom-") {
			id = "custom-" + id
		}
		normalized = append(normalized, id)
	}
	parsed.Suggested = normalized

	return parsed, nil
}

// GenerateProfileAnalysis redacta el perfil descriptivo del usuario a partir
// de su nombre, su descripcion personal y sus intereses, y lo guarda en la
// columna analisis_externo.
func (s *AnalysisService) GenerateProfileAnalysis(ctx context.Context, userID string) (string, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get profile %s: %w", userID, err)
	}

	selected, avoided, err := s.userInterestNames(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt := buildProfileAnalysisPrompt(profile.Name, profile.DescriptionNote, selected, avoided)
	analysis, err := s.llmClient.Generate(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("llm generate: %w", err)
	}
	analysis = strings.TrimSpace(analysis)

	if err := s.profiles.UpdateBasics(ctx, userID, profile.Name, profile.DescriptionNote, analysis); err != nil {
		return "", fmt.Errorf("save analysis: %w", err)
	}
	return analysis, nil
}

func (s *AnalysisService) userInterestNames(ctx context.Context, userID string) (selected, avoided []string, err error) {
	catalog, err := s.interests.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load interest catalog: %w", err)
	}
	labels := make(map[string]string, len(catalog))
	for _, interest := range catalog {
		labels[interest.ID] = interest.Name
	}

	rows, err := s.interests.ListUserInterests(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load interests for %s: %w", userID, err)
	}
	for _, row := range rows {
		label, ok := labels[row.InterestID]
		if !ok {
			label = strings.TrimPrefix(row.InterestID, "custom-")
		}
		if row.IsAvoided {
			avoided = append(avoided, label)
		} else {
			selected = append(selected, label)
		}
	}
	return selected, avoided, nil
}

func buildProfileAnalysisPrompt(name, personalDescription string, selected, avoided []string) string {
	if strings.TrimSpace(name) == "" {
		name = "Nombre no disponible"
	}
	if strings.TrimSpace(personalDescription) == "" {
		personalDescription = "No se ha proporcionado descripción personal."
	}

	var b strings.Builder
	b.WriteString("Genera un perfil completo y detallado de un usuario utilizando la siguiente información. Incluye las secciones de:\n")
	b.WriteString("- Datos Generales\n- Formación Académica\n- Experiencia Laboral\n- Habilidades\n- Logros e Intereses\n- Resumen Personal\n\n")
	b.WriteString("No incluyas información sensible como contraseñas, números de teléfono u otros datos privados.\n\n")
	b.WriteString("Datos disponibles:\n")
	fmt.Fprintf(&b, "- Nombre: %s\n", name)
	fmt.Fprintf(&b, "- Descripción personal: %s\n", personalDescription)
	fmt.Fprintf(&b, "- Temas de interés: %s\n", joinOrNone(selected))
	fmt.Fprintf(&b, "- Temas que se prefieren evitar: %s\n\n", joinOrNone(avoided))
	b.WriteString("Utiliza esta información para generar un perfil que permita a alguien que no conoce al usuario entablar una conversación y conocer más sobre él.")
	return b.String()
}
