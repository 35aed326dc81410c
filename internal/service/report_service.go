package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"chelas-api/internal/domain"
	"chelas-api/internal/email"
	"chelas-api/internal/llm"
	"chelas-api/internal/repository"
)

// ReportService arma el informe diario del evento: gastos de bebida del dia
// y las conversaciones marcadas como favoritas o con seguimiento pendiente,
// junto con sus notas. El informe puede enviarse por correo.
type ReportService struct {
	logger        *zap.Logger
	llmClient     llm.Client
	expenses      repository.ExpenseRepository
	conversations repository.ConversationRepository
	profiles      repository.ProfileRepository
	sender        email.Sender
	now           func() time.Time
}

func NewReportService(
	logger *zap.Logger,
	llmClient llm.Client,
	expenses repository.ExpenseRepository,
	conversations repository.ConversationRepository,
	profiles repository.ProfileRepository,
	sender email.Sender,
) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sender == nil {
		sender = email.NewDisabledSender("email sender not configured")
	}
	return &ReportService{
		logger:        logger,
		llmClient:     llmClient,
		expenses:      expenses,
		conversations: conversations,
		profiles:      profiles,
		sender:        sender,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ReportConversation es una conversacion marcada, resuelta al nombre del
// interlocutor para el informe.
type ReportConversation struct {
	ConversationID string `json:"conversation_id"`
	UserName       string `json:"user_name"`
	IsFavorite     bool   `json:"is_favorite"`
	FollowUp       bool   `json:"follow_up"`
	Notes          string `json:"notes,omitempty"`
}

// DailyReport agrupa los datos crudos del dia y el texto formateado.
type DailyReport struct {
	Expenses      []domain.DrinkExpense `json:"expenses"`
	ExpenseTotal  float64               `json:"expense_total"`
	Conversations []ReportConversation  `json:"conversations"`
	Formatted     string                `json:"formatted"`
}

// AddExpense registra un gasto de bebida.
func (s *ReportService) AddExpense(ctx context.Context, userID, description string, price float64) (domain.DrinkExpense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.DrinkExpense{}, errors.New("expense description required")
	}
	if price < 0 {
		return domain.DrinkExpense{}, errors.New("expense price must not be negative")
	}

	expense := domain.DrinkExpense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Price:       price,
		CreatedAt:   s.now(),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return domain.DrinkExpense{}, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

// ListTodayExpenses devuelve los gastos del dia en curso.
func (s *ReportService) ListTodayExpenses(ctx context.Context, userID string) ([]domain.DrinkExpense, error) {
	expenses, err := s.expenses.ListByUserSince(ctx, userID, s.startOfDay())
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense elimina un gasto del usuario.
func (s *ReportService) DeleteExpense(ctx context.Context, id, userID string) error {
	return s.expenses.Delete(ctx, id, userID)
}

// BuildDailyReport junta gastos y conversaciones marcadas del dia y pide al
// LLM el formato final. Si el LLM falla, el informe sale con el layout plano:
// el usuario nunca se queda sin informe por una API caida.
func (s *ReportService) BuildDailyReport(ctx context.Context, userID string) (DailyReport, error) {
	since := s.startOfDay()

	expenses, err := s.expenses.ListByUserSince(ctx, userID, since)
	if err != nil {
		return DailyReport{}, fmt.Errorf("list expenses: %w", err)
	}

	flagged, err := s.conversations.ListFlaggedByUser(ctx, userID, since)
	if err != nil {
		return DailyReport{}, fmt.Errorf("list flagged conversations: %w", err)
	}

	report := DailyReport{Expenses: expenses, Conversations: []ReportConversation{}}
	for _, exp := range expenses {
		report.ExpenseTotal += exp.Price
	}
	for _, conv := range flagged {
		report.Conversations = append(report.Conversations, s.resolveConversation(ctx, userID, conv))
	}

	body := formatReportBody(report)
	report.Formatted = s.formatWithLLM(ctx, body)
	return report, nil
}

// EmailDailyReport construye el informe del dia y lo envia por correo.
func (s *ReportService) EmailDailyReport(ctx context.Context, userID, toEmail string) (DailyReport, error) {
	report, err := s.BuildDailyReport(ctx, userID)
	if err != nil {
		return DailyReport{}, err
	}

	subject := "Informe diario - " + s.now().Format("2006-01-02")
	if err := s.sender.SendReport(ctx, toEmail, subject, report.Formatted); err != nil {
		return DailyReport{}, fmt.Errorf("send report: %w", err)
	}
	return report, nil
}

func (s *ReportService) resolveConversation(ctx context.Context, userID string, conv domain.Conversation) ReportConversation {
	otherID := conv.UserA
	if otherID == userID {
		otherID = conv.UserB
	}

	name := otherID
	if otherID == domain.BotID {
		name = "Bot"
	} else if profile, err := s.profiles.GetByID(ctx, otherID); err == nil {
		name = profile.Name
	}

	rc := ReportConversation{
		ConversationID: conv.ID,
		UserName:       name,
		IsFavorite:     conv.IsFavorite,
		FollowUp:       conv.FollowUp,
	}

	note, err := s.conversations.GetNote(ctx, conv.ID, userID)
	if err == nil {
		rc.Notes = note.Notes
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("report note lookup failed", zap.Error(err), zap.String("conversation_id", conv.ID))
	}
	return rc
}

func (s *ReportService) startOfDay() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

const reportFormatSystemPrompt = `Formatea el informe diario que te entrega el usuario en un estilo de reporte de seguridad informático/antivirus, con secciones claras, usando emojis relevantes y terminología informática de manera humorística. Responde solo con el informe formateado, en español.`

func (s *ReportService) formatWithLLM(ctx context.Context, body string) string {
	if s.llmClient == nil {
		return body
	}
	formatted, err := s.llmClient.Generate(ctx, reportFormatSystemPrompt, body)
	if err != nil {
		s.logger.Warn("report formatting failed, using plain layout", zap.Error(err))
		return body
	}
	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return body
	}
	return "INFORME DE SEGURIDAD - JAVASCRIPT SUMMIT\n\n" + formatted
}

func formatReportBody(report DailyReport) string {
	var b strings.Builder

	b.WriteString("RESUMEN DE GASTOS:\n")
	if len(report.Expenses) == 0 {
		b.WriteString("No has registrado gastos hoy.\n")
	} else {
		fmt.Fprintf(&b, "Has gastado un total de $%.2f en %d compras hoy.\n", report.ExpenseTotal, len(report.Expenses))
		details := make([]string, 0, len(report.Expenses))
		for _, exp := range report.Expenses {
			details = append(details, fmt.Sprintf("%s: $%.2f", exp.Description, exp.Price))
		}
		fmt.Fprintf(&b, "Detalles: %s\n", strings.Join(details, ", "))
		fmt.Fprintf(&b, "Total a pagar: $%.2f\n", report.ExpenseTotal)
	}

	b.WriteString("\nPERSONAS DE INTERÉS:\n")
	var favorites, followUps []string
	for _, conv := range report.Conversations {
		if conv.IsFavorite {
			favorites = append(favorites, conv.UserName)
		}
		if conv.FollowUp {
			followUps = append(followUps, conv.UserName)
		}
	}
	if len(favorites) > 0 {
		fmt.Fprintf(&b, "Usuarios favoritos: %s\n", strings.Join(favorites, ", "))
	} else {
		b.WriteString("No hay usuarios favoritos.\n")
	}
	if len(followUps) > 0 {
		fmt.Fprintf(&b, "Seguimiento pendiente: %s\n", strings.Join(followUps, ", "))
	} else {
		b.WriteString("No hay seguimientos pendientes.\n")
	}

	b.WriteString("\nNOTAS DE CONVERSACIONES:\n")
	hasNotes := false
	for _, conv := range report.Conversations {
		if conv.Notes == "" {
			continue
		}
		hasNotes = true
		fmt.Fprintf(&b, "Notas sobre %s: %s\n", conv.UserName, conv.Notes)
	}
	if !hasNotes {
		b.WriteString("No hay notas registradas.\n")
	}

	return b.String()
}
