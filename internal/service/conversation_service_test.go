package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"chelas-api/internal/domain"
)

func TestStartConversation(t *testing.T) {
	repo := newMockConversationRepo()
	svc := NewConversationService(zap.NewNop(), repo)

	conv, err := svc.Start(context.Background(), "user-a", "user-b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if conv.ID == "" || conv.StartedAt.IsZero() {
		t.Fatalf("expected id and started_at assigned, got %+v", conv)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected conversation persisted, got %d", len(repo.created))
	}
}

func TestStartConversationWithBot(t *testing.T) {
	svc := NewConversationService(zap.NewNop(), newMockConversationRepo())

	if _, err := svc.Start(context.Background(), "user-a", domain.BotID); err != nil {
		t.Fatalf("expected bot conversation allowed, got %v", err)
	}
}

func TestStartConversationSameUser(t *testing.T) {
	svc := NewConversationService(zap.NewNop(), newMockConversationRepo())

	if _, err := svc.Start(context.Background(), "user-a", "user-a"); !errors.Is(err, ErrSameParticipants) {
		t.Fatalf("expected ErrSameParticipants, got %v", err)
	}
}

func TestGetConversationNotFound(t *testing.T) {
	svc := NewConversationService(zap.NewNop(), newMockConversationRepo())

	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestEndConversationSetsTimestamp(t *testing.T) {
	repo := newMockConversationRepo()
	repo.byID["conv-1"] = domain.Conversation{ID: "conv-1"}
	svc := NewConversationService(zap.NewNop(), repo)

	if err := svc.End(context.Background(), "conv-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.endedID != "conv-1" || repo.endedAt.IsZero() {
		t.Fatalf("expected ended_at recorded, got %q at %v", repo.endedID, repo.endedAt)
	}
}

func TestSaveNoteTrimsAndPersists(t *testing.T) {
	repo := newMockConversationRepo()
	svc := NewConversationService(zap.NewNop(), repo)

	note, err := svc.SaveNote(context.Background(), "conv-1", "user-1", "  hablar de Go  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if note.Notes != "hablar de Go" {
		t.Fatalf("expected trimmed note, got %q", note.Notes)
	}
	if len(repo.savedNotes) != 1 {
		t.Fatalf("expected note persisted, got %d", len(repo.savedNotes))
	}
}

func TestGetNoteMissingReturnsEmpty(t *testing.T) {
	svc := NewConversationService(zap.NewNop(), newMockConversationRepo())

	note, err := svc.GetNote(context.Background(), "conv-1", "user-1")
	if err != nil {
		t.Fatalf("expected empty note instead of error, got %v", err)
	}
	if note.Notes != "" || note.ConversationID != "conv-1" {
		t.Fatalf("unexpected note %+v", note)
	}
}
