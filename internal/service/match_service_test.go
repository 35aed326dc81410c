package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"chelas-api/internal/domain"
)

func TestComputeMatchJaccard(t *testing.T) {
	a := []string{"rock", "playa", "ciencia-ficcion"}
	b := []string{"playa", "ciencia-ficcion", "jazz"}

	result := ComputeMatch(a, b, nil)

	if result.MatchCount != 2 {
		t.Fatalf("expected 2 shared interests, got %d", result.MatchCount)
	}
	if result.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", result.Percentage)
	}
}

func TestComputeMatchIsSymmetric(t *testing.T) {
	a := []string{"rock", "playa", "drama"}
	b := []string{"drama", "jazz"}

	ab := ComputeMatch(a, b, nil)
	ba := ComputeMatch(b, a, nil)

	if ab != ba {
		t.Fatalf("expected symmetric result, got %+v vs %+v", ab, ba)
	}
}

func TestComputeMatchRoundsHalfUp(t *testing.T) {
	// 1 compartido sobre union de 8: 12.5% debe redondear a 13.
	a := []string{"i1", "i2", "i3", "i4", "i5"}
	b := []string{"i5", "i6", "i7", "i8"}

	result := ComputeMatch(a, b, nil)

	if result.Percentage != 13 {
		t.Fatalf("expected 13%%, got %d", result.Percentage)
	}
}

func TestComputeMatchEmptyUnion(t *testing.T) {
	result := ComputeMatch(nil, nil, nil)
	if result.Percentage != 0 || result.MatchCount != 0 {
		t.Fatalf("expected zero result, got %+v", result)
	}
}

func TestComputeMatchFiltersAvoid(t *testing.T) {
	avoid := map[string]struct{}{"politica-extrema": {}}
	a := []string{"rock", "politica-extrema"}
	b := []string{"rock", "politica-extrema"}

	result := ComputeMatch(a, b, avoid)

	if result.MatchCount != 1 {
		t.Fatalf("expected avoided id excluded from intersection, got %d", result.MatchCount)
	}
	if result.Percentage != 100 {
		t.Fatalf("expected avoided id excluded from union, got %d%%", result.Percentage)
	}
}

func TestComputeMatchIgnoresDuplicates(t *testing.T) {
	a := []string{"rock", "rock", "playa"}
	b := []string{"rock"}

	result := ComputeMatch(a, b, nil)

	if result.MatchCount != 1 {
		t.Fatalf("expected 1 shared interest, got %d", result.MatchCount)
	}
	if result.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", result.Percentage)
	}
}

func makeUserInterests(userID string, selected []string, avoided []string) []domain.UserInterest {
	rows := []domain.UserInterest{}
	for _, id := range selected {
		rows = append(rows, domain.UserInterest{UserID: userID, InterestID: id})
	}
	for _, id := range avoided {
		rows = append(rows, domain.UserInterest{UserID: userID, InterestID: id, IsAvoided: true})
	}
	return rows
}

func TestCalculateForUsersPersistsOnLatestConversation(t *testing.T) {
	interests := newMockInterestRepo()
	interests.userInterests["user-a"] = makeUserInterests("user-a", []string{"rock", "playa"}, nil)
	interests.userInterests["user-b"] = makeUserInterests("user-b", []string{"rock"}, nil)

	conversations := newMockConversationRepo()
	conversations.latest = domain.Conversation{ID: "conv-1", UserA: "user-a", UserB: "user-b"}

	svc := NewMatchService(zap.NewNop(), interests, conversations)

	result, err := svc.CalculateForUsers(context.Background(), "user-a", "user-b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d", result.Percentage)
	}
	if conversations.updatedID != "conv-1" || conversations.updatedMatch != 50 {
		t.Fatalf("expected match persisted on conv-1, got %q with %d", conversations.updatedID, conversations.updatedMatch)
	}
}

func TestCalculateForUsersExcludesAvoidedSelections(t *testing.T) {
	interests := newMockInterestRepo()
	interests.userInterests["user-a"] = makeUserInterests("user-a", []string{"rock"}, []string{"spoilers"})
	interests.userInterests["user-b"] = makeUserInterests("user-b", []string{"rock"}, []string{"spoilers"})

	conversations := newMockConversationRepo()
	conversations.latest = domain.Conversation{ID: "conv-1"}

	svc := NewMatchService(zap.NewNop(), interests, conversations)

	result, err := svc.CalculateForUsers(context.Background(), "user-a", "user-b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.MatchCount != 1 || result.Percentage != 100 {
		t.Fatalf("expected avoided rows out of the match, got %+v", result)
	}
}

func TestCalculateForUsersSkipsBot(t *testing.T) {
	interests := newMockInterestRepo()
	interests.userInterests["user-a"] = makeUserInterests("user-a", []string{"rock"}, nil)

	conversations := newMockConversationRepo()
	conversations.latest = domain.Conversation{ID: "conv-1"}

	svc := NewMatchService(zap.NewNop(), interests, conversations)

	if _, err := svc.CalculateForUsers(context.Background(), "user-a", domain.BotID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if conversations.updateCalls != 0 {
		t.Fatalf("expected no persistence for bot conversations, got %d calls", conversations.updateCalls)
	}
}

func TestCalculateForUsersSwallowsPersistFailure(t *testing.T) {
	interests := newMockInterestRepo()
	interests.userInterests["user-a"] = makeUserInterests("user-a", []string{"rock"}, nil)
	interests.userInterests["user-b"] = makeUserInterests("user-b", []string{"rock"}, nil)

	conversations := newMockConversationRepo()
	conversations.latest = domain.Conversation{ID: "conv-1"}
	conversations.updateErr = errBoom

	svc := NewMatchService(zap.NewNop(), interests, conversations)

	result, err := svc.CalculateForUsers(context.Background(), "user-a", "user-b")
	if err != nil {
		t.Fatalf("expected persistence failure swallowed, got %v", err)
	}
	if result.Percentage != 100 {
		t.Fatalf("expected result despite persistence failure, got %+v", result)
	}
}
