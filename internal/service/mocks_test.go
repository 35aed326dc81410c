package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"chelas-api/internal/domain"
)

// Mocks de repositorio compartidos por los tests del paquete.

type mockProfileRepo struct {
	profiles        map[string]domain.Profile
	superDocs       map[string]json.RawMessage
	available       []domain.Profile
	preferredTopics map[string][]string

	getSuperErr        error
	updateSuperErr     error
	listErr            error
	updateTopicsErr    error
	setAvailabilityErr error

	savedSuper        map[string]json.RawMessage
	availabilityCalls map[string]bool
	basicsAnalysis    string
	topicsCalls       int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{
		profiles:          map[string]domain.Profile{},
		superDocs:         map[string]json.RawMessage{},
		preferredTopics:   map[string][]string{},
		savedSuper:        map[string]json.RawMessage{},
		availabilityCalls: map[string]bool{},
	}
}

func (m *mockProfileRepo) Create(ctx context.Context, profile domain.Profile) error {
	m.profiles[profile.ID] = profile
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProfileRepo) ListAvailable(ctx context.Context, excludeID string) ([]domain.Profile, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domain.Profile{}
	for _, p := range m.available {
		if p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProfileRepo) UpdateBasics(ctx context.Context, id, name, description, externalAnalysis string) error {
	m.basicsAnalysis = externalAnalysis
	return nil
}

func (m *mockProfileRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	if m.setAvailabilityErr != nil {
		return m.setAvailabilityErr
	}
	m.availabilityCalls[id] = available
	return nil
}

func (m *mockProfileRepo) GetSuperProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	if m.getSuperErr != nil {
		return nil, m.getSuperErr
	}
	doc, ok := m.superDocs[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return doc, nil
}

func (m *mockProfileRepo) UpdateSuperProfile(ctx context.Context, userID string, doc json.RawMessage) error {
	if m.updateSuperErr != nil {
		return m.updateSuperErr
	}
	m.savedSuper[userID] = doc
	m.superDocs[userID] = doc
	return nil
}

func (m *mockProfileRepo) GetPreferredTopics(ctx context.Context, userID string) ([]string, error) {
	return m.preferredTopics[userID], nil
}

func (m *mockProfileRepo) UpdatePreferredTopics(ctx context.Context, userID string, topics []string) error {
	if m.updateTopicsErr != nil {
		return m.updateTopicsErr
	}
	m.topicsCalls++
	m.preferredTopics[userID] = topics
	return nil
}

type mockInterestRepo struct {
	catalog       []domain.Interest
	avoidIDs      []string
	userInterests map[string][]domain.UserInterest

	listAllErr  error
	avoidErr    error
	replaceErr  error
	listUserErr error

	replaceCalls int
	lastUserID   string
	lastSelected []string
	lastAvoided  []string
	upserted     []domain.Interest
}

func newMockInterestRepo() *mockInterestRepo {
	return &mockInterestRepo{userInterests: map[string][]domain.UserInterest{}}
}

func (m *mockInterestRepo) ListAll(ctx context.Context) ([]domain.Interest, error) {
	if m.listAllErr != nil {
		return nil, m.listAllErr
	}
	return m.catalog, nil
}

func (m *mockInterestRepo) AvoidInterestIDs(ctx context.Context) ([]string, error) {
	if m.avoidErr != nil {
		return nil, m.avoidErr
	}
	return m.avoidIDs, nil
}

func (m *mockInterestRepo) Upsert(ctx context.Context, interest domain.Interest) error {
	m.upserted = append(m.upserted, interest)
	return nil
}

func (m *mockInterestRepo) ReplaceUserInterests(ctx context.Context, userID string, selected, avoided []string) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls++
	m.lastUserID = userID
	m.lastSelected = selected
	m.lastAvoided = avoided
	return nil
}

func (m *mockInterestRepo) ListUserInterests(ctx context.Context, userID string) ([]domain.UserInterest, error) {
	if m.listUserErr != nil {
		return nil, m.listUserErr
	}
	return m.userInterests[userID], nil
}

type mockConversationRepo struct {
	byID    map[string]domain.Conversation
	latest  domain.Conversation
	flagged []domain.Conversation
	notes   map[string]domain.ConversationNote

	latestErr   error
	updateErr   error
	addTopicErr error

	created      []domain.Conversation
	topics       []domain.ConversationTopic
	savedNotes   []domain.ConversationNote
	updatedID    string
	updatedMatch int
	updateCalls  int
	endedID      string
	endedAt      time.Time
}

func newMockConversationRepo() *mockConversationRepo {
	return &mockConversationRepo{
		byID:  map[string]domain.Conversation{},
		notes: map[string]domain.ConversationNote{},
	}
}

func (m *mockConversationRepo) Create(ctx context.Context, conv domain.Conversation) error {
	m.created = append(m.created, conv)
	m.byID[conv.ID] = conv
	return nil
}

func (m *mockConversationRepo) GetByID(ctx context.Context, id string) (domain.Conversation, error) {
	conv, ok := m.byID[id]
	if !ok {
		return domain.Conversation{}, pgx.ErrNoRows
	}
	return conv, nil
}

func (m *mockConversationRepo) GetLatestBetween(ctx context.Context, userA, userB string) (domain.Conversation, error) {
	if m.latestErr != nil {
		return domain.Conversation{}, m.latestErr
	}
	return m.latest, nil
}

func (m *mockConversationRepo) UpdateMatchPercentage(ctx context.Context, id string, percentage int) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updateCalls++
	m.updatedID = id
	m.updatedMatch = percentage
	return nil
}

func (m *mockConversationRepo) SetFavorite(ctx context.Context, id string, favorite bool) error {
	conv, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	conv.IsFavorite = favorite
	m.byID[id] = conv
	return nil
}

func (m *mockConversationRepo) SetFollowUp(ctx context.Context, id string, followUp bool) error {
	conv, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	conv.FollowUp = followUp
	m.byID[id] = conv
	return nil
}

func (m *mockConversationRepo) End(ctx context.Context, id string, endedAt time.Time) error {
	m.endedID = id
	m.endedAt = endedAt
	return nil
}

func (m *mockConversationRepo) AddTopic(ctx context.Context, topic domain.ConversationTopic) error {
	if m.addTopicErr != nil {
		return m.addTopicErr
	}
	m.topics = append(m.topics, topic)
	return nil
}

func (m *mockConversationRepo) ListTopics(ctx context.Context, conversationID string) ([]domain.ConversationTopic, error) {
	out := []domain.ConversationTopic{}
	for _, t := range m.topics {
		if t.ConversationID == conversationID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockConversationRepo) UpsertNote(ctx context.Context, note domain.ConversationNote) error {
	m.savedNotes = append(m.savedNotes, note)
	m.notes[note.ConversationID+"/"+note.UserID] = note
	return nil
}

func (m *mockConversationRepo) GetNote(ctx context.Context, conversationID, userID string) (domain.ConversationNote, error) {
	note, ok := m.notes[conversationID+"/"+userID]
	if !ok {
		return domain.ConversationNote{}, pgx.ErrNoRows
	}
	return note, nil
}

func (m *mockConversationRepo) ListFlaggedByUser(ctx context.Context, userID string, since time.Time) ([]domain.Conversation, error) {
	return m.flagged, nil
}

type mockExpenseRepo struct {
	expenses  []domain.DrinkExpense
	createErr error
	listErr   error

	created []domain.DrinkExpense
	deleted []string
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.DrinkExpense) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, expense)
	return nil
}

func (m *mockExpenseRepo) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.DrinkExpense, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.expenses, nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id, userID string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockEmailSender struct {
	to      string
	subject string
	body    string
	err     error
	calls   int
}

func (m *mockEmailSender) SendReport(ctx context.Context, toEmail, subject, body string) error {
	m.calls++
	m.to = toEmail
	m.subject = subject
	m.body = body
	if m.err != nil {
		return m.err
	}
	return nil
}

var errBoom = errors.New("boom")
