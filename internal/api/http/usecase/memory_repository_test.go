package httpUsecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memoryRepository keeps the whole game state in maps and applies the same domain
// rules as the postgres repository.
type memoryRepository struct {
	mu  sync.Mutex
	now func() time.Time

	users     map[uuid.UUID]domain.User
	rooms     map[string]*domain.Room
	questions []*domain.Question
	choices   []*domain.ChoiceQuestion
	rounds    []*domain.SongRound

	// createConflicts makes that many CreateRoom calls fail as a code collision.
	createConflicts int
}

func newMemoryRepository() *memoryRepository {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &memoryRepository{
		now:   func() time.Time { return clock },
		users: map[uuid.UUID]domain.User{},
		rooms: map[string]*domain.Room{},
	}
}

func (m *memoryRepository) UpsertUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *memoryRepository) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rooms[code]
	return ok, nil
}

func (m *memoryRepository) CreateRoom(ctx context.Context, code string, creatorID uuid.UUID) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createConflicts > 0 {
		m.createConflicts--
		return nil, fmt.Errorf("%w: room code already in use", domain.ErrConflict)
	}
	if _, ok := m.rooms[code]; ok {
		return nil, fmt.Errorf("%w: room code already in use", domain.ErrConflict)
	}
	room := &domain.Room{ID: uuid.New(), Code: code, Seat1UserID: creatorID, Status: domain.RoomWaiting, CreatedAt: m.now()}
	m.rooms[code] = room
	copied := *room
	return &copied, nil
}

func (m *memoryRepository) room(code string) (*domain.Room, error) {
	room, ok := m.rooms[code]
	if !ok {
		return nil, fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}
	return room, nil
}

func (m *memoryRepository) roomByID(id uuid.UUID) *domain.Room {
	for _, room := range m.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

func (m *memoryRepository) GetRoomByCode(ctx context.Context, code string) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(code)
	if err != nil {
		return nil, err
	}
	copied := *room
	return &copied, nil
}

func (m *memoryRepository) JoinRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(code)
	if err != nil {
		return nil, err
	}
	if err := room.Join(userID); err != nil {
		return nil, err
	}
	copied := *room
	return &copied, nil
}

func (m *memoryRepository) LeaveRoom(ctx context.Context, code string, userID uuid.UUID) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(code)
	if err != nil {
		return nil, err
	}
	if err := room.Leave(userID); err != nil {
		return nil, err
	}
	copied := *room
	return &copied, nil
}

func (m *memoryRepository) CreateQuestion(ctx context.Context, creatorID uuid.UUID, text, answer string) (*domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := &domain.Question{
		ID: uuid.New(), CreatorID: creatorID, Text: text, CreatorAnswer: answer,
		Status: domain.QuestionWaiting, CreatedAt: m.now(),
	}
	m.questions = append(m.questions, q)
	copied := *q
	return &copied, nil
}

func (m *memoryRepository) question(id uuid.UUID) (*domain.Question, error) {
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("%w: question not found", domain.ErrNotFound)
}

func (m *memoryRepository) SubmitAnswer(ctx context.Context, questionID, userID uuid.UUID, text string) (*domain.Answer, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, err := m.question(questionID)
	if err != nil {
		return nil, false, err
	}
	for _, a := range q.Answers {
		if a.UserID == userID {
			return nil, false, fmt.Errorf("%w: you already answered this question", domain.ErrConflict)
		}
	}
	answer := domain.Answer{
		ID: uuid.New(), QuestionID: questionID, UserID: userID, Text: text,
		IsCorrect: domain.AnswerMatches(q.CreatorAnswer, text), CreatedAt: m.now(),
	}
	q.Answers = append(q.Answers, answer)

	completed := false
	if domain.CompletesAt(len(q.Answers)) && q.Status != domain.QuestionCompleted {
		q.Status = domain.QuestionCompleted
		completed = true
	}
	return &answer, completed, nil
}

func (m *memoryRepository) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, err := m.question(questionID)
	if err != nil {
		return nil, err
	}
	copied := *q
	copied.Answers = slices.Clone(q.Answers)
	return &copied, nil
}

func (m *memoryRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return m.filterQuestions(func(*domain.Question) bool { return true }), nil
}

func (m *memoryRepository) CompletedQuestions(ctx context.Context) ([]domain.Question, error) {
	return m.filterQuestions(func(q *domain.Question) bool { return q.Status == domain.QuestionCompleted }), nil
}

func (m *memoryRepository) filterQuestions(keep func(*domain.Question) bool) []domain.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Question{}
	for i := len(m.questions) - 1; i >= 0; i-- {
		if q := m.questions[i]; keep(q) {
			copied := *q
			copied.Answers = slices.Clone(q.Answers)
			out = append(out, copied)
		}
	}
	return out
}

func (m *memoryRepository) DeleteQuestion(ctx context.Context, questionID, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, err := m.question(questionID)
	if err != nil {
		return err
	}
	if q.CreatorID != userID {
		return fmt.Errorf("%w: only the creator can delete this question", domain.ErrForbidden)
	}
	m.questions = slices.DeleteFunc(m.questions, func(x *domain.Question) bool { return x.ID == questionID })
	return nil
}

func (m *memoryRepository) CreateChoiceQuestion(ctx context.Context, roomCode string, userID uuid.UUID, text string) (*domain.ChoiceQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(roomCode)
	if err != nil {
		return nil, err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, err
	}
	q := &domain.ChoiceQuestion{
		ID: uuid.New(), RoomID: room.ID, AskedByUserID: userID, Text: text,
		Status: domain.ChoiceActive, CreatedAt: m.now(),
	}
	m.choices = append(m.choices, q)
	id := q.ID
	room.CurrentQuestionID = &id
	return m.choiceCopy(q), nil
}

func (m *memoryRepository) choiceCopy(q *domain.ChoiceQuestion) *domain.ChoiceQuestion {
	copied := *q
	copied.Options = slices.Clone(q.Options)
	copied.Selections = slices.Clone(q.Selections)
	return &copied
}

func (m *memoryRepository) choice(id uuid.UUID) (*domain.ChoiceQuestion, *domain.Room, error) {
	for _, q := range m.choices {
		if q.ID == id {
			return q, m.roomByID(q.RoomID), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: question not found", domain.ErrNotFound)
}

func (m *memoryRepository) SubmitOptions(ctx context.Context, questionID, userID uuid.UUID, inputs []domain.OptionInput) ([]domain.Option, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, room, err := m.choice(questionID)
	if err != nil {
		return nil, "", err
	}
	normalized, err := domain.NormalizeOptions(inputs)
	if err != nil {
		return nil, "", err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, "", err
	}
	for _, o := range q.Options {
		if o.UserID == userID {
			return nil, "", fmt.Errorf("%w: you already submitted options for this question", domain.ErrConflict)
		}
	}
	stored := make([]domain.Option, 0, len(normalized))
	for _, in := range normalized {
		stored = append(stored, domain.Option{
			ID: uuid.New(), QuestionID: questionID, UserID: userID, Text: in.Text, IsCorrect: in.IsCorrect,
		})
	}
	q.Options = append(q.Options, stored...)
	return stored, room.Code, nil
}

func (m *memoryRepository) SubmitSelection(ctx context.Context, questionID, userID, optionID uuid.UUID) (*domain.Selection, bool, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, room, err := m.choice(questionID)
	if err != nil {
		return nil, false, "", err
	}
	idx := slices.IndexFunc(q.Options, func(o domain.Option) bool { return o.ID == optionID })
	if idx < 0 {
		return nil, false, "", fmt.Errorf("%w: option not found for this question", domain.ErrNotFound)
	}
	option := q.Options[idx]
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, false, "", err
	}
	for _, s := range q.Selections {
		if s.UserID == userID {
			return nil, false, "", fmt.Errorf("%w: you already made a selection for this question", domain.ErrConflict)
		}
	}
	if err := domain.CheckSelection(option, userID); err != nil {
		return nil, false, "", err
	}
	selection := domain.Selection{
		ID: uuid.New(), QuestionID: questionID, UserID: userID, SelectedOptionID: optionID,
		IsCorrect: option.IsCorrect, CreatedAt: m.now(),
	}
	q.Selections = append(q.Selections, selection)

	completed := false
	if len(q.Selections) >= domain.SelectionsToComplete && q.Status != domain.ChoiceCompleted {
		q.Status = domain.ChoiceCompleted
		completed = true
	}
	return &selection, completed, room.Code, nil
}

func (m *memoryRepository) CurrentChoiceQuestion(ctx context.Context, roomCode string) (*domain.ChoiceQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(roomCode)
	if err != nil {
		return nil, err
	}
	if room.CurrentQuestionID == nil {
		return nil, nil
	}
	q, _, err := m.choice(*room.CurrentQuestionID)
	if err != nil {
		return nil, err
	}
	return m.choiceCopy(q), nil
}

func (m *memoryRepository) ChoiceHistory(ctx context.Context, roomCode string) ([]domain.ChoiceQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(roomCode)
	if err != nil {
		return nil, err
	}
	out := []domain.ChoiceQuestion{}
	for i := len(m.choices) - 1; i >= 0; i-- {
		if q := m.choices[i]; q.RoomID == room.ID {
			out = append(out, *m.choiceCopy(q))
		}
	}
	return out, nil
}

func (m *memoryRepository) ClearCurrentQuestion(ctx context.Context, roomCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, err := m.room(roomCode)
	if err != nil {
		return err
	}
	room.CurrentQuestionID = nil
	return nil
}

func (m *memoryRepository) HasActiveSongRound(ctx context.Context, roomID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeRound(roomID) != nil, nil
}

func (m *memoryRepository) activeRound(roomID uuid.UUID) *domain.SongRound {
	for _, r := range m.rounds {
		if r.RoomID == roomID && r.Status == domain.RoundActive {
			return r
		}
	}
	return nil
}

func (m *memoryRepository) CreateSongRound(ctx context.Context, roomID, userID uuid.UUID, track domain.Track) (*domain.SongRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := m.roomByID(roomID)
	if room == nil {
		return nil, fmt.Errorf("%w: room not found", domain.ErrNotFound)
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, err
	}
	if m.activeRound(roomID) != nil {
		return nil, fmt.Errorf("%w: a round is already active in this room", domain.ErrConflict)
	}
	round := &domain.SongRound{
		ID: uuid.New(), RoomID: roomID, AskedByUserID: userID, TrackID: track.ID,
		Title: track.Title, Artist: track.Artist, PreviewURL: track.PreviewURL, CoverURL: track.CoverURL,
		Status: domain.RoundActive, CreatedAt: m.now(),
	}
	m.rounds = append(m.rounds, round)
	copied := *round
	return &copied, nil
}

func (m *memoryRepository) round(id uuid.UUID) (*domain.SongRound, *domain.Room, error) {
	for _, r := range m.rounds {
		if r.ID == id {
			return r, m.roomByID(r.RoomID), nil
		}
	}
	return nil, nil, fmt.Errorf("%w: round not found", domain.ErrNotFound)
}

func (m *memoryRepository) SubmitGuess(ctx context.Context, roundID, userID uuid.UUID, guess string, cooldown time.Duration) (*domain.Guess, *domain.SongRound, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	round, room, err := m.round(roundID)
	if err != nil {
		return nil, nil, "", err
	}
	if _, err := room.RequireSeat(userID); err != nil {
		return nil, nil, "", err
	}
	if err := round.EnsureActive(); err != nil {
		return nil, nil, "", err
	}

	now := m.now()
	var last *domain.Guess
	for i := len(round.Guesses) - 1; i >= 0; i-- {
		if round.Guesses[i].UserID == userID {
			last = &round.Guesses[i]
			break
		}
	}
	if err := domain.GuessCooldown(last, now, cooldown); err != nil {
		return nil, nil, "", err
	}

	stored := domain.Guess{ID: uuid.New(), RoundID: roundID, UserID: userID, Text: guess, CreatedAt: now}
	stored.IsCorrect = round.ApplyGuess(guess)
	round.Guesses = append(round.Guesses, stored)
	copied := *round
	return &stored, &copied, room.Code, nil
}

func (m *memoryRepository) SurrenderRound(ctx context.Context, roundID, userID uuid.UUID) (*domain.SongRound, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	round, room, err := m.round(roundID)
	if err != nil {
		return nil, "", err
	}
	seat, err := room.RequireSeat(userID)
	if err != nil {
		return nil, "", err
	}
	if err := round.Surrender(seat); err != nil {
		return nil, "", err
	}
	copied := *round
	return &copied, room.Code, nil
}

func (m *memoryRepository) CurrentSongRound(ctx context.Context, roomID uuid.UUID) (*domain.SongRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if active := m.activeRound(roomID); active != nil {
		copied := *active
		return &copied, nil
	}
	for i := len(m.rounds) - 1; i >= 0; i-- {
		if m.rounds[i].RoomID == roomID {
			copied := *m.rounds[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) SongHistory(ctx context.Context, roomID uuid.UUID) ([]domain.SongRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SongRound{}
	for i := len(m.rounds) - 1; i >= 0; i-- {
		if r := m.rounds[i]; r.RoomID == roomID {
			copied := *r
			copied.Guesses = slices.Clone(r.Guesses)
			out = append(out, copied)
		}
	}
	return out, nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, roomCode, eventType string, data map[string]any) {
	m.Called(ctx, roomCode, eventType, data)
}

// events returns the event types published so far, in order.
func (m *mockNotifier) events() []string {
	var out []string
	for _, call := range m.Calls {
		out = append(out, call.Arguments.String(2))
	}
	return out
}

func newRecordingNotifier() *mockNotifier {
	n := &mockNotifier{}
	n.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return n
}

type mockTrackSource struct {
	mock.Mock
}

func (m *mockTrackSource) RandomTrack(ctx context.Context) (*domain.Track, error) {
	args := m.Called(ctx)
	track, _ := args.Get(0).(*domain.Track)
	return track, args.Error(1)
}
