package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/utilities"
)

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUser(user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) DeleteUser(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) EmailTakenByOther(email string, userID uint) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func seedUser(repo *fakeUserRepo) *model.User {
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "hashed"}
	_ = repo.CreateUser(user)
	return user
}

func TestGetProfileStripsPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	seeded := seedUser(userRepo)
	svc := NewUserService(userRepo, newFakeSessionRepo(), &fakeHistoryRepo{})

	user, err := svc.GetProfile(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Empty(t, user.Password)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakeSessionRepo(), &fakeHistoryRepo{})

	_, err := svc.GetProfile(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileEmailChangeIssuesToken(t *testing.T) {
	utilities.InitJWT("test-secret", time.Hour)

	userRepo := newFakeUserRepo()
	seeded := seedUser(userRepo)
	svc := NewUserService(userRepo, newFakeSessionRepo(), &fakeHistoryRepo{})

	user, token, err := svc.UpdateProfile(seeded.ID, "Ada L", "ada.l@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada L", user.Name)
	assert.Equal(t, "ada.l@example.com", user.Email)
	assert.NotEmpty(t, token)

	claims, err := utilities.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada.l@example.com", claims.Email)
}

func TestUpdateProfileSameEmailNoToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	seeded := seedUser(userRepo)
	svc := NewUserService(userRepo, newFakeSessionRepo(), &fakeHistoryRepo{})

	_, token, err := svc.UpdateProfile(seeded.ID, "Ada Lovelace", seeded.Email)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	userRepo := newFakeUserRepo()
	seeded := seedUser(userRepo)
	_ = userRepo.CreateUser(&model.User{Name: "Bob", Email: "bob@example.com"})
	svc := NewUserService(userRepo, newFakeSessionRepo(), &fakeHistoryRepo{})

	_, _, err := svc.UpdateProfile(seeded.ID, "Ada", "bob@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteAccountRemovesOwnedData(t *testing.T) {
	userRepo := newFakeUserRepo()
	seeded := seedUser(userRepo)
	sessionRepo := newFakeSessionRepo()
	sessionRepo.sessions["s1"] = &model.InterviewSession{ID: "s1", UserID: seeded.ID}
	svc := NewUserService(userRepo, sessionRepo, &fakeHistoryRepo{})

	require.NoError(t, svc.DeleteAccount(context.Background(), seeded.ID))

	assert.Empty(t, sessionRepo.sessions)
	u, _ := userRepo.GetUserByID(seeded.ID)
	assert.Nil(t, u)
}

func TestGetSessionsProjection(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	sessionRepo.sessions["s1"] = &model.InterviewSession{
		ID: "s1", UserID: 1, Topic: "Go", Difficulty: model.DifficultyEasy,
		Questions: []model.Question{
			{ID: "q1", AnswerText: "done"},
			{ID: "q2"},
		},
		CurrentQuestionIndex: 1,
	}
	sessionRepo.sessions["s2"] = &model.InterviewSession{
		ID: "s2", UserID: 1, Topic: "SQL",
		Questions:            []model.Question{{ID: "q1", AnswerText: "done"}},
		CurrentQuestionIndex: 1,
		SessionFeedback:      &model.Feedback{Accuracy: 82.4},
	}
	svc := NewUserService(newFakeUserRepo(), sessionRepo, &fakeHistoryRepo{})

	summaries, err := svc.GetSessions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]SessionSummary{}
	for _, s := range summaries {
		byID[s.ID] = s
	}

	assert.Equal(t, "in-progress", byID["s1"].Status)
	assert.Equal(t, 2, byID["s1"].TotalQuestions)
	assert.Equal(t, 1, byID["s1"].CompletedQuestions)
	assert.Equal(t, 0, byID["s1"].Score)

	assert.Equal(t, "completed", byID["s2"].Status)
	assert.Equal(t, 82, byID["s2"].Score)
}

func TestGetStats(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	sessionRepo.sessions["s1"] = &model.InterviewSession{
		ID: "s1", UserID: 1, Topic: "Go",
		Questions:            []model.Question{{AnswerText: "a"}, {AnswerText: "b"}},
		CurrentQuestionIndex: 2,
		SessionFeedback:      &model.Feedback{Accuracy: 80},
	}
	sessionRepo.sessions["s2"] = &model.InterviewSession{
		ID: "s2", UserID: 1, Topic: "Go",
		Questions:            []model.Question{{AnswerText: "a"}},
		CurrentQuestionIndex: 1,
		SessionFeedback:      &model.Feedback{Accuracy: 60},
	}
	sessionRepo.sessions["s3"] = &model.InterviewSession{
		ID: "s3", UserID: 1, Topic: "SQL",
		Questions: []model.Question{{}, {}},
	}
	svc := NewUserService(newFakeUserRepo(), sessionRepo, &fakeHistoryRepo{})

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 2, stats.CompletedSessions)
	assert.Equal(t, 3, stats.TotalQuestions)
	assert.Equal(t, 70, stats.AverageScore)
	assert.Equal(t, []string{"Go", "SQL"}, stats.FavoriteTopics)
}

func TestFavoriteTopicsOrdering(t *testing.T) {
	topics := favoriteTopics(map[string]int{
		"Go": 2, "SQL": 2, "Rust": 5, "Java": 1,
	}, 3)

	assert.Equal(t, []string{"Rust", "Go", "SQL"}, topics)
}
