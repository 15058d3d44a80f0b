package executor_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladies-sauna/ls-api/internal/api/shared/dto"
	"github.com/ladies-sauna/ls-api/internal/api/shared/executor"
	apierrors "github.com/ladies-sauna/ls-api/internal/api/shared/errors"
	"github.com/ladies-sauna/ls-api/internal/domain"
	"github.com/ladies-sauna/ls-api/internal/mocks"
	"github.com/ladies-sauna/ls-api/internal/store"
	"github.com/ladies-sauna/ls-api/internal/store/schema"
)

const testJWTSecret = "test-secret"

func newTestExecutor(t *testing.T) (*mocks.MockStore, *mocks.MockClock, executor.Executor) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	return mockStore, mockClock, executor.NewExecutor(mockStore, mockClock, testJWTSecret)
}

func asAPIError(t *testing.T, err error) *apierrors.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok, "expected *apierrors.APIError, got %T", err)
	return apiErr
}

func TestCreateLadiesDay(t *testing.T) {
	dayOfWeek := 3
	baseReq := dto.CreateLadiesDayRequest{
		SaunaID:    "sauna-1",
		DayOfWeek:  &dayOfWeek,
		SourceType: domain.SourceTypeUser,
	}

	t.Run("seeds trust score from submitter", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1"}, nil)
		mockStore.EXPECT().GetUserByID(ctx, "user-1").Return(&schema.User{ID: "user-1", Username: "yuki", TrustScore: 4.2}, nil)
		mockStore.EXPECT().FindDuplicateLadiesDay(ctx, "sauna-1", &dayOfWeek, nil, "user-1").Return(nil, nil)

		var createdID string
		mockStore.EXPECT().CreateLadiesDay(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *schema.LadiesDay) error {
				createdID = entry.ID
				assert.NotEmpty(t, entry.ID)
				assert.Equal(t, "sauna-1", entry.SaunaID)
				assert.Equal(t, &dayOfWeek, entry.DayOfWeek)
				assert.Nil(t, entry.SpecificDate)
				assert.Equal(t, domain.SourceTypeUser, entry.SourceType)
				require.NotNil(t, entry.SourceUserID)
				assert.Equal(t, "user-1", *entry.SourceUserID)
				assert.Equal(t, 4.2, entry.TrustScore)
				assert.Equal(t, 0, entry.SupportCount)
				assert.Equal(t, 0, entry.OppositionCount)
				return nil
			})
		mockStore.EXPECT().IncrementUserContribution(ctx, "user-1").Return(nil)
		mockStore.EXPECT().GetLadiesDayWithRelations(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (*schema.LadiesDay, error) {
				assert.Equal(t, createdID, id)
				return &schema.LadiesDay{
					ID:         id,
					SaunaID:    "sauna-1",
					DayOfWeek:  &dayOfWeek,
					SourceType: domain.SourceTypeUser,
					TrustScore: 4.2,
					Sauna:      &schema.Sauna{ID: "sauna-1", Name: "Yukari no Yu"},
					SourceUser: &schema.User{Username: "yuki", TrustScore: 4.2},
				}, nil
			})

		resp, err := exec.CreateLadiesDay(ctx, "user-1", baseReq)
		require.NoError(t, err)
		assert.Equal(t, "Ladies day information added successfully", resp.Message)
		assert.Equal(t, 4.2, resp.LadiesDay.TrustScore)
		require.NotNil(t, resp.LadiesDay.SourceUser)
		assert.Equal(t, "yuki", resp.LadiesDay.SourceUser.Username)
	})

	t.Run("rejects duplicate submission with colliding id", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1"}, nil)
		mockStore.EXPECT().GetUserByID(ctx, "user-1").Return(&schema.User{ID: "user-1", TrustScore: 3.0}, nil)
		mockStore.EXPECT().FindDuplicateLadiesDay(ctx, "sauna-1", &dayOfWeek, nil, "user-1").
			Return(&schema.LadiesDay{ID: "existing-entry"}, nil)

		_, err := exec.CreateLadiesDay(ctx, "user-1", baseReq)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
		assert.Equal(t, "existing-entry", apiErr.DuplicateID)
	})

	t.Run("rejects both temporal keys", func(t *testing.T) {
		_, _, exec := newTestExecutor(t)

		req := baseReq
		req.SpecificDate = "2026-03-04"

		_, err := exec.CreateLadiesDay(context.Background(), "user-1", req)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	})

	t.Run("rejects missing temporal key", func(t *testing.T) {
		_, _, exec := newTestExecutor(t)

		req := dto.CreateLadiesDayRequest{SaunaID: "sauna-1", SourceType: domain.SourceTypeUser}

		_, err := exec.CreateLadiesDay(context.Background(), "user-1", req)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	})

	t.Run("unknown sauna", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(nil, nil)

		_, err := exec.CreateLadiesDay(ctx, "user-1", baseReq)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
	})
}

func TestVoteLadiesDay(t *testing.T) {
	entry := func() *schema.LadiesDay {
		return &schema.LadiesDay{ID: "entry-1", SaunaID: "sauna-1", TrustScore: 4.0}
	}

	t.Run("first support vote lifts score to maximum", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetLadiesDayByID(ctx, "entry-1").Return(entry(), nil)
		mockStore.EXPECT().GetVote(ctx, "user-1", "entry-1").Return(nil, nil)
		mockStore.EXPECT().CreateVote(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, vote *schema.Vote) error {
				assert.NotEmpty(t, vote.ID)
				assert.Equal(t, "user-1", vote.UserID)
				assert.Equal(t, "entry-1", vote.LadiesDayID)
				assert.Equal(t, domain.VoteTypeSupport, vote.VoteType)
				return nil
			})
		mockStore.EXPECT().ListVotesByLadiesDay(ctx, "entry-1").Return([]schema.Vote{
			{VoteType: domain.VoteTypeSupport},
		}, nil)
		mockStore.EXPECT().UpdateLadiesDayScore(ctx, "entry-1", 1, 0, 5.0).Return(nil)

		resp, err := exec.VoteLadiesDay(ctx, "user-1", "entry-1", domain.VoteTypeSupport)
		require.NoError(t, err)
		assert.Equal(t, "Vote recorded successfully", resp.Message)
		assert.Equal(t, 1, resp.SupportCount)
		assert.Equal(t, 0, resp.OppositionCount)
		assert.Equal(t, 5.0, resp.TrustScore)
	})

	t.Run("repeating the same vote is rejected", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetLadiesDayByID(ctx, "entry-1").Return(entry(), nil)
		mockStore.EXPECT().GetVote(ctx, "user-1", "entry-1").
			Return(&schema.Vote{ID: "vote-1", VoteType: domain.VoteTypeSupport}, nil)

		_, err := exec.VoteLadiesDay(ctx, "user-1", "entry-1", domain.VoteTypeSupport)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
		assert.Equal(t, "vote-1", apiErr.DuplicateID)
	})

	t.Run("opposite vote flips in place and recomputes", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetLadiesDayByID(ctx, "entry-1").Return(entry(), nil)
		mockStore.EXPECT().GetVote(ctx, "user-1", "entry-1").
			Return(&schema.Vote{ID: "vote-1", VoteType: domain.VoteTypeSupport}, nil)
		mockStore.EXPECT().UpdateVoteType(ctx, "vote-1", domain.VoteTypeOppose).Return(nil)
		mockStore.EXPECT().ListVotesByLadiesDay(ctx, "entry-1").Return([]schema.Vote{
			{VoteType: domain.VoteTypeOppose},
			{VoteType: domain.VoteTypeSupport},
		}, nil)
		mockStore.EXPECT().UpdateLadiesDayScore(ctx, "entry-1", 1, 1, 2.5).Return(nil)

		resp, err := exec.VoteLadiesDay(ctx, "user-1", "entry-1", domain.VoteTypeOppose)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.SupportCount)
		assert.Equal(t, 1, resp.OppositionCount)
		assert.Equal(t, 2.5, resp.TrustScore)
	})

	t.Run("all opposing votes drop score to zero", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetLadiesDayByID(ctx, "entry-1").Return(entry(), nil)
		mockStore.EXPECT().GetVote(ctx, "user-2", "entry-1").Return(nil, nil)
		mockStore.EXPECT().CreateVote(ctx, gomock.Any()).Return(nil)
		mockStore.EXPECT().ListVotesByLadiesDay(ctx, "entry-1").Return([]schema.Vote{
			{VoteType: domain.VoteTypeOppose},
			{VoteType: domain.VoteTypeOppose},
		}, nil)
		mockStore.EXPECT().UpdateLadiesDayScore(ctx, "entry-1", 0, 2, 0.0).Return(nil)

		resp, err := exec.VoteLadiesDay(ctx, "user-2", "entry-1", domain.VoteTypeOppose)
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.TrustScore)
	})

	t.Run("unknown entry", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetLadiesDayByID(ctx, "missing").Return(nil, nil)

		_, err := exec.VoteLadiesDay(ctx, "user-1", "missing", domain.VoteTypeSupport)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
	})

	t.Run("unknown vote type is rejected before any lookup", func(t *testing.T) {
		_, _, exec := newTestExecutor(t)
		ctx := context.Background()

		_, err := exec.VoteLadiesDay(ctx, "user-1", "entry-1", domain.VoteType("MAYBE"))
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	})
}

func TestTodaysLadiesDays(t *testing.T) {
	mockStore, mockClock, exec := newTestExecutor(t)
	ctx := context.Background()

	// A Wednesday
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(now)

	mockStore.EXPECT().ListTodaysLadiesDays(ctx, 3, gomock.Any()).Return([]*schema.LadiesDay{
		{
			ID:         "entry-1",
			SaunaID:    "sauna-1",
			TrustScore: 4.5,
			Sauna:      &schema.Sauna{ID: "sauna-1", Name: "Mori no Sauna", Latitude: 35.0, Longitude: 139.0, PriceRange: "1000-2000円", Rating: 4.1},
		},
	}, nil)

	resp, err := exec.TodaysLadiesDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", resp.Date)
	assert.Equal(t, 3, resp.DayOfWeek)
	require.Len(t, resp.LadiesDays, 1)

	// The today view carries venue location and pricing
	sauna := resp.LadiesDays[0].Sauna
	require.NotNil(t, sauna)
	require.NotNil(t, sauna.Latitude)
	assert.Equal(t, 35.0, *sauna.Latitude)
	assert.Equal(t, "1000-2000円", sauna.PriceRange)
}

func TestListSaunas_ProximitySort(t *testing.T) {
	mockStore, _, exec := newTestExecutor(t)
	ctx := context.Background()

	mockStore.EXPECT().ListSaunas(ctx, store.SaunaQueryFilter{Limit: 20, Offset: 0}).Return([]*schema.Sauna{
		// Osaka, far from the searcher
		{ID: "far", Latitude: 34.6937, Longitude: 135.5023},
		// Shinjuku, close by
		{ID: "near", Latitude: 35.6896, Longitude: 139.7006},
	}, int64(2), nil)

	lat, lng := 35.6580, 139.7016 // Shibuya
	resp, err := exec.ListSaunas(ctx, executor.ListSaunasParams{Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)

	require.Len(t, resp.Saunas, 2)
	assert.Equal(t, "near", resp.Saunas[0].ID)
	assert.Equal(t, "far", resp.Saunas[1].ID)
	require.NotNil(t, resp.Saunas[0].Distance)
	assert.Less(t, *resp.Saunas[0].Distance, *resp.Saunas[1].Distance)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestToggleFavorite(t *testing.T) {
	t.Run("adds when absent", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1"}, nil)
		mockStore.EXPECT().GetFavorite(ctx, "user-1", "sauna-1").Return(nil, nil)
		mockStore.EXPECT().CreateFavorite(ctx, gomock.Any()).Return(nil)

		resp, err := exec.ToggleFavorite(ctx, "user-1", "sauna-1")
		require.NoError(t, err)
		assert.True(t, resp.IsFavorited)
	})

	t.Run("removes when present", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1"}, nil)
		mockStore.EXPECT().GetFavorite(ctx, "user-1", "sauna-1").Return(&schema.Favorite{ID: "fav-1"}, nil)
		mockStore.EXPECT().DeleteFavorite(ctx, "fav-1").Return(nil)

		resp, err := exec.ToggleFavorite(ctx, "user-1", "sauna-1")
		require.NoError(t, err)
		assert.False(t, resp.IsFavorited)
	})
}

func TestCreateReview(t *testing.T) {
	req := dto.CreateReviewRequest{
		SaunaID:   "sauna-1",
		Rating:    4,
		Title:     "Great ladies day",
		Content:   "Quiet and clean on Wednesday evenings.",
		VisitDate: "2026-02-25",
	}

	t.Run("re-averages the sauna rating", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1", Name: "Mori no Sauna"}, nil)
		mockStore.EXPECT().GetUserByID(ctx, "user-1").Return(&schema.User{ID: "user-1", Username: "yuki"}, nil)
		mockStore.EXPECT().FindReviewByUserAndSauna(ctx, "user-1", "sauna-1").Return(nil, nil)
		mockStore.EXPECT().CreateReview(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, review *schema.Review) error {
				assert.Equal(t, 4, review.Rating)
				assert.Equal(t, domain.VisibilityPublic, review.Visibility)
				return nil
			})
		mockStore.EXPECT().ListPublicReviewRatings(ctx, "sauna-1").Return([]int{4, 2}, nil)
		mockStore.EXPECT().UpdateSaunaRating(ctx, "sauna-1", 3.0, 2).Return(nil)
		mockStore.EXPECT().IncrementUserContribution(ctx, "user-1").Return(nil)

		resp, err := exec.CreateReview(ctx, "user-1", req)
		require.NoError(t, err)
		assert.Equal(t, "Review posted successfully", resp.Message)
		require.NotNil(t, resp.Review.User)
		assert.Equal(t, "yuki", resp.Review.User.Username)
	})

	t.Run("one review per sauna", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetSaunaByID(ctx, "sauna-1").Return(&schema.Sauna{ID: "sauna-1"}, nil)
		mockStore.EXPECT().GetUserByID(ctx, "user-1").Return(&schema.User{ID: "user-1"}, nil)
		mockStore.EXPECT().FindReviewByUserAndSauna(ctx, "user-1", "sauna-1").
			Return(&schema.Review{ID: "review-1"}, nil)

		_, err := exec.CreateReview(ctx, "user-1", req)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
		assert.Equal(t, "review-1", apiErr.DuplicateID)
	})
}

func TestUpdateReview_OwnerOnly(t *testing.T) {
	mockStore, _, exec := newTestExecutor(t)
	ctx := context.Background()

	rating := 5
	mockStore.EXPECT().GetReviewByID(ctx, "review-1").
		Return(&schema.Review{ID: "review-1", UserID: "someone-else"}, nil)

	_, err := exec.UpdateReview(ctx, "user-1", "review-1", dto.UpdateReviewRequest{Rating: &rating})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeForbidden, apiErr.Code)
}

func TestDeleteReview_ReaveragesAfterDelete(t *testing.T) {
	mockStore, _, exec := newTestExecutor(t)
	ctx := context.Background()

	mockStore.EXPECT().GetReviewByID(ctx, "review-1").
		Return(&schema.Review{ID: "review-1", UserID: "user-1", SaunaID: "sauna-1"}, nil)
	mockStore.EXPECT().DeleteReview(ctx, "review-1").Return(nil)
	mockStore.EXPECT().ListPublicReviewRatings(ctx, "sauna-1").Return([]int{}, nil)
	mockStore.EXPECT().UpdateSaunaRating(ctx, "sauna-1", 0.0, 0).Return(nil)

	err := exec.DeleteReview(ctx, "user-1", "review-1")
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "yuki",
		Email:    "yuki@example.com",
		Password: "correct horse battery staple",
	}

	t.Run("creates account with default trust score", func(t *testing.T) {
		mockStore, mockClock, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetUserByEmail(ctx, "yuki@example.com").Return(nil, nil)
		mockStore.EXPECT().GetUserByUsername(ctx, "yuki").Return(nil, nil)
		mockStore.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *schema.User) error {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, domain.DefaultUserTrustScore, user.TrustScore)
				assert.NotEqual(t, req.Password, user.PasswordHash)
				return nil
			})
		mockClock.EXPECT().Now().Return(time.Now())

		resp, err := exec.Register(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "yuki", resp.User.Username)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		mockStore, _, exec := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().GetUserByEmail(ctx, "yuki@example.com").
			Return(&schema.User{ID: "user-1"}, nil)

		_, err := exec.Register(ctx, req)
		apiErr := asAPIError(t, err)
		assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
	})
}

func TestLogin_WrongPassword(t *testing.T) {
	mockStore, _, exec := newTestExecutor(t)
	ctx := context.Background()

	mockStore.EXPECT().GetUserByEmail(ctx, "yuki@example.com").Return(&schema.User{
		ID:           "user-1",
		Email:        "yuki@example.com",
		PasswordHash: "$2a$10$invalidhashinvalidhashinvalidhashinvalidhashinvalidha",
	}, nil)

	_, err := exec.Login(ctx, dto.LoginRequest{Email: "yuki@example.com", Password: "wrong"})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, apiErr.Code)
}
