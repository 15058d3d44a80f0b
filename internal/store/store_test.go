package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ladies-sauna/ls-api/internal/domain"
	"github.com/ladies-sauna/ls-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestUser creates a test user with a unique username and email
func buildTestUser(name string) *schema.User {
	suffix := uuid.NewString()[:8]
	return &schema.User{
		ID:           uuid.NewString(),
		Username:     name + "_" + suffix,
		Email:        name + "_" + suffix + "@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		TrustScore:   domain.DefaultUserTrustScore,
	}
}

// buildTestSauna creates a test sauna input
func buildTestSauna(name string) *schema.Sauna {
	return &schema.Sauna{
		ID:         uuid.NewString(),
		Name:       name,
		Address:    "1-2-3 Test, Shibuya, Tokyo",
		Latitude:   35.658,
		Longitude:  139.701,
		PriceRange: "1000-2000円",
	}
}

// buildTestLadiesDay creates a weekly recurring entry for the given sauna and submitter
func buildTestLadiesDay(saunaID string, userID string, dayOfWeek int) *schema.LadiesDay {
	start := "10:00"
	end := "22:00"
	return &schema.LadiesDay{
		ID:           uuid.NewString(),
		SaunaID:      saunaID,
		DayOfWeek:    &dayOfWeek,
		StartTime:    &start,
		EndTime:      &end,
		SourceType:   domain.SourceTypeUser,
		SourceUserID: &userID,
		TrustScore:   domain.DefaultUserTrustScore,
	}
}

// buildTestReview creates a public review of the given sauna by the given user
func buildTestReview(saunaID, userID string, rating int) *schema.Review {
	return &schema.Review{
		ID:         uuid.NewString(),
		SaunaID:    saunaID,
		UserID:     userID,
		Rating:     rating,
		Title:      "Great sauna",
		Content:    "Nice löyly, quiet rest area.",
		VisitDate:  time.Now().UTC().AddDate(0, 0, -1),
		Visibility: domain.VisibilityPublic,
	}
}

// dateOf builds a datatypes.Date at day granularity
func dateOf(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and look up by id, email and username", func(t *testing.T) {
		user := buildTestUser("lookup")
		require.NoError(t, store.CreateUser(ctx, user))

		byID, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, user.Username, byID.Username)
		assert.Equal(t, user.Email, byID.Email)
		assert.Equal(t, domain.DefaultUserTrustScore, byID.TrustScore)
		assert.False(t, byID.IsVerified)

		byEmail, err := store.GetUserByEmail(ctx, user.Email)
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		byUsername, err := store.GetUserByUsername(ctx, user.Username)
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, user.ID, byUsername.ID)
	})

	t.Run("absent users return nil without error", func(t *testing.T) {
		byID, err := store.GetUserByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, byID)

		byEmail, err := store.GetUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, byEmail)
	})

	t.Run("increment contribution count", func(t *testing.T) {
		user := buildTestUser("contributor")
		require.NoError(t, store.CreateUser(ctx, user))

		require.NoError(t, store.IncrementUserContribution(ctx, user.ID))
		require.NoError(t, store.IncrementUserContribution(ctx, user.ID))

		updated, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 2, updated.ContributionCount)
	})
}

// =============================================================================
// Test: Saunas
// =============================================================================

func testSaunas(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create with nested facilities", func(t *testing.T) {
		sauna := buildTestSauna("Facility Sauna")
		temp := 90.0
		sauna.Facilities = []schema.Facility{
			{ID: uuid.NewString(), Name: "フィンランドサウナ", Category: domain.FacilityCategorySauna, Temperature: &temp},
			{ID: uuid.NewString(), Name: "水風呂", Category: domain.FacilityCategoryBath},
		}
		require.NoError(t, store.CreateSauna(ctx, sauna))

		detail, err := store.GetSaunaDetail(ctx, sauna.ID, 10)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, sauna.Name, detail.Name)
		assert.Len(t, detail.Facilities, 2)
	})

	t.Run("absent sauna returns nil without error", func(t *testing.T) {
		sauna, err := store.GetSaunaByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, sauna)

		detail, err := store.GetSaunaDetail(ctx, uuid.NewString(), 10)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("detail only preloads public reviews", func(t *testing.T) {
		sauna := buildTestSauna("Review Visibility Sauna")
		require.NoError(t, store.CreateSauna(ctx, sauna))

		author := buildTestUser("reviewer")
		require.NoError(t, store.CreateUser(ctx, author))
		lurker := buildTestUser("lurker")
		require.NoError(t, store.CreateUser(ctx, lurker))

		public := buildTestReview(sauna.ID, author.ID, 5)
		require.NoError(t, store.CreateReview(ctx, public))

		private := buildTestReview(sauna.ID, lurker.ID, 1)
		private.Visibility = domain.VisibilityPrivate
		require.NoError(t, store.CreateReview(ctx, private))

		detail, err := store.GetSaunaDetail(ctx, sauna.ID, 10)
		require.NoError(t, err)
		require.NotNil(t, detail)
		require.Len(t, detail.Reviews, 1)
		assert.Equal(t, public.ID, detail.Reviews[0].ID)
		require.NotNil(t, detail.Reviews[0].User)
		assert.Equal(t, author.Username, detail.Reviews[0].User.Username)
	})

	t.Run("list orders by rating then review count and reports total", func(t *testing.T) {
		low := buildTestSauna("Low Rated")
		require.NoError(t, store.CreateSauna(ctx, low))
		high := buildTestSauna("High Rated")
		require.NoError(t, store.CreateSauna(ctx, high))

		require.NoError(t, store.UpdateSaunaRating(ctx, low.ID, 2.5, 4))
		require.NoError(t, store.UpdateSaunaRating(ctx, high.ID, 4.8, 12))

		saunas, total, err := store.ListSaunas(ctx, SaunaQueryFilter{Limit: 100})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(2))

		posOf := func(id string) int {
			for i, s := range saunas {
				if s.ID == id {
					return i
				}
			}
			return -1
		}
		require.GreaterOrEqual(t, posOf(high.ID), 0)
		require.GreaterOrEqual(t, posOf(low.ID), 0)
		assert.Less(t, posOf(high.ID), posOf(low.ID))
	})

	t.Run("filter by ladies day presence and facility name", func(t *testing.T) {
		plain := buildTestSauna("Plain Sauna")
		require.NoError(t, store.CreateSauna(ctx, plain))

		equipped := buildTestSauna("Equipped Sauna")
		equipped.Facilities = []schema.Facility{
			{ID: uuid.NewString(), Name: "ロウリュ", Category: domain.FacilityCategorySauna},
		}
		require.NoError(t, store.CreateSauna(ctx, equipped))

		submitter := buildTestUser("submitter")
		require.NoError(t, store.CreateUser(ctx, submitter))
		entry := buildTestLadiesDay(equipped.ID, submitter.ID, 3)
		require.NoError(t, store.CreateLadiesDay(ctx, entry))

		withLD, _, err := store.ListSaunas(ctx, SaunaQueryFilter{HasLadiesDay: true, Limit: 100})
		require.NoError(t, err)
		ids := make(map[string]bool)
		for _, s := range withLD {
			ids[s.ID] = true
		}
		assert.True(t, ids[equipped.ID])
		assert.False(t, ids[plain.ID])

		withFacility, _, err := store.ListSaunas(ctx, SaunaQueryFilter{Facilities: []string{"ロウリュ"}, Limit: 100})
		require.NoError(t, err)
		require.Len(t, withFacility, 1)
		assert.Equal(t, equipped.ID, withFacility[0].ID)
	})

	t.Run("counts for reviews and favorites", func(t *testing.T) {
		sauna := buildTestSauna("Counted Sauna")
		require.NoError(t, store.CreateSauna(ctx, sauna))

		fan := buildTestUser("fan")
		require.NoError(t, store.CreateUser(ctx, fan))

		require.NoError(t, store.CreateReview(ctx, buildTestReview(sauna.ID, fan.ID, 4)))
		require.NoError(t, store.CreateFavorite(ctx, &schema.Favorite{
			ID:      uuid.NewString(),
			UserID:  fan.ID,
			SaunaID: sauna.ID,
		}))

		reviewCount, err := store.CountSaunaReviews(ctx, sauna.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), reviewCount)

		favoriteCount, err := store.CountSaunaFavorites(ctx, sauna.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), favoriteCount)
	})
}

// =============================================================================
// Test: Ladies Days
// =============================================================================

func testLadiesDays(t *testing.T, store Store) {
	ctx := context.Background()

	sauna := buildTestSauna("Ladies Day Sauna")
	require.NoError(t, store.CreateSauna(ctx, sauna))
	submitter := buildTestUser("ld_submitter")
	require.NoError(t, store.CreateUser(ctx, submitter))

	t.Run("create and fetch with relations", func(t *testing.T) {
		entry := buildTestLadiesDay(sauna.ID, submitter.ID, 2)
		require.NoError(t, store.CreateLadiesDay(ctx, entry))

		got, err := store.GetLadiesDayWithRelations(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.DayOfWeek)
		assert.Equal(t, 2, *got.DayOfWeek)
		require.NotNil(t, got.Sauna)
		assert.Equal(t, sauna.Name, got.Sauna.Name)
		require.NotNil(t, got.SourceUser)
		assert.Equal(t, submitter.Username, got.SourceUser.Username)
	})

	t.Run("duplicate lookup matches the temporal key exactly", func(t *testing.T) {
		weekly := buildTestLadiesDay(sauna.ID, submitter.ID, 5)
		require.NoError(t, store.CreateLadiesDay(ctx, weekly))

		date := dateOf(2026, time.September, 12)
		oneTime := buildTestLadiesDay(sauna.ID, submitter.ID, 0)
		oneTime.DayOfWeek = nil
		oneTime.SpecificDate = &date
		require.NoError(t, store.CreateLadiesDay(ctx, oneTime))

		sameDay := 5
		dup, err := store.FindDuplicateLadiesDay(ctx, sauna.ID, &sameDay, nil, submitter.ID)
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, weekly.ID, dup.ID)

		dup, err = store.FindDuplicateLadiesDay(ctx, sauna.ID, nil, &date, submitter.ID)
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, oneTime.ID, dup.ID)

		// A different weekday is not a duplicate
		otherDay := 6
		dup, err = store.FindDuplicateLadiesDay(ctx, sauna.ID, &otherDay, nil, submitter.ID)
		require.NoError(t, err)
		assert.Nil(t, dup)

		// Neither is the same weekday from a different submitter
		other := buildTestUser("other_submitter")
		require.NoError(t, store.CreateUser(ctx, other))
		dup, err = store.FindDuplicateLadiesDay(ctx, sauna.ID, &sameDay, nil, other.ID)
		require.NoError(t, err)
		assert.Nil(t, dup)
	})

	t.Run("list orders by trust score then support count", func(t *testing.T) {
		venue := buildTestSauna("Ordering Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		trusted := buildTestLadiesDay(venue.ID, submitter.ID, 1)
		require.NoError(t, store.CreateLadiesDay(ctx, trusted))
		doubted := buildTestLadiesDay(venue.ID, submitter.ID, 4)
		require.NoError(t, store.CreateLadiesDay(ctx, doubted))

		require.NoError(t, store.UpdateLadiesDayScore(ctx, trusted.ID, 3, 0, 5.0))
		require.NoError(t, store.UpdateLadiesDayScore(ctx, doubted.ID, 1, 2, 1.7))

		entries, err := store.ListLadiesDays(ctx, LadiesDayQueryFilter{SaunaID: venue.ID})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, trusted.ID, entries[0].ID)
		assert.Equal(t, 3, entries[0].SupportCount)
		assert.Equal(t, 5.0, entries[0].TrustScore)
		assert.Equal(t, doubted.ID, entries[1].ID)
	})

	t.Run("list filters by weekday and date", func(t *testing.T) {
		venue := buildTestSauna("Filter Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		wednesday := buildTestLadiesDay(venue.ID, submitter.ID, 3)
		require.NoError(t, store.CreateLadiesDay(ctx, wednesday))

		date := dateOf(2026, time.October, 1)
		dated := buildTestLadiesDay(venue.ID, submitter.ID, 0)
		dated.DayOfWeek = nil
		dated.SpecificDate = &date
		require.NoError(t, store.CreateLadiesDay(ctx, dated))

		dow := 3
		entries, err := store.ListLadiesDays(ctx, LadiesDayQueryFilter{SaunaID: venue.ID, DayOfWeek: &dow})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, wednesday.ID, entries[0].ID)

		entries, err = store.ListLadiesDays(ctx, LadiesDayQueryFilter{SaunaID: venue.ID, SpecificDate: &date})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, dated.ID, entries[0].ID)
	})

	t.Run("todays view unions weekday recurrence and exact date", func(t *testing.T) {
		venue := buildTestSauna("Today Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		// 2026-03-04 is a Wednesday
		today := dateOf(2026, time.March, 4)

		recurring := buildTestLadiesDay(venue.ID, submitter.ID, 3)
		require.NoError(t, store.CreateLadiesDay(ctx, recurring))

		oneTime := buildTestLadiesDay(venue.ID, submitter.ID, 0)
		oneTime.DayOfWeek = nil
		oneTime.SpecificDate = &today
		require.NoError(t, store.CreateLadiesDay(ctx, oneTime))

		otherDate := dateOf(2026, time.March, 5)
		tomorrow := buildTestLadiesDay(venue.ID, submitter.ID, 0)
		tomorrow.DayOfWeek = nil
		tomorrow.SpecificDate = &otherDate
		require.NoError(t, store.CreateLadiesDay(ctx, tomorrow))

		require.NoError(t, store.UpdateLadiesDayScore(ctx, oneTime.ID, 2, 0, 4.9))

		entries, err := store.ListTodaysLadiesDays(ctx, 3, today)
		require.NoError(t, err)

		var ids []string
		for _, e := range entries {
			if e.SaunaID == venue.ID {
				ids = append(ids, e.ID)
			}
		}
		require.Len(t, ids, 2)
		assert.Equal(t, oneTime.ID, ids[0])
		assert.Equal(t, recurring.ID, ids[1])
	})
}

// =============================================================================
// Test: Votes
// =============================================================================

func testVotes(t *testing.T, store Store) {
	ctx := context.Background()

	sauna := buildTestSauna("Voting Sauna")
	require.NoError(t, store.CreateSauna(ctx, sauna))
	submitter := buildTestUser("vote_submitter")
	require.NoError(t, store.CreateUser(ctx, submitter))
	entry := buildTestLadiesDay(sauna.ID, submitter.ID, 6)
	require.NoError(t, store.CreateLadiesDay(ctx, entry))

	t.Run("create, fetch and flip a vote", func(t *testing.T) {
		voter := buildTestUser("voter")
		require.NoError(t, store.CreateUser(ctx, voter))

		none, err := store.GetVote(ctx, voter.ID, entry.ID)
		require.NoError(t, err)
		assert.Nil(t, none)

		vote := &schema.Vote{
			ID:          uuid.NewString(),
			UserID:      voter.ID,
			LadiesDayID: entry.ID,
			VoteType:    domain.VoteTypeSupport,
		}
		require.NoError(t, store.CreateVote(ctx, vote))

		got, err := store.GetVote(ctx, voter.ID, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, vote.ID, got.ID)
		assert.Equal(t, domain.VoteTypeSupport, got.VoteType)

		require.NoError(t, store.UpdateVoteType(ctx, vote.ID, domain.VoteTypeOppose))

		flipped, err := store.GetVote(ctx, voter.ID, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, flipped)
		assert.Equal(t, vote.ID, flipped.ID)
		assert.Equal(t, domain.VoteTypeOppose, flipped.VoteType)
	})

	t.Run("ledger returns every vote on the entry", func(t *testing.T) {
		for range 3 {
			voter := buildTestUser("ledger_voter")
			require.NoError(t, store.CreateUser(ctx, voter))
			require.NoError(t, store.CreateVote(ctx, &schema.Vote{
				ID:          uuid.NewString(),
				UserID:      voter.ID,
				LadiesDayID: entry.ID,
				VoteType:    domain.VoteTypeSupport,
			}))
		}

		votes, err := store.ListVotesByLadiesDay(ctx, entry.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(votes), 3)
		for _, v := range votes {
			assert.Equal(t, entry.ID, v.LadiesDayID)
		}
	})
}

// =============================================================================
// Test: Favorites
// =============================================================================

func testFavorites(t *testing.T, store Store) {
	ctx := context.Background()

	user := buildTestUser("favoriter")
	require.NoError(t, store.CreateUser(ctx, user))
	sauna := buildTestSauna("Favorite Sauna")
	require.NoError(t, store.CreateSauna(ctx, sauna))

	t.Run("create, fetch and delete", func(t *testing.T) {
		none, err := store.GetFavorite(ctx, user.ID, sauna.ID)
		require.NoError(t, err)
		assert.Nil(t, none)

		favorite := &schema.Favorite{
			ID:      uuid.NewString(),
			UserID:  user.ID,
			SaunaID: sauna.ID,
		}
		require.NoError(t, store.CreateFavorite(ctx, favorite))

		got, err := store.GetFavorite(ctx, user.ID, sauna.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, favorite.ID, got.ID)

		require.NoError(t, store.DeleteFavorite(ctx, favorite.ID))

		gone, err := store.GetFavorite(ctx, user.ID, sauna.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("list includes saunas and only todays ladies days", func(t *testing.T) {
		submitter := buildTestUser("fav_submitter")
		require.NoError(t, store.CreateUser(ctx, submitter))

		venue := buildTestSauna("Listed Favorite Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))
		require.NoError(t, store.CreateFavorite(ctx, &schema.Favorite{
			ID:      uuid.NewString(),
			UserID:  user.ID,
			SaunaID: venue.ID,
		}))

		// 2026-03-04 is a Wednesday
		today := dateOf(2026, time.March, 4)
		matching := buildTestLadiesDay(venue.ID, submitter.ID, 3)
		require.NoError(t, store.CreateLadiesDay(ctx, matching))
		offDay := buildTestLadiesDay(venue.ID, submitter.ID, 5)
		require.NoError(t, store.CreateLadiesDay(ctx, offDay))

		favorites, err := store.ListFavoritesWithSaunas(ctx, user.ID, 3, today)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		require.NotNil(t, favorites[0].Sauna)
		assert.Equal(t, venue.Name, favorites[0].Sauna.Name)
		require.Len(t, favorites[0].Sauna.LadiesDays, 1)
		assert.Equal(t, matching.ID, favorites[0].Sauna.LadiesDays[0].ID)
	})
}

// =============================================================================
// Test: Reviews
// =============================================================================

func testReviews(t *testing.T, store Store) {
	ctx := context.Background()

	author := buildTestUser("review_author")
	require.NoError(t, store.CreateUser(ctx, author))
	sauna := buildTestSauna("Reviewed Sauna")
	require.NoError(t, store.CreateSauna(ctx, sauna))

	t.Run("create and find by author and sauna", func(t *testing.T) {
		none, err := store.FindReviewByUserAndSauna(ctx, author.ID, sauna.ID)
		require.NoError(t, err)
		assert.Nil(t, none)

		review := buildTestReview(sauna.ID, author.ID, 4)
		require.NoError(t, store.CreateReview(ctx, review))

		got, err := store.FindReviewByUserAndSauna(ctx, author.ID, sauna.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, review.ID, got.ID)
		assert.Equal(t, 4, got.Rating)
	})

	t.Run("public listing hides private reviews, author listing shows them", func(t *testing.T) {
		venue := buildTestSauna("Mixed Visibility Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		public := buildTestReview(venue.ID, author.ID, 5)
		require.NoError(t, store.CreateReview(ctx, public))

		other := buildTestUser("private_author")
		require.NoError(t, store.CreateUser(ctx, other))
		private := buildTestReview(venue.ID, other.ID, 2)
		private.Visibility = domain.VisibilityPrivate
		require.NoError(t, store.CreateReview(ctx, private))

		publicOnly, total, err := store.ListReviews(ctx, ReviewQueryFilter{SaunaID: venue.ID, PublicOnly: true, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, publicOnly, 1)
		assert.Equal(t, public.ID, publicOnly[0].ID)
		require.NotNil(t, publicOnly[0].User)
		assert.Equal(t, author.Username, publicOnly[0].User.Username)

		own, total, err := store.ListReviews(ctx, ReviewQueryFilter{UserID: other.ID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, own, 1)
		assert.Equal(t, private.ID, own[0].ID)
	})

	t.Run("ratings pluck only covers public reviews", func(t *testing.T) {
		venue := buildTestSauna("Rated Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		first := buildTestUser("rater_one")
		require.NoError(t, store.CreateUser(ctx, first))
		require.NoError(t, store.CreateReview(ctx, buildTestReview(venue.ID, first.ID, 5)))

		second := buildTestUser("rater_two")
		require.NoError(t, store.CreateUser(ctx, second))
		require.NoError(t, store.CreateReview(ctx, buildTestReview(venue.ID, second.ID, 3)))

		third := buildTestUser("rater_three")
		require.NoError(t, store.CreateUser(ctx, third))
		hidden := buildTestReview(venue.ID, third.ID, 1)
		hidden.Visibility = domain.VisibilityPrivate
		require.NoError(t, store.CreateReview(ctx, hidden))

		ratings, err := store.ListPublicReviewRatings(ctx, venue.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{5, 3}, ratings)
	})

	t.Run("update and delete", func(t *testing.T) {
		venue := buildTestSauna("Edited Sauna")
		require.NoError(t, store.CreateSauna(ctx, venue))

		review := buildTestReview(venue.ID, author.ID, 3)
		require.NoError(t, store.CreateReview(ctx, review))

		review.Rating = 5
		review.Title = "Changed my mind"
		require.NoError(t, store.UpdateReview(ctx, review))

		updated, err := store.GetReviewByID(ctx, review.ID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 5, updated.Rating)
		assert.Equal(t, "Changed my mind", updated.Title)

		require.NoError(t, store.DeleteReview(ctx, review.ID))

		gone, err := store.GetReviewByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"Saunas", testSaunas},
		{"LadiesDays", testLadiesDays},
		{"Votes", testVotes},
		{"Favorites", testFavorites},
		{"Reviews", testReviews},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
