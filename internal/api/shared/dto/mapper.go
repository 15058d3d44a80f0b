package dto

import (
	"time"

	"github.com/ladies-sauna/ls-api/internal/store/schema"
)

// MapLadiesDayToDTO converts a ladies day row (with whatever relations are
// loaded) to its response shape. includeVenueDetail controls whether the
// sauna summary carries location and pricing fields, as the today view does.
func MapLadiesDayToDTO(entry *schema.LadiesDay, includeVenueDetail bool) LadiesDayResponse {
	resp := LadiesDayResponse{
		ID:              entry.ID,
		SaunaID:         entry.SaunaID,
		DayOfWeek:       entry.DayOfWeek,
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
		IsOfficial:      entry.IsOfficial,
		SourceType:      string(entry.SourceType),
		TrustScore:      entry.TrustScore,
		SupportCount:    entry.SupportCount,
		OppositionCount: entry.OppositionCount,
		CreatedAt:       entry.CreatedAt,
	}

	if entry.SpecificDate != nil {
		formatted := time.Time(*entry.SpecificDate).Format("2006-01-02")
		resp.SpecificDate = &formatted
	}

	if entry.Sauna != nil {
		summary := &SaunaSummary{
			ID:      entry.Sauna.ID,
			Name:    entry.Sauna.Name,
			Address: entry.Sauna.Address,
		}
		if includeVenueDetail {
			lat, lng, rating := entry.Sauna.Latitude, entry.Sauna.Longitude, entry.Sauna.Rating
			summary.Latitude = &lat
			summary.Longitude = &lng
			summary.PriceRange = entry.Sauna.PriceRange
			summary.Rating = &rating
		}
		resp.Sauna = summary
	}

	if entry.SourceUser != nil {
		resp.SourceUser = &SourceUserSummary{
			Username:   entry.SourceUser.Username,
			TrustScore: entry.SourceUser.TrustScore,
		}
	}

	return resp
}

// MapLadiesDaysToDTO converts a slice of ladies day rows
func MapLadiesDaysToDTO(entries []*schema.LadiesDay, includeVenueDetail bool) []LadiesDayResponse {
	out := make([]LadiesDayResponse, len(entries))
	for i, entry := range entries {
		out[i] = MapLadiesDayToDTO(entry, includeVenueDetail)
	}
	return out
}

// MapFacilityToDTO converts a facility row
func MapFacilityToDTO(f schema.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Category:    string(f.Category),
		Temperature: f.Temperature,
		Description: f.Description,
		IsWomenOnly: f.IsWomenOnly,
	}
}

// MapSaunaToDTO converts a sauna row with its loaded facilities and ladies days
func MapSaunaToDTO(sauna *schema.Sauna) SaunaResponse {
	resp := SaunaResponse{
		ID:          sauna.ID,
		Name:        sauna.Name,
		Address:     sauna.Address,
		Latitude:    sauna.Latitude,
		Longitude:   sauna.Longitude,
		Phone:       sauna.Phone,
		Website:     sauna.Website,
		Description: sauna.Description,
		PriceRange:  sauna.PriceRange,
		Rating:      sauna.Rating,
		ReviewCount: sauna.ReviewCount,
		CreatedAt:   sauna.CreatedAt,
	}

	if len(sauna.Facilities) > 0 {
		resp.Facilities = make([]FacilityResponse, len(sauna.Facilities))
		for i, f := range sauna.Facilities {
			resp.Facilities[i] = MapFacilityToDTO(f)
		}
	}

	if len(sauna.LadiesDays) > 0 {
		resp.LadiesDays = make([]LadiesDayResponse, len(sauna.LadiesDays))
		for i := range sauna.LadiesDays {
			resp.LadiesDays[i] = MapLadiesDayToDTO(&sauna.LadiesDays[i], false)
		}
	}

	if len(sauna.Reviews) > 0 {
		resp.Reviews = make([]ReviewResponse, len(sauna.Reviews))
		for i := range sauna.Reviews {
			resp.Reviews[i] = MapReviewToDTO(&sauna.Reviews[i])
		}
	}

	return resp
}

// MapReviewToDTO converts a review row with its loaded author and sauna
func MapReviewToDTO(review *schema.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID,
		SaunaID:    review.SaunaID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Title:      review.Title,
		Content:    review.Content,
		VisitDate:  review.VisitDate,
		Visibility: string(review.Visibility),
		LikeCount:  review.LikeCount,
		CreatedAt:  review.CreatedAt,
	}

	if review.User != nil {
		resp.User = &ReviewUserSummary{
			Username:   review.User.Username,
			Avatar:     review.User.Avatar,
			TrustScore: review.User.TrustScore,
		}
	}
	if review.Sauna != nil {
		resp.Sauna = &SaunaSummary{
			ID:      review.Sauna.ID,
			Name:    review.Sauna.Name,
			Address: review.Sauna.Address,
		}
	}

	return resp
}

// MapUserToDTO converts a user row to its public profile shape
func MapUserToDTO(user *schema.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Avatar:            user.Avatar,
		TrustScore:        user.TrustScore,
		ContributionCount: user.ContributionCount,
		IsVerified:        user.IsVerified,
		CreatedAt:         user.CreatedAt,
	}
}
