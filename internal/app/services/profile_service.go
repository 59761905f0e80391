package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/domain"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/helpers"
)

// ProfileService handles profile and mentor discovery operations
type ProfileService struct {
	profileRepo *repositories.ProfileRepository
	skillRepo   *repositories.SkillRepository
	ratingRepo  *repositories.RatingRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo *repositories.ProfileRepository,
	skillRepo *repositories.SkillRepository,
	ratingRepo *repositories.RatingRepository,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		ratingRepo:  ratingRepo,
		logger:      logger,
	}
}

// CreateProfile creates the caller's profile with its skills
func (s *ProfileService) CreateProfile(ctx context.Context, userID int64, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	if err := validateAvailability(req.Availability); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   req.Department,
		Bio:          req.Bio,
		Experience:   req.Experience,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
	}

	if _, err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, fmt.Errorf("profile creation error: %w", err)
	}

	if len(req.Skills) > 0 {
		if err := s.skillRepo.ReplaceUserSkills(ctx, userID, toUserSkills(req.Skills)); err != nil {
			return nil, fmt.Errorf("error saving skills: %w", err)
		}
	}

	s.logger.Info().Int64("userId", userID).Msg("Profile created")

	return s.GetProfile(ctx, userID)
}

// GetProfile returns a user's profile with skills, the recomputed average
// rating and the individual reviews behind it.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	skills, err := s.skillRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching skills: %w", err)
	}

	ratings, err := s.ratingRepo.ListForRated(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching ratings: %w", err)
	}

	// The average is always recomputed from the stored ratings, never cached
	values := make([]int, 0, len(ratings))
	reviews := make([]dto.ReviewResponse, 0, len(ratings))
	for _, rating := range ratings {
		values = append(values, rating.Rating)
		reviews = append(reviews, dto.ReviewResponse{
			ID:        rating.ID,
			SessionID: rating.SessionID,
			RaterID:   rating.RaterID,
			RaterName: rating.RaterName,
			Rating:    rating.Rating,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
		})
	}

	response := &dto.ProfileResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Department:    profile.Department,
		Bio:           profile.Bio,
		Experience:    profile.Experience,
		HourlyRate:    profile.HourlyRate,
		Availability:  profile.Availability,
		Skills:        toSkillResponses(skills),
		AverageRating: domain.AverageRating(values),
		Reviews:       reviews,
	}
	if profile.User != nil {
		response.Name = profile.User.Name
	}

	return response, nil
}

// UpdateProfile applies a partial update to the caller's profile. Nil fields
// are left as they are; a present availability replaces the stored window.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := validateAvailability(req.Availability); err != nil {
		return nil, err
	}

	update := repositories.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Department:      req.Department,
		Bio:             req.Bio,
		Experience:      req.Experience,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
		HasAvailability: req.Availability != nil,
	}

	if err := s.profileRepo.Update(ctx, userID, update); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile update error: %w", err)
	}

	if req.Skills != nil {
		if err := s.skillRepo.ReplaceUserSkills(ctx, userID, toUserSkills(req.Skills)); err != nil {
			return nil, fmt.Errorf("error saving skills: %w", err)
		}
	}

	return s.GetProfile(ctx, userID)
}

// SearchMentors lists mentor profiles, optionally filtered by skill name
func (s *ProfileService) SearchMentors(ctx context.Context, skill *string, page, size int) (*dto.MentorListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	profiles, total, err := s.profileRepo.SearchMentors(ctx, skill, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching mentors: %w", err)
	}

	userIDs := make([]int64, 0, len(profiles))
	for _, profile := range profiles {
		userIDs = append(userIDs, profile.UserID)
	}

	skillsByUser, err := s.skillRepo.ListForUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching skills: %w", err)
	}

	mentors := make([]dto.MentorSummary, 0, len(profiles))
	for _, profile := range profiles {
		values, err := s.ratingRepo.ValuesForRated(ctx, profile.UserID)
		if err != nil {
			return nil, fmt.Errorf("error fetching ratings: %w", err)
		}

		summary := dto.MentorSummary{
			ID:            profile.UserID,
			Department:    profile.Department,
			Bio:           profile.Bio,
			HourlyRate:    profile.HourlyRate,
			Availability:  profile.Availability,
			Skills:        toSkillResponses(skillsByUser[profile.UserID]),
			AverageRating: domain.AverageRating(values),
		}
		if profile.User != nil {
			summary.Name = profile.User.Name
		}
		mentors = append(mentors, summary)
	}

	return &dto.MentorListResponse{
		Mentors:        mentors,
		PaginationInfo: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// validateAvailability rejects an availability payload the canonical codec
// would refuse to store.
func validateAvailability(availability *domain.Availability) error {
	if availability == nil {
		return nil
	}
	if err := availability.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

func toUserSkills(inputs []dto.SkillInput) []models.UserSkill {
	skills := make([]models.UserSkill, 0, len(inputs))
	for _, input := range inputs {
		skills = append(skills, models.UserSkill{
			Name:             input.Name,
			ProficiencyLevel: input.ProficiencyLevel,
		})
	}
	return skills
}

func toSkillResponses(skills []models.UserSkill) []dto.SkillResponse {
	responses := make([]dto.SkillResponse, 0, len(skills))
	for _, skill := range skills {
		responses = append(responses, dto.SkillResponse{
			Name:             skill.Name,
			ProficiencyLevel: skill.ProficiencyLevel,
		})
	}
	return responses
}
