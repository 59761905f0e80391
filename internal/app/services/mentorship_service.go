package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/db"
	"github.com/yigit/mentorhub/internal/domain"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/helpers"
)

// MentorshipService handles the request lifecycle, session booking and
// rating operations.
type MentorshipService struct {
	requestRepo *repositories.RequestRepository
	sessionRepo *repositories.SessionRepository
	ratingRepo  *repositories.RatingRepository
	profileRepo *repositories.ProfileRepository
	skillRepo   *repositories.SkillRepository
	userRepo    *repositories.UserRepository
	database    *db.PostgresDB
	logger      zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	requestRepo *repositories.RequestRepository,
	sessionRepo *repositories.SessionRepository,
	ratingRepo *repositories.RatingRepository,
	profileRepo *repositories.ProfileRepository,
	skillRepo *repositories.SkillRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *MentorshipService {
	return &MentorshipService{
		requestRepo: requestRepo,
		sessionRepo: sessionRepo,
		ratingRepo:  ratingRepo,
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		userRepo:    userRepo,
		database:    database,
		logger:      logger,
	}
}

// CreateRequest creates a pending mentorship request from the acting mentee
// to the given mentor.
func (s *MentorshipService) CreateRequest(ctx context.Context, menteeID int64, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if req.MentorID == menteeID {
		return nil, fmt.Errorf("%w: cannot request mentorship from yourself", apperrors.ErrValidationFailed)
	}

	// The target must exist and actually be a mentor
	isMentor, err := s.userRepo.ExistsWithRole(ctx, req.MentorID, models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("error checking mentor: %w", err)
	}
	if !isMentor {
		return nil, apperrors.ErrMentorNotFound
	}

	request := &models.MentorshipRequest{
		MenteeID: menteeID,
		MentorID: req.MentorID,
		Message:  req.Message,
	}

	if _, err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("request creation error: %w", err)
	}

	s.logger.Info().
		Int64("requestId", request.ID).
		Int64("menteeId", menteeID).
		Int64("mentorId", req.MentorID).
		Msg("Mentorship request created")

	mentor, err := s.userRepo.GetByID(ctx, req.MentorID)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentor: %w", err)
	}
	mentee, err := s.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentee: %w", err)
	}
	mentorAvailability, err := s.profileRepo.GetAvailability(ctx, req.MentorID)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentor availability: %w", err)
	}
	mentorSkills, err := s.skillRepo.ListForUser(ctx, req.MentorID)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentor skills: %w", err)
	}

	response := newRequestResponse(request, mentor.Name, mentee.Name, mentorAvailability, mentorSkills)
	return &response, nil
}

// ListRequests returns all requests the user is a party of, newest first,
// with the mentor side enriched with skills and availability.
func (s *MentorshipService) ListRequests(ctx context.Context, userID int64) (*dto.RequestListResponse, error) {
	rows, err := s.requestRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}

	mentorIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		mentorIDs = append(mentorIDs, row.MentorID)
	}
	skillsByUser, err := s.skillRepo.ListForUsers(ctx, mentorIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching mentor skills: %w", err)
	}

	requests := make([]dto.RequestResponse, 0, len(rows))
	for _, row := range rows {
		request := row.MentorshipRequest
		requests = append(requests, newRequestResponse(
			&request, row.MentorName, row.MenteeName,
			row.MentorAvailability, skillsByUser[row.MentorID]))
	}

	return &dto.RequestListResponse{Requests: requests}, nil
}

// UpdateRequestStatus lets the addressed mentor accept or reject a pending
// request. Any failure to match, including someone else's request or one
// already decided, reports the same not-found error.
func (s *MentorshipService) UpdateRequestStatus(ctx context.Context, requestID, mentorID int64, status domain.RequestStatus) error {
	if !domain.RequestTransitionAllowed(domain.RequestPending, status) {
		return fmt.Errorf("%w: status must be accepted or rejected", apperrors.ErrValidationFailed)
	}

	updated, err := s.requestRepo.UpdateStatusAsMentor(ctx, requestID, mentorID, domain.RequestPending, status)
	if err != nil {
		return fmt.Errorf("error updating request: %w", err)
	}
	if !updated {
		return apperrors.ErrRequestNotFoundOrUnauthorized
	}

	s.logger.Info().Int64("requestId", requestID).Str("status", string(status)).Msg("Request status updated")
	return nil
}

// DeleteRequest lets the owning mentee withdraw a still-pending request
func (s *MentorshipService) DeleteRequest(ctx context.Context, requestID, menteeID int64) error {
	deleted, err := s.requestRepo.DeleteAsMentee(ctx, requestID, menteeID)
	if err != nil {
		return fmt.Errorf("error deleting request: %w", err)
	}
	if !deleted {
		return apperrors.ErrRequestNotFoundOrUnauthorized
	}

	s.logger.Info().Int64("requestId", requestID).Msg("Request withdrawn")
	return nil
}

// CreateSession books a session against an accepted request. The whole check
// runs in one transaction with the request row locked, so two concurrent
// bookings against the same request serialize and the second one fails the
// conflict check. Concurrent bookings by one user against different requests
// are only caught by the conflict check within each transaction.
func (s *MentorshipService) CreateSession(ctx context.Context, userID int64, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	startTime, err := helpers.ParseLocalDateTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be YYYY-MM-DD HH:MM:SS", apperrors.ErrValidationFailed)
	}
	endTime, err := helpers.ParseLocalDateTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime must be YYYY-MM-DD HH:MM:SS", apperrors.ErrValidationFailed)
	}
	if !startTime.Before(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", apperrors.ErrValidationFailed)
	}
	sameDay := startTime.Year() == endTime.Year() && startTime.YearDay() == endTime.YearDay()
	if !sameDay {
		return nil, fmt.Errorf("%w: a session cannot span days", apperrors.ErrValidationFailed)
	}

	startClock := domain.ClockTime(startTime.Format("15:04"))
	endClock := domain.ClockTime(endTime.Format("15:04"))

	session := &models.Session{
		RequestID: req.RequestID,
		StartTime: startTime,
		EndTime:   endTime,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		request, err := s.requestRepo.GetAcceptedForUpdate(ctx, tx, req.RequestID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.ErrRequestNotFoundOrUnauthorized
			}
			return err
		}
		if request.MentorID != userID && request.MenteeID != userID {
			return apperrors.ErrRequestNotFoundOrUnauthorized
		}
		session.MentorID = request.MentorID
		session.MenteeID = request.MenteeID

		menteeAvailability, err := s.profileRepo.GetAvailability(ctx, request.MenteeID)
		if err != nil {
			return err
		}
		mentorAvailability, err := s.profileRepo.GetAvailability(ctx, request.MentorID)
		if err != nil {
			return err
		}
		if !domain.SlotViable(menteeAvailability, []*domain.Availability{mentorAvailability}, startTime, startClock, endClock) {
			return apperrors.ErrSlotNotAvailable
		}

		booked, err := s.sessionRepo.ListBookedSlotsTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		if domain.DateBooked(booked, startTime) {
			return apperrors.ErrDateAlreadyBooked
		}

		_, err = s.sessionRepo.CreateTx(ctx, tx, session)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("sessionId", session.ID).
		Int64("requestId", req.RequestID).
		Time("startTime", session.StartTime).
		Msg("Session booked")

	response := newSessionResponse(session)
	return &response, nil
}

// ListSessions returns all sessions the user is a party of, newest start
// time first.
func (s *MentorshipService) ListSessions(ctx context.Context, userID int64) (*dto.SessionListResponse, error) {
	sessions, err := s.sessionRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, newSessionResponse(&sessions[i]))
	}

	return &dto.SessionListResponse{Sessions: responses}, nil
}

// UpdateSessionStatus completes or cancels a scheduled session. Either party
// may cancel; only the mentor may complete. Terminal sessions, other users'
// sessions and missing ids all report the same not-found error.
func (s *MentorshipService) UpdateSessionStatus(ctx context.Context, sessionID, userID int64, req *dto.UpdateSessionStatusRequest) error {
	// actorIsMentor true covers both targets; the repository enforces the
	// mentor-only gate on its side.
	if !domain.SessionTransitionAllowed(domain.SessionScheduled, req.Status, true) {
		return fmt.Errorf("%w: status must be completed or cancelled", apperrors.ErrValidationFailed)
	}

	mentorOnly := req.Status == domain.SessionCompleted
	updated, err := s.sessionRepo.UpdateStatus(ctx, sessionID, userID, req.Status, req.Notes, mentorOnly)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}
	if !updated {
		return apperrors.ErrSessionNotFoundOrUnauthorized
	}

	s.logger.Info().Int64("sessionId", sessionID).Str("status", string(req.Status)).Msg("Session status updated")
	return nil
}

// CreateRating rates the other participant of a completed session
func (s *MentorshipService) CreateRating(ctx context.Context, raterID int64, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	if !domain.ValidRatingValue(req.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidationFailed)
	}

	session, err := s.sessionRepo.GetForParticipant(ctx, req.SessionID, raterID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("error fetching session: %w", err)
	}

	// A not-yet-completed session is indistinguishable from a missing one
	if !domain.Rateable(session.Status) {
		return nil, apperrors.ErrSessionNotFoundOrUnauthorized
	}

	// The rated user must be the other side of the session
	other := session.MentorID
	if raterID == session.MentorID {
		other = session.MenteeID
	}
	if req.RatedID != other {
		return nil, fmt.Errorf("%w: rated user must be the other session participant", apperrors.ErrValidationFailed)
	}

	rating := &models.Rating{
		SessionID: req.SessionID,
		RaterID:   raterID,
		RatedID:   req.RatedID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if _, err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRated) {
			return nil, apperrors.ErrAlreadyRated
		}
		return nil, fmt.Errorf("rating creation error: %w", err)
	}

	s.logger.Info().
		Int64("ratingId", rating.ID).
		Int64("sessionId", rating.SessionID).
		Int("rating", rating.Rating).
		Msg("Rating created")

	return &dto.RatingResponse{
		ID:        rating.ID,
		SessionID: rating.SessionID,
		RaterID:   rating.RaterID,
		RatedID:   rating.RatedID,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
	}, nil
}

// ListSlots computes, for one calendar date, which of the fixed hourly slots
// are viable between the caller and each given mentor, plus whether the
// caller's own calendar already blocks the whole date.
func (s *MentorshipService) ListSlots(ctx context.Context, userID int64, dateStr string, mentorIDs []int64) (*dto.SlotListResponse, error) {
	date, err := helpers.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if len(mentorIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one mentor id is required", apperrors.ErrValidationFailed)
	}

	callerAvailability, err := s.profileRepo.GetAvailability(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability: %w", err)
	}

	mentorAvailabilities := make([]*domain.Availability, 0, len(mentorIDs))
	for _, mentorID := range mentorIDs {
		availability, err := s.profileRepo.GetAvailability(ctx, mentorID)
		if err != nil {
			return nil, fmt.Errorf("error fetching availability: %w", err)
		}
		mentorAvailabilities = append(mentorAvailabilities, availability)
	}

	scheduled, err := s.sessionRepo.CountScheduledOnDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("error checking booked dates: %w", err)
	}

	slots := make([]dto.SlotAvailabilityResponse, 0, len(domain.BookableSlots))
	for _, slot := range domain.BookableSlots {
		slots = append(slots, dto.SlotAvailabilityResponse{
			Start:  slot.Start,
			End:    slot.End,
			Viable: domain.SlotViable(callerAvailability, mentorAvailabilities, date, slot.Start, slot.End),
		})
	}

	return &dto.SlotListResponse{
		Date:       dateStr,
		DateBooked: scheduled > 0,
		Slots:      slots,
	}, nil
}

// newRequestResponse assembles a request response from a request row and the
// pieces of both parties loaded alongside it.
func newRequestResponse(
	request *models.MentorshipRequest,
	mentorName, menteeName string,
	mentorAvailability *domain.Availability,
	mentorSkills []models.UserSkill,
) dto.RequestResponse {
	return dto.RequestResponse{
		ID:        request.ID,
		MenteeID:  request.MenteeID,
		MentorID:  request.MentorID,
		Message:   request.Message,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
		Mentor: dto.RequestCounterpart{
			ID:           request.MentorID,
			Name:         mentorName,
			Skills:       toSkillResponses(mentorSkills),
			Availability: mentorAvailability,
		},
		Mentee: dto.RequestCounterpart{
			ID:   request.MenteeID,
			Name: menteeName,
		},
	}
}

func newSessionResponse(session *models.Session) dto.SessionResponse {
	response := dto.SessionResponse{
		ID:        session.ID,
		RequestID: session.RequestID,
		StartTime: helpers.FormatLocalDateTime(session.StartTime),
		EndTime:   helpers.FormatLocalDateTime(session.EndTime),
		Status:    session.Status,
		Notes:     session.Notes,
		MentorID:  session.MentorID,
		MenteeID:  session.MenteeID,
	}
	if session.Mentor != nil {
		response.Mentor = dto.RequestCounterpart{ID: session.Mentor.ID, Name: session.Mentor.Name}
	} else {
		response.Mentor = dto.RequestCounterpart{ID: session.MentorID}
	}
	if session.Mentee != nil {
		response.Mentee = dto.RequestCounterpart{ID: session.Mentee.ID, Name: session.Mentee.Name}
	} else {
		response.Mentee = dto.RequestCounterpart{ID: session.MenteeID}
	}
	return response
}
