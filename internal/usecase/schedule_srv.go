package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// childPriceFactor is the heuristic child price when no schedule is
// selected yet: 70% of the tour's effective price.
const childPriceFactor = 0.70

// Party is the traveller composition of a booking. Infants do not
// occupy seats and are not charged.
type Party struct {
	Adults   int
	Children int
	Infants  int
}

func (p Party) Seats() int {
	return p.Adults + p.Children
}

type ScheduleService interface {
	// UpcomingSchedules narrows a tour's schedules to the bookable
	// subset. An empty result means "no upcoming departures", not an
	// error.
	UpcomingSchedules(ctx context.Context, slug string) ([]response.ScheduleResponse, error)

	// Quote computes the live per-person and total price for a party.
	Quote(ctx context.Context, slug string, req *request.QuoteRequest) (*response.QuoteResponse, error)

	// Admin endpoints
	CreateSchedule(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID string, req *request.UpdateScheduleStatusRequest) error
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) UpcomingSchedules(ctx context.Context, slug string) ([]response.ScheduleResponse, error) {
	tour, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", slug)
	}

	schedules, err := s.repo.Schedule.FindByTourID(ctx, tour.ID)
	if err != nil {
		s.log.Error("Failed to get schedules", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("get schedules: %w", err)
	}

	bookable := FilterBookable(schedules, time.Now())

	responses := make([]response.ScheduleResponse, len(bookable))
	for i, schedule := range bookable {
		responses[i] = response.ScheduleToResponse(schedule)
	}

	return responses, nil
}

func (s *scheduleService) Quote(ctx context.Context, slug string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tour, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", slug)
	}

	var schedule *entity.TourSchedule
	if req.ScheduleID != nil {
		scheduleID, err := uuid.Parse(*req.ScheduleID)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule ID format %s: %w", *req.ScheduleID, err)
		}
		schedule, err = s.repo.Schedule.FindByID(ctx, scheduleID)
		if err != nil || schedule == nil {
			return nil, fmt.Errorf("schedule %s not found", *req.ScheduleID)
		}
	}

	party := Party{Adults: req.NumAdults, Children: req.NumChildren, Infants: req.NumInfants}
	quote := ComputeQuote(tour, schedule, party)

	return &quote, nil
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil || tour == nil {
		return nil, fmt.Errorf("tour %s not found", req.TourID)
	}

	departureDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date %s: %w", req.DepartureDate, err)
	}
	returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("invalid return date %s: %w", req.ReturnDate, err)
	}
	if returnDate.Before(departureDate) {
		return nil, fmt.Errorf("invalid return date: before departure")
	}

	now := time.Now()
	schedule := &entity.TourSchedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TourID:         tourID,
		DepartureDate:  departureDate,
		ReturnDate:     returnDate,
		Status:         entity.ScheduleStatusAvailable,
		AvailableSeats: req.AvailableSeats,
		BookedSeats:    0,
		AdultPrice:     req.AdultPrice,
		ChildPrice:     req.ChildPrice,
		InfantPrice:    req.InfantPrice,
		Note:           req.Note,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("tour_id", req.TourID),
		)
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("tour_id", req.TourID),
		zap.Time("departure", departureDate),
	)

	resp := response.ScheduleToResponse(schedule)
	return &resp, nil
}

func (s *scheduleService) UpdateScheduleStatus(ctx context.Context, scheduleID string, req *request.UpdateScheduleStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil || schedule == nil {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}

	if err := s.repo.Schedule.UpdateStatus(ctx, id, entity.ScheduleStatus(req.Status)); err != nil {
		s.log.Error("Failed to update schedule status",
			zap.Error(err),
			zap.String("schedule_id", scheduleID),
		)
		return fmt.Errorf("update schedule status: %w", err)
	}

	return nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", scheduleID),
		)
		return fmt.Errorf("delete schedule %s: %w", scheduleID, err)
	}

	return nil
}

// ==================== PURE RECONCILER LOGIC ====================

// FilterBookable keeps schedules that are AVAILABLE and depart no
// earlier than midnight today. A schedule departing later today stays
// in: the comparison is date-only.
func FilterBookable(schedules []*entity.TourSchedule, now time.Time) []*entity.TourSchedule {
	var bookable []*entity.TourSchedule
	for _, schedule := range schedules {
		if schedule.Bookable(now) {
			bookable = append(bookable, schedule)
		}
	}
	return bookable
}

// ComputeQuote derives the per-person and total price for a party. With
// no schedule selected the tour's effective price applies to adults and
// 70% of it to children. Infants are free. The computation is a pure
// function of its inputs.
func ComputeQuote(tour *entity.Tour, schedule *entity.TourSchedule, party Party) response.QuoteResponse {
	var adultPrice, childPrice float64
	var scheduleID *string

	if schedule != nil {
		adultPrice = schedule.AdultPrice
		childPrice = schedule.ChildPrice
		id := schedule.ID.String()
		scheduleID = &id
	} else {
		adultPrice = tour.EffectivePrice()
		childPrice = adultPrice * childPriceFactor
	}

	total := float64(party.Adults)*adultPrice + float64(party.Children)*childPrice

	return response.QuoteResponse{
		ScheduleID:  scheduleID,
		AdultPrice:  adultPrice,
		ChildPrice:  childPrice,
		NumAdults:   party.Adults,
		NumChildren: party.Children,
		NumInfants:  party.Infants,
		TotalPrice:  total,
	}
}

// ValidateParty runs every submission rule independently and collects
// the failures into a field-keyed map. All rules are checked so the
// caller can show multiple errors at once; an empty map means the
// selection may be submitted.
func ValidateParty(tour *entity.Tour, schedule *entity.TourSchedule, party Party) map[string]string {
	errs := make(map[string]string)

	if schedule == nil {
		errs["schedule"] = "A departure schedule must be selected"
	}

	if party.Adults < 1 {
		errs["num_adults"] = "At least one adult is required"
	}

	if party.Seats() > tour.MaxPeople {
		errs["max_people"] = fmt.Sprintf("Party size exceeds the tour limit of %d people", tour.MaxPeople)
	}

	if schedule != nil && party.Seats() > schedule.AvailableSeats {
		errs["available_seats"] = fmt.Sprintf("Only %d seats are available on this schedule", schedule.AvailableSeats)
	}

	// Checked on its own even though the adult minimum implies it
	if party.Seats() < 1 {
		errs["party"] = "At least one participant is required"
	}

	return errs
}
