package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) error
	Voucher(ctx context.Context, userID uuid.UUID, role string, bookingID string) ([]byte, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", req.ScheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule not found")
	}

	tour, err := s.repo.Tour.FindByID(ctx, schedule.TourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	party := Party{
		Adults:   req.NumAdults,
		Children: req.NumChildren,
		Infants:  req.NumInfants,
	}

	if !schedule.Bookable(time.Now()) {
		return nil, fmt.Errorf("validation failed: schedule is no longer available for booking")
	}

	if errs := ValidateParty(tour, schedule, party); len(errs) > 0 {
		s.log.Warn("Party validation failed",
			zap.Any("errors", errs),
			zap.String("schedule_id", scheduleID.String()),
		)
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	quote := ComputeQuote(tour, schedule, party)

	// Seats are claimed before the booking row exists. The update is
	// guarded on available_seats, so an oversold request fails here
	// instead of going negative.
	if err := s.repo.Schedule.TakeSeats(ctx, scheduleID, party.Seats()); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:         utils.GenerateOrderID(),
		UserID:          userID,
		ScheduleID:      scheduleID,
		NumAdults:       req.NumAdults,
		NumChildren:     req.NumChildren,
		NumInfants:      req.NumInfants,
		TotalPrice:      quote.TotalPrice,
		SpecialRequests: req.SpecialRequests,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// Give the seats back so the failed insert does not block the
		// schedule for other customers.
		if relErr := s.repo.Schedule.ReleaseSeats(ctx, scheduleID, party.Seats()); relErr != nil {
			s.log.Error("Failed to release seats after booking insert failure",
				zap.Error(relErr),
				zap.String("schedule_id", scheduleID.String()),
				zap.Int("seats", party.Seats()),
			)
		}
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID.String()),
		zap.String("schedule_id", scheduleID.String()),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, schedule, tour)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		schedule, tour := s.lookupScheduleAndTour(ctx, booking.ScheduleID)
		responses = append(responses, response.BookingToResponse(booking, schedule, tour))
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}

	schedule, tour := s.lookupScheduleAndTour(ctx, booking.ScheduleID)
	resp := response.BookingToResponse(booking, schedule, tour)
	return &resp, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	if booking.Status != entity.BookingStatusPending {
		return fmt.Errorf("cannot confirm booking with status %s", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusConfirmed); err != nil {
		return err
	}

	s.log.Info("Booking confirmed", zap.String("order_id", booking.OrderID))
	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) error {
	booking, err := s.findOwnedBooking(ctx, userID, role, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("cannot cancel booking with status %s", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return err
	}

	if err := s.repo.Schedule.ReleaseSeats(ctx, booking.ScheduleID, booking.Seats()); err != nil {
		s.log.Error("Failed to release seats for cancelled booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.Int("seats", booking.Seats()),
		)
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("order_id", booking.OrderID),
		zap.Int("seats_released", booking.Seats()),
	)

	return nil
}

func (s *bookingService) Voucher(ctx context.Context, userID uuid.UUID, role string, bookingID string) ([]byte, error) {
	booking, err := s.findOwnedBooking(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("cannot generate voucher for booking with status %s", booking.Status)
	}

	schedule, tour := s.lookupScheduleAndTour(ctx, booking.ScheduleID)
	if schedule == nil || tour == nil {
		return nil, fmt.Errorf("tour not found for booking %s", booking.OrderID)
	}

	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	pdf, err := BuildVoucherPDF(booking, schedule, tour, user)
	if err != nil {
		s.log.Error("Failed to build voucher PDF",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return nil, fmt.Errorf("generate voucher: %w", err)
	}

	return pdf, nil
}

// findOwnedBooking loads a booking and enforces that the caller owns
// it. Admins can read any booking.
func (s *bookingService) findOwnedBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	if booking.UserID != userID && !strings.EqualFold(role, "admin") {
		return nil, fmt.Errorf("forbidden: booking belongs to another user")
	}

	return booking, nil
}

func (s *bookingService) lookupScheduleAndTour(ctx context.Context, scheduleID uuid.UUID) (*entity.TourSchedule, *entity.Tour) {
	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil || schedule == nil {
		return nil, nil
	}

	tour, err := s.repo.Tour.FindByID(ctx, schedule.TourID)
	if err != nil {
		return schedule, nil
	}

	return schedule, tour
}
