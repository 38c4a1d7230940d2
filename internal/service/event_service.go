package service

import (
	"errors"
	"fmt"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	repo *mysql.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		repo: &mysql.EventRepository{DB: db},
	}
}

type CreateEventInput struct {
	Title        string
	Description  string
	DateTime     time.Time
	Timezone     string
	Location     string
	RSVPDeadline time.Time
	MaxAttendees *int
}

func (in CreateEventInput) validate() error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case in.DateTime.IsZero():
		return fmt.Errorf("%w: dateTime is required", ErrValidation)
	case in.Timezone == "":
		return fmt.Errorf("%w: timezone is required", ErrValidation)
	case in.Location == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case in.RSVPDeadline.IsZero():
		return fmt.Errorf("%w: rsvpDeadline is required", ErrValidation)
	case !in.RSVPDeadline.Before(in.DateTime):
		return fmt.Errorf("%w: rsvpDeadline must precede dateTime", ErrValidation)
	case in.MaxAttendees != nil && *in.MaxAttendees < 1:
		return fmt.Errorf("%w: maximum attendees must be at least 1", ErrValidation)
	}
	return nil
}

func (s *EventService) CreateEvent(hostID uint64, role model.Role, in CreateEventInput) (*model.Event, error) {
	if !role.CanCreateEvents() {
		return nil, ErrForbidden
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:        in.Title,
		Description:  in.Description,
		DateTime:     in.DateTime,
		Timezone:     in.Timezone,
		Location:     in.Location,
		RSVPDeadline: in.RSVPDeadline,
		MaxAttendees: in.MaxAttendees,
		Status:       model.EventScheduled,
		HostID:       hostID,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents 按角色收口：USER只能看自己RSVP过的，HOST看自己办的，ADMIN全量
func (s *EventService) ListEvents(callerID uint64, role model.Role, status model.EventStatus, hostID uint64) ([]model.Event, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status", ErrValidation)
	}

	f := mysql.EventFilter{Status: status, HostID: hostID}
	switch role {
	case model.RoleHost:
		f.HostID = callerID
	case model.RoleAdmin:
		// 不收口
	default:
		f.RSVPUserID = callerID
	}
	return s.repo.List(f)
}

func (s *EventService) GetEvent(id uint64) (*model.Event, error) {
	event, err := s.repo.FindByIDWithRelations(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateStatus 生命周期由主办方手动驱动，没有状态机约束
func (s *EventService) UpdateStatus(eventID, callerID uint64, role model.Role, status model.EventStatus) (*model.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status", ErrValidation)
	}

	event, err := s.repo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if event.HostID != callerID && !role.IsAdmin() {
		return nil, ErrForbidden
	}

	if err := s.repo.UpdateStatus(eventID, status); err != nil {
		return nil, err
	}
	event.Status = status
	return event, nil
}
