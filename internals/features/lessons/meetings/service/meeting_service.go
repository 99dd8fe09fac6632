// internals/features/lessons/meetings/service/meeting_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	cyclemodel "educrm_backend/internals/features/lessons/cycles/model"
	"educrm_backend/internals/features/lessons/meetings/model"
	regmodel "educrm_backend/internals/features/lessons/registrations/model"
	taskmodel "educrm_backend/internals/features/system/tasks/model"
	taskservice "educrm_backend/internals/features/system/tasks/service"
	"educrm_backend/internals/integrations/zoom"
)

// RoomProvisioner is what the lifecycle service needs from the Zoom client.
type RoomProvisioner interface {
	Enabled() bool
	FindAvailableHost(start time.Time, durationMinutes int) (string, error)
	CreateRoom(hostID, topic string, start time.Time, durationMinutes int) (*zoom.Room, error)
}

// MeetingService owns the meeting status state machine and the cycle
// counters. Status and counter writes always share one transaction.
type MeetingService struct {
	DB   *gorm.DB
	Zoom RoomProvisioner // nil-safe: checked via Enabled()
}

func NewMeetingService(db *gorm.DB) *MeetingService {
	return &MeetingService{DB: db}
}

// ReplacementPayload is the outbox payload for postponement follow-ups.
type ReplacementPayload struct {
	MeetingID uuid.UUID `json:"meeting_id"`
}

/* ===================== COMPLETE ===================== */

// Complete transitions scheduled → completed, computes financials and bumps
// the cycle counters. Re-completing recomputes financials but leaves the
// counters alone.
func (s *MeetingService) Complete(meetingID, actorID uuid.UUID) (*model.MeetingModel, error) {
	var out *model.MeetingModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meeting, cycle, err := s.loadMeetingCycle(tx, meetingID)
		if err != nil {
			return err
		}
		if meeting.MeetingStatus == model.StatusCancelled || meeting.MeetingStatus == model.StatusPostponed {
			return fiber.NewError(fiber.StatusConflict, "Meeting is "+meeting.MeetingStatus+" and cannot be completed")
		}

		fin, err := s.computeFor(tx, meeting, cycle)
		if err != nil {
			return err
		}

		wasCompleted := meeting.MeetingStatus == model.StatusCompleted
		now := time.Now()

		meeting.MeetingStatus = model.StatusCompleted
		meeting.MeetingRevenue = fin.Revenue
		meeting.MeetingInstructorPayment = fin.InstructorPayment
		meeting.MeetingProfit = fin.Profit
		meeting.MeetingStatusUpdatedAt = &now
		meeting.MeetingStatusUpdatedBy = &actorID
		if err := tx.Save(meeting).Error; err != nil {
			return err
		}

		// Counters move exactly once per meeting.
		if !wasCompleted {
			cycle.CycleCompletedMeetings++
			if cycle.CycleRemainingMeetings > 0 {
				cycle.CycleRemainingMeetings--
			}
			if err := tx.Save(cycle).Error; err != nil {
				return err
			}
		}

		out = meeting
		return nil
	})
	return out, err
}

/* ===================== CANCEL ===================== */

// Cancel transitions scheduled → cancelled. No financials, no counters: the
// slot stays used in the historical record.
func (s *MeetingService) Cancel(meetingID, actorID uuid.UUID) (*model.MeetingModel, error) {
	var out *model.MeetingModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meeting, _, err := s.loadMeetingCycle(tx, meetingID)
		if err != nil {
			return err
		}
		if meeting.MeetingStatus != model.StatusScheduled {
			return fiber.NewError(fiber.StatusConflict, "Only a scheduled meeting can be cancelled")
		}

		now := time.Now()
		meeting.MeetingStatus = model.StatusCancelled
		meeting.MeetingStatusUpdatedAt = &now
		meeting.MeetingStatusUpdatedBy = &actorID
		if err := tx.Save(meeting).Error; err != nil {
			return err
		}
		out = meeting
		return nil
	})
	return out, err
}

/* ===================== POSTPONE ===================== */

// Postpone transitions scheduled → postponed and enqueues replacement
// synthesis. The status change commits regardless of what later happens to
// the replacement; the outbox row rides the same transaction.
func (s *MeetingService) Postpone(meetingID, actorID uuid.UUID) (*model.MeetingModel, error) {
	var out *model.MeetingModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meeting, _, err := s.loadMeetingCycle(tx, meetingID)
		if err != nil {
			return err
		}
		if meeting.MeetingStatus != model.StatusScheduled {
			return fiber.NewError(fiber.StatusConflict, "Only a scheduled meeting can be postponed")
		}

		now := time.Now()
		meeting.MeetingStatus = model.StatusPostponed
		meeting.MeetingStatusUpdatedAt = &now
		meeting.MeetingStatusUpdatedBy = &actorID
		if err := tx.Save(meeting).Error; err != nil {
			return err
		}

		if err := taskservice.Enqueue(tx, taskmodel.TaskMeetingReplacement, ReplacementPayload{MeetingID: meeting.MeetingID}); err != nil {
			return err
		}

		out = meeting
		return nil
	})
	return out, err
}

/* ===================== RECALCULATE ===================== */

// Recalculate reapplies the financial formulas without touching status or
// counters. This is the explicit override for already-completed meetings.
func (s *MeetingService) Recalculate(meetingID uuid.UUID) (*model.MeetingModel, error) {
	var out *model.MeetingModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meeting, cycle, err := s.loadMeetingCycle(tx, meetingID)
		if err != nil {
			return err
		}

		fin, err := s.computeFor(tx, meeting, cycle)
		if err != nil {
			return err
		}

		meeting.MeetingRevenue = fin.Revenue
		meeting.MeetingInstructorPayment = fin.InstructorPayment
		meeting.MeetingProfit = fin.Profit
		if err := tx.Save(meeting).Error; err != nil {
			return err
		}
		out = meeting
		return nil
	})
	return out, err
}

/* ===================== shared lookups ===================== */

func (s *MeetingService) loadMeetingCycle(tx *gorm.DB, meetingID uuid.UUID) (*model.MeetingModel, *cyclemodel.CycleModel, error) {
	var meeting model.MeetingModel
	if err := tx.Where("meeting_id = ?", meetingID).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Meeting not found")
		}
		return nil, nil, err
	}

	var cycle cyclemodel.CycleModel
	if err := tx.Where("cycle_id = ?", meeting.MeetingCycleID).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Cycle not found")
		}
		return nil, nil, err
	}
	return &meeting, &cycle, nil
}

func (s *MeetingService) computeFor(tx *gorm.DB, meeting *model.MeetingModel, cycle *cyclemodel.CycleModel) (Financials, error) {
	var instructor *insmodel.InstructorModel
	if meeting.MeetingInstructorID != nil {
		var ins insmodel.InstructorModel
		if err := tx.Where("instructor_id = ?", *meeting.MeetingInstructorID).First(&ins).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Financials{}, fiber.NewError(fiber.StatusNotFound, "Instructor not found")
			}
			return Financials{}, err
		}
		instructor = &ins
	}

	regs, err := ActiveRegistrations(tx, cycle.CycleID)
	if err != nil {
		return Financials{}, err
	}

	return ComputeFinancials(cycle, instructor, meeting.MeetingActivityType, regs), nil
}

// ActiveRegistrations is the canonical "effective student" set: status
// active only, soft-deleted rows excluded by GORM.
func ActiveRegistrations(tx *gorm.DB, cycleID uuid.UUID) ([]regmodel.RegistrationModel, error) {
	var regs []regmodel.RegistrationModel
	err := tx.
		Where("registration_cycle_id = ? AND registration_status = ?", cycleID, regmodel.RegistrationStatusActive).
		Find(&regs).Error
	return regs, err
}
