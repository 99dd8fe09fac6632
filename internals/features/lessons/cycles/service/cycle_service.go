// internals/features/lessons/cycles/service/cycle_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	"educrm_backend/internals/features/lessons/cycles/model"
	meetingmodel "educrm_backend/internals/features/lessons/meetings/model"
	meetingservice "educrm_backend/internals/features/lessons/meetings/service"
)

// CycleService owns bulk meeting creation and counter reconciliation.
type CycleService struct {
	DB *gorm.DB
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{DB: db}
}

/* ===================== GENERATE MEETINGS ===================== */

// GenerateMeetings creates the cycle's full meeting series: one row per week
// on the cycle's weekday, starting at the first occurrence on or after the
// start date. Refuses to run twice.
func (s *CycleService) GenerateMeetings(cycleID uuid.UUID) ([]meetingmodel.MeetingModel, error) {
	var out []meetingmodel.MeetingModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cycle, err := s.loadCycle(tx, cycleID)
		if err != nil {
			return err
		}
		if cycle.CycleTotalMeetings <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cycle has no total meeting count")
		}

		var existing int64
		if err := tx.Model(&meetingmodel.MeetingModel{}).
			Where("meeting_cycle_id = ?", cycle.CycleID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "Cycle already has meetings")
		}

		rows, err := s.createSeries(tx, cycle, false)
		if err != nil {
			return err
		}

		cycle.CycleCompletedMeetings = 0
		cycle.CycleRemainingMeetings = cycle.CycleTotalMeetings
		last := rows[len(rows)-1].MeetingDate
		cycle.CycleEndDate = &last
		if err := tx.Save(cycle).Error; err != nil {
			return err
		}

		out = rows
		return nil
	})
	return out, err
}

/* ===================== DUPLICATE ===================== */

// DuplicateCycle clones a cycle onto a new start date with fresh counters
// and a fresh meeting series. The series carries projected financials,
// computed with the same formulas completion uses.
func (s *CycleService) DuplicateCycle(cycleID uuid.UUID, newStartDate time.Time) (*model.CycleModel, error) {
	var out *model.CycleModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		src, err := s.loadCycle(tx, cycleID)
		if err != nil {
			return err
		}

		dup := *src
		dup.CycleID = uuid.New()
		dup.CycleName = src.CycleName + " (copy)"
		dup.CycleStartDate = newStartDate
		dup.CycleEndDate = nil
		dup.CycleCompletedMeetings = 0
		dup.CycleRemainingMeetings = src.CycleTotalMeetings
		dup.CycleCreatedAt = time.Time{}
		dup.CycleUpdatedAt = nil
		dup.CycleDeletedAt = gorm.DeletedAt{}
		dup.CycleDeletedBy = nil
		if err := tx.Create(&dup).Error; err != nil {
			return err
		}

		rows, err := s.createSeries(tx, &dup, true)
		if err != nil {
			return err
		}
		last := rows[len(rows)-1].MeetingDate
		dup.CycleEndDate = &last
		if err := tx.Save(&dup).Error; err != nil {
			return err
		}

		out = &dup
		return nil
	})
	return out, err
}

/* ===================== SYNC PROGRESS ===================== */

// SyncProgress recomputes the counters from the authoritative meeting rows.
// This is the recovery path after bulk edits bypass the lifecycle service.
func (s *CycleService) SyncProgress(cycleID uuid.UUID) (*model.CycleModel, error) {
	var out *model.CycleModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cycle, err := s.loadCycle(tx, cycleID)
		if err != nil {
			return err
		}

		count := func(status string) (int64, error) {
			var n int64
			err := tx.Model(&meetingmodel.MeetingModel{}).
				Where("meeting_cycle_id = ? AND meeting_status = ?", cycle.CycleID, status).
				Count(&n).Error
			return n, err
		}

		completed, err := count(meetingmodel.StatusCompleted)
		if err != nil {
			return err
		}
		scheduled, err := count(meetingmodel.StatusScheduled)
		if err != nil {
			return err
		}

		cycle.CycleCompletedMeetings = int(completed)
		cycle.CycleRemainingMeetings = int(scheduled)
		if err := tx.Save(cycle).Error; err != nil {
			return err
		}

		out = cycle
		return nil
	})
	return out, err
}

/* ===================== internals ===================== */

func (s *CycleService) loadCycle(tx *gorm.DB, cycleID uuid.UUID) (*model.CycleModel, error) {
	var cycle model.CycleModel
	if err := tx.Where("cycle_id = ?", cycleID).First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Cycle not found")
		}
		return nil, err
	}
	return &cycle, nil
}

func (s *CycleService) createSeries(tx *gorm.DB, cycle *model.CycleModel, projected bool) ([]meetingmodel.MeetingModel, error) {
	var fin meetingservice.Financials
	if projected {
		var instructor *insmodel.InstructorModel
		if cycle.CycleInstructorID != nil {
			var ins insmodel.InstructorModel
			if err := tx.Where("instructor_id = ?", *cycle.CycleInstructorID).First(&ins).Error; err == nil {
				instructor = &ins
			}
		}
		regs, err := meetingservice.ActiveRegistrations(tx, cycle.CycleID)
		if err != nil {
			return nil, err
		}
		fin = meetingservice.ComputeFinancials(cycle, instructor, cycle.CycleDeliveryMode, regs)
	}

	date := FirstOnOrAfter(cycle.CycleStartDate, time.Weekday(cycle.CycleDayOfWeek))
	rows := make([]meetingmodel.MeetingModel, 0, cycle.CycleTotalMeetings)
	for i := 0; i < cycle.CycleTotalMeetings; i++ {
		rows = append(rows, meetingmodel.MeetingModel{
			MeetingCycleID:           cycle.CycleID,
			MeetingInstructorID:      cycle.CycleInstructorID,
			MeetingDate:              date,
			MeetingStartTime:         cycle.CycleStartTime,
			MeetingEndTime:           cycle.CycleEndTime,
			MeetingStatus:            meetingmodel.StatusScheduled,
			MeetingActivityType:      cycle.CycleDeliveryMode,
			MeetingRevenue:           fin.Revenue,
			MeetingInstructorPayment: fin.InstructorPayment,
			MeetingProfit:            fin.Profit,
		})
		date = date.AddDate(0, 0, 7)
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FirstOnOrAfter returns the first occurrence of weekday on or after from.
func FirstOnOrAfter(from time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}
