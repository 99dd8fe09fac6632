// internals/features/lessons/meetings/service/replacement.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	cyclemodel "educrm_backend/internals/features/lessons/cycles/model"
	"educrm_backend/internals/features/lessons/meetings/model"
)

// zoomLeadMinutes: rooms open 10 minutes before class and run 10 minutes
// past the nominal duration.
const zoomLeadMinutes = 10

// ReplacementHandler adapts SynthesizeReplacement to the task worker.
func (s *MeetingService) ReplacementHandler() func(payload []byte) error {
	return func(payload []byte) error {
		var p ReplacementPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode replacement payload: %w", err)
		}
		_, err := s.SynthesizeReplacement(p.MeetingID)
		return err
	}
}

// SynthesizeReplacement appends a new meeting to the cycle of a postponed
// one. Idempotent: a second delivery finds the provenance link and returns
// the existing row.
//
// Scheduling rule: one week after the cycle's latest held-or-upcoming
// meeting (excluding the postponed one), falling back to the cycle end date.
// remainingMeetings grows by one; totalMeetings never does: the commitment
// to the customer is unchanged, one more meeting is simply owed against it.
func (s *MeetingService) SynthesizeReplacement(postponedID uuid.UUID) (*model.MeetingModel, error) {
	var existing model.MeetingModel
	err := s.DB.Where("meeting_replaces_meeting_id = ?", postponedID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var replacement *model.MeetingModel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		postponed, cycle, err := s.loadMeetingCycle(tx, postponedID)
		if err != nil {
			return err
		}

		// 1) anchor date: latest scheduled/completed meeting in the cycle
		var last model.MeetingModel
		anchor := time.Time{}
		err = tx.
			Where("meeting_cycle_id = ? AND meeting_id <> ? AND meeting_status IN ?",
				cycle.CycleID, postponed.MeetingID,
				[]string{model.StatusScheduled, model.StatusCompleted}).
			Order("meeting_date DESC").
			First(&last).Error
		switch {
		case err == nil:
			anchor = last.MeetingDate
		case errors.Is(err, gorm.ErrRecordNotFound):
			if cycle.CycleEndDate != nil {
				anchor = *cycle.CycleEndDate
			} else {
				anchor = postponed.MeetingDate
			}
		default:
			return err
		}

		// 2) one week later, cycle's nominal times
		newDate := anchor.AddDate(0, 0, 7)

		activityType := cycle.CycleDeliveryMode
		if activityType == "" {
			activityType = postponed.MeetingActivityType
		}

		// 4) live financial projection, same formulas as completion
		instructor, err := s.instructorFor(tx, postponed.MeetingInstructorID)
		if err != nil {
			return err
		}
		regs, err := ActiveRegistrations(tx, cycle.CycleID)
		if err != nil {
			return err
		}
		fin := ComputeFinancials(cycle, instructor, activityType, regs)

		topic := fmt.Sprintf("Replacement for meeting on %s", postponed.MeetingDate.Format("2006-01-02"))
		m := &model.MeetingModel{
			MeetingCycleID:           cycle.CycleID,
			MeetingInstructorID:      postponed.MeetingInstructorID,
			MeetingDate:              newDate,
			MeetingStartTime:         cycle.CycleStartTime,
			MeetingEndTime:           cycle.CycleEndTime,
			MeetingStatus:            model.StatusScheduled,
			MeetingActivityType:      activityType,
			MeetingTopic:             &topic,
			MeetingRevenue:           fin.Revenue,
			MeetingInstructorPayment: fin.InstructorPayment,
			MeetingProfit:            fin.Profit,
			MeetingReplacesMeetingID: &postponed.MeetingID,
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		// 6) one more meeting owed; total commitment unchanged
		cycle.CycleRemainingMeetings++
		if err := tx.Save(cycle).Error; err != nil {
			return err
		}

		// 7) best-effort room provisioning
		if cycle.CycleRequiresZoom || postponed.MeetingZoomMeetingID != nil {
			s.provisionRoom(tx, m, cycle)
		}

		replacement = m
		return nil
	})
	return replacement, err
}

// provisionRoom creates a Zoom room for the meeting. Failures are logged and
// swallowed: the replacement exists either way and can be provisioned later.
func (s *MeetingService) provisionRoom(tx *gorm.DB, m *model.MeetingModel, cycle *cyclemodel.CycleModel) {
	if s.Zoom == nil || !s.Zoom.Enabled() {
		log.Printf("[WARN] zoom not configured, meeting %s left without a room", m.MeetingID)
		return
	}

	start := CombineDateTime(m.MeetingDate, m.MeetingStartTime).Add(-zoomLeadMinutes * time.Minute)
	duration := cycle.CycleDurationMinutes + zoomLeadMinutes

	hostID, err := s.Zoom.FindAvailableHost(start, duration)
	if err != nil || hostID == "" {
		log.Printf("[WARN] no zoom host for meeting %s: %v", m.MeetingID, err)
		return
	}

	topic := cycle.CycleName
	if m.MeetingTopic != nil {
		topic = *m.MeetingTopic
	}
	room, err := s.Zoom.CreateRoom(hostID, topic, start, duration)
	if err != nil {
		log.Printf("[WARN] zoom room create for meeting %s: %v", m.MeetingID, err)
		return
	}

	m.MeetingZoomMeetingID = &room.ID
	m.MeetingZoomJoinURL = &room.JoinURL
	m.MeetingZoomStartURL = &room.StartURL
	m.MeetingZoomPassword = &room.Password
	if err := tx.Save(m).Error; err != nil {
		log.Printf("[ERROR] save zoom fields for meeting %s: %v", m.MeetingID, err)
	}
}

func (s *MeetingService) instructorFor(tx *gorm.DB, id *uuid.UUID) (*insmodel.InstructorModel, error) {
	if id == nil {
		return nil, nil
	}
	var row insmodel.InstructorModel
	if err := tx.Where("instructor_id = ?", *id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // instructor deleted since; pay nothing
		}
		return nil, err
	}
	return &row, nil
}

// CombineDateTime glues a date-only value and an "HH:MM" string into one
// timestamp. Malformed times fall back to midnight.
func CombineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
