package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	insmodel "educrm_backend/internals/features/crm/instructors/model"
	cyclemodel "educrm_backend/internals/features/lessons/cycles/model"
	"educrm_backend/internals/features/lessons/meetings/model"
	regmodel "educrm_backend/internals/features/lessons/registrations/model"
	taskmodel "educrm_backend/internals/features/system/tasks/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cyclemodel.CycleModel{},
		&model.MeetingModel{},
		&regmodel.RegistrationModel{},
		&insmodel.InstructorModel{},
		&taskmodel.TaskModel{},
	))
	return db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedFixedCycle(t *testing.T, db *gorm.DB) (*cyclemodel.CycleModel, *insmodel.InstructorModel) {
	t.Helper()
	ins := &insmodel.InstructorModel{
		InstructorName:           "Dana",
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    200,
	}
	require.NoError(t, db.Create(ins).Error)

	cycle := &cyclemodel.CycleModel{
		CycleName:              "Robotics A",
		CycleInstructorID:      &ins.InstructorID,
		CycleDayOfWeek:         0, // Sunday
		CycleStartTime:         "16:00",
		CycleEndTime:           "17:30",
		CycleDurationMinutes:   90,
		CycleStartDate:         date("2024-03-10"),
		CyclePricingMode:       cyclemodel.PricingInstitutionalFixed,
		CycleMeetingRevenue:    fptr(500),
		CycleDeliveryMode:      cyclemodel.DeliveryFrontal,
		CycleTotalMeetings:     10,
		CycleRemainingMeetings: 10,
	}
	require.NoError(t, db.Create(cycle).Error)
	return cycle, ins
}

func seedMeeting(t *testing.T, db *gorm.DB, cycle *cyclemodel.CycleModel, ins *insmodel.InstructorModel, day string, status string) *model.MeetingModel {
	t.Helper()
	m := &model.MeetingModel{
		MeetingCycleID:      cycle.CycleID,
		MeetingDate:         date(day),
		MeetingStartTime:    cycle.CycleStartTime,
		MeetingEndTime:      cycle.CycleEndTime,
		MeetingStatus:       status,
		MeetingActivityType: cycle.CycleDeliveryMode,
	}
	if ins != nil {
		m.MeetingInstructorID = &ins.InstructorID
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

/* ===================== COMPLETE ===================== */

func TestCompleteComputesFinancialsAndCounters(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	meeting := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)

	svc := NewMeetingService(db)
	actor := uuid.New()

	out, err := svc.Complete(meeting.MeetingID, actor)
	require.NoError(t, err)

	assert.Equal(t, model.StatusCompleted, out.MeetingStatus)
	assert.Equal(t, 500.0, out.MeetingRevenue)
	assert.Equal(t, 300.0, out.MeetingInstructorPayment)
	assert.Equal(t, 200.0, out.MeetingProfit)
	require.NotNil(t, out.MeetingStatusUpdatedBy)
	assert.Equal(t, actor, *out.MeetingStatusUpdatedBy)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 1, fresh.CycleCompletedMeetings)
	assert.Equal(t, 9, fresh.CycleRemainingMeetings)
	assert.Equal(t, 10, fresh.CycleTotalMeetings)
}

func TestRecompleteLeavesCountersAlone(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	meeting := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)

	svc := NewMeetingService(db)
	_, err := svc.Complete(meeting.MeetingID, uuid.New())
	require.NoError(t, err)
	_, err = svc.Complete(meeting.MeetingID, uuid.New())
	require.NoError(t, err)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 1, fresh.CycleCompletedMeetings)
	assert.Equal(t, 9, fresh.CycleRemainingMeetings)
}

func TestCompleteRejectsCancelledAndPostponed(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	cancelled := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusCancelled)
	_, err := svc.Complete(cancelled.MeetingID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	postponed := seedMeeting(t, db, cycle, ins, "2024-03-17", model.StatusPostponed)
	_, err = svc.Complete(postponed.MeetingID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestCompleteUnknownMeeting(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeetingService(db)
	_, err := svc.Complete(uuid.New(), uuid.New())
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

/* ===================== CANCEL / POSTPONE ===================== */

func TestCancelOnlyFromScheduled(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	m := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)
	out, err := svc.Cancel(m.MeetingID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, out.MeetingStatus)

	// cancel is terminal
	_, err = svc.Cancel(m.MeetingID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	done := seedMeeting(t, db, cycle, ins, "2024-03-17", model.StatusCompleted)
	_, err = svc.Cancel(done.MeetingID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestCancelTouchesNoCounters(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	m := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)
	_, err := svc.Cancel(m.MeetingID, uuid.New())
	require.NoError(t, err)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 0, fresh.CycleCompletedMeetings)
	assert.Equal(t, 10, fresh.CycleRemainingMeetings)
}

func TestPostponeEnqueuesReplacementTask(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	m := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)
	out, err := svc.Postpone(m.MeetingID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPostponed, out.MeetingStatus)

	var tasks []taskmodel.TaskModel
	require.NoError(t, db.Where("task_type = ?", taskmodel.TaskMeetingReplacement).Find(&tasks).Error)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskmodel.TaskStatusPending, tasks[0].TaskStatus)
	assert.Contains(t, string(tasks[0].TaskPayload), m.MeetingID.String())

	// only a scheduled meeting can be postponed
	_, err = svc.Postpone(m.MeetingID, uuid.New())
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

/* ===================== RECALCULATE ===================== */

func TestRecalculateKeepsStatusAndCounters(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	m := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)
	_, err := svc.Complete(m.MeetingID, uuid.New())
	require.NoError(t, err)

	// revenue changes after completion; recalculate picks it up
	require.NoError(t, db.Model(&cyclemodel.CycleModel{}).
		Where("cycle_id = ?", cycle.CycleID).
		Update("cycle_meeting_revenue", 800).Error)

	out, err := svc.Recalculate(m.MeetingID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, out.MeetingStatus)
	assert.Equal(t, 800.0, out.MeetingRevenue)
	assert.Equal(t, 500.0, out.MeetingProfit)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 1, fresh.CycleCompletedMeetings)
}

/* ===================== REPLACEMENT ===================== */

func TestSynthesizeReplacementSchedulesAfterLatest(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	postponed := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusPostponed)
	seedMeeting(t, db, cycle, ins, "2024-03-17", model.StatusCompleted)
	seedMeeting(t, db, cycle, ins, "2024-03-24", model.StatusScheduled)

	rep, err := svc.SynthesizeReplacement(postponed.MeetingID)
	require.NoError(t, err)

	// one week past the latest live meeting (2024-03-24)
	assert.Equal(t, "2024-03-31", rep.MeetingDate.Format("2006-01-02"))
	assert.Equal(t, model.StatusScheduled, rep.MeetingStatus)
	assert.Equal(t, cycle.CycleStartTime, rep.MeetingStartTime)
	require.NotNil(t, rep.MeetingReplacesMeetingID)
	assert.Equal(t, postponed.MeetingID, *rep.MeetingReplacesMeetingID)
	require.NotNil(t, rep.MeetingTopic)
	assert.Equal(t, "Replacement for meeting on 2024-03-10", *rep.MeetingTopic)

	// projected financials, same formulas as completion
	assert.Equal(t, 500.0, rep.MeetingRevenue)
	assert.Equal(t, 300.0, rep.MeetingInstructorPayment)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 11, fresh.CycleRemainingMeetings)
	assert.Equal(t, 10, fresh.CycleTotalMeetings, "the customer commitment never grows")
}

func TestSynthesizeReplacementFallsBackToCycleEndDate(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	end := date("2024-05-26")
	require.NoError(t, db.Model(&cyclemodel.CycleModel{}).
		Where("cycle_id = ?", cycle.CycleID).
		Update("cycle_end_date", end).Error)
	svc := NewMeetingService(db)

	postponed := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusPostponed)

	rep, err := svc.SynthesizeReplacement(postponed.MeetingID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", rep.MeetingDate.Format("2006-01-02"))
}

func TestSynthesizeReplacementIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	postponed := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusPostponed)
	seedMeeting(t, db, cycle, ins, "2024-03-17", model.StatusScheduled)

	first, err := svc.SynthesizeReplacement(postponed.MeetingID)
	require.NoError(t, err)

	// a redelivered task finds the provenance link and changes nothing
	second, err := svc.SynthesizeReplacement(postponed.MeetingID)
	require.NoError(t, err)
	assert.Equal(t, first.MeetingID, second.MeetingID)

	var n int64
	require.NoError(t, db.Model(&model.MeetingModel{}).
		Where("meeting_replaces_meeting_id = ?", postponed.MeetingID).
		Count(&n).Error)
	assert.EqualValues(t, 1, n)

	var fresh cyclemodel.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 11, fresh.CycleRemainingMeetings)
}

func TestReplacementHandlerEndToEnd(t *testing.T) {
	db := newTestDB(t)
	cycle, ins := seedFixedCycle(t, db)
	svc := NewMeetingService(db)

	m := seedMeeting(t, db, cycle, ins, "2024-03-10", model.StatusScheduled)
	_, err := svc.Postpone(m.MeetingID, uuid.New())
	require.NoError(t, err)

	var task taskmodel.TaskModel
	require.NoError(t, db.Where("task_type = ?", taskmodel.TaskMeetingReplacement).First(&task).Error)

	require.NoError(t, svc.ReplacementHandler()(task.TaskPayload))

	var rep model.MeetingModel
	require.NoError(t, db.Where("meeting_replaces_meeting_id = ?", m.MeetingID).First(&rep).Error)
	assert.Equal(t, model.StatusScheduled, rep.MeetingStatus)
}

/* ===================== helpers ===================== */

func TestCombineDateTime(t *testing.T) {
	d := date("2024-03-10")

	at := CombineDateTime(d, "16:30")
	assert.Equal(t, 16, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, d.Day(), at.Day())

	// malformed times fall back to midnight
	mid := CombineDateTime(d, "not-a-time")
	assert.Equal(t, 0, mid.Hour())
	assert.Equal(t, 0, mid.Minute())
}
