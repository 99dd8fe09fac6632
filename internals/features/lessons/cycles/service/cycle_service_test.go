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
	"educrm_backend/internals/features/lessons/cycles/model"
	meetingmodel "educrm_backend/internals/features/lessons/meetings/model"
	regmodel "educrm_backend/internals/features/lessons/registrations/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CycleModel{},
		&meetingmodel.MeetingModel{},
		&regmodel.RegistrationModel{},
		&insmodel.InstructorModel{},
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

func fptr(v float64) *float64 { return &v }

func seedCycle(t *testing.T, db *gorm.DB) *model.CycleModel {
	t.Helper()
	cycle := &model.CycleModel{
		CycleName:            "Coding Club",
		CycleDayOfWeek:       0, // Sunday
		CycleStartTime:       "10:00",
		CycleEndTime:         "11:00",
		CycleDurationMinutes: 60,
		CycleStartDate:       date("2024-03-06"), // a Wednesday
		CyclePricingMode:     model.PricingInstitutionalFixed,
		CycleMeetingRevenue:  fptr(400),
		CycleDeliveryMode:    model.DeliveryFrontal,
		CycleTotalMeetings:   4,
	}
	require.NoError(t, db.Create(cycle).Error)
	return cycle
}

/* ===================== GENERATE ===================== */

func TestGenerateMeetingsWeeklySeries(t *testing.T) {
	db := newTestDB(t)
	cycle := seedCycle(t, db)
	svc := NewCycleService(db)

	rows, err := svc.GenerateMeetings(cycle.CycleID)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// first Sunday on or after the Wednesday start, then weekly
	want := []string{"2024-03-10", "2024-03-17", "2024-03-24", "2024-03-31"}
	for i, r := range rows {
		assert.Equal(t, want[i], r.MeetingDate.Format("2006-01-02"))
		assert.Equal(t, meetingmodel.StatusScheduled, r.MeetingStatus)
		assert.Equal(t, "10:00", r.MeetingStartTime)
	}

	var fresh model.CycleModel
	require.NoError(t, db.First(&fresh, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, 0, fresh.CycleCompletedMeetings)
	assert.Equal(t, 4, fresh.CycleRemainingMeetings)
	require.NotNil(t, fresh.CycleEndDate)
	assert.Equal(t, "2024-03-31", fresh.CycleEndDate.Format("2006-01-02"))
}

func TestGenerateMeetingsRefusesToRunTwice(t *testing.T) {
	db := newTestDB(t)
	cycle := seedCycle(t, db)
	svc := NewCycleService(db)

	_, err := svc.GenerateMeetings(cycle.CycleID)
	require.NoError(t, err)

	_, err = svc.GenerateMeetings(cycle.CycleID)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestGenerateMeetingsNeedsTotal(t *testing.T) {
	db := newTestDB(t)
	cycle := seedCycle(t, db)
	require.NoError(t, db.Model(&model.CycleModel{}).
		Where("cycle_id = ?", cycle.CycleID).
		Update("cycle_total_meetings", 0).Error)
	svc := NewCycleService(db)

	_, err := svc.GenerateMeetings(cycle.CycleID)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

/* ===================== DUPLICATE ===================== */

func TestDuplicateCycleClonesWithProjectedFinancials(t *testing.T) {
	db := newTestDB(t)

	ins := &insmodel.InstructorModel{
		InstructorName:           "Noa",
		InstructorEmploymentType: insmodel.EmploymentContractor,
		InstructorRateFrontal:    100,
	}
	require.NoError(t, db.Create(ins).Error)

	cycle := seedCycle(t, db)
	require.NoError(t, db.Model(&model.CycleModel{}).
		Where("cycle_id = ?", cycle.CycleID).
		Update("cycle_instructor_id", ins.InstructorID).Error)

	svc := NewCycleService(db)
	dup, err := svc.DuplicateCycle(cycle.CycleID, date("2024-09-01"))
	require.NoError(t, err)

	assert.NotEqual(t, cycle.CycleID, dup.CycleID)
	assert.Equal(t, "Coding Club (copy)", dup.CycleName)
	assert.Equal(t, 0, dup.CycleCompletedMeetings)
	assert.Equal(t, 4, dup.CycleRemainingMeetings)

	var rows []meetingmodel.MeetingModel
	require.NoError(t, db.Where("meeting_cycle_id = ?", dup.CycleID).
		Order("meeting_date ASC").Find(&rows).Error)
	require.Len(t, rows, 4)
	// 2024-09-01 is already a Sunday
	assert.Equal(t, "2024-09-01", rows[0].MeetingDate.Format("2006-01-02"))

	// projected, not zeroed: revenue 400, payment 100/h for 60 min
	assert.Equal(t, 400.0, rows[0].MeetingRevenue)
	assert.Equal(t, 100.0, rows[0].MeetingInstructorPayment)
	assert.Equal(t, 300.0, rows[0].MeetingProfit)

	// source cycle untouched
	var src model.CycleModel
	require.NoError(t, db.First(&src, "cycle_id = ?", cycle.CycleID).Error)
	assert.Equal(t, "Coding Club", src.CycleName)
}

/* ===================== SYNC ===================== */

func TestSyncProgressRecountsFromMeetings(t *testing.T) {
	db := newTestDB(t)
	cycle := seedCycle(t, db)
	svc := NewCycleService(db)

	_, err := svc.GenerateMeetings(cycle.CycleID)
	require.NoError(t, err)

	// bulk edit behind the lifecycle service's back
	require.NoError(t, db.Model(&meetingmodel.MeetingModel{}).
		Where("meeting_cycle_id = ? AND meeting_date <= ?", cycle.CycleID, date("2024-03-17")).
		Update("meeting_status", meetingmodel.StatusCompleted).Error)
	require.NoError(t, db.Model(&meetingmodel.MeetingModel{}).
		Where("meeting_cycle_id = ? AND meeting_date = ?", cycle.CycleID, date("2024-03-24")).
		Update("meeting_status", meetingmodel.StatusCancelled).Error)

	out, err := svc.SyncProgress(cycle.CycleID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.CycleCompletedMeetings)
	assert.Equal(t, 1, out.CycleRemainingMeetings) // cancelled rows count for neither
}

func TestSyncProgressUnknownCycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewCycleService(db)

	_, err := svc.SyncProgress(uuid.New())
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

/* ===================== helpers ===================== */

func TestFirstOnOrAfter(t *testing.T) {
	cases := []struct {
		from    string
		weekday time.Weekday
		want    string
	}{
		{"2024-03-06", time.Sunday, "2024-03-10"},
		{"2024-03-10", time.Sunday, "2024-03-10"}, // already the right day
		{"2024-03-10", time.Monday, "2024-03-11"},
		{"2024-03-11", time.Sunday, "2024-03-17"},
	}
	for _, tc := range cases {
		got := FirstOnOrAfter(date(tc.from), tc.weekday)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "from %s to %s", tc.from, tc.weekday)
	}
}
