// internals/features/lessons/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educrm_backend/internals/features/lessons/attendance/dto"
	"educrm_backend/internals/features/lessons/attendance/model"
	meetModel "educrm_backend/internals/features/lessons/meetings/model"
	helper "educrm_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

/* ===================== MARK (BULK UPSERT) ===================== */
// POST /api/meetings/:id/attendance
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	meetingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var meeting meetModel.MeetingModel
	if err := ctrl.DB.Where("meeting_id = ?", meetingID).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if meeting.MeetingStatus == meetModel.StatusCancelled {
		return fiber.NewError(fiber.StatusConflict, "Cannot mark attendance on a cancelled meeting")
	}

	rows := make([]model.AttendanceModel, 0, len(req.Items))
	for _, it := range req.Items {
		rows = append(rows, model.AttendanceModel{
			AttendanceMeetingID:      meetingID,
			AttendanceRegistrationID: it.RegistrationID,
			AttendanceStatus:         it.Status,
			AttendanceNote:           it.Note,
			AttendanceMarkedBy:       &actorID,
		})
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_meeting_id"},
			{Name: "attendance_registration_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status", "attendance_note", "attendance_marked_by", "attendance_updated_at",
		}),
	}).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.Success(c, "Attendance saved", rows)
}

/* ===================== LIST BY MEETING ===================== */
// GET /api/meetings/:id/attendance
func (ctrl *AttendanceController) ListByMeeting(c *fiber.Ctx) error {
	meetingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_meeting_id = ?", meetingID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

/* ===================== LIST BY REGISTRATION ===================== */
// GET /api/registrations/:id/attendance
func (ctrl *AttendanceController) ListByRegistration(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid registration id")
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_registration_id = ?", regID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}
