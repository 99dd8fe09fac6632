// internals/features/lessons/meetings/controller/meeting_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/lessons/meetings/dto"
	"educrm_backend/internals/features/lessons/meetings/model"
	"educrm_backend/internals/features/lessons/meetings/service"
	helper "educrm_backend/internals/helpers"
)

type MeetingController struct {
	DB  *gorm.DB
	Svc *service.MeetingService
}

func NewMeetingController(db *gorm.DB, svc *service.MeetingService) *MeetingController {
	return &MeetingController{DB: db, Svc: svc}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/meetings
func (ctrl *MeetingController) Create(c *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create meeting")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meeting created", m)
}

/* ===================== LIST ===================== */
// GET /api/meetings?cycle_id=&status=
func (ctrl *MeetingController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.MeetingModel{})
	if cid := c.Query("cycle_id"); cid != "" {
		q = q.Where("meeting_cycle_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("meeting_status = ?", st)
	}
	if iid := c.Query("instructor_id"); iid != "" {
		q = q.Where("meeting_instructor_id = ?", iid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MeetingModel
	if err := q.Order("meeting_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/meetings/:id
func (ctrl *MeetingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}

	var m model.MeetingModel
	if err := ctrl.DB.Where("meeting_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/meetings/:id, administrative edit; never touches status
func (ctrl *MeetingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}

	var req dto.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.MeetingModel
	if err := ctrl.DB.Where("meeting_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update meeting")
	}
	return helper.Success(c, "Meeting updated", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/meetings/:id (soft delete)
func (ctrl *MeetingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.MeetingModel{}).
		Where("meeting_id = ?", id).
		Update("meeting_deleted_by", actorID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
	}
	if err := ctrl.DB.Where("meeting_id = ?", id).
		Delete(&model.MeetingModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete meeting")
	}
	return helper.Success(c, "Meeting deleted", nil)
}

/* ===================== LIFECYCLE ===================== */

// POST /api/meetings/:id/complete
func (ctrl *MeetingController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m, err := ctrl.Svc.Complete(id, actorID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Meeting completed", m)
}

// POST /api/meetings/:id/postpone
func (ctrl *MeetingController) Postpone(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m, err := ctrl.Svc.Postpone(id, actorID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Meeting postponed, replacement pending", m)
}

// POST /api/meetings/:id/cancel
func (ctrl *MeetingController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m, err := ctrl.Svc.Cancel(id, actorID)
	if err != nil {
		return err
	}
	return helper.Success(c, "Meeting cancelled", m)
}

// POST /api/meetings/:id/recalculate
func (ctrl *MeetingController) Recalculate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid meeting id")
	}

	m, err := ctrl.Svc.Recalculate(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Meeting recalculated", m)
}
