// internals/features/lessons/cycles/controller/cycle_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/lessons/cycles/dto"
	"educrm_backend/internals/features/lessons/cycles/model"
	"educrm_backend/internals/features/lessons/cycles/service"
	helper "educrm_backend/internals/helpers"
)

type CycleController struct {
	DB  *gorm.DB
	Svc *service.CycleService
}

func NewCycleController(db *gorm.DB) *CycleController {
	return &CycleController{DB: db, Svc: service.NewCycleService(db)}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/cycles
func (ctrl *CycleController) Create(c *fiber.Ctx) error {
	var req dto.CreateCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create cycle")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cycle created", m)
}

/* ===================== LIST ===================== */
// GET /api/cycles
func (ctrl *CycleController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CycleModel{})
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("cycle_customer_id = ?", cid)
	}
	if iid := c.Query("instructor_id"); iid != "" {
		q = q.Where("cycle_instructor_id = ?", iid)
	}
	if pm := c.Query("pricing_mode"); pm != "" {
		q = q.Where("cycle_pricing_mode = ?", pm)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CycleModel
	if err := q.Order("cycle_start_date DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/cycles/:id
func (ctrl *CycleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}

	var m model.CycleModel
	if err := ctrl.DB.Where("cycle_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cycle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/cycles/:id
func (ctrl *CycleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}

	var req dto.UpdateCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CycleModel
	if err := ctrl.DB.Where("cycle_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cycle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update cycle")
	}
	return helper.Success(c, "Cycle updated", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/cycles/:id (soft delete; its meetings stay addressable)
func (ctrl *CycleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.CycleModel{}).
		Where("cycle_id = ?", id).
		Update("cycle_deleted_by", actorID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cycle not found")
	}
	if err := ctrl.DB.Where("cycle_id = ?", id).
		Delete(&model.CycleModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete cycle")
	}
	return helper.Success(c, "Cycle deleted", nil)
}

/* ===================== GENERATE MEETINGS ===================== */
// POST /api/cycles/:id/generate-meetings
func (ctrl *CycleController) GenerateMeetings(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}

	rows, err := ctrl.Svc.GenerateMeetings(id)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meetings generated", rows)
}

/* ===================== DUPLICATE ===================== */
// POST /api/cycles/:id/duplicate
func (ctrl *CycleController) Duplicate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}

	var req dto.DuplicateCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dup, err := ctrl.Svc.DuplicateCycle(id, req.NewStartDate)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cycle duplicated", dup)
}

/* ===================== SYNC PROGRESS ===================== */
// POST /api/cycles/:id/sync-progress
func (ctrl *CycleController) SyncProgress(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid cycle id")
	}

	cycle, err := ctrl.Svc.SyncProgress(id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Cycle progress synced", cycle)
}
