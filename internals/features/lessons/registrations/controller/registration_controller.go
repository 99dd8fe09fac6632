// internals/features/lessons/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/lessons/registrations/dto"
	"educrm_backend/internals/features/lessons/registrations/model"
	helper "educrm_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/registrations
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// one live registration per student per cycle
	var dup int64
	if err := ctrl.DB.Model(&model.RegistrationModel{}).
		Where("registration_cycle_id = ? AND registration_student_id = ? AND registration_status IN ?",
			req.RegistrationCycleID, req.RegistrationStudentID,
			[]string{model.RegistrationStatusRegistered, model.RegistrationStatusActive}).
		Count(&dup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return fiber.NewError(fiber.StatusConflict, "Student already registered for this cycle")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create registration")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration created", m)
}

/* ===================== LIST ===================== */
// GET /api/registrations?cycle_id=&student_id=&status=
func (ctrl *RegistrationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.RegistrationModel{})
	if cid := c.Query("cycle_id"); cid != "" {
		q = q.Where("registration_cycle_id = ?", cid)
	}
	if sid := c.Query("student_id"); sid != "" {
		q = q.Where("registration_student_id = ?", sid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("registration_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.RegistrationModel
	if err := q.Order("registration_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== UPDATE ===================== */
// PATCH /api/registrations/:id
func (ctrl *RegistrationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid registration id")
	}

	var req dto.UpdateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.RegistrationModel
	if err := ctrl.DB.Where("registration_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Registration not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update registration")
	}
	return helper.Success(c, "Registration updated", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/registrations/:id (soft delete)
func (ctrl *RegistrationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid registration id")
	}

	res := ctrl.DB.Where("registration_id = ?", id).Delete(&model.RegistrationModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete registration")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Registration not found")
	}
	return helper.Success(c, "Registration deleted", nil)
}
