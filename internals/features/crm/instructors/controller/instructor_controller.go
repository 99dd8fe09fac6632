// internals/features/crm/instructors/controller/instructor_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/crm/instructors/dto"
	"educrm_backend/internals/features/crm/instructors/model"
	helper "educrm_backend/internals/helpers"
)

type InstructorController struct {
	DB *gorm.DB
}

func NewInstructorController(db *gorm.DB) *InstructorController {
	return &InstructorController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/instructors
func (ctrl *InstructorController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create instructor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Instructor created", m)
}

/* ===================== LIST ===================== */
// GET /api/instructors
func (ctrl *InstructorController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.InstructorModel{})
	if et := c.Query("employment_type"); et != "" {
		q = q.Where("instructor_employment_type = ?", et)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("instructor_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InstructorModel
	if err := q.Order("instructor_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/instructors/:id
func (ctrl *InstructorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid instructor id")
	}

	var m model.InstructorModel
	if err := ctrl.DB.Where("instructor_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Instructor not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/instructors/:id
func (ctrl *InstructorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid instructor id")
	}

	var req dto.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.InstructorModel
	if err := ctrl.DB.Where("instructor_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Instructor not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update instructor")
	}
	return helper.Success(c, "Instructor updated", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/instructors/:id (soft delete)
func (ctrl *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid instructor id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.InstructorModel{}).
		Where("instructor_id = ?", id).
		Update("instructor_deleted_by", actorID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Instructor not found")
	}
	if err := ctrl.DB.Where("instructor_id = ?", id).
		Delete(&model.InstructorModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete instructor")
	}
	return helper.Success(c, "Instructor deleted", nil)
}
