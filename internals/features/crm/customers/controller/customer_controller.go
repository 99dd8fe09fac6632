// internals/features/crm/customers/controller/customer_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/crm/customers/dto"
	"educrm_backend/internals/features/crm/customers/model"
	helper "educrm_backend/internals/helpers"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/customers
func (ctrl *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create customer")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Customer created", m)
}

/* ===================== LIST ===================== */
// GET /api/customers
func (ctrl *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CustomerModel{})
	if st := c.Query("status"); st != "" {
		q = q.Where("customer_status = ?", st)
	}
	if ct := c.Query("type"); ct != "" {
		q = q.Where("customer_type = ?", ct)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("customer_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CustomerModel
	if err := q.Order("customer_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/customers/:id
func (ctrl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer id")
	}

	var m model.CustomerModel
	if err := ctrl.DB.Where("customer_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/customers/:id
func (ctrl *CustomerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer id")
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CustomerModel
	if err := ctrl.DB.Where("customer_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update customer")
	}
	return helper.Success(c, "Customer updated", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/customers/:id (soft delete)
func (ctrl *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.CustomerModel{}).
		Where("customer_id = ?", id).
		Update("customer_deleted_by", actorID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	if err := ctrl.DB.Where("customer_id = ?", id).
		Delete(&model.CustomerModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete customer")
	}
	return helper.Success(c, "Customer deleted", nil)
}
