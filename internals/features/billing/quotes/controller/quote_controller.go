// internals/features/billing/quotes/controller/quote_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"educrm_backend/internals/features/billing/quotes/dto"
	"educrm_backend/internals/features/billing/quotes/model"
	finance "educrm_backend/internals/features/lessons/meetings/service"
	helper "educrm_backend/internals/helpers"
)

type QuoteController struct {
	DB *gorm.DB
}

func NewQuoteController(db *gorm.DB) *QuoteController {
	return &QuoteController{DB: db}
}

var validate = validator.New()

func computeTotals(items []dto.QuoteLineItem, discount float64) (subtotal, total float64) {
	for _, it := range items {
		subtotal += finance.RoundCurrency(float64(it.Quantity) * it.UnitPrice)
	}
	subtotal = finance.RoundCurrency(subtotal)
	total = finance.RoundCurrency(subtotal - discount)
	return
}

/* ===================== CREATE ===================== */
// POST /api/quotes
func (ctrl *QuoteController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuoteRequest
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

	itemsJSON, err := json.Marshal(req.LineItems)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid line items")
	}
	subtotal, total := computeTotals(req.LineItems, req.QuoteDiscount)

	m := &model.QuoteModel{
		QuoteCustomerID: req.QuoteCustomerID,
		QuoteCycleID:    req.QuoteCycleID,
		QuoteNumber:     fmt.Sprintf("QT-%d", time.Now().UnixNano()),
		QuoteLineItems:  datatypes.JSON(itemsJSON),
		QuoteSubtotal:   subtotal,
		QuoteDiscount:   req.QuoteDiscount,
		QuoteTotal:      total,
		QuoteStatus:     model.QuoteStatusDraft,
		QuoteValidUntil: req.QuoteValidUntil,
		QuoteNote:       req.QuoteNote,
		QuoteCreatedBy:  &actorID,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create quote")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quote created", m)
}

/* ===================== LIST ===================== */
// GET /api/quotes?customer_id=&status=
func (ctrl *QuoteController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.QuoteModel{})
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("quote_customer_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("quote_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.QuoteModel
	if err := q.Order("quote_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/quotes/:id
func (ctrl *QuoteController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.load(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", m)
}

/* ===================== UPDATE ===================== */
// PATCH /api/quotes/:id, draft only
func (ctrl *QuoteController) Update(c *fiber.Ctx) error {
	var req dto.UpdateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.load(c)
	if err != nil {
		return err
	}
	if m.QuoteStatus != model.QuoteStatusDraft {
		return fiber.NewError(fiber.StatusConflict, "Only draft quotes can be edited")
	}

	if req.QuoteDiscount != nil {
		m.QuoteDiscount = *req.QuoteDiscount
	}
	if req.QuoteValidUntil != nil {
		m.QuoteValidUntil = req.QuoteValidUntil
	}
	if req.QuoteNote != nil {
		m.QuoteNote = req.QuoteNote
	}
	if len(req.LineItems) > 0 {
		itemsJSON, err := json.Marshal(req.LineItems)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid line items")
		}
		m.QuoteLineItems = datatypes.JSON(itemsJSON)
		m.QuoteSubtotal, m.QuoteTotal = computeTotals(req.LineItems, m.QuoteDiscount)
	} else if req.QuoteDiscount != nil {
		var items []dto.QuoteLineItem
		if err := json.Unmarshal(m.QuoteLineItems, &items); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stored line items unreadable")
		}
		m.QuoteSubtotal, m.QuoteTotal = computeTotals(items, m.QuoteDiscount)
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update quote")
	}
	return helper.Success(c, "Quote updated", m)
}

/* ===================== LIFECYCLE ===================== */

// POST /api/quotes/:id/send
func (ctrl *QuoteController) Send(c *fiber.Ctx) error {
	return ctrl.transition(c, model.QuoteStatusSent, "Quote sent", nil,
		model.QuoteStatusDraft)
}

// POST /api/quotes/:id/accept
func (ctrl *QuoteController) Accept(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	stamp := func(m *model.QuoteModel) {
		now := time.Now()
		m.QuoteAcceptedAt = &now
		m.QuoteAcceptedBy = &actorID
	}
	return ctrl.transition(c, model.QuoteStatusAccepted, "Quote accepted", stamp,
		model.QuoteStatusDraft, model.QuoteStatusSent)
}

// POST /api/quotes/:id/reject
func (ctrl *QuoteController) Reject(c *fiber.Ctx) error {
	return ctrl.transition(c, model.QuoteStatusRejected, "Quote rejected", nil,
		model.QuoteStatusDraft, model.QuoteStatusSent)
}

func (ctrl *QuoteController) transition(c *fiber.Ctx, to, okMsg string, stamp func(*model.QuoteModel), from ...string) error {
	m, err := ctrl.load(c)
	if err != nil {
		return err
	}

	// stale valid_until beats any transition except reject
	if to != model.QuoteStatusRejected &&
		m.QuoteValidUntil != nil && m.QuoteValidUntil.Before(time.Now()) {
		if m.QuoteStatus != model.QuoteStatusExpired {
			m.QuoteStatus = model.QuoteStatusExpired
			ctrl.DB.Save(m)
		}
		return fiber.NewError(fiber.StatusConflict, "Quote has expired")
	}

	allowed := false
	for _, f := range from {
		if m.QuoteStatus == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Cannot move a %s quote to %s", m.QuoteStatus, to))
	}

	m.QuoteStatus = to
	if stamp != nil {
		stamp(m)
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update quote")
	}
	return helper.Success(c, okMsg, m)
}

/* ===================== DELETE ===================== */
// DELETE /api/quotes/:id (soft delete)
func (ctrl *QuoteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid quote id")
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.QuoteModel{}).
		Where("quote_id = ?", id).
		Update("quote_deleted_by", actorID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Quote not found")
	}
	if err := ctrl.DB.Where("quote_id = ?", id).
		Delete(&model.QuoteModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete quote")
	}
	return helper.Success(c, "Quote deleted", nil)
}

func (ctrl *QuoteController) load(c *fiber.Ctx) (*model.QuoteModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid quote id")
	}
	var m model.QuoteModel
	if err := ctrl.DB.Where("quote_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quote not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
