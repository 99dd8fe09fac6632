// internals/features/billing/payments/controller/invoice_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm_backend/internals/features/billing/payments/dto"
	"educrm_backend/internals/features/billing/payments/model"
	paySvc "educrm_backend/internals/features/billing/payments/service"
	quoteModel "educrm_backend/internals/features/billing/quotes/model"
	custModel "educrm_backend/internals/features/crm/customers/model"
	taskModel "educrm_backend/internals/features/system/tasks/model"
	taskSvc "educrm_backend/internals/features/system/tasks/service"
	helper "educrm_backend/internals/helpers"
	"educrm_backend/internals/integrations/notify"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /api/invoices
func (ctrl *InvoiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var customer custModel.CustomerModel
	if err := ctrl.DB.Where("customer_id = ?", req.InvoiceCustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	amount := req.InvoiceAmount
	if req.InvoiceQuoteID != nil {
		var quote quoteModel.QuoteModel
		if err := ctrl.DB.Where("quote_id = ?", *req.InvoiceQuoteID).
			First(&quote).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Quote not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if quote.QuoteStatus != quoteModel.QuoteStatusAccepted {
			return fiber.NewError(fiber.StatusConflict, "Quote is not accepted")
		}
		amount = quote.QuoteTotal
	}
	if amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invoice amount must be positive")
	}

	inv := model.InvoiceModel{
		InvoiceCustomerID: req.InvoiceCustomerID,
		InvoiceQuoteID:    req.InvoiceQuoteID,
		InvoiceOrderID:    fmt.Sprintf("INV-%d", time.Now().UnixNano()),
		InvoiceAmount:     amount,
		InvoiceStatus:     model.InvoiceStatusPending,
		InvoiceNote:       req.InvoiceNote,
	}
	if err := ctrl.DB.Create(&inv).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create invoice")
	}

	email := ""
	if customer.CustomerEmail != nil {
		email = *customer.CustomerEmail
	}
	token, err := paySvc.GenerateSnapToken(inv, customer.CustomerName, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create payment token")
	}
	inv.InvoiceSnapToken = token
	ctrl.DB.Save(&inv)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Invoice created", dto.CreateInvoiceResponse{
		InvoiceID: inv.InvoiceID,
		OrderID:   inv.InvoiceOrderID,
		SnapToken: token,
	})
}

/* ===================== LIST ===================== */
// GET /api/invoices?customer_id=&status=
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.InvoiceModel{})
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("invoice_customer_id = ?", cid)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("invoice_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InvoiceModel
	if err := q.Order("invoice_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}

/* ===================== GET BY ID ===================== */
// GET /api/invoices/:id
func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", inv)
}

/* ===================== WEBHOOK ===================== */
// POST /api/payments/notification (unauthenticated, gateway callback)
func (ctrl *InvoiceController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" || txStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := ctrl.applyGatewayStatus(orderID, txStatus); err != nil {
		log.Println("[ERROR] payment webhook:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (ctrl *InvoiceController) applyGatewayStatus(orderID, txStatus string) error {
	var inv model.InvoiceModel
	if err := ctrl.DB.Where("invoice_order_id = ?", orderID).First(&inv).Error; err != nil {
		return fmt.Errorf("invoice %s not found: %w", orderID, err)
	}

	prev := inv.InvoiceStatus
	switch txStatus {
	case "settlement", "capture", "success":
		inv.InvoiceStatus = model.InvoiceStatusPaid
		now := time.Now()
		inv.InvoicePaidAt = &now
	case "deny", "failure", "failed":
		inv.InvoiceStatus = model.InvoiceStatusFailed
	case "cancel", "cancelled", "expire":
		inv.InvoiceStatus = model.InvoiceStatusCancelled
	default:
		inv.InvoiceStatus = model.InvoiceStatusPending
	}

	return ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&inv).Error; err != nil {
			return err
		}
		// receipt email once, on the pending -> paid edge
		if prev != model.InvoiceStatusPaid && inv.InvoiceStatus == model.InvoiceStatusPaid {
			var customer custModel.CustomerModel
			if err := tx.Where("customer_id = ?", inv.InvoiceCustomerID).
				First(&customer).Error; err == nil &&
				customer.CustomerEmail != nil && *customer.CustomerEmail != "" {
				payload := notify.EmailPayload{
					To:      *customer.CustomerEmail,
					Subject: fmt.Sprintf("Payment received for %s", inv.InvoiceOrderID),
					Body: fmt.Sprintf("Hi %s,\n\nWe received your payment of %.2f for order %s. Thank you!",
						customer.CustomerName, inv.InvoiceAmount, inv.InvoiceOrderID),
				}
				if err := taskSvc.Enqueue(tx, taskModel.TaskNotifyEmail, payload); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
