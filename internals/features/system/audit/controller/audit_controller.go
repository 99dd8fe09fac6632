// internals/features/system/audit/controller/audit_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educrm_backend/internals/features/system/audit/model"
	helper "educrm_backend/internals/helpers"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/audit-logs?actor_id=&path=&method=
func (ctrl *AuditController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.AuditLogModel{})
	if aid := c.Query("actor_id"); aid != "" {
		q = q.Where("audit_actor_id = ?", aid)
	}
	if path := c.Query("path"); path != "" {
		q = q.Where("audit_path LIKE ?", path+"%")
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("audit_method = ?", method)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AuditLogModel
	if err := q.Order("audit_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(p, total, len(rows)))
}
