package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/pdf"
	"chronos/internal/services"
)

type ReportHandler struct {
	service *services.ReportService
	pdfGen  pdf.Generator
	email   services.EmailService     // may be nil
	tg      *services.TelegramService // may be nil
}

func NewReportHandler(service *services.ReportService, pdfGen pdf.Generator, email services.EmailService, tg *services.TelegramService) *ReportHandler {
	return &ReportHandler{service: service, pdfGen: pdfGen, email: email, tg: tg}
}

// @Summary      Operations summary
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  services.ReportSummary
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary())
}

// POST /reports/export renders the current summary to PDF
func (h *ReportHandler) Export(c *gin.Context) {
	sum := h.service.Summary()
	path, err := h.pdfGen.GenerateSummary(sum)
	if err != nil {
		// export failure never touches state
		log.Printf("[report][export][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	log.Printf("[report][export][ok] path=%s", path)
	c.FileAttachment(path, "operations_summary.pdf")
}

// POST /reports/email { "to": "ops@example.com" }
func (h *ReportHandler) Email(c *gin.Context) {
	if h.email == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "email is not configured"})
		return
	}
	var req struct {
		To string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[report][email][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sum := h.service.Summary()
	path, err := h.pdfGen.GenerateSummary(sum)
	if err != nil {
		log.Printf("[report][email][err] generate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	if err := h.email.SendReport(req.To, sum.OrgName, path); err != nil {
		log.Printf("[report][email][err] send to=%q: %v", req.To, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send report"})
		return
	}
	log.Printf("[report][email][ok] to=%q", req.To)
	c.JSON(http.StatusOK, gin.H{"sent": true})
}

// POST /reports/overdue/notify pushes the overdue-bill list to the
// operations chat
func (h *ReportHandler) NotifyOverdue(c *gin.Context) {
	if h.tg == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "telegram is not configured"})
		return
	}
	bills := h.service.OverdueBills()
	h.tg.NotifyOverdueBills(bills)
	log.Printf("[report][overdue][ok] count=%d", len(bills))
	c.JSON(http.StatusOK, gin.H{"overdue": len(bills)})
}
