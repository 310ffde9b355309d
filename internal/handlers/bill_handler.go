package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/models"
	"chronos/internal/services"
)

type BillHandler struct {
	service services.BillService
}

func NewBillHandler(service services.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// @Summary      Add a utility bill
// @Tags         Utilities
// @Accept       json
// @Produce      json
// @Param        bill  body      services.BillDraft  true  "Bill draft"
// @Success      201   {object}  models.UtilityBill
// @Failure      400   {object}  map[string]string
// @Router       /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req services.BillDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[bill][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}
	bill := h.service.Add(req)
	log.Printf("[bill][create][ok] id=%s type=%q month=%q", bill.ID, bill.Type, bill.Month)
	c.JSON(http.StatusCreated, bill)
}

// PUT /bills/:id
func (h *BillHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.BillUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[bill][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}
	bill, err := h.service.Update(id, req)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[bill][update][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
		return
	}
	log.Printf("[bill][update][ok] id=%s", id)
	c.JSON(http.StatusOK, bill)
}

// DELETE /bills/:id
func (h *BillHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); errors.Is(err, services.ErrNotFound) {
		log.Printf("[bill][delete][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
		return
	}
	log.Printf("[bill][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /bills/:id/clone copies the bill into the current month, Unpaid
func (h *BillHandler) Clone(c *gin.Context) {
	id := c.Param("id")
	clone, err := h.service.Clone(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[bill][clone][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "bill not found"})
		return
	}
	log.Printf("[bill][clone][ok] src=%s clone=%s", id, clone.ID)
	c.JSON(http.StatusCreated, clone)
}
