package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chelas-api/internal/service"
)

// ExpenseHandler mantiene dependencias para gastos y el informe diario.
type ExpenseHandler struct {
	logger  *zap.Logger
	reports *service.ReportService
}

func NewExpenseHandler(logger *zap.Logger, reports *service.ReportService) *ExpenseHandler {
	return &ExpenseHandler{logger: logger, reports: reports}
}

// AddExpense maneja POST /expenses.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid expense request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	expense, err := h.reports.AddExpense(c.Request.Context(), userID, req.Description, req.Price)
	if err != nil {
		h.logger.Error("add expense failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListTodayExpenses maneja GET /expenses/today.
func (h *ExpenseHandler) ListTodayExpenses(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	expenses, err := h.reports.ListTodayExpenses(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list expenses failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// DeleteExpense maneja DELETE /expenses/:id.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	if err := h.reports.DeleteExpense(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.logger.Error("delete expense failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetDailyReport maneja GET /report.
func (h *ExpenseHandler) GetDailyReport(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	report, err := h.reports.BuildDailyReport(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("build report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// EmailDailyReport maneja POST /report/email.
func (h *ExpenseHandler) EmailDailyReport(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	var req struct {
		ToEmail string `json:"to_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report email request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.reports.EmailDailyReport(c.Request.Context(), userID, req.ToEmail)
	if err != nil {
		h.logger.Error("email report failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not send report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report, "status": "sent"})
}
