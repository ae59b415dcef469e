package handlers

import (
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// Create/update payload; full-field replace on update.
type expenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Type        string  `json:"type"` // income | expense
}

func (r expenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
		Type:        r.Type,
	}
}

// @Summary      List the caller's expenses
// @Tags         expenses
// @Produce      json
// @Success      200  {array}   models.Expense
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	owner, ok := h.requireOwner(c)
	if !ok {
		return
	}

	expenses, err := h.services.Expenses.List(c.Request.Context(), owner)
	if err != nil {
		h.writeServiceError(c, err, "expenses_list_failed")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// @Summary      Add an expense or income record
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  expenseRequest  true  "Expense payload"
// @Success      201   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /expenses [post]
// @Security     BearerAuth
func (h *Handler) createExpense(c *gin.Context) {
	owner, ok := h.requireOwner(c)
	if !ok {
		return
	}
	var req expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	created, err := h.services.Expenses.Create(c.Request.Context(), owner, req.toInput())
	if err != nil {
		h.writeServiceError(c, err, "expense_create_failed")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Replace an expense record
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Expense id"
// @Param        body  body  expenseRequest  true  "Expense payload"
// @Success      200   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /expenses/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateExpense(c *gin.Context) {
	owner, ok := h.requireOwner(c)
	if !ok {
		return
	}
	var req expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	updated, err := h.services.Expenses.Update(c.Request.Context(), owner, c.Param("id"), req.toInput())
	if err != nil {
		h.writeServiceError(c, err, "expense_update_failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete an expense record
// @Tags         expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /expenses/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpense(c *gin.Context) {
	owner, ok := h.requireOwner(c)
	if !ok {
		return
	}

	if err := h.services.Expenses.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		h.writeServiceError(c, err, "expense_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
