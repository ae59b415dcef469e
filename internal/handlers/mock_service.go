package handlers

import (
	"context"

	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr    error
	signInResult service.SigninResult
	signInErr    error
	parseID      string
	parseErr     error

	lastSignUp     service.SignupInput
	lastSignIn     service.SigninInput
	lastParseToken string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignupInput) error {
	m.lastSignUp = in
	return m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, in service.SigninInput) (service.SigninResult, error) {
	m.lastSignIn = in
	return m.signInResult, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockExpenses struct {
	listResp  []models.Expense
	listErr   error
	created   models.Expense
	createErr error
	updated   models.Expense
	updateErr error
	deleteErr error

	lastOwner  string
	lastID     string
	lastInput  service.ExpenseInput
	listCalls  int
	createCall int
	updateCall int
	deleteCall int
}

func (m *mockExpenses) List(ctx context.Context, ownerID string) ([]models.Expense, error) {
	m.listCalls++
	m.lastOwner = ownerID
	return m.listResp, m.listErr
}
func (m *mockExpenses) Create(ctx context.Context, ownerID string, in service.ExpenseInput) (models.Expense, error) {
	m.createCall++
	m.lastOwner = ownerID
	m.lastInput = in
	return m.created, m.createErr
}
func (m *mockExpenses) Update(ctx context.Context, ownerID, id string, in service.ExpenseInput) (models.Expense, error) {
	m.updateCall++
	m.lastOwner = ownerID
	m.lastID = id
	m.lastInput = in
	return m.updated, m.updateErr
}
func (m *mockExpenses) Delete(ctx context.Context, ownerID, id string) error {
	m.deleteCall++
	m.lastOwner = ownerID
	m.lastID = id
	return m.deleteErr
}

type mockReports struct {
	summary models.Summary
	err     error

	lastOwner  string
	lastFilter service.SummaryFilter
}

func (m *mockReports) Summary(ctx context.Context, ownerID string, f service.SummaryFilter) (models.Summary, error) {
	m.lastOwner = ownerID
	m.lastFilter = f
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
