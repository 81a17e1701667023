package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"auditapi/internal/audit"
	"auditapi/internal/http/middleware"
	"auditapi/internal/model"
	"auditapi/internal/service"
	serviceMocks "auditapi/internal/service/mocks"
)

func TestUsersWithAuditDetails(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuditDemoService)
	app := fiber.New()
	app.Get("/api/audit-demo/audit-with-details", UsersWithAuditDetails(mockSvc, time.UTC))

	kenbai := &model.UserInfo{UserID: "kenbai", Name: "Ken", Company: "TPIsoftware", Unit: "R&D"}
	u := model.User{ID: "u1", Username: "janice"}
	u.MarkCreated(kenbai.Actor(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	mockSvc.On("UsersWithDetails", mock.Anything).
		Return([]service.UserAuditDetails{{User: u, Creator: kenbai}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-demo/audit-with-details", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []userDetailsEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "janice", out[0].Username)
	assert.Equal(t, "kenbai", out[0].Audit.CreatedBy)
	assert.Equal(t, kenbai, out[0].CreatorInfo)
	assert.Nil(t, out[0].ModifierInfo)
	mockSvc.AssertExpectations(t)
}

func TestCreateUserWithAudit(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuditDemoService)
	app := fiber.New()
	app.Post("/api/audit-demo/create-with-audit", CreateUserWithAudit(mockSvc, time.UTC))

	t.Run("operator in directory", func(t *testing.T) {
		op := &model.UserInfo{UserID: "sunya", Name: "Sunya", Company: "TPIsoftware", Unit: "PM"}
		u := &model.User{ID: "u2", Username: "newbie"}
		u.MarkCreated(op.Actor(), time.Now())
		mockSvc.On("CreateWithAudit", mock.Anything, "sunya", service.UserInput{Username: "newbie"}).
			Return(&service.CreateWithAuditResult{User: u, Operator: op}, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/audit-demo/create-with-audit", `{"username":"newbie"}`)
		req.Header.Set(middleware.UserIDHeader, "sunya")
		resp, _ := app.Test(req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			UserID    string          `json:"userId"`
			AuditInfo auditView       `json:"auditInfo"`
			Operator  *model.UserInfo `json:"operatorFromUserInfo"`
			Process   string          `json:"auditProcess"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "u2", body.UserID)
		assert.Equal(t, "sunya", body.AuditInfo.CreatedBy)
		assert.Equal(t, op, body.Operator)
		assert.Equal(t, "operator resolved from user directory", body.Process)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no operator header", func(t *testing.T) {
		u := &model.User{ID: "u3", Username: "solo"}
		u.MarkCreated(audit.System(), time.Now())
		mockSvc.On("CreateWithAudit", mock.Anything, "", service.UserInput{Username: "solo"}).
			Return(&service.CreateWithAuditResult{User: u}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/audit-demo/create-with-audit", `{"username":"solo"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUserInfo(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserInfoService)
	app := fiber.New()
	app.Get("/api/audit-demo/user-info", ListUserInfo(mockSvc))
	app.Get("/api/audit-demo/user-info/:userId", GetUserInfo(mockSvc))

	mockSvc.On("List", mock.Anything).Return([]model.UserInfo{{UserID: "kenbai"}, {UserID: "peter"}}, nil).Once()
	mockSvc.On("Get", mock.Anything, "peter").Return(&model.UserInfo{UserID: "peter", Name: "Peter"}, nil).Once()
	mockSvc.On("Get", mock.Anything, "ghost").Return(nil, service.ErrNotFound).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-demo/user-info", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-demo/user-info/peter", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-demo/user-info/ghost", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestComplexAudits(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplexAuditService)
	app := fiber.New()
	app.Post("/api/demo-complex-audit", CreateComplexAudit(mockSvc))
	app.Put("/api/demo-complex-audit/:id", UpdateComplexAudit(mockSvc))

	ref := audit.Reference{ID: "u1", Username: "system"}
	mockSvc.On("Create", mock.Anything, service.ComplexAuditInput{Name: "demo"}).
		Return(&model.ComplexAudit{ID: 1, Name: "demo", CreatedByUser: ref, LastModifiedByUser: ref}, nil).Once()
	mockSvc.On("Update", mock.Anything, int64(1), service.ComplexAuditInput{Name: "demo2"}).
		Return(&model.ComplexAudit{ID: 1, Name: "demo2", Version: 1}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/demo-complex-audit", `{"name":"demo"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.ComplexAudit
	json.NewDecoder(resp.Body).Decode(&created)
	assert.Equal(t, "system", created.CreatedByUser.Username)

	resp, _ = app.Test(jsonRequest(http.MethodPut, "/api/demo-complex-audit/1", `{"name":"demo2"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.ComplexAudit
	json.NewDecoder(resp.Body).Decode(&updated)
	assert.Equal(t, 1, updated.Version)

	mockSvc.AssertExpectations(t)
}

func TestListAuditRecords(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuditRecordService)
	app := fiber.New()
	app.Get("/api/audit-records", ListAuditRecords(mockSvc))

	t.Run("success", func(t *testing.T) {
		res := &service.AuditRecordListResult{Items: []model.AuditRecord{{ID: 1, Operation: "UPDATE"}}, Total: 1}
		mockSvc.On("List", mock.Anything, 5, 10).Return(res, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-records?limit=5&offset=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got service.AuditRecordListResult
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Len(t, got.Items, 1)
		assert.Equal(t, 1, got.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-records?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/audit-records?offset=x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})
}
