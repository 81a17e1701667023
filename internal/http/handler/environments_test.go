package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"auditapi/internal/model"
	"auditapi/internal/service"
	serviceMocks "auditapi/internal/service/mocks"
	"auditapi/internal/storage"
)

func newEnvironmentApp(svc service.EnvironmentService) *fiber.App {
	app := fiber.New()
	app.Get("/api/environments", ListEnvironments(svc))
	app.Post("/api/environments", CreateEnvironment(svc))
	app.Get("/api/environments/pending-deploy", PendingDeployEnvironments(svc))
	app.Get("/api/environments/:id", GetEnvironment(svc))
	app.Put("/api/environments/:id", UpdateEnvironment(svc))
	app.Post("/api/environments/:id/review", ReviewEnvironment(svc))
	app.Post("/api/environments/:id/deploy", DeployEnvironment(svc))
	app.Get("/api/environments/:id/artifact", EnvironmentArtifact(svc))
	return app
}

func TestListEnvironments(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	mockSvc.On("List", mock.Anything, "prod").Return([]model.Environment{{ID: 1, Name: "prod-db", Type: "prod"}}, nil).Once()
	mockSvc.On("List", mock.Anything, "").Return([]model.Environment{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/environments?type=prod", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var envs []model.Environment
	json.NewDecoder(resp.Body).Decode(&envs)
	assert.Len(t, envs, 1)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/environments", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestCreateEnvironment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		in := service.EnvironmentInput{Name: "prod-db", Type: "prod", ConfigValue: "host=db"}
		mockSvc.On("Create", mock.Anything, in).
			Return(&model.Environment{ID: 1, Name: "prod-db", Type: "prod", Version: "1.0"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/environments", `{"name":"prod-db","type":"prod","config_value":"host=db"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var e model.Environment
		json.NewDecoder(resp.Body).Decode(&e)
		assert.Equal(t, "1.0", e.Version)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		in := service.EnvironmentInput{Name: "prod-db", Type: "prod"}
		mockSvc.On("Create", mock.Anything, in).Return(nil, service.ErrConflict).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/environments", `{"name":"prod-db","type":"prod"}`))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestPendingDeployEnvironments(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	mockSvc.On("PendingDeploy", mock.Anything).Return([]model.Environment{{ID: 2, Status: model.EnvStatusReviewed}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/environments/pending-deploy", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestUpdateEnvironment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	status := 1
	mockSvc.On("Update", mock.Anything, int64(3), service.EnvironmentPatch{Status: &status}).
		Return(&model.Environment{ID: 3, Status: 1}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/environments/3", `{"status":1}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestReviewEnvironment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	t.Run("without body", func(t *testing.T) {
		mockSvc.On("Review", mock.Anything, int64(4), service.ReviewInput{}).
			Return(&model.Environment{ID: 4, Status: model.EnvStatusReviewed}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/environments/4/review", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("with comment", func(t *testing.T) {
		in := service.ReviewInput{Status: "rejected", Comment: "missing backup"}
		mockSvc.On("Review", mock.Anything, int64(4), in).Return(&model.Environment{ID: 4}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/environments/4/review", `{"status":"rejected","comment":"missing backup"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Review", mock.Anything, int64(99), service.ReviewInput{}).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/environments/99/review", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeployEnvironment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	t.Run("not reviewed", func(t *testing.T) {
		mockSvc.On("Deploy", mock.Anything, int64(5), service.DeployInput{}).Return(nil, service.ErrNotReviewed).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/environments/5/deploy", nil))

		assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)
		assert.Equal(t, "NOT_REVIEWED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("success with version", func(t *testing.T) {
		in := service.DeployInput{Version: "2.0"}
		mockSvc.On("Deploy", mock.Anything, int64(5), in).
			Return(&model.Environment{ID: 5, Version: "2.0", Status: model.EnvStatusDeployed}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/environments/5/deploy", `{"version":"2.0"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var e model.Environment
		json.NewDecoder(resp.Body).Decode(&e)
		assert.Equal(t, "2.0", e.Version)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.On("Deploy", mock.Anything, int64(6), service.DeployInput{}).
			Return(nil, errors.New("upload to storage: connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/environments/6/deploy", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestEnvironmentArtifact(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnvironmentService)
	app := newEnvironmentApp(mockSvc)

	t.Run("presigned url", func(t *testing.T) {
		mockSvc.On("ArtifactURL", mock.Anything, int64(5)).Return("http://minio/artifacts/x.json", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/environments/5/artifact", nil))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "http://minio/artifacts/x.json", body["url"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("inline", func(t *testing.T) {
		content := `{"name":"prod-db"}`
		info := storage.ObjectInfo{Size: int64(len(content)), ContentType: "application/json"}
		mockSvc.On("OpenArtifact", mock.Anything, int64(5)).
			Return(io.NopCloser(strings.NewReader(content)), info, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/environments/5/artifact?inline=true", nil))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, string(b))
		mockSvc.AssertExpectations(t)
	})

	t.Run("no artifact", func(t *testing.T) {
		mockSvc.On("ArtifactURL", mock.Anything, int64(8)).Return("", service.ErrNoArtifact).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/environments/8/artifact", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NO_ARTIFACT", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}
