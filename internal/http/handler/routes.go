package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"auditapi/internal/http/middleware"
	"auditapi/internal/service"
)

// Services bundles the dependencies of the API routes.
type Services struct {
	Tokens        TokenIssuer
	Users         service.UserService
	UserInfo      service.UserInfoService
	Customers     service.CustomerService
	Apis          service.ApiService
	Environments  service.EnvironmentService
	ComplexAudits service.ComplexAuditService
	AuditRecords  service.AuditRecordService
	AuditDemo     service.AuditDemoService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Audit
// report times are rendered in loc. Static segments are registered ahead
// of their /:id siblings.
func RegisterRoutes(app *fiber.App, db *sql.DB, gatherer prometheus.Gatherer, loc *time.Location, s Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", Metrics(gatherer))

	api := app.Group("/api")
	token := middleware.RequireToken()

	api.Get("/tokens", ListTokens(s.Tokens))
	api.Get("/tokens/:userId", GetToken(s.Tokens))

	users := api.Group("/users")
	users.Get("/", ListUsers(s.Users))
	users.Post("/", CreateUser(s.Users))
	users.Get("/audit", UserAuditReport(s.Users, loc))
	users.Get("/:id", GetUser(s.Users))
	users.Put("/:id", UpdateUser(s.Users))

	customers := api.Group("/customers")
	customers.Get("/", ListCustomers(s.Customers))
	customers.Post("/", token, CreateCustomer(s.Customers))
	customers.Post("/batch", token, CreateCustomers(s.Customers))
	customers.Get("/audit", CustomerAuditReport(s.Customers, loc))
	customers.Get("/audit/modified", CustomersModifiedBetween(s.Customers, loc))
	customers.Get("/:id", GetCustomer(s.Customers))
	customers.Put("/:id", token, UpdateCustomer(s.Customers))
	customers.Delete("/:id", token, DeleteCustomer(s.Customers))

	apis := api.Group("/apis")
	apis.Get("/", ListApis(s.Apis))
	apis.Post("/", token, CreateApi(s.Apis))
	apis.Get("/:id", GetApi(s.Apis))
	apis.Put("/:id", token, UpdateApi(s.Apis))
	apis.Delete("/:id", DeleteApi(s.Apis))

	envs := api.Group("/environments")
	envs.Get("/", ListEnvironments(s.Environments))
	envs.Post("/", token, CreateEnvironment(s.Environments))
	envs.Get("/pending-deploy", PendingDeployEnvironments(s.Environments))
	envs.Get("/:id", GetEnvironment(s.Environments))
	envs.Put("/:id", token, UpdateEnvironment(s.Environments))
	envs.Post("/:id/review", token, ReviewEnvironment(s.Environments))
	envs.Post("/:id/deploy", token, DeployEnvironment(s.Environments))
	envs.Get("/:id/artifact", EnvironmentArtifact(s.Environments))

	complexAudits := api.Group("/demo-complex-audit")
	complexAudits.Get("/", ListComplexAudits(s.ComplexAudits))
	complexAudits.Post("/", CreateComplexAudit(s.ComplexAudits))
	complexAudits.Get("/:id", GetComplexAudit(s.ComplexAudits))
	complexAudits.Put("/:id", UpdateComplexAudit(s.ComplexAudits))

	records := api.Group("/audit-records")
	records.Get("/", ListAuditRecords(s.AuditRecords))
	records.Post("/", CreateAuditRecord(s.AuditRecords))
	records.Get("/:id", GetAuditRecord(s.AuditRecords))

	demo := api.Group("/audit-demo")
	demo.Get("/audit-with-details", UsersWithAuditDetails(s.AuditDemo, loc))
	demo.Post("/create-with-audit", CreateUserWithAudit(s.AuditDemo, loc))
	demo.Get("/user-info", ListUserInfo(s.UserInfo))
	demo.Get("/user-info/:userId", GetUserInfo(s.UserInfo))
}
