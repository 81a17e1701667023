package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"auditapi/internal/audit"
	"auditapi/internal/model"
	"auditapi/internal/repository"
)

// CustomerInput is the payload for creating a customer.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// CustomerPatch holds the customer fields that may be changed.
type CustomerPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`
}

// CustomerService manages pf_customer rows.
type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*model.Customer, error)
	// CreateBatch creates all customers atomically, stamped by one actor.
	CreateBatch(ctx context.Context, in []CustomerInput) ([]model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	// ModifiedBetween lists customers modified within [start, end].
	ModifiedBetween(ctx context.Context, start, end time.Time) ([]model.Customer, error)
	Update(ctx context.Context, id int64, p CustomerPatch) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	repo    repository.CustomerRepository
	stamper *audit.Stamper
	log     *slog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(repo repository.CustomerRepository, stamper *audit.Stamper, log *slog.Logger) CustomerService {
	if log == nil {
		log = slog.Default()
	}
	return &customerService{repo: repo, stamper: stamper, log: log.With("component", "customer")}
}

func (in CustomerInput) customer() (*model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	return &model.Customer{
		Name:    name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Company: in.Company,
	}, nil
}

func (s *customerService) Create(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	c, err := in.customer()
	if err != nil {
		return nil, err
	}
	a := s.stamper.Created(ctx, c)
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "customer created", "customer_id", created.ID, "actor", a.UserID)
	return created, nil
}

func (s *customerService) CreateBatch(ctx context.Context, in []CustomerInput) ([]model.Customer, error) {
	if len(in) == 0 {
		return nil, invalid("at least one customer is required")
	}
	cs := make([]*model.Customer, 0, len(in))
	for i, ci := range in {
		c, err := ci.customer()
		if err != nil {
			return nil, invalid("customer %d: name is required", i)
		}
		cs = append(cs, c)
	}
	a := s.stamper.Actor(ctx, "created")
	now := s.stamper.Now()
	for _, c := range cs {
		c.MarkCreated(a, now)
	}
	created, err := s.repo.CreateBatch(ctx, cs)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "customers created", "count", len(created), "actor", a.UserID)
	return created, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

func (s *customerService) ModifiedBetween(ctx context.Context, start, end time.Time) ([]model.Customer, error) {
	if end.Before(start) {
		return nil, invalid("end is before start")
	}
	return s.repo.ListModifiedBetween(ctx, start, end)
}

func (s *customerService) Update(ctx context.Context, id int64, p CustomerPatch) (*model.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, invalid("name must not be empty")
	}
	set(&c.Name, p.Name)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Address, p.Address)
	set(&c.Company, p.Company)
	a := s.stamper.Modified(ctx, c)
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "customer updated", "customer_id", id, "actor", a.UserID)
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	s.log.InfoContext(ctx, "customer deleted", "customer_id", id)
	return nil
}
