package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/umalmyha/fraudwatch/internal/errors"
	"github.com/umalmyha/fraudwatch/internal/model"
	"github.com/umalmyha/fraudwatch/internal/repository"
)

var minDateOfBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// CustomerService manages the bounded customer roster
type CustomerService interface {
	FindAll(context.Context) ([]model.Customer, error)
	Create(context.Context, model.Customer) (model.Customer, error)
	DeleteByName(context.Context, string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	maxCustomers int
}

// NewCustomerService builds CustomerService with the given roster capacity
func NewCustomerService(customerRepo repository.CustomerRepository, maxCustomers int) CustomerService {
	return &customerService{customerRepo: customerRepo, maxCustomers: maxCustomers}
}

func (s *customerService) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Create registers a new customer. The roster capacity is enforced before any
// write, a full roster is left untouched. Duplicate names are not rejected,
// matching the legacy roster behavior.
func (s *customerService) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	dob, err := time.Parse(model.DateLayout, c.DOB)
	if err != nil {
		return model.Customer{}, apperrors.NewBusinessErr("DOB", fmt.Sprintf("date of birth must be in format %s", model.DateLayout))
	}

	if dob.Before(minDateOfBirth) || dob.After(time.Now()) {
		return model.Customer{}, apperrors.NewBusinessErr("DOB", "date of birth must be between 1900-01-01 and today")
	}

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return model.Customer{}, err
	}

	if len(customers) >= s.maxCustomers {
		return model.Customer{}, apperrors.NewBusinessErr("Name", fmt.Sprintf("cannot register more than %d customers", s.maxCustomers))
	}

	customers = append(customers, c)
	if err := s.customerRepo.SaveAll(ctx, customers); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// DeleteByName removes every customer with exactly matching name, siblings
// are preserved in their original order
func (s *customerService) DeleteByName(ctx context.Context, name string) error {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if c.Name != name {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) == len(customers) {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer %q is not registered", name))
	}
	return s.customerRepo.SaveAll(ctx, remaining)
}
