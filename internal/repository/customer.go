package repository

import (
	"context"

	"github.com/umalmyha/fraudwatch/internal/model"
)

// CustomerRepository is persistent storage of the customer roster
type CustomerRepository interface {
	FindAll(context.Context) ([]model.Customer, error)
	SaveAll(context.Context, []model.Customer) error
}

type jsonCustomerRepository struct {
	path string
}

// NewJSONCustomerRepository builds roster repository backed by a JSON document
func NewJSONCustomerRepository(path string) CustomerRepository {
	return &jsonCustomerRepository{path: path}
}

func (repo *jsonCustomerRepository) FindAll(_ context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := readSnapshot(repo.path, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (repo *jsonCustomerRepository) SaveAll(_ context.Context, customers []model.Customer) error {
	return writeSnapshot(repo.path, customers)
}
