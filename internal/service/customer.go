package service

import (
	"context"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/repository"
)

type CustomerPage struct {
	Query     model.ListQuery
	Customers []*model.Customer
}

// CustomerService serves customer list and customer creation screens
type CustomerService interface {
	FindPage(context.Context, model.ListQuery) (*CustomerPage, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
}

type customerService struct {
	customerRps repository.CustomerRepository
	pageSize    int
}

func NewCustomerService(customerRps repository.CustomerRepository, pageSize int) CustomerService {
	return &customerService{customerRps: customerRps, pageSize: pageSize}
}

func (s *customerService) FindPage(ctx context.Context, q model.ListQuery) (*CustomerPage, error) {
	q = q.Normalize()

	customers, err := s.customerRps.FindPage(ctx, q.Page, s.pageSize)
	if err != nil {
		return nil, err
	}

	return &CustomerPage{
		Query:     q,
		Customers: q.Filter.Apply(customers),
	}, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return s.customerRps.Create(ctx, c)
}
