package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
)

const (
	customersCollection = "customers"
	addressesCollection = "addresses"
)

// CustomerRepository represents customers collection of the API
type CustomerRepository interface {
	FindPage(ctx context.Context, page int, limit int) ([]*model.Customer, error)
	FindByID(ctx context.Context, id model.ID) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	DeleteByID(ctx context.Context, id model.ID) error
}

type restCustomerRepository struct {
	rc *RestClient
}

func NewRestCustomerRepository(rc *RestClient) CustomerRepository {
	return &restCustomerRepository{rc: rc}
}

func (r *restCustomerRepository) FindPage(ctx context.Context, page int, limit int) ([]*model.Customer, error) {
	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(limit))
	q.Set("_expand", addressesCollection)

	customers := make([]*model.Customer, 0)
	if err := r.rc.do(ctx, http.MethodGet, "/"+customersCollection, q, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *restCustomerRepository) FindByID(ctx context.Context, id model.ID) (*model.Customer, error) {
	q := url.Values{}
	q.Set("_embed", addressesCollection)

	var c model.Customer
	if err := r.rc.do(ctx, http.MethodGet, resourcePath(customersCollection, id), q, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *restCustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	payload := c.WithoutAddresses()
	payload.ID = ""

	var created model.Customer
	if err := r.rc.do(ctx, http.MethodPost, "/"+customersCollection, nil, &payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restCustomerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	payload := c.WithoutAddresses()

	var updated model.Customer
	if err := r.rc.do(ctx, http.MethodPut, resourcePath(customersCollection, c.ID), nil, &payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restCustomerRepository) DeleteByID(ctx context.Context, id model.ID) error {
	return r.rc.do(ctx, http.MethodDelete, resourcePath(customersCollection, id), nil, nil, nil)
}
