package repository

import (
	"context"
	"net/http"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
)

type AddressRepository interface {
	Create(ctx context.Context, customerID model.ID, a *model.Address) (*model.Address, error)
	Update(ctx context.Context, a *model.Address) (*model.Address, error)
	DeleteByID(ctx context.Context, id model.ID) error
}

type restAddressRepository struct {
	rc *RestClient
}

func NewRestAddressRepository(rc *RestClient) AddressRepository {
	return &restAddressRepository{rc: rc}
}

func (r *restAddressRepository) Create(ctx context.Context, customerID model.ID, a *model.Address) (*model.Address, error) {
	payload := *a
	payload.ID = ""

	var created model.Address
	path := resourcePath(customersCollection, customerID) + "/" + addressesCollection
	if err := r.rc.do(ctx, http.MethodPost, path, nil, &payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restAddressRepository) Update(ctx context.Context, a *model.Address) (*model.Address, error) {
	var updated model.Address
	if err := r.rc.do(ctx, http.MethodPut, resourcePath(addressesCollection, a.ID), nil, a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restAddressRepository) DeleteByID(ctx context.Context, id model.ID) error {
	return r.rc.do(ctx, http.MethodDelete, resourcePath(addressesCollection, id), nil, nil, nil)
}
