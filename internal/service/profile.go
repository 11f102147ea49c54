package service

import (
	"context"

	"github.com/Rohith-kulkarni/qwipo-app/internal/cache"
	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/repository"
)

// ProfileService serves customer profile screen, its state is kept per session and customer
type ProfileService interface {
	Mount(ctx context.Context, session string, id model.ID) (*model.ProfileState, error)
	State(ctx context.Context, session string, id model.ID) (*model.ProfileState, error)
	BeginEdit(ctx context.Context, session string, id model.ID) (*model.ProfileState, error)
	CancelEdit(ctx context.Context, session string, id model.ID) (*model.ProfileState, error)
	SaveCustomer(ctx context.Context, session string, id model.ID, draft model.CustomerDraft) (*model.ProfileState, error)
	DeleteCustomer(ctx context.Context, session string, id model.ID) error
	AddAddress(ctx context.Context, session string, id model.ID, a *model.Address) (*model.ProfileState, error)
	EditAddressField(ctx context.Context, session string, id model.ID, addressID model.ID, field string, value string) (*model.ProfileState, error)
	ApplyEdits(ctx context.Context, session string, id model.ID, edits model.ProfileEdits) (*model.ProfileState, error)
	SaveAddress(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error)
	DeleteAddress(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error)
	MarkPrimary(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error)
}

type profileService struct {
	customerRps  repository.CustomerRepository
	addressRps   repository.AddressRepository
	profileCache cache.ProfileCache
}

func NewProfileService(
	customerRps repository.CustomerRepository,
	addressRps repository.AddressRepository,
	profileCache cache.ProfileCache,
) ProfileService {
	return &profileService{customerRps: customerRps, addressRps: addressRps, profileCache: profileCache}
}

func (s *profileService) Mount(ctx context.Context, session string, id model.ID) (*model.ProfileState, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	state := model.NewProfileState(c)
	if state.Customer.ID == "" {
		state.Customer.ID = id
	}

	if err := s.profileCache.Cache(ctx, session, id, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *profileService) State(ctx context.Context, session string, id model.ID) (*model.ProfileState, error) {
	state, err := s.profileCache.FindByID(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if state == nil {
		return s.Mount(ctx, session, id)
	}
	return state, nil
}

func (s *profileService) BeginEdit(ctx context.Context, session string, id model.ID) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		state.BeginEdit()
		return nil
	})
}

func (s *profileService) CancelEdit(ctx context.Context, session string, id model.ID) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		state.CancelEdit()
		return nil
	})
}

func (s *profileService) SaveCustomer(ctx context.Context, session string, id model.ID, draft model.CustomerDraft) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		state.Draft = draft

		c := state.DraftCustomer()
		saved, err := s.customerRps.Update(ctx, &c)
		if err != nil {
			return err
		}

		if saved.ID == "" {
			saved.ID = id
		}
		state.ApplySaved(saved)
		return nil
	})
}

func (s *profileService) DeleteCustomer(ctx context.Context, session string, id model.ID) error {
	if err := s.customerRps.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.profileCache.EvictByID(ctx, session, id)
}

func (s *profileService) AddAddress(ctx context.Context, session string, id model.ID, a *model.Address) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		created, err := s.addressRps.Create(ctx, id, a)
		if err != nil {
			return err
		}

		state.AppendAddress(*created)
		return nil
	})
}

func (s *profileService) EditAddressField(ctx context.Context, session string, id model.ID, addressID model.ID, field string, value string) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		return state.SetAddressField(addressID, field, value)
	})
}

func (s *profileService) ApplyEdits(ctx context.Context, session string, id model.ID, edits model.ProfileEdits) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		return state.ApplyEdits(edits)
	})
}

func (s *profileService) SaveAddress(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		a, err := state.Address(addressID)
		if err != nil {
			return err
		}

		if a.CustomerID == "" {
			a.CustomerID = id
		}

		saved, err := s.addressRps.Update(ctx, &a)
		if err != nil {
			return err
		}

		if saved.ID == "" {
			saved.ID = addressID
		}
		return state.ReplaceAddress(*saved)
	})
}

func (s *profileService) DeleteAddress(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		if _, err := state.Address(addressID); err != nil {
			return err
		}

		if err := s.addressRps.DeleteByID(ctx, addressID); err != nil {
			return err
		}
		return state.RemoveAddress(addressID)
	})
}

func (s *profileService) MarkPrimary(ctx context.Context, session string, id model.ID, addressID model.ID) (*model.ProfileState, error) {
	return s.update(ctx, session, id, func(state *model.ProfileState) error {
		return state.MarkPrimary(addressID)
	})
}

// update applies fn to the stored state and stores the result, state is left untouched if fn fails
func (s *profileService) update(ctx context.Context, session string, id model.ID, fn func(*model.ProfileState) error) (*model.ProfileState, error) {
	state, err := s.State(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := fn(state); err != nil {
		return nil, err
	}

	if err := s.profileCache.Cache(ctx, session, id, state); err != nil {
		return nil, err
	}
	return state, nil
}
