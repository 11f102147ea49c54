package model

import (
	"fmt"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
)

// Editable customer and address fields
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPhone     = "phone"
	FieldLine1     = "line1"
	FieldCity      = "city"
	FieldState     = "state"
	FieldPin       = "pin"
)

type CustomerDraft struct {
	FirstName string `msgpack:"firstName"`
	LastName  string `msgpack:"lastName"`
	Phone     string `msgpack:"phone"`
}

// ProfileState is state of customer profile screen between user actions.
// Primary address is a single optional selection, so no two addresses can be primary at once.
type ProfileState struct {
	Customer         Customer      `msgpack:"customer"`
	Addresses        []Address     `msgpack:"addresses"`
	Editing          bool          `msgpack:"editing"`
	Draft            CustomerDraft `msgpack:"draft"`
	PrimaryAddressID *ID           `msgpack:"primaryAddressId"`
}

// NewProfileState builds profile state from customer loaded from API,
// the first address flagged as only one becomes primary
func NewProfileState(c *Customer) *ProfileState {
	s := &ProfileState{
		Customer:  c.WithoutAddresses(),
		Addresses: make([]Address, 0, len(c.Addresses)),
	}

	for _, a := range c.Addresses {
		if a.OnlyOne && s.PrimaryAddressID == nil {
			id := a.ID
			s.PrimaryAddressID = &id
		}
		a.OnlyOne = false
		s.Addresses = append(s.Addresses, a)
	}
	return s
}

func (s *ProfileState) BeginEdit() {
	s.Editing = true
	s.Draft = CustomerDraft{
		FirstName: s.Customer.FirstName,
		LastName:  s.Customer.LastName,
		Phone:     s.Customer.Phone,
	}
}

func (s *ProfileState) CancelEdit() {
	s.Editing = false
	s.Draft = CustomerDraft{}
}

func (s *ProfileState) SetDraftField(field string, value string) error {
	switch field {
	case FieldFirstName:
		s.Draft.FirstName = value
	case FieldLastName:
		s.Draft.LastName = value
	case FieldPhone:
		s.Draft.Phone = value
	default:
		return apperrors.NewBusinessErr(fmt.Sprintf("customer field %s can't be edited", field))
	}
	return nil
}

func (s *ProfileState) DraftCustomer() Customer {
	c := s.Customer
	c.FirstName = s.Draft.FirstName
	c.LastName = s.Draft.LastName
	c.Phone = s.Draft.Phone
	return c
}

func (s *ProfileState) ApplySaved(c *Customer) {
	s.Customer = c.WithoutAddresses()
	s.CancelEdit()
}

func (s *ProfileState) Address(id ID) (Address, error) {
	i, err := s.addressIndex(id)
	if err != nil {
		return Address{}, err
	}

	a := s.Addresses[i]
	a.OnlyOne = s.IsPrimary(id)
	return a, nil
}

func (s *ProfileState) AddressViews() []Address {
	views := make([]Address, len(s.Addresses))
	for i, a := range s.Addresses {
		a.OnlyOne = s.IsPrimary(a.ID)
		views[i] = a
	}
	return views
}

func (s *ProfileState) SetAddressField(id ID, field string, value string) error {
	i, err := s.addressIndex(id)
	if err != nil {
		return err
	}

	a := &s.Addresses[i]
	switch field {
	case FieldLine1:
		a.Line1 = value
	case FieldCity:
		a.City = value
	case FieldState:
		a.State = value
	case FieldPin:
		a.Pin = value
	default:
		return apperrors.NewBusinessErr(fmt.Sprintf("address field %s can't be edited", field))
	}
	return nil
}

type ProfileEdits struct {
	Draft     map[string]string
	Addresses map[ID]map[string]string
}

func (e ProfileEdits) IsEmpty() bool {
	return len(e.Draft) == 0 && len(e.Addresses) == 0
}

// ApplyEdits keeps typed values as local edits, draft values are ignored outside of edit mode
func (s *ProfileState) ApplyEdits(e ProfileEdits) error {
	if s.Editing {
		for field, value := range e.Draft {
			if err := s.SetDraftField(field, value); err != nil {
				return err
			}
		}
	}

	for id, fields := range e.Addresses {
		for field, value := range fields {
			if err := s.SetAddressField(id, field, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ProfileState) AppendAddress(a Address) {
	a.OnlyOne = false
	s.Addresses = append(s.Addresses, a)
}

// ReplaceAddress reconciles local address with the one returned by API
func (s *ProfileState) ReplaceAddress(a Address) error {
	i, err := s.addressIndex(a.ID)
	if err != nil {
		return err
	}

	a.OnlyOne = false
	s.Addresses[i] = a
	return nil
}

// RemoveAddress drops local address and clears primary selection if it pointed to it
func (s *ProfileState) RemoveAddress(id ID) error {
	i, err := s.addressIndex(id)
	if err != nil {
		return err
	}

	s.Addresses = append(s.Addresses[:i], s.Addresses[i+1:]...)
	if s.IsPrimary(id) {
		s.PrimaryAddressID = nil
	}
	return nil
}

func (s *ProfileState) MarkPrimary(id ID) error {
	if _, err := s.addressIndex(id); err != nil {
		return err
	}

	s.PrimaryAddressID = &id
	return nil
}

func (s *ProfileState) IsPrimary(id ID) bool {
	return s.PrimaryAddressID != nil && *s.PrimaryAddressID == id
}

func (s *ProfileState) addressIndex(id ID) (int, error) {
	for i := range s.Addresses {
		if s.Addresses[i].ID == id {
			return i, nil
		}
	}
	return -1, apperrors.NewEntryNotFoundErr(fmt.Sprintf("address %s doesn't belong to customer %s", id, s.Customer.ID))
}
