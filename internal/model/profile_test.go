package model

import (
	"encoding/json"
	"testing"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
	"github.com/stretchr/testify/require"
)

func profileTestCustomer() *Customer {
	return &Customer{
		ID:        "7",
		FirstName: "Marge",
		LastName:  "Simpson",
		Phone:     "9876543210",
		Address:   "742 Evergreen Terrace",
		City:      "Springfield",
		State:     "Oregon",
		Pin:       "974011",
		Addresses: []Address{
			{ID: "1", CustomerID: "7", Line1: "742 Evergreen Terrace", City: "Springfield", State: "Oregon", Pin: "974011"},
			{ID: "2", CustomerID: "7", Line1: "1 Rodeo Drive", City: "Capital City", State: "Texas", Pin: "733011", OnlyOne: true},
			{ID: "3", CustomerID: "7", Line1: "19 Plympton Street", City: "Shelbyville", State: "Kentucky", Pin: "403011", OnlyOne: true},
		},
	}
}

func primaryIDs(s *ProfileState) []ID {
	res := make([]ID, 0)
	for _, a := range s.AddressViews() {
		if a.OnlyOne {
			res = append(res, a.ID)
		}
	}
	return res
}

func TestNewProfileState(t *testing.T) {
	s := NewProfileState(profileTestCustomer())

	require.Nil(t, s.Customer.Addresses, "addresses must be kept separately from customer")
	require.Len(t, s.Addresses, 3)
	require.False(t, s.Editing)
	require.Equal(t, []ID{"2"}, primaryIDs(s), "first address flagged by API must become the only primary")
}

func TestProfileStateMarkPrimary(t *testing.T) {
	s := NewProfileState(profileTestCustomer())

	t.Log("mark A then B leaves only B flagged")
	{
		require.NoError(t, s.MarkPrimary("1"))
		require.NoError(t, s.MarkPrimary("3"))

		a, err := s.Address("1")
		require.NoError(t, err)
		require.False(t, a.OnlyOne)

		b, err := s.Address("3")
		require.NoError(t, err)
		require.True(t, b.OnlyOne)

		require.Equal(t, []ID{"3"}, primaryIDs(s))
	}

	t.Log("unknown address can't be marked")
	{
		err := s.MarkPrimary("100")
		require.Error(t, err)
		require.IsType(t, &apperrors.EntryNotFoundErr{}, err)
		require.Equal(t, []ID{"3"}, primaryIDs(s), "selection must stay untouched")
	}

	t.Log("removing primary address clears selection")
	{
		require.NoError(t, s.RemoveAddress("3"))
		require.Nil(t, s.PrimaryAddressID)
		require.Empty(t, primaryIDs(s))
		require.Len(t, s.Addresses, 2)
	}
}

func TestProfileStateEditing(t *testing.T) {
	s := NewProfileState(profileTestCustomer())

	t.Log("begin edit copies customer fields into draft")
	{
		s.BeginEdit()
		require.True(t, s.Editing)
		require.Equal(t, "Marge", s.Draft.FirstName)
	}

	t.Log("draft changes don't affect customer until saved")
	{
		require.NoError(t, s.SetDraftField(FieldFirstName, "Marjorie"))
		require.NoError(t, s.SetDraftField(FieldPhone, "1112223334"))
		require.Error(t, s.SetDraftField(FieldCity, "Ogdenville"), "city is not editable on profile")

		require.Equal(t, "Marge", s.Customer.FirstName)
		draft := s.DraftCustomer()
		require.Equal(t, "Marjorie", draft.FirstName)
		require.Equal(t, "1112223334", draft.Phone)
		require.Equal(t, "Springfield", draft.City)
	}

	t.Log("cancel discards draft")
	{
		s.CancelEdit()
		require.False(t, s.Editing)
		require.Equal(t, CustomerDraft{}, s.Draft)
		require.Equal(t, "Marge", s.Customer.FirstName)
	}

	t.Log("saved customer replaces local one")
	{
		s.BeginEdit()
		saved := profileTestCustomer()
		saved.FirstName = "Marjorie"
		s.ApplySaved(saved)
		require.False(t, s.Editing)
		require.Equal(t, "Marjorie", s.Customer.FirstName)
		require.Nil(t, s.Customer.Addresses)
	}
}

func TestProfileStateAddressFields(t *testing.T) {
	s := NewProfileState(profileTestCustomer())

	require.NoError(t, s.SetAddressField("1", FieldLine1, "742 Evergreen Terr."))
	require.NoError(t, s.SetAddressField("1", FieldPin, "97401"))
	require.Error(t, s.SetAddressField("1", "customerId", "8"))
	require.Error(t, s.SetAddressField("42", FieldCity, "Ogdenville"))

	a, err := s.Address("1")
	require.NoError(t, err)
	require.Equal(t, "742 Evergreen Terr.", a.Line1)
	require.Equal(t, "97401", a.Pin)

	require.NoError(t, s.ReplaceAddress(Address{ID: "1", CustomerID: "7", Line1: "saved", City: "c", State: "s", Pin: "111111", OnlyOne: true}))
	a, err = s.Address("1")
	require.NoError(t, err)
	require.Equal(t, "saved", a.Line1)
	require.False(t, a.OnlyOne, "onlyOne must follow local selection, not API response")

	s.AppendAddress(Address{ID: "4", Line1: "new"})
	require.Len(t, s.Addresses, 4)
	require.Equal(t, ID("4"), s.Addresses[3].ID)
}

func TestProfileStateApplyEdits(t *testing.T) {
	s := NewProfileState(profileTestCustomer())

	edits := ProfileEdits{
		Draft: map[string]string{FieldFirstName: "Maggie"},
		Addresses: map[ID]map[string]string{
			"1": {FieldCity: "Ogdenville"},
		},
	}
	require.False(t, edits.IsEmpty())
	require.True(t, ProfileEdits{}.IsEmpty())

	require.NoError(t, s.ApplyEdits(edits))
	require.Equal(t, "Ogdenville", s.AddressViews()[0].City)
	require.Empty(t, s.Draft.FirstName, "draft is not touched outside of edit mode")

	s.BeginEdit()
	require.NoError(t, s.ApplyEdits(edits))
	require.Equal(t, "Maggie", s.Draft.FirstName)

	require.NoError(t, s.MarkPrimary("3"))
	require.Equal(t, "Ogdenville", s.AddressViews()[0].City, "edits survive marking another address")

	var nfErr *apperrors.EntryNotFoundErr
	err := s.ApplyEdits(ProfileEdits{Addresses: map[ID]map[string]string{"404": {FieldCity: "x"}}})
	require.ErrorAs(t, err, &nfErr)

	var bsnErr *apperrors.BusinessErr
	err = s.ApplyEdits(ProfileEdits{Addresses: map[ID]map[string]string{"1": {"country": "US"}}})
	require.ErrorAs(t, err, &bsnErr)
}

func TestIDJSON(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`{"id":12,"customerId":"7","line1":"x"}`), &a))
	require.Equal(t, ID("12"), a.ID)
	require.Equal(t, ID("7"), a.CustomerID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1b2"}`), &a))
	require.Equal(t, ID("a1b2"), a.ID)

	b, err := json.Marshal(Address{ID: "12", CustomerID: "a1b2"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":12,"customerId":"a1b2","line1":"","city":"","state":"","pin":""}`, string(b))

	b, err = json.Marshal(Customer{FirstName: "Bart"})
	require.NoError(t, err)
	require.NotContains(t, string(b), `"id"`, "new customer must not carry id")
	require.NotContains(t, string(b), `"addresses"`)
}
