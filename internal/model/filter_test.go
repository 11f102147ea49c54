package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func filterTestCustomers() []*Customer {
	return []*Customer{
		{
			ID:        "1",
			FirstName: "Homer",
			LastName:  "Simpson",
			City:      "Springfield",
			State:     "Oregon",
			Pin:       "974011",
		},
		{
			ID:        "2",
			FirstName: "Ned",
			LastName:  "Flanders",
			City:      "Nowhere",
			State:     "Nevada",
			Pin:       "889011",
			Addresses: []Address{
				{ID: "10", Line1: "744 Evergreen Terrace", City: "Springfield", State: "Illinois", Pin: "627011"},
			},
		},
		{
			ID:        "3",
			FirstName: "Moe",
			LastName:  "Szyslak",
			City:      "Shelbyville",
			State:     "Kentucky",
			Pin:       "403011",
			Addresses: []Address{
				{ID: "11", Line1: "57 Walnut Street", City: "Capital City", State: "Texas", Pin: "733011"},
			},
		},
	}
}

func ids(customers []*Customer) []ID {
	res := make([]ID, 0, len(customers))
	for _, c := range customers {
		res = append(res, c.ID)
	}
	return res
}

func TestFilterApply(t *testing.T) {
	customers := filterTestCustomers()

	t.Log("empty filter keeps every customer")
	{
		require.Equal(t, []ID{"1", "2", "3"}, ids(Filter{}.Apply(customers)))
	}

	t.Log("city matches customer's own field and address field")
	{
		res := Filter{City: "spring"}.Apply(customers)
		require.Equal(t, []ID{"1", "2"}, ids(res), "Springfield must be found in customer and address city")
	}

	t.Log("matching is case-insensitive")
	{
		res := Filter{State: "KENT"}.Apply(customers)
		require.Equal(t, []ID{"3"}, ids(res))
	}

	t.Log("pin substring matches address pin")
	{
		res := Filter{Pin: "7330"}.Apply(customers)
		require.Equal(t, []ID{"3"}, ids(res))
	}

	t.Log("every populated field must match")
	{
		res := Filter{City: "spring", State: "illinois"}.Apply(customers)
		require.Equal(t, []ID{"2"}, ids(res), "only customer with Illinois address in Springfield must be kept")
	}

	t.Log("fields may match in different records of the same customer")
	{
		res := Filter{City: "nowhere", Pin: "627"}.Apply(customers)
		require.Equal(t, []ID{"2"}, ids(res))
	}

	t.Log("nothing matches")
	{
		res := Filter{City: "ogdenville"}.Apply(customers)
		require.Empty(t, res)
	}
}

func TestFilterMatchWithoutAddresses(t *testing.T) {
	c := &Customer{ID: "1", City: "Springfield", State: "Oregon", Pin: "974011"}

	require.True(t, Filter{Pin: "974"}.Match(c))
	require.False(t, Filter{Pin: "111"}.Match(c))
	require.True(t, Filter{}.IsEmpty())
	require.False(t, Filter{State: "o"}.IsEmpty())
}

func TestListQueryPaging(t *testing.T) {
	t.Log("page is floored at 1")
	{
		q := ListQuery{Page: 0}.Normalize()
		require.Equal(t, 1, q.Page)
		require.Equal(t, 1, q.PrevPage())
		require.False(t, q.HasPrev())

		q = ListQuery{Page: -4}.Normalize()
		require.Equal(t, 1, q.Page)
	}

	t.Log("next page is always available")
	{
		q := ListQuery{Page: 1000}.Normalize()
		require.Equal(t, 1001, q.NextPage())
		require.Equal(t, 999, q.PrevPage())
		require.True(t, q.HasPrev())
	}
}
