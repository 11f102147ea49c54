package model

import "strings"

type Filter struct {
	City  string `query:"city"`
	State string `query:"state"`
	Pin   string `query:"pin"`
}

func (f Filter) IsEmpty() bool {
	return f.City == "" && f.State == "" && f.Pin == ""
}

// Match reports whether every populated criterion is contained (case-insensitive) either in
// the customer's own field or in the same field of any of customer's addresses
func (f Filter) Match(c *Customer) bool {
	if f.City != "" && !matchField(f.City, c, func(c *Customer) string { return c.City }, func(a *Address) string { return a.City }) {
		return false
	}

	if f.State != "" && !matchField(f.State, c, func(c *Customer) string { return c.State }, func(a *Address) string { return a.State }) {
		return false
	}

	if f.Pin != "" && !matchField(f.Pin, c, func(c *Customer) string { return c.Pin }, func(a *Address) string { return a.Pin }) {
		return false
	}

	return true
}

func (f Filter) Apply(customers []*Customer) []*Customer {
	matched := make([]*Customer, 0, len(customers))
	for _, c := range customers {
		if f.Match(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func matchField(needle string, c *Customer, customerField func(*Customer) string, addressField func(*Address) string) bool {
	needle = strings.ToLower(needle)

	if strings.Contains(strings.ToLower(customerField(c)), needle) {
		return true
	}

	for i := range c.Addresses {
		if strings.Contains(strings.ToLower(addressField(&c.Addresses[i])), needle) {
			return true
		}
	}
	return false
}

type ListQuery struct {
	Page   int
	Filter Filter
}

func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

func (q ListQuery) PrevPage() int {
	if q.Page <= 1 {
		return 1
	}
	return q.Page - 1
}

func (q ListQuery) NextPage() int {
	return q.Page + 1
}

func (q ListQuery) HasPrev() bool {
	return q.Page > 1
}
