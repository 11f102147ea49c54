package model

type Customer struct {
	ID        ID        `json:"id,omitempty" msgpack:"id"`
	FirstName string    `json:"firstName" msgpack:"firstName"`
	LastName  string    `json:"lastName" msgpack:"lastName"`
	Phone     string    `json:"phone" msgpack:"phone"`
	Address   string    `json:"address" msgpack:"address"`
	City      string    `json:"city" msgpack:"city"`
	State     string    `json:"state" msgpack:"state"`
	Pin       string    `json:"pin" msgpack:"pin"`
	Addresses []Address `json:"addresses,omitempty" msgpack:"addresses"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Customer) WithoutAddresses() Customer {
	c.Addresses = nil
	return c
}

type Address struct {
	ID         ID     `json:"id,omitempty" msgpack:"id"`
	CustomerID ID     `json:"customerId,omitempty" msgpack:"customerId"`
	Line1      string `json:"line1" msgpack:"line1"`
	City       string `json:"city" msgpack:"city"`
	State      string `json:"state" msgpack:"state"`
	Pin        string `json:"pin" msgpack:"pin"`
	OnlyOne    bool   `json:"onlyOne,omitempty" msgpack:"onlyOne"`
}
