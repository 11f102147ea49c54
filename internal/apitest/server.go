// Package apitest provides in-memory customers API for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/labstack/echo/v4"
)

// Request is request received by Server
type Request struct {
	Method string
	Path   string
	Query  string
}

type failure struct {
	method string
	path   string
}

// Server mimics json-server collections for customers and addresses
type Server struct {
	*httptest.Server
	mu        sync.Mutex
	seq       int
	customers []model.Customer
	addresses []model.Address
	requests  []Request
	failures  map[failure]int
}

// NewServer starts new Server, it must be closed by caller
func NewServer() *Server {
	s := &Server{failures: make(map[failure]int)}

	e := echo.New()
	e.HideBanner = true
	e.Pre(s.record)

	e.GET("/customers", s.listCustomers)
	e.GET("/customers/:id", s.getCustomer)
	e.POST("/customers", s.postCustomer)
	e.PUT("/customers/:id", s.putCustomer)
	e.DELETE("/customers/:id", s.deleteCustomer)
	e.POST("/customers/:id/addresses", s.postAddress)
	e.PUT("/addresses/:id", s.putAddress)
	e.DELETE("/addresses/:id", s.deleteAddress)

	s.Server = httptest.NewServer(e)
	return s
}

// Seed stores customer together with its nested addresses and returns stored copy
func (s *Server) Seed(c model.Customer) model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := c.Addresses
	c.Addresses = nil
	c.ID = s.nextID()
	s.customers = append(s.customers, c)

	for _, a := range addresses {
		a.ID = s.nextID()
		a.CustomerID = c.ID
		s.addresses = append(s.addresses, a)
	}
	return s.withAddresses(c)
}

// Fail makes every following request with method and path respond with code
func (s *Server) Fail(method string, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[failure{method: method, path: path}] = code
}

// Requests returns all requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Customer returns stored customer with its addresses
func (s *Server) Customer(id model.ID) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.customerIndex(id)
	if i < 0 {
		return model.Customer{}, false
	}
	return s.withAddresses(s.customers[i]), true
}

// Address returns stored address
func (s *Server) Address(id model.ID) (model.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.addressIndex(id)
	if i < 0 {
		return model.Address{}, false
	}
	return s.addresses[i], true
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: req.Method, Path: req.URL.Path, Query: req.URL.RawQuery})
		code, failed := s.failures[failure{method: req.Method, path: req.URL.Path}]
		s.mu.Unlock()

		if failed {
			return c.JSON(code, map[string]string{"error": http.StatusText(code)})
		}
		return next(c)
	}
}

func (s *Server) listCustomers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := s.customers
	if page, err := strconv.Atoi(c.QueryParam("_page")); err == nil {
		limit, err := strconv.Atoi(c.QueryParam("_limit"))
		if err != nil || limit <= 0 {
			limit = 10
		}

		from := (page - 1) * limit
		to := from + limit
		if from < 0 || from >= len(customers) {
			customers = nil
		} else {
			if to > len(customers) {
				to = len(customers)
			}
			customers = customers[from:to]
		}
	}

	nested := c.QueryParam("_expand") == "addresses" || c.QueryParam("_embed") == "addresses"
	res := make([]model.Customer, 0, len(customers))
	for _, cust := range customers {
		if nested {
			cust = s.withAddresses(cust)
		}
		res = append(res, cust)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) getCustomer(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.customerIndex(model.ID(c.Param("id")))
	if i < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	cust := s.customers[i]
	if c.QueryParam("_embed") == "addresses" {
		cust = s.withAddresses(cust)
	}
	return c.JSON(http.StatusOK, cust)
}

func (s *Server) postCustomer(c echo.Context) error {
	var cust model.Customer
	if err := json.NewDecoder(c.Request().Body).Decode(&cust); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cust.ID = s.nextID()
	cust.Addresses = nil
	s.customers = append(s.customers, cust)
	return c.JSON(http.StatusCreated, cust)
}

func (s *Server) putCustomer(c echo.Context) error {
	var cust model.Customer
	if err := json.NewDecoder(c.Request().Body).Decode(&cust); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.customerIndex(model.ID(c.Param("id")))
	if i < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	cust.ID = s.customers[i].ID
	cust.Addresses = nil
	s.customers[i] = cust
	return c.JSON(http.StatusOK, cust)
}

func (s *Server) deleteCustomer(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := model.ID(c.Param("id"))
	i := s.customerIndex(id)
	if i < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}
	s.customers = append(s.customers[:i], s.customers[i+1:]...)

	kept := s.addresses[:0]
	for _, a := range s.addresses {
		if a.CustomerID != id {
			kept = append(kept, a)
		}
	}
	s.addresses = kept
	return c.JSON(http.StatusOK, struct{}{})
}

func (s *Server) postAddress(c echo.Context) error {
	var a model.Address
	if err := json.NewDecoder(c.Request().Body).Decode(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customerID := model.ID(c.Param("id"))
	if s.customerIndex(customerID) < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	a.ID = s.nextID()
	a.CustomerID = customerID
	s.addresses = append(s.addresses, a)
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) putAddress(c echo.Context) error {
	var a model.Address
	if err := json.NewDecoder(c.Request().Body).Decode(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.addressIndex(model.ID(c.Param("id")))
	if i < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}

	a.ID = s.addresses[i].ID
	if a.CustomerID == "" {
		a.CustomerID = s.addresses[i].CustomerID
	}
	s.addresses[i] = a
	return c.JSON(http.StatusOK, a)
}

func (s *Server) deleteAddress(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.addressIndex(model.ID(c.Param("id")))
	if i < 0 {
		return c.JSON(http.StatusNotFound, struct{}{})
	}
	s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
	return c.JSON(http.StatusOK, struct{}{})
}

func (s *Server) nextID() model.ID {
	s.seq++
	return model.ID(strconv.Itoa(s.seq))
}

func (s *Server) withAddresses(c model.Customer) model.Customer {
	c.Addresses = make([]model.Address, 0)
	for _, a := range s.addresses {
		if a.CustomerID == c.ID {
			c.Addresses = append(c.Addresses, a)
		}
	}
	return c
}

func (s *Server) customerIndex(id model.ID) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) addressIndex(id model.ID) int {
	for i := range s.addresses {
		if s.addresses[i].ID == id {
			return i
		}
	}
	return -1
}
