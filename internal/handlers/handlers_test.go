package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/service"
	svcMocks "github.com/Rohith-kulkarni/qwipo-app/internal/service/mocks"
	"github.com/Rohith-kulkarni/qwipo-app/internal/validation"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type handlersTestSuite struct {
	suite.Suite
	e               *echo.Echo
	customerSvcMock *svcMocks.CustomerService
	listHandler     *ListHTTPHandler
	createHandler   *CreateHTTPHandler
}

func (s *handlersTestSuite) SetupTest() {
	renderer, err := view.NewRenderer()
	s.Require().NoError(err, "templates must be parsed")

	validator, err := validation.New()
	s.Require().NoError(err, "validator must be built")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.e = echo.New()
	s.e.Renderer = renderer
	s.e.Validator = validator
	s.e.HTTPErrorHandler = HTTPErrorHandler(logger)

	s.customerSvcMock = svcMocks.NewCustomerService(s.T())
	s.listHandler = NewListHTTPHandler(s.customerSvcMock)
	s.createHandler = NewCreateHTTPHandler(s.customerSvcMock, 2500*time.Millisecond)
}

func (s *handlersTestSuite) echoContext(method string, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *handlersTestSuite) TestList() {
	customers := []*model.Customer{
		{ID: "1", FirstName: "Marge", LastName: "Simpson", Addresses: []model.Address{{ID: "2", Line1: "742 Evergreen Terrace", City: "Springfield", OnlyOne: true}}},
	}

	s.customerSvcMock.On("FindPage", mock.Anything, model.ListQuery{Page: 0, Filter: model.Filter{City: "spring"}}).
		Return(&service.CustomerPage{Query: model.ListQuery{Page: 1, Filter: model.Filter{City: "spring"}}, Customers: customers}, nil).
		Once()

	c, rec := s.echoContext(http.MethodGet, "/?page=abc&city=spring", nil)
	err := s.listHandler.List(c)
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Assert().Contains(body, "Marge Simpson")
	s.Assert().Contains(body, "(Only One)")
	s.Assert().Contains(body, "Page 1")
	s.Assert().Contains(body, `href="/?city=spring&amp;page=2"`, "next page keeps filter")
}

func (s *handlersTestSuite) TestListFailed() {
	s.customerSvcMock.On("FindPage", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	c, rec := s.echoContext(http.MethodGet, "/", nil)
	err := s.listHandler.List(c)
	s.Require().Error(err)

	s.e.HTTPErrorHandler(err, c)
	s.Assert().Equal(http.StatusInternalServerError, rec.Code)
	s.Assert().Contains(rec.Body.String(), msgUnexpectedErr)
}

func (s *handlersTestSuite) TestCreateSuccess() {
	form := url.Values{
		"firstName": {"Homer"},
		"lastName":  {"Simpson"},
		"phone":     {"9876543210"},
		"address":   {"742 Evergreen Terrace"},
		"city":      {"Springfield"},
		"state":     {"Oregon"},
		"pin":       {"974011"},
	}

	s.customerSvcMock.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.ID == "" && c.FirstName == "Homer" && c.Phone == "9876543210" && c.Pin == "974011"
	})).Return(func(_ context.Context, c *model.Customer) *model.Customer {
		created := *c
		created.ID = "11"
		return &created
	}, nil).Once()

	c, rec := s.echoContext(http.MethodPost, "/create", form)
	err := s.createHandler.Post(c)
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Assert().Contains(body, msgCustomerCreated)
	s.Assert().Contains(body, "2500", "redirect delay must be rendered")
	s.Assert().Contains(body, `http-equiv="refresh"`)
}

func (s *handlersTestSuite) TestCreateInvalid() {
	tests := []struct {
		name string
		form url.Values
		msg  string
	}{
		{
			name: "empty form",
			form: url.Values{},
			msg:  msgAllFieldsRequired,
		},
		{
			name: "phone with letters",
			form: url.Values{"firstName": {"a"}, "lastName": {"b"}, "phone": {"98765abcde"}, "address": {"c"}, "city": {"d"}, "state": {"e"}, "pin": {"1234"}},
			msg:  "Phone must be 10 digits",
		},
		{
			name: "short pin",
			form: url.Values{"firstName": {"a"}, "lastName": {"b"}, "phone": {"9876543210"}, "address": {"c"}, "city": {"d"}, "state": {"e"}, "pin": {"12345"}},
			msg:  "PIN must be 6 digits",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.echoContext(http.MethodPost, "/create", tt.form)
			err := s.createHandler.Post(c)
			s.Require().NoError(err)
			s.Assert().Equal(http.StatusUnprocessableEntity, rec.Code)
			s.Assert().Contains(rec.Body.String(), tt.msg)
		})
	}
	s.customerSvcMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *handlersTestSuite) TestCreateRejected() {
	form := url.Values{"firstName": {"a"}, "lastName": {"b"}, "phone": {"9876543210"}, "address": {"c"}, "city": {"d"}, "state": {"e"}, "pin": {"123456"}}
	s.customerSvcMock.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewStatusErr(http.MethodPost, "/customers", http.StatusConflict)).
		Once()

	c, rec := s.echoContext(http.MethodPost, "/create", form)
	err := s.createHandler.Post(c)
	s.Require().NoError(err)
	s.Assert().Equal(http.StatusOK, rec.Code)
	s.Assert().NotContains(rec.Body.String(), msgCustomerCreated)
	s.Assert().Contains(rec.Body.String(), `value="9876543210"`)
}

func (s *handlersTestSuite) TestErrorStatus() {
	tests := []struct {
		err  error
		code int
	}{
		{err: apperrors.NewEntryNotFoundErr("customer 7 not found"), code: http.StatusNotFound},
		{err: apperrors.NewBusinessErr("address field country can't be edited"), code: http.StatusBadRequest},
		{err: echo.NewHTTPError(http.StatusMethodNotAllowed), code: http.StatusMethodNotAllowed},
		{err: fmt.Errorf("wrapped - %w", apperrors.NewStatusErr(http.MethodGet, "/customers", http.StatusServiceUnavailable)), code: http.StatusBadGateway},
		{err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := errorStatus(tt.err)
		s.Assert().Equal(tt.code, code, "unexpected status for %v", tt.err)
	}
}

// start handlers test suite
func (s *handlersTestSuite) TestTypedEdits() {
	c, _ := s.echoContext(http.MethodPost, "/customer/1/addresses/2/primary", url.Values{
		"firstName":        {"Marge"},
		"addresses.2.city": {"Ogdenville"},
		"addresses.3.pin":  {"733011"},
		"addresses.broken": {"x"},
		"line1":            {"19 Plympton Street"},
	})

	edits, err := typedEdits(c)
	s.Require().NoError(err)
	s.Assert().Equal(map[string]string{model.FieldFirstName: "Marge"}, edits.Draft)
	s.Assert().Equal(map[model.ID]map[string]string{
		"2": {model.FieldCity: "Ogdenville"},
		"3": {model.FieldPin: "733011"},
	}, edits.Addresses, "new address inputs must not be taken as edits")

	c, _ = s.echoContext(http.MethodPost, "/customer/1/edit", nil)
	edits, err = typedEdits(c)
	s.Require().NoError(err)
	s.Assert().True(edits.IsEmpty())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
