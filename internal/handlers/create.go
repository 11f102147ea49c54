package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/service"
	"github.com/Rohith-kulkarni/qwipo-app/internal/validation"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	msgAllFieldsRequired = "All fields are required!"
	msgCustomerCreated   = "Customer created successfully!"
)

type CreateHTTPHandler struct {
	customerSvc   service.CustomerService
	redirectDelay time.Duration
}

// NewCreateHTTPHandler builds new CreateHTTPHandler, user is sent to the list redirectDelay after success
func NewCreateHTTPHandler(customerSvc service.CustomerService, redirectDelay time.Duration) *CreateHTTPHandler {
	return &CreateHTTPHandler{customerSvc: customerSvc, redirectDelay: redirectDelay}
}

func (h *CreateHTTPHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageCreate, &view.CreatePage{})
}

func (h *CreateHTTPHandler) Post(c echo.Context) error {
	var form view.CustomerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&form); err != nil {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			return c.Render(http.StatusUnprocessableEntity, view.PageCreate, &view.CreatePage{
				Form:  form,
				Error: customerFormMessage(pldErr),
			})
		}
		return err
	}

	_, err := h.customerSvc.Create(c.Request().Context(), &model.Customer{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		State:     form.State,
		Pin:       form.Pin,
	})
	if err != nil {
		var statusErr *apperrors.StatusErr
		var notFoundErr *apperrors.EntryNotFoundErr
		if errors.As(err, &statusErr) || errors.As(err, &notFoundErr) {
			logrus.Warnf("customer was not created - %v", err)
			return c.Render(http.StatusOK, view.PageCreate, &view.CreatePage{Form: form})
		}
		return err
	}

	return c.Render(http.StatusOK, view.PageCreate, &view.CreatePage{
		Success:         msgCustomerCreated,
		RedirectURL:     "/",
		RedirectDelayMs: h.redirectDelay.Milliseconds(),
		RedirectSeconds: int64((h.redirectDelay + time.Second - 1) / time.Second),
	})
}

// customerFormMessage picks single message shown for invalid form: missing fields first, then phone, then pin
func customerFormMessage(pldErr *validation.PayloadError) string {
	if pldErr.HasTag(validation.TagRequired) {
		return msgAllFieldsRequired
	}

	for _, tag := range []string{validation.TagPhone, validation.TagPin} {
		if v, ok := pldErr.FirstWithTag(tag); ok {
			return v.Message
		}
	}
	return pldErr.Error()
}
