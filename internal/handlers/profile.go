package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rohith-kulkarni/qwipo-app/internal/middleware"
	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/service"
	"github.com/Rohith-kulkarni/qwipo-app/internal/validation"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
)

const (
	msgConfirmCustomerDelete = "Are you sure you want to delete this customer?"
	msgConfirmAddressDelete  = "Delete this address?"
	msgInvalidAddress        = "Please fill valid address details"
	confirmedValue           = "yes"
)

// address inputs are named addresses.<address id>.<field>
const addressInputPrefix = "addresses"

var draftFields = []string{model.FieldFirstName, model.FieldLastName, model.FieldPhone}

type customerDraft struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Phone     string `form:"phone"`
}

type addressField struct {
	Name  string `form:"name"`
	Value string `form:"value"`
}

// ProfileHTTPHandler is http handler for customer profile screen
type ProfileHTTPHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHTTPHandler(profileSvc service.ProfileService) *ProfileHTTPHandler {
	return &ProfileHTTPHandler{profileSvc: profileSvc}
}

// KeepEdits applies every value typed on profile screen to the stored state before the action itself,
// so unsaved edits survive any other action
func (h *ProfileHTTPHandler) KeepEdits(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method != http.MethodPost {
			return next(c)
		}

		edits, err := typedEdits(c)
		if err != nil {
			return err
		}

		if !edits.IsEmpty() {
			if _, err := h.profileSvc.ApplyEdits(c.Request().Context(), middleware.SessionID(c), customerID(c), edits); err != nil {
				return err
			}
		}
		return next(c)
	}
}

// Get loads customer with addresses and resets profile state
func (h *ProfileHTTPHandler) Get(c echo.Context) error {
	state, err := h.profileSvc.Mount(c.Request().Context(), middleware.SessionID(c), customerID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

func (h *ProfileHTTPHandler) Show(c echo.Context) error {
	state, err := h.profileSvc.State(c.Request().Context(), middleware.SessionID(c), customerID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// Edit switches profile to edit mode
func (h *ProfileHTTPHandler) Edit(c echo.Context) error {
	state, err := h.profileSvc.BeginEdit(c.Request().Context(), middleware.SessionID(c), customerID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

func (h *ProfileHTTPHandler) Cancel(c echo.Context) error {
	state, err := h.profileSvc.CancelEdit(c.Request().Context(), middleware.SessionID(c), customerID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// Save updates customer with edited name and phone
func (h *ProfileHTTPHandler) Save(c echo.Context) error {
	var d customerDraft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, err := h.profileSvc.SaveCustomer(c.Request().Context(), middleware.SessionID(c), customerID(c), model.CustomerDraft{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
	})
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// Delete deletes customer once user confirmed it and sends user back to the list
func (h *ProfileHTTPHandler) Delete(c echo.Context) error {
	id := customerID(c)
	if !confirmed(c) {
		return c.Render(http.StatusOK, view.PageConfirm, &view.ConfirmPage{
			Message:   msgConfirmCustomerDelete,
			ActionURL: fmt.Sprintf("/customer/%s/delete", id),
			CancelURL: fmt.Sprintf("/customer/%s", id),
		})
	}

	if err := h.profileSvc.DeleteCustomer(c.Request().Context(), middleware.SessionID(c), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// AddAddress validates new address and creates it under customer
func (h *ProfileHTTPHandler) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionID(c)
	id := customerID(c)

	var form view.AddressForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&form); err != nil {
		var pldErr *validation.PayloadError
		if !errors.As(err, &pldErr) {
			return err
		}

		state, err := h.profileSvc.State(ctx, session, id)
		if err != nil {
			return err
		}
		return c.Render(http.StatusUnprocessableEntity, view.PageProfile, &view.ProfilePage{
			State:      state,
			Addresses:  state.AddressViews(),
			NewAddress: form,
			Alert:      msgInvalidAddress,
		})
	}

	state, err := h.profileSvc.AddAddress(ctx, session, id, &model.Address{
		Line1: form.Line1,
		City:  form.City,
		State: form.State,
		Pin:   form.Pin,
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, view.PageProfile, &view.ProfilePage{
		State:     state,
		Addresses: state.AddressViews(),
	})
}

// EditAddressField changes single address field locally
func (h *ProfileHTTPHandler) EditAddressField(c echo.Context) error {
	var f addressField
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	state, err := h.profileSvc.EditAddressField(c.Request().Context(), middleware.SessionID(c), customerID(c), addressID(c), f.Name, f.Value)
	if err != nil {
		return err
	}
	return h.render(c, state)
}

func (h *ProfileHTTPHandler) SaveAddress(c echo.Context) error {
	state, err := h.profileSvc.SaveAddress(c.Request().Context(), middleware.SessionID(c), customerID(c), addressID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// DeleteAddress deletes address once user confirmed it
func (h *ProfileHTTPHandler) DeleteAddress(c echo.Context) error {
	id := customerID(c)
	addrID := addressID(c)
	if !confirmed(c) {
		return c.Render(http.StatusOK, view.PageConfirm, &view.ConfirmPage{
			Message:   msgConfirmAddressDelete,
			ActionURL: fmt.Sprintf("/customer/%s/addresses/%s/delete", id, addrID),
			CancelURL: fmt.Sprintf("/customer/%s", id),
		})
	}

	state, err := h.profileSvc.DeleteAddress(c.Request().Context(), middleware.SessionID(c), id, addrID)
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// MarkPrimary marks address as the only one
func (h *ProfileHTTPHandler) MarkPrimary(c echo.Context) error {
	state, err := h.profileSvc.MarkPrimary(c.Request().Context(), middleware.SessionID(c), customerID(c), addressID(c))
	if err != nil {
		return err
	}
	return h.render(c, state)
}

// render keeps new address inputs filled until the address is added
func (h *ProfileHTTPHandler) render(c echo.Context, state *model.ProfileState) error {
	return c.Render(http.StatusOK, view.PageProfile, &view.ProfilePage{
		State:      state,
		Addresses:  state.AddressViews(),
		NewAddress: view.AddressForm{
			Line1: c.FormValue(model.FieldLine1),
			City:  c.FormValue(model.FieldCity),
			State: c.FormValue(model.FieldState),
			Pin:   c.FormValue(model.FieldPin),
		},
	})
}

func customerID(c echo.Context) model.ID {
	return model.ID(c.Param("id"))
}

func addressID(c echo.Context) model.ID {
	return model.ID(c.Param("addressId"))
}

func confirmed(c echo.Context) bool {
	return c.FormValue("confirm") == confirmedValue
}

func typedEdits(c echo.Context) (model.ProfileEdits, error) {
	params, err := c.FormParams()
	if err != nil {
		return model.ProfileEdits{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	edits := model.ProfileEdits{
		Draft:     make(map[string]string),
		Addresses: make(map[model.ID]map[string]string),
	}

	for _, f := range draftFields {
		if values, ok := params[f]; ok && len(values) > 0 {
			edits.Draft[f] = values[0]
		}
	}

	for key, values := range params {
		parts := strings.SplitN(key, ".", 3)
		if len(parts) != 3 || parts[0] != addressInputPrefix || len(values) == 0 {
			continue
		}

		id := model.ID(parts[1])
		if edits.Addresses[id] == nil {
			edits.Addresses[id] = make(map[string]string)
		}
		edits.Addresses[id][parts[2]] = values[0]
	}
	return edits, nil
}
