package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/umalmyha/fraudwatch/internal/inference"
	"github.com/umalmyha/fraudwatch/internal/model"
	"github.com/umalmyha/fraudwatch/internal/service"
)

type customerForm struct {
	Name   string    `form:"name" validate:"required"`
	Sex    model.Sex `form:"sex" validate:"required,oneof=Male Female Other"`
	Age    int       `form:"age" validate:"required,gte=1,lte=100"`
	DOB    string    `form:"dob" validate:"required,datetime=2006-01-02"`
	Credit string    `form:"credit" validate:"required"`
	Email  string    `form:"email" validate:"required,email"`
	Phone  string    `form:"phone" validate:"required,intlphone"`
}

type homeView struct {
	CustomerCount    int
	TransactionCount int
	AlertCount       int
}

type customersView struct {
	Customers []model.Customer
	Message   string
	Err       string
}

type addCustomerView struct {
	Form customerForm
	Err  string
}

type transactionView struct {
	Customers  []model.Customer
	Outcome    service.Outcome
	AlertError string
	Err        string
}

type logsView struct {
	Entries []model.TransactionLogEntry
}

type predictView struct {
	Features    []string
	Label       string
	Unavailable bool
	Err         string
}

// PageHandler renders the six dashboard views over the same services as the
// JSON api
type PageHandler struct {
	customerSvc    service.CustomerService
	transactionSvc service.TransactionService
	model          *inference.Model
}

// NewPageHandler builds new PageHandler, model may be nil
func NewPageHandler(customerSvc service.CustomerService, transactionSvc service.TransactionService, m *inference.Model) *PageHandler {
	return &PageHandler{customerSvc: customerSvc, transactionSvc: transactionSvc, model: m}
}

// Home renders the dashboard landing view with security tips and counters
func (h *PageHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerSvc.FindAll(ctx)
	if err != nil {
		return err
	}

	entries, err := h.transactionSvc.FindAllLogs(ctx)
	if err != nil {
		return err
	}

	alerts := 0
	for _, e := range entries {
		if bool(e.Alert) {
			alerts++
		}
	}

	return c.Render(http.StatusOK, "home.html", &homeView{
		CustomerCount:    len(customers),
		TransactionCount: len(entries),
		AlertCount:       alerts,
	})
}

// Customers renders the roster with delete controls
func (h *PageHandler) Customers(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	view := &customersView{Customers: customers}
	if deleted := c.QueryParam("deleted"); deleted != "" {
		view.Message = "Customer '" + deleted + "' has been deleted."
	}
	return c.Render(http.StatusOK, "customers.html", view)
}

// DeleteCustomer removes the selected customer and redirects back to the roster
func (h *PageHandler) DeleteCustomer(c echo.Context) error {
	name := c.FormValue("name")
	if err := h.customerSvc.DeleteByName(c.Request().Context(), name); err != nil {
		customers, findErr := h.customerSvc.FindAll(c.Request().Context())
		if findErr != nil {
			return findErr
		}
		return c.Render(http.StatusOK, "customers.html", &customersView{Customers: customers, Err: err.Error()})
	}
	return c.Redirect(http.StatusSeeOther, "/customers?deleted="+url.QueryEscape(name))
}

// AddCustomerForm renders the empty registration form
func (h *PageHandler) AddCustomerForm(c echo.Context) error {
	return c.Render(http.StatusOK, "customer_add.html", &addCustomerView{})
}

// AddCustomer registers a new customer from the submitted form. Validation
// and business failures re-render the form with the violation text, nothing
// is persisted then.
func (h *PageHandler) AddCustomer(c echo.Context) error {
	var form customerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "customer_add.html", &addCustomerView{Form: form, Err: err.Error()})
	}

	_, err := h.customerSvc.Create(c.Request().Context(), model.Customer{
		Name:   form.Name,
		Sex:    form.Sex,
		Age:    form.Age,
		DOB:    form.DOB,
		Credit: form.Credit,
		Email:  form.Email,
		Phone:  form.Phone,
	})
	if err != nil {
		return c.Render(http.StatusOK, "customer_add.html", &addCustomerView{Form: form, Err: err.Error()})
	}
	return c.Redirect(http.StatusSeeOther, "/customers")
}

// TransactionForm renders the submission form with the customer selector
func (h *PageHandler) TransactionForm(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "transaction.html", &transactionView{Customers: customers})
}

// SubmitTransaction records the transaction and shows the final outcome,
// including a failed alert delivery
func (h *PageHandler) SubmitTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerSvc.FindAll(ctx)
	if err != nil {
		return err
	}
	view := &transactionView{Customers: customers}

	name := c.FormValue("name")
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		view.Err = "transaction amount must be a number"
		return c.Render(http.StatusOK, "transaction.html", view)
	}

	res, err := h.transactionSvc.Submit(ctx, name, amount)
	if err != nil {
		view.Err = err.Error()
		return c.Render(http.StatusOK, "transaction.html", view)
	}

	view.Outcome = res.Outcome
	if res.AlertErr != nil {
		view.AlertError = res.AlertErr.Error()
	}
	return c.Render(http.StatusOK, "transaction.html", view)
}

// AlertLog renders the read-only transaction log table
func (h *PageHandler) AlertLog(c echo.Context) error {
	entries, err := h.transactionSvc.FindAllLogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "logs.html", &logsView{Entries: entries})
}

// PredictionForm renders one numeric input per model feature
func (h *PageHandler) PredictionForm(c echo.Context) error {
	if h.model == nil {
		return c.Render(http.StatusOK, "predict.html", &predictView{Unavailable: true})
	}
	return c.Render(http.StatusOK, "predict.html", &predictView{Features: h.model.Features()})
}

// Predict classifies the submitted feature values. Inputs arrive in training
// column order, one form value per feature.
func (h *PageHandler) Predict(c echo.Context) error {
	if h.model == nil {
		return c.Render(http.StatusOK, "predict.html", &predictView{Unavailable: true})
	}
	view := &predictView{Features: h.model.Features()}

	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	raw := c.Request().PostForm["features"]
	features := make([]float64, 0, len(raw))
	for _, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			view.Err = "every feature value must be a number"
			return c.Render(http.StatusOK, "predict.html", view)
		}
		features = append(features, f)
	}

	prediction, err := h.model.Predict(features)
	if err != nil {
		view.Err = err.Error()
		return c.Render(http.StatusOK, "predict.html", view)
	}

	if prediction == 1 {
		view.Label = "Fraudulent Transaction"
	} else {
		view.Label = "Normal Transaction"
	}
	return c.Render(http.StatusOK, "predict.html", view)
}
