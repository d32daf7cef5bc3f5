package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/umalmyha/fraudwatch/internal/inference"
	"github.com/umalmyha/fraudwatch/internal/model"
	"github.com/umalmyha/fraudwatch/internal/service"
)

type newCustomer struct {
	Name   string    `json:"name" form:"name" validate:"required"`
	Sex    model.Sex `json:"sex" form:"sex" validate:"required,oneof=Male Female Other"`
	Age    int       `json:"age" form:"age" validate:"required,gte=1,lte=100"`
	DOB    string    `json:"dob" form:"dob" validate:"required,datetime=2006-01-02"`
	Credit string    `json:"credit" form:"credit" validate:"required"`
	Email  string    `json:"email" form:"email" validate:"required,email"`
	Phone  string    `json:"phone" form:"phone" validate:"required,intlphone"`
}

func (nc *newCustomer) toModel() model.Customer {
	return model.Customer{
		Name:   nc.Name,
		Sex:    nc.Sex,
		Age:    nc.Age,
		DOB:    nc.DOB,
		Credit: nc.Credit,
		Email:  nc.Email,
		Phone:  nc.Phone,
	}
}

// CustomerHTTPHandler is http handler for customers endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll returns the whole customer roster
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post registers new customer
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), nc.toModel())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, &customer)
}

// DeleteByName deletes all customers with exactly matching name
func (h *CustomerHTTPHandler) DeleteByName(c echo.Context) error {
	if err := h.customerSvc.DeleteByName(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type newTransaction struct {
	Name   string  `json:"name" form:"name" validate:"required"`
	Amount float64 `json:"amount" form:"amount" validate:"gte=0"`
}

type submitResponse struct {
	Entry      model.TransactionLogEntry `json:"entry"`
	Outcome    service.Outcome           `json:"outcome"`
	AlertError string                    `json:"alertError,omitempty"`
}

func toSubmitResponse(res service.SubmitResult) *submitResponse {
	resp := &submitResponse{Entry: res.Entry, Outcome: res.Outcome}
	if res.AlertErr != nil {
		resp.AlertError = res.AlertErr.Error()
	}
	return resp
}

// TransactionHTTPHandler is http handler for transactions endpoint
type TransactionHTTPHandler struct {
	transactionSvc service.TransactionService
}

// NewTransactionHTTPHandler builds new TransactionHTTPHandler
func NewTransactionHTTPHandler(transactionSvc service.TransactionService) *TransactionHTTPHandler {
	return &TransactionHTTPHandler{transactionSvc: transactionSvc}
}

// GetAll returns the whole transaction log
func (h *TransactionHTTPHandler) GetAll(c echo.Context) error {
	entries, err := h.transactionSvc.FindAllLogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Post submits a transaction for the selected customer. The response carries
// the final outcome, a failed alert delivery is reported but does not fail
// the request since the log entry is already durable.
func (h *TransactionHTTPHandler) Post(c echo.Context) error {
	var nt newTransaction
	if err := c.Bind(&nt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nt); err != nil {
		return err
	}

	res, err := h.transactionSvc.Submit(c.Request().Context(), nt.Name, nt.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSubmitResponse(res))
}

type predictionRequest struct {
	Features []float64 `json:"features" validate:"required"`
}

type predictionResponse struct {
	Prediction int    `json:"prediction"`
	Label      string `json:"label"`
}

// PredictionLabel is human-readable form of the binary fraud label
func PredictionLabel(prediction int) string {
	if prediction == 1 {
		return "Fraudulent Transaction"
	}
	return "Normal Transaction"
}

// PredictionHTTPHandler is http handler for fraud prediction endpoint
type PredictionHTTPHandler struct {
	model *inference.Model
}

// NewPredictionHTTPHandler builds new PredictionHTTPHandler. Model may be nil
// when the model file failed to load, endpoints report unavailability then.
func NewPredictionHTTPHandler(model *inference.Model) *PredictionHTTPHandler {
	return &PredictionHTTPHandler{model: model}
}

// Features returns model feature names in training column order
func (h *PredictionHTTPHandler) Features(c echo.Context) error {
	if h.model == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "fraud prediction model is not available")
	}
	return c.JSON(http.StatusOK, h.model.Features())
}

// Predict classifies the submitted feature vector
func (h *PredictionHTTPHandler) Predict(c echo.Context) error {
	if h.model == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "fraud prediction model is not available")
	}

	var req predictionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	prediction, err := h.model.Predict(req.Features)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &predictionResponse{
		Prediction: prediction,
		Label:      PredictionLabel(prediction),
	})
}
