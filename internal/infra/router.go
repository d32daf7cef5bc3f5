package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/umalmyha/fraudwatch/internal/config"
	apperrors "github.com/umalmyha/fraudwatch/internal/errors"
	"github.com/umalmyha/fraudwatch/internal/fraud"
	"github.com/umalmyha/fraudwatch/internal/handlers"
	"github.com/umalmyha/fraudwatch/internal/inference"
	"github.com/umalmyha/fraudwatch/internal/notifier"
	"github.com/umalmyha/fraudwatch/internal/repository"
	"github.com/umalmyha/fraudwatch/internal/service"
	"github.com/umalmyha/fraudwatch/internal/validation"
	"github.com/umalmyha/fraudwatch/internal/web"
)

// Router assembles the application: repositories over the two JSON documents,
// alerting collaborators, services, the JSON api and the dashboard views
func Router(cfg config.Config) (*echo.Echo, error) {
	validate, translator, err := validation.New()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.Validator = validation.Echo(validate, translator)
	e.HTTPErrorHandler = httpErrorHandler(e)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// Repositories
	customerRepo := repository.NewJSONCustomerRepository(cfg.StorageCfg.CustomerFile)
	logRepo := repository.NewJSONTransactionLogRepository(cfg.StorageCfg.LogFile)

	// Alerting collaborators
	evaluator := fraud.NewEvaluator(cfg.FraudCfg.TransactionLimit)
	provider := notifier.NewTwilioProvider(cfg.TwilioCfg.AccountSid, cfg.TwilioCfg.AuthToken, cfg.TwilioCfg.PhoneNumber)
	alertNotifier := notifier.NewSMSNotifier(provider)

	// Services
	customerSvc := service.NewCustomerService(customerRepo, cfg.FraudCfg.MaxCustomers)
	transactionSvc := service.NewTransactionService(customerRepo, logRepo, evaluator, alertNotifier)

	// Prediction model is optional, the alerting half keeps working without it
	var mdl *inference.Model
	if m, err := inference.Load(cfg.ModelCfg.File); err != nil {
		logrus.Warnf("fraud prediction model is not available - %v", err)
	} else {
		mdl = m
	}

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	transactionHandler := handlers.NewTransactionHTTPHandler(transactionSvc)
	predictionHandler := handlers.NewPredictionHTTPHandler(mdl)
	pageHandler := web.NewPageHandler(customerSvc, transactionSvc, mdl)

	// API routes
	api := e.Group("/api")

	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.DELETE("/:name", customerHandler.DeleteByName)

	transactionsAPI := api.Group("/transactions")
	transactionsAPI.GET("", transactionHandler.GetAll)
	transactionsAPI.POST("", transactionHandler.Post)

	api.GET("/model/features", predictionHandler.Features)
	api.POST("/predictions", predictionHandler.Predict)

	// Dashboard views
	e.GET("/", pageHandler.Home)
	e.GET("/customers", pageHandler.Customers)
	e.POST("/customers", pageHandler.AddCustomer)
	e.GET("/customers/new", pageHandler.AddCustomerForm)
	e.POST("/customers/delete", pageHandler.DeleteCustomer)
	e.GET("/transactions/new", pageHandler.TransactionForm)
	e.POST("/transactions", pageHandler.SubmitTransaction)
	e.GET("/logs", pageHandler.AlertLog)
	e.GET("/predict", pageHandler.PredictionForm)
	e.POST("/predict", pageHandler.Predict)

	return e, nil
}

func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logrus.Errorf("error occurred on %s %s - %v", c.Request().Method, c.Request().URL.Path, err)

		var (
			pldErr      *validation.PayloadError
			businessErr *apperrors.BusinessErr
			notFoundErr *apperrors.EntryNotFoundErr
			corruptErr  *apperrors.CorruptDataErr
			featureErr  *inference.FeatureCountErr
		)

		switch {
		case errors.As(err, &pldErr):
			err = c.JSON(http.StatusBadRequest, pldErr)
		case errors.As(err, &businessErr):
			err = c.JSON(http.StatusBadRequest, businessErr)
		case errors.As(err, &featureErr):
			err = c.JSON(http.StatusBadRequest, echo.Map{"message": featureErr.Error()})
		case errors.As(err, &notFoundErr):
			err = c.JSON(http.StatusNotFound, echo.Map{"message": notFoundErr.Error()})
		case errors.As(err, &corruptErr):
			err = c.JSON(http.StatusInternalServerError, echo.Map{"message": corruptErr.Error()})
		default:
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if err != nil {
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
