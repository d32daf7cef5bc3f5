package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/fraudwatch/internal/errors"
	"github.com/umalmyha/fraudwatch/internal/fraud"
	"github.com/umalmyha/fraudwatch/internal/model"
	"github.com/umalmyha/fraudwatch/internal/notifier"
	"github.com/umalmyha/fraudwatch/internal/repository"
)

// Outcome describes how a transaction submission finished
type Outcome string

const (
	// OutcomeLogged means the transaction was recorded without an alert
	OutcomeLogged Outcome = "logged"
	// OutcomeLoggedAndAlerted means the transaction was recorded and the
	// SMS alert was delivered
	OutcomeLoggedAndAlerted Outcome = "logged-and-alerted"
	// OutcomeLoggedAlertFailed means the transaction was recorded but the
	// SMS alert could not be delivered
	OutcomeLoggedAlertFailed Outcome = "logged-and-alert-failed"
)

// SubmitResult is the operator-facing outcome of one transaction submission
type SubmitResult struct {
	Entry    model.TransactionLogEntry
	Outcome  Outcome
	AlertErr error
}

// TransactionService records transactions and triggers alerts on suspicious ones
type TransactionService interface {
	Submit(ctx context.Context, customerName string, amount float64) (SubmitResult, error)
	FindAllLogs(context.Context) ([]model.TransactionLogEntry, error)
}

type transactionService struct {
	customerRepo repository.CustomerRepository
	logRepo      repository.TransactionLogRepository
	evaluator    *fraud.Evaluator
	notifier     notifier.Notifier
}

// NewTransactionService builds TransactionService
func NewTransactionService(
	customerRepo repository.CustomerRepository,
	logRepo repository.TransactionLogRepository,
	evaluator *fraud.Evaluator,
	ntf notifier.Notifier,
) TransactionService {
	return &transactionService{customerRepo: customerRepo, logRepo: logRepo, evaluator: evaluator, notifier: ntf}
}

// Submit runs one atomic submission sequence: resolve customer, evaluate
// suspicion, append the log entry, then notify if flagged. The entry is
// durable before any delivery attempt, so a failed alert never rolls it back.
func (s *transactionService) Submit(ctx context.Context, customerName string, amount float64) (SubmitResult, error) {
	if amount < 0 {
		return SubmitResult{}, apperrors.NewBusinessErr("amount", "transaction amount cannot be negative")
	}

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return SubmitResult{}, err
	}

	// first match wins when duplicate names exist
	var cust *model.Customer
	for i := range customers {
		if customers[i].Name == customerName {
			cust = &customers[i]
			break
		}
	}
	if cust == nil {
		return SubmitResult{}, apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer %q is not registered", customerName))
	}

	suspicious := s.evaluator.Suspicious(amount)
	entry := model.TransactionLogEntry{
		Name:   cust.Name,
		Amount: amount,
		Time:   time.Now().Format(model.TimeLayout),
		Alert:  model.AlertFlag(suspicious),
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return SubmitResult{}, err
	}

	res := SubmitResult{Entry: entry, Outcome: OutcomeLogged}
	if !suspicious {
		return res, nil
	}

	if err := s.notifier.Notify(ctx, cust.Phone, cust.Name, amount); err != nil {
		logrus.Errorf("failed to deliver alert for customer %s - %v", cust.Name, err)
		res.Outcome = OutcomeLoggedAlertFailed
		res.AlertErr = err
		return res, nil
	}

	logrus.Infof("suspicious transaction of %v for customer %s, SMS alert sent to %s", amount, cust.Name, cust.Phone)
	res.Outcome = OutcomeLoggedAndAlerted
	return res, nil
}

func (s *transactionService) FindAllLogs(ctx context.Context) ([]model.TransactionLogEntry, error) {
	entries, err := s.logRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
