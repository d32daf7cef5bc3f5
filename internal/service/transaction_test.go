package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/umalmyha/fraudwatch/internal/errors"
	"github.com/umalmyha/fraudwatch/internal/fraud"
	"github.com/umalmyha/fraudwatch/internal/model"
	"github.com/umalmyha/fraudwatch/internal/notifier"
	ntfMocks "github.com/umalmyha/fraudwatch/internal/notifier/mocks"
	rpsMocks "github.com/umalmyha/fraudwatch/internal/repository/mocks"
)

const testTransactionLimit = 5000

type transactionServiceTestSuite struct {
	suite.Suite
	transactionSvc  TransactionService
	customerRpsMock *rpsMocks.CustomerRepository
	logRpsMock      *rpsMocks.TransactionLogRepository
	notifierMock    *ntfMocks.Notifier
	testCtx         context.Context
	testCustomer    model.Customer
}

func (s *transactionServiceTestSuite) SetupSuite() {
	s.testCtx = context.Background()
	s.testCustomer = model.Customer{
		Name:   "John Walls",
		Sex:    model.SexMale,
		Age:    42,
		DOB:    "1983-05-11",
		Credit: "good",
		Email:  "john.walls@somemail.com",
		Phone:  "+12345678901",
	}
}

func (s *transactionServiceTestSuite) SetupTest() {
	s.customerRpsMock = rpsMocks.NewCustomerRepository(s.T())
	s.logRpsMock = rpsMocks.NewTransactionLogRepository(s.T())
	s.notifierMock = ntfMocks.NewNotifier(s.T())
	s.transactionSvc = NewTransactionService(s.customerRpsMock, s.logRpsMock, fraud.NewEvaluator(testTransactionLimit), s.notifierMock)
}

func (s *transactionServiceTestSuite) entryMatcher(amount float64, alert bool) any {
	return mock.MatchedBy(func(e model.TransactionLogEntry) bool {
		return e.Name == s.testCustomer.Name && e.Amount == amount && bool(e.Alert) == alert
	})
}

func (s *transactionServiceTestSuite) TestSubmitBelowThreshold() {
	ctx := s.testCtx

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer}, nil).Once()
	s.logRpsMock.On("Append", ctx, s.entryMatcher(100, false)).Return(nil).Once()

	s.T().Log("ordinary transaction must produce one unflagged entry and zero notifier calls")
	{
		res, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, 100)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(OutcomeLogged, res.Outcome)
		s.Assert().False(bool(res.Entry.Alert))
		s.notifierMock.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *transactionServiceTestSuite) TestSubmitSuspicious() {
	ctx := s.testCtx

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer}, nil).Once()
	s.logRpsMock.On("Append", ctx, s.entryMatcher(30000, true)).Return(nil).Once()
	s.notifierMock.On("Notify", ctx, s.testCustomer.Phone, s.testCustomer.Name, float64(30000)).Return(nil).Once()

	s.T().Log("suspicious transaction must produce one flagged entry and exactly one notifier call")
	{
		res, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, 30000)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(OutcomeLoggedAndAlerted, res.Outcome)
		s.Assert().True(bool(res.Entry.Alert))
	}
}

func (s *transactionServiceTestSuite) TestSubmitAlertDeliveryFailed() {
	ctx := s.testCtx

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer}, nil).Once()
	s.logRpsMock.On("Append", ctx, s.entryMatcher(30000, true)).Return(nil).Once()
	s.notifierMock.On("Notify", ctx, s.testCustomer.Phone, s.testCustomer.Name, float64(30000)).Return(notifier.ErrInvalidPhone).Once()

	s.T().Log("failed delivery must not fail the submission, the entry is already durable")
	{
		res, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, 30000)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(OutcomeLoggedAlertFailed, res.Outcome)
		s.Assert().ErrorIs(res.AlertErr, notifier.ErrInvalidPhone, "delivery failure must be surfaced in the result")
	}
}

func (s *transactionServiceTestSuite) TestSubmitCustomerNotFound() {
	ctx := s.testCtx

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer}, nil).Once()

	s.T().Log("unknown customer must fail submission before anything is written")
	{
		_, err := s.transactionSvc.Submit(ctx, "Nobody", 100)

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.logRpsMock.AssertNotCalled(s.T(), "Append", ctx, mock.Anything)
	}
}

func (s *transactionServiceTestSuite) TestSubmitFirstMatchOnDuplicates() {
	ctx := s.testCtx

	duplicate := s.testCustomer
	duplicate.Phone = "+19999999999"

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer, duplicate}, nil).Once()
	s.logRpsMock.On("Append", ctx, s.entryMatcher(30000, true)).Return(nil).Once()
	s.notifierMock.On("Notify", ctx, s.testCustomer.Phone, s.testCustomer.Name, float64(30000)).Return(nil).Once()

	s.T().Log("first roster match must win when duplicate names exist")
	{
		_, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, 30000)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *transactionServiceTestSuite) TestSubmitNegativeAmount() {
	ctx := s.testCtx

	s.T().Log("negative amount must be rejected before any read or write")
	{
		_, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, -1)

		var businessErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &businessErr, "business error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindAll", ctx)
	}
}

func (s *transactionServiceTestSuite) TestSubmitTimestampFormat() {
	ctx := s.testCtx

	var captured model.TransactionLogEntry
	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{s.testCustomer}, nil).Once()
	s.logRpsMock.On("Append", ctx, mock.AnythingOfType("model.TransactionLogEntry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(model.TransactionLogEntry)
		}).Return(nil).Once()

	_, err := s.transactionSvc.Submit(ctx, s.testCustomer.Name, 100)
	s.Require().NoError(err)

	_, err = time.Parse(model.TimeLayout, captured.Time)
	s.Assert().NoError(err, "entry timestamp must follow the legacy second-precision layout")
}

func (s *transactionServiceTestSuite) TestFindAllLogs() {
	ctx := s.testCtx

	entries := []model.TransactionLogEntry{
		{Name: s.testCustomer.Name, Amount: 100, Time: "2025-01-02 10:00:00", Alert: false},
	}
	s.logRpsMock.On("FindAll", ctx).Return(entries, nil).Once()

	found, err := s.transactionSvc.FindAllLogs(ctx)
	s.Assert().NoError(err, "no error must be raised")
	s.Assert().Equal(entries, found)
}

// start transaction service test suite
func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(transactionServiceTestSuite))
}
