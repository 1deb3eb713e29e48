package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/events"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/SscSPs/pocket_ledger/internal/utils/accounting"
	"github.com/SscSPs/pocket_ledger/internal/utils/pagination"
)

// ledgerService owns the transaction ledger. Every aggregate it returns is
// derived by replaying the full ledger.
type ledgerService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	publisher events.Publisher
	location  *time.Location
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithEventPublisher announces recorded and discarded transactions through p.
func WithEventPublisher(p events.Publisher) LedgerServiceOption {
	return func(s *ledgerService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLedgerLocation sets the calendar used for day/month/year listing scopes.
func WithLedgerLocation(loc *time.Location) LedgerServiceOption {
	return func(s *ledgerService) {
		s.location = loc
	}
}

// WithLedgerClock overrides the clock used for default transaction dates.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txnRepo:   txnRepo,
		publisher: events.NoopPublisher{},
		location:  time.UTC,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) loadLedger(ctx context.Context, order portsrepo.SortOrder) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, order)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return txns, nil
}

// GetTotals replays the whole ledger and returns balance and savings.
func (s *ledgerService) GetTotals(ctx context.Context) (*domain.LedgerTotals, error) {
	txns, err := s.loadLedger(ctx, portsrepo.Ascending)
	if err != nil {
		return nil, err
	}
	totals := accounting.ComputeTotals(txns)
	return &totals, nil
}

// GetStatement replays the whole ledger and returns every entry with its running totals.
func (s *ledgerService) GetStatement(ctx context.Context) ([]domain.StatementLine, error) {
	txns, err := s.loadLedger(ctx, portsrepo.Ascending)
	if err != nil {
		return nil, err
	}
	return accounting.Replay(txns), nil
}

// RecordTransaction validates and appends a new ledger entry. Savings kinds
// are checked against the current balance or savings first.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount == nil {
		return nil, apperrors.NewValidationError("amount is required")
	}

	txn := domain.Transaction{
		Kind:        domain.TransactionKind(strings.ToUpper(strings.TrimSpace(string(req.Type)))),
		Title:       strings.TrimSpace(req.Title),
		Description: normaliseDescription(req.Description),
		Amount:      *req.Amount,
		Date:        s.Now(),
	}
	if req.Date != nil && !req.Date.IsZero() {
		txn.Date = *req.Date
	}
	if txn.Kind == domain.SetBalance && txn.Title == "" {
		txn.Title = domain.DefaultSetBalanceTitle
	}

	if err := txn.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("type", string(req.Type)), slog.String("error", err.Error()))
		return nil, err
	}

	if txn.Kind.AffectsSavings() {
		if err := s.checkSavingsBounds(ctx, txn); err != nil {
			return nil, err
		}
	}

	created, err := s.txnRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to store transaction", slog.String("type", string(txn.Kind)))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", created.ID),
		slog.String("type", string(created.Kind)),
		slog.String("amount", created.Amount.String()))
	s.publish(ctx, events.NewRecordedEvent(*created))

	return created, nil
}

func (s *ledgerService) checkSavingsBounds(ctx context.Context, txn domain.Transaction) error {
	totals, err := s.GetTotals(ctx)
	if err != nil {
		return err
	}

	switch txn.Kind {
	case domain.SaveToSavings:
		err = accounting.ValidateSavingsDeposit(txn.Amount, totals.Balance)
	case domain.TakeFromSavings:
		err = accounting.ValidateSavingsWithdrawal(txn.Amount, totals.Savings)
	}
	if err != nil {
		s.LogInfo(ctx, "Savings transfer rejected",
			slog.String("type", string(txn.Kind)),
			slog.String("amount", txn.Amount.String()),
			slog.String("balance", totals.Balance.String()),
			slog.String("savings", totals.Savings.String()),
			slog.String("reason", err.Error()))
	}
	return err
}

// DiscardTransaction permanently deletes an entry; aggregates follow on the next replay.
func (s *ledgerService) DiscardTransaction(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid transaction id %d", id)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to discard transaction", slog.Int64("transaction_id", id))
		return fmt.Errorf("failed to discard transaction %d: %w", id, err)
	}

	s.LogInfo(ctx, "Transaction discarded", slog.Int64("transaction_id", id))
	s.publish(ctx, events.NewDiscardedEvent(id))
	return nil
}

// DepositToSavings moves money from the balance into savings.
func (s *ledgerService) DepositToSavings(ctx context.Context, req dto.SavingsTransferRequest) (*domain.Transaction, error) {
	return s.RecordTransaction(ctx, savingsRequest(domain.SaveToSavings, domain.DefaultSaveToSavingsTitle, req))
}

// WithdrawFromSavings moves money from savings back into the balance.
func (s *ledgerService) WithdrawFromSavings(ctx context.Context, req dto.SavingsTransferRequest) (*domain.Transaction, error) {
	return s.RecordTransaction(ctx, savingsRequest(domain.TakeFromSavings, domain.DefaultTakeFromSavingsTitle, req))
}

func savingsRequest(kind domain.TransactionKind, defaultTitle string, req dto.SavingsTransferRequest) dto.CreateTransactionRequest {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultTitle
	}
	return dto.CreateTransactionRequest{
		Type:        kind,
		Title:       title,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
}

// ListTransactions returns a filtered page of entries, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = dto.DefaultListLimit
	}

	var (
		hasCursor  bool
		cursorDate time.Time
		cursorID   int64
	)
	if params.NextToken != "" {
		cursorDate, cursorID, err = pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("%s", err.Error())
		}
		hasCursor = true
	}

	txns, err := s.loadLedger(ctx, portsrepo.Descending)
	if err != nil {
		return nil, err
	}

	page := make([]domain.Transaction, 0, limit)
	more := false
	for _, txn := range txns {
		if hasCursor && !pagination.After(txn.Date, txn.ID, cursorDate, cursorID) {
			continue
		}
		if !filter.Matches(txn) {
			continue
		}
		if len(page) == limit {
			more = true
			break
		}
		page = append(page, txn)
	}

	resp := &dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(page)}
	if more {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		resp.NextToken = &token
	}

	s.LogDebug(ctx, "Listed transactions", slog.Int("count", len(page)), slog.Bool("more", more))
	return resp, nil
}

func (s *ledgerService) buildFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Query:    params.Query,
		Scope:    domain.DateScope(strings.ToLower(params.Scope)),
		Location: s.location,
	}
	if !filter.Scope.IsValid() {
		return filter, apperrors.NewValidationError("unknown scope %q", params.Scope)
	}

	if params.Date != "" {
		date, err := utils.ParseDate(params.Date, s.location)
		if err != nil {
			return filter, err
		}
		filter.Date = date
	} else if filter.Scope != domain.ScopeAll {
		filter.Date = s.Now()
	}

	for _, raw := range params.Kinds {
		k := domain.TransactionKind(strings.ToUpper(strings.TrimSpace(raw)))
		if !k.IsValid() {
			return filter, apperrors.NewValidationError("unknown transaction type %q", raw)
		}
		filter.Kinds = append(filter.Kinds, k)
	}
	return filter, nil
}

func normaliseDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// publish logs publishing failures instead of returning them.
func (s *ledgerService) publish(ctx context.Context, event *events.LedgerEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("event_type", event.Type),
			slog.Int64("transaction_id", event.TransactionID))
	}
}
