package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// MonthlyRollup is the net and tax recorded during one calendar month
type MonthlyRollup struct {
	Month string
	Net   decimal.Decimal
	Tax   decimal.Decimal
}

// TopEarner is one row of the earners ranking
type TopEarner = persistence.EmployeeNetTotal

// Aggregator answers read-only rollups over the transaction log. Queries are
// computed on demand without caching; the admin dashboard is low-throughput.
type Aggregator struct {
	ledgerRepo   persistence.LedgerRepository
	employeeRepo persistence.EmployeeRepository
	logger       coreport.Logger
}

// NewAggregator creates a reporting aggregator
func NewAggregator(
	ledgerRepo persistence.LedgerRepository,
	employeeRepo persistence.EmployeeRepository,
	logger coreport.Logger,
) *Aggregator {
	return &Aggregator{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// TotalPayout returns the sum of all net amounts paid out
func (a *Aggregator) TotalPayout(ctx context.Context) (decimal.Decimal, error) {
	return a.ledgerRepo.TotalNet(ctx)
}

// TotalTaxCollected returns the sum of all tax amounts withheld
func (a *Aggregator) TotalTaxCollected(ctx context.Context) (decimal.Decimal, error) {
	return a.ledgerRepo.TotalTax(ctx)
}

// ActiveStreams returns the number of employees currently eligible for salary
func (a *Aggregator) ActiveStreams(ctx context.Context) (int64, error) {
	return a.employeeRepo.CountStreaming(ctx)
}

// TopEarners ranks employees by total net received, descending, ties broken by
// employee ID ascending
func (a *Aggregator) TopEarners(ctx context.Context) ([]TopEarner, error) {
	return a.ledgerRepo.NetTotalsByEmployee(ctx)
}

// MonthKey truncates a timestamp to its year-month bucket. One explicit
// function instead of storage-specific date formatting, so grouping behaves
// identically across database dialects.
func MonthKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthlySummary groups net and tax by calendar month in ascending
// chronological order. Months with no transactions are omitted.
func (a *Aggregator) MonthlySummary(ctx context.Context) ([]MonthlyRollup, error) {
	transactions, err := a.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthlyRollup)
	for _, txn := range transactions {
		key := MonthKey(txn.CreatedAt)
		rollup, ok := buckets[key]
		if !ok {
			rollup = &MonthlyRollup{Month: key, Net: decimal.Zero, Tax: decimal.Zero}
			buckets[key] = rollup
		}
		rollup.Net = rollup.Net.Add(txn.NetAmount)
		rollup.Tax = rollup.Tax.Add(txn.TaxAmount)
	}

	summary := make([]MonthlyRollup, 0, len(buckets))
	for _, rollup := range buckets {
		summary = append(summary, *rollup)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Month < summary[j].Month
	})

	return summary, nil
}
