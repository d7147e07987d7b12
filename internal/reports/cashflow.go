package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UncategorizedExpense категория для расходов без категории
const UncategorizedExpense = "Sin categoría"

// BuildCashFlow считает движение денег за период: выручка, расходы по категориям и итог
func BuildCashFlow(r domain.DateRange, s Snapshot) *CashFlowReport {
	income := BuildIncome(r, s)

	report := &CashFlowReport{
		Range:         r,
		Income:        *income,
		TotalExpenses: decimal.Zero,
		ByCategory:    []CategoryExpense{},
	}

	byCategory := make(map[string]*CategoryExpense)
	for _, e := range s.Expenses {
		if e == nil || !r.Contains(e.Date) {
			continue
		}

		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = UncategorizedExpense
		}

		bucket, ok := byCategory[category]
		if !ok {
			bucket = &CategoryExpense{Category: category, Total: decimal.Zero}
			byCategory[category] = bucket
		}
		bucket.Total = bucket.Total.Add(e.Amount)
		bucket.ExpensesCount++

		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
	}

	for _, bucket := range byCategory {
		report.ByCategory = append(report.ByCategory, *bucket)
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})

	report.Net = income.Total.Sub(report.TotalExpenses)

	return report
}
