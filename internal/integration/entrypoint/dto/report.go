// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/report"
)

// CategoryAmountResponse represents one entry of a per-category breakdown.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetLineResponse represents one reconciled budget-vs-actual row.
type BudgetLineResponse struct {
	Category  string          `json:"category"`
	Budgeted  decimal.Decimal `json:"budgeted"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
}

// MonthlyReportResponse represents the full budget-vs-actual report for a month.
type MonthlyReportResponse struct {
	Month             string                   `json:"month"`
	TotalIncome       decimal.Decimal          `json:"total_income"`
	TotalExpense      decimal.Decimal          `json:"total_expense"`
	Net               decimal.Decimal          `json:"net"`
	CategoryBreakdown []CategoryAmountResponse `json:"category_breakdown"`
	BudgetVsActual    []BudgetLineResponse     `json:"budget_vs_actual"`
}

// SummaryResponse represents the monthly summary.
type SummaryResponse struct {
	Month             string                   `json:"month"`
	TotalIncome       decimal.Decimal          `json:"total_income"`
	TotalExpense      decimal.Decimal          `json:"total_expense"`
	Net               decimal.Decimal          `json:"net"`
	CategoryBreakdown []CategoryAmountResponse `json:"category_breakdown"`
}

// TrendPointResponse represents one month of the trends series.
type TrendPointResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// TrendsResponse represents the trends series for a month range.
type TrendsResponse struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Points []TrendPointResponse `json:"points"`
}

// ToMonthlyReportResponse converts a report output to a MonthlyReportResponse DTO.
func ToMonthlyReportResponse(output *report.BuildMonthlyReportOutput) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month:             output.Month,
		TotalIncome:       output.TotalIncome,
		TotalExpense:      output.TotalExpense,
		Net:               output.Net,
		CategoryBreakdown: toCategoryAmountResponses(output.CategoryBreakdown),
		BudgetVsActual:    toBudgetLineResponses(output.BudgetVsActual),
	}
}

// ToSummaryResponse converts a summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Month:             output.Month,
		TotalIncome:       output.TotalIncome,
		TotalExpense:      output.TotalExpense,
		Net:               output.Net,
		CategoryBreakdown: toCategoryAmountResponses(output.CategoryBreakdown),
	}
}

// ToTrendsResponse converts a trends output to a TrendsResponse DTO.
func ToTrendsResponse(output *report.GetTrendsOutput) TrendsResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = TrendPointResponse{
			Month:   point.Month,
			Income:  point.Income,
			Expense: point.Expense,
			Net:     point.Net,
		}
	}
	return TrendsResponse{
		From:   output.From,
		To:     output.To,
		Points: points,
	}
}

func toCategoryAmountResponses(breakdown []report.CategoryAmount) []CategoryAmountResponse {
	responses := make([]CategoryAmountResponse, len(breakdown))
	for i, entry := range breakdown {
		responses[i] = CategoryAmountResponse{
			Category: entry.Category,
			Amount:   entry.Amount,
		}
	}
	return responses
}

func toBudgetLineResponses(lines []report.BudgetLine) []BudgetLineResponse {
	responses := make([]BudgetLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = BudgetLineResponse{
			Category:  line.Category,
			Budgeted:  line.Budgeted,
			Actual:    line.Actual,
			Remaining: line.Remaining,
		}
	}
	return responses
}
