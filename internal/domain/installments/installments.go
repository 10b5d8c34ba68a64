// Package installments splits a budget value into finance entries
// according to the selected payment terms. Pure and deterministic.
package installments

import (
	"fmt"
	"math"
	"time"

	"studioflow/internal/domain/entities"
)

// fractionTable maps payment terms to installment fractions.
//
// a_vista sums to 0.95: the single up-front installment carries an
// intentional 5% cash discount inherited from the office's commercial
// policy. Do not "fix" it to 1.0.
var fractionTable = map[entities.PaymentTerms][]float64{
	entities.PaymentTerms5050:   {0.5, 0.5},
	entities.PaymentTerms303040: {0.3, 0.3, 0.4},
	entities.PaymentTerms403030: {0.4, 0.3, 0.3},
	entities.PaymentTermsAVista: {0.95},
}

var defaultFractions = []float64{0.5, 0.5}

// Fractions resolves the installment fractions for the given terms.
// Unknown terms (personalizado included) fall back to 50/50.
func Fractions(terms entities.PaymentTerms) []float64 {
	if f, ok := fractionTable[terms]; ok {
		return f
	}
	return defaultFractions
}

// Generate produces one entry per fraction: value rounded to cents, due
// dates 30 days apart starting at startDate, first installment paid.
// Identity fields (ids, project linkage) are left for the caller to fill.
func Generate(totalValue float64, terms entities.PaymentTerms, startDate time.Time) []entities.FinanceEntry {
	fractions := Fractions(terms)

	entries := make([]entities.FinanceEntry, 0, len(fractions))
	for i, fraction := range fractions {
		status := entities.EntryStatusPending
		if i == 0 {
			status = entities.EntryStatusPaid
		}
		entries = append(entries, entities.FinanceEntry{
			Value:       roundCents(totalValue * fraction),
			DueDate:     startDate.AddDate(0, 0, 30*i),
			Status:      status,
			Installment: fmt.Sprintf("%d/%d", i+1, len(fractions)),
		})
	}
	return entries
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
