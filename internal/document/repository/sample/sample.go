// Package sample serves the built-in example documents.
package sample

import (
	"context"
	"sort"
	"strings"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/document/repository"
)

var samples = map[string]string{
	"sample_personal_loan": `PERSONAL LOAN AGREEMENT
Loan amount: Rs 2,00,000. Rate of interest: 18% per annum (floating, may be revised by the lender at its discretion).
Tenure: 36 months. Processing fee: 3% of the loan amount plus GST, non-refundable.
Foreclosure: permitted after 12 EMIs with a charge of 5% of the outstanding principal.
Late payment: 3% per month on the overdue EMI plus Rs 750 bounce charge per instance.
The borrower authorises the lender to access contacts and location on the mobile device for recovery purposes.
The lender may assign this loan to any third party without notice to the borrower.`,

	"sample_home_loan": `HOME LOAN SANCTION LETTER
Sanctioned amount: Rs 45,00,000. Interest: 8.6% p.a. linked to the repo rate, reset quarterly.
Tenure: 240 months. Processing fee: 0.5% subject to a maximum of Rs 10,000.
Prepayment: nil for individual borrowers on floating rate.
Late payment: 2% per month on the overdue amount.
Property insurance must be purchased from the lender's partner insurer.`,

	"sample_credit_card": `CREDIT CARD MOST IMPORTANT TERMS AND CONDITIONS
Annual fee: Rs 2,500 (waived on annual spend above Rs 3,00,000). Finance charges: 3.6% per month (43.2% p.a.) on revolving credit.
Cash advance fee: 2.5% of the amount, minimum Rs 500. Late payment charges: up to Rs 1,300 depending on the outstanding amount.
Minimum amount due: 5% of total outstanding. Interest-free period applies only if the total due is paid in full.`,
}

type implStore struct{}

// New returns the built-in sample store.
func New() repository.Store {
	return implStore{}
}

// IDs lists the sample identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(samples))
	for id := range samples {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (implStore) Get(ctx context.Context, id string) (string, error) {
	if text, ok := samples[strings.ToLower(strings.TrimSpace(id))]; ok {
		return text, nil
	}
	return "", document.ErrDocumentNotFound
}
