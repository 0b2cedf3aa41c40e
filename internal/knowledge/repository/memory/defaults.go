package memory

import "finpal-guardian/internal/knowledge"

// DefaultDocuments is the built-in corpus.
func DefaultDocuments() []knowledge.RawDocument {
	return []knowledge.RawDocument{
		{
			ID:     "rbi_upi_fraud_reporting",
			Source: "RBI",
			Title:  "UPI Fraud Reporting Timelines",
			RawText: "If a customer reports an unauthorised electronic transaction to the bank " +
				"within three working days, and the customer has not shared credentials " +
				"knowingly or acted fraudulently, the customer shall bear zero liability. " +
				"If the report is made after three days but within seven working days, " +
				"the customer's liability shall be limited to the transaction value or " +
				"the value defined by RBI guidelines, whichever is lower.",
		},
		{
			ID:     "upi_never_share_otp_pin",
			Source: "NPCI",
			Title:  "UPI OTP / PIN Safety Guidelines",
			RawText: "Customers must never share their UPI PIN, OTP, or full card details with " +
				"anyone, including people claiming to be from the bank, RBI, or support. " +
				"Banks and official institutions will never ask for PIN, OTP, or full passwords " +
				"over phone, SMS, email, or chat.",
		},
		{
			ID:     "digital_lending_charges_transparency",
			Source: "RBI",
			Title:  "Digital Lending - Charges and Transparency",
			RawText: "All digital lenders must clearly disclose the annual percentage rate (APR), " +
				"all fees, charges, and penalties before execution of the loan contract. " +
				"Hidden charges or undisclosed fees are not permitted under RBI digital lending guidelines.",
		},
	}
}
