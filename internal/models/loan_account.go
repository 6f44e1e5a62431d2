package models

// LoanAccount is one installment record of the loan directory. Records are
// read-only snapshots; a new fetch replaces the whole directory.
type LoanAccount struct {
	AccountNumber       string  `json:"account_number" validate:"required"`
	IssueDate           string  `json:"issue_date" validate:"required"`
	InterestRatePercent Decimal `json:"interest_rate" validate:"decimalGreaterThanOrEqual=0"`
	TenureMonths        int     `json:"tenure" validate:"gt=0"`
	EMIDue              Decimal `json:"emi_due" validate:"decimalGreaterThanOrEqual=0"`
}

// LoanAccountPayload is the wire shape of a /customers element. Pointer fields
// let the decoder tell a missing key apart from a zero value.
type LoanAccountPayload struct {
	AccountNumber *string  `json:"account_number"`
	IssueDate     *string  `json:"issue_date"`
	InterestRate  *Decimal `json:"interest_rate"`
	Tenure        *int     `json:"tenure"`
	EMIDue        *Decimal `json:"emi_due"`
}

// MissingFields lists the wire names of absent or null keys.
func (p LoanAccountPayload) MissingFields() []string {
	var missing []string
	if p.AccountNumber == nil {
		missing = append(missing, "account_number")
	}
	if p.IssueDate == nil {
		missing = append(missing, "issue_date")
	}
	if p.InterestRate == nil {
		missing = append(missing, "interest_rate")
	}
	if p.Tenure == nil {
		missing = append(missing, "tenure")
	}
	if p.EMIDue == nil {
		missing = append(missing, "emi_due")
	}
	return missing
}

// ToLoanAccount must only be called once MissingFields is empty.
func (p LoanAccountPayload) ToLoanAccount() LoanAccount {
	return LoanAccount{
		AccountNumber:       *p.AccountNumber,
		IssueDate:           *p.IssueDate,
		InterestRatePercent: *p.InterestRate,
		TenureMonths:        *p.Tenure,
		EMIDue:              *p.EMIDue,
	}
}
