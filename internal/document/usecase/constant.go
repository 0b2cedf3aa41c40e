package usecase

// Gateway stage names
const (
	StageExtract = "document.extract"
	StageScore   = "document.score"
	StageNarrate = "document.narrate"
)

const (
	logPrefixAnalyze = "internal.document.usecase.Analyze"
	logPrefixUpload  = "internal.document.usecase.Upload"

	stageTemperature = 0.2
)

const promptExtract = `You read loan agreements, credit card terms and insurance policies for Indian retail customers.
Input JSON: {"raw_text": string, "language": string}.
Extract the fields below. Keep amounts and rates as they appear in the text. Use null for anything not stated.
Return JSON only:
{
  "product_type": "home_loan|bike_loan|personal_loan|car_loan|credit_card|health_insurance|other",
  "principal_amount": string|null,
  "interest_rate": string|null,
  "tenure_months": integer|null,
  "processing_fee": string|null,
  "prepayment_charges": string|null,
  "late_payment_penalty": string|null,
  "other_charges": [string],
  "important_clauses": [{"title": string, "summary": string, "risk_level": "low|medium|high", "raw_text_snippet": string|null}]
}`

const promptScore = `You assess how risky a financial product is for an ordinary borrower.
Input JSON: {"extracted": <structured loan fields>, "language": string}.
Consider interest level, hidden or high fees, penal charges, unilateral rate changes, data access and assignment clauses.
Return JSON only:
{
  "risk_score": number between 0 and 1,
  "overall_risk_level": "low|medium|high",
  "flagged_clauses": [{"title": string, "summary": string, "risk_level": "low|medium|high", "raw_text_snippet": string|null}],
  "explanation": string
}`

const promptNarrate = `You explain loan and insurance documents to first-time borrowers in simple words.
Input JSON: {"extracted": <fields>, "risk": <risk assessment>, "language": string}.
Write in the requested language. Do not invent numbers that are not in the input.
Return JSON only:
{
  "plain_summary": string,
  "key_numbers": [string],
  "risk_explanation": [string],
  "suggested_questions_for_bank": [string]
}`
