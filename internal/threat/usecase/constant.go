package usecase

// Gateway stage names
const (
	StageEnrich         = "threat.enrich"
	StageExtractPattern = "threat.extract_pattern"
)

const (
	logPrefixTriage  = "internal.threat.usecase.Triage"
	logPrefixHarvest = "internal.threat.usecase.Harvest"

	stageTemperature = 0.3

	scoreMatched   = 0.9
	scoreUnmatched = 0.2

	classificationSafe = "probably safe"

	defaultHarvestQuery    = "upi scam fraud"
	defaultHarvestLanguage = "en"
	defaultHarvestPageSize = 20
)

const (
	defaultScamAction = "Do not reply, pay or share any OTP, PIN or password. Block the sender and report it to your bank or at cybercrime.gov.in (helpline 1930)."
	safeAction        = "Stay cautious. Verify the sender through official channels before sending money or sharing personal details."
	safeWarning       = "No known scam pattern found in this message."
)

var safeExplanation = []string{
	"The message did not match any scam pattern we know about.",
	"New scams appear every day, so a clean result is not a guarantee.",
	"Your bank will never ask for your OTP, UPI PIN or password.",
}

const promptEnrich = `You are a helpful financial safety educator for Indian mobile banking users.
Input JSON: {"result": <scam check result>, "text": string, "language": string, "channel": string, "url": string, "upi_id": string}.
Rewrite only the warning and explanation so an ordinary person understands them. Keep the verdict as it is.
Answer in the requested language.
Return JSON only:
{
  "short_warning": string,
  "detailed_explanation": [string],
  "what_to_do_now": string
}`

const promptExtractPattern = `You analyse news reports about financial fraud in India and describe the scam as a reusable pattern.
Input JSON: {"headline": string, "raw_text": string, "url": string}.
If the article does not describe a specific scam technique, return {"error": "no scam pattern"}.
Return JSON only:
{
  "scam_name": string,
  "category": "upi_refund|phishing_link|otp_phishing|kyc_verification|investment|lottery|other",
  "channel": "UPI|SMS|WhatsApp|Call|Website|App|Telegram|Email",
  "modus_operandi": string,
  "key_phrases": [short lower-case phrases that appear in scam messages],
  "red_flags": [string],
  "recommended_user_action": string,
  "example_message": string|null
}`
