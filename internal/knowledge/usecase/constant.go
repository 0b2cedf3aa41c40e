package usecase

// Gateway stage names
const (
	StageSummarize = "knowledge.summarize"
	StageAnswer    = "knowledge.answer"
)

const (
	logPrefixAsk = "internal.knowledge.usecase.Ask"

	stageTemperature = 0.2

	// topK is the number of entries passed to the answer stage.
	topK = 3

	defaultEntryCategory = "general"
	defaultTargetUser    = "general_public"
)

const promptSummarize = `You turn Indian banking and payments regulations (RBI, NPCI, SEBI) into short FAQ entries for ordinary customers.
Input JSON: {"id": string, "title": string, "source": string, "raw_text": string}.
Use simple words. Do not add rules that are not in the text.
Return JSON only:
{
  "id": string,
  "title": string,
  "category": "fraud_reporting|digital_payments_safety|lending|investments|general",
  "target_user": "general_public|borrower|investor|merchant",
  "summary_bullets": [string],
  "when_it_applies": string|null,
  "actions_if_affected": [string]
}`

const promptAnswer = `You answer questions about Indian financial regulations using only the policies provided.
Input JSON: {"question": string, "language": string, "policies": [FAQ entries]}.
Answer in the requested language. If the policies do not cover the question, say so and point the user to official sources.
Return JSON only:
{
  "language": string,
  "answer": string,
  "steps": [string],
  "disclaimers": [string],
  "source_ids": [ids of the policies you used]
}`

// Conservative answer used when the answer stage fails.
const fallbackAnswer = "I'm sorry, I couldn't generate a detailed answer right now. " +
	"However, you should immediately contact your bank's official customer support " +
	"and verify the latest RBI/SEBI guidelines on their official website."

var (
	fallbackSteps = []string{
		"Contact your bank through the official app, website, or branch.",
		"Do not share OTP, PIN, or passwords with anyone on calls or messages.",
		"Check RBI or SEBI official website for updated rules.",
	}
	fallbackDisclaimers = []string{
		"This is not legal advice.",
		"Financial regulations can change; always verify with official sources.",
	}
)
