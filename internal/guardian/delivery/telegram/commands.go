package telegram

import (
	"strings"

	"finpal-guardian/internal/model"
)

const (
	cmdStart  = "/start"
	cmdHelp   = "/help"
	cmdScam   = "/scam"
	cmdLoan   = "/loan"
	cmdPolicy = "/policy"
)

var hintCommands = map[string]model.Category{
	cmdScam:   model.CategoryThreatTriage,
	cmdLoan:   model.CategoryDocumentRisk,
	cmdPolicy: model.CategoryKnowledgeQA,
}

const textWelcome = `👋 Welcome to FinPal Guardian!

Send or forward me any message and I will tell you:
• 🚨 whether it looks like a scam
• 📄 what a loan or card agreement really costs
• 📚 what RBI/NPCI rules say about your problem

Type /help to see the commands.`

const textHelp = `How to use FinPal Guardian:

/scam <message> - check a suspicious SMS, call script or link
/loan <agreement text> - explain a loan document (or /loan sample_personal_loan)
/policy <question> - ask about banking rules

Any other message or forward is classified automatically.`

// parseCommand splits "/cmd@bot rest" into the command and the rest.
// Text without a leading slash returns an empty command.
func parseCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	cmd, rest, _ := strings.Cut(text, " ")
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func usage(cmd string) string {
	switch cmd {
	case cmdScam:
		return "Send the suspicious message after the command, e.g. /scam Your KYC expires today, click http://..."
	case cmdLoan:
		return "Paste the agreement text after the command, or try /loan sample_personal_loan"
	default:
		return "Ask your question after the command, e.g. /policy How fast must I report UPI fraud?"
	}
}
