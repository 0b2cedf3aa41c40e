package memory

import "finpal-guardian/internal/threat"

// DefaultPatterns is the built-in pattern set, in both stored shapes.
func DefaultPatterns() []threat.RawPattern {
	return []threat.RawPattern{
		{
			ID:            "upi_refund_collect",
			ScamName:      "Fake UPI refund request",
			Category:      threat.CategoryUPIRefund,
			Channel:       "UPI",
			ModusOperandi: "The fraudster claims a refund or cashback is due and sends a UPI collect request. Approving it with your PIN debits your account instead of crediting it.",
			KeyPhrases:    []string{"refund", "cashback", "approve the request", "collect request", "enter your upi pin to receive"},
			RedFlags: []string{
				"You never need a UPI PIN to receive money",
				"Unexpected refund or cashback you did not ask for",
			},
			RecommendedUserAction: "Decline the collect request and report the UPI ID in your payment app.",
			ExampleMessage:        "Your refund of Rs 2,499 is pending. Approve the request and enter your UPI PIN to receive it.",
		},
		{
			ID:            "otp_sharing",
			ScamName:      "OTP sharing request",
			Category:      threat.CategoryOTPPhishing,
			Channel:       "Call",
			ModusOperandi: "A caller poses as bank staff and asks for the OTP sent to your phone to 'verify' or 'unblock' your account, then uses it to take over the account.",
			KeyPhrases:    []string{"share the otp", "tell me the otp", "otp sent to your", "share otp", "one time password"},
			RedFlags: []string{
				"Banks never ask for OTP, PIN or passwords",
				"Pressure to act immediately",
			},
			RecommendedUserAction: "Do not share the OTP. Hang up and call the number on the back of your card.",
			ExampleMessage:        "Sir, I am calling from your bank. Please share the OTP sent to your mobile to stop the blocking of your card.",
		},
		{
			ID:            "kyc_update_link",
			ScamName:      "KYC update phishing",
			Category:      threat.CategoryKYCVerification,
			Channel:       "SMS",
			ModusOperandi: "An SMS warns that your account or wallet will be blocked unless you update KYC through a link that leads to a fake bank page.",
			KeyPhrases:    []string{"kyc", "account will be blocked", "account will be suspended", "update your pan"},
			RedFlags: []string{
				"Threat of account suspension",
				"Link that is not the bank's official domain",
			},
			RecommendedUserAction: "Do not click the link. Update KYC only in the official app or at a branch.",
			ExampleMessage:        "Dear customer your SBI account will be blocked today. Update KYC now: http://sbi-kyc-update.co",
		},
		{
			ID:            "lottery_prize",
			ScamName:      "Lottery or prize win",
			Category:      threat.CategoryLottery,
			Channel:       "WhatsApp",
			ModusOperandi: "You are told you won a lottery, lucky draw or gift, but must pay a processing fee or tax first to release it.",
			KeyPhrases:    []string{"lottery", "lucky draw", "you have won", "prize money", "kbc"},
			RedFlags: []string{
				"Prize from a contest you never entered",
				"Fee required to release winnings",
			},
			RecommendedUserAction: "Ignore the message and block the sender. Real prizes never ask for fees.",
		},
		{
			ID:            "investment_doubling",
			ScamName:      "Guaranteed return investment",
			Category:      threat.CategoryInvestment,
			Channel:       "Telegram",
			ModusOperandi: "Groups promise guaranteed daily or doubled returns on crypto, stock tips or task-based jobs, show small early payouts, then block withdrawals.",
			KeyPhrases:    []string{"double your money", "guaranteed return", "daily profit", "part time job", "task based"},
			RedFlags: []string{
				"Guaranteed high returns",
				"Pay first to unlock earnings",
			},
			RecommendedUserAction: "Do not invest. Check SEBI registration of any adviser and report the group at cybercrime.gov.in.",
		},
		{
			Name:        "Electricity bill disconnection",
			Description: "A message says power will be cut tonight unless you call an unknown number and pay the pending bill.",
		},
		{
			Name:        "Remote access app",
			Description: "A support agent asks you to install AnyDesk or TeamViewer to fix a payment issue and then watches your screen while you log in.",
			TriggerPhrases: []string{"anydesk", "teamviewer", "quicksupport", "screen share"},
		},
	}
}
