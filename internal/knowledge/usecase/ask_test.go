package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/knowledge/repository/memory"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/gateway/gatewaytest"
	"finpal-guardian/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summaries keyed by document id, in the shape the summarize stage returns.
var summaries = map[string]string{
	"rbi_upi_fraud_reporting": `{"id":"ignored","title":"Report UPI fraud fast","category":"fraud_reporting",
		"summary_bullets":["Report an unauthorised UPI transaction within 3 working days for zero liability"],
		"when_it_applies":"Money left your account without your approval","actions_if_affected":["Call your bank","Report on the bank app"]}`,
	"upi_never_share_otp_pin": `{"title":"Never share OTP or PIN","category":"digital_payments_safety",
		"summary_bullets":["Banks never ask for your OTP or PIN"],"actions_if_affected":["Hang up","Block the caller"]}`,
	"digital_lending_charges_transparency": `{"title":"Loan charges","summary_bullets":["Lenders must show APR and all fees before you sign"],
		"when_it_applies":null}`,
}

func scripted(answer string, answerErr error) *gatewaytest.Stub {
	return &gatewaytest.Stub{Func: func(call gateway.Call) (string, error) {
		switch call.Name {
		case StageSummarize:
			in := call.User.(summarizeInput)
			raw, ok := summaries[in.ID]
			if !ok {
				return "", fmt.Errorf("unknown doc %s", in.ID)
			}
			return raw, nil
		case StageAnswer:
			if answerErr != nil {
				return "", answerErr
			}
			return answer, nil
		}
		return "", fmt.Errorf("unexpected stage %s", call.Name)
	}}
}

func newUC(stub *gatewaytest.Stub) *implUseCase {
	return New(stub, memory.New(memory.DefaultDocuments()), log.NewNop())
}

func TestAsk_Success(t *testing.T) {
	stub := scripted(`{"language":"en","answer":"Report it within three working days.","steps":["Call the bank"],
		"disclaimers":["Not legal advice"],"source_ids":["rbi_upi_fraud_reporting"]}`, nil)
	uc := newUC(stub)

	got, err := uc.Ask(context.Background(), knowledge.Request{Question: "How fast must I report UPI fraud?"})
	require.NoError(t, err)

	assert.Equal(t, "Report it within three working days.", got.Answer)
	assert.Equal(t, []string{"rbi_upi_fraud_reporting"}, got.SourceIDs)
	assert.Equal(t, 3, stub.CallCount(StageSummarize))
	assert.Equal(t, 1, stub.CallCount(StageAnswer))
}

func TestAsk_AnswerPayloadCarriesRankedEntries(t *testing.T) {
	stub := scripted(`{"answer":"ok"}`, nil)
	uc := newUC(stub)

	_, err := uc.Ask(context.Background(), knowledge.Request{Question: "bank asked for my OTP", Language: "hi"})
	require.NoError(t, err)

	var answerCall gateway.Call
	for _, c := range stub.Calls() {
		if c.Name == StageAnswer {
			answerCall = c
		}
	}
	in := answerCall.User.(answerInput)
	assert.Equal(t, "hi", in.Language)
	require.NotEmpty(t, in.Policies)
	assert.Equal(t, "upi_never_share_otp_pin", in.Policies[0].ID)
	assert.Equal(t, "general_public", in.Policies[0].TargetUser)
}

func TestAsk_BackfillsSourceIDs(t *testing.T) {
	uc := newUC(scripted(`{"answer":"Lenders must disclose APR.","steps":[],"source_ids":[]}`, nil))

	got, err := uc.Ask(context.Background(), knowledge.Request{Question: "What fees must lenders show before the loan?"})
	require.NoError(t, err)

	assert.Equal(t, "en", got.Language)
	assert.NotEmpty(t, got.SourceIDs)
	assert.Contains(t, got.SourceIDs, "digital_lending_charges_transparency")
	assert.NotNil(t, got.Disclaimers)
}

func TestAsk_AnswerFallback(t *testing.T) {
	tests := map[string]*gatewaytest.Stub{
		"malformed":   scripted(`not json at all`, nil),
		"model error": scripted(`{"error":"quota exceeded"}`, nil),
		"missing":     scripted(`{"steps":["x"]}`, nil),
		"transport":   scripted("", errors.New("connection reset")),
	}

	for name, stub := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := newUC(stub).Ask(context.Background(), knowledge.Request{Question: "UPI refund", Language: "ta"})
			require.NoError(t, err)

			assert.Equal(t, fallbackAnswer, got.Answer)
			assert.Equal(t, fallbackSteps, got.Steps)
			assert.Equal(t, fallbackDisclaimers, got.Disclaimers)
			assert.Equal(t, "ta", got.Language)
			assert.NotEmpty(t, got.SourceIDs)
		})
	}
}

func TestAsk_SummarizeFailureAborts(t *testing.T) {
	stub := &gatewaytest.Stub{
		Errors:    map[string]error{StageSummarize: errors.New("upstream down")},
		Responses: map[string]string{StageAnswer: `{"answer":"unused"}`},
	}

	_, err := newUC(stub).Ask(context.Background(), knowledge.Request{Question: "anything"})

	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, StageSummarize, gwErr.Stage)
	assert.Equal(t, 0, stub.CallCount(StageAnswer))
}

func TestAsk_InputErrors(t *testing.T) {
	stub := scripted(`{"answer":"x"}`, nil)

	_, err := newUC(stub).Ask(context.Background(), knowledge.Request{Question: "   "})
	assert.ErrorIs(t, err, knowledge.ErrEmptyQuestion)

	empty := New(stub, memory.New(nil), log.NewNop())
	_, err = empty.Ask(context.Background(), knowledge.Request{Question: "upi"})
	assert.ErrorIs(t, err, knowledge.ErrEmptyCorpus)

	assert.Empty(t, stub.Calls())
}

func TestToEntry_ForcesCorpusID(t *testing.T) {
	var out entryOutput
	require.NoError(t, json.Unmarshal([]byte(summaries["rbi_upi_fraud_reporting"]), &out))

	e := toEntry(knowledge.RawDocument{ID: "rbi_upi_fraud_reporting", Title: "UPI Fraud Reporting Timelines"}, out)
	assert.Equal(t, "rbi_upi_fraud_reporting", e.ID)
	assert.Equal(t, "Report UPI fraud fast", e.Title)

	e = toEntry(knowledge.RawDocument{ID: "d", Title: "Doc title"}, entryOutput{SummaryBullets: []string{"b"}})
	assert.Equal(t, "Doc title", e.Title)
	assert.Equal(t, "general", e.Category)
	assert.Equal(t, "general_public", e.TargetUser)
	assert.NotNil(t, e.ActionsIfAffected)
}
