package usecase

import (
	"context"
	"errors"
	"testing"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/document/repository"
	"finpal-guardian/internal/document/repository/sample"
	"finpal-guardian/pkg/gateway"
	"finpal-guardian/pkg/gateway/gatewaytest"
	"finpal-guardian/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	extractJSON = `{"product_type":"Personal Loan","principal_amount":"Rs 2,00,000","interest_rate":"18% p.a.","tenure_months":36,
		"other_charges":["GST on fee"],"important_clauses":[{"title":"Contact access","summary":"Lender may read contacts"}]}`
	scoreJSON   = `{"risk_score":0.82,"overall_risk_level":"HIGH","flagged_clauses":[{"title":"Contact access","summary":"Privacy risk","risk_level":"High"}],"explanation":"Steep penalties"}`
	narrateJSON = `{"plain_summary":"Expensive loan with intrusive terms.","key_numbers":["Rs 2,00,000 for 36 months"],"suggested_questions_for_bank":["Can the rate change?"]}`
)

func happyStub() *gatewaytest.Stub {
	return &gatewaytest.Stub{Responses: map[string]string{
		StageExtract: extractJSON,
		StageScore:   scoreJSON,
		StageNarrate: narrateJSON,
	}}
}

type mapStore map[string]string

func (m mapStore) Get(ctx context.Context, id string) (string, error) {
	if t, ok := m[id]; ok {
		return t, nil
	}
	return "", document.ErrDocumentNotFound
}

func TestAnalyze_LiteralText(t *testing.T) {
	stub := happyStub()
	uc := New(stub, nil, nil, log.NewNop())

	got, err := uc.Analyze(context.Background(), document.Request{
		Source: document.Source{TextContent: "Loan amount Rs 2,00,000 at 18%"},
	})
	require.NoError(t, err)

	assert.Equal(t, "en", got.Language)
	assert.Equal(t, document.ProductPersonalLoan, got.Extracted.ProductType)
	require.NotNil(t, got.Extracted.TenureMonths)
	assert.Equal(t, 36, *got.Extracted.TenureMonths)
	assert.Equal(t, document.RiskMedium, got.Extracted.ImportantClauses[0].RiskLevel)

	assert.InDelta(t, 0.82, got.Risk.RiskScore, 1e-9)
	assert.Equal(t, document.RiskHigh, got.Risk.OverallRiskLevel)
	assert.Equal(t, document.RiskHigh, got.Risk.FlaggedClauses[0].RiskLevel)

	assert.Equal(t, "Expensive loan with intrusive terms.", got.PlainSummary)
	assert.Equal(t, []string{}, got.RiskExplanation)

	// Stage order and data hand-off.
	calls := stub.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{StageExtract, StageScore, StageNarrate}, []string{calls[0].Name, calls[1].Name, calls[2].Name})
	assert.Equal(t, "Loan amount Rs 2,00,000 at 18%", calls[0].User.(extractInput).RawText)
	assert.Equal(t, document.ProductPersonalLoan, calls[1].User.(scoreInput).Extracted.ProductType)
	assert.Equal(t, document.RiskHigh, calls[2].User.(narrateInput).Risk.OverallRiskLevel)
}

func TestAnalyze_FileAndSample(t *testing.T) {
	store := repository.Chain(sample.New(), mapStore{"upload-1": "Uploaded agreement text"})

	stub := happyStub()
	uc := New(stub, store, nil, log.NewNop())

	_, err := uc.Analyze(context.Background(), document.Request{Language: "hi", Source: document.Source{FileID: "upload-1"}})
	require.NoError(t, err)
	assert.Equal(t, "Uploaded agreement text", stub.Calls()[0].User.(extractInput).RawText)
	assert.Equal(t, "hi", stub.Calls()[0].User.(extractInput).Language)

	stub.Reset()
	_, err = uc.Analyze(context.Background(), document.Request{Source: document.Source{FileID: "sample_credit_card"}})
	require.NoError(t, err)
	assert.Contains(t, stub.Calls()[0].User.(extractInput).RawText, "CREDIT CARD")
}

func TestAnalyze_ResolveErrors(t *testing.T) {
	stub := happyStub()
	uc := New(stub, mapStore{"blank": "   "}, nil, log.NewNop())

	tests := []struct {
		name string
		src  document.Source
		want error
	}{
		{"nothing", document.Source{}, document.ErrEmptyDocument},
		{"whitespace text", document.Source{TextContent: "  \n"}, document.ErrEmptyDocument},
		{"unknown file", document.Source{FileID: "missing"}, document.ErrDocumentNotFound},
		{"blank file", document.Source{FileID: "blank"}, document.ErrEmptyDocument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Analyze(context.Background(), document.Request{Source: tc.src})
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
	assert.Empty(t, stub.Calls())
}

func TestAnalyze_StageFailureAborts(t *testing.T) {
	tests := []struct {
		name      string
		failStage string
		raw       string
		wantCalls int
	}{
		{"extract error", StageExtract, `{"error":"boom"}`, 1},
		{"score out of range", StageScore, `{"risk_score":1.7,"overall_risk_level":"high"}`, 2},
		{"score missing", StageScore, `{"overall_risk_level":"high"}`, 2},
		{"narrate malformed", StageNarrate, `not json`, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := happyStub()
			stub.Responses[tc.failStage] = tc.raw
			uc := New(stub, nil, nil, log.NewNop())

			_, err := uc.Analyze(context.Background(), document.Request{Source: document.Source{TextContent: "x"}})
			require.Error(t, err)

			var gwErr *gateway.Error
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, tc.failStage, gwErr.Stage)
			assert.Len(t, stub.Calls(), tc.wantCalls)
		})
	}
}

func TestUpload(t *testing.T) {
	uc := New(happyStub(), nil, nil, log.NewNop())
	_, err := uc.Upload(context.Background(), document.UploadInput{Filename: "a.txt", Data: []byte("x")})
	assert.ErrorIs(t, err, document.ErrUploadsDisabled)
}

func TestNormalizeProductType(t *testing.T) {
	assert.Equal(t, document.ProductCarLoan, normalizeProductType(" Car Loan "))
	assert.Equal(t, document.ProductOther, normalizeProductType("mortgage"))
	assert.Equal(t, document.ProductOther, normalizeProductType(""))
}
