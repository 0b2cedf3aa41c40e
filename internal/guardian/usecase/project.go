package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"finpal-guardian/internal/document"
	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/model"
	"finpal-guardian/internal/threat"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

type documentProjection struct {
	Text   string `json:"text" validate:"required_without=FileID"`
	FileID string `json:"file_id" validate:"omitempty,max=255"`
}

type knowledgeProjection struct {
	Question string `json:"text" validate:"required"`
}

type threatProjection struct {
	Text    string `json:"text" validate:"required"`
	URL     string `json:"metadata.url" validate:"omitempty,url"`
	UPIID   string `json:"metadata.upi_id" validate:"omitempty,max=255"`
	Channel string `json:"metadata.channel" validate:"omitempty,max=64"`
}

func projectDocument(req guardian.InboundRequest) (document.Request, error) {
	p := documentProjection{Text: strings.TrimSpace(req.Text), FileID: strings.TrimSpace(req.FileID)}
	if err := check(model.CategoryDocumentRisk, p); err != nil {
		return document.Request{}, err
	}
	return document.Request{
		Language: model.Language(req.Language),
		Source:   document.Source{FileID: p.FileID, TextContent: req.Text},
	}, nil
}

func projectKnowledge(req guardian.InboundRequest) (knowledge.Request, error) {
	p := knowledgeProjection{Question: strings.TrimSpace(req.Text)}
	if err := check(model.CategoryKnowledgeQA, p); err != nil {
		return knowledge.Request{}, err
	}
	return knowledge.Request{Question: p.Question, Language: model.Language(req.Language)}, nil
}

func projectThreat(req guardian.InboundRequest) (threat.Request, error) {
	p := threatProjection{Text: strings.TrimSpace(req.Text)}

	fields := []struct {
		key string
		dst *string
	}{{metaURL, &p.URL}, {metaUPIID, &p.UPIID}, {metaChannel, &p.Channel}}
	for _, f := range fields {
		v, err := metaString(req.Metadata, f.key)
		if err != nil {
			return threat.Request{}, &guardian.ValidationError{Category: model.CategoryThreatTriage, Field: "metadata." + f.key, Reason: err.Error()}
		}
		*f.dst = v
	}
	if err := check(model.CategoryThreatTriage, p); err != nil {
		return threat.Request{}, err
	}

	return threat.Request{
		Text:     req.Text,
		Language: model.Language(req.Language),
		URL:      p.URL,
		UPIID:    p.UPIID,
		Channel:  p.Channel,
	}, nil
}

// metaString reads an optional string value. Missing and null values are empty.
func metaString(md map[string]any, key string) (string, error) {
	v, ok := md[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("must be a string, got %T", v)
	}
	return strings.TrimSpace(s), nil
}

// check turns the first validator failure into a ValidationError.
func check(category model.Category, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &guardian.ValidationError{Category: category, Field: fe.Field(), Reason: describe(fe)}
	}
	return &guardian.ValidationError{Category: category, Reason: err.Error()}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return "failed " + fe.Tag()
}
