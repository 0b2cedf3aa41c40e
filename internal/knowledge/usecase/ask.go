package usecase

import (
	"context"
	"strings"

	"finpal-guardian/internal/knowledge"
	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/gateway"
)

// Ask loads the corpus, summarizes every document, ranks the entries
// against the question and asks the model for a grounded answer.
func (uc *implUseCase) Ask(ctx context.Context, req knowledge.Request) (knowledge.Answer, error) {
	if strings.TrimSpace(req.Question) == "" {
		return knowledge.Answer{}, knowledge.ErrEmptyQuestion
	}
	lang := model.Language(req.Language)

	docs, err := uc.corpus.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: corpus.List: %v", logPrefixAsk, err)
		return knowledge.Answer{}, err
	}
	if len(docs) == 0 {
		return knowledge.Answer{}, knowledge.ErrEmptyCorpus
	}

	entries, err := uc.summarize(ctx, docs)
	if err != nil {
		return knowledge.Answer{}, err
	}

	top := rankEntries(req.Question, entries, topK)
	uc.l.Debugf(ctx, "%s: ranked %v", logPrefixAsk, entryIDs(top))

	return uc.answer(ctx, req.Question, lang, top), nil
}

func (uc *implUseCase) summarize(ctx context.Context, docs []knowledge.RawDocument) ([]knowledge.Entry, error) {
	entries := make([]knowledge.Entry, 0, len(docs))
	for _, doc := range docs {
		var out entryOutput
		err := uc.gw.Generate(ctx, gateway.Call{
			Name:              StageSummarize,
			SystemInstruction: promptSummarize,
			User:              summarizeInput{ID: doc.ID, Title: doc.Title, Source: doc.Source, RawText: doc.RawText},
			Temperature:       stageTemperature,
		}, &out)
		if err != nil {
			uc.l.Warnf(ctx, "%s: summarize %s: %v", logPrefixAsk, doc.ID, err)
			return nil, err
		}
		entries = append(entries, toEntry(doc, out))
	}
	return entries, nil
}

// toEntry keys the entry by the corpus id whatever the model returned.
func toEntry(doc knowledge.RawDocument, out entryOutput) knowledge.Entry {
	e := knowledge.Entry{
		ID:                doc.ID,
		Title:             strings.TrimSpace(out.Title),
		Category:          strings.TrimSpace(out.Category),
		TargetUser:        strings.TrimSpace(out.TargetUser),
		SummaryBullets:    out.SummaryBullets,
		ActionsIfAffected: out.ActionsIfAffected,
	}
	if e.Title == "" {
		e.Title = doc.Title
	}
	if e.Category == "" {
		e.Category = defaultEntryCategory
	}
	if e.TargetUser == "" {
		e.TargetUser = defaultTargetUser
	}
	if out.WhenItApplies != nil {
		e.WhenItApplies = *out.WhenItApplies
	}
	if e.ActionsIfAffected == nil {
		e.ActionsIfAffected = []string{}
	}
	return e
}

// answer never fails: a Gateway error yields the conservative fallback.
func (uc *implUseCase) answer(ctx context.Context, question, lang string, top []knowledge.Entry) knowledge.Answer {
	var out answerOutput
	err := uc.gw.Generate(ctx, gateway.Call{
		Name:              StageAnswer,
		SystemInstruction: promptAnswer,
		User:              answerInput{Question: question, Language: lang, Policies: top},
		Temperature:       stageTemperature,
	}, &out)
	if err != nil {
		uc.l.Warnf(ctx, "%s: answer stage failed, using fallback: %v", logPrefixAsk, err)
		return knowledge.Answer{
			Language:    lang,
			Answer:      fallbackAnswer,
			Steps:       append([]string(nil), fallbackSteps...),
			Disclaimers: append([]string(nil), fallbackDisclaimers...),
			SourceIDs:   entryIDs(top),
		}
	}

	ans := knowledge.Answer{
		Language:    strings.TrimSpace(out.Language),
		Answer:      out.Answer,
		Steps:       nonNil(out.Steps),
		Disclaimers: nonNil(out.Disclaimers),
		SourceIDs:   compact(out.SourceIDs),
	}
	if ans.Language == "" {
		ans.Language = lang
	}
	if len(ans.SourceIDs) == 0 {
		ans.SourceIDs = entryIDs(top)
	}
	return ans
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// compact drops blank ids.
func compact(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
