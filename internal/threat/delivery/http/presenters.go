package http

import "finpal-guardian/internal/threat"

type harvestReq struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	PageSize int    `json:"page_size" binding:"omitempty,min=1,max=100"`
}

func (r harvestReq) toInput() threat.HarvestInput {
	return threat.HarvestInput{Query: r.Query, Language: r.Language, PageSize: r.PageSize}
}

type patternsResp struct {
	Total    int              `json:"total"`
	Patterns []threat.Pattern `json:"patterns"`
}

func (h *handler) newPatternsResp(patterns []threat.Pattern) patternsResp {
	return patternsResp{Total: len(patterns), Patterns: patterns}
}
