package handle

import (
	"net/http"

	"formula-viz/api/internal/logger"
	"formula-viz/api/internal/prompt"
)

type analyzeError struct {
	IsGraphable bool   `json:"is_graphable"`
	Reason      string `json:"reason"`
}

// Analyze спрашивает модель, можно ли построить график формулы.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	var req formulaRequest
	if !h.decode(w, r, &req) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	raw, err := h.engs.Generate(ctx, req.LLMName, req.credentials(h.defaults), prompt.Analyze(req.Formula, req.Context))
	if err != nil {
		logger.FromContext(ctx).Error("analyze: generation failed", "error", err)
		writeJSON(w, http.StatusOK, analyzeError{IsGraphable: false, Reason: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.normalize(ctx, "analyze", raw))
}
