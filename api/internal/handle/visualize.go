package handle

import (
	"net/http"

	"formula-viz/api/internal/logger"
	"formula-viz/api/internal/prompt"
)

// Visualize asks the model for chart data plus a Persian explanation and
// returns the normalized object for the chart front end.
func (h *Handle) Visualize(w http.ResponseWriter, r *http.Request) {
	var req formulaRequest
	if !h.decode(w, r, &req) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	raw, err := h.engs.Generate(ctx, req.LLMName, req.credentials(h.defaults), prompt.Visualize(req.Formula, req.Context))
	if err != nil {
		logger.FromContext(ctx).Error("visualize: generation failed", "error", err)
		writeJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.normalize(ctx, "visualize", raw))
}
