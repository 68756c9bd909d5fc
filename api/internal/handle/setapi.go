package handle

import (
	"net/http"

	"formula-viz/api/internal/logger"
	"formula-viz/api/internal/prompt"
)

type setAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SetAPI checks that the supplied key and model answer a trivial prompt.
// Nothing is stored: the client sends its key with every request.
func (h *Handle) SetAPI(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if !h.decode(w, r, &req) {
		return
	}
	ctx, cancel := h.requestContext(r)
	defer cancel()

	cred := req.credentials(h.defaults)
	if _, err := h.engs.Generate(ctx, req.LLMName, cred, prompt.Ping); err != nil {
		logger.FromContext(ctx).Info("credential check failed", "model", cred.Model, "error", err)
		writeJSON(w, http.StatusOK, setAPIResponse{Status: "error", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, setAPIResponse{Status: "success"})
}
