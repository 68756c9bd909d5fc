package handle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"formula-viz/api/internal/llm"
	"formula-viz/api/internal/llmjson"
	"formula-viz/api/internal/logger"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

type Handle struct {
	engs       *llm.Engines
	normalizer *llmjson.Normalizer
	defaults   llm.Credentials
	timeout    time.Duration
	validate   *validator.Validate
}

type Option func(*Handle)

// WithDefaultCredentials sets the key/model used when a request omits them.
func WithDefaultCredentials(c llm.Credentials) Option {
	return func(h *Handle) { h.defaults = c }
}

func WithTimeout(d time.Duration) Option {
	return func(h *Handle) {
		if d > 0 {
			h.timeout = d
		}
	}
}

func WithNormalizer(n *llmjson.Normalizer) Option {
	return func(h *Handle) {
		if n != nil {
			h.normalizer = n
		}
	}
}

func New(engs *llm.Engines, opts ...Option) *Handle {
	h := &Handle{
		engs:       engs,
		normalizer: llmjson.New(),
		timeout:    180 * time.Second,
		validate:   validator.New(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// credentialRequest — общая часть всех запросов: ключ и модель клиента.
type credentialRequest struct {
	APIKey    string `json:"api_key"`
	ModelName string `json:"model_name"`
	LLMName   string `json:"llm_name" validate:"omitempty,oneof=gemini google"`
}

func (c credentialRequest) credentials(def llm.Credentials) llm.Credentials {
	return llm.Credentials{APIKey: c.APIKey, Model: c.ModelName}.WithDefaults(def)
}

type formulaRequest struct {
	credentialRequest
	Formula string `json:"formula" validate:"max=2000"`
	Context string `json:"context" validate:"max=4000"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// decode читает JSON-тело и валидирует его; при ошибке ответ уже записан.
func (h *Handle) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationMessage(err)})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request: " + err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// requestContext применяет дедлайн из X-Request-Timeout или ?timeoutSec.
func (h *Handle) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	deadline := h.timeout
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return context.WithTimeout(r.Context(), deadline)
}

// normalize turns model output into the response body and logs unreadable output.
func (h *Handle) normalize(ctx context.Context, endpoint, raw string) llmjson.Result {
	res := h.normalizer.Normalize(raw)
	if !res.OK() {
		logger.FromContext(ctx).Warn("failed to parse model output",
			"endpoint", endpoint,
			"error", res.RawExcerpt(),
			"raw", llmjson.Excerpt(raw, 500),
		)
	}
	return res
}
