package llmjson

import "encoding/json"

// FailureReason is the user-facing message returned when the model output
// cannot be read as JSON.
const FailureReason = "خطا در خواندن پاسخ هوش مصنوعی. لطفاً دوباره تلاش کنید."

// Result is either a parsed payload or a failure description. The zero value
// is a failure with an empty reason.
type Result struct {
	ok      bool
	payload any
	reason  string
	excerpt string
}

func Success(payload any) Result {
	return Result{ok: true, payload: payload}
}

func Failure(reason, rawExcerpt string) Result {
	return Result{reason: reason, excerpt: rawExcerpt}
}

func (r Result) OK() bool           { return r.ok }
func (r Result) Payload() any       { return r.payload }
func (r Result) Reason() string     { return r.reason }
func (r Result) RawExcerpt() string { return r.excerpt }

// failureBody is the wire shape the chart front end checks for (`error` flag).
type failureBody struct {
	Error   bool   `json:"error"`
	Reason  string `json:"reason"`
	RawText string `json:"raw_text"`
}

// MarshalJSON writes the payload as-is on success.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(r.payload)
	}
	return json.Marshal(failureBody{Error: true, Reason: r.reason, RawText: r.excerpt})
}
