package server

import "encoding/json"

// Method names exposed at the boundary.
const (
	MethodAnalyzeText       = "analyze_text"
	MethodEnhanceText       = "enhance_text"
	MethodCustomEnhanceText = "custom_enhance_text"
)

// Request is one newline-delimited JSON request. A missing ID is
// assigned server-side so every response can be correlated in logs.
type Request struct {
	ID     string          `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response carries either a result or an error, never both.
type Response struct {
	ID     string     `json:"id"`
	Result string     `json:"result,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// analyzeParams carries the analyze_text arguments. Text is a pointer
// so an absent field is distinguishable from an empty string; a
// non-string value fails JSON decoding and is rejected as invalid
// input rather than silently defaulted.
type analyzeParams struct {
	Text *string `json:"text"`
}

// enhanceParams covers enhance_text and custom_enhance_text. The five
// technique flags are only honored by the custom method.
type enhanceParams struct {
	Text                        *string `json:"text"`
	ExpansionTarget             *int    `json:"expansionTarget" validate:"omitempty,min=100,max=500"`
	EnableGoldenShadow          *bool   `json:"enableGoldenShadow"`
	EnableEnvironmental         *bool   `json:"enableEnvironmental"`
	EnableActionScene           *bool   `json:"enableActionScene"`
	EnableProseSmoother         *bool   `json:"enableProseSmoother"`
	EnableRepetitionElimination *bool   `json:"enableRepetitionElimination"`
}
