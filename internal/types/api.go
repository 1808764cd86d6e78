// internal/types/api.go
//
// Generic API envelopes and pagination.
package types

// APIResponse is the envelope every endpoint answers with.  Data is a
// tagged JSON variant, so handlers stay type-safe without resorting to
// bare `any` fields.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *Value `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK(message string, data Value) APIResponse {
	return APIResponse{Success: true, Message: message, Data: &data}
}

// Fail wraps an error into the envelope.  APIErrors keep their message;
// anything else is reported verbatim.
func Fail(err error) APIResponse {
	if err == nil {
		return APIResponse{Success: false, Error: "unknown error"}
	}
	return APIResponse{Success: false, Error: err.Error()}
}

// PaginationParams bound list endpoints: page is 1-based and page_size is
// capped at 100 items.
type PaginationParams struct {
	Page     int  `json:"page" validate:"gte=1"`
	PageSize int  `json:"page_size" validate:"gte=1,lte=100"`
	Total    *int `json:"total,omitempty"`
}

// NewPaginationParams returns the defaults: first page, ten items.
func NewPaginationParams() PaginationParams {
	return PaginationParams{Page: 1, PageSize: 10}
}

// Validate checks the pagination bounds.
func (p *PaginationParams) Validate() error { return Validate(p) }

// PaginatedResponse is an APIResponse plus the pagination echo.
type PaginatedResponse struct {
	APIResponse
	Pagination PaginationParams `json:"pagination"`
}
