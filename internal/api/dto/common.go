package dto

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// DetailResponse carries the deliberately generic message returned on
// authentication failure.
type DetailResponse struct {
	Detail string `json:"detail"`
}
