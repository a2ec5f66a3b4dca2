package model

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Seed     int64  `json:"seed"`
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Data     string `json:"data"`
	DataType string `json:"data_type"`
}

// GenerateResponse summarizes a generated composition.
type GenerateResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Composer string  `json:"composer"`
	Tempo    float64 `json:"tempo"`
	Parts    int     `json:"parts"`
	Download string  `json:"download"`
}

// ErrorResponse carries a request failure.
type ErrorResponse struct {
	Error string `json:"detail"`
}
