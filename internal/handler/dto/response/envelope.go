package response

// DataResponse is the success envelope shared by every JSON route except the
// room catalogue, which is returned bare.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) DataResponse {
	return DataResponse{Success: true, Data: data}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
