package response

// JSONResponse is the envelope used by middleware-level responses where the
// fres helpers are not a fit (auth failures, panics).
type JSONResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) JSONResponse {
	return JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Success(message string, data any) JSONResponse {
	return JSONResponse{
		Code:    "OK",
		Message: message,
		Data:    data,
	}
}
