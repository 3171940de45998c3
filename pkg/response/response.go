package response

// JSON envelopes used by middleware and a few non-CRUD endpoints.

type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type SuccessBody struct {
	Ok   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

func Error(code, message string, details any) ErrorBody {
	if message != "" && code != "" {
		return ErrorBody{Error: code + ": " + message, Details: details}
	}
	if message == "" {
		return ErrorBody{Error: code, Details: details}
	}
	return ErrorBody{Error: message, Details: details}
}

func Success(data any) SuccessBody {
	return SuccessBody{Ok: true, Data: data}
}
