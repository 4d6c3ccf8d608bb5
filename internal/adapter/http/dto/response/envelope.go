package response

// Envelope is the success shape: {"success": true, "data": ...}.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
