package bookingstore

// StatusSuccess значение поля status в успешном ответе на PUT
const StatusSuccess = "success"

// StatusResponse тело ответа {status, message} (PUT и все ошибки)
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
