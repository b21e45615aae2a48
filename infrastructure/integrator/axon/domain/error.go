package axondomain

// ErrorResponse representa a estrutura de erro da API da Axon
type ErrorResponse struct {
	Error string `json:"error"`
}
