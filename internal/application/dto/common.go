package dto

// ErrorResponse cuerpo de error HTTP.
// Code discrimina el tipo de falla para la UI; Message es apto para mostrar al usuario
// (las fallas de almacenamiento devuelven un mensaje genérico, el detalle va al log).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
