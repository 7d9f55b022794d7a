package domain

// Result es la forma uniforme que devuelven las operaciones de sesion:
// nunca se propaga un error, se informa con Success=false y un mensaje legible.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// Err es la causa del fallo; no viaja en JSON.
	Err error `json:"-"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// FailErr es Fail conservando la causa para quien necesite distinguirla (p.ej. el status HTTP).
func FailErr[T any](msg string, err error) Result[T] {
	return Result[T]{Success: false, Error: msg, Err: err}
}
