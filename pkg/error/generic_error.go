package error

// GenericError is implemented by error types that know their HTTP status and
// machine-readable code. The REST layer and the recovery middleware use it to
// translate failures into responses without leaking internals.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
