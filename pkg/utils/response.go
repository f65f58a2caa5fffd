package utils

// ResponseData is the JSON envelope for the admin-facing routes. Status is
// only used to set the HTTP code and is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics with err (or the override message) so the recovery
// middleware can translate it into a response.
func PanicIfNeeded(err any, message ...string) {
	if err != nil {
		if len(message) > 0 && message[0] != "" {
			panic(message[0])
		}
		panic(err)
	}
}
