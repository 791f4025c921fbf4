package response

// StatusCode defines HTTP status codes as enums
type StatusCode int

const (
	StatusOK      StatusCode = 200
	StatusCreated StatusCode = 201

	StatusBadRequest StatusCode = 400
	StatusNotFound   StatusCode = 404

	StatusInternalServerError StatusCode = 500
)

var reasonPhrases = map[StatusCode]string{
	StatusOK:      "OK",
	StatusCreated: "Created",

	StatusBadRequest: "Bad Request",
	StatusNotFound:   "Not Found",

	StatusInternalServerError: "Internal Server Error",
}

// GetStatusReason returns the reason phrase for the given status code.
func GetStatusReason(s StatusCode) string {
	return reasonPhrases[s]
}
