package errors

// ErrorCode identifies the kind of application error
type ErrorCode int32

const (
	ErrorCode_HTTP_OK             ErrorCode = 0
	ErrorCode_INTERNAL            ErrorCode = 1
	ErrorCode_INVALID_PAYLOAD     ErrorCode = 2
	ErrorCode_RECORD_NOT_FOUND    ErrorCode = 3
	ErrorCode_AMBIGUOUS_RECORD    ErrorCode = 4
	ErrorCode_UPDATE_FAILED       ErrorCode = 5
	ErrorCode_NOTIFICATION_FAILED ErrorCode = 6
	ErrorCode_EXTERNAL_API_FAILED ErrorCode = 7
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:             "HTTP_OK",
	ErrorCode_INTERNAL:            "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:     "INVALID_PAYLOAD",
	ErrorCode_RECORD_NOT_FOUND:    "RECORD_NOT_FOUND",
	ErrorCode_AMBIGUOUS_RECORD:    "AMBIGUOUS_RECORD",
	ErrorCode_UPDATE_FAILED:       "UPDATE_FAILED",
	ErrorCode_NOTIFICATION_FAILED: "NOTIFICATION_FAILED",
	ErrorCode_EXTERNAL_API_FAILED: "EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
