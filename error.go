package typewriter

type ErrorCode string

const (
	ErrInvalidArgument ErrorCode = "InvalidArgument"
	MsgNegativeCount   string    = "%s: count must not be negative, got %d"
	MsgNegativeDelay   string    = "%s: delay must not be negative, got %s"

	ErrAlreadyRunning ErrorCode = "AlreadyRunning"
	MsgAlreadyRunning string    = "typewriter is already running (state %q)"

	ErrInvalidScript ErrorCode = "InvalidScript"
)

func (code ErrorCode) Error() string {
	return string(code)
}

func (code ErrorCode) WithMessage(msg string) *MessageError {
	return &MessageError{Code: code, Message: msg}
}

type MessageError struct {
	Code    ErrorCode
	Message string
}

func (me *MessageError) Error() string {
	return me.Code.Error() + ": " + me.Message
}

func (me *MessageError) Unwrap() error {
	return me.Code
}
