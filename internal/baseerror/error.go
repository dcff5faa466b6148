package baseerror

// Error is an error class. Classes may form a hierarchy with New, and a class
// may be attached to an underlying cause with Wrap, in which case errors.Is
// matches both the class (and its ancestors) and the cause.
type Error struct {
	parent *Error
	cause  error
	msg    string
}

func New(msg string) *Error {
	return &Error{msg: msg}
}

// New creates a subclass of err.
func (err *Error) New(msg string) *Error {
	return &Error{
		parent: err,
		msg:    msg,
	}
}

// Wrap returns an instance of the class err caused by cause.
func (err *Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}

	return &Error{
		parent: err,
		cause:  cause,
		msg:    err.msg,
	}
}

func (err *Error) Error() string {
	if err.cause != nil {
		return err.msg + ": " + err.cause.Error()
	}

	return err.msg
}

func (err *Error) Unwrap() []error {
	errs := make([]error, 0, 2)

	if err.parent != nil {
		errs = append(errs, err.parent)
	}

	if err.cause != nil {
		errs = append(errs, err.cause)
	}

	return errs
}
