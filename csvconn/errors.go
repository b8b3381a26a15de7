package csvconn

import (
	"fmt"
	"golang.org/x/xerrors"
)

/*
Kind is a class of the loading failure
*/
type Kind int

const (
	MissingParameter Kind = iota + 1
	BadParameter
	FileNotFound
	LabelColumnNotFound
	IdColumnNotFound
	// RowWidthMismatch also fails blank lines when the header has more than one column
	RowWidthMismatch
	ReadFailed
)

func (k Kind) String() string {
	switch k {
	case MissingParameter:
		return "MissingParameter"
	case BadParameter:
		return "BadParameter"
	case FileNotFound:
		return "FileNotFound"
	case LabelColumnNotFound:
		return "LabelColumnNotFound"
	case IdColumnNotFound:
		return "IdColumnNotFound"
	case RowWidthMismatch:
		return "RowWidthMismatch"
	case ReadFailed:
		return "ReadFailed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
Error is a loading failure. Subject is the parameter, file or column the failure is about.
*/
type Error struct {
	Kind    Kind
	Subject string
	Err     error
	frame   xerrors.Frame
}

func newError(kind Kind, subject string, err error) error {
	return &Error{Kind: kind, Subject: subject, Err: err, frame: xerrors.Caller(1)}
}

func (e *Error) Error() string {
	var s string
	switch e.Kind {
	case MissingParameter:
		s = "missing parameter `" + e.Subject + "`"
	case BadParameter:
		s = "bad parameter `" + e.Subject + "`"
	case FileNotFound:
		s = "cannot open file " + e.Subject
	case LabelColumnNotFound:
		s = "cannot find label column " + e.Subject
	case IdColumnNotFound:
		s = "cannot find id column " + e.Subject
	case RowWidthMismatch:
		s = "column count mismatch at " + e.Subject
	case ReadFailed:
		s = "failed to read " + e.Subject
	default:
		s = e.Kind.String() + " " + e.Subject
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error() + " at ")
	e.frame.Format(p)
	return nil
}

/*
IsKind returns true if err or any error it wraps is a loading failure of the kind
*/
func IsKind(err error, kind Kind) bool {
	var e *Error
	return xerrors.As(err, &e) && e.Kind == kind
}
