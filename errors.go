package valfmt

import valerr "github.com/KimNorgaard/go-valfmt/errors"

// The error taxonomy lives in the errors subpackage so the internal composers
// can produce it; these aliases make it available from the root.
type (
	ConfigurationError  = valerr.ConfigurationError
	ShapeError          = valerr.ShapeError
	FormatMismatchError = valerr.FormatMismatchError
	UnitError           = valerr.UnitError
)

var (
	ErrConfiguration  = valerr.ErrConfiguration
	ErrShape          = valerr.ErrShape
	ErrFormatMismatch = valerr.ErrFormatMismatch
)

func configErr(option, msg string, err error) error {
	return &ConfigurationError{Option: option, Msg: msg, Err: err}
}
