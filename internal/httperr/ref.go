package httperr

import "errors"

// RefError indica que uma referência (chave primária ou estrangeira)
// aponta para um registro que não existe.
type RefError struct {
	Entity string
}

func (e RefError) Error() string {
	return e.Entity + " não encontrado."
}

func ErrRef(entity string) error {
	return RefError{Entity: entity}
}

func AsRef(err error) (RefError, bool) {
	var re RefError
	ok := errors.As(err, &re)
	return re, ok
}
