package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout é o formato de data aceito nos payloads (ex: "2026-01-31").
const DateLayout = "2006-01-02"

var cepPattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

var categories = map[string]bool{
	"Higiene":    true,
	"Brinquedos": true,
	"Conforto":   true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nome do campo nas mensagens = nome do campo no JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})

	mustRegister(v, "categoria", func(fl validator.FieldLevel) bool {
		return categories[fl.Field().String()]
	})

	mustRegister(v, "data", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	mustRegister(v, "datafutura", func(fl validator.FieldLevel) bool {
		t, err := ParseDate(fl.Field().String())
		return err == nil && t.After(time.Now())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ParseDate aceita datas no formato curto ou RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Struct valida o payload inteiro e devolve todas as mensagens de uma
// vez, indexadas pelo nome JSON do campo. Nil quando o payload é válido.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"payload": "Dados inválidos."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = Message(fe)
		}
	}
	return out
}

// Slice valida cada item de um payload em lote de forma independente,
// acumulando os erros por índice antes de qualquer acesso ao banco.
func Slice[T any](items []T) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for i, item := range items {
		if errs := Struct(item); errs != nil {
			out[strconv.Itoa(i)] = errs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
