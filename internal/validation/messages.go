package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tabela de mensagens indexada pela regra de validação. Substitui a
// tradução por substituição de substrings da versão antiga, que
// dependia da ordem das trocas.
var messages = map[string]string{
	"required":   "O campo %s é obrigatório.",
	"email":      "O campo %s deve ser um endereço de e-mail válido.",
	"len":        "O campo %s deve ter exatamente %v caracteres.",
	"max":        "O campo %s não pode ser maior que %v caracteres.",
	"min":        "O campo %s não pode ser menor que %v caracteres.",
	"gt":         "O campo %s deve ser um número maior que %v.",
	"gte":        "O campo %s deve ser um número maior ou igual a %v.",
	"lte":        "O campo %s deve ser um número menor ou igual a %v.",
	"uuid4":      "O campo %s deve ser um UUID válido.",
	"cep":        `O campo %s deve estar no formato "xxxxx-xxx".`,
	"categoria":  "O campo %s deve ser Higiene, Brinquedos ou Conforto.",
	"data":       "O campo %s deve ser uma data válida.",
	"datafutura": "O campo %s deve ser uma data futura.",
}

// Message monta a mensagem em português para um erro de campo.
func Message(fe validator.FieldError) string {
	tmpl, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("O campo %s é inválido.", fe.Field())
	}
	if strings.Count(tmpl, "%") > 1 {
		return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
	}
	return fmt.Sprintf(tmpl, fe.Field())
}
