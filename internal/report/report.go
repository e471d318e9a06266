package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/petmanage/petshop-api/internal/models"
)

// WriteClients gera o relatório de clientes em PDF direto no writer:
// cabeçalho, depois um bloco por cliente com os dados de contato, o
// endereço e a lista de pets quando houver.
func WriteClients(w io.Writer, clients []models.Client) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de clientes"), "", 1, "", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	line := func(format string, args ...any) {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf(format, args...)), "", 1, "", false, 0, "")
	}

	for _, client := range clients {
		line("Nome: %s", client.Name)
		line("Telefone: %s", client.Phone)
		line("Email: %s", client.Email)

		if client.Address != nil {
			line("Rua: %s", client.Address.Street)
			line("Número: %d", client.Address.Number)
			line("Cidade: %s", client.Address.City)
			line("CEP: %s", client.Address.CEP)
			line("UF: %s", client.Address.UF)
		}

		if len(client.Pets) > 0 {
			line("Pets:")
			line("Quantidade de pets: %d", len(client.Pets))
			for _, pet := range client.Pets {
				line("%s - %s", pet.Name, pet.Type)
			}
		}

		pdf.Ln(8)
	}

	return pdf.Output(w)
}
