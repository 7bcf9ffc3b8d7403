package ingesting

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoDataRows indica que o texto não tem cabeçalho e ao menos uma linha
// de dados. Falha estrutural: nenhum registro parcial é produzido.
var ErrNoDataRows = errors.New("CSV must have a header and at least one data row.")

// MissingHeadersError indica colunas obrigatórias ausentes no cabeçalho.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("Invalid CSV headers. Missing required headers: %s", strings.Join(e.Missing, ", "))
}

// RowError anota um erro de linha com o número da linha no arquivo
// (1-indexado, contando o cabeçalho). Qualquer RowError aborta a
// ingestão inteira: não existe pular-e-continuar.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Error parsing data in row %d: %v.", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
