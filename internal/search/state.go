package search

import (
	"strings"

	"hermes/internal/models"

	"golang.org/x/text/collate"
)

type Mode string

const (
	ModeNone     Mode = ""
	ModeTransfer Mode = Mode(models.Transfer)
	ModePhaseout Mode = Mode(models.Phaseout)
)

const (
	PromptPlaceholder   = "Digite para pesquisar."
	NoTransferResults   = "Nenhum produto de transferência encontrado."
	NoPhaseoutResults   = "Nenhum produto de phaseout encontrado."
	TransferTitle       = "Pesquisar Produto para Transferência"
	PhaseoutTitle       = "Pesquisar Phase Out"
	TransferInputPrompt = "Digite o nome, código ou segmento..."
	PhaseoutInputPrompt = "Digite o Item, Descrição ou Modelo..."
)

var (
	TransferColumns = []string{"Segmento", "Código", "Produto", "Tel.", "Blip"}
	PhaseoutColumns = []string{"Unidade", "Item", "Descrição", "Data Phase Out", "Subst. Direto", "Modelo"}
)

// Row is one rendered table line. Record is nil for placeholder rows.
type Row struct {
	Cells  []string
	Record models.Record
}

// Result is what the results table shows for a query.
type Result struct {
	Mode        Mode
	Columns     []string
	Rows        []Row
	Placeholder string
}

// IsPlaceholder reports whether the result holds no data rows.
func (r Result) IsPlaceholder() bool {
	return r.Placeholder != ""
}

// State is the client's session state. It lives for one run of the
// client and is discarded on exit.
type State struct {
	Transfers []models.TransferRecord
	Phaseouts []models.PhaseoutRecord
	Mode      Mode
	collator  *collate.Collator
}

func NewState(locale string) *State {
	return &State{
		Transfers: []models.TransferRecord{},
		Phaseouts: []models.PhaseoutRecord{},
		collator:  NewCollator(locale),
	}
}

// Open switches to mode and returns the empty-query result for it.
func (s *State) Open(mode Mode) Result {
	s.Mode = mode
	return s.Search("")
}

// Search filters the current mode's records. An empty query yields the
// prompt placeholder rather than the full list.
func (s *State) Search(query string) Result {
	result := Result{Mode: s.Mode, Columns: Columns(s.Mode)}
	query = strings.TrimSpace(query)

	if query == "" {
		result.Placeholder = PromptPlaceholder
		return result
	}

	switch s.Mode {
	case ModeTransfer:
		filtered := FilterTransfers(s.Transfers, query)
		if len(filtered) == 0 {
			result.Placeholder = NoTransferResults
			return result
		}
		SortTransfers(filtered, s.collator)
		for _, r := range filtered {
			result.Rows = append(result.Rows, Row{
				Cells:  []string{r.Segmento, r.Codigo, r.Produto, r.TransferenciaTelefone, r.TransferenciaBlip},
				Record: r,
			})
		}
	case ModePhaseout:
		filtered := FilterPhaseouts(s.Phaseouts, query)
		if len(filtered) == 0 {
			result.Placeholder = NoPhaseoutResults
			return result
		}
		for _, r := range filtered {
			result.Rows = append(result.Rows, Row{
				Cells:  []string{r.Unidade, r.Item, r.Descricao, r.DataPhaseOut, r.SubstitutoDireto, r.Modelo},
				Record: r,
			})
		}
	default:
		result.Placeholder = PromptPlaceholder
	}
	return result
}

// Columns returns the table header for mode.
func Columns(mode Mode) []string {
	switch mode {
	case ModeTransfer:
		return TransferColumns
	case ModePhaseout:
		return PhaseoutColumns
	}
	return nil
}
