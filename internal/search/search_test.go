package search

import (
	"strings"
	"testing"

	"hermes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferFixture() []models.TransferRecord {
	return []models.TransferRecord{
		{Segmento: "Varejo", Codigo: "300", Produto: "banana Box", TransferenciaTelefone: "1", TransferenciaBlip: "F1"},
		{Segmento: "Suporte", Codigo: "123", Produto: "Modem X", TransferenciaTelefone: "1234", TransferenciaBlip: "Fila1"},
		{Segmento: "Empresas", Codigo: "MOD-9", Produto: "Árvore Wi-Fi", TransferenciaTelefone: "2", TransferenciaBlip: "F2"},
		{Segmento: "Varejo", Codigo: "55", Produto: "Arroz TV", TransferenciaTelefone: "3", TransferenciaBlip: "F3"},
		{Segmento: "Modalidade", Codigo: "77", Produto: "Zeta", TransferenciaTelefone: "4", TransferenciaBlip: "F4"},
	}
}

func phaseoutFixture() []models.PhaseoutRecord {
	return []models.PhaseoutRecord{
		{Item: "Z-1", Descricao: "Roteador antigo", Modelo: "RT1"},
		{Item: "A-2", Descricao: "Switch", Modelo: "SW-ROT"},
		{Item: "rot-3", Descricao: "Câmera", Modelo: "C3"},
		{Item: "B-4", Descricao: "Modem", Modelo: "M4", Segmento: "Roteamento"},
	}
}

func TestFilterTransfersMatchesAnySearchField(t *testing.T) {
	got := FilterTransfers(transferFixture(), "mod")

	var produtos []string
	for _, r := range got {
		produtos = append(produtos, r.Produto)
	}
	// "Modem X" by produto, "Árvore Wi-Fi" by codigo, "Zeta" by segmento.
	assert.Equal(t, []string{"Modem X", "Árvore Wi-Fi", "Zeta"}, produtos)
}

func TestFilterTransfersEveryMatchContainsQuery(t *testing.T) {
	for _, q := range []string{"a", "VAREJO", "12", "x", "wi-fi", "zz"} {
		for _, r := range FilterTransfers(transferFixture(), q) {
			needle := strings.ToLower(q)
			hit := strings.Contains(strings.ToLower(r.Produto), needle) ||
				strings.Contains(strings.ToLower(r.Codigo), needle) ||
				strings.Contains(strings.ToLower(r.Segmento), needle)
			assert.True(t, hit, "query %q returned %+v", q, r)
		}
	}
}

func TestFilterTransfersIgnoresOtherFields(t *testing.T) {
	assert.Empty(t, FilterTransfers(transferFixture(), "fila1"))
	assert.Empty(t, FilterTransfers(transferFixture(), "1234"))
}

func TestFilterPhaseoutsKeepsOrder(t *testing.T) {
	got := FilterPhaseouts(phaseoutFixture(), "ROT")

	require.Len(t, got, 3)
	assert.Equal(t, "Z-1", got[0].Item)
	assert.Equal(t, "A-2", got[1].Item)
	assert.Equal(t, "rot-3", got[2].Item)
}

func TestSortTransfersLocaleAware(t *testing.T) {
	records := []models.TransferRecord{{Produto: "banana"}, {Produto: "Árvore"}, {Produto: "Arroz"}, {Produto: ""}}

	SortTransfers(records, NewCollator("pt-BR"))

	var got []string
	for _, r := range records {
		got = append(got, r.Produto)
	}
	assert.Equal(t, []string{"", "Arroz", "Árvore", "banana"}, got)
}

func TestNewCollatorInvalidTagFallsBack(t *testing.T) {
	c := NewCollator("not a tag!!")
	require.NotNil(t, c)
	assert.Negative(t, c.CompareString("Arroz", "Árvore"))
}

func TestSearchEmptyQueryShowsPlaceholder(t *testing.T) {
	s := NewState("pt-BR")
	s.Transfers = transferFixture()

	for _, q := range []string{"", "   "} {
		res := s.Open(ModeTransfer)
		assert.Equal(t, PromptPlaceholder, res.Placeholder)

		res = s.Search(q)
		assert.True(t, res.IsPlaceholder())
		assert.Equal(t, PromptPlaceholder, res.Placeholder)
		assert.Empty(t, res.Rows)
		assert.Equal(t, TransferColumns, res.Columns)
	}
}

func TestSearchTransferSortedByProduto(t *testing.T) {
	s := NewState("pt-BR")
	s.Transfers = transferFixture()
	s.Open(ModeTransfer)

	res := s.Search("a")

	require.False(t, res.IsPlaceholder())
	for i := 1; i < len(res.Rows); i++ {
		prev := res.Rows[i-1].Record.(models.TransferRecord).Produto
		cur := res.Rows[i].Record.(models.TransferRecord).Produto
		assert.LessOrEqual(t, s.collator.CompareString(prev, cur), 0, "%q before %q", prev, cur)
	}
	// the source list is left in file order
	assert.Equal(t, "banana Box", s.Transfers[0].Produto)
}

func TestSearchTransferRowsCarryRecord(t *testing.T) {
	s := NewState("pt-BR")
	s.Transfers = transferFixture()
	s.Open(ModeTransfer)

	res := s.Search(" 123 ")

	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"Suporte", "123", "Modem X", "1234", "Fila1"}, res.Rows[0].Cells)
	assert.Equal(t, transferFixture()[1], res.Rows[0].Record)
}

func TestSearchPhaseoutKeepsFilterOrder(t *testing.T) {
	s := NewState("pt-BR")
	s.Phaseouts = phaseoutFixture()
	s.Open(ModePhaseout)

	res := s.Search("rot")

	require.Len(t, res.Rows, 3)
	assert.Equal(t, PhaseoutColumns, res.Columns)
	assert.Equal(t, "Z-1", res.Rows[0].Cells[1])
	assert.Equal(t, "A-2", res.Rows[1].Cells[1])
	assert.Equal(t, "rot-3", res.Rows[2].Cells[1])
}

func TestSearchNoMatches(t *testing.T) {
	s := NewState("pt-BR")
	s.Transfers = transferFixture()
	s.Phaseouts = phaseoutFixture()

	s.Open(ModeTransfer)
	assert.Equal(t, NoTransferResults, s.Search("inexistente").Placeholder)

	s.Open(ModePhaseout)
	assert.Equal(t, NoPhaseoutResults, s.Search("inexistente").Placeholder)
}

func TestSearchModesAreExclusive(t *testing.T) {
	s := NewState("pt-BR")
	s.Transfers = transferFixture()
	s.Phaseouts = phaseoutFixture()

	s.Open(ModePhaseout)
	res := s.Search("modem")
	require.Len(t, res.Rows, 1)
	_, isPhaseout := res.Rows[0].Record.(models.PhaseoutRecord)
	assert.True(t, isPhaseout)
}

func TestSearchWithoutMode(t *testing.T) {
	s := NewState("pt-BR")
	res := s.Search("x")
	assert.Equal(t, PromptPlaceholder, res.Placeholder)
	assert.Nil(t, res.Columns)
}
