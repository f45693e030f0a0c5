package search

import (
	"sort"
	"strings"

	"hermes/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterTransfers keeps records whose produto, codigo or segmento contains
// query, ignoring case. query must be non-empty.
func FilterTransfers(records []models.TransferRecord, query string) []models.TransferRecord {
	needle := strings.ToLower(query)
	out := []models.TransferRecord{}
	for _, r := range records {
		if containsFold(r.Produto, needle) || containsFold(r.Codigo, needle) || containsFold(r.Segmento, needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterPhaseouts keeps records whose item, descricao or modelo contains
// query, ignoring case. query must be non-empty.
func FilterPhaseouts(records []models.PhaseoutRecord, query string) []models.PhaseoutRecord {
	needle := strings.ToLower(query)
	out := []models.PhaseoutRecord{}
	for _, r := range records {
		if containsFold(r.Item, needle) || containsFold(r.Descricao, needle) || containsFold(r.Modelo, needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortTransfers orders records by produto in place using the collator's
// locale rules. Equal names keep their relative order.
func SortTransfers(records []models.TransferRecord, c *collate.Collator) {
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].Produto, records[j].Produto) < 0
	})
}

// NewCollator returns a collator for the BCP 47 tag, falling back to
// Brazilian Portuguese when the tag is invalid.
func NewCollator(tag string) *collate.Collator {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.BrazilianPortuguese
	}
	return collate.New(lang)
}

func containsFold(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}
