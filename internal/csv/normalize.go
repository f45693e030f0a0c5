package csv

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// phaseoutHeaders renames normalized phase-out headers to canonical field
// names. Headers missing from the table keep their normalized form.
var phaseoutHeaders = map[string]string{
	"unidade":              "unidade",
	"segmento":             "segmento",
	"item":                 "item",
	"descricao":            "descricao",
	"modelo":               "modelo",
	"data_phase_out":       "data_phase_out",
	"substituto_direto":    "substituto_direto",
	"descricao_sust._dir.": "descricao_subs_dir",
	"substituto_indicacao": "substituto_indicacao",
	"descricao_subs._ind.": "descricao_subs_ind",
}

// NormalizeHeader folds a raw header into an ASCII snake_case key:
// trimmed, lowercased, whitespace runs joined by "_" and accents removed.
//
//	NormalizeHeader(" Descrição Sust. Dir. ") == "descricao_sust._dir."
func NormalizeHeader(raw string) string {
	folded := strings.Join(strings.Fields(strings.ToLower(raw)), "_")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, folded)
	if err != nil {
		return folded
	}
	return out
}

// PhaseoutHeader normalizes a phase-out header and maps it through the
// canonical lookup table.
func PhaseoutHeader(raw string) string {
	normalized := NormalizeHeader(raw)
	if canonical, ok := phaseoutHeaders[normalized]; ok {
		return canonical
	}
	return normalized
}

func mapHeaders(raw []string, mapHeader func(string) string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = mapHeader(h)
	}
	return uniqueHeaders(headers)
}

// uniqueHeaders keeps the last column for a repeated header and renames the
// earlier ones to their positional name, so the later value wins.
func uniqueHeaders(headers []string) []string {
	last := make(map[string]int, len(headers))
	for i, h := range headers {
		last[h] = i
	}

	out := make([]string, len(headers))
	for i, h := range headers {
		if last[h] != i {
			h = fmt.Sprintf("_%d", i)
		}
		out[i] = h
	}
	return out
}
