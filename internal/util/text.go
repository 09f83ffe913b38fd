package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents remove marcas diacríticas ("Açúcar" -> "Acucar").
func StripAccents(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeTipo normaliza uma categoria para comparação: sem acentos,
// sem espaços nas pontas, minúscula.
func NormalizeTipo(s string) string {
	return strings.ToLower(strings.TrimSpace(StripAccents(s)))
}

// NovoCollator devolve um collator pt-BR para ordenar especificações;
// acentuadas ordenam junto das equivalentes sem acento, não depois de "z".
func NovoCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}
