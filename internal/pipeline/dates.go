package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Serial de planilha: dias desde a época 1899-12-30; 25569 é a distância
// em dias até a época Unix.
const serialUnixOffset = 25569

var dmyPattern = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})$`)

// Layouts tentados no fallback genérico, na ordem.
var genericLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"2006/01/02",
}

// ExtractDate converte um valor bruto de data em "YYYY-MM-DD". Aceita três
// formas, nesta precedência: data estruturada, serial numérico de planilha
// e texto livre (primeiro D/M/Y ou D-M-Y, depois os layouts genéricos).
// Nunca falha: tudo que não parseia vira nil e o registro segue sem data.
func ExtractDate(raw any) *string {
	switch v := raw.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return isoPtr(v)
	case float64:
		return fromSerial(v)
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return fromString(v)
	default:
		return fromString(fmt.Sprint(raw))
	}
}

func fromSerial(serial float64) *string {
	days := math.Round(serial - serialUnixOffset)
	t := time.Unix(int64(days)*86400, 0).UTC()
	if t.Year() < 1900 || t.Year() > 9999 {
		return nil
	}
	return isoPtr(t)
}

func fromString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normaliza estouros (32/01 vira 01/02); rejeita esses.
		if int(t.Month()) == month && t.Day() == day {
			return isoPtr(t)
		}
		return nil
	}

	// Células brutas entregam seriais como texto ("45600").
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n >= serialUnixOffset {
			return fromSerial(n)
		}
		return nil
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return isoPtr(t)
		}
	}

	return nil
}

func isoPtr(t time.Time) *string {
	s := t.Format("2006-01-02")
	return &s
}
