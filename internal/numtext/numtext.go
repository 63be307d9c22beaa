// Package numtext spells out monetary amounts as Turkish words for printed
// collection receipts.
package numtext

import (
	"math"
	"strings"
)

var (
	ones   = [10]string{"", "Bir", "İki", "Üç", "Dört", "Beş", "Altı", "Yedi", "Sekiz", "Dokuz"}
	tens   = [10]string{"", "On", "Yirmi", "Otuz", "Kırk", "Elli", "Altmış", "Yetmiş", "Seksen", "Doksan"}
	scales = [5]string{"", "Bin", "Milyon", "Milyar", "Trilyon"}
)

// Lira renders a TL amount in words, with the kuruş fraction appended when
// present, e.g. 1250.50 -> "Bin İki Yüz Elli Türk Lirası, Elli Kuruş".
func Lira(amount float64) string {
	if amount == 0 {
		return "Sıfır"
	}

	intPart := int64(math.Floor(amount))
	frac := int(math.Round((amount - float64(intPart)) * 100))
	// Float noise can push the fraction to 100; cap it instead of carrying.
	if frac > 99 {
		frac = 99
	}

	result := spellInteger(intPart) + " Türk Lirası"
	if frac > 0 {
		result += ", " + spellGroup(frac) + " Kuruş"
	}
	return result
}

// spellGroup spells a number in [0, 999].
func spellGroup(n int) string {
	var parts []string
	if h := n / 100; h > 0 {
		if h > 1 {
			parts = append(parts, ones[h]+" Yüz")
		} else {
			parts = append(parts, "Yüz")
		}
	}
	if t := n % 100 / 10; t > 0 {
		parts = append(parts, tens[t])
	}
	if o := n % 10; o > 0 {
		parts = append(parts, ones[o])
	}
	return strings.Join(parts, " ")
}

func spellInteger(n int64) string {
	if n == 0 {
		return "Sıfır"
	}

	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 || i >= len(scales) {
			continue
		}
		switch {
		case i == 1 && g == 1:
			// "Bir Bin" is not Turkish; a bare "Bin" is.
			parts = append(parts, "Bin")
		case i > 0:
			parts = append(parts, spellGroup(g)+" "+scales[i])
		default:
			parts = append(parts, spellGroup(g))
		}
	}
	return strings.Join(parts, " ")
}
