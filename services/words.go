package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToWords spells out an amount in Indian English, e.g.
// 913183.50 → "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three
// Rupees and Fifty Paise Only/-". Amounts are rounded to the paisa first.
func AmountToWords(amount float64) string {
	d := toDecimal(amount).Round(2)
	if d.IsNegative() {
		return "Negative " + AmountToWords(d.Neg().InexactFloat64())
	}

	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only/-"
	}

	var parts []string
	if rupees > 0 {
		parts = append(parts, indianWords(rupees)+" Rupees")
	}
	if paise > 0 {
		p := convertUnder100(paise) + " Paise"
		if rupees > 0 {
			p = "and " + p
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ") + " Only/-"
}

// indianWords spells n using crores, lakhs and thousands.
func indianWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string
	scales := []struct {
		size int64
		name string
	}{
		{10000000, "Crores"},
		{100000, "Lakhs"},
		{1000, "Thousand"},
	}
	for _, s := range scales {
		if n >= s.size {
			count := n / s.size
			if count >= 100 {
				parts = append(parts, indianWords(count)+" "+s.name)
			} else {
				parts = append(parts, convertUnder100(count)+" "+s.name)
			}
			n %= s.size
		}
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
