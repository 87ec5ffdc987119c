package services

import (
	"math"
	"strings"
)

var (
	thaiDigits = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	thaiPlaces = []string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}
)

// maxBahtText is the largest amount BahtText spells out.
const maxBahtText = 999999999999.99

// BahtText spells an amount in Thai words the way it is written on
// quotations: 1500.25 becomes "หนึ่งพันห้าร้อยบาทยี่สิบห้าสตางค์". Negative
// amounts and amounts above maxBahtText return "N/A".
func BahtText(amount float64) string {
	if amount == 0 {
		return "ศูนย์บาทถ้วน"
	}
	if amount < 0 || amount > maxBahtText || math.IsNaN(amount) {
		return "N/A"
	}

	cents := int64(math.Round(amount * 100))
	baht := cents / 100
	satang := cents % 100

	var b strings.Builder
	if baht > 0 {
		if millions := baht / 1000000; millions > 0 {
			b.WriteString(thaiUnder1M(millions))
			b.WriteString("ล้าน")
		}
		b.WriteString(thaiUnder1M(baht % 1000000))
		b.WriteString("บาท")
	} else {
		b.WriteString("ศูนย์บาท")
	}

	if satang == 0 {
		b.WriteString("ถ้วน")
	} else {
		b.WriteString(thaiUnder1M(satang))
		b.WriteString("สตางค์")
	}
	return b.String()
}

// thaiUnder1M spells 0 <= n < 1,000,000; zero is the empty string.
func thaiUnder1M(n int64) string {
	if n <= 0 {
		return ""
	}
	var digits []int
	for ; n > 0; n /= 10 {
		digits = append(digits, int(n%10))
	}

	var b strings.Builder
	for pos := len(digits) - 1; pos >= 0; pos-- {
		d := digits[pos]
		switch {
		case d == 0:
		case pos == 1 && d == 1:
			b.WriteString(thaiPlaces[1])
		case pos == 1 && d == 2:
			b.WriteString("ยี่" + thaiPlaces[1])
		case pos == 0 && d == 1 && len(digits) > 1:
			b.WriteString("เอ็ด")
		default:
			b.WriteString(thaiDigits[d] + thaiPlaces[pos])
		}
	}
	return b.String()
}
