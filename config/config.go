// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"marnthara/services"
)

// Defaults for the seller block printed on quotations.
const (
	DefaultShopName      = "ร้านผ้าม่าน ขวัญฤดี"
	DefaultShopAddress   = "เลขที่ 257 ม.6 ต.หนองโพรง อ.ศรีมหาโพธิ จ.ปราจีนบุรี 25140"
	DefaultShopPhone     = "โทร 087-985-3832 (ศิริขวัญ นาคะเสถียร)"
	DefaultShopTaxID     = "1250100194164"
	DefaultVATRate       = 0.07
	DefaultPaymentTerms  = "ชำระมัดจำ 50%"
	DefaultPriceValidity = "30 วัน"
)

// DefaultNotes are the footnotes printed under a quotation.
var DefaultNotes = []string{
	"ราคานี้รวมค่าติดตั้งแล้ว",
	"ชำระมัดจำ 50% เพื่อยืนยืนการสั่งผลิตสินค้า",
	"ใบเสนอราคานี้มีอายุ 30 วัน นับจากวันที่เสนอราคา",
}

// Config holds application configuration loaded from the environment.
type Config struct {
	ShopName      string
	ShopAddress   string
	ShopPhone     string
	ShopTaxID     string
	VATRate       float64
	PaymentTerms  string
	PriceValidity string
	Notes         []string
	FontPath      string

	WebhookURL     string
	WebhookTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables and an optional .env
// file. Missing or malformed values fall back to their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return fromKoanf(k), nil
}

func fromKoanf(k *koanf.Koanf) *Config {
	notes := splitNotes(k.String("QUOTE_NOTES"))
	if len(notes) == 0 {
		notes = append([]string(nil), DefaultNotes...)
	}
	return &Config{
		ShopName:       valueOrDefault(k.String("SHOP_NAME"), DefaultShopName),
		ShopAddress:    valueOrDefault(k.String("SHOP_ADDRESS"), DefaultShopAddress),
		ShopPhone:      valueOrDefault(k.String("SHOP_PHONE"), DefaultShopPhone),
		ShopTaxID:      valueOrDefault(k.String("SHOP_TAX_ID"), DefaultShopTaxID),
		VATRate:        parseRate(k.String("SHOP_VAT_RATE"), DefaultVATRate),
		PaymentTerms:   valueOrDefault(k.String("QUOTE_PAYMENT_TERMS"), DefaultPaymentTerms),
		PriceValidity:  valueOrDefault(k.String("QUOTE_PRICE_VALIDITY"), DefaultPriceValidity),
		Notes:          notes,
		FontPath:       strings.TrimSpace(k.String("QUOTE_FONT_PATH")),
		WebhookURL:     strings.TrimSpace(k.String("WEBHOOK_URL")),
		WebhookTimeout: parseDuration(k.String("WEBHOOK_TIMEOUT"), "15s"),
		LogLevel:       valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:      valueOrDefault(k.String("LOG_FORMAT"), "json"),
	}
}

// Shop returns the seller block used by quotation exports.
func (c *Config) Shop() services.ShopInfo {
	return services.ShopInfo{
		Name:          c.ShopName,
		Address:       c.ShopAddress,
		Phone:         c.ShopPhone,
		TaxID:         c.ShopTaxID,
		VATRate:       c.VATRate,
		PaymentTerms:  c.PaymentTerms,
		PriceValidity: c.PriceValidity,
		Notes:         append([]string(nil), c.Notes...),
	}
}

func valueOrDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func splitNotes(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseRate accepts a fraction (0.07) or a percentage (7). Negative or
// unparsable input yields fallback.
func parseRate(value string, fallback float64) float64 {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if v == "" {
		return fallback
	}
	r, err := strconv.ParseFloat(v, 64)
	if err != nil || r < 0 {
		return fallback
	}
	if r >= 1 {
		r /= 100
	}
	return r
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
