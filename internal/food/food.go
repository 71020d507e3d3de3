// ABOUTME: Food product type and the three-stage name resolution chain.
// ABOUTME: Lookup service, then local table, then a flat 100 kcal default — never fails.
package food

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Product is a resolved food item: a display name and its energy
// density per 100 grams.
type Product struct {
	Name        string `json:"name"`
	KcalPer100g int    `json:"kcal_per_100g"`
}

// Source looks up a food by free-text name against an external service.
// An error (including "nothing found") makes the caller fall through to
// the local table.
type Source interface {
	Lookup(ctx context.Context, name string) (Product, error)
}

// defaultKcalPer100g is assumed when neither the lookup service nor the
// local table recognizes the food.
const defaultKcalPer100g = 100

// Resolve turns a free-text food name into a product. The chain is:
// external source, local table (exact, then substring either way),
// then a default product named after the input. src may be nil.
func Resolve(ctx context.Context, src Source, name string) Product {
	if src != nil {
		if p, err := src.Lookup(ctx, name); err == nil {
			return p
		}
	}
	if p, ok := lookupLocal(name); ok {
		return p
	}
	return Product{Name: Capitalize(name), KcalPer100g: defaultKcalPer100g}
}

// Capitalize upper-cases the first rune, leaving the rest untouched.
// Works for Cyrillic input, unlike strings.ToUpper on the whole word.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
