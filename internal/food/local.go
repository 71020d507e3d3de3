// ABOUTME: Built-in fallback table of six common foods.
// ABOUTME: Matched case-insensitively: exact name first, then substring in either direction.
package food

import "strings"

// localFoods is the offline fallback when the lookup service is
// unreachable or has no answer. Names double as match keys.
var localFoods = []Product{
	{Name: "Банан", KcalPer100g: 89},
	{Name: "Яблоко", KcalPer100g: 52},
	{Name: "Гречка", KcalPer100g: 132},
	{Name: "Рис", KcalPer100g: 130},
	{Name: "Курица", KcalPer100g: 165},
	{Name: "Говядина", KcalPer100g: 250},
}

func lookupLocal(name string) (Product, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Product{}, false
	}

	for _, p := range localFoods {
		if strings.ToLower(p.Name) == needle {
			return p, true
		}
	}
	for _, p := range localFoods {
		key := strings.ToLower(p.Name)
		if strings.Contains(key, needle) || strings.Contains(needle, key) {
			return p, true
		}
	}
	return Product{}, false
}
