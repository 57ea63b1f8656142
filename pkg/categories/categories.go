// Package categories maps free-form feed categories onto the Zen taxonomy.
package categories

// DefaultCategory is used when no source category survives the taxonomy filter
const DefaultCategory = "Технологии"

// maxCategories is the Zen limit per article
const maxCategories = 3

// taxonomy is the closed set of categories Zen accepts
var taxonomy = map[string]struct{}{
	"Технологии":   {},
	"Наука":        {},
	"Образование":  {},
	"Культура":     {},
	"Спорт":        {},
	"Здоровье":     {},
	"Путешествия":  {},
	"Кулинария":    {},
	"Автомобили":   {},
	"Недвижимость": {},
	"Мода":         {},
	"Красота":      {},
	"Дом":          {},
	"Семья":        {},
	"Психология":   {},
	"Бизнес":       {},
	"Финансы":      {},
}

// Map filters source categories to taxonomy members, preserving input order
// and capping at the Zen limit. An empty result falls back to the default.
func Map(source []string) []string {
	result := make([]string, 0, maxCategories)
	for _, cat := range source {
		if _, ok := taxonomy[cat]; !ok {
			continue
		}
		result = append(result, cat)
		if len(result) == maxCategories {
			break
		}
	}

	if len(result) == 0 {
		return []string{DefaultCategory}
	}
	return result
}
