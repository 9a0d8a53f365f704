package models

// SortKey - ключ сортировки результатов поиска
type SortKey int

const (
	SortByDistance SortKey = iota
	SortByRating
	SortByCleanliness
	SortByAccessibility
	SortByQuality
)

var sortKeyNames = map[SortKey]string{
	SortByDistance:      "distance",
	SortByRating:        "rating",
	SortByCleanliness:   "cleanliness",
	SortByAccessibility: "accessibility",
	SortByQuality:       "quality",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "distance"
}

// ParseSortKey разбирает строковый ключ сортировки.
// Пустая или неизвестная строка дает сортировку по дистанции (дефолт настроек).
func ParseSortKey(s string) SortKey {
	for key, name := range sortKeyNames {
		if name == s {
			return key
		}
	}
	return SortByDistance
}

// Less - таблица компараторов по ключам сортировки.
// Дистанция по возрастанию, все рейтинговые ключи по убыванию.
// Равные значения ключа не переставляются (сортировка стабильная, см. сервис).
func (k SortKey) Less(a, b RankedResult) bool {
	switch k {
	case SortByRating:
		return a.Ratings.Mean() > b.Ratings.Mean()
	case SortByCleanliness:
		return a.Ratings.Cleanliness > b.Ratings.Cleanliness
	case SortByAccessibility:
		return a.Ratings.Accessibility > b.Ratings.Accessibility
	case SortByQuality:
		return a.Ratings.Quality > b.Ratings.Quality
	default:
		return a.DistanceMiles < b.DistanceMiles
	}
}
