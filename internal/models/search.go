package models

// SearchQuery - параметры одного поискового запроса, не персистится
type SearchQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles float64
	Sort        SortKey
}
