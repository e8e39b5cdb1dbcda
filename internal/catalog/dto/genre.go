package dto

type BandSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GenreOutput struct {
	Name  string        `json:"name"`
	Bands []BandSummary `json:"bands"`
}

type GenreSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
