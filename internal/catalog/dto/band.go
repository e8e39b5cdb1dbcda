package dto

type SongOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BandOutput struct {
	Name    string       `json:"name"`
	Songs   []SongOutput `json:"songs"`
	YouTube []string     `json:"youtube"`
}
