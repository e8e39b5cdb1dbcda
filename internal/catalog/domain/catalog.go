package domain

// Band, Genre and Song mirror the three flat catalog tables. Relations are
// plain arrays of row ids rather than join tables.
type Band struct {
	ID      int64
	Name    string
	SongIDs []int64
}

type Genre struct {
	ID      int64
	Name    string
	BandIDs []int64
}

type Song struct {
	ID   int64
	Name string
}
