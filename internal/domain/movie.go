package domain

// Movie and Room are read-mostly catalog data. They are never mutated by the
// reservation flow and are safe to share between requests.

type Movie struct {
	ID       int
	Title    string
	Duration int // runtime in minutes
}

type Room struct {
	ID          int
	Name        string
	RowCount    int
	ColumnCount int
}
