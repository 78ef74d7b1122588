package models

// Category is a row of the categories table.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// Question is a row of the questions table.
type Question struct {
	ID         int64  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int64  `db:"category"`
	Difficulty int64  `db:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
