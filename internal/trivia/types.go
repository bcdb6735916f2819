package trivia

// QuestionsPerPage is the fixed page size for every question listing.
const QuestionsPerPage = 10

// Question is a trivia question as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a read-only question grouping; rows are pre-populated by the
// seed migration and never written by the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizCategory is the optional category selector accepted by the quiz
// endpoint. A zero ID means "all categories".
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap converts category rows into the id:label mapping the API
// responds with.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
