package trivia

// Paginate slices questions down to the requested 1-based page. Pages start
// at offset (page-1)*QuestionsPerPage; anything outside 1..lastPage yields an
// empty (non-nil) slice so callers always marshal []. The range check runs on
// the page index itself, before the offset multiplication can wrap.
func Paginate(questions []Question, page int) []Question {
	lastPage := (len(questions) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > lastPage {
		return []Question{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
