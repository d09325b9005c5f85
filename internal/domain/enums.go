package domain

// CardState is the scheduling phase of a card.
type CardState string

const (
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// HasStep reports whether cards in this state walk through a step list.
func (s CardState) HasStep() bool {
	return s == CardStateLearning || s == CardStateRelearning
}

// ReviewGrade represents the user's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}
