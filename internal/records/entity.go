package records

import "gorm.io/datatypes"

// Category is one of the tables whose rows own a quiz_questions list.
type Category string

const (
	CategoryLessons Category = "lessons"
	CategorySprints Category = "sprints"
	CategoryModules Category = "modules"
)

// AllCategories is the order the batch rewriter walks the tables in.
var AllCategories = []Category{
	CategoryLessons,
	CategorySprints,
	CategoryModules,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

func (c Category) Table() string {
	return string(c)
}

type Record struct {
	ID            string         `gorm:"column:id" json:"id"`
	QuizQuestions datatypes.JSON `gorm:"column:quiz_questions;type:jsonb" json:"quiz_questions"`
}
