package domain

// TrainingTask is a catalog unit of training. Title is the canonical
// identifier: the maneuver, prerequisite, and topic-prep maps all key on it.
type TrainingTask struct {
	Title        string
	Category     TaskCategory
	EstimatedMin int
}
