package domain

type ItemType string

const (
	ItemWork     ItemType = "work"
	ItemRest     ItemType = "rest"
	ItemTask     ItemType = "task"
	ItemMeal     ItemType = "meal"
	ItemExercise ItemType = "exercise"
	ItemRoutine  ItemType = "routine"
)

// ValidItemTypes is the canonical set of accepted schedule item type strings.
var ValidItemTypes = map[string]bool{
	"work": true, "rest": true, "task": true,
	"meal": true, "exercise": true, "routine": true,
}

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectDone       ProjectStatus = "done"
)

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalAchieved   GoalStatus = "achieved"
	GoalAbandoned  GoalStatus = "abandoned"
)
