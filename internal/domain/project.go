package domain

import "time"

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ACTIVE"
	ProjectArchived ProjectStatus = "ARCHIVED"
)

type TaskStatus string

// Task lanes. Any lane may move to any other lane directly; there is no
// transition graph.
const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Members     []string      `json:"members"` // user ids
	Tasks       []Task        `json:"tasks"`
	CreatedBy   string        `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Task is owned exclusively by its parent project. Task mutations are always
// expressed as whole-project saves; tasks have no persistence path of their
// own.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type SaveProjectRequest struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status" validate:"omitempty,oneof=ACTIVE ARCHIVED"`
	Members     []string      `json:"members"`
	Tasks       []Task        `json:"tasks"`
}

type AddTaskRequest struct {
	Title    string       `json:"title" validate:"required"`
	Status   TaskStatus   `json:"status" validate:"required,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority TaskPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate  *time.Time   `json:"dueDate"`
}

type MoveTaskRequest struct {
	Status TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS REVIEW DONE"`
}
