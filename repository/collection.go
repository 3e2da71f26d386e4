package repository

import (
	"github.com/fastygo/tasklist/domain"
)

// Collection is the capability contract any task container satisfies:
// accept a task, and drop every stored task equal to a given value.
// Removing a value with no equal entry is a no-op, not an error.
// Construction is left to each implementation's package-level constructor.
type Collection interface {
	AddTask(task domain.Task)
	RemoveTask(task domain.Task)
}
