package memory

import (
	"go.uber.org/zap"

	"github.com/fastygo/tasklist/domain"
	"github.com/fastygo/tasklist/repository"
)

// TaskCollection stores tasks in insertion order. Duplicates are
// permitted; nothing is keyed on the title.
type TaskCollection struct {
	Tasks []domain.Task `json:"tasks"`

	logger *zap.Logger
}

var _ repository.Collection = (*TaskCollection)(nil)

// New returns an empty collection.
func New() *TaskCollection {
	return NewWithLogger(nil)
}

// NewWithLogger returns an empty collection that reports mutations on
// the given logger. A nil logger disables logging.
func NewWithLogger(logger *zap.Logger) *TaskCollection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskCollection{
		Tasks:  []domain.Task{},
		logger: logger,
	}
}

// AddTask appends the task. It always succeeds; adding a task equal to
// a stored one yields two equal entries.
func (c *TaskCollection) AddTask(task domain.Task) {
	c.Tasks = append(c.Tasks, task)
	c.log().Debug("task added",
		zap.String("title", task.Title),
		zap.Int("size", len(c.Tasks)),
	)
}

// RemoveTask drops every stored task equal to the given value. The
// remaining tasks keep their relative order. Zero matches leaves the
// collection unchanged.
func (c *TaskCollection) RemoveTask(task domain.Task) {
	kept := c.Tasks[:0]
	for _, t := range c.Tasks {
		if !t.Equal(task) {
			kept = append(kept, t)
		}
	}
	removed := len(c.Tasks) - len(kept)
	c.Tasks = kept
	if removed > 0 {
		c.log().Debug("task removed",
			zap.String("title", task.Title),
			zap.Int("removed", removed),
			zap.Int("size", len(c.Tasks)),
		)
	}
}

// Len reports the number of stored tasks.
func (c *TaskCollection) Len() int {
	return len(c.Tasks)
}

// log tolerates collections decoded from JSON, which never pass through
// a constructor and carry a nil logger.
func (c *TaskCollection) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
