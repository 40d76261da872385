package services

import (
	"context"
	"sync"

	"todo-api/app/models"
)

// TodoStore is the storage contract for todos.
//
// Lookups that match nothing are not errors: GetByID and UpdateByID return a
// nil todo and DeleteByID returns false.
type TodoStore interface {
	Create(ctx context.Context, in models.TodoInput) (models.Todo, error)
	List(ctx context.Context) ([]models.Todo, error)
	GetByID(ctx context.Context, id int) (*models.Todo, error)
	UpdateByID(ctx context.Context, id int, in models.TodoInput) (*models.Todo, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// MemoryTodoStore keeps todos in insertion order in process memory.
// It is safe for concurrent use.
type MemoryTodoStore struct {
	mu     sync.Mutex
	todos  []models.Todo
	lastID int
}

var _ TodoStore = (*MemoryTodoStore)(nil)

// NewMemoryTodoStore creates an empty store. Ids start at 1.
func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{todos: make([]models.Todo, 0)}
}

// Create appends a new todo with the next id.
func (s *MemoryTodoStore) Create(ctx context.Context, in models.TodoInput) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids are never reused, even after the newest todo is deleted.
	s.lastID++
	todo := models.Todo{
		ID:          s.lastID,
		Task:        in.Task,
		Description: in.Description,
		Completed:   in.Completed,
	}
	s.todos = append(s.todos, todo)
	return todo, nil
}

// List returns a copy of all todos in creation order.
func (s *MemoryTodoStore) List(ctx context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]models.Todo, len(s.todos))
	copy(todos, s.todos)
	return todos, nil
}

// GetByID returns the todo with the given id, or nil if there is none.
func (s *MemoryTodoStore) GetByID(ctx context.Context, id int) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	todo := s.todos[i]
	return &todo, nil
}

// UpdateByID replaces the task, description and completed flag of a todo in
// place. The id and position are kept.
func (s *MemoryTodoStore) UpdateByID(ctx context.Context, id int, in models.TodoInput) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	s.todos[i].Task = in.Task
	s.todos[i].Description = in.Description
	s.todos[i].Completed = in.Completed

	todo := s.todos[i]
	return &todo, nil
}

// DeleteByID removes a todo and reports whether one was removed.
func (s *MemoryTodoStore) DeleteByID(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return true, nil
}

// indexOf scans for the first todo with the id. Callers must hold s.mu.
func (s *MemoryTodoStore) indexOf(id int) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}
