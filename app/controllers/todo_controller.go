package controllers

import (
	"fmt"
	"net/http"

	"todo-api/app/services"
)

// TodoController handles HTTP requests for todos.
type TodoController struct {
	Store services.TodoStore
}

// NewTodoController creates a new TodoController.
func NewTodoController(store services.TodoStore) *TodoController {
	return &TodoController{Store: store}
}

// GetTodos handles GET /todos.
func (c *TodoController) GetTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := c.Store.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// CreateTodo handles POST /todos.
func (c *TodoController) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var errs ValidationErrors
	in := decodeTodoInput(r, &errs)
	if len(errs) > 0 {
		writeError(w, r, errs)
		return
	}

	todo, err := c.Store.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

// GetTodoByID handles GET /todos/{todoID}.
func (c *TodoController) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	var errs ValidationErrors
	id := todoIDFromPath(r, &errs)
	if len(errs) > 0 {
		writeError(w, r, errs)
		return
	}

	todo, err := c.Store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if todo == nil {
		writeDetail(w, http.StatusNotFound, "Todo not found")
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/{todoID}.
func (c *TodoController) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var errs ValidationErrors
	id := todoIDFromPath(r, &errs)
	in := decodeTodoInput(r, &errs)
	if len(errs) > 0 {
		writeError(w, r, errs)
		return
	}

	todo, err := c.Store.UpdateByID(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if todo == nil {
		// Existing clients match this message verbatim, missing space included.
		writeDetail(w, http.StatusNotFound, fmt.Sprintf("Todo %dnot found", id))
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/{todoID}.
func (c *TodoController) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	var errs ValidationErrors
	id := todoIDFromPath(r, &errs)
	if len(errs) > 0 {
		writeError(w, r, errs)
		return
	}

	deleted, err := c.Store.DeleteByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeDetail(w, http.StatusNotFound, fmt.Sprintf("Todo %d not found", id))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Todo deleted successfully"})
}
