package models

// Todo represents a stored todo item.
type Todo struct {
	ID          int    `json:"id"`
	Task        string `json:"task"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoInput holds the client-supplied fields used to create or update a todo.
type TodoInput struct {
	Task        string `json:"task"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
