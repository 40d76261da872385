package routes

import (
	"net/http"

	"todo-api/app/config"
	"todo-api/app/controllers"
	"todo-api/app/middleware"
	"todo-api/app/services"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, todoController *controllers.TodoController, rootController *controllers.RootController) {
	router.HandleFunc("/", rootController.Root).Methods(http.MethodGet)
	router.HandleFunc("/hello", rootController.Hello).Methods(http.MethodGet)
	router.HandleFunc("/version", rootController.GetVersion).Methods(http.MethodGet)

	for _, path := range []string{"/todos", "/todos/"} {
		router.HandleFunc(path, todoController.GetTodos).Methods(http.MethodGet)
		router.HandleFunc(path, todoController.CreateTodo).Methods(http.MethodPost)
	}
	router.HandleFunc("/todos/{todoID}", todoController.GetTodoByID).Methods(http.MethodGet)
	router.HandleFunc("/todos/{todoID}", todoController.UpdateTodo).Methods(http.MethodPut)
	router.HandleFunc("/todos/{todoID}", todoController.DeleteTodo).Methods(http.MethodDelete)
}

// NewRouter builds the full HTTP handler around a single store. All routes
// are mounted under cfg.RootPath when it is set.
func NewRouter(cfg config.Config, store services.TodoStore) http.Handler {
	router := mux.NewRouter()
	setFallbacks(router)

	api := router
	if cfg.RootPath != "" {
		api = router.PathPrefix(cfg.RootPath).Subrouter()
		setFallbacks(api)
	}

	RegisterRoutes(api, controllers.NewTodoController(store), controllers.NewRootController(config.Version))

	return middleware.Chain(router, middleware.RequestID, middleware.Logging, middleware.ProcessTime)
}

func setFallbacks(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(controllers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(controllers.MethodNotAllowed)
}
