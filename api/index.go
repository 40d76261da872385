// Package handler is the serverless entry point. The platform calls Handler
// once per invocation; the router and its store are built on the first call
// and reused for as long as the process stays warm.
package handler

import (
	"log"
	"net/http"
	"os"
	"sync"

	"todo-api/app/config"
	"todo-api/app/routes"
	"todo-api/app/services"
)

var (
	routerInstance http.Handler
	once           sync.Once
)

func setup() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Printf("invalid config, using defaults: %v", err)
		cfg = config.Config{RootPath: config.NormalizeRootPath(os.Getenv("API_ROOT_PATH"))}
	}
	routerInstance = routes.NewRouter(cfg, services.NewMemoryTodoStore())
}

// Handler serves one request.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	routerInstance.ServeHTTP(w, r)
}
