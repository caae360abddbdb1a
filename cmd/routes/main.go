package main

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/gorilla/mux"
	"github.com/olekukonko/tablewriter"

	httpapi "shipperd-backend/internal/api/http"
)

// Prints the full route table. Handlers are never invoked, so the router is
// built with empty dependencies.
func main() {
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:      httpapi.NewAuthMiddleware(nil),
		AuthH:     httpapi.NewAuthHandler(nil, nil),
		Dashboard: httpapi.NewDashboardHandler(nil, nil, nil, nil),
		Admin:     httpapi.NewAdminHandler(nil, nil, nil, nil, nil, nil, nil),
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Methods", "Path", "Handler")

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		if err := table.Append([]string{strings.Join(methods, ","), path, handlerName(route)}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to walk routes: %v\n", err)
		os.Exit(1)
	}

	if err := table.Render(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render table: %v\n", err)
		os.Exit(1)
	}
}

func handlerName(route *mux.Route) string {
	handler := route.GetHandler()
	if handler == nil {
		return ""
	}
	name := runtime.FuncForPC(reflect.ValueOf(handler).Pointer()).Name()
	// Keep only the trailing package.Func part.
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
