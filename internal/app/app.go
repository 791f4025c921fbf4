// Package app registers the server's routes.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/shravanasati/minihttp/files"
	"github.com/shravanasati/minihttp/request"
	"github.com/shravanasati/minihttp/response"
	"github.com/shravanasati/minihttp/router"
)

// NewRouter returns a router with every route registered, in precedence order.
func NewRouter() *router.Router {
	app := router.NewRouter()

	app.Get("/", root)
	app.Get("/user-agent", userAgent)
	app.Get("/echo/*text", echo)
	app.Get("/files/*name", readFile)
	app.Post("/files/*name", writeFile)

	return app
}

func notFound() *response.Response {
	return response.NewStatusResponse(response.StatusNotFound)
}

func root(r *request.Request, _ router.Params, _ files.Dir) (*response.Response, error) {
	return response.NewStatusResponse(response.StatusOK), nil
}

func userAgent(r *request.Request, _ router.Params, _ files.Dir) (*response.Response, error) {
	ua, err := r.RequireHeader("User-Agent")
	if err != nil {
		return nil, err
	}
	return response.NewTextResponse(ua), nil
}

func echo(r *request.Request, p router.Params, _ files.Dir) (*response.Response, error) {
	return response.NewTextResponse(p["text"]), nil
}

func readFile(r *request.Request, p router.Params, dir files.Dir) (*response.Response, error) {
	if dir == nil {
		return notFound(), nil
	}

	data, err := dir.ReadFile(p["name"])
	if err != nil {
		// missing and unreadable files look the same to the client
		return notFound(), nil
	}
	return response.NewOctetResponse(data), nil
}

func writeFile(r *request.Request, p router.Params, dir files.Dir) (*response.Response, error) {
	if dir == nil {
		return notFound(), nil
	}

	body, err := r.RequireBody()
	if err != nil {
		return nil, err
	}

	name := p["name"]
	if err := dir.WriteFile(name, []byte(body)); err != nil {
		if errors.Is(err, files.ErrInvalidName) {
			log.Printf("refusing to write %q: %v\n", name, err)
			return notFound(), nil
		}
		return nil, fmt.Errorf("writing %q: %w", name, err)
	}

	return response.NewBaseResponse().WithStatusCode(response.StatusCreated), nil
}
