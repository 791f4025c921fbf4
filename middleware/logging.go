package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shravanasati/minihttp/request"
	"github.com/shravanasati/minihttp/response"
	"github.com/shravanasati/minihttp/server"
)

// LoggingMiddleware provides basic logging without colors.
func LoggingMiddleware(next server.Handler) server.Handler {
	return server.Handler(func(r *request.Request) (*response.Response, error) {
		now := time.Now()
		resp, err := next(r)
		if err != nil {
			log.Printf("%s %s failed in %s: %v\n", r.Verb, r.Path, time.Since(now), err)
			return resp, err
		}
		log.Printf("%s %s %d in %s\n", r.Verb, r.Path, resp.GetStatusCode(), time.Since(now))
		return resp, nil
	})
}

// LoggingMiddlewareColored provides colored logging.
func LoggingMiddlewareColored(next server.Handler) server.Handler {
	methodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Background(lipgloss.Color("12")).Width(8).Align(lipgloss.Center)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	return server.Handler(func(r *request.Request) (*response.Response, error) {
		now := time.Now()
		resp, err := next(r)

		styledMethod := methodStyle.Render(r.Verb.String())

		if err != nil {
			log.Printf("%s %s %s in %s: %v\n", styledMethod, r.Path, errorStyle.Render("ERR"), time.Since(now), err)
			return resp, err
		}

		// create styled status code
		statusCode := int(resp.GetStatusCode())
		statusStyle := getStatusCodeStyle(statusCode)
		styledStatus := statusStyle.Render(fmt.Sprintf("%d", statusCode))

		log.Printf("%s %s %s in %s\n", styledMethod, r.Path, styledStatus, time.Since(now))

		return resp, nil
	})
}

// getStatusCodeStyle returns a lipgloss style for HTTP status codes
func getStatusCodeStyle(statusCode int) lipgloss.Style {
	switch {
	case statusCode >= 200 && statusCode < 300:
		// 2xx Success - Green
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	case statusCode >= 400 && statusCode < 500:
		// 4xx Client Error - Orange
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	case statusCode >= 500:
		// 5xx Server Error - Bright Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	}
}
