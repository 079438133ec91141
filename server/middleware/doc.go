// Package middleware provides net/http middleware for the kthmin server.
package middleware
