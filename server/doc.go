// Package server exposes the k-th smallest query over HTTP using Gin,
// served over HTTP/1.1 and h2c.
//
// Routes:
//
//   - GET  /find-k-min?path=P&n=K (or a JSON body {"path","n"})
//   - POST /find-k-min with a JSON body
//   - GET  /health, /info, /version
//
// Successful queries answer {"data":{"n","result","totalNumbers"}}. Failures
// carry the status and {"error":{...}} body of their errors.AppError.
//
// The middleware stack (server/middleware) runs at the http.Handler level:
// request ID, tracing, request metrics, request logging, panic recovery,
// CORS and the body size limit.
package server
