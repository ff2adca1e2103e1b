package xhttp

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xjson"
)

// Error carries the status code and JSON body a HandlerFunc failure is
// answered with.
type Error struct {
	Code int
	Resp interface{}
	Err  error
}

// Errorf returns an Error for code. A nil resp becomes http.StatusText(code).
func Errorf(code int, resp interface{}, msg string, v ...interface{}) error {
	return ErrorWrap(code, resp, fmt.Errorf(msg, v...))
}

func ErrorWrap(code int, resp interface{}, err error) error {
	if resp == nil {
		resp = http.StatusText(code)
	}
	return Error{code, resp, err}
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Is(err error) bool {
	e2, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Code == e2.Code && e.Resp == e2.Resp && errors.Is(e.Err, e2.Err)
}

func (e Error) Error() string {
	return fmt.Sprintf("http error with code %v and resp %#v: %v", e.Code, e.Resp, e.Err)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// HandlerFuncAdapter serves a HandlerFunc. Errors are logged to Log, 4xx as
// warnings and everything else as errors, and answered with {"error": resp}.
// Errors not built with Errorf or ErrorWrap are answered with a 500.
type HandlerFuncAdapter struct {
	Log  *cmdlog.Logger
	Func HandlerFunc
}

func (a HandlerFuncAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := a.Func(w, r)
	if err != nil {
		handleError(a.Log, w, err)
	}
}

func handleError(clog *cmdlog.Logger, w http.ResponseWriter, err error) {
	var herr Error
	if !errors.As(err, &herr) {
		herr = ErrorWrap(http.StatusInternalServerError, nil, err).(Error)
	}

	var logger *log.Logger
	switch {
	case 400 <= herr.Code && herr.Code < 500:
		logger = clog.Warn
	case 500 <= herr.Code && herr.Code < 600:
		logger = clog.Error
	default:
		logger = clog.Error
		clog.Error.Printf("unexpected non error http status code %d with resp: %#v", herr.Code, herr.Resp)
		herr.Code = http.StatusInternalServerError
		herr.Resp = http.StatusText(herr.Code)
	}
	logger.Printf("error handling http request: %v", err)

	if ww, ok := w.(writtenResponseWriter); ok && ww.Written() {
		// Headers are gone, the client already has a partial response.
		return
	}

	JSON(w, herr.Code, map[string]interface{}{
		"error": herr.Resp,
	})
}

type writtenResponseWriter interface {
	Written() bool
}

// JSON writes v as the response body. A nil v writes {"status": StatusText(code)}.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	if v == nil {
		v = map[string]interface{}{
			"status": http.StatusText(code),
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(xjson.MarshalIndent(v)))
}

// HTML writes a complete HTML document.
func HTML(w http.ResponseWriter, code int, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write(doc)
}
