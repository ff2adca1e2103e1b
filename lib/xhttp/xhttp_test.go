package xhttp_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/deck/lib/xhttp"
)

func testLogger() (*cmdlog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return cmdlog.New(xos.NewEnv(nil), buf), buf
}

func TestHandlerFuncAdapter(t *testing.T) {
	t.Parallel()

	clog, logs := testLogger()
	h := xhttp.Log(clog, xhttp.HandlerFuncAdapter{
		Log: clog,
		Func: func(w http.ResponseWriter, r *http.Request) error {
			switch r.URL.Path {
			case "/missing":
				return xhttp.Errorf(http.StatusNotFound, "no such theme", "theme %q not found", "x")
			case "/boom":
				return errors.New("boom")
			}
			xhttp.HTML(w, http.StatusOK, []byte("<!doctype html>"))
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "no such theme"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal Server Error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<!doctype html>", rec.Body.String())

	assert.Contains(t, logs.String(), "GET /missing 404")
	assert.Contains(t, logs.String(), "boom")
}

func TestErrorIs(t *testing.T) {
	t.Parallel()

	err := xhttp.ErrorWrap(http.StatusBadRequest, nil, io.EOF)
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, xhttp.Error{Code: http.StatusBadRequest, Resp: "Bad Request", Err: io.EOF}))
	assert.False(t, errors.Is(err, xhttp.Error{Code: http.StatusNotFound, Resp: "Bad Request", Err: io.EOF}))
}

func TestLogRecoversPanic(t *testing.T) {
	t.Parallel()

	clog, logs := testLogger()
	h := xhttp.Log(clog, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("the sky is falling")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "caught panic")
}

func TestServeShutdown(t *testing.T) {
	t.Parallel()

	clog, _ := testLogger()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	s := xhttp.NewServer(clog.Warn, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xhttp.JSON(w, http.StatusOK, nil)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- xhttp.Serve(ctx, time.Second, s, l)
	}()

	resp, err := http.Get("http://" + l.Addr().String())
	assert.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status": "OK"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second * 5):
		t.Fatal("server did not shut down")
	}
}
