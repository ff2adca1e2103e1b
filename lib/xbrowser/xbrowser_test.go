package xbrowser_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/deck/lib/xbrowser"
)

func TestOpenDisabled(t *testing.T) {
	t.Parallel()

	env := xos.NewEnv(nil)
	env.Setenv("BROWSER", "0")
	assert.NoError(t, xbrowser.Open(context.Background(), env, "http://localhost:1"))
}

func TestOpenCustomBrowser(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	out := filepath.Join(t.TempDir(), "url")
	env := xos.NewEnv(nil)
	env.Setenv("BROWSER", "printf %s >"+out)

	err := xbrowser.Open(context.Background(), env, "http://localhost:1/?a=b")
	assert.NoError(t, err)
	b, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:1/?a=b", string(b))
}
