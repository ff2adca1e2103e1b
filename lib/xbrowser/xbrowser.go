// Package xbrowser opens the live preview in a browser.
package xbrowser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"oss.terrastruct.com/xos"
)

// Open opens url with $BROWSER when set, the system default otherwise.
// BROWSER=0 disables opening anything.
func Open(ctx context.Context, env *xos.Env, url string) error {
	browserEnv := env.Getenv("BROWSER")
	switch browserEnv {
	case "0", "false":
		return nil
	case "":
		return browser.OpenURL(url)
	}
	browserSh := fmt.Sprintf("%s \"$1\"", browserEnv)
	cmd := exec.CommandContext(ctx, "sh", "-c", browserSh, "--", url)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
	}
	return nil
}
