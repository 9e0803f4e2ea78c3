//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var platBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "plat-e2e-*")
	if err != nil {
		panic(err)
	}

	platBinary = filepath.Join(tmpDir, "plat")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", platBinary, "./cmd/plat")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build plat binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Dir(platBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	// Keep runtime probes inside the sandbox.
	builtin := filepath.Join(env.WorkDir, ".opt")
	dynamic := filepath.Join(env.WorkDir, ".platforms")
	for _, dir := range []string{builtin, dynamic} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	env.Setenv("PLAT_INSTALL_ROOTS", builtin)
	env.Setenv("PLAT_DYNAMIC_INSTALL_ROOT", dynamic)

	return nil
}
