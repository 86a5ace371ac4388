package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Environment variables read as defaults and passed to extensions.
const (
	EnvEvidence = "PCHART_EVIDENCE"
	EnvCurrency = "PCHART_CURRENCY"
	EnvVerbose  = "PCHART_VERBOSE"
)

// RunExtension attempts to find and execute an external pchart-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "pchart-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debugf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Global flags are passed as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvEvidence+"="+os.Getenv(EnvEvidence))
	cmd.Env = append(cmd.Env, EnvCurrency+"="+portfolioCurrency())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
