// Command go-rangepicker is a date and date range picker.
//
// Without a subcommand it opens the picker window. The print subcommand draws a
// calendar page in the terminal and export writes a range as an iCalendar event.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-rangepicker/internal/config"
)

func main() {
	os.Exit(runMain())
}

// runMain executes the command tree and maps its outcome to an exit code.
// Deferred calls run before main exits.
func runMain() int {
	// SIGINT and SIGTERM cancel the context seen by every command.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	defer closeLog()

	if err == nil {
		return config.ExitCodeSuccess
	}
	slog.Error(config.ErrAppFailed,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyError, err,
	)
	fmt.Fprintln(os.Stderr, "Error:", err)
	return config.ExitCodeError
}

// logCloser is the log file opened by setupLogging, if any.
var logCloser io.Closer

func closeLog() {
	if logCloser == nil {
		return
	}
	_ = logCloser.Close()
	logCloser = nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput, config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
}

// logStartupInfo records the build and the host, for bug reports.
func logStartupInfo() {
	build := slog.Group(config.LogKeyBuild,
		slog.String(config.LogKeyApp, config.AppName),
		slog.String(config.LogKeyVersion, config.Version),
		slog.String(config.LogKeyCommit, config.Commit),
		slog.String(config.LogKeyBuilt, config.Date),
		slog.String(config.LogKeyGoVer, runtime.Version()),
	)
	env := slog.Group(config.LogKeyEnv,
		slog.String(config.LogKeyOS, runtime.GOOS),
		slog.String(config.LogKeyArch, runtime.GOARCH),
		slog.Int(config.LogKeyPID, os.Getpid()),
	)
	slog.Info(config.MsgAppStarting, config.LogKeyComponent, config.CompMain, build, env)
}

// setupLogging installs a JSON slog logger writing to console and to a log
// file in the user cache directory. The returned closer is nil when the file
// could not be opened.
func setupLogging(debugMode bool, console io.Writer) io.Closer {
	out := console
	file := openLogFile()
	if file != nil {
		out = io.MultiWriter(console, file)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debugMode {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, opts)))

	if file == nil {
		return nil
	}
	return file
}

// openLogFile truncates the log of the previous run. Failures are reported on
// stderr and leave logging on the console only.
func openLogFile() *os.File {
	path, err := logFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, "", err)
		return nil
	}
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, path, err)
		return nil
	}
	return f
}

// logFilePath returns <cache dir>/<app id>/<log file>, creating the directory
// with owner-only permissions.
func logFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}
	dir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return filepath.Join(dir, config.LogFileName), nil
}
