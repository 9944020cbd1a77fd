// Command scicalc is a terminal keypad for the scicalc expression engine.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"nickandperla.net/scicalc/internal/config"
	"nickandperla.net/scicalc/internal/logs"
	"nickandperla.net/scicalc/pkg/scicalc"
)

func main() {
	var (
		configPath = flag.String("config", "", "CUE config file")
		evalStr    = flag.String("e", "", "Evaluate an expression and print the result")
		dbPath     = flag.String("db", "", "SQLite database path (overrides config; \"-\" keeps the session in memory)")
		sessionID  = flag.String("session", "", "Session id to resume (default: last used)")
		newSession = flag.Bool("new-session", false, "Start a fresh session")
		deg        = flag.Bool("deg", false, "Start in degrees mode")
		rad        = flag.Bool("rad", false, "Start in radians mode")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error")
		logFile    = flag.String("log-file", "", "Append JSON log records to this file")
		journal    = flag.Bool("journal", false, "Send log records to the systemd journal")
	)

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if *dbPath != "" {
		cfg.DB = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *journal {
		cfg.Journal = true
	}
	switch {
	case *deg && *rad:
		fmt.Fprintln(os.Stderr, "Use only one of -deg and -rad")
		os.Exit(1)
	case *deg:
		cfg.Angle = "deg"
	case *rad:
		cfg.Angle = "rad"
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	angle, ok := scicalc.ParseAngleMode(cfg.Angle)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown angle mode: %s (use deg or rad)\n", cfg.Angle)
		os.Exit(1)
	}
	opts := []scicalc.Option{
		scicalc.WithAngleMode(angle),
		scicalc.WithLogger(logger),
	}
	if cfg.Decimal != "" {
		opts = append(opts, scicalc.WithDecimalSeparator([]rune(cfg.Decimal)[0]))
	}

	// One-shot evaluation never touches the session store
	if *evalStr != "" {
		os.Exit(evalOnce(*evalStr, angle, opts))
	}

	sess, err := openSession(cfg.DB, *sessionID, *newSession, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	engine := scicalc.New(opts...)
	sess.restore(engine)

	runREPL(engine, sess)
	sess.save(engine)
}

// evalOnce prints the value of expr and returns the process exit code.
func evalOnce(expr string, angle scicalc.AngleMode, opts []scicalc.Option) int {
	if p := scicalc.Preview(expr, opts...); p != "" {
		fmt.Println(p)
		return 0
	}
	if _, err := scicalc.Evaluate(expr, angle); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, "Error: incomplete expression or undefined result")
	}
	return 1
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, ok := logs.ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	opts := logs.Options{Level: level, Journal: cfg.Journal}
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		opts.File = f
		closeLog = func() { f.Close() }
	}
	return logs.New(os.Stderr, opts), closeLog, nil
}
