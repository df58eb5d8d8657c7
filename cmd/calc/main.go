package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/codehardth/calc/internal/config"
	"github.com/codehardth/calc/internal/expression"
	"github.com/codehardth/calc/internal/repl"
	"github.com/codehardth/calc/internal/server"
)

type Option struct {
	Eval   string `short:"e" long:"eval" description:"[OPTIONAL] Evaluate a single expression and exit" required:"false"`
	File   string `short:"f" long:"file" description:"[OPTIONAL] Evaluate expressions from a file, one per line" required:"false"`
	Config string `short:"c" long:"config" description:"[OPTIONAL] Shell configuration file (JSON or YAML)" required:"false"`
	Listen string `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port to serve the evaluation API" required:"false"`
	JSON   bool   `long:"json" description:"[OPTIONAL] Print results as JSON"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}

	modes := 0
	for _, active := range []bool{opt.Eval != "", opt.File != "", opt.Listen != ""} {
		if active {
			modes++
		}
	}
	if modes > 1 {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	cfg := config.Default()
	if opt.Config != "" {
		cfg, err = config.Load(opt.Config)
		if err != nil {
			log.Printf("failed to load config: %v", err)
			return 1
		}
	}
	if opt.JSON {
		cfg.JSON = true
	}

	switch {
	case opt.Listen != "":
		if err := serveHTTP(opt.Listen); err != nil {
			log.Printf("failed to serve evaluation API: %v", err)
			return 1
		}
		return 0

	case opt.Eval != "":
		return evalOnce(opt.Eval, cfg.JSON)

	case opt.File != "":
		return evalFile(opt.File, cfg.JSON)

	default:
		return runREPL(cfg)
	}
}

func evalOnce(source string, asJSON bool) int {
	v, err := expression.EvaluateString(source).Unwrap()
	if asJSON {
		if dumpErr := dumpJSON(os.Stdout, evalReport(source, v, err)); dumpErr != nil {
			log.Printf("failed to dump result: %v", dumpErr)
			return 1
		}
		if err != nil {
			return 1
		}
		return 0
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	fmt.Println(expression.FormatValue(v))
	return 0
}

func evalFile(filePath string, asJSON bool) int {
	f, err := os.Open(filePath)
	if err != nil {
		log.Printf("os.Open(%q): %v", filePath, err)
		return 1
	}
	defer f.Close()

	failed := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := expression.EvaluateString(line).Unwrap()
		if err != nil {
			failed = true
		}
		if asJSON {
			if dumpErr := dumpJSON(os.Stdout, evalReport(line, v, err)); dumpErr != nil {
				log.Printf("failed to dump result: %v", dumpErr)
				return 1
			}
		} else if err != nil {
			fmt.Printf("%s = Error: %s\n", line, err)
		} else {
			fmt.Printf("%s = %s\n", line, expression.FormatValue(v))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("failed to read %q: %v", filePath, err)
		return 1
	}

	if failed {
		return 1
	}
	return 0
}

func runREPL(cfg config.Config) int {
	prompt := ""
	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt = cfg.Prompt
		fmt.Println(`calc - arithmetic expression calculator (type "help" for commands)`)
	}

	r := repl.New(os.Stdin, os.Stdout, prompt, cfg.HistorySize)
	if err := r.Run(); err != nil {
		log.Printf("failed to run read loop: %v", err)
		return 1
	}
	return 0
}

func serveHTTP(listen string) error {
	srv := http.Server{
		Handler: server.NewHTTPHandler(),
		Addr:    listen,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("Listen HTTP on %s", listen)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func evalReport(source string, v float64, err error) map[string]any {
	if err != nil {
		return map[string]any{
			"expression": source,
			"error":      err.Error(),
		}
	}
	return map[string]any{
		"expression": source,
		"result":     v,
		"formatted":  expression.FormatValue(v),
	}
}

func dumpJSON(w *os.File, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if isatty.IsTerminal(w.Fd()) {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}
	return nil
}
