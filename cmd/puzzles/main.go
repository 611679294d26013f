package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/puzzles/internal/application"
	"github.com/eugenenazirov/puzzles/internal/config"
	"github.com/eugenenazirov/puzzles/internal/hashing"
	"github.com/eugenenazirov/puzzles/internal/logging"
	"github.com/eugenenazirov/puzzles/internal/puzzles"
	"github.com/eugenenazirov/puzzles/internal/ranges"
	"github.com/eugenenazirov/puzzles/internal/strutil"
)

var signalNotify = signal.Notify

type cli struct {
	app *kingpin.Application

	configFile     *string
	inputDir       *string
	logLevel       *string
	port           *string
	rateLimitRPS   *float64
	rateLimitBurst *int

	solve     *kingpin.CmdClause
	solveDay  *int
	solveFile *string
	skipCheck *bool

	check    *kingpin.CmdClause
	checkDay *int

	list *kingpin.CmdClause

	hash     *kingpin.CmdClause
	hashText *string

	overlap      *kingpin.CmdClause
	overlapFirst *string
	overlapOther *string

	common       *kingpin.CmdClause
	commonText   *string
	commonOthers *[]string

	serve *kingpin.CmdClause
}

func newCLI() *cli {
	app := kingpin.New("puzzles", "Advent of Code puzzle solvers")
	c := &cli{app: app}

	c.configFile = app.Flag("config", "Path to YAML configuration file").String()
	c.inputDir = app.Flag("input-dir", "Directory holding DayNN.txt puzzle inputs").String()
	c.logLevel = app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	c.port = app.Flag("port", "HTTP port exposed by the serve command").String()
	c.rateLimitRPS = app.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	c.rateLimitBurst = app.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	c.solve = app.Command("solve", "Solve both parts of a day and print the answers")
	c.solveDay = c.solve.Arg("day", "Puzzle day").Required().Int()
	c.solveFile = c.solve.Flag("input", "Read the input from this file instead of the input directory").Short('i').String()
	c.skipCheck = c.solve.Flag("skip-check", "Do not replay the sample before solving").Bool()

	c.check = app.Command("check", "Replay the worked samples")
	c.checkDay = c.check.Arg("day", "Puzzle day; all days when omitted").Int()

	c.list = app.Command("list", "List the solved days")

	c.hash = app.Command("hash", "Print the MD5 digest of a string")
	c.hashText = c.hash.Arg("text", "Text to hash").Required().String()

	c.overlap = app.Command("overlap", "Report whether one lo-hi range contains all or any of another")
	c.overlapFirst = c.overlap.Arg("outer", "Range such as 2-8").Required().String()
	c.overlapOther = c.overlap.Arg("inner", "Range such as 3-7").Required().String()

	c.common = app.Command("common", "Print the first character shared by all strings; one string is split into halves")
	c.commonText = c.common.Arg("text", "String scanned from the left").Required().String()
	c.commonOthers = c.common.Arg("others", "Strings that must also contain the character").Strings()

	c.serve = app.Command("serve", "Serve the solvers over HTTP")

	return c
}

func (c *cli) overrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: *c.configFile,
		Port:       c.port,
		InputDir:   c.inputDir,
		LogLevel:   c.logLevel,
	}
	if *c.rateLimitRPS >= 0 {
		overrides.RateLimitRPS = c.rateLimitRPS
	}
	if *c.rateLimitBurst >= 0 {
		overrides.RateLimitBurst = c.rateLimitBurst
	}
	return overrides
}

func main() {
	c := newCLI()
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	cfg, err := config.Load(c.overrides())
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if command == c.serve.FullCommand() {
		serve(cfg, logger)
		return
	}

	if err := c.run(command, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}

// run executes the one-shot commands, writing answers to out.
func (c *cli) run(command string, cfg config.Config, logger *zap.Logger, out io.Writer) error {
	runner := application.NewRunner(puzzles.Default(), application.NewStore(cfg), logger)

	switch command {
	case c.solve.FullCommand():
		answer, err := runner.Solve(*c.solveDay, *c.solveFile, cfg.VerifySamples && !*c.skipCheck)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answer.Part1)
		fmt.Fprintln(out, answer.Part2)

	case c.check.FullCommand():
		var err error
		if *c.checkDay == 0 {
			err = runner.CheckAll()
		} else {
			err = runner.Check(*c.checkDay)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")

	case c.list.FullCommand():
		for _, p := range runner.Puzzles() {
			fmt.Fprintf(out, "%2d  %s\n", p.Day, p.Name)
		}

	case c.hash.FullCommand():
		fmt.Fprintln(out, hashing.MD5Hex(*c.hashText))

	case c.overlap.FullCommand():
		outer, err := ranges.Parse(*c.overlapFirst)
		if err != nil {
			return err
		}
		inner, err := ranges.Parse(*c.overlapOther)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "contains all: %t\n", ranges.ContainsAll(outer, inner))
		fmt.Fprintf(out, "contains any: %t\n", ranges.ContainsAny(outer, inner))

	case c.common.FullCommand():
		text, others := *c.commonText, *c.commonOthers
		if len(others) == 0 {
			var second string
			text, second = strutil.Halves(text)
			others = []string{second}
		}
		char, err := strutil.FirstCommonChar(text, others...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, char)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func serve(cfg config.Config, logger *zap.Logger) {
	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
