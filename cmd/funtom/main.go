// Command funtom greets a name and prints today's date and a request id,
// composing Maybe and IO values into one program that runs at the end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2"
	"go.uber.org/zap"

	"github.com/on-the-ground/funtom_go/effects"
	"github.com/on-the-ground/funtom_go/effio"
	"github.com/on-the-ground/funtom_go/internal/config"
	"github.com/on-the-ground/funtom_go/internal/logging"
	"github.com/on-the-ground/funtom_go/maybe"
	"github.com/on-the-ground/funtom_go/pure"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred log flushing happens before
// main exits.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("funtom", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to funtom.yaml")
	name := flags.String("name", "", "name to greet")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if fd, ok := stderr.(effects.FileDescriptor); ok && cfg.Log.Encoding == logging.EncodingJSON && effects.IsTerminal(fd).Run() {
		cfg.Log.Encoding = logging.EncodingConsole
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logging.Sync(logger)
	defer logging.Set(logger)()

	if err := program(cfg, logger, stdout, *name).Run(); err != nil {
		logger.Error("funtom failed", zap.Error(err))
		return 1
	}
	return 0
}

// program builds the whole run as one IO. Nothing is printed before Run.
func program(cfg config.Config, logger *zap.Logger, out io.Writer, name string) effio.IO[error] {
	greeting := pure.TableizeI1O1(greet, cfg.Memo.MaxTableSize)
	rng := effects.NewRand(cfg.Random.Seed)

	hello := effects.Println(out, greeting(maybe.MapNonZero(maybe.Just(name), strings.TrimSpace)))
	today := effio.Bind(effects.Today(time.Now, time.Local), func(d date.Date) effio.IO[error] {
		return effects.Println(out, "today is", d)
	})
	requestID := effio.Bind(effects.NewUUID(), func(id uuid.UUID) effio.IO[error] {
		return effio.Then(
			effects.Log(logger, effects.LogDebug, "request id", map[string]any{"id": id.String()}),
			effects.Println(out, "request", id),
		)
	})
	lucky := effio.Bind(effects.IntN(rng, 100), func(n int) effio.IO[error] {
		return effects.Println(out, "lucky number", n)
	})

	return firstError(hello, today, requestID, lucky)
}

func greet(name maybe.Maybe[string]) string {
	return "hello, " + name.GetOrElse("stranger")
}

// firstError runs steps in order and stops at the first failure.
func firstError(steps ...effio.IO[error]) effio.IO[error] {
	return effio.New(func() error {
		for _, step := range steps {
			if err := step.Run(); err != nil {
				return err
			}
		}
		return nil
	})
}
