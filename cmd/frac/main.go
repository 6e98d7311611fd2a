package main

import (
	"fmt"
	"os"

	"github.com/shabbyrobe/go-frac/internal/logger"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "frac"
	app.Usage = "Exact 32-bit fraction calculator."
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   "error",
			EnvVars: []string{"FRAC_LOG"},
			Usage:   "the log level: error, info, verbose or debug",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter verbose and debug log lines",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "print an identical verbose or debug log line at most this many times",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print results as JSON",
		},
		&cli.BoolFlag{
			Name:  "float",
			Usage: "print fraction results as floats",
		},
		&cli.BoolFlag{
			Name:  "msgpack",
			Usage: "print fraction results as hex encoded msgpack",
		},
		&cli.BoolFlag{
			Name:    "quantize",
			Aliases: []string{"q"},
			Usage:   "read decimal operands through the three-digit float constructor instead of exactly",
		},
	}
	app.Before = setupLogger
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "eval",
			Aliases:   []string{"e"},
			Usage:     "Evaluate a single expression, e.g. '1/2 + 0.25'",
			ArgsUsage: "A OP B",
			Action:    evalCmd,
		},
		{
			Name:      "reduce",
			Aliases:   []string{"r"},
			Usage:     "Print a fraction in lowest terms",
			ArgsUsage: "NUM DEN",
			Action:    reduceCmd,
		},
		{
			Name:      "approx",
			Aliases:   []string{"a"},
			Usage:     "Print the three-digit fraction a float is quantized to",
			ArgsUsage: "FLOAT",
			Action:    approxCmd,
		},
		{
			Name:   "repl",
			Usage:  "Read and evaluate expressions line by line; '_' is the last result",
			Action: replCmd,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(c *cli.Context) error {
	level, err := logger.ParseLevel(c.String("log"))
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetLimiter(c.Int("limit"))
	return logger.SetFilter(c.String("filter"))
}

func outputFromContext(c *cli.Context) output {
	return output{
		json:    c.Bool("json"),
		float:   c.Bool("float"),
		msgpack: c.Bool("msgpack"),
	}
}

func evalCmd(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("eval: expected 'A OP B', found %d args", c.Args().Len())
	}
	args := c.Args().Slice()

	e := &evaluator{quantize: c.Bool("quantize")}
	v, err := e.binary(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return outputFromContext(c).write(c.App.Writer, v)
}

func reduceCmd(c *cli.Context) error {
	if c.Args().Len() < 1 || c.Args().Len() > 2 {
		return fmt.Errorf("reduce: expected 'NUM DEN' or 'NUM/DEN'")
	}
	e := &evaluator{}
	f, err := e.pair(c.Args().Slice())
	if err != nil {
		return err
	}
	return outputFromContext(c).write(c.App.Writer, fracValue(f))
}

func approxCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("approx: expected a single float")
	}
	f, err := approximate(c.Args().First())
	if err != nil {
		return err
	}
	return outputFromContext(c).write(c.App.Writer, fracValue(f))
}

func replCmd(c *cli.Context) error {
	e := &evaluator{quantize: c.Bool("quantize")}
	return repl(e, outputFromContext(c), c.App.Writer)
}
