package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"go.uber.org/zap"

	"github.com/admitkit/promptext"
	"github.com/admitkit/promptext/document"
	"github.com/admitkit/promptext/table"
)

var (
	version string = "dev"
	cli     struct {
		Version       kong.VersionFlag `help:"Print version and exit."`
		Config        string           `short:"c" type:"existingfile" help:"YAML config file."`
		Output        string           `short:"o" placeholder:"FILE" help:"CSV file to write (default prompts.csv)."`
		AdvisoryLabel string           `help:"Bold label marking advisory paragraphs."`
		NoHeader      bool             `help:"Omit the header row."`
		Verbose       bool             `short:"v" help:"Log diagnostics as they are raised."`
		Debug         bool             `help:"Dump the parsed record tree to stderr."`
		Input         string           `arg:"" type:"existingfile" help:"Markdown document to extract prompts from."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Extract application essay prompts from a markdown document into a CSV table.`),
		kong.Vars{"version": version},
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	output := firstOf(cli.Output, cfg.Output, "prompts.csv")

	logger := zap.NewNop()
	if cli.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	options := []promptext.Option{promptext.Logger(logger)}
	if label := firstOf(cli.AdvisoryLabel, cfg.AdvisoryLabel); label != "" {
		options = append(options, promptext.AdvisoryLabel(label))
	}
	parser, err := promptext.New(options...)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(cli.Input)
	if err != nil {
		return err
	}
	res, err := parser.Extract(document.Parse(source))
	if err != nil {
		return err
	}
	if cli.Debug {
		repr.New(os.Stderr).Println(res.Groups)
	}
	records := promptext.Flatten(res.Groups)

	header := promptext.Header
	if cli.NoHeader || cfg.NoHeader {
		header = nil
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(f, header, promptext.Rows(records)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %d records, %d diagnostics\n", output, len(records), len(res.Diagnostics))
	return nil
}
