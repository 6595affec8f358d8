package main

import (
	"context"
	"flag"
	"fmt"

	"bytemomo/remora/internal/adapter/jsonreport"
	"bytemomo/remora/internal/adapter/logger"
	"bytemomo/remora/internal/adapter/markdownreport"
	"bytemomo/remora/internal/adapter/yamlconfig"
	"bytemomo/remora/internal/engine"
	"bytemomo/remora/internal/flagsource"
	"bytemomo/remora/internal/reporter"

	"github.com/sirupsen/logrus"
)

type options struct {
	configPath   string
	inputFile    string
	outputPath   string
	markdownPath string
	logFile      string
	verbose      bool
}

func parseArgs() options {
	var opts options
	flag.StringVar(&opts.configPath, "c", "", "Path to targets YAML config")
	flag.StringVar(&opts.configPath, "config", "", "Path to targets YAML config")
	flag.StringVar(&opts.inputFile, "f", "", "Flag file path (one flag per line)")
	flag.StringVar(&opts.inputFile, "input-file", "", "Flag file path (one flag per line)")
	flag.StringVar(&opts.outputPath, "o", "", "Write raw results to this JSON file")
	flag.StringVar(&opts.outputPath, "output", "", "Write raw results to this JSON file")
	flag.StringVar(&opts.markdownPath, "m", "", "Write a per-target summary to this Markdown file")
	flag.StringVar(&opts.markdownPath, "markdown", "", "Write a per-target summary to this Markdown file")
	flag.StringVar(&opts.logFile, "log-file", "", "Tee structured logs to this file")
	flag.BoolVar(&opts.verbose, "v", false, "Raise log verbosity")
	flag.BoolVar(&opts.verbose, "verbose", false, "Raise log verbosity")
	flag.Parse()
	return opts
}

func main() {
	opts := parseArgs()

	level := logrus.InfoLevel
	if opts.verbose {
		level = logrus.DebugLevel
	}
	logger.SetLoggerToStructured(level, opts.logFile)

	if err := run(opts); err != nil {
		logrus.WithError(err).Fatal("Failed to run submission")
	}
}

func run(opts options) error {
	log := logrus.WithField("component", "remora")

	cfg, err := yamlconfig.Load(log, opts.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	eng, err := engine.New(log, *cfg)
	if err != nil {
		return err
	}

	src := flagsource.Source{Log: log}
	flags := src.Load(opts.inputFile)
	if len(flags) == 0 {
		log.Error("No valid flags to submit, exiting")
		return nil
	}

	results := eng.SubmitAll(context.Background(), flags)

	if opts.outputPath != "" {
		path, err := jsonreport.New(opts.outputPath).Write(results)
		if err != nil {
			return fmt.Errorf("cannot write results: %w", err)
		}
		log.WithField("path", path).Info("Results saved")
	}

	if opts.markdownPath != "" {
		path, err := markdownreport.New(opts.markdownPath).Write(results)
		if err != nil {
			return fmt.Errorf("cannot write summary report: %w", err)
		}
		log.WithField("path", path).Info("Summary report saved")
	}

	fmt.Printf("\n%s\n", reporter.Summarize(results))
	return nil
}
