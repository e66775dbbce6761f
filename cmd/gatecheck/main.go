package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/msageha/gatecheck/internal/format"
	"github.com/msageha/gatecheck/internal/logging"
	"github.com/msageha/gatecheck/internal/model"
	"github.com/msageha/gatecheck/internal/report"
	"github.com/msageha/gatecheck/internal/setup"
	"github.com/msageha/gatecheck/internal/sonar"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "init":
		runInit(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "issues":
		runIssues(os.Args[2:])
	case "rule":
		runRule(os.Args[2:])
	case "version":
		fmt.Printf("gatecheck %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Println(`gatecheck - wait for an analysis to finish and evaluate its quality gate

Usage:
  gatecheck init [dir]               Write a default gatecheck.yaml
  gatecheck check [options]          Wait for the analysis, print gate and new issues
  gatecheck issues [options]         Print the new issues of the last analysis
  gatecheck rule [options] <key>     Print the metadata of one rule
  gatecheck version                  Print the version

Options:
  -config path   Config file (default gatecheck.yaml)
  -json          Emit JSON instead of text

Exit codes: 0 gate passed, 1 gate failed, 2 error.`)
}

func fatalf(formatStr string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "gatecheck: "+formatStr+"\n", args...)
	os.Exit(2)
}

// signalContext returns a context cancelled by SIGINT/SIGTERM, so an
// interrupted run aborts the poller instead of hanging out its budget.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadEnv(fs *flag.FlagSet, args []string) (model.Config, *zap.Logger) {
	configPath := fs.String("config", setup.ConfigFileName, "config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg, logger
}

func runInit(args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path, err := setup.Init(dir)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s\n", path)
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	cfg, logger := loadEnv(fs, args)
	defer logger.Sync()

	ctx, stop := signalContext()
	defer stop()

	rep, err := report.Wait(ctx, cfg.Project.WorkDir, cfg.Report.WaitTimeout())
	if err != nil {
		fatalf("%v", err)
	}

	client := sonar.New(cfg, logger)
	analysisID, err := client.WaitForAnalysis(ctx, rep.CeTaskID)
	if err != nil {
		fatalf("%v", err)
	}
	gate, err := client.QualityGate(ctx, analysisID)
	if err != nil {
		fatalf("%v", err)
	}
	issues, err := client.NewIssues(ctx, rep.ProjectKey, cfg.Project.Branch)
	if err != nil {
		fatalf("%v", err)
	}

	if *jsonOut {
		printJSON(struct {
			Gate   *model.QualityGate `json:"quality_gate"`
			Issues []model.Issue      `json:"issues"`
		}{gate, issues})
	} else {
		out, err := format.Render(gate, issues)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Print(out)
	}

	if gate.Status == model.GateError {
		os.Exit(1)
	}
}

func runIssues(args []string) {
	fs := flag.NewFlagSet("issues", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	cfg, logger := loadEnv(fs, args)
	defer logger.Sync()

	ctx, stop := signalContext()
	defer stop()

	rep, err := report.Load(cfg.Project.WorkDir)
	if err != nil {
		fatalf("%v", err)
	}

	client := sonar.New(cfg, logger)
	issues, err := client.NewIssues(ctx, rep.ProjectKey, cfg.Project.Branch)
	if err != nil {
		fatalf("%v", err)
	}

	if *jsonOut {
		printJSON(issues)
		return
	}
	for _, issue := range issues {
		loc := issue.File
		if loc == "" {
			loc = issue.ComponentKey
		}
		if issue.Line != nil {
			loc = fmt.Sprintf("%s:%d", loc, *issue.Line)
		}
		fmt.Printf("%-8s %s  %s [%s]\n", issue.Severity, loc, issue.Message, issue.RuleKey)
	}
}

func runRule(args []string) {
	fs := flag.NewFlagSet("rule", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	cfg, logger := loadEnv(fs, args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fatalf("usage: gatecheck rule [options] <rule key>")
	}
	ruleKey := fs.Arg(0)

	ctx, stop := signalContext()
	defer stop()

	client := sonar.New(cfg, logger)
	rule, err := client.Rule(ctx, ruleKey)
	if err != nil {
		fatalf("%v", err)
	}

	if *jsonOut {
		printJSON(rule)
		return
	}
	if rule.Key == "" {
		fmt.Printf("%s: no metadata available\n", ruleKey)
		return
	}
	fmt.Printf("%s (%s) %s\n", rule.Key, rule.Type, rule.Name)
	if rule.DebtRemFnBaseEffort != "" {
		fmt.Printf("remediation: %s %s\n", rule.DebtRemFnType, rule.DebtRemFnBaseEffort)
	}
	if rule.Description != "" {
		fmt.Printf("\n%s\n", rule.Description)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("encode output: %v", err)
	}
}
