package main

import (
	"encoding/json"
	"fmt"
	"io"

	"pressroom/internal/domains/post"
)

func printReport(w io.Writer, report *post.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report.ToReportResponse())
	default:
		printText(w, report)
		return nil
	}
}

func printText(w io.Writer, report *post.Report) {
	for _, e := range report.Errors {
		if e.Field != "" {
			fmt.Fprintf(w, "FAIL  %s  [%s] %s: %s\n", e.File, e.Rule, e.Field, e.Message)
		} else {
			fmt.Fprintf(w, "FAIL  %s  [%s] %s\n", e.File, e.Rule, e.Message)
		}
	}

	fmt.Fprintf(w, "\n%d files scanned, %d valid, %d failed, %d errors\n",
		report.ScannedFiles, len(report.Posts), report.FailedFiles(), len(report.Errors))
}

// shouldFail applies the pass/fail policy: failOn is a list of rule names,
// or ["all"]. Errors outside the policy are still printed, they just do
// not flip the exit code (warn-only).
func shouldFail(errs []post.ValidationError, failOn []string) bool {
	if len(errs) == 0 {
		return false
	}

	fatal := make(map[post.Rule]bool, len(failOn))
	for _, name := range failOn {
		if name == "all" {
			return true
		}
		fatal[post.Rule(name)] = true
	}

	for _, e := range errs {
		if fatal[e.Rule] {
			return true
		}
	}
	return false
}
