// Command report runs the pipeline once against the configured extracts
// and prints both role views as plain text tables.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"lrslens/adapters/extract"
	"lrslens/app"
	"lrslens/domain/report"
	"lrslens/internal"
	"lrslens/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	loader := extract.NewLoader(appConfig.Data, logger)
	snap, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load input extracts: %v", err)
	}

	reports := app.NewReportService(appConfig.Analysis, logger)

	admin := reports.AdminOverview(snap)
	printAdmin(admin)

	learner, err := reports.LearnerOverview(snap)
	if err != nil {
		log.Fatalf("Failed to compose learner view: %v", err)
	}
	printLearner(learner)
}

func printAdmin(v report.AdminOverview) {
	fmt.Println("== Admin overview ==")
	fmt.Printf("statements: %d  modules: %d  users: %d\n\n", v.Totals.Statements, v.Totals.Modules, v.Totals.Users)

	w := newTable()
	fmt.Fprintln(w, "MODULE\tSTATEMENTS")
	for _, row := range v.ModuleCounts {
		fmt.Fprintf(w, "%s\t%d\n", row.Module, row.Count)
	}
	w.Flush()
	fmt.Println()

	w = newTable()
	fmt.Fprint(w, "MODULE")
	for _, verb := range v.VerbPivot.Verbs {
		fmt.Fprintf(w, "\t%s", verb)
	}
	fmt.Fprintln(w)
	for _, row := range v.VerbPivot.Rows {
		fmt.Fprint(w, row.Module)
		for _, count := range row.Counts {
			fmt.Fprintf(w, "\t%d", count)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}

func printLearner(v report.LearnerOverview) {
	fmt.Println("== Learner overview ==")
	for _, notice := range v.Notices {
		fmt.Printf("notice: %s\n", notice)
	}

	if !v.Funnel.Empty() {
		w := newTable()
		fmt.Fprintln(w, "QUESTION\tATTEMPTS\tANSWERED")
		for _, row := range v.Funnel.Rows {
			fmt.Fprintf(w, "%s\t%d\t%d\n", row.Activity, row.Attempts, row.Answered)
		}
		w.Flush()
		fmt.Println()
	}

	if !v.Deltas.Empty() {
		w := newTable()
		fmt.Fprintln(w, "DIAGNOSTIC\tFINAL\tDELTA")
		for _, row := range v.Deltas.Rows {
			fmt.Fprintf(w, "%.1f\t%.1f\t%+.1f\n", row.Diagnostic, row.Final, row.Delta)
		}
		w.Flush()
		if v.Deltas.MeanValid {
			fmt.Printf("mean delta: %+.1f\n", v.Deltas.MeanDelta)
		}
		if v.Deltas.CorrelationValid {
			fmt.Printf("diagnostic/final correlation: %.2f\n", v.Deltas.Correlation)
		}
		fmt.Println()
	}

	for _, q := range v.Likert.Means {
		fmt.Printf("%s: %.1f\n", q.Question, q.Mean)
	}

	if !v.Timing.Empty {
		w := newTable()
		fmt.Fprintln(w, "USER\tMINUTES")
		for _, row := range v.Timing.Rows {
			fmt.Fprintf(w, "%s\t%.1f\n", row.User, row.Minutes)
		}
		w.Flush()
		fmt.Printf("mean time: %.1f min\n", v.Timing.MeanMinutes)
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
