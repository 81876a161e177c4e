package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/Jakob-Lindstrom/extinv/internal/config"
	"github.com/Jakob-Lindstrom/extinv/internal/inventory"
	"github.com/Jakob-Lindstrom/extinv/internal/report"
	"github.com/Jakob-Lindstrom/extinv/internal/session"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the interactive user's browsers for installed extensions",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringP("browser", "b", "", "Limit the scan to one browser (Chrome, Edge)")
	scanCmd.Flags().StringP("output", "o", "", "Output format (json)")
	scanCmd.Flags().String("save", "", "Write the report as CSV to this path (overrides EXTINV_REPORT_PATH)")
	scanCmd.Flags().String("upload", "", "Upload the report: 'blob' for an HTTP PUT endpoint, 's3' for an S3 bucket")
	scanCmd.Flags().Bool("open", false, "Open the saved report when done (requires --save)")
	scanCmd.Flags().Bool("debug", false, "Enable debug output")
	rootCmd.AddCommand(scanCmd)
}

type scanOutput struct {
	Extensions []inventory.Record `json:"extensions"`
	Total      int                `json:"total"`
}

func runScan(cmd *cobra.Command, args []string) error {
	browserFilter, _ := cmd.Flags().GetString("browser")
	output, _ := cmd.Flags().GetString("output")
	savePath, _ := cmd.Flags().GetString("save")
	upload, _ := cmd.Flags().GetString("upload")
	openReport, _ := cmd.Flags().GetBool("open")
	debug, _ := cmd.Flags().GetBool("debug")

	if debug {
		pterm.EnableDebugMessages()
	}
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}
	if upload != "" && upload != "blob" && upload != "s3" {
		return fmt.Errorf("unsupported --upload value: use 'blob' or 's3'")
	}
	cfg := config.Load()
	if savePath != "" {
		cfg.ReportPath = savePath
	}
	if openReport && cfg.ReportPath == "" {
		return fmt.Errorf("--open requires a saved report (use --save)")
	}

	dataRoot, err := session.Host().DataRoot()
	if err != nil {
		pterm.Error.Printfln("Cannot determine which user to inventory: %v", err)
		return err
	}
	pterm.Debug.Printfln("Scanning browser data under %s", dataRoot)

	records, err := collectRecords(dataRoot, browserFilter)
	if err != nil {
		return err
	}

	if output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scanOutput{Extensions: records, Total: len(records)}); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
	} else {
		printRecords(records)
	}

	rep := report.New(records)
	sinks, err := buildSinks(cmd, cfg, upload)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	for _, sink := range sinks {
		if err := sink.Write(cmd.Context(), rep); err != nil {
			pterm.Error.Printfln("Failed to deliver report to %s: %v", sink.Describe(), err)
			return err
		}
		pterm.Success.Printfln("Report delivered to %s", sink.Describe())
	}

	if openReport && cfg.ReportPath != "" {
		if err := browser.OpenFile(cfg.ReportPath); err != nil {
			pterm.Warning.Printfln("Could not open %s: %v", cfg.ReportPath, err)
		}
	}
	return nil
}

// collectRecords scans every catalogued browser under dataRoot and returns
// the deduplicated inventory. browserFilter narrows the catalog to one
// browser by case-insensitive name.
func collectRecords(dataRoot, browserFilter string) ([]inventory.Record, error) {
	if browserFilter != "" && !knownBrowser(browserFilter) {
		return nil, fmt.Errorf("unknown browser %q (supported: Chrome, Edge)", browserFilter)
	}

	var batches [][]inventory.Record
	for _, b := range inventory.Catalog() {
		if browserFilter != "" && !strings.EqualFold(b.Name, browserFilter) {
			continue
		}
		root, err := b.ExtensionsRoot(dataRoot)
		if err != nil {
			pterm.Debug.Printfln("Skipping %s: %v", b.Name, err)
			continue
		}
		batches = append(batches, inventory.Scan(root, b.IgnoredIDs, b.Name))
	}
	return inventory.Aggregate(batches...), nil
}

func knownBrowser(name string) bool {
	for _, b := range inventory.Catalog() {
		if strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}

func printRecords(records []inventory.Record) {
	if len(records) == 0 {
		pterm.Info.Println("No extensions found.")
		return
	}

	rows := pterm.TableData{{"ExtensionID", "Name", "Browser"}}
	for _, rec := range records {
		rows = append(rows, []string{rec.ID, rec.Name, rec.Browser})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Warning.Printfln("Failed to render table: %v", err)
	}
	pterm.Printf("Total extensions: %d\n", len(records))
}

// buildSinks translates the save/upload selection into report sinks.
// Selecting an upload target without its endpoint configured is an error
// surfaced before any scan output is shipped anywhere.
func buildSinks(cmd *cobra.Command, cfg *config.Config, upload string) ([]report.Sink, error) {
	var sinks []report.Sink

	if cfg.ReportPath != "" {
		sink, err := report.NewFileSink(cfg.ReportPath)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	switch upload {
	case "blob":
		token := cfg.BlobToken
		if token == "" {
			if stored, err := keyring.Get(keyringService, keyringUser); err == nil {
				token = stored
			}
		}
		sink, err := report.NewBlobSink(cfg.BlobURL, token)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	case "s3":
		sink, err := report.NewS3Sink(cmd.Context(), cfg.S3Bucket, cfg.S3Key, cfg.S3Region)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	return sinks, nil
}
