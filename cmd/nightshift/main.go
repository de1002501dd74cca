package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/attach"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/draft"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/exporter"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/form"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/logger"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/model"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/template"
	"github.com/ThaiBaHoa/daily-nightshift-report/internal/ui"
	"github.com/spf13/afero"
)

const (
	appName    = "Nightshift Report"
	appVersion = "1.0.0"
	appDesc    = "Fills a nightshift inspection template and exports the formatted report"
)

var (
	configPath  string
	sessionPath string
	templPath   string
	outputDir   string
	formats     string
	verbose     bool
	showVersion bool
	keepDraft   bool
	deleteDraft bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&sessionPath, "session", "", "Path to the session script (YAML) with the edits to apply")
	flag.StringVar(&sessionPath, "s", "", "Path to the session script (shorthand)")
	flag.StringVar(&templPath, "template", "", "Override template workbook path from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "excel", "Comma-separated output formats (excel,word,html)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&keepDraft, "keep-draft", false, "Keep the draft slot after a successful export")
	flag.BoolVar(&deleteDraft, "delete-draft", false, "Clear the draft slot and exit")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if templPath != "" {
		abs, _ := filepath.Abs(templPath)
		cfg.Template.Path = abs
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
		cfg.EnsureOutputDir()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "nightshift.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	store := draft.NewStore(afero.NewOsFs(), cfg.DraftPath(), cfg.Draft.SoftLimitBytes)

	if deleteDraft {
		store.Delete()
		logger.Info("Draft slot cleared.")
		return 0
	}

	if err := runReport(cfg, store); err != nil {
		logger.Error("Run failed: %v", err)
		return 1
	}

	logger.Info("✅ Done. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runReport(cfg *config.Config, store *draft.Store) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseLoading,
		ui.PhaseApplying,
		ui.PhaseGenerating,
	})
	guard := form.NewOpGuard()

	// --- Phase 1: Load template, restore draft ---
	logger.Info("Phase 1: Loading template...")
	loadBar := pipeline.NextPhase(2)

	loadToken := guard.Begin(form.OpLoad)
	tpl, err := template.Load(cfg.Template.Path, model.NewSessionSelection(), cfg)
	if err != nil {
		return err
	}
	if guard.Stale(form.OpLoad, loadToken) {
		return fmt.Errorf("template load superseded by a newer load")
	}
	f := form.New(tpl, cfg)
	loadBar.Increment()

	if snapshot, ok := store.Load(); ok {
		f.RestoreDraft(snapshot)
		logger.Info("Restored draft: %d rows (inspector %s)", len(snapshot.Rows), snapshot.Inspector)
	}
	loadBar.Increment()
	loadBar.Finish()

	logger.Info("Template ready: %d columns, %d rows", len(f.Columns()), len(f.Rows()))

	// --- Phase 2: Apply session script ---
	if sessionPath != "" {
		logger.Info("Phase 2: Applying session script...")
		script, err := form.LoadScript(sessionPath)
		if err != nil {
			return err
		}

		applyBar := pipeline.NextPhase(len(script.Entries) + 1)
		if err := applySession(f, script, cfg, store, applyBar); err != nil {
			return err
		}
		applyBar.Finish()
	} else {
		pipeline.NextPhase(0).Finish()
		logger.Info("No session script given; exporting current state.")
	}

	// --- Phase 3: Export ---
	logger.Info("Phase 3: Generating reports...")
	targetFormats := strings.Split(formats, ",")
	exporters := exporter.GetExporters(targetFormats)
	if len(exporters) == 0 {
		return fmt.Errorf("no valid output format in %q", formats)
	}

	genBar := pipeline.NextPhase(len(exporters))

	exportToken := guard.Begin(form.OpExport)
	if err := exportAll(guard, exportToken, exporters, f, cfg, genBar); err != nil {
		return err
	}
	genBar.Finish()
	pipeline.Finish()

	// Successful export clears the single draft slot
	if !keepDraft {
		store.Delete()
		logger.Debug("Draft slot cleared after export")
	}

	return nil
}

// exportAll runs every exporter in order. The staleness check sits before
// each write, so a superseded token stops the run before any further file
// lands on disk.
func exportAll(guard *form.OpGuard, token uint64, exporters []exporter.Exporter, f *form.Form, cfg *config.Config, bar *ui.ProgressBar) error {
	for _, exp := range exporters {
		if guard.Stale(form.OpExport, token) {
			return fmt.Errorf("export superseded by a newer export")
		}
		path, err := exp.Export(f.Rows(), f.Columns(), f.Selection(), cfg)
		if err != nil {
			var precondition *exporter.PreconditionError
			if errors.As(err, &precondition) {
				logger.Warn("%v", err)
				return err
			}
			return err
		}
		logger.Info("Report written: %s", path)
		bar.Increment()
	}
	return nil
}

func applySession(f *form.Form, script *form.Script, cfg *config.Config, store *draft.Store, bar *ui.ProgressBar) error {
	if date, ok, err := script.ParsedDate(); err != nil {
		return err
	} else if ok {
		f.SetDate(date)
	}

	if script.Inspector != "" {
		if !cfg.ValidInspector(script.Inspector) {
			return fmt.Errorf("inspector %q is not on the roster %v", script.Inspector, cfg.Session.Inspectors)
		}
		f.SetInspector(script.Inspector)
	}

	if script.Station != "" && cfg.Session.EnableStation {
		if !cfg.ValidStation(script.Station) {
			return fmt.Errorf("station %q is not on the roster %v", script.Station, cfg.Session.Stations)
		}
		f.SetStation(script.Station)
	}
	bar.Increment()

	for _, entry := range script.Entries {
		if !f.SelectRow(entry.STT) {
			logger.Warn("Skipping unknown STT %q", entry.STT)
			bar.Increment()
			continue
		}
		logger.Debug("Guidance for STT %s: %s", entry.STT, f.Guidance())

		for col, value := range entry.Fields {
			if col == "Status" && !cfg.ValidStatus(value) {
				logger.Warn("STT %s: status %q is not one of %v", entry.STT, value, cfg.Session.StatusOptions)
			}
			if !f.SetField(entry.STT, col, value) {
				logger.Warn("STT %s: field %q does not accept edits, ignored", entry.STT, col)
			}
		}

		if len(entry.Images) > 0 {
			uploads, closers, err := openUploads(entry.Images)
			if err != nil {
				return err
			}
			failures, _ := f.AddImages(entry.STT, uploads)
			for _, c := range closers {
				c.Close()
			}
			for _, fail := range failures {
				logger.Warn("STT %s: %v", entry.STT, fail)
			}
		}

		if _, err := f.Submit(); err != nil {
			return fmt.Errorf("submit STT %s: %w", entry.STT, err)
		}

		// Snapshot after every accepted entry so a crash loses at most
		// the entry in flight.
		sel := f.Selection()
		if err := store.Save(f.Rows(), sel.Inspector, sel.Station, sel.Date); err != nil {
			logger.Warn("%v", err)
		}
		bar.Increment()
	}

	return nil
}

// openUploads opens the image files named by a script entry. The files stay
// open until the batch has been processed.
func openUploads(paths []string) ([]attach.Upload, []*os.File, error) {
	uploads := make([]attach.Upload, 0, len(paths))
	files := make([]*os.File, 0, len(paths))
	for _, p := range paths {
		fh, err := os.Open(p)
		if err != nil {
			for _, open := range files {
				open.Close()
			}
			return nil, nil, fmt.Errorf("failed to open image %s: %w", p, err)
		}
		files = append(files, fh)
		uploads = append(uploads, attach.Upload{Name: filepath.Base(p), Reader: fh})
	}
	return uploads, files, nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                 NIGHTSHIFT REPORT v1.0.0                  ║
║        Daily inspection data entry and export tool        ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
