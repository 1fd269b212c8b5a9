package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	gcsadmin "github.com/squareinnov8/gcs-admin"
	"github.com/squareinnov8/gcs-admin/bloom"
	"github.com/squareinnov8/gcs-admin/docx"
	"github.com/squareinnov8/gcs-admin/drive"
	"github.com/squareinnov8/gcs-admin/fs"
	"github.com/squareinnov8/gcs-admin/gemini"
	"github.com/squareinnov8/gcs-admin/goquery"
	"github.com/squareinnov8/gcs-admin/htmltomarkdown"
	gcshttp "github.com/squareinnov8/gcs-admin/http"
	"github.com/squareinnov8/gcs-admin/pdf"
	"github.com/squareinnov8/gcs-admin/pipeline"
	"github.com/squareinnov8/gcs-admin/sheets"
	gcsslog "github.com/squareinnov8/gcs-admin/slog"
	"github.com/squareinnov8/gcs-admin/sqlite"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService gcsadmin.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gcsadmin"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gcsadmin --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GCSADMIN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Processor = &gcsadmin.Processor{
		Precleaner: goquery.NewPrecleaner(),
		Converter:  docx.NewConverter(),
		Extractor:  pdf.NewExtractor(),
	}

	if cmd == "sync" {
		p, err := m.buildPipeline(ctx, cli, deps, stderr)
		if err != nil {
			return err
		}
		deps.Pipeline = p
	}

	return kongCtx.Run(deps)
}

// buildPipeline wires the external collaborators the sync command needs.
func (m *Main) buildPipeline(ctx context.Context, cli *CLI, deps *Dependencies, stderr io.Writer) (*pipeline.Pipeline, error) {
	reader, err := drive.NewReader(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set GOOGLE_APPLICATION_CREDENTIALS to a service account key file")
		return nil, fmt.Errorf("failed to connect to drive: %w", err)
	}

	cmsURL := os.Getenv("GCSADMIN_CMS_URL")
	if cmsURL == "" {
		fmt.Fprintln(stderr, "GCSADMIN_CMS_URL environment variable not set")
		return nil, gcsadmin.Errorf(gcsadmin.EINVALID, "GCSADMIN_CMS_URL not set")
	}
	publisher, err := gcshttp.NewPublisher(cmsURL, os.Getenv("GCSADMIN_CMS_TOKEN"))
	if err != nil {
		return nil, err
	}

	p := &pipeline.Pipeline{
		Reader:      reader,
		Processor:   deps.Processor,
		Publisher:   publisher,
		Documents:   m.DocumentService,
		Limiter:     rate.NewLimiter(rate.Limit(cli.Sync.Rate), 1),
		Seen:        bloom.NewFilter(seenExpectedFiles, seenFalsePositiveRate),
		Concurrency: cli.Sync.Concurrency,
		PostStatus:  cli.Sync.Status,
	}

	if cli.Sync.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		p.Processor = gcsslog.NewLoggingProcessor(p.Processor, logger)
		p.Publisher = gcsslog.NewLoggingPublisher(p.Publisher, logger)
	}

	if cli.Sync.Tracker != "" {
		tracker, err := sheets.NewTracker(ctx, cli.Sync.Tracker, cli.Sync.Sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to tracking spreadsheet: %w", err)
		}
		p.Tracker = tracker
	}

	if cli.Sync.Archive != "" {
		p.Archive = fs.NewWriter(cli.Sync.Archive, htmltomarkdown.NewConverter())
	}

	if !cli.Sync.NoMetadata {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			p.Describer = gemini.NewDescriber(client, gemini.DefaultModel)
		}
	}

	return p, nil
}

// Bloom filter sizing for within-run file ID deduplication.
const (
	seenExpectedFiles     = 10000
	seenFalsePositiveRate = 0.01
)

func defaultDBPath() string {
	if path := os.Getenv("GCSADMIN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gcsadmin.db"
	}
	dir := filepath.Join(home, ".gcsadmin")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gcsadmin.db")
}
