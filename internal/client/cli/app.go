package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/studydash/internal/client/api"
	"github.com/dmitrijs2005/studydash/internal/client/config"
	"github.com/dmitrijs2005/studydash/internal/client/credentials"
	"github.com/dmitrijs2005/studydash/internal/client/loader"
	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/dmitrijs2005/studydash/internal/client/present"
	"github.com/dmitrijs2005/studydash/internal/client/render"
	"github.com/dmitrijs2005/studydash/internal/client/report"
	"github.com/dmitrijs2005/studydash/internal/filex"
	"github.com/dmitrijs2005/studydash/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger

	db    *sql.DB
	store *credentials.SQLiteStore

	dashboard *loader.Loader[*models.DashboardStats]
	notes     *loader.Loader[[]models.NoteSummary]
	renderer  *render.Renderer

	scanner *bufio.Scanner
	out     io.Writer
	now     func() time.Time
}

// NewApp opens the credential database named by c.CredentialDB and wires the
// loaders against c.APIBaseURL. in and out are the terminal streams.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	dsn := c.CredentialDB
	if !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
		var err error
		if dsn, err = filex.EnsureParentDir(dsn); err != nil {
			logger.Error(ctx, "error preparing credential database directory", "error", err)
			return nil, err
		}
	}

	db, err := credentials.Open(ctx, dsn)
	if err != nil {
		logger.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}
	return newApp(c, logger, db, http.DefaultClient, in, out), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, hc *http.Client, in io.Reader, out io.Writer) *App {
	store := credentials.NewSQLiteStore(db)
	client := api.New(c.APIBaseURL, api.WithHTTPClient(hc))

	opts := []loader.Option{
		loader.WithCredentialKey(c.CredentialKey),
		loader.WithTimeout(c.RequestTimeout),
		loader.WithReporter(report.NewLogReporter(logger)),
		loader.WithLogger(logger),
	}

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		store:     store,
		dashboard: loader.New[*models.DashboardStats]("dashboard", store, client.DashboardStats, opts...),
		notes:     loader.New[[]models.NoteSummary]("notes", store, client.MyNotes, opts...),
		renderer:  render.New(lipgloss.NewRenderer(out), render.DefaultBarWidth),
		scanner:   bufio.NewScanner(in),
		out:       out,
		now:       time.Now,
	}
}

func (a *App) presentOptions() present.Options {
	return present.Options{
		ZeroStudyTimeIsMeasured: a.config.ZeroStudyTimeIsMeasured,
		ZeroAccuracyIsMeasured:  a.config.ZeroAccuracyIsMeasured,
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// Close cancels in-flight loads and closes the credential database.
func (a *App) Close() error {
	a.dashboard.Close()
	a.notes.Close()
	return a.db.Close()
}
