package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/jotsync/internal/client/config"
	"github.com/dmitrijs2005/jotsync/internal/client/engine"
	"github.com/dmitrijs2005/jotsync/internal/client/identity"
	"github.com/dmitrijs2005/jotsync/internal/client/localstore"
	"github.com/dmitrijs2005/jotsync/internal/client/remote"
	"github.com/dmitrijs2005/jotsync/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wiring of the editor surface: snapshot store, installation
// identity, remote client (when configured) and the sync engine.
type App struct {
	config *config.Config
	store  *localstore.SQLiteStore
	engine *engine.Engine
	log    logging.Logger
	userId string
	reader *bufio.Reader
}

// NewApp opens the snapshot database, resolves the installation id and
// builds the engine. Remote access is wired only when the configuration
// carries both the URL and the key; otherwise the engine runs local-only.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := localstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open snapshot database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	userId, err := identity.NewProvider(store).InstallationID(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	var client remote.Client
	if cfg.IsRemoteConfigured() {
		client = remote.NewHTTPClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.RequestTimeout)
	} else {
		log.Info(ctx, "remote access not configured, running local-only")
	}

	eng := engine.New(store, client, engine.TimerScheduler{}, log, cfg.DebounceInterval)

	return &App{
		config: cfg,
		store:  store,
		engine: eng,
		log:    log.With("user_id", userId),
		userId: userId,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run initializes the engine and blocks in the REPL until the user exits.
// A final forced sync runs on the way out so the last debounced edit is
// never lost to process exit.
func (a *App) Run(ctx context.Context) {
	a.engine.Initialize(ctx, a.userId)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)

	a.engine.ForceSyncNow(ctx)
	_ = a.store.Close()
}
