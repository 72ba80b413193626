// Package history records directory renders in a local ledger.
//
// Two backends implement Store:
//
//   - MemoryStore keeps runs in process memory and is used in tests and when
//     the ledger is configured with backend "memory".
//   - SQLiteStore persists runs to a SQLite database. The pure-Go driver
//     modernc.org/sqlite is used by default; building with the cgo_sqlite
//     tag switches to github.com/mattn/go-sqlite3.
//
// Open selects a backend from config.HistoryConfig.
//
// # Retention
//
// A Pruner deletes runs older than a number of days. A Scheduler runs a
// Pruner on a cron expression for as long as its context lives:
//
//	pruner := history.NewPruner(store, cfg.RetentionDays, logger)
//	scheduler := history.NewScheduler(pruner, cfg.PruneSchedule)
//	if err := scheduler.Start(ctx); err != nil {
//		return err
//	}
//	defer scheduler.Stop()
package history
