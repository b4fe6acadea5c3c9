// Package sqlite provides SQLite database writing for matching runs
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/matcher"
)

// Date format for RunTable (ISO 8601)
const runDateFormat = "2006-01-02T15:04:05Z07:00"

// Writer handles writing one matching run to a SQLite database file. Several
// runs can share one file; each gets its own RunId.
type Writer struct {
	db           *sql.DB
	tx           *sql.Tx
	outputPath   string
	runID        string
	source       string
	created      time.Time
	sequenceStmt *sql.Stmt
	siteStmt     *sql.Stmt
	sequenceID   int64
	sequences    int
	unmatched    int
}

// NewWriter creates a new SQLite writer for a run reading from source.
func NewWriter(outputPath, source string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		runID:      uuid.NewString(),
		source:     source,
		created:    time.Now().UTC(),
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// RunID returns the id of the run being written.
func (w *Writer) RunID() string {
	return w.runID
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS RunTable (
		RunId TEXT PRIMARY KEY,
		CreationDate TEXT,
		Source TEXT,
		SequenceCount INTEGER,
		UnmatchedCount INTEGER
	);

	CREATE TABLE IF NOT EXISTS SequenceTable (
		SequenceId INTEGER PRIMARY KEY AUTOINCREMENT,
		RunId TEXT REFERENCES RunTable(RunId),
		Ordinal INTEGER,
		Sequence TEXT,
		Stripped TEXT,
		FromSettings BOOL,
		LabelType TEXT,
		NeutralMass DOUBLE,
		Error TEXT
	);

	CREATE TABLE IF NOT EXISTS ModSiteTable (
		SiteId INTEGER PRIMARY KEY AUTOINCREMENT,
		SequenceId INTEGER REFERENCES SequenceTable(SequenceId),
		IndexAA INTEGER,
		IndexAAInSeq INTEGER,
		AA TEXT,
		Annotation TEXT,
		Heavy BOOL,
		RoundedTo INTEGER,
		Terminus TEXT,
		UniModId INTEGER,
		ModName TEXT,
		ModMass DOUBLE
	);

	CREATE TABLE IF NOT EXISTS UnmatchedTable (
		RunId TEXT REFERENCES RunTable(RunId),
		Fragment TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements opens the run transaction and prepares the insert
// statements inside it.
func (w *Writer) prepareStatements() error {
	var err error

	w.tx, err = w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	w.sequenceStmt, err = w.tx.Prepare(`
		INSERT INTO SequenceTable (
			RunId, Ordinal, Sequence, Stripped, FromSettings, LabelType, NeutralMass, Error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		return fmt.Errorf("failed to prepare sequence statement: %w", err)
	}

	w.siteStmt, err = w.tx.Prepare(`
		INSERT INTO ModSiteTable (
			SequenceId, IndexAA, IndexAAInSeq, AA, Annotation, Heavy,
			RoundedTo, Terminus, UniModId, ModName, ModMass
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		return fmt.Errorf("failed to prepare site statement: %w", err)
	}

	return nil
}

// WriteResult writes one matched sequence and its sites.
func (w *Writer) WriteResult(r matcher.Result) error {
	res, err := w.sequenceStmt.Exec(
		w.runID,         // RunId
		w.sequences + 1, // Ordinal
		r.Sequence,      // Sequence
		r.Stripped,      // Stripped
		r.FromSettings,  // FromSettings
		r.LabelType,     // LabelType
		neutralMass(r),  // NeutralMass
		nil,             // Error
	)
	if err != nil {
		return fmt.Errorf("failed to insert sequence: %w", err)
	}
	w.sequences++

	w.sequenceID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read sequence id: %w", err)
	}

	for _, site := range r.Sites {
		if err := w.writeSite(site); err != nil {
			return err
		}
	}
	return nil
}

// WriteFailure records a sequence that could not be parsed.
func (w *Writer) WriteFailure(seq string, cause error) error {
	_, err := w.sequenceStmt.Exec(w.runID, w.sequences+1, seq, nil, false, nil, nil, cause.Error())
	if err != nil {
		return fmt.Errorf("failed to insert sequence: %w", err)
	}
	w.sequences++
	return nil
}

func (w *Writer) writeSite(site matcher.ResolvedSite) error {
	var annotation interface{}
	if site.Annotation != nil {
		a := site.Annotation
		annotation = string(a.Family.Open()) + a.Content + string(a.Family.Close())
	}

	var uniModID interface{}
	if site.Key.UniModID != 0 {
		uniModID = site.Key.UniModID
	}

	var modName, modMass interface{}
	if site.Resolved {
		modName = site.Mod.Name
		modMass = core.RoundFloat(site.Mod.MassFor(site.Key.AA), matcher.MaxRoundingDigits)
	}

	_, err := w.siteStmt.Exec(
		w.sequenceID,               // SequenceId
		site.IndexAA,               // IndexAA
		site.IndexAAInSeq,          // IndexAAInSeq
		string(site.Key.AA),        // AA
		annotation,                 // Annotation
		site.Key.Heavy,             // Heavy
		site.Key.RoundedTo,         // RoundedTo
		site.Key.Terminus.String(), // Terminus
		uniModID,                   // UniModId
		modName,                    // ModName
		modMass,                    // ModMass
	)
	if err != nil {
		return fmt.Errorf("failed to insert site: %w", err)
	}
	return nil
}

// neutralMass is the mass of the stripped sequence with the site masses
// applied; nil when some site has no known mass.
func neutralMass(r matcher.Result) interface{} {
	mods := make([]core.Modification, 0, len(r.Sites))
	for _, site := range r.Sites {
		mass := site.Key.Mass
		if site.Key.Kind == matcher.KeyName {
			if !site.Resolved {
				return nil
			}
			mass = site.Mod.MassFor(site.Key.AA)
		}
		mods = append(mods, core.Modification{Mass: mass, Position: site.IndexAA, Name: site.Key.Name})
	}
	return core.RoundFloat(core.CalculateNeutralMass(r.Stripped, mods), matcher.MaxRoundingDigits)
}

// Finalize writes the unmatched fragments and the run row, commits and
// closes the database
func (w *Writer) Finalize(unmatched []string) error {
	for _, f := range unmatched {
		if _, err := w.tx.Exec(`INSERT INTO UnmatchedTable (RunId, Fragment) VALUES (?, ?)`, w.runID, f); err != nil {
			w.tx.Rollback()
			return fmt.Errorf("failed to insert unmatched fragment: %w", err)
		}
	}
	w.unmatched = len(unmatched)

	_, err := w.tx.Exec(`
		INSERT INTO RunTable (RunId, CreationDate, Source, SequenceCount, UnmatchedCount)
		VALUES (?, ?, ?, ?, ?)
	`, w.runID, w.created.Format(runDateFormat), w.source, w.sequences, w.unmatched)
	if err != nil {
		w.tx.Rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}

	// Close prepared statements
	w.sequenceStmt.Close()
	w.siteStmt.Close()

	if err := w.tx.Commit(); err != nil {
		w.db.Close()
		return fmt.Errorf("failed to commit run: %w", err)
	}

	// Close database
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Abort discards the run and closes the database
func (w *Writer) Abort() error {
	w.sequenceStmt.Close()
	w.siteStmt.Close()
	w.tx.Rollback()
	return w.db.Close()
}
