package migration

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/config"
)

// Planner decides the shape of each migration from the run configuration.
// Every produced plan consumes the next timestamp; callers must thread the
// returned Run forward to keep replay order strictly increasing.
type Planner struct {
	logger *slog.Logger
}

// NewPlanner creates a Planner.
func NewPlanner(logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Planner{logger: logger}
}

// PlanMain plans the migration for the target table. When the model probe
// found an existing model the table is altered and only capability
// contributions are added; otherwise the table is created with the seeded
// name/email columns, the contributions, a timestamp pair, and a unique
// index on email. The email index is never added on alteration.
//
// Returns nil when the table exists and the enabled capabilities contribute
// no columns: an ALTER TABLE without clauses is not a statement. The
// timestamp counter is left untouched.
func (pl *Planner) PlanMain(run config.Run) (*Plan, config.Run) {
	contributed := catalog.ContributedColumns(run.Capabilities)

	if run.ModelFound {
		if len(contributed) == 0 {
			pl.logger.Debug("no column contributions; main migration skipped", "table", run.TableName)
			return nil, run
		}
		ts, next := run.NextTimestamp()
		plan := &Plan{
			Verb:      VerbAlter,
			Name:      fmt.Sprintf("add_auth_to_%s", run.TableName),
			Table:     run.TableName,
			Columns:   contributed,
			Timestamp: ts,
		}
		pl.logger.Debug("planned main migration", "verb", plan.Verb, "table", plan.Table)
		return plan, next
	}
	ts, next := run.NextTimestamp()

	columns := []catalog.Column{
		{Name: "name", Type: "varchar(255)"},
		{Name: "email", Type: "varchar(255)", NotNull: true},
	}
	columns = append(columns, contributed...)
	columns = append(columns,
		catalog.Column{Name: "inserted_at", Type: "timestamp", NotNull: true, Default: "now()"},
		catalog.Column{Name: "updated_at", Type: "timestamp", NotNull: true, Default: "now()"},
	)

	plan := &Plan{
		Verb:    VerbCreate,
		Name:    fmt.Sprintf("create_%s", run.TableName),
		Table:   run.TableName,
		Columns: columns,
		Constraints: []string{
			fmt.Sprintf("CREATE UNIQUE INDEX %s_email_index ON %s (email);", run.TableName, run.TableName),
		},
		Timestamp: ts,
	}
	pl.logger.Debug("planned main migration", "verb", plan.Verb, "table", plan.Table)
	return plan, next
}

// PlanInvitation plans the invitations table. It is an unconditional create
// with fixed shape; no alter path exists. Returns nil when invitable is not
// enabled, leaving the timestamp counter untouched.
func (pl *Planner) PlanInvitation(run config.Run) (*Plan, config.Run) {
	if !run.Capabilities.Has(catalog.Invitable) {
		return nil, run
	}
	ts, next := run.NextTimestamp()

	plan := &Plan{
		Verb:  VerbCreate,
		Name:  "create_invitations",
		Table: "invitations",
		Columns: []catalog.Column{
			{Name: "name", Type: "varchar(255)"},
			{Name: "email", Type: "varchar(255)", NotNull: true},
			{Name: "token", Type: "varchar(255)"},
			{Name: "inserted_at", Type: "timestamp", NotNull: true, Default: "now()"},
			{Name: "updated_at", Type: "timestamp", NotNull: true, Default: "now()"},
		},
		Constraints: []string{
			"CREATE UNIQUE INDEX invitations_email_index ON invitations (email);",
			"CREATE INDEX invitations_token_index ON invitations (token);",
		},
		Timestamp: ts,
	}
	pl.logger.Debug("planned invitation migration", "table", plan.Table)
	return plan, next
}

// PlanRemember plans the rememberables table: an unconditional create with
// a foreign key to the target table and a composite unique index over the
// remember-token triple. Returns nil when rememberable is not enabled.
func (pl *Planner) PlanRemember(run config.Run) (*Plan, config.Run) {
	if !run.Capabilities.Has(catalog.Rememberable) {
		return nil, run
	}
	ts, next := run.NextTimestamp()

	plan := &Plan{
		Verb:  VerbCreate,
		Name:  "create_rememberables",
		Table: "rememberables",
		Columns: []catalog.Column{
			{Name: "series_hash", Type: "varchar(255)"},
			{Name: "token_hash", Type: "varchar(255)"},
			{Name: "token_created_at", Type: "timestamp"},
			{Name: "user_id", Type: fmt.Sprintf("bigint NOT NULL REFERENCES %s (id) ON DELETE CASCADE", run.TableName)},
		},
		Constraints: []string{
			"CREATE INDEX rememberables_user_id_index ON rememberables (user_id);",
			"CREATE UNIQUE INDEX rememberables_user_id_series_hash_token_hash_index ON rememberables (user_id, series_hash, token_hash);",
		},
		Timestamp: ts,
	}
	pl.logger.Debug("planned remember migration", "table", plan.Table)
	return plan, next
}
