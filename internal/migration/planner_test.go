package migration

import (
	"strings"
	"testing"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/config"
)

func testRun(caps catalog.Set, modelFound bool) config.Run {
	return config.Run{
		Capabilities: caps,
		Module:       "github.com/acme/shop",
		ModelName:    "User",
		TableName:    "users",
		ModelFound:   modelFound,
		Timestamp:    20260825143000,
	}
}

func TestPlanMainCreate(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Lockable), false)

	plan, _ := pl.PlanMain(run)
	if plan == nil {
		t.Fatal("main plan expected")
	}
	if plan.Verb != VerbCreate {
		t.Fatalf("verb = %q, want create", plan.Verb)
	}
	if plan.Name != "create_users" || plan.Table != "users" {
		t.Errorf("plan = %s/%s", plan.Name, plan.Table)
	}

	// Seed columns wrap the capability contributions.
	var names []string
	for _, c := range plan.Columns {
		names = append(names, c.Name)
	}
	if names[0] != "name" || names[1] != "email" {
		t.Errorf("columns must start with name, email: %v", names)
	}
	if names[len(names)-1] != "updated_at" || names[len(names)-2] != "inserted_at" {
		t.Errorf("columns must end with the timestamp pair: %v", names)
	}
	if len(plan.Constraints) != 1 || !strings.Contains(plan.Constraints[0], "users_email_index") {
		t.Errorf("constraints = %v, want unique email index", plan.Constraints)
	}
}

// An existing model always yields an alter plan, never a create.
func TestPlanMainAlterWhenModelFound(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Trackable), true)

	plan, _ := pl.PlanMain(run)
	if plan == nil {
		t.Fatal("main plan expected")
	}
	if plan.Verb != VerbAlter {
		t.Fatalf("verb = %q, want alter", plan.Verb)
	}
	if plan.Name != "add_auth_to_users" {
		t.Errorf("name = %q", plan.Name)
	}
	for _, c := range plan.Columns {
		if c.Name == "name" || c.Name == "email" || c.Name == "inserted_at" {
			t.Errorf("alter plan must carry contributions only, got %q", c.Name)
		}
	}
	if len(plan.Constraints) != 0 {
		t.Errorf("alter plan must not add the email index: %v", plan.Constraints)
	}
}

func TestPlanTimestampsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Invitable, catalog.Rememberable), false)

	main, run := pl.PlanMain(run)
	inv, run := pl.PlanInvitation(run)
	rem, _ := pl.PlanRemember(run)

	if main == nil || inv == nil || rem == nil {
		t.Fatal("all three plans expected")
	}
	if !(main.Timestamp < inv.Timestamp && inv.Timestamp < rem.Timestamp) {
		t.Errorf("timestamps not strictly increasing: %d %d %d",
			main.Timestamp, inv.Timestamp, rem.Timestamp)
	}
}

// Skipped plans must not consume a timestamp slot.
func TestPlanSkippedConsumesNoTimestamp(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Rememberable), false)

	main, run := pl.PlanMain(run)
	inv, run := pl.PlanInvitation(run)
	rem, _ := pl.PlanRemember(run)

	if main == nil {
		t.Fatal("main plan expected")
	}
	if inv != nil {
		t.Fatal("invitation plan must be nil without invitable")
	}
	if rem.Timestamp != main.Timestamp+1 {
		t.Errorf("remember timestamp = %d, want %d", rem.Timestamp, main.Timestamp+1)
	}
}

// A table that already exists and a capability set that contributes no
// columns would render a clause-less ALTER TABLE. The plan is skipped
// instead, and the timestamp counter stays where it was.
func TestPlanMainNilWhenNoContributions(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	for _, c := range []catalog.Capability{catalog.Registerable, catalog.Invitable} {
		run := testRun(catalog.NewSet(c), true)

		plan, next := pl.PlanMain(run)
		if plan != nil {
			t.Errorf("%s: plan = %+v, want nil", c, plan)
		}
		if next.Timestamp != run.Timestamp {
			t.Errorf("%s: timestamp advanced to %d", c, next.Timestamp)
		}
	}
}

// The skipped main plan must not shift the timestamps of later plans.
func TestPlanInvitationKeepsSeedAfterSkippedMain(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Invitable), true)

	main, run := pl.PlanMain(run)
	if main != nil {
		t.Fatalf("main plan = %+v, want nil", main)
	}
	inv, _ := pl.PlanInvitation(run)
	if inv == nil {
		t.Fatal("invitation plan expected")
	}
	if inv.Timestamp != 20260825143000 {
		t.Errorf("invitation timestamp = %d, want the untouched seed", inv.Timestamp)
	}
}

func TestPlanInvitationShape(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Invitable), false)

	plan, _ := pl.PlanInvitation(run)
	if plan == nil {
		t.Fatal("invitation plan expected")
	}
	if plan.Verb != VerbCreate || plan.Table != "invitations" {
		t.Errorf("plan = %s %s", plan.Verb, plan.Table)
	}
	sql := plan.UpSQL()
	if !strings.Contains(sql, "CREATE UNIQUE INDEX invitations_email_index") {
		t.Error("missing unique email index")
	}
	if !strings.Contains(sql, "CREATE INDEX invitations_token_index") {
		t.Error("missing token index")
	}
}

func TestPlanRememberShape(t *testing.T) {
	t.Parallel()

	pl := NewPlanner(nil)
	run := testRun(catalog.NewSet(catalog.Authenticatable, catalog.Rememberable), false)

	plan, _ := pl.PlanRemember(run)
	if plan == nil {
		t.Fatal("remember plan expected")
	}
	sql := plan.UpSQL()
	if !strings.Contains(sql, "REFERENCES users (id) ON DELETE CASCADE") {
		t.Error("missing foreign key to target table")
	}
	if !strings.Contains(sql, "(user_id, series_hash, token_hash)") {
		t.Error("missing composite unique index")
	}
}
