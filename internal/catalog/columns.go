package catalog

// Column describes a single schema column contributed to the target table.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default string // SQL default literal, empty when none
}

// contributions maps each capability to the columns it adds to the target
// table. Capabilities absent from this table (invitable, registerable)
// contribute nothing to the target table itself; invitable gets its own
// table instead.
var contributions = map[Capability][]Column{
	Authenticatable: {
		{Name: "password_hash", Type: "varchar(255)"},
	},
	Recoverable: {
		{Name: "reset_password_token", Type: "varchar(255)"},
		{Name: "reset_password_sent_at", Type: "timestamp"},
	},
	Lockable: {
		{Name: "failed_attempts", Type: "integer", NotNull: true, Default: "0"},
		{Name: "locked_at", Type: "timestamp"},
	},
	Trackable: {
		{Name: "sign_in_count", Type: "integer", NotNull: true, Default: "0"},
		{Name: "current_sign_in_at", Type: "timestamp"},
		{Name: "last_sign_in_at", Type: "timestamp"},
		{Name: "current_sign_in_ip", Type: "varchar(255)"},
		{Name: "last_sign_in_ip", Type: "varchar(255)"},
	},
	UnlockableWithToken: {
		{Name: "unlock_token", Type: "varchar(255)"},
	},
	Confirmable: {
		{Name: "confirmation_token", Type: "varchar(255)"},
		{Name: "confirmed_at", Type: "timestamp"},
		{Name: "confirmation_sent_at", Type: "timestamp"},
	},
	Rememberable: {
		{Name: "remember_created_at", Type: "timestamp"},
	},
}

// Columns returns the schema columns contributed by c. The returned slice
// must not be modified.
func Columns(c Capability) []Column {
	return contributions[c]
}

// ContributedColumns concatenates the columns of every enabled capability in
// catalog declaration order, independent of insertion order.
func ContributedColumns(s Set) []Column {
	var out []Column
	for _, c := range All {
		if s.Has(c) {
			out = append(out, contributions[c]...)
		}
	}
	return out
}
