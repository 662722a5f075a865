package worklog

import "fmt"

// Identity says whether a day has been stored by the backend yet. The only
// implementations are Provisional and Persisted.
type Identity interface {
	isIdentity()
	// Key is a stable string form for logs and clients
	Key() string
}

// Provisional marks a day that exists only in this session
type Provisional struct {
	Token string
}

func (Provisional) isIdentity() {}

func (p Provisional) Key() string { return "temp-" + p.Token }

// Persisted marks a day stored by the backend under ID
type Persisted struct {
	ID int64
}

func (Persisted) isIdentity() {}

func (p Persisted) Key() string { return fmt.Sprintf("%d", p.ID) }

// PersistedID returns the backend id and true when the identity is persisted
func PersistedID(id Identity) (int64, bool) {
	p, ok := id.(Persisted)
	if !ok {
		return 0, false
	}
	return p.ID, true
}

type Field string

const (
	FieldMorningIn    Field = "morning_in"
	FieldMorningOut   Field = "morning_out"
	FieldAfternoonIn  Field = "afternoon_in"
	FieldAfternoonOut Field = "afternoon_out"
)

// AllFields lists the four time fields in display order
func AllFields() []Field {
	return []Field{FieldMorningIn, FieldMorningOut, FieldAfternoonIn, FieldAfternoonOut}
}

// Default is the time a field is filled with when focused while empty
func (f Field) Default() string {
	switch f {
	case FieldMorningIn:
		return "08:00"
	case FieldMorningOut:
		return "12:00"
	case FieldAfternoonIn:
		return "13:00"
	case FieldAfternoonOut:
		return "17:00"
	}
	return ""
}

type Pair string

const (
	PairMorning   Pair = "morning"
	PairAfternoon Pair = "afternoon"
)

// Times holds the four optional HH:MM values of a day; "" means absent
type Times struct {
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
}

func (t Times) Get(f Field) string {
	switch f {
	case FieldMorningIn:
		return t.MorningIn
	case FieldMorningOut:
		return t.MorningOut
	case FieldAfternoonIn:
		return t.AfternoonIn
	case FieldAfternoonOut:
		return t.AfternoonOut
	}
	return ""
}

func (t *Times) Set(f Field, v string) {
	switch f {
	case FieldMorningIn:
		t.MorningIn = v
	case FieldMorningOut:
		t.MorningOut = v
	case FieldAfternoonIn:
		t.AfternoonIn = v
	case FieldAfternoonOut:
		t.AfternoonOut = v
	}
}

// PairWarning reports a pair whose out time is not after its in time.
// The pair contributes nothing to the total; the other pair is unaffected.
type PairWarning struct {
	Pair Pair
	In   string
	Out  string
}

func (w PairWarning) Message() string {
	return fmt.Sprintf("%s out time (%s) must be after in time (%s)", w.Pair, w.Out, w.In)
}

// WeekDay is one generated calendar day of a week
type WeekDay struct {
	Date    string
	Weekday string
}

// DayRecord is the editable row for one date of the loaded week
type DayRecord struct {
	Date        string
	Weekday     string
	Identity    Identity
	Times       Times
	Description string
	// TotalHours is derived from Times and never read back from the backend
	TotalHours string
	// PersistedDescription is the description as last stored, used to decide
	// whether a save records a history entry
	PersistedDescription string
}

// IsPersisted reports whether the backend already stores this day
func (r *DayRecord) IsPersisted() bool {
	_, ok := PersistedID(r.Identity)
	return ok
}

// Clone returns a copy safe to hand outside the session lock
func (r *DayRecord) Clone() *DayRecord {
	c := *r
	return &c
}
