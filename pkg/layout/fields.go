package layout

// FieldID identifies one placeable text field of a certificate template.
// The set of valid ids is a contract with the generation templates: a
// placement saved under an unknown id would never be substituted.
type FieldID string

const (
	FieldAttendeeName  FieldID = "attendee_name"
	FieldEventTitle    FieldID = "event_title"
	FieldEventDate     FieldID = "event_date"
	FieldCpdCredits    FieldID = "cpd_credits"
	FieldOrganizerName FieldID = "organizer_name"
	FieldIssuedDate    FieldID = "issued_date"
)

// Position is the persisted shape of a field placement, expressed in
// document points (1/72 inch). Pixel coordinates are derived from it and
// never stored.
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

// FieldSpec declares one known field together with its default placement.
// The spec list is injected into the editor so that handlers, renderer and
// tests all validate against the same source of truth.
type FieldSpec struct {
	ID      FieldID
	Label   string
	Default Position
}

// Field is the ephemeral, on-screen view of a placement. X and Y are in
// screen pixels at the editor's current scale; FontSize stays in points
// (only its rendered size depends on scale).
type Field struct {
	ID       FieldID `json:"id"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

// DefaultFields returns the field set used by the certificate templates.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldAttendeeName, Label: "Attendee Name", Default: Position{X: 100, Y: 100, FontSize: 24}},
		{ID: FieldEventTitle, Label: "Event Title", Default: Position{X: 100, Y: 160, FontSize: 18}},
		{ID: FieldEventDate, Label: "Event Date", Default: Position{X: 100, Y: 200, FontSize: 14}},
		{ID: FieldCpdCredits, Label: "CPD Credits", Default: Position{X: 100, Y: 240, FontSize: 14}},
		{ID: FieldOrganizerName, Label: "Organizer Name", Default: Position{X: 100, Y: 300, FontSize: 14}},
		{ID: FieldIssuedDate, Label: "Issued Date", Default: Position{X: 100, Y: 340, FontSize: 12}},
	}
}

// FieldIDs returns the ids of the given specs in declaration order.
func FieldIDs(specs []FieldSpec) []FieldID {
	ids := make([]FieldID, 0, len(specs))
	for _, s := range specs {
		ids = append(ids, s.ID)
	}
	return ids
}
