// Package assessment defines the occupational-therapy assessment document:
// the nested JSON structure produced by the intake forms and consumed by the
// report pipeline. Every sub-tree is independently optional; consumers must
// tolerate nil sub-trees and render nothing rather than fail.
package assessment

// Document is the root assessment document.
type Document struct {
	Demographics         *Demographics         `json:"demographics,omitempty"`
	MedicalHistory       *MedicalHistory       `json:"medicalHistory,omitempty"`
	Symptoms             *Symptoms             `json:"symptoms,omitempty"`
	FunctionalAssessment *FunctionalAssessment `json:"functionalAssessment,omitempty"`
	ADL                  *ADL                  `json:"adl,omitempty"`
	Environmental        *Environmental        `json:"environmental,omitempty"`
	AttendantCare        *AttendantCare        `json:"attendantCare,omitempty"`
	TypicalDay           *TypicalDay           `json:"typicalDay,omitempty"`
}

// Demographics holds client identification and social context.
type Demographics struct {
	FirstName        string            `json:"firstName,omitempty"`
	LastName         string            `json:"lastName,omitempty"`
	DateOfBirth      string            `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Gender           string            `json:"gender,omitempty"`
	MaritalStatus    string            `json:"maritalStatus,omitempty"`
	Address          string            `json:"address,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	Email            string            `json:"email,omitempty"`
	Occupation       string            `json:"occupation,omitempty"`
	Employer         string            `json:"employer,omitempty"`
	LivingArrangement string            `json:"livingArrangement,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// MedicalHistory covers pre-accident status, the injury itself, and care
// received since.
type MedicalHistory struct {
	PreExisting      string       `json:"preExisting,omitempty"`
	Conditions       []Condition  `json:"conditions,omitempty"`
	Medications      []Medication `json:"medications,omitempty"`
	Injury           *Injury      `json:"injury,omitempty"`
	CurrentTreatment []Treatment  `json:"currentTreatment,omitempty"`
	Surgeries        string       `json:"surgeries,omitempty"`
	Allergies        string       `json:"allergies,omitempty"`
}

type Condition struct {
	Name      string `json:"name,omitempty"`
	Diagnosed string `json:"diagnosed,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type Medication struct {
	Name      string `json:"name,omitempty"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
}

type Injury struct {
	Date              string `json:"date,omitempty"` // YYYY-MM-DD
	Circumstance      string `json:"circumstance,omitempty"`
	Description       string `json:"description,omitempty"`
	ImmediateSymptoms string `json:"immediateSymptoms,omitempty"`
	InitialTreatment  string `json:"initialTreatment,omitempty"`
}

type Treatment struct {
	Provider     string `json:"provider,omitempty"`
	ProviderType string `json:"providerType,omitempty"`
	Focus        string `json:"focus,omitempty"`
	StartDate    string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate      string `json:"endDate,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Symptoms groups reported symptoms by clinical domain.
type Symptoms struct {
	Physical     []Symptom `json:"physical,omitempty"`
	Cognitive    []Symptom `json:"cognitive,omitempty"`
	Emotional    []Symptom `json:"emotional,omitempty"`
	GeneralNotes string    `json:"generalNotes,omitempty"`
}

// Symptom is one reported symptom. Location doubles as the cognitive or
// emotional domain name for non-physical symptoms.
type Symptom struct {
	Location    string `json:"location,omitempty"`
	Severity    string `json:"severity,omitempty"`  // None..Very Severe
	Frequency   string `json:"frequency,omitempty"` // Rarely..Constantly
	Description string `json:"description,omitempty"`
	Aggravating string `json:"aggravating,omitempty"`
	Relieving   string `json:"relieving,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Management  string `json:"management,omitempty"`
}

// FunctionalAssessment captures the objective physical findings.
type FunctionalAssessment struct {
	RangeOfMotion      []ROMFinding        `json:"rangeOfMotion,omitempty"`
	ManualMuscle       []StrengthFinding   `json:"manualMuscle,omitempty"`
	Balance            string              `json:"balance,omitempty"`
	Transfers          *Transfers          `json:"transfers,omitempty"`
	PosturalTolerances *PosturalTolerances `json:"posturalTolerances,omitempty"`
	Notes              string              `json:"notes,omitempty"`
}

type ROMFinding struct {
	Joint    string `json:"joint,omitempty"`
	Movement string `json:"movement,omitempty"`
	Left     string `json:"left,omitempty"`
	Right    string `json:"right,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type StrengthFinding struct {
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Left        string `json:"left,omitempty"`
	Right       string `json:"right,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type Transfers struct {
	BedMobility string `json:"bedMobility,omitempty"`
	SitToStand  string `json:"sitToStand,omitempty"`
	Toilet      string `json:"toilet,omitempty"`
	Shower      string `json:"shower,omitempty"`
	Vehicle     string `json:"vehicle,omitempty"`
}

type PosturalTolerances struct {
	Sitting  string `json:"sitting,omitempty"`
	Standing string `json:"standing,omitempty"`
	Walking  string `json:"walking,omitempty"`
	Lifting  string `json:"lifting,omitempty"`
}

// ADL holds per-activity independence ratings. Each category maps
// sub-activity name to its rating.
type ADL struct {
	Basic *BasicADL `json:"basic,omitempty"`
	IADL  *IADL     `json:"iadl,omitempty"`
}

type BasicADL struct {
	Bathing   map[string]Activity `json:"bathing,omitempty"`
	Dressing  map[string]Activity `json:"dressing,omitempty"`
	Feeding   map[string]Activity `json:"feeding,omitempty"`
	Transfers map[string]Activity `json:"transfers,omitempty"`
	Toileting map[string]Activity `json:"toileting,omitempty"`
}

type IADL struct {
	Household map[string]Activity `json:"household,omitempty"`
	Community map[string]Activity `json:"community,omitempty"`
}

// Activity is one rated ADL or IADL sub-activity.
type Activity struct {
	Independence IndependenceLevel `json:"independence,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

// Environmental describes the home and its hazards.
type Environmental struct {
	Property *Property       `json:"property,omitempty"`
	Rooms    map[string]Room `json:"rooms,omitempty"`
	Safety   *Safety         `json:"safety,omitempty"`
}

type Property struct {
	Type     string `json:"type,omitempty"`
	Levels   string `json:"levels,omitempty"`
	Entry    string `json:"entry,omitempty"`
	Stairs   string `json:"stairs,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type Room struct {
	Modifications   []string `json:"modifications,omitempty"`
	Hazards         []string `json:"hazards,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

type Safety struct {
	Hazards         []string `json:"hazards,omitempty"`
	Concerns        []string `json:"concerns,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// AttendantCare is the clinician-entered care-requirements form: three
// regulatory levels, each a list of sections of timed activities. Slices
// rather than maps so document order survives the JSON round trip.
type AttendantCare struct {
	Level1 CareLevel `json:"level1,omitempty"` // routine personal care
	Level2 CareLevel `json:"level2,omitempty"` // basic supervisory functions
	Level3 CareLevel `json:"level3,omitempty"` // complex health care
}

type CareLevel struct {
	Sections []CareSection `json:"sections,omitempty"`
}

type CareSection struct {
	Name       string         `json:"name,omitempty"`
	Activities []CareActivity `json:"activities,omitempty"`
}

// CareActivity is one attendant-care line item. Minutes is per occurrence;
// TimesPerWeek is the weekly frequency (0..168).
type CareActivity struct {
	Name          string  `json:"name,omitempty"`
	Minutes       float64 `json:"minutes,omitempty"`
	TimesPerWeek  float64 `json:"timesPerWeek,omitempty"`
	Justification string  `json:"justification,omitempty"`
}

// TypicalDay contrasts pre-accident and current daily routines.
type TypicalDay struct {
	PreAccident *DayProfile `json:"preAccident,omitempty"`
	Current     *DayProfile `json:"current,omitempty"`
}

type DayProfile struct {
	Daily *DailyRoutines `json:"daily,omitempty"`
}

type DailyRoutines struct {
	Routines *RoutineBlocks `json:"routines,omitempty"`
}

type RoutineBlocks struct {
	Morning   RoutineBlock `json:"morning,omitempty"`
	Afternoon RoutineBlock `json:"afternoon,omitempty"`
	Evening   RoutineBlock `json:"evening,omitempty"`
	Night     RoutineBlock `json:"night,omitempty"`
}

// RoutineBlock carries a free-text activity list, comma or newline separated.
type RoutineBlock struct {
	Activities string `json:"activities,omitempty"`
}
