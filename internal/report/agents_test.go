package report

import (
	"strings"
	"testing"

	"github.com/otreport/otreport/internal/assessment"
	"github.com/otreport/otreport/internal/report/carecalc"
)

func TestDemographicsAgentPrunesEmptyRows(t *testing.T) {
	agent := NewDemographicsAgent(NewRegistry())
	doc := &assessment.Document{
		Demographics: &assessment.Demographics{
			FirstName:   "Jordan",
			LastName:    "Blake",
			DateOfBirth: "1980-09-20",
			Occupation:  "Electrician",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Structured) != 2 {
		t.Fatalf("expected client and social groups, got %d", len(c.Structured))
	}

	client := c.Structured[0]
	if client.Label != "Client" || len(client.Children) != 2 {
		t.Errorf("client group = %+v", client)
	}
	for _, row := range client.Children {
		if row.Value == "" {
			t.Errorf("empty row %q survived pruning", row.Label)
		}
	}
	if c.Structured[1].Label != "Social Status" {
		t.Errorf("second group = %q", c.Structured[1].Label)
	}
}

func TestDemographicsAgentNoEmergencyContact(t *testing.T) {
	agent := NewDemographicsAgent(NewRegistry())
	doc := &assessment.Document{
		Demographics: &assessment.Demographics{FirstName: "Jordan"},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range c.Structured {
		if g.Label == "Emergency Contact" {
			t.Error("emergency contact group rendered without data")
		}
	}
}

func TestDemographicsAgentNilDemographics(t *testing.T) {
	agent := NewDemographicsAgent(NewRegistry())
	c, err := agent.GenerateSection(&assessment.Document{})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %+v", c.Structured)
	}
}

func TestAttendantCareAgentFormBased(t *testing.T) {
	agent := NewAttendantCareAgent(NewRegistry())
	doc := &assessment.Document{
		AttendantCare: &assessment.AttendantCare{
			Level1: assessment.CareLevel{Sections: []assessment.CareSection{{
				Name: "Hygiene",
				Activities: []assessment.CareActivity{
					{Name: "Bathing", Minutes: 30, TimesPerWeek: 7},
				},
			}}},
		},
		// ADL data present too: the form must stay authoritative.
		ADL: &assessment.ADL{
			Basic: &assessment.BasicADL{
				Bathing: map[string]assessment.Activity{
					"shower": {Independence: assessment.TotalAssistance},
				},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Structured) != 4 {
		t.Fatalf("expected 3 level groups plus total, got %d", len(c.Structured))
	}
	// 210 weekly minutes -> 3.5 h -> 15.05 monthly hours at $14.90.
	if !strings.Contains(c.Narrative, "$224.24") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "care requirements form") {
		t.Errorf("narrative should name the form path: %q", c.Narrative)
	}
}

func TestAttendantCareAgentRateOverride(t *testing.T) {
	agent := NewAttendantCareAgent(NewRegistry())
	agent.SetRates(carecalc.Rates2010)

	doc := &assessment.Document{
		AttendantCare: &assessment.AttendantCare{
			Level1: assessment.CareLevel{Sections: []assessment.CareSection{{
				Activities: []assessment.CareActivity{{Minutes: 60, TimesPerWeek: 1}},
			}}},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	// 1 weekly hour -> 4.3 monthly hours at $11.63 = $50.01.
	if !strings.Contains(c.Narrative, "$50.01") || !strings.Contains(c.Narrative, "2010") {
		t.Errorf("narrative = %q", c.Narrative)
	}
}

func TestAttendantCareAgentIndependenceFallback(t *testing.T) {
	agent := NewAttendantCareAgent(NewRegistry())
	doc := &assessment.Document{
		ADL: &assessment.ADL{
			Basic: &assessment.BasicADL{
				Bathing: map[string]assessment.Activity{
					"shower": {Independence: assessment.ModerateAssistance},
				},
				Transfers: map[string]assessment.Activity{
					"bed": {Independence: assessment.Independent},
				},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	// Bathing: 1.5 x 0.5 x 30 = 22.5 hours/month. Transfers independent
	// contributes zero and no overnight block.
	if !strings.Contains(c.Narrative, "22.5 hours per month") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	for _, row := range c.Structured {
		if row.Label == "Overnight Care" {
			t.Error("overnight block added for independent transfers")
		}
	}
}

func TestAttendantCareAgentOvernightStep(t *testing.T) {
	agent := NewAttendantCareAgent(NewRegistry())
	doc := &assessment.Document{
		ADL: &assessment.ADL{
			Basic: &assessment.BasicADL{
				Transfers: map[string]assessment.Activity{
					"bed": {Independence: assessment.MaximalAssistance},
				},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	// Transfers: 0.5 x 0.75 x 30 = 11.25, plus the 60-hour overnight block.
	if !strings.Contains(c.Narrative, "71.2 hours per month") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	var overnight bool
	for _, row := range c.Structured {
		if row.Label == "Overnight Care" {
			overnight = true
		}
	}
	if !overnight {
		t.Error("expected an overnight care row")
	}
}

func TestAttendantCareAgentNoData(t *testing.T) {
	agent := NewAttendantCareAgent(NewRegistry())
	c, err := agent.GenerateSection(&assessment.Document{})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %+v", c)
	}
}

func TestMedicalHistoryAgentFragments(t *testing.T) {
	agent := NewMedicalHistoryAgent(NewRegistry())
	doc := &assessment.Document{
		MedicalHistory: &assessment.MedicalHistory{
			PreExisting: "mild hypertension",
			Conditions: []assessment.Condition{
				{Name: "Type 2 diabetes", Diagnosed: "2018-04-01"},
			},
			Medications: []assessment.Medication{
				{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily"},
			},
			Allergies: "penicillin",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Pre-existing conditions: mild hypertension",
		"Type 2 diabetes (diagnosed April 1, 2018)",
		"Current medications: Metformin 500mg twice daily.",
		"Allergies: penicillin",
	} {
		if !strings.Contains(c.Narrative, want) {
			t.Errorf("narrative missing %q:\n%s", want, c.Narrative)
		}
	}
	if strings.Contains(c.Narrative, "Surgical history") {
		t.Error("surgeries fragment rendered without data")
	}
}

func TestCourseOfRecoveryAgentTimeline(t *testing.T) {
	agent := NewCourseOfRecoveryAgent(NewRegistry())
	doc := &assessment.Document{
		MedicalHistory: &assessment.MedicalHistory{
			Injury: &assessment.Injury{InitialTreatment: "assessed in the emergency department"},
			CurrentTreatment: []assessment.Treatment{
				{Provider: "Dr. Osei", StartDate: "2023-07-01", EndDate: "2023-12-01"},
				{ProviderType: "Physiotherapy", StartDate: "2024-01-10"},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.Narrative, "Initial treatment: assessed in the emergency department") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "previously received treatment with Dr. Osei") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "currently receiving treatment with Physiotherapy") {
		t.Errorf("narrative = %q", c.Narrative)
	}
}

func TestDemographicsAgentOnlySocialFields(t *testing.T) {
	agent := NewDemographicsAgent(NewRegistry())
	doc := &assessment.Document{
		Demographics: &assessment.Demographics{
			Occupation: "Electrician",
			Employer:   "Fraser Valley Electrical",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Structured) != 1 {
		t.Fatalf("expected only the social group, got %d groups", len(c.Structured))
	}
	if c.Structured[0].Label != "Social Status" {
		t.Errorf("group = %q, want Social Status", c.Structured[0].Label)
	}
}

func TestSubjectiveAgentSymptomBlocks(t *testing.T) {
	agent := NewSubjectiveAgent(NewRegistry())
	doc := &assessment.Document{
		Symptoms: &assessment.Symptoms{
			Physical: []assessment.Symptom{{
				Location:    "Lower back",
				Severity:    "Severe",
				Frequency:   "Daily",
				Description: "A deep ache across the lumbar region.",
				Aggravating: "prolonged sitting",
				Relieving:   "heat and position changes",
				Impact:      "unable to lift more than 5 kg",
			}},
			Cognitive: []assessment.Symptom{{
				Location: "Memory",
				Severity: "Moderate",
			}},
			GeneralNotes: "Symptoms worsen over the course of the day.",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Physical Symptoms:\nLower back: severe, occurring daily. A deep ache across the lumbar region.",
		"Aggravating factors: prolonged sitting",
		"Relieving factors: heat and position changes",
		"Functional impact: unable to lift more than 5 kg",
		"Cognitive Symptoms:\nMemory: moderate",
		"Symptoms worsen over the course of the day.",
	} {
		if !strings.Contains(c.Narrative, want) {
			t.Errorf("narrative missing %q:\n%s", want, c.Narrative)
		}
	}
	if strings.Contains(c.Narrative, "Emotional Symptoms") {
		t.Error("emotional heading rendered with no emotional symptoms")
	}
}

func TestSubjectiveAgentSkipsSymptomsWithoutLocation(t *testing.T) {
	agent := NewSubjectiveAgent(NewRegistry())
	doc := &assessment.Document{
		Symptoms: &assessment.Symptoms{
			Physical: []assessment.Symptom{{Severity: "Severe", Frequency: "Daily"}},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(c.Narrative, "Physical Symptoms") {
		t.Errorf("domain heading rendered when every symptom lacks a location:\n%s", c.Narrative)
	}
}

func TestSymptomManagementAgentOnlyManagedSymptoms(t *testing.T) {
	agent := NewSymptomManagementAgent(NewRegistry())
	doc := &assessment.Document{
		Symptoms: &assessment.Symptoms{
			Physical: []assessment.Symptom{
				{Location: "Lower back", Management: "heat packs and activity pacing"},
				{Location: "Right knee"},
			},
			Cognitive: []assessment.Symptom{
				{Location: "Memory", Management: "phone reminders and a written planner"},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(c.Narrative, "The client reports the following management strategies:") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "Lower back: heat packs and activity pacing") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "Memory: phone reminders and a written planner") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if strings.Contains(c.Narrative, "Right knee") {
		t.Error("symptom without a management strategy rendered")
	}
}

func TestSymptomManagementAgentNoStrategies(t *testing.T) {
	agent := NewSymptomManagementAgent(NewRegistry())
	doc := &assessment.Document{
		Symptoms: &assessment.Symptoms{
			Physical: []assessment.Symptom{{Location: "Lower back"}},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %q", c.Narrative)
	}
}

func TestEnvironmentalAgentRoomSuppression(t *testing.T) {
	agent := NewEnvironmentalAgent(NewRegistry())
	doc := &assessment.Document{
		Environmental: &assessment.Environmental{
			Property: &assessment.Property{
				Type:  "Two-storey detached house",
				Entry: "three concrete steps, no handrail",
			},
			Rooms: map[string]assessment.Room{
				"bathroom": {
					Hazards:         []string{"no grab bars at the tub"},
					Recommendations: []string{"install grab bars", "non-slip tub mat"},
				},
				"living_room": {Notes: "notes alone carry no findings"},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Structured) != 1 || c.Structured[0].Label != "Property Overview" {
		t.Fatalf("structured = %+v", c.Structured)
	}
	if len(c.Structured[0].Children) != 2 {
		t.Errorf("empty property rows survived pruning: %+v", c.Structured[0].Children)
	}

	want := "Bathroom\nHazards:\n- no grab bars at the tub\nRecommendations:\n- install grab bars\n- non-slip tub mat"
	if !strings.Contains(c.Narrative, want) {
		t.Errorf("narrative missing bathroom block:\n%s", c.Narrative)
	}
	if strings.Contains(c.Narrative, "Living Room") {
		t.Error("room with no findings rendered")
	}
}

func TestEnvironmentalAgentSafetyBlock(t *testing.T) {
	agent := NewEnvironmentalAgent(NewRegistry())
	doc := &assessment.Document{
		Environmental: &assessment.Environmental{
			Safety: &assessment.Safety{
				Hazards:  []string{"loose rugs in the hallway"},
				Concerns: []string{"client ambulates without gait aid at night"},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.Narrative, "General Safety\nConcerns:\n- client ambulates without gait aid at night\nHazards:\n- loose rugs in the hallway") {
		t.Errorf("narrative = %q", c.Narrative)
	}
}

func TestADLAgentIndependenceBullets(t *testing.T) {
	agent := NewADLAgent(NewRegistry())
	doc := &assessment.Document{
		ADL: &assessment.ADL{
			Basic: &assessment.BasicADL{
				Bathing: map[string]assessment.Activity{
					"shower":       {Independence: assessment.ModerateAssistance, Notes: "uses a shower chair"},
					"hair_washing": {},
				},
			},
			IADL: &assessment.IADL{
				Household: map[string]assessment.Activity{
					"meal_prep": {Notes: "fatigues after ten minutes of standing"},
				},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.Narrative, "Bathing:\n- Shower: moderate assistance (uses a shower chair)") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "Household Tasks:\n- Meal Prep (fatigues after ten minutes of standing)") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if strings.Contains(c.Narrative, "Hair Washing") {
		t.Error("unrated activity without notes rendered")
	}
	if strings.Contains(c.Narrative, "Dressing") {
		t.Error("empty category heading rendered")
	}
}

func TestADLAgentAllActivitiesUnrated(t *testing.T) {
	agent := NewADLAgent(NewRegistry())
	doc := &assessment.Document{
		ADL: &assessment.ADL{
			Basic: &assessment.BasicADL{
				Feeding: map[string]assessment.Activity{"utensils": {}},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %q", c.Narrative)
	}
}

func TestTypicalDayAgentContrastsRoutines(t *testing.T) {
	agent := NewTypicalDayAgent(NewRegistry())
	doc := &assessment.Document{
		TypicalDay: &assessment.TypicalDay{
			PreAccident: &assessment.DayProfile{
				Daily: &assessment.DailyRoutines{
					Routines: &assessment.RoutineBlocks{
						Morning: assessment.RoutineBlock{Activities: "gym before an eight-hour shift"},
						Evening: assessment.RoutineBlock{Activities: "coached a youth soccer team"},
					},
				},
			},
			Current: &assessment.DayProfile{
				Daily: &assessment.DailyRoutines{
					Routines: &assessment.RoutineBlocks{
						Morning:   assessment.RoutineBlock{Activities: "slow start due to stiffness"},
						Afternoon: assessment.RoutineBlock{Activities: "  "},
					},
				},
			},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.Narrative, "Pre-Accident Routine\nMorning: gym before an eight-hour shift\nEvening: coached a youth soccer team") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "Current Routine\nMorning: slow start due to stiffness") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if strings.Contains(c.Narrative, "Afternoon") {
		t.Error("blank routine period rendered")
	}
}

func TestTypicalDayAgentMissingProfile(t *testing.T) {
	agent := NewTypicalDayAgent(NewRegistry())
	doc := &assessment.Document{
		TypicalDay: &assessment.TypicalDay{PreAccident: &assessment.DayProfile{}},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("expected empty content, got %q", c.Narrative)
	}
}

func TestFunctionalAgentFindings(t *testing.T) {
	agent := NewFunctionalAgent(NewRegistry())
	doc := &assessment.Document{
		FunctionalAssessment: &assessment.FunctionalAssessment{
			RangeOfMotion: []assessment.ROMFinding{
				{Joint: "Shoulder", Movement: "Flexion", Left: "120 degrees", Right: "WNL"},
			},
			ManualMuscle: []assessment.StrengthFinding{
				{MuscleGroup: "Grip", Left: "4/5", Notes: "pain-limited"},
			},
			Transfers: &assessment.Transfers{SitToStand: "independent with arm push-off"},
			Balance:   "steady on level surfaces, hesitant on stairs",
			Notes:     "Observed guarding throughout lumbar movement.",
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}

	labels := make([]string, 0, len(c.Structured))
	for _, g := range c.Structured {
		labels = append(labels, g.Label)
	}
	for _, want := range []string{"Range of Motion - Shoulder Flexion", "Strength - Grip", "Transfers"} {
		found := false
		for _, l := range labels {
			if l == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing group %q in %v", want, labels)
		}
	}

	rom := c.Structured[0]
	if len(rom.Children) != 2 {
		t.Errorf("ROM group = %+v", rom.Children)
	}

	grip := c.Structured[1]
	for _, row := range grip.Children {
		if row.Label == "Right" && row.Value != "Not assessed" {
			t.Errorf("unmeasured side = %q, want Not assessed", row.Value)
		}
	}

	if !strings.Contains(c.Narrative, "Balance: steady on level surfaces") {
		t.Errorf("narrative = %q", c.Narrative)
	}
	if !strings.Contains(c.Narrative, "Observed guarding throughout lumbar movement.") {
		t.Errorf("narrative = %q", c.Narrative)
	}
}

func TestFunctionalAgentSkipsUnnamedFindings(t *testing.T) {
	agent := NewFunctionalAgent(NewRegistry())
	doc := &assessment.Document{
		FunctionalAssessment: &assessment.FunctionalAssessment{
			RangeOfMotion: []assessment.ROMFinding{{Left: "90"}},
			ManualMuscle:  []assessment.StrengthFinding{{Left: "3/5"}},
		},
	}

	c, err := agent.GenerateSection(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Empty() {
		t.Errorf("findings without a joint or muscle group rendered: %+v", c.Structured)
	}
}
