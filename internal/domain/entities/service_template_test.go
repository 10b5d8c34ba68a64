package entities

import "testing"

func TestStepHours(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"8h", 8},
		{"12 horas", 12},
		{"aprox. 4h", 4},
		{"duas semanas", 0},
		{"", 0},
		{"3h + revisao 2h", 3},
	}
	for _, tc := range cases {
		if got := StepHours(tc.label); got != tc.want {
			t.Fatalf("StepHours(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestServiceTemplate_TotalHours(t *testing.T) {
	tpl := ServiceTemplate{
		Phases: []Phase{
			{ID: "briefing", Steps: []Step{{ExecTime: "8h"}, {ExecTime: "4h"}}},
			{ID: "projeto", Steps: []Step{{ExecTime: "16h"}, {ExecTime: "sem prazo"}}},
			{ID: TerminalPhaseID},
		},
	}
	if got := tpl.TotalHours(); got != 28 {
		t.Fatalf("expected 28 hours, got %d", got)
	}
}

func TestServiceTemplate_PhaseLookups(t *testing.T) {
	tpl := ServiceTemplate{Phases: []Phase{{ID: "briefing"}, {ID: TerminalPhaseID}}}

	ids := tpl.PhaseIDs()
	if len(ids) != 2 || ids[0] != "briefing" || ids[1] != TerminalPhaseID {
		t.Fatalf("unexpected phase ids: %v", ids)
	}
	if !tpl.HasPhase("briefing") || tpl.HasPhase("obra") {
		t.Fatalf("unexpected HasPhase results")
	}
}
