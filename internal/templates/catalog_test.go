package templates

import (
	"testing"

	"studioflow/internal/domain/entities"
)

func TestLoadDefaults(t *testing.T) {
	c, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, serviceID := range []string{"interiores", "arquitetura", "paisagismo"} {
		tpl, ok := c.Get(serviceID)
		if !ok {
			t.Fatalf("missing default template for %s", serviceID)
		}
		if len(tpl.Phases) == 0 {
			t.Fatalf("%s: no phases", serviceID)
		}
		if last := tpl.Phases[len(tpl.Phases)-1]; last.ID != entities.TerminalPhaseID {
			t.Fatalf("%s: expected terminal phase last, got %s", serviceID, last.ID)
		}
		if tpl.TotalHours() == 0 {
			t.Fatalf("%s: expected timed steps", serviceID)
		}
		if tpl.BaseArea <= 0 || tpl.BaseRooms <= 0 {
			t.Fatalf("%s: missing base reference: %+v", serviceID, tpl)
		}
	}
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tpl, _ := c.Get("interiores")
	tpl.Phases[0].Name = "mutated"
	tpl.Phases[0].Steps[0].ExecTime = "999h"

	again, _ := c.Get("interiores")
	if again.Phases[0].Name == "mutated" || again.Phases[0].Steps[0].ExecTime == "999h" {
		t.Fatal("catalog template was aliased by a caller mutation")
	}
}

func TestCatalog_GetUnknownService(t *testing.T) {
	c, err := LoadDefaults()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Get("consultoria"); ok {
		t.Fatal("expected no template for unknown service")
	}
}
