// Package templates ships the built-in service phase templates. They are
// embedded as YAML and loaded once at startup; per-office overrides live
// in storage and are resolved on top of these by the template usecase.
package templates

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"gopkg.in/yaml.v3"

	"studioflow/internal/domain/entities"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

type stepFile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ExecTime    string `yaml:"exec_time"`
	Deliverable string `yaml:"deliverable"`
}

type phaseFile struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Color    string     `yaml:"color"`
	Duration string     `yaml:"duration"`
	Steps    []stepFile `yaml:"steps"`
}

type templateFile struct {
	ServiceID   string      `yaml:"service_id"`
	ServiceName string      `yaml:"service_name"`
	BaseArea    float64     `yaml:"base_area"`
	BaseRooms   int         `yaml:"base_rooms"`
	Phases      []phaseFile `yaml:"phases"`
}

// Catalog caches the parsed built-in templates.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]entities.ServiceTemplate
}

// LoadDefaults parses every embedded template file. A file without a
// service id or terminal phase is rejected; the binary ships them, so a
// failure here is a build defect.
func LoadDefaults() (*Catalog, error) {
	files, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	c := &Catalog{templates: make(map[string]entities.ServiceTemplate, len(files))}
	for _, f := range files {
		data, err := defaultsFS.ReadFile("defaults/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
		}

		var tf templateFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f.Name(), err)
		}
		if tf.ServiceID == "" {
			return nil, fmt.Errorf("template %s: service_id is required", f.Name())
		}

		tpl := fromTemplateFile(tf)
		if !tpl.HasPhase(entities.TerminalPhaseID) {
			return nil, fmt.Errorf("template %s: missing terminal phase %q", f.Name(), entities.TerminalPhaseID)
		}

		c.templates[tf.ServiceID] = tpl
		log.Printf("[templates] loaded default service_id=%s phases=%d hours=%d", tf.ServiceID, len(tpl.Phases), tpl.TotalHours())
	}
	return c, nil
}

// Get returns a deep copy of the default template for a service id.
func (c *Catalog) Get(serviceID string) (entities.ServiceTemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.templates[serviceID]
	if !ok {
		return entities.ServiceTemplate{}, false
	}
	return tpl.Clone(), true
}

// List returns deep copies of all default templates.
func (c *Catalog) List() []entities.ServiceTemplate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.ServiceTemplate, 0, len(c.templates))
	for _, tpl := range c.templates {
		out = append(out, tpl.Clone())
	}
	return out
}

func fromTemplateFile(tf templateFile) entities.ServiceTemplate {
	tpl := entities.ServiceTemplate{
		ServiceID:   tf.ServiceID,
		ServiceName: tf.ServiceName,
		BaseArea:    tf.BaseArea,
		BaseRooms:   tf.BaseRooms,
		Phases:      make([]entities.Phase, 0, len(tf.Phases)),
	}
	for _, pf := range tf.Phases {
		phase := entities.Phase{
			ID:       pf.ID,
			Name:     pf.Name,
			Color:    pf.Color,
			Duration: pf.Duration,
			Steps:    make([]entities.Step, 0, len(pf.Steps)),
		}
		for _, sf := range pf.Steps {
			phase.Steps = append(phase.Steps, entities.Step{
				ID:          sf.ID,
				Name:        sf.Name,
				ExecTime:    sf.ExecTime,
				Deliverable: sf.Deliverable,
			})
		}
		tpl.Phases = append(tpl.Phases, phase)
	}
	return tpl
}
