package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCode          = errors.New("building code cannot be empty")
	ErrDuplicateBuilding  = errors.New("duplicate building code")
	ErrInvalidHours       = errors.New("business hours must satisfy 0 <= start < end <= 24")
	ErrEmptyClassroomID   = errors.New("classroom id cannot be empty")
	ErrDuplicateClassroom = errors.New("duplicate classroom id")
	ErrUnknownBuilding    = errors.New("classroom references unknown building")
)

type Building struct {
	Code              string  `yaml:"code"`
	Name              string  `yaml:"name"`
	BusinessStartHour float64 `yaml:"business_start_hour"`
	BusinessEndHour   float64 `yaml:"business_end_hour"`
}

// BusinessMinutes returns opening and closing as minutes after local midnight.
func (b Building) BusinessMinutes() (start, end int) {
	return int(b.BusinessStartHour * 60), int(b.BusinessEndHour * 60)
}

type Classroom struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	BuildingCode string `yaml:"building_code"`
}

// Catalog is the static building and classroom reference data. Order is significant: responses
// list classrooms in catalog order.
type Catalog struct {
	buildings  []Building
	classrooms []Classroom
	byCode     map[string]int
}

func New(buildings []Building, classrooms []Classroom) (*Catalog, error) {
	c := &Catalog{
		buildings:  make([]Building, 0, len(buildings)),
		classrooms: make([]Classroom, 0, len(classrooms)),
		byCode:     make(map[string]int, len(buildings)),
	}

	for _, b := range buildings {
		b.Code = strings.TrimSpace(b.Code)
		if b.Code == "" {
			return nil, ErrEmptyCode
		}
		if _, dup := c.byCode[b.Code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBuilding, b.Code)
		}
		if b.BusinessStartHour < 0 || b.BusinessEndHour > 24 || b.BusinessStartHour >= b.BusinessEndHour {
			return nil, fmt.Errorf("%w: %s", ErrInvalidHours, b.Code)
		}
		c.byCode[b.Code] = len(c.buildings)
		c.buildings = append(c.buildings, b)
	}

	seen := make(map[string]struct{}, len(classrooms))
	for _, r := range classrooms {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			return nil, ErrEmptyClassroomID
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClassroom, r.ID)
		}
		if _, ok := c.byCode[r.BuildingCode]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownBuilding, r.ID, r.BuildingCode)
		}
		seen[r.ID] = struct{}{}
		c.classrooms = append(c.classrooms, r)
	}

	return c, nil
}

func (c *Catalog) Buildings() []Building {
	out := make([]Building, len(c.buildings))
	copy(out, c.buildings)
	return out
}

func (c *Catalog) Classrooms() []Classroom {
	out := make([]Classroom, len(c.classrooms))
	copy(out, c.classrooms)
	return out
}

func (c *Catalog) Building(code string) (Building, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Building{}, false
	}
	return c.buildings[i], true
}

// ClassroomsIn returns the classrooms of a building in catalog order.
func (c *Catalog) ClassroomsIn(code string) []Classroom {
	var out []Classroom
	for _, r := range c.classrooms {
		if r.BuildingCode == code {
			out = append(out, r)
		}
	}
	return out
}
