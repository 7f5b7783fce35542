package queries

import (
	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/domain/catalog"
)

// GroupByBuilding lays a flat snapshot over the catalog. Every catalog building and classroom is
// present in the result; classrooms missing from the snapshot get an empty availability list.
// Snapshot entries for classrooms outside the catalog are dropped.
func GroupByBuilding(cat *catalog.Catalog, snap availability.Snapshot) map[string]BuildingView {
	buildings := cat.Buildings()
	out := make(map[string]BuildingView, len(buildings))

	for _, b := range buildings {
		rooms := cat.ClassroomsIn(b.Code)
		views := make([]ClassroomView, 0, len(rooms))
		for _, r := range rooms {
			views = append(views, ClassroomView{
				ID:           r.ID,
				Name:         r.Name,
				Availability: snap.SlotsFor(r.ID),
			})
		}
		out[b.Code] = BuildingView{
			Code:       b.Code,
			Name:       b.Name,
			Classrooms: views,
		}
	}
	return out
}
