// File: studiobook/devserver/state.go
package devserver

import (
	"strings"
	"sync"

	"studiobook/models"
)

// state holds every collection the stub serves. One mutex covers it all:
// each handler runs its reads and writes as a single critical section, so
// a booking's capacity check and increment can never interleave.
type state struct {
	mu           sync.Mutex
	users        []*models.User
	passwords    map[string]string // user id -> bcrypt hash; absent for walk-in customers
	studios      []*models.Studio
	packages     []*models.Package
	timeSlots    []*models.TimeSlot
	equipment    []*models.Equipment
	appointments []*models.Appointment
}

func newState() *state {
	return &state{passwords: make(map[string]string)}
}

// Callers of every finder below hold st.mu.

func (st *state) userByID(id string) *models.User {
	for _, u := range st.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (st *state) userByEmail(email string) *models.User {
	for _, u := range st.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

func (st *state) studioByID(id string) *models.Studio {
	for _, studio := range st.studios {
		if studio.ID == id {
			return studio
		}
	}
	return nil
}

func (st *state) studioBySlug(slug string) *models.Studio {
	for _, studio := range st.studios {
		if studio.Slug == slug {
			return studio
		}
	}
	return nil
}

// ownedStudio returns the studio only when it is active and belongs to
// the given owner, the visibility rule every management endpoint shares.
func (st *state) ownedStudio(studioID, ownerID string) *models.Studio {
	studio := st.studioByID(studioID)
	if studio == nil || !studio.IsActive || studio.OwnerID != ownerID {
		return nil
	}
	return studio
}

func (st *state) packageByID(id string) *models.Package {
	for _, pkg := range st.packages {
		if pkg.ID == id {
			return pkg
		}
	}
	return nil
}

func (st *state) packageBySlug(studioID, slug string) *models.Package {
	for _, pkg := range st.packages {
		if pkg.StudioID == studioID && pkg.Slug == slug {
			return pkg
		}
	}
	return nil
}

func (st *state) slotByID(id string) *models.TimeSlot {
	for _, slot := range st.timeSlots {
		if slot.ID == id {
			return slot
		}
	}
	return nil
}

func (st *state) equipmentByID(id string) *models.Equipment {
	for _, item := range st.equipment {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (st *state) appointmentByID(id string) *models.Appointment {
	for _, appt := range st.appointments {
		if appt.ID == id {
			return appt
		}
	}
	return nil
}

// appointmentCountForPackage counts appointments referencing a package,
// which blocks package deletion.
func (st *state) appointmentCountForPackage(packageID string) int {
	n := 0
	for _, appt := range st.appointments {
		if appt.PackageID == packageID {
			n++
		}
	}
	return n
}

func (st *state) removeTimeSlot(id string) bool {
	for i, slot := range st.timeSlots {
		if slot.ID == id {
			st.timeSlots = append(st.timeSlots[:i], st.timeSlots[i+1:]...)
			return true
		}
	}
	return false
}

func (st *state) removeEquipment(id string) bool {
	for i, item := range st.equipment {
		if item.ID == id {
			st.equipment = append(st.equipment[:i], st.equipment[i+1:]...)
			return true
		}
	}
	return false
}

func (st *state) removePackage(id string) bool {
	for i, pkg := range st.packages {
		if pkg.ID == id {
			st.packages = append(st.packages[:i], st.packages[i+1:]...)
			return true
		}
	}
	return false
}
