// File: studiobook/devserver/appointments.go
package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

// renderAppointment copies an appointment and embeds fresh customer and
// slot snapshots, the shape list views consume. Caller holds st.mu.
func (st *state) renderAppointment(appt *models.Appointment) models.Appointment {
	out := *appt
	if u := st.userByID(appt.CustomerID); u != nil {
		out.Customer = &models.Customer{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
			CreatedAt: u.CreatedAt,
		}
	}
	if slot := st.slotByID(appt.TimeSlotID); slot != nil {
		slotCopy := *slot
		out.TimeSlot = &slotCopy
	}
	return out
}

// applyAppointmentStatus transitions an appointment and stamps the
// matching timestamp. Cancelling frees the slot's capacity unless the
// session already ran. Caller holds st.mu.
func (st *state) applyAppointmentStatus(appt *models.Appointment, status models.AppointmentStatus, reason string) {
	if appt.Status == status {
		return
	}
	prev := appt.Status
	now := time.Now().UTC()
	appt.Status = status
	appt.UpdatedAt = now

	switch status {
	case models.AppointmentConfirmed:
		appt.ConfirmedAt = &now
	case models.AppointmentCancelled:
		appt.CancelledAt = &now
		if reason != "" {
			appt.CancellationReason = reason
		}
		if prev != models.AppointmentCompleted {
			if slot := st.slotByID(appt.TimeSlotID); slot != nil && slot.CurrentBookings > 0 {
				slot.CurrentBookings--
			}
		}
	}
}

func (s *Server) handleListAppointments(c *gin.Context) {
	user := currentUser(c)

	studioID := c.Query("studio_id")
	statusFilter := models.AppointmentStatus(c.Query("status_filter"))
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	s.state.mu.Lock()
	if studioID != "" && s.state.ownedStudio(studioID, user.ID) == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	appointments := make([]models.Appointment, 0)
	for _, appt := range s.state.appointments {
		if studioID != "" {
			if appt.StudioID != studioID {
				continue
			}
		} else if s.state.ownedStudio(appt.StudioID, user.ID) == nil {
			continue
		}
		if statusFilter != "" && appt.Status != statusFilter {
			continue
		}
		if dateFrom != "" || dateTo != "" {
			slot := s.state.slotByID(appt.TimeSlotID)
			if slot == nil {
				continue
			}
			if dateFrom != "" && slot.Date < dateFrom {
				continue
			}
			if dateTo != "" && slot.Date > dateTo {
				continue
			}
		}
		appointments = append(appointments, s.state.renderAppointment(appt))
	}
	s.state.mu.Unlock()

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
	})
	if skip >= len(appointments) {
		appointments = []models.Appointment{}
	} else {
		appointments = appointments[skip:]
		if limit > 0 && limit < len(appointments) {
			appointments = appointments[:limit]
		}
	}
	c.JSON(http.StatusOK, appointments)
}

// ownedAppointment resolves the appointment only when it belongs to one
// of the caller's studios. Caller holds st.mu.
func (st *state) ownedAppointment(appointmentID, ownerID string) *models.Appointment {
	appt := st.appointmentByID(appointmentID)
	if appt == nil || st.ownedStudio(appt.StudioID, ownerID) == nil {
		return nil
	}
	return appt
}

func (s *Server) handleGetAppointment(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	appt := s.state.ownedAppointment(c.Param("appointment_id"), user.ID)
	var out models.Appointment
	if appt != nil {
		out = s.state.renderAppointment(appt)
	}
	s.state.mu.Unlock()

	if appt == nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateAppointment(c *gin.Context) {
	var update models.AppointmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	appt := s.state.ownedAppointment(c.Param("appointment_id"), user.ID)
	if appt == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	if update.Notes != nil {
		appt.Notes = *update.Notes
	}
	if update.SpecialRequirements != nil {
		appt.SpecialRequirements = *update.SpecialRequirements
	}
	if update.EquipmentRequested != nil {
		appt.EquipmentRequested = update.EquipmentRequested
	}
	if update.Status != nil {
		s.state.applyAppointmentStatus(appt, *update.Status, "")
	}
	appt.UpdatedAt = time.Now().UTC()
	out := s.state.renderAppointment(appt)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleConfirmAppointment(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	appt := s.state.ownedAppointment(c.Param("appointment_id"), user.ID)
	if appt == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	if appt.Status != models.AppointmentPending {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Only pending appointments can be confirmed")
		return
	}
	s.state.applyAppointmentStatus(appt, models.AppointmentConfirmed, "")
	out := s.state.renderAppointment(appt)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCancelAppointment(c *gin.Context) {
	user := currentUser(c)
	reason := c.Query("reason")

	s.state.mu.Lock()
	appt := s.state.ownedAppointment(c.Param("appointment_id"), user.ID)
	if appt == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	if appt.Status == models.AppointmentCancelled {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Appointment is already cancelled")
		return
	}
	if appt.Status == models.AppointmentCompleted {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Cannot cancel completed appointment")
		return
	}
	s.state.applyAppointmentStatus(appt, models.AppointmentCancelled, reason)
	out := s.state.renderAppointment(appt)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}
