// File: studiobook/devserver/public.go
package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePublicStudio(c *gin.Context) {
	s.state.mu.Lock()
	studio := s.state.studioBySlug(c.Param("studio"))
	var out models.Studio
	found := studio != nil && studio.IsActive
	if found {
		out = *studio
	}
	s.state.mu.Unlock()

	if !found {
		utils.JSONError(c, http.StatusNotFound, "Studio not found")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handlePublicStudioPackages(c *gin.Context) {
	s.state.mu.Lock()
	studio := s.state.studioBySlug(c.Param("studio"))
	if studio == nil || !studio.IsActive {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found")
		return
	}
	packages := make([]models.Package, 0)
	for _, pkg := range s.state.packages {
		if pkg.StudioID == studio.ID && pkg.Status == models.PackageActive && pkg.IsPublic {
			packages = append(packages, *pkg)
		}
	}
	s.state.mu.Unlock()

	sortPackagesForDisplay(packages)
	c.JSON(http.StatusOK, packages)
}

// handleAvailableSlots lists bookable windows for a studio. The :studio
// segment carries the studio id here, not the slug.
func (s *Server) handleAvailableSlots(c *gin.Context) {
	packageID := c.Query("package_id")

	dateFrom := c.Query("date_from")
	if dateFrom == "" {
		dateFrom = time.Now().Format(utils.DateLayout)
	}
	from, err := time.Parse(utils.DateLayout, dateFrom)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	dateTo := c.Query("date_to")
	if dateTo == "" {
		dateTo = from.AddDate(0, 0, 30).Format(utils.DateLayout)
	} else if _, err := time.Parse(utils.DateLayout, dateTo); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	s.state.mu.Lock()
	studio := s.state.studioByID(c.Param("studio"))
	if studio == nil || !studio.IsActive {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found")
		return
	}

	var basePrice float64
	if packageID != "" {
		pkg := s.state.packageByID(packageID)
		if pkg == nil || pkg.StudioID != studio.ID || pkg.Status != models.PackageActive || !pkg.IsPublic {
			s.state.mu.Unlock()
			utils.JSONError(c, http.StatusNotFound, "Package not found or not available")
			return
		}
		basePrice = pkg.BasePrice
	}

	available := make([]models.AvailableSlot, 0)
	for _, slot := range s.state.timeSlots {
		if slot.StudioID != studio.ID || !slot.Bookable() {
			continue
		}
		if slot.Date < dateFrom || slot.Date > dateTo {
			continue
		}
		if packageID != "" && slot.PackageID != "" && slot.PackageID != packageID {
			continue
		}
		price := 0.0
		switch {
		case slot.OverridePrice != nil:
			price = *slot.OverridePrice
		case packageID != "":
			price = basePrice
		}
		available = append(available, models.AvailableSlot{
			ID:                slot.ID,
			Date:              slot.Date,
			StartTime:         slot.StartTime,
			EndTime:           slot.EndTime,
			AvailableCapacity: slot.AvailableCapacity(),
			Price:             price,
		})
	}
	s.state.mu.Unlock()

	sort.Slice(available, func(i, j int) bool {
		if available[i].Date != available[j].Date {
			return available[i].Date < available[j].Date
		}
		return available[i].StartTime < available[j].StartTime
	})
	c.JSON(http.StatusOK, available)
}

// getOrCreateCustomer finds the account for a booking email or creates a
// walk-in customer account without a password. Caller holds st.mu.
func (st *state) getOrCreateCustomer(req models.PublicBookingRequest) *models.User {
	if user := st.userByEmail(req.CustomerEmail); user != nil {
		return user
	}
	user := &models.User{
		ID:        utils.GenerateID(),
		Email:     req.CustomerEmail,
		FirstName: req.CustomerFirstName,
		LastName:  req.CustomerLastName,
		Phone:     req.CustomerPhone,
		Timezone:  "UTC",
		Role:      models.RoleCustomer,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	st.users = append(st.users, user)
	return user
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	var req models.PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	today := time.Now().Format(utils.DateLayout)

	s.state.mu.Lock()
	pkg := s.state.packageByID(req.PackageID)
	if pkg == nil || pkg.Status != models.PackageActive || !pkg.IsPublic {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Package not found or not available for booking")
		return
	}

	slot := s.state.slotByID(req.TimeSlotID)
	if slot == nil || slot.StudioID != pkg.StudioID || !slot.Bookable() || slot.Date < today {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Time slot not available or fully booked")
		return
	}
	if slot.PackageID != "" && slot.PackageID != pkg.ID {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "This time slot is not available for the selected package")
		return
	}

	duration := pkg.DurationMinutes
	if req.DurationMinutes > 0 {
		if !pkg.AllowCustomDuration {
			s.state.mu.Unlock()
			utils.JSONError(c, http.StatusBadRequest, "Custom duration not allowed for this package")
			return
		}
		if pkg.MinDurationMinutes > 0 && req.DurationMinutes < pkg.MinDurationMinutes {
			s.state.mu.Unlock()
			utils.JSONError(c, http.StatusBadRequest,
				fmt.Sprintf("Minimum duration is %d minutes", pkg.MinDurationMinutes))
			return
		}
		if pkg.MaxDurationMinutes > 0 && req.DurationMinutes > pkg.MaxDurationMinutes {
			s.state.mu.Unlock()
			utils.JSONError(c, http.StatusBadRequest,
				fmt.Sprintf("Maximum duration is %d minutes", pkg.MaxDurationMinutes))
			return
		}
		duration = req.DurationMinutes
	}

	customer := s.state.getOrCreateCustomer(req)

	basePrice := pkg.BasePrice
	if slot.OverridePrice != nil {
		basePrice = *slot.OverridePrice
	}
	equipmentCost := 0.0
	for _, equipmentID := range req.EquipmentRequested {
		if item := s.state.equipmentByID(equipmentID); item != nil && item.StudioID == pkg.StudioID {
			equipmentCost += item.AdditionalCost
		}
	}

	status := models.AppointmentConfirmed
	if pkg.RequiresApproval {
		status = models.AppointmentPending
	}

	appt := &models.Appointment{
		ID:                  utils.GenerateID(),
		StudioID:            pkg.StudioID,
		CustomerID:          customer.ID,
		TimeSlotID:          slot.ID,
		PackageID:           pkg.ID,
		SessionType:         pkg.SessionType,
		DurationMinutes:     duration,
		EquipmentRequested:  req.EquipmentRequested,
		SpecialRequirements: req.SpecialRequirements,
		CustomFormResponses: req.CustomFormResponses,
		BasePrice:           basePrice,
		EquipmentCost:       equipmentCost,
		TotalPrice:          basePrice + equipmentCost,
		Status:              status,
		CreatedAt:           time.Now().UTC(),
	}
	slot.CurrentBookings++
	s.state.appointments = append(s.state.appointments, appt)
	out := s.state.renderAppointment(appt)
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

// verifiedBooking resolves a booking and checks the caller knows the
// customer email on it. Caller holds st.mu. The bool reports whether the
// booking exists; a nil appointment with true means the email check failed.
func (st *state) verifiedBooking(bookingID, email string) (*models.Appointment, bool) {
	appt := st.appointmentByID(bookingID)
	if appt == nil {
		return nil, false
	}
	customer := st.userByID(appt.CustomerID)
	if customer == nil || !strings.EqualFold(customer.Email, email) {
		return nil, true
	}
	return appt, true
}

func (s *Server) handleGetBooking(c *gin.Context) {
	email := c.Query("customer_email")

	s.state.mu.Lock()
	appt, exists := s.state.verifiedBooking(c.Param("booking_id"), email)
	var out models.Appointment
	if appt != nil {
		out = s.state.renderAppointment(appt)
	}
	s.state.mu.Unlock()

	if !exists {
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	if appt == nil {
		utils.JSONError(c, http.StatusForbidden, "Invalid booking ID or email")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCancelBooking(c *gin.Context) {
	email := c.Query("customer_email")
	reason := c.Query("cancellation_reason")

	s.state.mu.Lock()
	appt, exists := s.state.verifiedBooking(c.Param("booking_id"), email)
	if !exists {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}
	if appt == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusForbidden, "Invalid booking ID or email")
		return
	}
	if appt.Status == models.AppointmentCancelled {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Booking is already cancelled")
		return
	}
	if appt.Status == models.AppointmentCompleted {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Cannot cancel completed booking")
		return
	}
	s.state.applyAppointmentStatus(appt, models.AppointmentCancelled, reason)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Booking cancelled successfully",
		Status:  "success",
	})
}
