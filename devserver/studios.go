// File: studiobook/devserver/studios.go
package devserver

import (
	"net/http"
	"sort"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleCreateStudio(c *gin.Context) {
	var req models.StudioCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	if s.state.studioBySlug(req.Slug) != nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "A studio with this slug already exists")
		return
	}
	studio := &models.Studio{
		ID:                    utils.GenerateID(),
		Name:                  req.Name,
		Slug:                  req.Slug,
		Description:           req.Description,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Website:               req.Website,
		AddressLine1:          req.AddressLine1,
		AddressLine2:          req.AddressLine2,
		City:                  req.City,
		State:                 req.State,
		PostalCode:            req.PostalCode,
		Country:               req.Country,
		Timezone:              req.Timezone,
		Currency:              req.Currency,
		BookingWindowDays:     req.BookingWindowDays,
		MinBookingNoticeHours: req.MinBookingNoticeHours,
		IsActive:              true,
		OwnerID:               user.ID,
		CreatedAt:             time.Now().UTC(),
	}
	if studio.Timezone == "" {
		studio.Timezone = "UTC"
	}
	if studio.Currency == "" {
		studio.Currency = "USD"
	}
	if studio.BookingWindowDays == 0 {
		studio.BookingWindowDays = 30
	}
	if studio.MinBookingNoticeHours == 0 {
		studio.MinBookingNoticeHours = 24
	}
	s.state.studios = append(s.state.studios, studio)
	out := *studio
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

func (s *Server) handleListStudios(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studios := make([]models.Studio, 0)
	for _, studio := range s.state.studios {
		if studio.OwnerID == user.ID && studio.IsActive {
			studios = append(studios, *studio)
		}
	}
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, studios)
}

func (s *Server) handleGetStudio(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	var out models.Studio
	if studio != nil {
		out = *studio
	}
	s.state.mu.Unlock()

	if studio == nil {
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateStudio(c *gin.Context) {
	var update models.StudioUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	if update.Name != nil {
		studio.Name = *update.Name
	}
	if update.Description != nil {
		studio.Description = *update.Description
	}
	if update.Email != nil {
		studio.Email = *update.Email
	}
	if update.Phone != nil {
		studio.Phone = *update.Phone
	}
	if update.Website != nil {
		studio.Website = *update.Website
	}
	if update.AddressLine1 != nil {
		studio.AddressLine1 = *update.AddressLine1
	}
	if update.AddressLine2 != nil {
		studio.AddressLine2 = *update.AddressLine2
	}
	if update.City != nil {
		studio.City = *update.City
	}
	if update.State != nil {
		studio.State = *update.State
	}
	if update.PostalCode != nil {
		studio.PostalCode = *update.PostalCode
	}
	if update.Country != nil {
		studio.Country = *update.Country
	}
	if update.Timezone != nil {
		studio.Timezone = *update.Timezone
	}
	if update.Currency != nil {
		studio.Currency = *update.Currency
	}
	if update.BookingWindowDays != nil {
		studio.BookingWindowDays = *update.BookingWindowDays
	}
	if update.MinBookingNoticeHours != nil {
		studio.MinBookingNoticeHours = *update.MinBookingNoticeHours
	}
	if update.IsActive != nil {
		studio.IsActive = *update.IsActive
	}
	studio.UpdatedAt = time.Now().UTC()
	out := *studio
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

// handleDeleteStudio deactivates rather than removes, so bookings keep
// their history.
func (s *Server) handleDeleteStudio(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	studio.IsActive = false
	studio.UpdatedAt = time.Now().UTC()
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Studio deleted successfully",
		Status:  "success",
	})
}

func (s *Server) handleCreateTimeSlots(c *gin.Context) {
	var reqs []models.TimeSlotCreate
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)
	studioID := c.Param("studio_id")

	for _, req := range reqs {
		if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
	}

	s.state.mu.Lock()
	studio := s.state.ownedStudio(studioID, user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	created := make([]models.TimeSlot, 0, len(reqs))
	for _, req := range reqs {
		slot := &models.TimeSlot{
			ID:            utils.GenerateID(),
			StudioID:      studioID,
			PackageID:     req.PackageID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			MaxCapacity:   req.MaxCapacity,
			IsAvailable:   true,
			OverridePrice: req.OverridePrice,
			CreatedAt:     time.Now().UTC(),
		}
		if slot.MaxCapacity == 0 {
			slot.MaxCapacity = 1
		}
		if req.IsAvailable != nil {
			slot.IsAvailable = *req.IsAvailable
		}
		s.state.timeSlots = append(s.state.timeSlots, slot)
		created = append(created, *slot)
	}
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListTimeSlots(c *gin.Context) {
	user := currentUser(c)
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	slots := make([]models.TimeSlot, 0)
	for _, slot := range s.state.timeSlots {
		if slot.StudioID != studio.ID {
			continue
		}
		if dateFrom != "" && slot.Date < dateFrom {
			continue
		}
		if dateTo != "" && slot.Date > dateTo {
			continue
		}
		slots = append(slots, *slot)
	}
	s.state.mu.Unlock()

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	c.JSON(http.StatusOK, slots)
}

func (s *Server) handleUpdateTimeSlot(c *gin.Context) {
	var update models.TimeSlotUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	slot := s.state.slotByID(c.Param("slot_id"))
	if slot == nil || slot.StudioID != studio.ID {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Time slot not found")
		return
	}
	if update.Date != nil {
		slot.Date = *update.Date
	}
	if update.StartTime != nil {
		slot.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		slot.EndTime = *update.EndTime
	}
	if update.MaxCapacity != nil {
		slot.MaxCapacity = *update.MaxCapacity
	}
	if update.IsAvailable != nil {
		slot.IsAvailable = *update.IsAvailable
	}
	if update.OverridePrice != nil {
		slot.OverridePrice = update.OverridePrice
	}
	if update.PackageID != nil {
		slot.PackageID = *update.PackageID
	}
	out := *slot
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDeleteTimeSlot(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	slot := s.state.slotByID(c.Param("slot_id"))
	if slot == nil || slot.StudioID != studio.ID {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Time slot not found")
		return
	}
	if slot.CurrentBookings > 0 {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Cannot delete time slot with existing bookings. Set is_available to false instead.")
		return
	}
	s.state.removeTimeSlot(slot.ID)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Time slot deleted successfully",
		Status:  "success",
	})
}

func (s *Server) handleCreateEquipment(c *gin.Context) {
	var req models.EquipmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	item := &models.Equipment{
		ID:                  utils.GenerateID(),
		StudioID:            studio.ID,
		Name:                req.Name,
		Type:                req.Type,
		Description:         req.Description,
		IsAvailable:         true,
		RequiresSupervision: req.RequiresSupervision,
		AdditionalCost:      req.AdditionalCost,
		CreatedAt:           time.Now().UTC(),
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	s.state.equipment = append(s.state.equipment, item)
	out := *item
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

func (s *Server) handleListEquipment(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	items := make([]models.Equipment, 0)
	for _, item := range s.state.equipment {
		if item.StudioID == studio.ID {
			items = append(items, *item)
		}
	}
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, items)
}

func (s *Server) handleUpdateEquipment(c *gin.Context) {
	var update models.EquipmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	item := s.state.equipmentByID(c.Param("equipment_id"))
	if item == nil || item.StudioID != studio.ID {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Equipment not found")
		return
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Type != nil {
		item.Type = *update.Type
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.IsAvailable != nil {
		item.IsAvailable = *update.IsAvailable
	}
	if update.RequiresSupervision != nil {
		item.RequiresSupervision = *update.RequiresSupervision
	}
	if update.AdditionalCost != nil {
		item.AdditionalCost = *update.AdditionalCost
	}
	out := *item
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDeleteEquipment(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	item := s.state.equipmentByID(c.Param("equipment_id"))
	if item == nil || item.StudioID != studio.ID {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Equipment not found")
		return
	}
	s.state.removeEquipment(item.ID)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Equipment deleted successfully",
		Status:  "success",
	})
}
