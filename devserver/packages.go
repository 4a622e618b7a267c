// File: studiobook/devserver/packages.go
package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleCreatePackage(c *gin.Context) {
	var req models.PackageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	studioID := c.Query("studio_id")
	if studioID == "" {
		utils.JSONError(c, http.StatusBadRequest, "studio_id is required")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	studio := s.state.ownedStudio(studioID, user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	slug := strings.ToLower(req.Slug)
	if s.state.packageBySlug(studioID, slug) != nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "A package with this slug already exists in your studio")
		return
	}
	pkg := &models.Package{
		ID:                    utils.GenerateID(),
		StudioID:              studioID,
		Name:                  req.Name,
		Slug:                  slug,
		Description:           req.Description,
		SessionType:           req.SessionType,
		DurationMinutes:       req.DurationMinutes,
		MinDurationMinutes:    req.MinDurationMinutes,
		MaxDurationMinutes:    req.MaxDurationMinutes,
		AllowCustomDuration:   req.AllowCustomDuration,
		BasePrice:             req.BasePrice,
		Currency:              req.Currency,
		BufferTimeBefore:      req.BufferTimeBefore,
		BufferTimeAfter:       req.BufferTimeAfter,
		MaxBookingsPerDay:     req.MaxBookingsPerDay,
		MinBookingNoticeHours: req.MinBookingNoticeHours,
		MaxBookingDaysAhead:   req.MaxBookingDaysAhead,
		IncludedEquipment:     req.IncludedEquipment,
		OptionalEquipment:     req.OptionalEquipment,
		SpecialInstructions:   req.SpecialInstructions,
		CustomQuestions:       req.CustomQuestions,
		Status:                req.Status,
		IsPublic:              true,
		RequiresApproval:      req.RequiresApproval,
		FeaturedImageURL:      req.FeaturedImageURL,
		DisplayOrder:          req.DisplayOrder,
		Color:                 req.Color,
		CreatedAt:             time.Now().UTC(),
	}
	if pkg.Currency == "" {
		pkg.Currency = "USD"
	}
	if pkg.MaxBookingDaysAhead == 0 {
		pkg.MaxBookingDaysAhead = 30
	}
	if pkg.Status == "" {
		pkg.Status = models.PackageActive
	}
	if req.IsPublic != nil {
		pkg.IsPublic = *req.IsPublic
	}
	s.state.packages = append(s.state.packages, pkg)
	out := *pkg
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

func (s *Server) handleListStudioPackages(c *gin.Context) {
	user := currentUser(c)

	statusFilter := models.PackageStatus(c.Query("status_filter"))
	isPublicRaw := c.Query("is_public")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	s.state.mu.Lock()
	studio := s.state.ownedStudio(c.Param("studio_id"), user.ID)
	if studio == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	packages := make([]models.Package, 0)
	for _, pkg := range s.state.packages {
		if pkg.StudioID != studio.ID {
			continue
		}
		if statusFilter != "" && pkg.Status != statusFilter {
			continue
		}
		if isPublicRaw != "" {
			want, err := strconv.ParseBool(isPublicRaw)
			if err == nil && pkg.IsPublic != want {
				continue
			}
		}
		packages = append(packages, *pkg)
	}
	s.state.mu.Unlock()

	sortPackagesForDisplay(packages)
	c.JSON(http.StatusOK, paginatePackages(packages, skip, limit))
}

// sortPackagesForDisplay orders by display order, newest first within a
// tier, the order booking pages render.
func sortPackagesForDisplay(packages []models.Package) {
	sort.Slice(packages, func(i, j int) bool {
		if packages[i].DisplayOrder != packages[j].DisplayOrder {
			return packages[i].DisplayOrder < packages[j].DisplayOrder
		}
		return packages[i].CreatedAt.After(packages[j].CreatedAt)
	})
}

func paginatePackages(packages []models.Package, skip, limit int) []models.Package {
	if skip >= len(packages) {
		return []models.Package{}
	}
	packages = packages[skip:]
	if limit > 0 && limit < len(packages) {
		packages = packages[:limit]
	}
	return packages
}

func (s *Server) handleGetPackage(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	pkg := s.state.packageByID(c.Param("package_id"))
	if pkg == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if s.state.ownedStudio(pkg.StudioID, user.ID) == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	out := *pkg
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdatePackage(c *gin.Context) {
	var update models.PackageUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	pkg := s.state.packageByID(c.Param("package_id"))
	if pkg == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if s.state.ownedStudio(pkg.StudioID, user.ID) == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	if update.Name != nil {
		pkg.Name = *update.Name
	}
	if update.Description != nil {
		pkg.Description = *update.Description
	}
	if update.SessionType != nil {
		pkg.SessionType = *update.SessionType
	}
	if update.DurationMinutes != nil {
		pkg.DurationMinutes = *update.DurationMinutes
	}
	if update.MinDurationMinutes != nil {
		pkg.MinDurationMinutes = *update.MinDurationMinutes
	}
	if update.MaxDurationMinutes != nil {
		pkg.MaxDurationMinutes = *update.MaxDurationMinutes
	}
	if update.AllowCustomDuration != nil {
		pkg.AllowCustomDuration = *update.AllowCustomDuration
	}
	if update.BasePrice != nil {
		pkg.BasePrice = *update.BasePrice
	}
	if update.Currency != nil {
		pkg.Currency = *update.Currency
	}
	if update.BufferTimeBefore != nil {
		pkg.BufferTimeBefore = *update.BufferTimeBefore
	}
	if update.BufferTimeAfter != nil {
		pkg.BufferTimeAfter = *update.BufferTimeAfter
	}
	if update.MaxBookingsPerDay != nil {
		pkg.MaxBookingsPerDay = *update.MaxBookingsPerDay
	}
	if update.MinBookingNoticeHours != nil {
		pkg.MinBookingNoticeHours = *update.MinBookingNoticeHours
	}
	if update.MaxBookingDaysAhead != nil {
		pkg.MaxBookingDaysAhead = *update.MaxBookingDaysAhead
	}
	if update.IncludedEquipment != nil {
		pkg.IncludedEquipment = update.IncludedEquipment
	}
	if update.OptionalEquipment != nil {
		pkg.OptionalEquipment = update.OptionalEquipment
	}
	if update.SpecialInstructions != nil {
		pkg.SpecialInstructions = *update.SpecialInstructions
	}
	if update.CustomQuestions != nil {
		pkg.CustomQuestions = update.CustomQuestions
	}
	if update.Status != nil {
		pkg.Status = *update.Status
	}
	if update.IsPublic != nil {
		pkg.IsPublic = *update.IsPublic
	}
	if update.RequiresApproval != nil {
		pkg.RequiresApproval = *update.RequiresApproval
	}
	if update.FeaturedImageURL != nil {
		pkg.FeaturedImageURL = *update.FeaturedImageURL
	}
	if update.DisplayOrder != nil {
		pkg.DisplayOrder = *update.DisplayOrder
	}
	if update.Color != nil {
		pkg.Color = *update.Color
	}
	pkg.UpdatedAt = time.Now().UTC()
	out := *pkg
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleDeletePackage(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	pkg := s.state.packageByID(c.Param("package_id"))
	if pkg == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if s.state.ownedStudio(pkg.StudioID, user.ID) == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	if count := s.state.appointmentCountForPackage(pkg.ID); count > 0 {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest,
			fmt.Sprintf("Cannot delete package with %d existing appointments. Set status to 'inactive' instead.", count))
		return
	}
	s.state.removePackage(pkg.ID)
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Package deleted successfully",
		Status:  "success",
	})
}

// handleDuplicatePackage copies a package under a new name and slug.
// The copy always starts as a private draft so it cannot leak onto the
// booking page half-edited.
func (s *Server) handleDuplicatePackage(c *gin.Context) {
	user := currentUser(c)
	newName := c.Query("new_name")
	newSlug := c.Query("new_slug")

	s.state.mu.Lock()
	original := s.state.packageByID(c.Param("package_id"))
	if original == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Package not found")
		return
	}
	if s.state.ownedStudio(original.StudioID, user.ID) == nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusNotFound, "Studio not found or access denied")
		return
	}
	if newName == "" {
		newName = original.Name + " (Copy)"
	}
	if newSlug == "" {
		newSlug = original.Slug + "-copy"
	} else {
		newSlug = strings.ToLower(newSlug)
	}
	if s.state.packageBySlug(original.StudioID, newSlug) != nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "A package with this slug already exists in your studio")
		return
	}
	duplicate := *original
	duplicate.ID = utils.GenerateID()
	duplicate.Name = newName
	duplicate.Slug = newSlug
	duplicate.Status = models.PackageDraft
	duplicate.IsPublic = false
	duplicate.CreatedAt = time.Now().UTC()
	duplicate.UpdatedAt = time.Time{}
	s.state.packages = append(s.state.packages, &duplicate)
	out := duplicate
	s.state.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

func (s *Server) handleGetPublicPackage(c *gin.Context) {
	s.state.mu.Lock()
	pkg := s.state.packageByID(c.Param("package_id"))
	var out models.Package
	bookable := pkg != nil && pkg.Status == models.PackageActive && pkg.IsPublic
	if bookable {
		out = *pkg
	}
	s.state.mu.Unlock()

	if !bookable {
		utils.JSONError(c, http.StatusNotFound, "Package not found or not available for booking")
		return
	}
	c.JSON(http.StatusOK, out)
}
