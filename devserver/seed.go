// File: studiobook/devserver/seed.go
package devserver

import (
	"time"

	"studiobook/models"
	"studiobook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData loads a demo studio so a fresh server has something to
// book against: an owner account (demo@studiobook.dev / demo-password),
// the "Aperture Studio" with three packages, equipment, and a week of
// time slots.
func (s *Server) SeedDemoData() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	owner := &models.User{
		ID:         utils.GenerateID(),
		Email:      "demo@studiobook.dev",
		FirstName:  "Demo",
		LastName:   "Owner",
		Timezone:   "UTC",
		Role:       models.RoleStudioOwner,
		IsActive:   true,
		IsVerified: true,
		CreatedAt:  now,
	}
	s.state.users = append(s.state.users, owner)
	s.state.passwords[owner.ID] = string(hash)

	studio := &models.Studio{
		ID:                    utils.GenerateID(),
		Name:                  "Aperture Studio",
		Slug:                  "aperture-studio",
		Description:           "Natural-light portrait and product studio.",
		Email:                 "hello@aperture.example",
		Phone:                 "+1 555 010 4477",
		City:                  "Portland",
		State:                 "OR",
		Country:               "US",
		Timezone:              "UTC",
		Currency:              "USD",
		BookingWindowDays:     30,
		MinBookingNoticeHours: 24,
		IsActive:              true,
		OwnerID:               owner.ID,
		CreatedAt:             now,
	}
	s.state.studios = append(s.state.studios, studio)

	strobe := &models.Equipment{
		ID:             utils.GenerateID(),
		StudioID:       studio.ID,
		Name:           "Strobe Lighting Kit",
		Type:           models.EquipmentLighting,
		Description:    "Two-head strobe kit with softboxes.",
		IsAvailable:    true,
		AdditionalCost: 25,
		CreatedAt:      now,
	}
	camera := &models.Equipment{
		ID:                  utils.GenerateID(),
		StudioID:            studio.ID,
		Name:                "Full-Frame Camera Body",
		Type:                models.EquipmentCamera,
		Description:         "Rental body with 24-70mm lens.",
		IsAvailable:         true,
		RequiresSupervision: true,
		AdditionalCost:      40,
		CreatedAt:           now,
	}
	backdrop := &models.Equipment{
		ID:          utils.GenerateID(),
		StudioID:    studio.ID,
		Name:        "Seamless Paper Backdrops",
		Type:        models.EquipmentBackdrop,
		Description: "White, grey, and sage rolls.",
		IsAvailable: true,
		CreatedAt:   now,
	}
	s.state.equipment = append(s.state.equipment, strobe, camera, backdrop)

	portrait := &models.Package{
		ID:                  utils.GenerateID(),
		StudioID:            studio.ID,
		Name:                "Portrait Session",
		Slug:                "portrait-session",
		Description:         "One hour in the main room with edited digitals.",
		SessionType:         models.SessionPortrait,
		DurationMinutes:     60,
		MinDurationMinutes:  30,
		MaxDurationMinutes:  120,
		AllowCustomDuration: true,
		BasePrice:           120,
		Currency:            "USD",
		MaxBookingDaysAhead: 30,
		OptionalEquipment:   []string{strobe.ID, camera.ID},
		Status:              models.PackageActive,
		IsPublic:            true,
		DisplayOrder:        1,
		CreatedAt:           now,
	}
	family := &models.Package{
		ID:                  utils.GenerateID(),
		StudioID:            studio.ID,
		Name:                "Family Mini Session",
		Slug:                "family-mini",
		Description:         "Thirty minutes for up to six people.",
		SessionType:         models.SessionFamily,
		DurationMinutes:     30,
		BasePrice:           85,
		Currency:            "USD",
		MaxBookingDaysAhead: 30,
		Status:              models.PackageActive,
		IsPublic:            true,
		RequiresApproval:    true,
		DisplayOrder:        2,
		CustomQuestions: []models.CustomQuestion{
			{
				ID:       utils.GenerateID(),
				Question: "How many people will attend?",
				Type:     "number",
				Required: true,
			},
			{
				ID:          utils.GenerateID(),
				Question:    "Anything we should prepare for?",
				Type:        "textarea",
				Placeholder: "Pets, toddlers, props...",
			},
		},
		CreatedAt: now,
	}
	productDay := &models.Package{
		ID:                  utils.GenerateID(),
		StudioID:            studio.ID,
		Name:                "Product Shoot Day",
		Slug:                "product-shoot-day",
		Description:         "Full-day commercial booking, not yet published.",
		SessionType:         models.SessionProduct,
		DurationMinutes:     240,
		BasePrice:           600,
		Currency:            "USD",
		MaxBookingDaysAhead: 30,
		Status:              models.PackageDraft,
		DisplayOrder:        3,
		CreatedAt:           now,
	}
	s.state.packages = append(s.state.packages, portrait, family, productDay)

	// A week of booking windows: three general daytime slots per day plus
	// one portrait-only evening slot at an override price.
	eveningPrice := 150.0
	windows := []struct{ start, end string }{
		{"09:00", "10:00"},
		{"11:00", "12:00"},
		{"14:00", "15:00"},
	}
	for day := 0; day < 7; day++ {
		date := time.Now().AddDate(0, 0, day).Format(utils.DateLayout)
		for _, w := range windows {
			s.state.timeSlots = append(s.state.timeSlots, &models.TimeSlot{
				ID:          utils.GenerateID(),
				StudioID:    studio.ID,
				Date:        date,
				StartTime:   w.start,
				EndTime:     w.end,
				MaxCapacity: 1,
				IsAvailable: true,
				CreatedAt:   now,
			})
		}
		s.state.timeSlots = append(s.state.timeSlots, &models.TimeSlot{
			ID:            utils.GenerateID(),
			StudioID:      studio.ID,
			PackageID:     portrait.ID,
			Date:          date,
			StartTime:     "17:00",
			EndTime:       "18:30",
			MaxCapacity:   2,
			IsAvailable:   true,
			OverridePrice: &eveningPrice,
			CreatedAt:     now,
		})
	}

	s.logger.Info("Seeded demo studio",
		zap.String("studio", studio.Slug),
		zap.String("owner", owner.Email),
	)
	return nil
}
