package devserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"studiobook/client"
	"studiobook/models"
	"studiobook/utils"
)

func newStudioWithOwner(t *testing.T, baseURL string) (*client.Client, *models.Studio) {
	t.Helper()
	owner := registerOwner(t, baseURL, "owner@example.com")
	studio, err := owner.CreateStudio(context.Background(), models.StudioCreate{
		Name: "Test Studio", Slug: "test-studio",
	})
	if err != nil {
		t.Fatalf("create studio failed: %v", err)
	}
	return owner, studio
}

func TestCreatePackageDefaults(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	ctx := context.Background()

	pkg, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name:            "Portrait Session",
		Slug:            "Portrait-SESSION",
		SessionType:     models.SessionPortrait,
		DurationMinutes: 60,
		BasePrice:       120,
	})
	if err != nil {
		t.Fatalf("create package failed: %v", err)
	}
	if pkg.Slug != "portrait-session" {
		t.Fatalf("slug should be lowercased, got %q", pkg.Slug)
	}
	if pkg.Currency != "USD" || pkg.Status != models.PackageActive || !pkg.IsPublic {
		t.Fatalf("defaults wrong: currency=%q status=%q public=%v", pkg.Currency, pkg.Status, pkg.IsPublic)
	}
	if pkg.MaxBookingDaysAhead != 30 {
		t.Fatalf("expected 30-day booking window default, got %d", pkg.MaxBookingDaysAhead)
	}

	_, err = owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name:            "Clone",
		Slug:            "portrait-session",
		SessionType:     models.SessionPortrait,
		DurationMinutes: 30,
	})
	apiMessage(t, err, http.StatusBadRequest, "A package with this slug already exists in your studio")

	private := false
	draft, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name:            "Work in Progress",
		Slug:            "wip",
		SessionType:     models.SessionCreative,
		DurationMinutes: 45,
		Status:          models.PackageDraft,
		IsPublic:        &private,
	})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if draft.Status != models.PackageDraft || draft.IsPublic {
		t.Fatalf("explicit status/visibility lost: %+v", draft)
	}
}

func TestListStudioPackages(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	ctx := context.Background()

	for _, spec := range []struct {
		name  string
		slug  string
		order int
	}{
		{"Third", "third", 3},
		{"First", "first", 1},
		{"Second", "second", 2},
	} {
		if _, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
			Name: spec.name, Slug: spec.slug, SessionType: models.SessionPortrait,
			DurationMinutes: 60, DisplayOrder: spec.order,
		}); err != nil {
			t.Fatalf("create %s failed: %v", spec.slug, err)
		}
	}

	packages, err := owner.ListStudioPackages(ctx, studio.ID, models.PackageFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(packages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if packages[i].Slug != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, packages[i].Slug)
		}
	}

	page, err := owner.ListStudioPackages(ctx, studio.ID, models.PackageFilter{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if len(page) != 1 || page[0].Slug != "second" {
		t.Fatalf("skip/limit wrong: %+v", page)
	}

	inactive := models.PackageInactive
	if _, err := owner.UpdatePackage(ctx, packages[0].ID, models.PackageUpdate{Status: &inactive}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	active, err := owner.ListStudioPackages(ctx, studio.ID, models.PackageFilter{Status: models.PackageActive})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("status filter wrong, got %d packages", len(active))
	}

	hidden := false
	if _, err := owner.UpdatePackage(ctx, packages[1].ID, models.PackageUpdate{IsPublic: &hidden}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	public := true
	visible, err := owner.ListStudioPackages(ctx, studio.ID, models.PackageFilter{IsPublic: &public})
	if err != nil {
		t.Fatalf("visibility filter failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("is_public filter wrong, got %d packages", len(visible))
	}
}

func TestGetAndUpdatePackage(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	ctx := context.Background()

	pkg, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Headshots", Slug: "headshots", SessionType: models.SessionProfessional,
		DurationMinutes: 30, BasePrice: 95,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := owner.GetPackage(ctx, pkg.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != pkg.ID || got.BasePrice != 95 {
		t.Fatalf("unexpected package: %+v", got)
	}

	_, err = owner.GetPackage(ctx, "missing")
	apiMessage(t, err, http.StatusNotFound, "Package not found")

	// Another owner cannot see it through the management API.
	intruder := registerOwner(t, baseURL, "intruder@example.com")
	_, err = intruder.GetPackage(ctx, pkg.ID)
	apiMessage(t, err, http.StatusNotFound, "Studio not found or access denied")

	price := 110.0
	custom := true
	updated, err := owner.UpdatePackage(ctx, pkg.ID, models.PackageUpdate{
		BasePrice:           &price,
		AllowCustomDuration: &custom,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.BasePrice != 110.0 || !updated.AllowCustomDuration {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != "Headshots" || updated.DurationMinutes != 30 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatal("updated_at not stamped")
	}
}

func TestDuplicatePackage(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	ctx := context.Background()

	original, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Portrait Session", Slug: "portrait-session", SessionType: models.SessionPortrait,
		DurationMinutes: 60, BasePrice: 120,
		CustomQuestions: []models.CustomQuestion{
			{ID: "q1", Question: "Preferred backdrop?", Type: "text"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	copy1, err := owner.DuplicatePackage(ctx, original.ID, "", "")
	if err != nil {
		t.Fatalf("duplicate failed: %v", err)
	}
	if copy1.Name != "Portrait Session (Copy)" || copy1.Slug != "portrait-session-copy" {
		t.Fatalf("derived name/slug wrong: %q / %q", copy1.Name, copy1.Slug)
	}
	if copy1.ID == original.ID {
		t.Fatal("duplicate should get a fresh id")
	}
	if copy1.Status != models.PackageDraft || copy1.IsPublic {
		t.Fatalf("duplicate must start as a private draft: %+v", copy1)
	}
	if copy1.BasePrice != 120 || len(copy1.CustomQuestions) != 1 {
		t.Fatalf("content not carried over: %+v", copy1)
	}

	// Same derived slug again collides.
	_, err = owner.DuplicatePackage(ctx, original.ID, "", "")
	apiMessage(t, err, http.StatusBadRequest, "A package with this slug already exists in your studio")

	copy2, err := owner.DuplicatePackage(ctx, original.ID, "Evening Portraits", "Evening-PORTRAITS")
	if err != nil {
		t.Fatalf("named duplicate failed: %v", err)
	}
	if copy2.Name != "Evening Portraits" || copy2.Slug != "evening-portraits" {
		t.Fatalf("explicit name/slug wrong: %q / %q", copy2.Name, copy2.Slug)
	}

	_, err = owner.DuplicatePackage(ctx, "missing", "", "")
	apiMessage(t, err, http.StatusNotFound, "Package not found")
}

func TestDeletePackage(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	public := newAPIClient(t, baseURL)
	ctx := context.Background()

	booked, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Booked", Slug: "booked", SessionType: models.SessionPortrait,
		DurationMinutes: 60, BasePrice: 120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	spare, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Spare", Slug: "spare", SessionType: models.SessionPortrait,
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
	slots, err := owner.CreateTimeSlots(ctx, studio.ID, []models.TimeSlotCreate{
		{Date: tomorrow, StartTime: "09:00", EndTime: "10:00"},
	})
	if err != nil {
		t.Fatalf("create slot failed: %v", err)
	}
	if _, err := public.CreateBooking(ctx, models.PublicBookingRequest{
		CustomerEmail:     "jane@example.com",
		CustomerFirstName: "Jane",
		CustomerLastName:  "Doe",
		PackageID:         booked.ID,
		TimeSlotID:        slots[0].ID,
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	_, err = owner.DeletePackage(ctx, booked.ID)
	apiMessage(t, err, http.StatusBadRequest,
		"Cannot delete package with 1 existing appointments. Set status to 'inactive' instead.")

	resp, err := owner.DeletePackage(ctx, spare.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if resp.Message != "Package deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	_, err = owner.GetPackage(ctx, spare.ID)
	apiMessage(t, err, http.StatusNotFound, "Package not found")
}

func TestGetPublicPackage(t *testing.T) {
	baseURL := newServerURL(t, Config{})
	owner, studio := newStudioWithOwner(t, baseURL)
	public := newAPIClient(t, baseURL)
	ctx := context.Background()

	pkg, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Portraits", Slug: "portraits", SessionType: models.SessionPortrait,
		DurationMinutes: 60, BasePrice: 120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	hidden, err := owner.CreatePackage(ctx, studio.ID, models.PackageCreate{
		Name: "Drafted", Slug: "drafted", SessionType: models.SessionCreative,
		DurationMinutes: 45, Status: models.PackageDraft,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := public.GetPublicPackage(ctx, pkg.ID)
	if err != nil {
		t.Fatalf("public get failed: %v", err)
	}
	if got.ID != pkg.ID {
		t.Fatalf("unexpected package: %+v", got)
	}

	_, err = public.GetPublicPackage(ctx, hidden.ID)
	apiMessage(t, err, http.StatusNotFound, "Package not found or not available for booking")
}
