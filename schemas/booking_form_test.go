package schemas

import (
	"testing"

	"studiobook/models"
)

func validForm() BookingForm {
	return BookingForm{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		PackageID:     "pkg-1",
		TimeSlotID:    "slot-1",
		AgreedToTerms: true,
	}
}

func TestValidateBookingFormPasses(t *testing.T) {
	if r := ValidateBookingForm(validForm(), nil); !r.OK() {
		t.Fatalf("expected valid form, got %v", r.Errors)
	}
}

func TestValidateBookingFormRequiredFields(t *testing.T) {
	r := ValidateBookingForm(BookingForm{}, nil)

	if got := r.ErrorFor("package_id"); got != "Package is required" {
		t.Errorf("package_id: %q", got)
	}
	if got := r.ErrorFor("time_slot_id"); got != "Time slot is required" {
		t.Errorf("time_slot_id: %q", got)
	}
	if got := r.ErrorFor("agreed_to_terms"); got != "You must agree to the terms and conditions" {
		t.Errorf("agreed_to_terms: %q", got)
	}
	if got := r.ErrorFor("email"); got != "Please enter a valid email address" {
		t.Errorf("email: %q", got)
	}
}

func TestValidateBookingFormPhoneOptional(t *testing.T) {
	f := validForm()
	f.Phone = ""
	if r := ValidateBookingForm(f, nil); !r.OK() {
		t.Fatalf("empty phone should be allowed, got %v", r.Errors)
	}

	f.Phone = "555"
	r := ValidateBookingForm(f, nil)
	if got := r.ErrorFor("phone"); got != "Phone number must be at least 10 digits" {
		t.Fatalf("phone: %q", got)
	}
}

func TestValidateBookingFormDuration(t *testing.T) {
	f := validForm()
	f.DurationMinutes = 0 // package default
	if r := ValidateBookingForm(f, nil); !r.OK() {
		t.Fatalf("zero duration should mean package default, got %v", r.Errors)
	}

	f.DurationMinutes = 15
	if got := ValidateBookingForm(f, nil).ErrorFor("duration_minutes"); got != "Duration must be between 30 and 480 minutes" {
		t.Fatalf("short duration: %q", got)
	}

	f.DurationMinutes = 90
	if r := ValidateBookingForm(f, nil); !r.OK() {
		t.Fatalf("90 minutes rejected: %v", r.Errors)
	}
}

func TestValidateBookingFormCustomQuestions(t *testing.T) {
	pkg := &models.Package{
		CustomQuestions: []models.CustomQuestion{
			{ID: "q-people", Question: "How many people will attend?", Type: "number", Required: true},
			{ID: "q-notes", Question: "Anything we should know?", Type: "textarea"},
			{ID: "q-date", Question: "Preferred makeup date", Type: "date"},
		},
	}

	f := validForm()
	r := ValidateBookingForm(f, pkg)
	if got := r.ErrorFor("q-people"); got != `"How many people will attend?" is required` {
		t.Errorf("missing required answer: %q", got)
	}
	if got := r.ErrorFor("q-notes"); got != "" {
		t.Errorf("optional question should not error when absent: %q", got)
	}

	f.CustomResponses = map[string]any{
		"q-people": "four",
		"q-date":   "next tuesday",
	}
	r = ValidateBookingForm(f, pkg)
	if got := r.ErrorFor("q-people"); got != `"How many people will attend?" must be a number` {
		t.Errorf("non-numeric answer: %q", got)
	}
	if got := r.ErrorFor("q-date"); got != `"Preferred makeup date" must be a date in YYYY-MM-DD format` {
		t.Errorf("malformed date answer: %q", got)
	}

	f.CustomResponses = map[string]any{
		"q-people": float64(4), // decoded JSON numbers are float64
		"q-date":   "2026-09-15",
	}
	if r := ValidateBookingForm(f, pkg); !r.OK() {
		t.Fatalf("valid answers rejected: %v", r.Errors)
	}

	f.CustomResponses = map[string]any{"q-people": "4"}
	if r := ValidateBookingForm(f, pkg); !r.OK() {
		t.Fatalf("numeric string answer rejected: %v", r.Errors)
	}
}

func TestValidateBookingFormEmptyAnswerCountsAsMissing(t *testing.T) {
	pkg := &models.Package{
		CustomQuestions: []models.CustomQuestion{
			{ID: "q-people", Question: "How many people will attend?", Type: "number", Required: true},
		},
	}

	f := validForm()
	f.CustomResponses = map[string]any{"q-people": ""}
	r := ValidateBookingForm(f, pkg)
	if got := r.ErrorFor("q-people"); got != `"How many people will attend?" is required` {
		t.Fatalf("empty string answer: %q", got)
	}

	f.CustomResponses = map[string]any{"q-people": []any{}}
	r = ValidateBookingForm(f, pkg)
	if got := r.ErrorFor("q-people"); got != `"How many people will attend?" is required` {
		t.Fatalf("empty list answer: %q", got)
	}
}

func TestBookingFormRequest(t *testing.T) {
	f := BookingForm{
		FirstName:           "Jane",
		LastName:            "Doe",
		Email:               "jane@example.com",
		Phone:               "5035550142",
		PackageID:           "pkg-1",
		TimeSlotID:          "slot-1",
		DurationMinutes:     90,
		EquipmentRequested:  []string{"eq-1"},
		SpecialRequirements: "wheelchair access",
		CustomResponses:     map[string]any{"q-people": float64(4)},
	}

	req := f.Request()
	if req.CustomerEmail != "jane@example.com" || req.CustomerFirstName != "Jane" || req.CustomerLastName != "Doe" {
		t.Fatalf("customer fields not mapped: %+v", req)
	}
	if req.PackageID != "pkg-1" || req.TimeSlotID != "slot-1" || req.DurationMinutes != 90 {
		t.Fatalf("booking fields not mapped: %+v", req)
	}
	if len(req.EquipmentRequested) != 1 || req.EquipmentRequested[0] != "eq-1" {
		t.Fatalf("equipment not mapped: %+v", req.EquipmentRequested)
	}
	if req.SpecialRequirements != "wheelchair access" {
		t.Fatalf("special requirements not mapped: %q", req.SpecialRequirements)
	}
	if req.CustomFormResponses["q-people"] != float64(4) {
		t.Fatalf("custom responses not mapped: %+v", req.CustomFormResponses)
	}
}
