package schemas

import (
	"time"

	"studiobook/models"
	"studiobook/utils"
)

// ValidateCustomer checks the customer fields collected by booking and
// profile forms. Date of birth and the emergency contact are optional
// and only checked when present.
func ValidateCustomer(c models.Customer) Result {
	var r Result

	if len(c.FirstName) < 2 {
		r.add("first_name", "First name must be at least 2 characters")
	}
	if len(c.LastName) < 2 {
		r.add("last_name", "Last name must be at least 2 characters")
	}
	if !utils.IsValidEmail(c.Email) {
		r.add("email", "Please enter a valid email address")
	}
	if !utils.IsValidPhone(c.Phone) {
		r.add("phone", "Phone number must be at least 10 digits")
	}
	if c.DateOfBirth != "" {
		if _, err := time.Parse(utils.DateLayout, c.DateOfBirth); err != nil {
			r.add("date_of_birth", "Date of birth must be a valid date")
		}
	}
	if c.EmergencyContactPhone != "" && !utils.IsValidPhone(c.EmergencyContactPhone) {
		r.add("emergency_contact_phone", "Emergency contact phone must be at least 10 digits")
	}

	return r
}
