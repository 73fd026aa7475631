package rsvp

import (
	"regexp"
	"strings"
	"unicode/utf8"

	wedding "Cheongcheop/constants/wedding"
	"Cheongcheop/services/i18n"
)

// Attendance is the guest's reply.
type Attendance string

const (
	Attending    Attendance = "attending"
	NotAttending Attendance = "not_attending"
)

const (
	HasChildrenNo  = "no"
	HasChildrenYes = "yes"
)

// Form is the raw RSVP form input, exactly as posted by the frontend.
type Form struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Attendance   string `json:"attendance"`
	GuestCount   *int   `json:"guestCount"`
	HasChildren  string `json:"hasChildren"`
	ChildrenAges string `json:"childrenAges"`
	Note         string `json:"note"`
	Honeypot     string `json:"honeypot"`
}

// Submission is a validated, normalized RSVP. Optional fields are nil so the
// datastore receives NULLs rather than empty strings. GuestCount, HasChildren
// and ChildrenAges are only carried for attending guests.
type Submission struct {
	Name         string
	Phone        string
	Email        *string
	Attendance   Attendance
	GuestCount   *int
	HasChildren  *string
	ChildrenAges *string
	Note         *string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the form against the per-field rules and the cross-field
// guest-count rule. It returns either a normalized submission or a map from
// field name to a localized message, one message per field, first violated
// rule wins. Pure function of the input and language; the honeypot field is
// checked by the submission pipeline, not here.
func Validate(form Form, lang i18n.Lang) (*Submission, map[string]string) {
	t := i18n.Get(lang).Validation
	errs := map[string]string{}

	if strings.TrimSpace(form.Name) == "" {
		errs["name"] = t.NameRequired
	} else if utf8.RuneCountInString(form.Name) > wedding.MaxNameLength {
		errs["name"] = t.NameTooLong
	}

	if utf8.RuneCountInString(form.Phone) < wedding.MinPhoneLength {
		errs["phone"] = t.PhoneInvalid
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs["email"] = t.EmailInvalid
	}

	attendance := Attendance(form.Attendance)
	if attendance != Attending && attendance != NotAttending {
		errs["attendance"] = t.AttendanceRequired
	}

	// Cross-field rule: party size is only required, and only checked, when
	// the guest is attending. The error attaches to guestCount so the form
	// can render it inline next to that input.
	if attendance == Attending {
		if form.GuestCount == nil ||
			*form.GuestCount < wedding.MinGuestCount ||
			*form.GuestCount > wedding.MaxGuestCount {
			errs["guestCount"] = t.GuestCountRequired
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	sub := &Submission{
		Name:       form.Name,
		Phone:      form.Phone,
		Email:      optional(form.Email),
		Attendance: attendance,
		Note:       optional(form.Note),
	}

	if attendance == Attending {
		sub.GuestCount = form.GuestCount

		hasChildren := form.HasChildren
		if hasChildren != HasChildrenYes {
			hasChildren = HasChildrenNo
		}
		sub.HasChildren = &hasChildren

		if hasChildren == HasChildrenYes {
			sub.ChildrenAges = optional(form.ChildrenAges)
		}
	}

	return sub, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
