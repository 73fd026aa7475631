package rsvp

import (
	"strings"
	"testing"

	"Cheongcheop/services/i18n"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateAttendingSubmission(t *testing.T) {
	form := Form{
		Name:       "Jane Doe",
		Phone:      "0400000000",
		Attendance: "attending",
		GuestCount: intPtr(2),
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, errs)
	assert.Equal(t, "Jane Doe", sub.Name)
	assert.Equal(t, Attending, sub.Attendance)
	assert.Equal(t, 2, *sub.GuestCount)
	assert.Equal(t, HasChildrenNo, *sub.HasChildren)
	assert.Nil(t, sub.Email)
	assert.Nil(t, sub.ChildrenAges)
	assert.Nil(t, sub.Note)
}

func TestValidateNameRequired(t *testing.T) {
	form := Form{
		Name:       "",
		Phone:      "0400000000",
		Attendance: "attending",
		GuestCount: intPtr(1),
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, sub)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.NameRequired, errs["name"])
}

func TestValidateNameTooLong(t *testing.T) {
	form := Form{
		Name:       strings.Repeat("가", 31),
		Phone:      "0400000000",
		Attendance: "attending",
		GuestCount: intPtr(1),
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, sub)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.NameTooLong, errs["name"])
}

func TestValidateNameAtLimit(t *testing.T) {
	form := Form{
		Name:       strings.Repeat("가", 30),
		Phone:      "0400000000",
		Attendance: "attending",
		GuestCount: intPtr(1),
	}

	_, errs := Validate(form, i18n.Korean)

	assert.Nil(t, errs)
}

func TestValidatePhoneTooShort(t *testing.T) {
	form := Form{
		Name:       "Jane",
		Phone:      "123",
		Attendance: "attending",
		GuestCount: intPtr(1),
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, sub)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.PhoneInvalid, errs["phone"])
}

func TestValidateEmailOptional(t *testing.T) {
	form := Form{
		Name:       "Jane",
		Phone:      "0400000000",
		Email:      "",
		Attendance: "not_attending",
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, errs)
	assert.Nil(t, sub.Email)
}

func TestValidateEmailFormat(t *testing.T) {
	form := Form{
		Name:       "Jane",
		Phone:      "0400000000",
		Email:      "not-an-email",
		Attendance: "not_attending",
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, sub)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.EmailInvalid, errs["email"])

	form.Email = "jane@example.com"
	sub, errs = Validate(form, i18n.Korean)
	assert.Nil(t, errs)
	assert.Equal(t, "jane@example.com", *sub.Email)
}

func TestValidateAttendanceRequired(t *testing.T) {
	form := Form{
		Name:  "Jane",
		Phone: "0400000000",
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, sub)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.AttendanceRequired, errs["attendance"])

	form.Attendance = "maybe"
	_, errs = Validate(form, i18n.Korean)
	assert.Equal(t, i18n.Get(i18n.Korean).Validation.AttendanceRequired, errs["attendance"])
}

func TestValidateGuestCountRequiredWhenAttending(t *testing.T) {
	form := Form{
		Name:       "Jane",
		Phone:      "0400000000",
		Attendance: "attending",
	}

	// Absent, below range and above range all attach the error to the
	// guestCount field, not a top-level error.
	for _, count := range []*int{nil, intPtr(0), intPtr(11)} {
		form.GuestCount = count
		sub, errs := Validate(form, i18n.Korean)
		assert.Nil(t, sub)
		assert.Equal(t, i18n.Get(i18n.Korean).Validation.GuestCountRequired, errs["guestCount"])
	}
}

func TestValidateGuestCountSkippedWhenNotAttending(t *testing.T) {
	form := Form{
		Name:       "Jane",
		Phone:      "0400000000",
		Attendance: "not_attending",
		GuestCount: intPtr(99),
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, errs)
	assert.Nil(t, sub.GuestCount)
	assert.Nil(t, sub.HasChildren)
	assert.Nil(t, sub.ChildrenAges)
}

func TestValidateChildrenFields(t *testing.T) {
	form := Form{
		Name:         "Jane",
		Phone:        "0400000000",
		Attendance:   "attending",
		GuestCount:   intPtr(3),
		HasChildren:  "yes",
		ChildrenAges: "6 months, 2 years",
	}

	sub, errs := Validate(form, i18n.Korean)

	assert.Nil(t, errs)
	assert.Equal(t, HasChildrenYes, *sub.HasChildren)
	assert.Equal(t, "6 months, 2 years", *sub.ChildrenAges)

	// Ages are only meaningful alongside hasChildren=yes.
	form.HasChildren = "no"
	sub, _ = Validate(form, i18n.Korean)
	assert.Equal(t, HasChildrenNo, *sub.HasChildren)
	assert.Nil(t, sub.ChildrenAges)
}

func TestValidateLocalizedMessages(t *testing.T) {
	form := Form{Attendance: "attending"}

	_, koErrs := Validate(form, i18n.Korean)
	_, enErrs := Validate(form, i18n.English)

	assert.Equal(t, "성함을 입력해주세요", koErrs["name"])
	assert.Equal(t, "Please enter your name", enErrs["name"])
	assert.NotEqual(t, koErrs["phone"], enErrs["phone"])
}
