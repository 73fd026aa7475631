package controllers

import (
	"context"
	"log"
	"net/http"

	models "Cheongcheop/models/postgres"
	"Cheongcheop/services/i18n"
	"Cheongcheop/services/rsvp"
	"Cheongcheop/services/sheets"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RsvpController struct {
	DB     *gorm.DB
	Sheets *sheets.Client
}

// @Summary Submit an RSVP
// @Description Validates a guest's RSVP and writes it to the datastore, with a best-effort copy to the Google Sheets webhook
// @Tags rsvp
// @Accept json
// @Produce json
// @Param lang query string false "UI language (ko or en)"
// @Param rsvp body rsvp.Form true "RSVP form fields"
// @Success 201 {object} object{success=bool,message=string}
// @Failure 400 {object} object{errors=object}
// @Failure 500 {object} object{error=string}
// @Router /api/rsvp [post]
func (rc *RsvpController) SubmitRsvp(c *gin.Context) {
	lang := i18n.Parse(c.Query("lang"))
	t := i18n.Get(lang)

	var form rsvp.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Honeypot: bots fill the hidden field. Discard silently, with nothing
	// that distinguishes the response from a legitimate no-op. A guest whose
	// browser autofills the hidden field gets no feedback either; that
	// matches the site's historical behavior.
	if form.Honeypot != "" {
		c.Status(http.StatusNoContent)
		return
	}

	sub, fieldErrs := rsvp.Validate(form, lang)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	if rc.DB == nil {
		log.Println("RSVP submission rejected: datastore not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": t.Rsvp.Error})
		return
	}

	record := models.RsvpResponse{
		Name:         sub.Name,
		Phone:        sub.Phone,
		Email:        sub.Email,
		Attendance:   string(sub.Attendance),
		GuestCount:   sub.GuestCount,
		HasChildren:  sub.HasChildren,
		ChildrenAges: sub.ChildrenAges,
		Note:         sub.Note,
	}

	// The primary write is mandatory: on failure the guest sees the
	// datastore's message (or the generic localized one) and can retry.
	if err := rc.DB.WithContext(c.Request.Context()).Create(&record).Error; err != nil {
		log.Printf("Error inserting RSVP response: %v", err)
		msg := err.Error()
		if msg == "" {
			msg = t.Rsvp.Error
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	// Secondary write is fire-and-forget: its outcome never changes what the
	// guest is told. Failures are only logged for operators.
	if rc.Sheets.Enabled() {
		payload := sheets.NewPayload(sub)
		go func() {
			if err := rc.Sheets.Send(context.Background(), payload); err != nil {
				log.Printf("Google Sheets webhook failed: %v", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": t.Rsvp.Success,
	})
}
