package wedding_constants

import "time"

// KST is the couple's home timezone; all anchor dates are local to it.
var KST = time.FixedZone("KST", 9*60*60)

// CoupleSince is the day the couple started dating. The "time together"
// counter counts up from this instant.
var CoupleSince = time.Date(2013, time.June, 2, 0, 0, 0, 0, KST)

// RSVP form limits
const (
	MaxNameLength  = 30
	MinPhoneLength = 10
	MinGuestCount  = 1
	MaxGuestCount  = 10
)

// CoupleImagePath is the social-preview image, served from the static build.
const CoupleImagePath = "/couple.jpg"
