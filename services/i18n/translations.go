package i18n

// Lang is the active UI language.
type Lang string

const (
	Korean  Lang = "ko"
	English Lang = "en"
)

// Parse maps a raw language tag to a supported Lang. Anything that is not
// "en" falls back to Korean, the site's default.
func Parse(s string) Lang {
	if s == string(English) {
		return English
	}
	return Korean
}

// Bundle is the localized copy served to the frontend and used for
// server-rendered meta tags and error messages.
type Bundle struct {
	Lang       Lang           `json:"lang"`
	Meta       MetaCopy       `json:"meta"`
	Rsvp       RsvpCopy       `json:"rsvp"`
	Validation ValidationCopy `json:"validation"`
}

// MetaCopy feeds the social-preview meta tags.
type MetaCopy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Locale      string `json:"locale"`
}

// RsvpCopy is the RSVP form copy.
type RsvpCopy struct {
	Title                   string `json:"title"`
	Intro                   string `json:"intro"`
	Name                    string `json:"name"`
	Phone                   string `json:"phone"`
	PhonePlaceholder        string `json:"phonePlaceholder"`
	Email                   string `json:"email"`
	EmailOptional           string `json:"emailOptional"`
	Attendance              string `json:"attendance"`
	Attending               string `json:"attending"`
	NotAttending            string `json:"notAttending"`
	GuestCount              string `json:"guestCount"`
	GuestCountHint          string `json:"guestCountHint"`
	HasChildren             string `json:"hasChildren"`
	HasChildrenNo           string `json:"hasChildrenNo"`
	HasChildrenYes          string `json:"hasChildrenYes"`
	ChildrenAges            string `json:"childrenAges"`
	ChildrenAgesPlaceholder string `json:"childrenAgesPlaceholder"`
	Note                    string `json:"note"`
	NotePlaceholder         string `json:"notePlaceholder"`
	Submit                  string `json:"submit"`
	SubmitNotAttending      string `json:"submitNotAttending"`
	Submitting              string `json:"submitting"`
	Success                 string `json:"success"`
	Error                   string `json:"error"`
}

// ValidationCopy holds the per-field RSVP validation messages.
type ValidationCopy struct {
	NameRequired       string `json:"nameRequired"`
	NameTooLong        string `json:"nameTooLong"`
	PhoneInvalid       string `json:"phoneInvalid"`
	EmailInvalid       string `json:"emailInvalid"`
	AttendanceRequired string `json:"attendanceRequired"`
	GuestCountRequired string `json:"guestCountRequired"`
}

var bundles = map[Lang]Bundle{
	Korean: {
		Lang: Korean,
		Meta: MetaCopy{
			Title:       "조준용 ❤️ 허다영 결혼합니다",
			Description: "2월 20일 토요일 오후 3시&#10;그랜드힐 1층 플로리아",
			Locale:      "ko_KR",
		},
		Rsvp: RsvpCopy{
			Title:                   "탑승권 신청",
			Intro:                   "참석 여부를 알려주시면 소중히 준비하겠습니다\n예식이 지정좌석제로 진행되어 참석 여부를\n12월 1일까지 회신해주시면 감사하겠습니다.",
			Name:                    "성함",
			Phone:                   "연락처",
			PhonePlaceholder:        "010-0000-0000",
			Email:                   "이메일",
			EmailOptional:           "(선택)",
			Attendance:              "참석 여부",
			Attending:               "참석합니다",
			NotAttending:            "참석이 어렵습니다",
			GuestCount:              "동행 인원",
			GuestCountHint:          "좌석 배치를 위해 참석하시는 모든 분(영유아 포함)을 인원수에 포함해주세요.\n식사는 만 2세 이상부터 제공됩니다.",
			HasChildren:             "어린이 또는 영유아가 함께 참석하나요?",
			HasChildrenNo:           "아니오",
			HasChildrenYes:          "예",
			ChildrenAges:            "나이(개월/세)를 적어주세요:",
			ChildrenAgesPlaceholder: "예: 6개월, 2세, 5세",
			Note:                    "전달사항",
			NotePlaceholder:         "음식 알러지 등 알려주실 사항이나 저희에게 전달하고 싶은 말씀이 있으시면 남겨주세요",
			Submit:                  "탑승권 발급 받기",
			SubmitNotAttending:      "다음 비행을 기약할게요 ✈️",
			Submitting:              "제출 중...",
			Success:                 "탑승권 신청이 완료되었습니다.",
			Error:                   "제출 중 오류가 발생했습니다. 다시 시도해주세요.",
		},
		Validation: ValidationCopy{
			NameRequired:       "성함을 입력해주세요",
			NameTooLong:        "성함은 30자 이하로 입력해주세요",
			PhoneInvalid:       "연락처를 올바르게 입력해주세요",
			EmailInvalid:       "올바른 이메일 형식이 아닙니다",
			AttendanceRequired: "참석 여부를 선택해주세요",
			GuestCountRequired: "동행 인원을 입력해주세요 (1-10명)",
		},
	},
	English: {
		Lang: English,
		Meta: MetaCopy{
			Title:       "Daniel ❤️ Aria Wedding",
			Description: "February 20, Saturday 3:00 PM&#10;Grand Hill 1F Floria",
			Locale:      "en_US",
		},
		Rsvp: RsvpCopy{
			Title:                   "Boarding Pass Request",
			Intro:                   "Please let us know if you can join us.\nSeats are assigned, so we would appreciate\nyour reply by December 1.",
			Name:                    "Name",
			Phone:                   "Phone",
			PhonePlaceholder:        "010-0000-0000",
			Email:                   "Email",
			EmailOptional:           "(optional)",
			Attendance:              "Attendance",
			Attending:               "I will attend",
			NotAttending:            "I cannot attend",
			GuestCount:              "Party Size",
			GuestCountHint:          "Please include everyone attending (babies included) for seat planning.\nMeals are provided for guests aged 2 and up.",
			HasChildren:             "Will any children or babies be attending?",
			HasChildrenNo:           "No",
			HasChildrenYes:          "Yes",
			ChildrenAges:            "please let us know their age(s):",
			ChildrenAgesPlaceholder: "e.g., 6 months, 2 years, 5 years",
			Note:                    "Note",
			NotePlaceholder:         "Let us know about food allergies or anything you would like to share with us",
			Submit:                  "Get My Boarding Pass",
			SubmitNotAttending:      "I'll Catch the Next Flight ✈️",
			Submitting:              "Submitting...",
			Success:                 "Your boarding pass request has been submitted.",
			Error:                   "An error occurred while submitting. Please try again.",
		},
		Validation: ValidationCopy{
			NameRequired:       "Please enter your name",
			NameTooLong:        "Name must be 30 characters or fewer",
			PhoneInvalid:       "Please enter a valid phone number",
			EmailInvalid:       "Invalid email format",
			AttendanceRequired: "Please select your attendance",
			GuestCountRequired: "Please enter your party size (1-10)",
		},
	},
}

// Get returns the copy bundle for the given language.
func Get(lang Lang) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[Korean]
}
