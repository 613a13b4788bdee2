// Package catalog holds the clinic's static reference data: the doctors and
// services the booking form offers, accepted insurance plans, bookable time
// slots, and FAQ content. Everything here is fixed at compile time.
package catalog

type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Experience      int      `json:"experience"`
	ConsultationFee string   `json:"consultation_fee"`
	Languages       []string `json:"languages"`
	FocusAreas      []string `json:"focus_areas"`
}

type Service struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var Doctors = []Doctor{
	{
		ID:              "dr-emily-carter",
		Name:            "Dr. Emily Carter",
		Specialization:  "Cardiology",
		Experience:      14,
		ConsultationFee: "$140",
		Languages:       []string{"English", "Spanish"},
		FocusAreas:      []string{"Preventive cardiology", "Hypertension management", "Cholesterol optimization"},
	},
	{
		ID:              "dr-daniel-kim",
		Name:            "Dr. Daniel Kim",
		Specialization:  "Neurology",
		Experience:      11,
		ConsultationFee: "$160",
		Languages:       []string{"English", "Korean"},
		FocusAreas:      []string{"Migraine management", "Nerve disorders", "Non-invasive neurological care"},
	},
	{
		ID:              "dr-sophia-nguyen",
		Name:            "Dr. Sophia Nguyen",
		Specialization:  "Pediatrics",
		Experience:      9,
		ConsultationFee: "$120",
		Languages:       []string{"English", "Vietnamese"},
		FocusAreas:      []string{"Well-child visits", "Growth and nutrition", "Vaccination planning"},
	},
	{
		ID:              "dr-michael-owens",
		Name:            "Dr. Michael Owens",
		Specialization:  "General Medicine",
		Experience:      16,
		ConsultationFee: "$110",
		Languages:       []string{"English", "French"},
		FocusAreas:      []string{"Primary care follow-up", "Diabetes and thyroid care", "Preventive screening"},
	},
	{
		ID:              "dr-lucas-rodriguez",
		Name:            "Dr. Lucas Rodriguez",
		Specialization:  "Orthopedics",
		Experience:      10,
		ConsultationFee: "$135",
		Languages:       []string{"English", "Portuguese"},
		FocusAreas:      []string{"Sports injury recovery", "Knee and shoulder pain", "Posture and mobility plans"},
	},
	{
		ID:              "dr-ahmed-farooq",
		Name:            "Dr. Ahmed Farooq",
		Specialization:  "Pulmonology",
		Experience:      12,
		ConsultationFee: "$150",
		Languages:       []string{"English", "Urdu"},
		FocusAreas:      []string{"Asthma and allergy care", "Respiratory infection follow-up", "Breathing performance assessment"},
	},
}

var Services = []Service{
	{
		Slug:        "heart-care",
		Title:       "Heart Care",
		Description: "Advanced cardiac screening, diagnosis, and prevention plans.",
		Department:  "Cardiology",
		Duration:    "45 min",
		Price:       "$120+",
	},
	{
		Slug:        "neuro-consult",
		Title:       "Neurology Consult",
		Description: "Expert evaluation for headaches, seizures, and nerve disorders.",
		Department:  "Neurology",
		Duration:    "50 min",
		Price:       "$140+",
	},
	{
		Slug:        "child-wellness",
		Title:       "Child Wellness",
		Description: "Routine checkups, vaccinations, and developmental assessments.",
		Department:  "Pediatrics",
		Duration:    "35 min",
		Price:       "$90+",
	},
	{
		Slug:        "general-consultation",
		Title:       "General Consultation",
		Description: "Primary care for ongoing health concerns and preventive planning.",
		Department:  "Primary Care",
		Duration:    "30 min",
		Price:       "$75+",
	},
	{
		Slug:        "immunization",
		Title:       "Immunization",
		Description: "Safe, up-to-date vaccine services for adults and children.",
		Department:  "Preventive Care",
		Duration:    "20 min",
		Price:       "$50+",
	},
	{
		Slug:        "preventive-screening",
		Title:       "Preventive Screening",
		Description: "Early detection checks for high-impact health conditions.",
		Department:  "Wellness",
		Duration:    "40 min",
		Price:       "$85+",
	},
}

// TimeSlots are the bookable slots per day.
var TimeSlots = []string{
	"09:00 AM",
	"10:30 AM",
	"12:00 PM",
	"02:00 PM",
	"03:30 PM",
	"05:00 PM",
}

var InsurancePartners = []string{
	"Aetna",
	"Blue Cross",
	"Cigna",
	"UnitedHealthcare",
	"Humana",
	"Kaiser",
}

var PlansByProvider = map[string][]string{
	"Aetna":            {"PPO Basic", "HMO Plus", "Premium Care"},
	"Blue Cross":       {"Silver Plan", "Gold Plan", "Family Core"},
	"Cigna":            {"Open Access", "Local Plus", "Connect PPO"},
	"UnitedHealthcare": {"Choice Plus", "Navigate", "All Savers"},
	"Humana":           {"Preferred PPO", "National POS", "Basic Care"},
	"Kaiser":           {"Signature HMO", "Classic", "Essential"},
}

var FAQs = []FAQ{
	{
		Question: "Do I need a referral before booking?",
		Answer:   "For most primary and pediatric appointments, no referral is required. Some specialist visits may require one depending on your insurance policy.",
	},
	{
		Question: "Can I reschedule or cancel appointments online?",
		Answer:   "Yes. You can modify your appointment up to 12 hours before the slot through the appointment page or by calling the front desk.",
	},
	{
		Question: "What should I bring to my first visit?",
		Answer:   "Please bring a valid ID, insurance card, current medication list, and prior reports if available. Arrive 10 minutes early for check-in.",
	},
}

// ValidTimeSlot reports whether slot is one of the bookable slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
