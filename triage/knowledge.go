package triage

// Severity is the triage tier assigned to a symptom check.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Entry is one record of the curated symptom knowledge base, keyed by a
// normalized symptom phrase. Read-only at runtime.
type Entry struct {
	Conditions      []string
	Recommendations []string
	Severity        Severity
	Advice          string
}

var knowledgeBase = map[string]Entry{
	"headache": {
		Conditions:      []string{"Tension headache", "Migraine", "Dehydration"},
		Recommendations: []string{"Rest in a quiet, dark room", "Stay hydrated", "Take an over-the-counter pain reliever if needed"},
		Severity:        SeverityModerate,
		Advice:          "See a doctor if the headache is sudden, severe, or lasts more than two days.",
	},
	"fever": {
		Conditions:      []string{"Viral infection", "Flu", "Bacterial infection"},
		Recommendations: []string{"Rest and drink plenty of fluids", "Take paracetamol to reduce fever", "Monitor your temperature regularly"},
		Severity:        SeverityModerate,
		Advice:          "Seek medical care if the fever exceeds 103°F (39.4°C) or lasts more than three days.",
	},
	"cough": {
		Conditions:      []string{"Common cold", "Bronchitis", "Allergies"},
		Recommendations: []string{"Drink warm fluids", "Use a humidifier", "Try honey to soothe the throat"},
		Severity:        SeverityMild,
		Advice:          "See a doctor if the cough lasts more than three weeks or produces blood.",
	},
	"sore throat": {
		Conditions:      []string{"Pharyngitis", "Common cold", "Strep throat"},
		Recommendations: []string{"Gargle with warm salt water", "Drink warm liquids", "Use throat lozenges"},
		Severity:        SeverityMild,
		Advice:          "See a doctor if swallowing becomes difficult or the pain lasts over a week.",
	},
	"stomach pain": {
		Conditions:      []string{"Indigestion", "Gastritis", "Food poisoning"},
		Recommendations: []string{"Eat light, bland food", "Avoid spicy or oily meals", "Sip water or clear fluids"},
		Severity:        SeverityModerate,
		Advice:          "Seek care if the pain is severe, localized, or accompanied by vomiting.",
	},
	"chest pain": {
		Conditions:      []string{"Angina", "Heart attack", "Muscle strain"},
		Recommendations: []string{"Stop all activity and sit down", "Call emergency services immediately", "Do not drive yourself to the hospital"},
		Severity:        SeveritySevere,
		Advice:          "Chest pain can signal a heart attack. Treat it as an emergency.",
	},
	"shortness of breath": {
		Conditions:      []string{"Asthma", "Anxiety", "Respiratory infection"},
		Recommendations: []string{"Sit upright and try to stay calm", "Use a prescribed inhaler if available", "Get fresh air"},
		Severity:        SeveritySevere,
		Advice:          "Call emergency services if breathing difficulty is sudden or worsening.",
	},
	"runny nose": {
		Conditions:      []string{"Common cold", "Allergic rhinitis", "Sinusitis"},
		Recommendations: []string{"Stay hydrated", "Use saline nasal spray", "Rest"},
		Severity:        SeverityMild,
		Advice:          "Usually resolves on its own within a week.",
	},
	"nausea": {
		Conditions:      []string{"Gastroenteritis", "Food poisoning", "Motion sickness"},
		Recommendations: []string{"Sip clear fluids slowly", "Eat small, bland meals", "Avoid strong odors"},
		Severity:        SeverityModerate,
		Advice:          "See a doctor if vomiting persists beyond 24 hours or you cannot keep fluids down.",
	},
	"vomiting": {
		Conditions:      []string{"Gastroenteritis", "Food poisoning", "Migraine"},
		Recommendations: []string{"Sip oral rehydration solution", "Rest your stomach before eating", "Reintroduce bland foods slowly"},
		Severity:        SeverityModerate,
		Advice:          "Seek care for signs of dehydration or blood in vomit.",
	},
	"diarrhea": {
		Conditions:      []string{"Gastroenteritis", "Food intolerance", "Infection"},
		Recommendations: []string{"Drink oral rehydration solution", "Eat bananas, rice, and toast", "Avoid dairy and caffeine"},
		Severity:        SeverityModerate,
		Advice:          "See a doctor if it lasts more than two days or contains blood.",
	},
	"dizziness": {
		Conditions:      []string{"Low blood pressure", "Dehydration", "Inner ear problem"},
		Recommendations: []string{"Sit or lie down immediately", "Drink water", "Avoid sudden position changes"},
		Severity:        SeverityModerate,
		Advice:          "Seek care if dizziness is accompanied by chest pain or fainting.",
	},
	"fatigue": {
		Conditions:      []string{"Sleep deprivation", "Anemia", "Thyroid disorder"},
		Recommendations: []string{"Keep a regular sleep schedule", "Eat a balanced diet", "Do light exercise"},
		Severity:        SeverityMild,
		Advice:          "See a doctor if fatigue persists for more than two weeks without clear cause.",
	},
	"back pain": {
		Conditions:      []string{"Muscle strain", "Poor posture", "Herniated disc"},
		Recommendations: []string{"Apply a warm compress", "Keep gently active", "Avoid heavy lifting"},
		Severity:        SeverityMild,
		Advice:          "Seek care if the pain radiates down a leg or follows an injury.",
	},
	"rash": {
		Conditions:      []string{"Contact dermatitis", "Allergic reaction", "Eczema"},
		Recommendations: []string{"Avoid scratching", "Apply a cool compress", "Use fragrance-free moisturizer"},
		Severity:        SeverityMild,
		Advice:          "Seek immediate care if the rash spreads rapidly or breathing is affected.",
	},
}

// categoryConditions is the secondary keyword fallback, consulted only when
// no knowledge-base key matches. Ordered: the first matching category wins.
var categoryConditions = []struct {
	keyword    string
	conditions []string
}{
	{"stomach", []string{"Indigestion", "Gastritis"}},
	{"throat", []string{"Pharyngitis", "Common cold"}},
	{"chest", []string{"Angina", "Muscle strain"}},
	{"head", []string{"Tension headache", "Migraine"}},
	{"skin", []string{"Dermatitis", "Allergic reaction"}},
	{"breath", []string{"Asthma", "Respiratory infection"}},
	{"eye", []string{"Conjunctivitis", "Eye strain"}},
	{"ear", []string{"Ear infection", "Earwax buildup"}},
}

// recommendationBuckets backs the recommendation fallback when the input
// matched no knowledge-base entry. Ordered, first keyword hit wins.
var recommendationBuckets = []struct {
	keyword         string
	recommendations []string
}{
	{"fever", []string{"Rest and drink plenty of fluids", "Take paracetamol to reduce fever", "Monitor your temperature"}},
	{"pain", []string{"Rest the affected area", "Apply a cold or warm compress", "Take an over-the-counter pain reliever if needed"}},
	{"cough", []string{"Drink warm fluids", "Use a humidifier", "Try honey to soothe the throat"}},
	{"nausea", []string{"Sip clear fluids slowly", "Eat small, bland meals", "Rest"}},
	{"headache", []string{"Rest in a quiet room", "Stay hydrated", "Limit screen time"}},
}

var genericConditions = []string{"Consult a healthcare provider for proper diagnosis"}

var genericRecommendations = map[Severity][]string{
	SeverityMild:     {"Rest and monitor your symptoms", "Stay hydrated", "Use over-the-counter remedies as appropriate"},
	SeverityModerate: {"Rest and monitor your symptoms closely", "Stay hydrated", "Schedule a visit with your doctor if symptoms persist"},
	SeveritySevere:   {"Seek medical attention promptly", "Do not wait for symptoms to worsen", "Have someone stay with you"},
}

var genericAdvice = map[Severity]string{
	SeverityMild:     "Your symptoms sound mild. Monitor them and rest; see a doctor if they persist.",
	SeverityModerate: "Consult a healthcare provider if your symptoms persist or worsen.",
	SeveritySevere:   "Your symptoms may be serious. Seek medical attention as soon as possible.",
}

// severeKeywords and mildKeywords drive the independent severity scan.
var severeKeywords = []string{
	"severe", "emergency", "unbearable", "intense",
	"chest pain", "difficulty breathing", "can't breathe",
	"unconscious", "bleeding heavily",
}

var mildKeywords = []string{"mild", "minor", "slight", "a little"}
