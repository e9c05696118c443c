package schema

// FirstAidGuide is a read-only reference entry served by the first-aid pages.
type FirstAidGuide struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title"`
	Steps    []string `json:"steps"`
	Warnings []string `json:"warnings,omitempty"`
}

// FirstAidGuideFromTopic is a map which key is FirstAidGuide.Topic and value
// is the guide itself.
var FirstAidGuideFromTopic = map[string]FirstAidGuide{}

func init() {
	for _, g := range FirstAidGuides {
		FirstAidGuideFromTopic[g.Topic] = g
	}
}

var FirstAidGuides = []FirstAidGuide{
	{
		Topic: "burns",
		Title: "Minor burns and scalds",
		Steps: []string{
			"Cool the burn under cool running water for at least 10 minutes",
			"Remove rings or tight items before the area swells",
			"Cover loosely with a sterile, non-fluffy dressing or cling film",
			"Take a pain reliever such as paracetamol if needed",
		},
		Warnings: []string{
			"Do not apply ice, butter, or ointments",
			"Seek medical care for burns larger than the palm of the hand, or on the face",
		},
	},
	{
		Topic: "choking",
		Title: "Choking (adult)",
		Steps: []string{
			"Encourage the person to keep coughing",
			"Give up to 5 sharp back blows between the shoulder blades",
			"Give up to 5 abdominal thrusts if back blows fail",
			"Alternate back blows and abdominal thrusts until the object clears",
		},
		Warnings: []string{
			"Call emergency services if the obstruction does not clear",
		},
	},
	{
		Topic: "bleeding",
		Title: "Severe bleeding",
		Steps: []string{
			"Apply firm, direct pressure to the wound with a clean cloth",
			"Raise the injured area above heart level if possible",
			"Keep pressure on until help arrives; add layers, do not remove soaked ones",
		},
		Warnings: []string{
			"Do not apply a tourniquet unless trained to do so",
		},
	},
	{
		Topic: "fracture",
		Title: "Suspected fracture",
		Steps: []string{
			"Keep the injured limb still; support it in the position found",
			"Apply a cold pack wrapped in cloth to reduce swelling",
			"Immobilize with padding or a sling before moving the person",
		},
		Warnings: []string{
			"Do not try to straighten the limb",
			"Call emergency services for open fractures or suspected spinal injury",
		},
	},
	{
		Topic: "heatstroke",
		Title: "Heat exhaustion and heatstroke",
		Steps: []string{
			"Move the person to a cool, shaded place and lie them down",
			"Remove excess clothing and sponge with cool water",
			"Give small sips of water if fully conscious",
		},
		Warnings: []string{
			"Heatstroke is an emergency: call for help if confusion or fainting occurs",
		},
	},
	{
		Topic: "seizure",
		Title: "Seizure",
		Steps: []string{
			"Clear the area of hard or sharp objects",
			"Cushion the head and loosen anything tight around the neck",
			"Turn the person onto their side once jerking stops",
			"Stay with them until fully recovered",
		},
		Warnings: []string{
			"Never put anything in the person's mouth",
			"Call emergency services if the seizure lasts more than 5 minutes",
		},
	},
}
