package knowledge

// topicTable is the fixed fact table. Order matters: stats list topics in
// declaration order.
var topicTable = []Topic{
	{
		ID: "aspirin",
		Fields: map[string]Field{
			"side_effects": {Values: []string{
				"stomach upset and gastrointestinal irritation",
				"heartburn and acid reflux",
				"nausea and vomiting",
				"increased bleeding risk and easy bruising",
				"stomach ulcers with long-term use",
				"allergic reactions in sensitive individuals",
				"tinnitus (ringing in ears) with high doses",
			}},
			"uses":        {Text: "pain relief, fever reduction, inflammation reduction, cardiovascular protection"},
			"mechanism":   {Text: "inhibits cyclooxygenase enzymes to reduce inflammation, pain, and fever"},
			"precautions": {Text: "should be taken with food, consult doctor if bleeding disorders or stomach ulcers"},
		},
	},
	{
		ID: "diabetes",
		Fields: map[string]Field{
			"symptoms": {Values: []string{
				"frequent urination (polyuria)",
				"increased thirst (polydipsia)",
				"unexplained weight loss",
				"extreme fatigue and weakness",
				"blurred vision",
				"slow-healing wounds",
				"frequent infections",
			}},
			"types":         {Text: "Type 1 (autoimmune), Type 2 (insulin resistance)"},
			"management":    {Text: "blood glucose monitoring, dietary changes, regular exercise, medications"},
			"complications": {Text: "cardiovascular disease, neuropathy, nephropathy, retinopathy"},
		},
	},
	{
		ID: "hypertension",
		Fields: map[string]Field{
			"definition": {Text: "blood pressure consistently above 140/90 mmHg"},
			"risk_factors": {Values: []string{
				"age (risk increases with age)",
				"family history of high blood pressure",
				"obesity and being overweight",
				"high sodium intake",
				"lack of physical activity",
				"excessive alcohol consumption",
				"smoking and tobacco use",
				"chronic stress",
			}},
			"treatment":   {Text: "lifestyle modifications (diet, exercise, weight management) and medications"},
			"medications": {Text: "ACE inhibitors, beta-blockers, diuretics, calcium channel blockers"},
		},
	},
	{
		ID: "pneumonia",
		Fields: map[string]Field{
			"symptoms": {Values: []string{
				"cough with purulent sputum production",
				"fever and chills",
				"shortness of breath",
				"chest pain that worsens with breathing or coughing",
				"fatigue and malaise",
			}},
			"causes":    {Text: "bacteria, viruses, or fungi"},
			"diagnosis": {Text: "chest X-ray, blood tests, sputum culture"},
			"treatment": {Text: "antibiotics for bacterial, supportive care for viral"},
		},
	},
	{
		ID: "insulin",
		Fields: map[string]Field{
			"types": {Values: []string{
				"rapid-acting: onset 15 minutes, peak 1-2 hours, duration 3-4 hours",
				"short-acting: onset 30 minutes, peak 2-3 hours, duration 3-6 hours",
				"intermediate-acting: onset 2-4 hours, peak 4-12 hours, duration 12-18 hours",
				"long-acting: onset 6-10 hours, minimal peak, duration 20-24 hours",
			}},
			"administration": {Text: "proper injection technique, site rotation, blood glucose monitoring"},
			"side_effects":   {Text: "hypoglycemia (sweating, tremor, confusion)"},
		},
	},
}
