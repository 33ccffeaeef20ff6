package models

// Answer source labels.
const (
	SourceKnowledgeBase = "Medical Knowledge Base"
	SourceUploadedDocs  = "Uploaded Documents"
)

// Answer category labels, one per rule family.
const (
	CategorySideEffects     = "medication_side_effects"
	CategorySymptoms        = "disease_symptoms"
	CategoryRiskFactors     = "risk_factors"
	CategoryTreatment       = "treatment"
	CategoryMedicationTypes = "medication_types"
	CategoryGeneralInfo     = "general_information"
	CategoryUploadedContent = "uploaded_content"
	CategoryGuidance        = "general_guidance"
)

// Answer is the result of dispatching a question. Transient, produced per
// request, never persisted.
type Answer struct {
	Text       string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Category   string  `json:"category"`
}
