package qa

import (
	"strings"
	"testing"

	"github.com/healthdesk/medqa/internal/docstore"
	"github.com/healthdesk/medqa/internal/knowledge"
	"github.com/healthdesk/medqa/internal/models"
)

func newTestEngine(t *testing.T) (*Engine, *docstore.Store) {
	t.Helper()
	docs := docstore.NewStore(nil)
	return NewEngine(knowledge.NewStore(), docs, nil), docs
}

func TestAnswer_KnowledgeBaseRules(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name       string
		question   string
		confidence float64
		category   string
		contains   string
	}{
		{
			name:       "aspirin side effects",
			question:   "What are the side effects of aspirin?",
			confidence: 0.95,
			category:   models.CategorySideEffects,
			contains:   "stomach upset",
		},
		{
			name:       "aspirin adverse effects wording",
			question:   "What are the adverse effects of aspirin?",
			confidence: 0.95,
			category:   models.CategorySideEffects,
			contains:   "bleeding risk",
		},
		{
			name:       "aspirin reactions wording",
			question:   "What reactions can aspirin cause?",
			confidence: 0.95,
			category:   models.CategorySideEffects,
			contains:   "allergic reactions",
		},
		{
			name:       "diabetes symptoms",
			question:   "What are the symptoms of diabetes?",
			confidence: 0.93,
			category:   models.CategorySymptoms,
			contains:   "frequent urination",
		},
		{
			name:       "diabetes signs wording",
			question:   "What are the signs of diabetes?",
			confidence: 0.93,
			category:   models.CategorySymptoms,
			contains:   "polydipsia",
		},
		{
			name:       "pneumonia symptoms",
			question:   "What are pneumonia symptoms?",
			confidence: 0.92,
			category:   models.CategorySymptoms,
			contains:   "fever and chills",
		},
		{
			name:       "hypertension risk factors",
			question:   "What are the risk factors for hypertension?",
			confidence: 0.94,
			category:   models.CategoryRiskFactors,
			contains:   "high sodium intake",
		},
		{
			name:       "blood pressure causes wording",
			question:   "What causes high blood pressure?",
			confidence: 0.94,
			category:   models.CategoryRiskFactors,
			contains:   "family history",
		},
		{
			name:       "diabetes treatment",
			question:   "What treatment is recommended for diabetes?",
			confidence: 0.91,
			category:   models.CategoryTreatment,
			contains:   "blood glucose monitoring",
		},
		{
			name:       "diabetes management wording",
			question:   "How is diabetes managed?",
			confidence: 0.91,
			category:   models.CategoryTreatment,
			contains:   "dietary changes",
		},
		{
			name:       "hypertension treatment",
			question:   "What is the treatment for high blood pressure?",
			confidence: 0.92,
			category:   models.CategoryTreatment,
			contains:   "ACE inhibitors",
		},
		{
			name:       "insulin types",
			question:   "What are the types of insulin?",
			confidence: 0.90,
			category:   models.CategoryMedicationTypes,
			contains:   "rapid-acting",
		},
		{
			name:       "generic diabetes definition",
			question:   "What is diabetes?",
			confidence: 0.88,
			category:   models.CategoryGeneralInfo,
			contains:   "metabolic disorders",
		},
		{
			name:       "generic hypertension definition",
			question:   "What is hypertension?",
			confidence: 0.87,
			category:   models.CategoryGeneralInfo,
			contains:   "140/90",
		},
		{
			name:       "generic pneumonia definition",
			question:   "What is pneumonia?",
			confidence: 0.86,
			category:   models.CategoryGeneralInfo,
			contains:   "air sacs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := engine.Answer(tt.question, "")
			if answer.Confidence != tt.confidence {
				t.Errorf("confidence: got %v, want %v", answer.Confidence, tt.confidence)
			}
			if answer.Category != tt.category {
				t.Errorf("category: got %q, want %q", answer.Category, tt.category)
			}
			if answer.Source != models.SourceKnowledgeBase {
				t.Errorf("source: got %q", answer.Source)
			}
			if !strings.Contains(answer.Text, tt.contains) {
				t.Errorf("answer %q does not contain %q", answer.Text, tt.contains)
			}
		})
	}
}

func TestAnswer_CaseInsensitive(t *testing.T) {
	engine, _ := newTestEngine(t)
	for _, question := range []string{
		"WHAT ARE THE SIDE EFFECTS OF ASPIRIN?",
		"aspirin SIDE EFFECT info please",
		"Side Effects Of Aspirin",
	} {
		answer := engine.Answer(question, "")
		if answer.Confidence != 0.95 || answer.Category != models.CategorySideEffects {
			t.Errorf("question %q: got confidence %v category %q", question, answer.Confidence, answer.Category)
		}
	}
}

func TestAnswer_RuleOrderDeterministic(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Matches rule 1 (aspirin side effects) and rule 2 (diabetes symptoms);
	// rule 1 must win.
	answer := engine.Answer("Do aspirin side effects include diabetes symptoms?", "")
	if answer.Confidence != 0.95 {
		t.Errorf("confidence: got %v, want 0.95 (earlier rule must win)", answer.Confidence)
	}
	if answer.Category != models.CategorySideEffects {
		t.Errorf("category: got %q, want %q", answer.Category, models.CategorySideEffects)
	}

	// Symptom keyword with both diseases: diabetes is checked before pneumonia.
	answer = engine.Answer("Compare symptoms of pneumonia and diabetes", "")
	if answer.Confidence != 0.93 {
		t.Errorf("confidence: got %v, want 0.93 (diabetes before pneumonia)", answer.Confidence)
	}
}

func TestAnswer_TriggerWordsAreExactSubstrings(t *testing.T) {
	engine, _ := newTestEngine(t)
	// "treated" contains none of "treatment", "therapy", "manage", so the
	// question misses the treatment rule and lands on the guidance fallback.
	answer := engine.Answer("How is diabetes treated?", "")
	if answer.Category != models.CategoryGuidance {
		t.Errorf("category: got %q, want %q", answer.Category, models.CategoryGuidance)
	}
	if answer.Confidence != 0.70 {
		t.Errorf("confidence: got %v, want 0.70", answer.Confidence)
	}
}

func TestAnswer_UploadedDocumentFallback(t *testing.T) {
	engine, docs := newTestEngine(t)
	if err := docs.Ingest("Patients with asthma often experience wheezing and shortness of breath.", true); err != nil {
		t.Fatal(err)
	}

	answer := engine.Answer("What causes wheezing?", "")
	if answer.Source != models.SourceUploadedDocs {
		t.Errorf("source: got %q, want %q", answer.Source, models.SourceUploadedDocs)
	}
	if answer.Confidence != 0.85 {
		t.Errorf("confidence: got %v, want 0.85", answer.Confidence)
	}
	if answer.Category != models.CategoryUploadedContent {
		t.Errorf("category: got %q", answer.Category)
	}
	if !strings.Contains(answer.Text, "wheezing and shortness of breath") {
		t.Errorf("answer %q does not contain the ingested sentence", answer.Text)
	}
}

func TestAnswer_FinalFallback(t *testing.T) {
	engine, _ := newTestEngine(t)

	answer := engine.Answer("Tell me about unicorns", "")
	if answer.Confidence != 0.70 {
		t.Errorf("confidence: got %v, want 0.70", answer.Confidence)
	}
	if answer.Category != models.CategoryGuidance {
		t.Errorf("category: got %q, want %q", answer.Category, models.CategoryGuidance)
	}
	if answer.Text != fallbackAnswer {
		t.Errorf("answer: got %q", answer.Text)
	}
}

func TestAnswer_ContextIgnored(t *testing.T) {
	engine, _ := newTestEngine(t)

	withContext := engine.Answer("What are the side effects of aspirin?", "patient is 45 years old")
	without := engine.Answer("What are the side effects of aspirin?", "")
	if withContext != without {
		t.Errorf("context must not influence dispatch: %+v vs %+v", withContext, without)
	}
}

func TestAnswer_Deterministic(t *testing.T) {
	engine, _ := newTestEngine(t)
	first := engine.Answer("What is diabetes?", "")
	for i := 0; i < 10; i++ {
		if got := engine.Answer("What is diabetes?", ""); got != first {
			t.Fatalf("answer changed between identical calls: %+v vs %+v", got, first)
		}
	}
}
