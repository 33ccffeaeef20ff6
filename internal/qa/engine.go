// Package qa implements rule-ordered dispatch of medical questions against
// the knowledge base, with a fallback search over uploaded documents.
package qa

import (
	"strings"

	"github.com/healthdesk/medqa/internal/docstore"
	"github.com/healthdesk/medqa/internal/knowledge"
	"github.com/healthdesk/medqa/internal/models"
	"go.uber.org/zap"
)

// fallbackAnswer is returned when no rule matches and uploaded documents hold
// nothing relevant.
const fallbackAnswer = "I can provide information about common medical conditions like diabetes, hypertension, pneumonia, and medications like aspirin and insulin. Please ask about symptoms, side effects, treatments, or risk factors."

// genericAnswers maps definitional question fragments to canned definitions.
// Evaluated in order; first substring match wins.
var genericAnswers = []struct {
	trigger    string
	answer     string
	confidence float64
}{
	{
		trigger:    "what is diabetes",
		answer:     "Diabetes is a group of metabolic disorders characterized by high blood sugar levels. Type 1 is autoimmune, Type 2 involves insulin resistance.",
		confidence: 0.88,
	},
	{
		trigger:    "what is hypertension",
		answer:     "Hypertension is high blood pressure consistently above 140/90 mmHg, a major risk factor for cardiovascular disease.",
		confidence: 0.87,
	},
	{
		trigger:    "what is pneumonia",
		answer:     "Pneumonia is an infection that inflames air sacs in the lungs, which may fill with fluid or pus, caused by bacteria, viruses, or fungi.",
		confidence: 0.86,
	},
}

// Engine dispatches questions. Deterministic given fixed rule order; its only
// state is the knowledge store and the document store.
type Engine struct {
	knowledge *knowledge.Store
	docs      *docstore.Store
	logger    *zap.Logger
}

// NewEngine creates an engine over the given knowledge base and document store.
func NewEngine(kb *knowledge.Store, docs *docstore.Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{knowledge: kb, docs: docs, logger: logger}
}

// Answer evaluates keyword rules in order against the question; the first
// matching rule wins. All matching is case-insensitive: the question is
// lowercased once at entry. The context argument is accepted for API
// compatibility but no rule consults it.
func (e *Engine) Answer(question, context string) models.Answer {
	_ = context
	q := strings.ToLower(question)

	if containsAny(q, "side effect", "adverse effect", "reaction") && strings.Contains(q, "aspirin") {
		aspirin, _ := e.knowledge.Get("aspirin")
		return models.Answer{
			Text:       "Common side effects of aspirin include: " + strings.Join(aspirin.List("side_effects"), ", "),
			Confidence: 0.95,
			Source:     models.SourceKnowledgeBase,
			Category:   models.CategorySideEffects,
		}
	}

	if containsAny(q, "symptom", "sign") {
		if strings.Contains(q, "diabetes") {
			diabetes, _ := e.knowledge.Get("diabetes")
			return models.Answer{
				Text:       "Common symptoms of diabetes include: " + strings.Join(diabetes.List("symptoms"), ", "),
				Confidence: 0.93,
				Source:     models.SourceKnowledgeBase,
				Category:   models.CategorySymptoms,
			}
		}
		if strings.Contains(q, "pneumonia") {
			pneumonia, _ := e.knowledge.Get("pneumonia")
			return models.Answer{
				Text:       "Common symptoms of pneumonia include: " + strings.Join(pneumonia.List("symptoms"), ", "),
				Confidence: 0.92,
				Source:     models.SourceKnowledgeBase,
				Category:   models.CategorySymptoms,
			}
		}
	}

	if containsAny(q, "risk factor", "cause") &&
		containsAny(q, "hypertension", "high blood pressure", "blood pressure") {
		hypertension, _ := e.knowledge.Get("hypertension")
		return models.Answer{
			Text:       "Risk factors for hypertension include: " + strings.Join(hypertension.List("risk_factors"), ", "),
			Confidence: 0.94,
			Source:     models.SourceKnowledgeBase,
			Category:   models.CategoryRiskFactors,
		}
	}

	if containsAny(q, "treatment", "therapy", "manage") {
		if strings.Contains(q, "diabetes") {
			diabetes, _ := e.knowledge.Get("diabetes")
			return models.Answer{
				Text:       "Diabetes management includes: " + diabetes.Text("management"),
				Confidence: 0.91,
				Source:     models.SourceKnowledgeBase,
				Category:   models.CategoryTreatment,
			}
		}
		if containsAny(q, "hypertension", "high blood pressure") {
			hypertension, _ := e.knowledge.Get("hypertension")
			return models.Answer{
				Text: "Hypertension treatment includes: " + hypertension.Text("treatment") +
					". Medications include: " + hypertension.Text("medications"),
				Confidence: 0.92,
				Source:     models.SourceKnowledgeBase,
				Category:   models.CategoryTreatment,
			}
		}
	}

	if containsAny(q, "insulin", "type") && strings.Contains(q, "insulin") {
		insulin, _ := e.knowledge.Get("insulin")
		return models.Answer{
			Text:       "Types of insulin include: " + strings.Join(insulin.List("types"), "; "),
			Confidence: 0.90,
			Source:     models.SourceKnowledgeBase,
			Category:   models.CategoryMedicationTypes,
		}
	}

	for _, g := range genericAnswers {
		if strings.Contains(q, g.trigger) {
			return models.Answer{
				Text:       g.answer,
				Confidence: g.confidence,
				Source:     models.SourceKnowledgeBase,
				Category:   models.CategoryGeneralInfo,
			}
		}
	}

	if passages := e.docs.Search(question); passages != "" {
		return models.Answer{
			Text:       passages,
			Confidence: 0.85,
			Source:     models.SourceUploadedDocs,
			Category:   models.CategoryUploadedContent,
		}
	}

	return models.Answer{
		Text:       fallbackAnswer,
		Confidence: 0.70,
		Source:     models.SourceKnowledgeBase,
		Category:   models.CategoryGuidance,
	}
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
