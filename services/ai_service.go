package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	config "github.com/leonardoresende2010-coder/cism-repositorio/configs"
	"github.com/leonardoresende2010-coder/cism-repositorio/parser"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// DivergenceAuditRequest carries one question to the external auditor.
type DivergenceAuditRequest struct {
	QuestionText  string
	Options       []parser.Option
	CorrectAnswer string
	Explanation   string
}

// DivergenceAuditResult mirrors the heuristic detector's output shape so
// callers can treat both paths uniformly.
type DivergenceAuditResult struct {
	IsDivergent       bool   `json:"is_divergent"`
	ExplanationAnswer string `json:"explanation_answer,omitempty"`
	Reason            string `json:"reason"`
}

// auditVerdict is the JSON shape the model is instructed to return.
type auditVerdict struct {
	LetraIdentificada string `json:"letraIdentificada"`
	Logica            string `json:"logica"`
}

func geminiAPIKey() string {
	if key := config.Config("GEMINI_API_KEY"); key != "" {
		return key
	}
	return config.Config("GOOGLE_API_KEY")
}

// AnalyzeDivergence asks Gemini which option the explanation actually argues
// for. Errors are returned to the caller untouched; stored heuristic flags are
// never overwritten on failure and the call is not retried.
func AnalyzeDivergence(ctx context.Context, req DivergenceAuditRequest) (*DivergenceAuditResult, error) {
	apiKey := geminiAPIKey()
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key: set GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	modelName := config.Config("GEMINI_MODEL")
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.1),
		ResponseMIMEType: "application/json",
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buildAuditPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini divergence audit: %w", err)
	}

	raw := responseText(resp)
	result, err := normalizeAuditVerdict(raw, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func buildAuditPrompt(req DivergenceAuditRequest) string {
	var options strings.Builder
	for _, o := range req.Options {
		fmt.Fprintf(&options, "%s) %s\n", o.Letter, o.Text)
	}

	return fmt.Sprintf(`AJA COMO UM AUDITOR TÉCNICO DE EXAMES.
Sua tarefa é ler a EXPLICAÇÃO abaixo e identificar qual das ALTERNATIVAS ela defende como correta.

QUESTÃO: %q
ALTERNATIVAS:
%s
EXPLICAÇÃO:
%q

REGRAS:
1. Ignore qual letra o gabarito diz ser a certa. Foque na lógica do texto.
2. Se a explicação descreve a Letra B, responda que a letra identificada é B.
3. Responda APENAS com este JSON:
{"letraIdentificada": "A/B/C/D", "logica": "resumo curto"}`,
		req.QuestionText, options.String(), req.Explanation)
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

var validAuditLetter = regexp.MustCompile(`^[A-E]$`)

// normalizeAuditVerdict converts the raw model output into the shared
// divergence shape. It tolerates fenced or chatty output as long as a JSON
// object is present somewhere.
func normalizeAuditVerdict(raw, correctAnswer string) (*DivergenceAuditResult, error) {
	jsonText := jsonObjectPattern.FindString(raw)
	if jsonText == "" {
		return nil, errors.New("could not parse model output: no JSON object found")
	}

	var verdict auditVerdict
	if err := json.Unmarshal([]byte(jsonText), &verdict); err != nil {
		return nil, fmt.Errorf("could not parse model output: %w", err)
	}

	identified := strings.ToUpper(strings.TrimSpace(verdict.LetraIdentificada))
	official := strings.ToUpper(strings.TrimSpace(correctAnswer))

	if !validAuditLetter.MatchString(identified) {
		return &DivergenceAuditResult{
			IsDivergent: false,
			Reason:      "A explicação é consistente com o gabarito oficial.",
		}, nil
	}

	if identified != official {
		return &DivergenceAuditResult{
			IsDivergent:       true,
			ExplanationAnswer: identified,
			Reason:            fmt.Sprintf("Divergência detectada! O gabarito indica %s, mas a explicação técnica descreve a alternativa %s.", official, identified),
		}, nil
	}

	return &DivergenceAuditResult{
		IsDivergent:       false,
		ExplanationAnswer: identified,
		Reason:            "A explicação é consistente com o gabarito oficial.",
	}, nil
}

func ptrFloat32(v float32) *float32 { return &v }
